// Shared helpers for labelstate CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mesh-intelligence/labelstate/internal/engine"
	"github.com/mesh-intelligence/labelstate/internal/githubapi"
	"github.com/mesh-intelligence/labelstate/internal/paths"
	"github.com/mesh-intelligence/labelstate/internal/resolve"
	"github.com/mesh-intelligence/labelstate/pkg/types"
)

// invocation bundles everything one command run needs: the validated
// context, the engine, and the entity's current label list (the single
// primary read).
type invocation struct {
	opctx   types.OperationContext
	engine  *engine.Engine
	current []types.Label
	logger  *zap.Logger
}

// setup loads config, validates the operation context, builds the engine
// over the GitHub transport, and performs the primary label read. Every
// validation and resolution error surfaces here, before any mutation.
func setup(cmd *cobra.Command) (*invocation, error) {
	configDir, err := paths.ResolveConfigDir(flagConfigDir)
	if err != nil {
		return nil, fmt.Errorf("resolve config dir: %w", err)
	}

	cfg, err := loadConfig(configDir)
	if err != nil {
		return nil, err
	}

	opctx, err := buildOperationContext(cfg)
	if err != nil {
		return nil, err
	}

	logger, err := newLogger()
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	client := githubapi.New(resolveToken(cfg))
	eng := engine.New(client, logger)

	current, err := client.ListLabels(cmd.Context(), opctx.Owner, opctx.Repo, opctx.EntityNumber)
	if err != nil {
		return nil, err
	}

	return &invocation{opctx: opctx, engine: eng, current: current, logger: logger}, nil
}

// buildOperationContext merges flags over config-file values into a
// validated OperationContext. Flags win when set; prefix and separator
// flags carry defaults, so an explicit flag always wins over the file.
func buildOperationContext(cfg *viper.Viper) (types.OperationContext, error) {
	repo := flagRepo
	if repo == "" {
		repo = cfg.GetString(cfgKeyRepo)
	}
	owner, name, err := resolve.Repo(repo)
	if err != nil {
		return types.OperationContext{}, err
	}

	number, err := resolve.EntityNumber(flagIssue)
	if err != nil {
		return types.OperationContext{}, err
	}

	opctx := types.OperationContext{
		Owner:              owner,
		Repo:               name,
		EntityNumber:       number,
		Prefix:             flagPrefix,
		Separator:          flagSeparator,
		DeleteUnusedLabels: flagDelete || cfg.GetBool(cfgKeyDelete),
	}
	if flagPrefix == types.DefaultPrefix {
		opctx.Prefix = cfg.GetString(cfgKeyPrefix)
	}
	if flagSeparator == types.DefaultSeparator {
		opctx.Separator = cfg.GetString(cfgKeySeparator)
	}

	if err := opctx.Validate(); err != nil {
		return types.OperationContext{}, err
	}
	return opctx, nil
}

// newLogger builds the CLI logger: production JSON to stderr, tagged
// with a fresh invocation id. --verbose lowers the level to debug.
func newLogger() (*zap.Logger, error) {
	logConfig := zap.NewProductionConfig()
	logConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if flagVerbose {
		logConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := logConfig.Build()
	if err != nil {
		return nil, err
	}
	return logger.With(zap.String("invocation_id", uuid.NewString())), nil
}

// printResult writes the invocation result to stdout: the full record as
// JSON under --json, otherwise a short human-readable form.
func printResult(res types.Result) error {
	if flagJSON {
		out, err := json.Marshal(res)
		if err != nil {
			return fmt.Errorf("marshal result: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	switch {
	case res.Value != nil:
		fmt.Println(*res.Value)
	case res.State != "":
		fmt.Println(res.State)
	case res.Success:
		fmt.Println("ok")
	default:
		fmt.Fprintln(os.Stderr, "not found")
	}
	return nil
}
