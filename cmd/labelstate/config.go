// Config loading for the labelstate CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/labelstate/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys.
	cfgKeyRepo      = "repo"
	cfgKeyPrefix    = "prefix"
	cfgKeySeparator = "separator"
	cfgKeyDelete    = "delete_unused_labels"
	cfgKeyToken     = "token"
)

// envToken is the environment variable the token is normally read from;
// the config file key is the fallback for local use.
const envToken = "GITHUB_TOKEN"

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# labelstate CLI configuration

# Repository operated on, "owner/name" (overridable by --repo)
# repo:

# State label encoding
prefix: state
separator: "::"

# Delete displaced labels from the repository catalog when no other
# issue or pull request carries them
delete_unused_labels: false

# API token (prefer the GITHUB_TOKEN environment variable)
# token:
`

// loadConfig reads config.yaml from the resolved config directory using
// Viper. It creates the config directory and a default config.yaml on
// first run. A missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyPrefix, types.DefaultPrefix)
	v.SetDefault(cfgKeySeparator, types.DefaultSeparator)
	v.SetDefault(cfgKeyDelete, false)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Missing config.yaml is not an error.
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// resolveToken returns the API token: environment first, config second.
// An empty token is allowed (public repositories, reduced rate limits).
func resolveToken(v *viper.Viper) string {
	if t := os.Getenv(envToken); t != "" {
		return t
	}
	return v.GetString(cfgKeyToken)
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does
// not exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		// File already exists.
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
