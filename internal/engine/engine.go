// Package engine implements the four state operations over an abstract
// label service: get, get-all, set, and remove. The engine holds no state
// of its own; the entity's label list is read by the caller, transformed
// here, and written back through a single full-list replace.
package engine

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/labelstate/internal/codec"
	"github.com/mesh-intelligence/labelstate/pkg/types"
)

// Engine orchestrates state operations against a LabelService.
type Engine struct {
	svc    types.LabelService
	logger *zap.Logger
}

// New creates an Engine. A nil logger is replaced with zap.NewNop().
func New(svc types.LabelService, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{svc: svc, logger: logger}
}

// Get reads one key from the current label list. The result carries the
// value when the key is present and a nil Value otherwise. Get never
// issues a write.
func (e *Engine) Get(opctx types.OperationContext, key string, current []types.Label) types.Result {
	state := codec.Extract(current, opctx.Prefix, opctx.Separator)
	value, ok := state[key]
	if !ok {
		return types.Failed()
	}
	return types.Result{Success: true, Value: &value}
}

// GetAll reads the whole state map and serializes it as a JSON object.
// Keys are emitted in sorted order, so equal states serialize equally;
// an empty state serializes to "{}".
func (e *Engine) GetAll(opctx types.OperationContext, current []types.Label) (types.Result, error) {
	state := codec.Extract(current, opctx.Prefix, opctx.Separator)
	serialized, err := json.Marshal(state)
	if err != nil {
		return types.Failed(), fmt.Errorf("serialize state: %w", err)
	}
	return types.Result{Success: true, State: string(serialized)}, nil
}

// Set writes one key. Any label currently decoding to the key is
// displaced and the new label appended, all in one list replace, so the
// entity never carries two labels for the same key afterwards. When the
// delete-unused-labels policy is on and a label was displaced, the
// displaced name is cleaned from the catalog best-effort.
func (e *Engine) Set(ctx context.Context, opctx types.OperationContext, key, value string, current []types.Label) (types.Result, error) {
	converted := codec.CanonicalValue(value)
	newName := codec.Format(key, converted, opctx.Prefix, opctx.Separator)

	existing, survivors := splitByKey(current, key, opctx.Prefix, opctx.Separator)

	names := append(types.Names(survivors), newName)
	if _, err := e.svc.ReplaceLabels(ctx, opctx.Owner, opctx.Repo, opctx.EntityNumber, names); err != nil {
		return types.Failed(), fmt.Errorf("replace labels: %w", err)
	}

	// The entity's state is already correct; catalog cleanup cannot fail
	// the operation. Skip it when the displaced name is the one just
	// written, otherwise the delete would strip the fresh label too.
	if len(existing) > 0 && opctx.DeleteUnusedLabels && existing[0].Name != newName {
		e.deleteIfUnused(ctx, opctx, existing[0].Name)
	}

	return types.OK(), nil
}

// Remove deletes one key. Removing an absent key is an explicit no-op:
// no external call is made and the result is unsuccessful without being
// an error. Otherwise the matching labels are stripped in one list
// replace, followed by the same conditional catalog cleanup as Set.
func (e *Engine) Remove(ctx context.Context, opctx types.OperationContext, key string, current []types.Label) (types.Result, error) {
	existing, survivors := splitByKey(current, key, opctx.Prefix, opctx.Separator)
	if len(existing) == 0 {
		return types.Failed(), nil
	}

	if _, err := e.svc.ReplaceLabels(ctx, opctx.Owner, opctx.Repo, opctx.EntityNumber, types.Names(survivors)); err != nil {
		return types.Failed(), fmt.Errorf("replace labels: %w", err)
	}

	if opctx.DeleteUnusedLabels {
		e.deleteIfUnused(ctx, opctx, existing[0].Name)
	}

	return types.OK(), nil
}

// splitByKey partitions labels into those decoding to key and the rest,
// both in list order. The first element of existing is "the" label for
// the key; any extras are duplicates from an upstream violation and are
// stripped alongside it.
func splitByKey(labels []types.Label, key, prefix, separator string) (existing, survivors []types.Label) {
	for _, l := range labels {
		k, _, ok := codec.Parse(l.Name, prefix, separator)
		if ok && k == key {
			existing = append(existing, l)
			continue
		}
		survivors = append(survivors, l)
	}
	return existing, survivors
}

// deleteIfUnused removes name from the repository catalog unless some
// other entity still carries it. Both the usage check and the delete are
// best-effort: failures are logged and swallowed.
func (e *Engine) deleteIfUnused(ctx context.Context, opctx types.OperationContext, name string) {
	if e.usedElsewhere(ctx, opctx, name) {
		e.logger.Info("label still in use, keeping it in the catalog",
			zap.String("label", name))
		return
	}

	if err := e.svc.DeleteLabel(ctx, opctx.Owner, opctx.Repo, name); err != nil {
		e.logger.Warn("could not delete unused label from catalog",
			zap.String("label", name),
			zap.Error(err))
	}
}
