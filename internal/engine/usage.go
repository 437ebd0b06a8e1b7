package engine

import (
	"context"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/labelstate/pkg/types"
)

// usagePageSize is the fixed page size for usage scans.
const usagePageSize = 100

// usedElsewhere reports whether any entity other than the one in opctx
// still carries the named label. Pages are fetched sequentially from
// page 1, the context's own entity filtered out, and the scan stops at
// the first foreign hit. A short page ends the scan with a negative
// answer.
//
// On a transport failure the answer is true: a label wrongly kept costs
// nothing, a label wrongly deleted destroys state on another entity.
func (e *Engine) usedElsewhere(ctx context.Context, opctx types.OperationContext, name string) bool {
	for page := 1; ; page++ {
		entities, err := e.svc.ListEntitiesByLabel(ctx, opctx.Owner, opctx.Repo, name, page, usagePageSize)
		if err != nil {
			e.logger.Warn("usage check failed, assuming label is still in use",
				zap.String("label", name),
				zap.Int("page", page),
				zap.Error(err))
			return true
		}

		for _, ent := range entities {
			if ent.Number != opctx.EntityNumber {
				return true
			}
		}

		if len(entities) < usagePageSize {
			return false
		}
	}
}
