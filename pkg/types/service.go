package types

import (
	"context"
	"errors"
)

// LabelService is the abstract label capability of the hosting service.
// Implementations map these onto the real API; the engine never talks to
// the network directly.
type LabelService interface {
	// ListLabels returns every label currently attached to the entity.
	ListLabels(ctx context.Context, owner, repo string, number int) ([]Label, error)

	// ReplaceLabels replaces the entity's full label list with names.
	// The service applies the whole list or rejects the call; there is no
	// partial application.
	ReplaceLabels(ctx context.Context, owner, repo string, number int, names []string) ([]Label, error)

	// DeleteLabel removes a label from the repository-wide catalog, which
	// detaches it from every entity still carrying it.
	DeleteLabel(ctx context.Context, owner, repo, name string) error

	// ListEntitiesByLabel returns one page of entities carrying the named
	// label. The service performs the filter; pages start at 1.
	ListEntitiesByLabel(ctx context.Context, owner, repo, name string, page, perPage int) ([]Entity, error)
}

// Service-level errors.
var (
	// ErrLabelNotFound reports a catalog delete for a name the catalog no
	// longer holds.
	ErrLabelNotFound = errors.New("label not found")
)
