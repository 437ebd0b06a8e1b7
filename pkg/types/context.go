package types

import "errors"

// Default encoding parameters. The prefix may be overridden to anything,
// including empty; the separator must stay non-empty.
const (
	DefaultPrefix    = "state"
	DefaultSeparator = "::"
)

// OperationContext is the immutable per-invocation configuration: which
// entity to operate on and how its state labels are encoded. It is owned
// by the caller and never mutated by the engine.
type OperationContext struct {
	Owner        string `json:"owner"`
	Repo         string `json:"repo"`
	EntityNumber int    `json:"entity_number"`

	// Prefix namespaces state labels; empty means every label with a
	// separator is a state label candidate.
	Prefix string `json:"prefix"`

	// Separator delimits prefix, key, and value inside a label name.
	Separator string `json:"separator"`

	// DeleteUnusedLabels enables best-effort removal of displaced labels
	// from the repository catalog when no other entity carries them.
	DeleteUnusedLabels bool `json:"delete_unused_labels"`
}

// OperationContext validation errors.
var (
	ErrOwnerEmpty          = errors.New("owner must not be empty")
	ErrRepoEmpty           = errors.New("repository must not be empty")
	ErrEntityNumberInvalid = errors.New("entity number must be positive")
	ErrSeparatorEmpty      = errors.New("separator must not be empty")
)

// Validate checks that the OperationContext is well-formed. It returns a
// sentinel error from this package on failure.
func (c OperationContext) Validate() error {
	if c.Owner == "" {
		return ErrOwnerEmpty
	}
	if c.Repo == "" {
		return ErrRepoEmpty
	}
	if c.EntityNumber <= 0 {
		return ErrEntityNumberInvalid
	}
	if c.Separator == "" {
		return ErrSeparatorEmpty
	}
	return nil
}
