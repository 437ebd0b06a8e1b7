// Package resolve turns caller-supplied repository and entity
// identifiers into validated values. All checks run before any network
// call is made.
package resolve

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Resolution errors.
var (
	ErrRepoMalformed         = errors.New(`repository must be in "owner/name" form`)
	ErrEntityNumberMissing   = errors.New("no entity number supplied")
	ErrEntityNumberNotNumber = errors.New("entity number is not numeric")
)

// Repo splits an "owner/name" identifier. Exactly one slash, both parts
// non-empty.
func Repo(identifier string) (owner, name string, err error) {
	owner, name, found := strings.Cut(identifier, "/")
	if !found || owner == "" || name == "" || strings.Contains(name, "/") {
		return "", "", fmt.Errorf("%w: %q", ErrRepoMalformed, identifier)
	}
	return owner, name, nil
}

// EntityNumber parses a decimal issue or pull-request number. The empty
// string reports a distinct error from a non-numeric one, so the caller
// can tell "nothing resolved" apart from bad input.
func EntityNumber(raw string) (int, error) {
	if raw == "" {
		return 0, ErrEntityNumberMissing
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrEntityNumberNotNumber, raw)
	}
	return n, nil
}
