// Package main provides the labelstate CLI: key-value state stored in
// the labels of a GitHub issue or pull request.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mesh-intelligence/labelstate/internal/resolve"
	"github.com/mesh-intelligence/labelstate/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Uniform failure record: the reason on stderr, and under --json
		// the unsuccessful result on stdout so callers always get a
		// parseable record.
		fmt.Fprintln(os.Stderr, err)
		if flagJSON {
			fmt.Println(`{"success":false}`)
		}
		os.Exit(exitCode(err))
	}
}

// exitCode classifies an invocation failure. Validation and resolution
// problems are user errors; everything else (transport on the primary
// read or write) is a system error.
func exitCode(err error) int {
	userErrors := []error{
		resolve.ErrRepoMalformed,
		resolve.ErrEntityNumberMissing,
		resolve.ErrEntityNumberNotNumber,
		types.ErrOwnerEmpty,
		types.ErrRepoEmpty,
		types.ErrEntityNumberInvalid,
		types.ErrSeparatorEmpty,
	}
	for _, ue := range userErrors {
		if errors.Is(err, ue) {
			return exitUserError
		}
	}
	return exitSysError
}
