// Root command for the labelstate CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/labelstate/pkg/labelstate"
	"github.com/mesh-intelligence/labelstate/pkg/types"
)

// Global flag values.
var (
	flagConfigDir string
	flagRepo      string
	flagIssue     string
	flagPrefix    string
	flagSeparator string
	flagDelete    bool
	flagJSON      bool
	flagVerbose   bool
)

var rootCmd = &cobra.Command{
	Use:     "labelstate",
	Short:   "Labelstate stores key-value state in GitHub issue labels",
	Version: labelstate.Version,
	Long: `Labelstate encodes a key-value map into the label names of a single
GitHub issue or pull request. No database is involved: the label list
is the store, label names are the wire format.`,
	// Do not print usage on errors returned by subcommands.
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	pf.StringVar(&flagRepo, "repo", "", `repository in "owner/name" form`)
	pf.StringVar(&flagIssue, "issue", "", "issue or pull request number")
	pf.StringVar(&flagPrefix, "prefix", types.DefaultPrefix, "label name prefix for state labels")
	pf.StringVar(&flagSeparator, "separator", types.DefaultSeparator, "separator between prefix, key, and value")
	pf.BoolVar(&flagDelete, "delete-unused-labels", false, "delete displaced labels from the catalog when unused")
	pf.BoolVar(&flagJSON, "json", false, "output as JSON")
	pf.BoolVar(&flagVerbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(getAllCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(removeCmd)
}
