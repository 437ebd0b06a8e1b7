// Get command reads one key from the entity's state.
package main

import "github.com/spf13/cobra"

var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Read the value stored under a key",
	Long: `Get reads one key from the state encoded in the entity's labels.

Example:
  labelstate get step --repo octocat/hello-world --issue 7
  labelstate get step --repo octocat/hello-world --issue 7 --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inv, err := setup(cmd)
		if err != nil {
			return err
		}
		defer inv.logger.Sync()

		res := inv.engine.Get(inv.opctx, args[0], inv.current)
		return printResult(res)
	},
}
