// Set command writes one key to the entity's state.
package main

import "github.com/spf13/cobra"

var setCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Store a value under a key",
	Long: `Set stores a value under a key. An existing label for the key is
displaced in the same label-list replace, so the entity never carries
two labels for one key. With --delete-unused-labels the displaced label
is also removed from the repository catalog when no other issue or pull
request carries it.

Example:
  labelstate set step 2 --repo octocat/hello-world --issue 7`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		inv, err := setup(cmd)
		if err != nil {
			return err
		}
		defer inv.logger.Sync()

		res, err := inv.engine.Set(cmd.Context(), inv.opctx, args[0], args[1], inv.current)
		if err != nil {
			return err
		}
		return printResult(res)
	},
}
