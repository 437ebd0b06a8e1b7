// Remove command deletes one key from the entity's state.
package main

import "github.com/spf13/cobra"

var removeCmd = &cobra.Command{
	Use:   "remove <key>",
	Short: "Delete a key from the state",
	Long: `Remove deletes the label encoding the given key. Removing an absent
key makes no API call and reports an unsuccessful (but not erroneous)
result.

Example:
  labelstate remove step --repo octocat/hello-world --issue 7`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inv, err := setup(cmd)
		if err != nil {
			return err
		}
		defer inv.logger.Sync()

		res, err := inv.engine.Remove(cmd.Context(), inv.opctx, args[0], inv.current)
		if err != nil {
			return err
		}
		return printResult(res)
	},
}
