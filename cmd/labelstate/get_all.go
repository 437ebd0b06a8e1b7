// Get-all command reads the entity's full state map.
package main

import "github.com/spf13/cobra"

var getAllCmd = &cobra.Command{
	Use:   "get-all",
	Short: "Read the full state map as a JSON object",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		inv, err := setup(cmd)
		if err != nil {
			return err
		}
		defer inv.logger.Sync()

		res, err := inv.engine.GetAll(inv.opctx, inv.current)
		if err != nil {
			return err
		}
		return printResult(res)
	},
}
