package main

import (
	"github.com/spf13/cobra"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recordings for a date without publishing",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := ctx.newRunner()
			if err != nil {
				return err
			}
			return runner.List(cmd.Context(), dateFlag)
		},
	}

	cmd.Flags().StringVarP(&dateFlag, "date", "d", "", "Meeting date (YYYY-MM-DD, YYYYMMDD, MM-DD, today, yesterday)")
	return cmd
}
