package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"recpub/internal/console"
	"recpub/internal/ledger"
)

func newUploadsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "uploads",
		Short: "Show previously published recordings",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store := ledger.NewStore(cfg.LedgerPath)
			entries, err := store.Load()
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No uploads recorded yet.")
				return nil
			}

			titles := make([]string, 0, len(entries))
			for title := range entries {
				titles = append(titles, title)
			}
			sort.Strings(titles)

			rows := make([][]string, 0, len(titles))
			for _, title := range titles {
				rows = append(rows, []string{title, entries[title]})
			}
			reporter := console.NewTerminal(cmd.OutOrStdout(), cmd.InOrStdin())
			reporter.Table([]string{"Title", "URL"}, rows)
			return nil
		},
	}
}
