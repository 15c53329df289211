package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wirz-id/wirz/internal/cli"
)

func historyCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent determinations from the interaction log",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store := openStorage()
			if store == nil {
				return fmt.Errorf("interaction log is not available")
			}
			defer func() { _ = store.Close() }()

			records, err := store.RecentInteractions(cmd.Context(), limit)
			if err != nil {
				return err
			}

			if len(records) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No recorded determinations yet."))
				return nil
			}

			for _, rec := range records {
				when := rec.CreatedAt.Local().Format("2006-01-02 15:04")
				if rec.Error != "" {
					fmt.Printf("%s  %s\n", cli.SubtleStyle.Render(when),
						cli.FormatError(rec.Error))
				} else {
					fmt.Printf("%s  %s %s%%  base %s  tax %s\n",
						cli.SubtleStyle.Render(when),
						cli.ValueStyle.Render(rec.TaxType),
						rec.RatePercentage, rec.TaxBase, rec.TaxAmount)
				}
				fmt.Printf("      %s\n", cli.SubtleStyle.Render(rec.Description))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum entries to show")
	return cmd
}
