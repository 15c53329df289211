package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wirz-id/wirz/internal/catalog"
	"github.com/wirz-id/wirz/internal/cli"
	"github.com/wirz-id/wirz/internal/model"
)

func rulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the withholding tax rule catalog",
		RunE: func(_ *cobra.Command, _ []string) error {
			fmt.Println(cli.TitleStyle.Render("Rule Catalog"))
			for _, rule := range catalog.Default().Rules() {
				fmt.Printf("%s %s\n",
					cli.LabelStyle.Render(rule.Code),
					cli.ValueStyle.Render(rule.DisplayName))
				fmt.Printf("  %s\n", cli.SubtleStyle.Render(rule.LegalBasis))
				fmt.Printf("  base rate %s%%, %s\n",
					rule.BaseRatePercent, describePenalty(rule.Penalty))
			}
			return nil
		},
	}
}

func describePenalty(p model.PenaltyPolicy) string {
	switch p.Kind {
	case model.PenaltyAdditive:
		return fmt.Sprintf("+%s points without NPWP/NIK", p.Value)
	case model.PenaltyMultiplicative:
		return fmt.Sprintf("x%s without NPWP/NIK", p.Value)
	default:
		return "no penalty"
	}
}
