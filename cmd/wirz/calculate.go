package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wirz-id/wirz/internal/cli"
	"github.com/wirz-id/wirz/internal/common"
	"github.com/wirz-id/wirz/internal/model"
	"github.com/wirz-id/wirz/internal/storage"
)

func calculateCmd() *cobra.Command {
	var (
		counterparty string
		hasTaxID     bool
		grossUp      bool
		language     string
	)

	cmd := &cobra.Command{
		Use:   "calculate [description...]",
		Short: "Determine the withholding tax for a transaction description",
		Example: `  wirz calculate --counterparty entity "building rental fee 10,000,000, material cost 5,000,000"
  wirz calculate --counterparty individual --has-tax-id=false --gross-up "consulting fee 9,800,000"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := buildEngine()
			if err != nil {
				return err
			}

			ctype := model.CounterpartyEntity
			if strings.EqualFold(counterparty, "individual") {
				ctype = model.CounterpartyIndividual
			} else if !strings.EqualFold(counterparty, "entity") {
				return fmt.Errorf("--counterparty must be individual or entity")
			}

			form := model.FormData{
				CounterpartyType: string(ctype),
				HasTaxID:         hasTaxID,
				Description:      strings.Join(args, " "),
				GrossUp:          grossUp,
			}

			det, err := eng.Determine(cmd.Context(), form, language)
			if err != nil {
				fmt.Println(cli.FormatError(common.UserMessage(err, "tax analysis failed")))
				return err
			}

			lang, _ := model.ParseLanguage(language)
			fmt.Println(cli.RenderDetermination(det, lang))

			recordFromCLI(cmd, form, language, det)
			return nil
		},
	}

	cmd.Flags().StringVar(&counterparty, "counterparty", "entity", "counterparty type (individual, entity)")
	cmd.Flags().BoolVar(&hasTaxID, "has-tax-id", true, "counterparty has a registered NPWP/NIK")
	cmd.Flags().BoolVar(&grossUp, "gross-up", false, "treat the amount as net received and gross it up")
	cmd.Flags().StringVar(&language, "lang", "en", "explanation language (en, id)")

	return cmd
}

// recordFromCLI appends the determination to the interaction log, matching
// what the HTTP service records.
func recordFromCLI(cmd *cobra.Command, form model.FormData, language string, det model.TaxDetermination) {
	store := openStorage()
	if store == nil {
		return
	}
	defer func() { _ = store.Close() }()

	if _, err := store.RecordInteraction(cmd.Context(), storage.Interaction{
		CounterpartyType: form.CounterpartyType,
		HasTaxID:         form.HasTaxID,
		GrossUp:          form.GrossUp,
		Description:      form.Description,
		Language:         language,
		TaxType:          det.TaxType,
		RatePercentage:   det.RatePercentage.String(),
		TaxBase:          det.TaxBase.String(),
		TaxAmount:        det.TaxAmount.String(),
	}); err != nil {
		common.LogError(err, "failed to persist interaction", nil)
	}
}
