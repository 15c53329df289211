// Package explain renders localized, human-readable rationales for tax
// determinations. Composition is pure template substitution over figures the
// engine already computed; no business logic lives here.
package explain

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/shopspring/decimal"

	"github.com/wirz-id/wirz/internal/model"
)

// Input carries the already-computed figures the explanation references.
type Input struct {
	Rule           model.TaxRule
	Rate           decimal.Decimal
	PenaltyApplied bool
	Base           decimal.Decimal
	Amount         decimal.Decimal
	Excluded       decimal.Decimal
	Net            decimal.Decimal // the pre-inversion base; meaningful when GrossUp
	GrossUp        bool
	Language       model.Language
}

// Composer renders explanations from per-locale templates.
type Composer struct {
	templates map[model.Language]*template.Template
}

const explanationEN = `{{.RuleName}} applies: {{.LegalBasis}}. ` +
	`The effective rate is {{.Rate}}%{{.PenaltyNote}}. ` +
	`{{if .HasExcluded}}Non-taxable items of {{.Excluded}} were excluded, leaving a taxable amount of {{.Net}}. {{end}}` +
	`{{if .GrossUp}}The amount of {{.Net}} is treated as the net received after withholding, so the tax base (DPP) is grossed up to {{.Net}} / (1 - {{.Rate}}%) = {{.Base}}, and the withholding tax is the difference: {{.Amount}}.` +
	`{{else}}The tax base (DPP) is {{.Base}}, so the withholding tax is {{.Base}} x {{.Rate}}% = {{.Amount}}.{{end}}`

const explanationID = `{{.RuleName}} berlaku: {{.LegalBasis}}. ` +
	`Tarif efektifnya {{.Rate}}%{{.PenaltyNote}}. ` +
	`{{if .HasExcluded}}Komponen tidak kena pajak sebesar {{.Excluded}} dikeluarkan, sehingga jumlah kena pajak menjadi {{.Net}}. {{end}}` +
	`{{if .GrossUp}}Jumlah {{.Net}} diperlakukan sebagai jumlah bersih setelah pemotongan, sehingga DPP di-gross-up menjadi {{.Net}} / (1 - {{.Rate}}%) = {{.Base}}, dan PPh adalah selisihnya: {{.Amount}}.` +
	`{{else}}DPP adalah {{.Base}}, sehingga PPh dipotong {{.Base}} x {{.Rate}}% = {{.Amount}}.{{end}}`

const penaltyNoteEN = ", including the increased rate because the counterparty has no NPWP/NIK"
const penaltyNoteID = ", termasuk kenaikan tarif karena lawan transaksi tidak memiliki NPWP/NIK"

var legalBasisID = map[string]string{
	"PPH4-2-RENT": "pajak final atas sewa tanah dan/atau bangunan",
	"PPH23-SVC":   "jasa dan sewa selain tanah/bangunan yang dibayarkan kepada badan hukum",
	"PPH21-SVC":   "jasa yang dilakukan oleh orang pribadi",
}

// NewComposer parses the built-in locale templates.
func NewComposer() *Composer {
	return &Composer{
		templates: map[model.Language]*template.Template{
			model.LanguageEN: template.Must(template.New("en").Parse(explanationEN)),
			model.LanguageID: template.Must(template.New("id").Parse(explanationID)),
		},
	}
}

type templateData struct {
	RuleName    string
	LegalBasis  string
	Rate        string
	PenaltyNote string
	Base        string
	Amount      string
	Excluded    string
	Net         string
	HasExcluded bool
	GrossUp     bool
}

// Compose renders the explanation for the given figures.
func (c *Composer) Compose(in Input) (string, error) {
	tmpl, ok := c.templates[in.Language]
	if !ok {
		tmpl = c.templates[model.LanguageEN]
	}

	legalBasis := in.Rule.LegalBasis
	penaltyNote := ""
	if in.Language == model.LanguageID {
		if basis, ok := legalBasisID[in.Rule.Code]; ok {
			legalBasis = basis
		}
		if in.PenaltyApplied {
			penaltyNote = penaltyNoteID
		}
	} else if in.PenaltyApplied {
		penaltyNote = penaltyNoteEN
	}

	data := templateData{
		RuleName:    in.Rule.DisplayName,
		LegalBasis:  legalBasis,
		Rate:        FormatRate(in.Rate),
		PenaltyNote: penaltyNote,
		Base:        FormatAmount(in.Base, in.Language),
		Amount:      FormatAmount(in.Amount, in.Language),
		Excluded:    FormatAmount(in.Excluded, in.Language),
		Net:         FormatAmount(in.Net, in.Language),
		HasExcluded: in.Excluded.IsPositive(),
		GrossUp:     in.GrossUp,
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("failed to render explanation: %w", err)
	}

	return b.String(), nil
}
