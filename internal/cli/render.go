package cli

import (
	"fmt"
	"strings"

	"github.com/wirz-id/wirz/internal/explain"
	"github.com/wirz-id/wirz/internal/model"
)

// RenderDetermination renders a tax determination for terminal display.
func RenderDetermination(det model.TaxDetermination, lang model.Language) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Tax Calculation Result"))
	b.WriteString("\n")

	row := func(label, value string) {
		fmt.Fprintf(&b, "%s %s\n", LabelStyle.Render(label+":"), ValueStyle.Render(value))
	}

	row("Tax Type", det.TaxType)
	row("Tax Rate", explain.FormatRate(det.RatePercentage)+"%")
	row("Tax Base (DPP)", explain.FormatAmount(det.TaxBase, lang))
	row("PPh Amount", explain.FormatAmount(det.TaxAmount, lang))

	b.WriteString("\n")
	b.WriteString(BoxStyle.Render(det.Explanation))
	b.WriteString("\n")

	return b.String()
}
