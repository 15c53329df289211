package explain

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/wirz-id/wirz/internal/model"
)

// FormatAmount renders a decimal with locale-appropriate digit grouping:
// "10,000,000" for English, "10.000.000" for Indonesian. A fractional part,
// when present, uses the opposite symbol.
func FormatAmount(d decimal.Decimal, lang model.Language) string {
	group, point := ",", "."
	if lang == model.LanguageID {
		group, point = ".", ","
	}

	s := d.Abs().String()
	intPart, fracPart, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	if d.IsNegative() {
		b.WriteString("-")
	}

	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
		if len(intPart) > lead {
			b.WriteString(group)
		}
	}
	for i := lead; i < len(intPart); i += 3 {
		b.WriteString(intPart[i : i+3])
		if i+3 < len(intPart) {
			b.WriteString(group)
		}
	}

	if hasFrac {
		b.WriteString(point)
		b.WriteString(fracPart)
	}

	return b.String()
}

// FormatRate renders a rate percentage without trailing zeros.
func FormatRate(d decimal.Decimal) string {
	return d.String()
}
