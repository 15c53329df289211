package engine

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/wirz-id/wirz/internal/common"
)

// GrossUpResult holds the inverted base and the derived tax amount.
type GrossUpResult struct {
	GrossBase decimal.Decimal
	TaxAmount decimal.Decimal
}

// GrossUp inverts a net amount received into the gross base that, after
// withholding at ratePercentage, yields that net amount:
//
//	grossBase = netBase / (1 - rate/100)
//	taxAmount = grossBase - netBase
//
// Defined only for rates in (0, 100); the division is undefined at 100.
func GrossUp(netBase, ratePercentage decimal.Decimal) (GrossUpResult, error) {
	if ratePercentage.LessThanOrEqual(decimal.Zero) || ratePercentage.GreaterThanOrEqual(oneHundred) {
		return GrossUpResult{}, fmt.Errorf("%w: rate %s%%", common.ErrInvalidGrossUp, ratePercentage)
	}

	retained := decimal.NewFromInt(1).Sub(ratePercentage.Div(oneHundred))
	grossBase := netBase.Div(retained).Round(amountScale)

	return GrossUpResult{
		GrossBase: grossBase,
		TaxAmount: grossBase.Sub(netBase),
	}, nil
}

// Degross is the inverse of GrossUp: withholding at the same rate from the
// gross base recovers the net amount, within rounding tolerance.
func Degross(grossBase, ratePercentage decimal.Decimal) decimal.Decimal {
	tax := grossBase.Mul(ratePercentage).Div(oneHundred).Round(amountScale)
	return grossBase.Sub(tax)
}

// WithholdPlain computes tax on a base without inversion.
func WithholdPlain(base, ratePercentage decimal.Decimal) decimal.Decimal {
	return base.Mul(ratePercentage).Div(oneHundred).Round(amountScale)
}

// amountScale is the decimal precision of computed currency amounts.
const amountScale = 2
