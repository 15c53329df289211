package engine

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/wirz-id/wirz/internal/common"
	"github.com/wirz-id/wirz/internal/model"
)

var oneHundred = decimal.NewFromInt(100)

// ResolveRate produces the effective withholding rate for a matched rule.
// The rule's penalty policy is applied exactly once, and only when the
// counterparty has no registered tax ID.
func ResolveRate(rule model.TaxRule, profile model.CounterpartyProfile) (decimal.Decimal, error) {
	rate := rule.BaseRatePercent
	if !profile.HasTaxID {
		rate = rule.Penalty.Apply(rate)
	}

	if rate.LessThanOrEqual(decimal.Zero) || rate.GreaterThanOrEqual(oneHundred) {
		return decimal.Decimal{}, fmt.Errorf("%w: rule %s resolved to %s%%",
			common.ErrInvalidRate, rule.Code, rate)
	}

	return rate, nil
}
