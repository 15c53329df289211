package engine

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/wirz-id/wirz/internal/common"
	"github.com/wirz-id/wirz/internal/model"
)

// RawBase is the output of the base calculator: the sum of taxable item
// amounts, plus the excluded non-taxable total retained for the explanation.
type RawBase struct {
	Base     decimal.Decimal
	Excluded decimal.Decimal
}

// ComputeRawBase sums the taxable items into the raw tax base. A description
// whose items are all non-taxable is a reportable condition, not a silent
// zero.
func ComputeRawBase(items []model.LineItem) (RawBase, error) {
	base := model.TaxableTotal(items)
	excluded := model.ExcludedTotal(items)

	if base.IsZero() && len(items) > 0 {
		return RawBase{}, fmt.Errorf("%w: %d items, all excluded", common.ErrNoTaxableAmount, len(items))
	}

	return RawBase{Base: base, Excluded: excluded}, nil
}
