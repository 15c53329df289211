package model

import "github.com/shopspring/decimal"

// LineItem is a single priced component extracted from a transaction
// description. Non-taxable items (material costs, reimbursements,
// disbursements) carry Taxable=false and never enter the tax base.
type LineItem struct {
	Label   string
	Amount  decimal.Decimal
	Taxable bool
}

// TaxableTotal sums the taxable item amounts.
func TaxableTotal(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		if item.Taxable {
			total = total.Add(item.Amount)
		}
	}
	return total
}

// ExcludedTotal sums the non-taxable item amounts.
func ExcludedTotal(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		if !item.Taxable {
			total = total.Add(item.Amount)
		}
	}
	return total
}
