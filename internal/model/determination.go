package model

import "github.com/shopspring/decimal"

// TaxDetermination is the result of a single withholding-tax determination.
// TaxAmount is always derived from TaxBase and RatePercentage, never chosen
// independently.
type TaxDetermination struct {
	TaxType        string
	RatePercentage decimal.Decimal
	TaxBase        decimal.Decimal
	TaxAmount      decimal.Decimal
	Explanation    string
}

// FormData is the request payload consumed by the engine, mirroring the
// fields the presentation layer collects.
type FormData struct {
	CounterpartyType string `json:"counterpartyType"`
	HasTaxID         bool   `json:"hasTaxId"`
	Description      string `json:"description"`
	GrossUp          bool   `json:"grossUp"`
}
