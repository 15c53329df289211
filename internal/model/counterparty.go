// Package model defines the core domain models used throughout the application.
package model

import "fmt"

// CounterpartyType identifies the legal form of the party receiving payment.
type CounterpartyType string

// Counterparty type constants.
const (
	CounterpartyIndividual CounterpartyType = "Individual"
	CounterpartyEntity     CounterpartyType = "Entity"
)

// ParseCounterpartyType converts a wire value into a CounterpartyType.
// Localized display labels from older clients are accepted as aliases.
func ParseCounterpartyType(s string) (CounterpartyType, error) {
	switch s {
	case string(CounterpartyIndividual), "Orang Pribadi":
		return CounterpartyIndividual, nil
	case string(CounterpartyEntity), "Badan Hukum":
		return CounterpartyEntity, nil
	default:
		return "", fmt.Errorf("unknown counterparty type %q", s)
	}
}

// DisplayName returns the localized label for the counterparty type.
func (t CounterpartyType) DisplayName(lang Language) string {
	switch t {
	case CounterpartyIndividual:
		if lang == LanguageID {
			return "Orang Pribadi"
		}
		return "Individual"
	case CounterpartyEntity:
		if lang == LanguageID {
			return "Badan Hukum"
		}
		return "Legal Entity"
	default:
		return string(t)
	}
}

// CounterpartyProfile describes the party receiving payment. Immutable,
// supplied per request.
type CounterpartyProfile struct {
	Type     CounterpartyType
	HasTaxID bool
}

// Language selects the locale for explanations and display labels.
type Language string

// Supported languages.
const (
	LanguageEN Language = "en"
	LanguageID Language = "id"
)

// ParseLanguage converts a wire value into a Language.
func ParseLanguage(s string) (Language, error) {
	switch s {
	case string(LanguageEN):
		return LanguageEN, nil
	case string(LanguageID):
		return LanguageID, nil
	default:
		return "", fmt.Errorf("unsupported language %q", s)
	}
}
