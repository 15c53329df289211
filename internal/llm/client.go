// Package llm provides the optional AI-assisted extraction collaborator.
// It is never the sole extraction path: the deterministic extractor remains
// primary, and this client is consulted only when rule-based extraction
// cannot isolate any amount.
package llm

import (
	"context"
)

// Client defines the interface for LLM providers.
type Client interface {
	ExtractLineItems(ctx context.Context, description string) (ExtractionResponse, error)
}

// ExtractionResponse contains the LLM's line-item extraction result.
type ExtractionResponse struct {
	Items []ExtractedItem
}

// ExtractedItem is a single item returned by the provider. Amount is kept as
// a string so the caller controls decimal parsing.
type ExtractedItem struct {
	Label   string `json:"label"`
	Amount  string `json:"amount"`
	Taxable bool   `json:"taxable"`
}

// Config holds LLM provider configuration.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
}
