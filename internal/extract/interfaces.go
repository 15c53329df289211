// Package extract parses free-text transaction descriptions into priced line
// items.
package extract

import (
	"context"

	"github.com/wirz-id/wirz/internal/model"
)

// Extractor defines the contract for turning a transaction description into
// line items. Implementations must be deterministic for a fixed input, or
// wrap a deterministic primary (see WithFallback).
type Extractor interface {
	Extract(ctx context.Context, description string) ([]model.LineItem, error)
}
