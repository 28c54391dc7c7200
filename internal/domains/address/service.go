package address

import (
	"context"
)

// Service is the orchestration contract behind the HTTP handlers.
type Service interface {
	// ListForOwner returns the caller's addresses. An empty result is a
	// not-found domain error.
	ListForOwner(ctx context.Context, publicID string) ([]*Summary, error)

	// Get fetches one address by external id. Read access is gated by
	// access level only, not ownership.
	Get(ctx context.Context, addressID string) (*Detail, error)

	// Create validates the raw payload against the country and address
	// schemas, resolves the country, and persists the address. Returns
	// the generated external address id.
	Create(ctx context.Context, publicID string, payload map[string]interface{}) (string, error)

	// Delete removes the caller's address. A pair that matches nothing is
	// an ownership failure, not a not-found.
	Delete(ctx context.Context, addressID, publicID string) error

	// ListAll returns one admin page of every user's addresses plus the
	// total record count.
	ListAll(ctx context.Context, page, pageSize int) ([]*Summary, int, error)

	// Countries lists the country reference data.
	Countries(ctx context.Context) ([]*CountrySummary, error)
}
