package address

import (
	"context"
)

// Repository is the persistence contract. Every operation is scoped by the
// filters its caller supplies; nothing exposes cross-user data implicitly.
type Repository interface {
	// ListByOwner returns the owner's addresses joined with country data.
	// An empty result is not an error here; the service decides what an
	// empty listing means.
	ListByOwner(ctx context.Context, publicID string) ([]Row, error)

	// GetByAddressID looks up a single address by its external id, joined
	// with country data. Not owner-scoped: read access is controlled by
	// access level alone. Returns nil when nothing matches.
	GetByAddressID(ctx context.Context, addressID string) (*Row, error)

	// Create persists a new address inside a transaction; either the whole
	// row commits or nothing is visible.
	Create(ctx context.Context, addr *Address) error

	// DeleteByAddressIDAndOwner removes the address only when both the
	// external id and the owner match, returning the number of rows
	// deleted (0 or 1).
	DeleteByAddressIDAndOwner(ctx context.Context, addressID, publicID string) (int64, error)

	// ListAllPaginated returns one page (1-based) of all addresses plus
	// the total row count. A page beyond range yields an empty slice with
	// a valid total.
	ListAllPaginated(ctx context.Context, page, pageSize int) ([]Row, int, error)

	// ListCountries returns every country row, unfiltered.
	ListCountries(ctx context.Context) ([]Country, error)

	// GetCountryByISO resolves a 3-letter iso code, case- and
	// length-exact. Returns nil when unknown.
	GetCountryByISO(ctx context.Context, iso string) (*Country, error)
}
