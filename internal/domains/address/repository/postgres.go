package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	a "address-backend/internal/domains/address"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) a.Repository {
	return &postgresRepository{
		pool: pool,
	}
}

const rowColumns = `
    ad.address_id, ad.public_id, ad.house_name, ad.house_number,
    ad.address_line_1, ad.address_line_2, ad.address_line_3,
    ad.state_region_county, co.name, co.iso_code, ad.post_zip_code`

func scanRow(row pgx.Row, dest *a.Row) error {
	return row.Scan(
		&dest.AddressID, &dest.PublicID, &dest.HouseName, &dest.HouseNumber,
		&dest.AddressLine1, &dest.AddressLine2, &dest.AddressLine3,
		&dest.StateRegionCounty, &dest.Country, &dest.CountryCode, &dest.PostZipCode,
	)
}

// ListByOwner returns the owner's addresses joined with country data. No
// ordering guarantee.
func (r *postgresRepository) ListByOwner(ctx context.Context, publicID string) ([]a.Row, error) {
	query := `
    SELECT ` + rowColumns + `
    FROM address ad
    JOIN country co ON ad.country_id = co.id
    WHERE ad.public_id = $1
  `

	rows, err := r.pool.Query(ctx, query, publicID)
	if err != nil {
		return nil, a.NewStoreError(err)
	}
	defer rows.Close()

	var result []a.Row
	for rows.Next() {
		var row a.Row
		if err := scanRow(rows, &row); err != nil {
			return nil, a.NewStoreError(err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, a.NewStoreError(err)
	}

	return result, nil
}

// GetByAddressID is deliberately not owner-scoped; access level alone gates
// single-address reads.
func (r *postgresRepository) GetByAddressID(ctx context.Context, addressID string) (*a.Row, error) {
	query := `
    SELECT ` + rowColumns + `
    FROM address ad
    JOIN country co ON ad.country_id = co.id
    WHERE ad.address_id = $1
  `

	var row a.Row
	err := scanRow(r.pool.QueryRow(ctx, query, addressID), &row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, a.NewStoreError(err)
	}

	return &row, nil
}

// Create inserts the address inside a transaction so a constraint violation
// leaves nothing visible.
func (r *postgresRepository) Create(ctx context.Context, addr *a.Address) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return a.NewStoreError(err)
	}
	defer tx.Rollback(ctx)

	query := `
    INSERT INTO address
      (address_id, public_id, house_name, house_number, address_line_1,
       address_line_2, address_line_3, state_region_county, country_id,
       post_zip_code, created)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
    RETURNING id, created
  `

	err = tx.QueryRow(
		ctx, query,
		addr.AddressID, addr.PublicID, addr.HouseName, addr.HouseNumber,
		addr.AddressLine1, addr.AddressLine2, addr.AddressLine3,
		addr.StateRegionCounty, addr.CountryID, addr.PostZipCode,
	).Scan(&addr.ID, &addr.Created)
	if err != nil {
		return a.NewStoreError(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return a.NewStoreError(err)
	}

	return nil
}

// DeleteByAddressIDAndOwner removes at most one row; both the external id
// and the owner must match.
func (r *postgresRepository) DeleteByAddressIDAndOwner(ctx context.Context, addressID, publicID string) (int64, error) {
	query := `DELETE FROM address WHERE address_id = $1 AND public_id = $2`

	tag, err := r.pool.Exec(ctx, query, addressID, publicID)
	if err != nil {
		return 0, a.NewStoreError(err)
	}

	return tag.RowsAffected(), nil
}

// ListAllPaginated returns one 1-based page of every user's addresses plus
// the total row count.
func (r *postgresRepository) ListAllPaginated(ctx context.Context, page, pageSize int) ([]a.Row, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM address`).Scan(&total); err != nil {
		return nil, 0, a.NewStoreError(err)
	}

	query := `
    SELECT ` + rowColumns + `
    FROM address ad
    JOIN country co ON ad.country_id = co.id
    ORDER BY ad.id
    LIMIT $1 OFFSET $2
  `

	offset := (page - 1) * pageSize
	rows, err := r.pool.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, a.NewStoreError(err)
	}
	defer rows.Close()

	var result []a.Row
	for rows.Next() {
		var row a.Row
		if err := scanRow(rows, &row); err != nil {
			return nil, 0, a.NewStoreError(err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, a.NewStoreError(err)
	}

	return result, total, nil
}

func (r *postgresRepository) ListCountries(ctx context.Context) ([]a.Country, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, iso_code FROM country`)
	if err != nil {
		return nil, a.NewStoreError(err)
	}
	defer rows.Close()

	var countries []a.Country
	for rows.Next() {
		var c a.Country
		if err := rows.Scan(&c.ID, &c.Name, &c.ISOCode); err != nil {
			return nil, a.NewStoreError(err)
		}
		countries = append(countries, c)
	}
	if err := rows.Err(); err != nil {
		return nil, a.NewStoreError(err)
	}

	return countries, nil
}

// GetCountryByISO is case-exact; the column is varchar(3) so length
// exactness is carried by the schema.
func (r *postgresRepository) GetCountryByISO(ctx context.Context, iso string) (*a.Country, error) {
	var c a.Country
	err := r.pool.QueryRow(
		ctx, `SELECT id, name, iso_code FROM country WHERE iso_code = $1`, iso,
	).Scan(&c.ID, &c.Name, &c.ISOCode)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, a.NewStoreError(err)
	}

	return &c, nil
}
