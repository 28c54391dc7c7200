package service

import (
	"context"

	"github.com/google/uuid"

	a "address-backend/internal/domains/address"
	"address-backend/internal/domains/address/schema"
)

type addressService struct {
	repo a.Repository
}

func NewAddressService(repo a.Repository) a.Service {
	return &addressService{
		repo: repo,
	}
}

func (s *addressService) ListForOwner(ctx context.Context, publicID string) ([]*a.Summary, error) {
	rows, err := s.repo.ListByOwner(ctx, publicID)
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, a.NewNoAddresses()
	}

	summaries := make([]*a.Summary, len(rows))
	for i := range rows {
		summaries[i] = rows[i].ToSummary()
	}

	return summaries, nil
}

func (s *addressService) Get(ctx context.Context, addressID string) (*a.Detail, error) {
	row, err := s.repo.GetByAddressID(ctx, addressID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, a.NewNotFound(addressID)
	}

	return row.ToDetail(), nil
}

// Create runs the two-stage schema validation, resolves the country and
// persists the address. The country code is consumed from the payload
// before the address fields are checked, so the address schema never sees
// it.
func (s *addressService) Create(ctx context.Context, publicID string, payload map[string]interface{}) (string, error) {
	countryPayload := map[string]interface{}{
		schema.CountryField: payload[schema.CountryField],
	}
	if err := schema.Country().Validate(countryPayload); err != nil {
		return "", a.NewValidationError(err.Error())
	}

	iso, _ := payload[schema.CountryField].(string)

	fields := make(map[string]interface{}, len(payload))
	for k, v := range payload {
		if k != schema.CountryField {
			fields[k] = v
		}
	}
	if err := schema.ForCountryCode(iso).Validate(fields); err != nil {
		return "", a.NewValidationError(err.Error())
	}

	country, err := s.repo.GetCountryByISO(ctx, iso)
	if err != nil {
		return "", err
	}
	if country == nil {
		return "", a.NewCountryNotFound(iso)
	}

	addr := &a.Address{
		AddressID:         uuid.New().String(),
		PublicID:          publicID,
		HouseName:         stringField(fields, "house_name"),
		HouseNumber:       stringField(fields, "house_number"),
		AddressLine1:      stringField(fields, "address_line_1"),
		AddressLine2:      stringField(fields, "address_line_2"),
		AddressLine3:      stringField(fields, "address_line_3"),
		StateRegionCounty: stringField(fields, "state_region_county"),
		CountryID:         country.ID,
		PostZipCode:       stringField(fields, "post_zip_code"),
	}

	if err := s.repo.Create(ctx, addr); err != nil {
		return "", err
	}

	return addr.AddressID, nil
}

func (s *addressService) Delete(ctx context.Context, addressID, publicID string) error {
	deleted, err := s.repo.DeleteByAddressIDAndOwner(ctx, addressID, publicID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return a.NewNotOwned()
	}
	return nil
}

func (s *addressService) ListAll(ctx context.Context, page, pageSize int) ([]*a.Summary, int, error) {
	if page < 1 {
		page = 1
	}

	rows, total, err := s.repo.ListAllPaginated(ctx, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	if len(rows) == 0 {
		return nil, total, a.NewNoAddresses()
	}

	summaries := make([]*a.Summary, len(rows))
	for i := range rows {
		summaries[i] = rows[i].ToSummary()
	}

	return summaries, total, nil
}

func (s *addressService) Countries(ctx context.Context) ([]*a.CountrySummary, error) {
	countries, err := s.repo.ListCountries(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]*a.CountrySummary, len(countries))
	for i, c := range countries {
		summaries[i] = &a.CountrySummary{Name: c.Name, ISOCode: c.ISOCode}
	}

	return summaries, nil
}

func stringField(payload map[string]interface{}, key string) string {
	s, _ := payload[key].(string)
	return s
}
