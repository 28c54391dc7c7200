package address

import (
	"time"
)

// Country is a reference row. Rows are bulk-loaded administratively and
// never change through the public API.
type Country struct {
	ID      int32  `db:"id"`
	Name    string `db:"name"`
	ISOCode string `db:"iso_code"`
}

// Address is the persisted entity. ID is the surrogate storage key and is
// never exposed; AddressID is the externally visible identifier.
type Address struct {
	ID                int64     `db:"id"`
	AddressID         string    `db:"address_id"`
	PublicID          string    `db:"public_id"`
	HouseName         string    `db:"house_name"`
	HouseNumber       string    `db:"house_number"`
	AddressLine1      string    `db:"address_line_1"`
	AddressLine2      string    `db:"address_line_2"`
	AddressLine3      string    `db:"address_line_3"`
	StateRegionCounty string    `db:"state_region_county"`
	CountryID         int32     `db:"country_id"`
	PostZipCode       string    `db:"post_zip_code"`
	Created           time.Time `db:"created"`
}

// Row is an address joined with its country, as read back for API
// responses.
type Row struct {
	AddressID         string
	PublicID          string
	HouseName         string
	HouseNumber       string
	AddressLine1      string
	AddressLine2      string
	AddressLine3      string
	StateRegionCounty string
	Country           string
	CountryCode       string
	PostZipCode       string
}

// Detail is the single-address response body. The field set is an explicit
// allow-list: no address_id, no owner id, no storage key.
type Detail struct {
	HouseName         string `json:"house_name"`
	HouseNumber       string `json:"house_number"`
	AddressLine1      string `json:"address_line_1"`
	AddressLine2      string `json:"address_line_2"`
	AddressLine3      string `json:"address_line_3"`
	StateRegionCounty string `json:"state_region_county"`
	Country           string `json:"country"`
	CountryCode       string `json:"country_code"`
	PostZipCode       string `json:"post_zip_code"`
}

// Summary is the list/admin response body: Detail plus the external id.
type Summary struct {
	AddressID         string `json:"address_id"`
	HouseName         string `json:"house_name"`
	HouseNumber       string `json:"house_number"`
	AddressLine1      string `json:"address_line_1"`
	AddressLine2      string `json:"address_line_2"`
	AddressLine3      string `json:"address_line_3"`
	StateRegionCounty string `json:"state_region_county"`
	Country           string `json:"country"`
	CountryCode       string `json:"country_code"`
	PostZipCode       string `json:"post_zip_code"`
}

// CountrySummary is the countries listing body.
type CountrySummary struct {
	Name    string `json:"name"`
	ISOCode string `json:"iso_code"`
}

func (r *Row) ToDetail() *Detail {
	return &Detail{
		HouseName:         r.HouseName,
		HouseNumber:       r.HouseNumber,
		AddressLine1:      r.AddressLine1,
		AddressLine2:      r.AddressLine2,
		AddressLine3:      r.AddressLine3,
		StateRegionCounty: r.StateRegionCounty,
		Country:           r.Country,
		CountryCode:       r.CountryCode,
		PostZipCode:       r.PostZipCode,
	}
}

func (r *Row) ToSummary() *Summary {
	return &Summary{
		AddressID:         r.AddressID,
		HouseName:         r.HouseName,
		HouseNumber:       r.HouseNumber,
		AddressLine1:      r.AddressLine1,
		AddressLine2:      r.AddressLine2,
		AddressLine3:      r.AddressLine3,
		StateRegionCounty: r.StateRegionCounty,
		Country:           r.Country,
		CountryCode:       r.CountryCode,
		PostZipCode:       r.PostZipCode,
	}
}
