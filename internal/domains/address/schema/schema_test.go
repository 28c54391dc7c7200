package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAddressPayload() map[string]interface{} {
	return map[string]interface{}{
		"house_name":          "The Larches",
		"house_number":        "12",
		"address_line_1":      "Green Lane",
		"address_line_2":      "Little Bowden",
		"address_line_3":      "Market Harborough",
		"state_region_county": "Leicestershire",
		"post_zip_code":       "LE13 5WI",
	}
}

func TestCountrySchema(t *testing.T) {
	tests := []struct {
		name    string
		isoCode interface{}
		wantErr bool
	}{
		{"valid code", "GBR", false},
		{"valid non-uk code", "FRA", false},
		{"missing", nil, true},
		{"empty", "", true},
		{"lowercase", "gbr", true},
		{"too long", "TOOLONG", true},
		{"too short", "GB", true},
		{"not a string", 123, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := map[string]interface{}{CountryField: tt.isoCode}
			err := Country().Validate(payload)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUKPostcodes(t *testing.T) {
	schema := ForCountryCode(UKCountryCode)

	accepted := []string{"DE21 5EA", "DE215EA", "LE13 5WI", "SW9 4RF", "TR4 8DH", "M1 1AE"}
	for _, code := range accepted {
		t.Run("accepts "+code, func(t *testing.T) {
			payload := validAddressPayload()
			payload["post_zip_code"] = code
			assert.NoError(t, schema.Validate(payload))
		})
	}

	rejected := []string{"", "1234567890", "4LE5464 5£@£WI", "X999342", "DE"}
	for _, code := range rejected {
		t.Run("rejects "+code, func(t *testing.T) {
			payload := validAddressPayload()
			payload["post_zip_code"] = code
			assert.Error(t, schema.Validate(payload))
		})
	}
}

func TestPostcodeRequired(t *testing.T) {
	payload := validAddressPayload()
	delete(payload, "post_zip_code")

	err := ForCountryCode(UKCountryCode).Validate(payload)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "post_zip_code")
}

func TestDefaultSchemaPostcodes(t *testing.T) {
	schema := ForCountryCode("FRA")

	payload := validAddressPayload()
	payload["post_zip_code"] = "75008"
	assert.NoError(t, schema.Validate(payload))

	payload["post_zip_code"] = "750-08"
	assert.Error(t, schema.Validate(payload), "symbols are rejected by the default schema")

	payload["post_zip_code"] = "75008750087"
	assert.Error(t, schema.Validate(payload), "bounded length")
}

func TestSchemaSelection(t *testing.T) {
	assert.Equal(t, "address_gbr", ForCountryCode("GBR").Name)
	assert.Equal(t, "address_default", ForCountryCode("FRA").Name)
	assert.Equal(t, "address_default", ForCountryCode("").Name)
}

func TestClosedFieldSet(t *testing.T) {
	payload := validAddressPayload()
	payload["address_line_4"] = "Extra Address Line"

	err := ForCountryCode(UKCountryCode).Validate(payload)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "address_line_4")
	assert.Contains(t, err.Error(), "not allowed")
}

func TestHouseNameOrNumberRequired(t *testing.T) {
	schema := ForCountryCode(UKCountryCode)

	payload := validAddressPayload()
	delete(payload, "house_name")
	delete(payload, "house_number")
	assert.Error(t, schema.Validate(payload))

	payload = validAddressPayload()
	payload["house_name"] = ""
	payload["house_number"] = ""
	assert.Error(t, schema.Validate(payload))

	payload = validAddressPayload()
	delete(payload, "house_name")
	assert.NoError(t, schema.Validate(payload), "house_number alone is enough")

	payload = validAddressPayload()
	delete(payload, "house_number")
	assert.NoError(t, schema.Validate(payload), "house_name alone is enough")
}

func TestAddressLine1Required(t *testing.T) {
	payload := validAddressPayload()
	payload["address_line_1"] = ""

	err := ForCountryCode(UKCountryCode).Validate(payload)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "address_line_1")
}

func TestFirstViolationWins(t *testing.T) {
	// Two violations: address_line_1 empty and postcode invalid. The
	// schema declares address_line_1 before post_zip_code, so its message
	// is the one reported.
	payload := validAddressPayload()
	payload["address_line_1"] = ""
	payload["post_zip_code"] = "£££"

	err := ForCountryCode(UKCountryCode).Validate(payload)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "address_line_1")
	assert.NotContains(t, err.Error(), "post_zip_code")
}

func TestNonStringFieldRejected(t *testing.T) {
	payload := validAddressPayload()
	payload["house_number"] = 12

	assert.Error(t, ForCountryCode(UKCountryCode).Validate(payload))
}
