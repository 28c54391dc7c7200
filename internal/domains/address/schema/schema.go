// Package schema declares the structural rules address payloads must meet
// and a small generic interpreter for them. Schemas are data: an ordered
// field list with rules per field, a closed allowed-field set, and optional
// cross-field checks. Validation reports the first violation it finds.
package schema

import (
	"fmt"
	"regexp"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// UKCountryCode selects the UK schema variant.
const UKCountryCode = "GBR"

// CountryField is the payload key consumed for schema selection before the
// remaining address fields are validated.
const CountryField = "iso_code"

var (
	isoCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

	// Default postcode rule: permissive but bounded. Alphanumerics and
	// spaces only; length bounds carried by a separate rule.
	postcodePattern = regexp.MustCompile(`^[A-Za-z0-9 ]+$`)

	// UK postcodes: area letters, district, optional space, sector digit,
	// unit letters.
	ukPostcodePattern = regexp.MustCompile(`^[A-Za-z]{1,2}[0-9][0-9A-Za-z]? ?[0-9][A-Za-z]{2}$`)
)

// Error is a schema violation with a message usable directly in an API
// error response.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Field binds a payload key to its declarative rules. Rules run in order;
// the first failing rule decides the reported message.
type Field struct {
	Name  string
	Rules []validation.Rule
}

// CrossCheck validates a constraint spanning multiple fields. It runs only
// after every per-field rule has passed.
type CrossCheck func(payload map[string]interface{}) *Error

// Schema is a closed, ordered field set plus cross-field checks.
type Schema struct {
	Name        string
	Fields      []Field
	CrossChecks []CrossCheck
}

// Validate checks payload against the schema and returns the first
// violation: unknown fields first (lexicographic for determinism), then
// per-field rules in declaration order, then cross-field checks.
func (s *Schema) Validate(payload map[string]interface{}) error {
	allowed := make(map[string]bool, len(s.Fields))
	for _, f := range s.Fields {
		allowed[f.Name] = true
	}

	var unknown []string
	for key := range payload {
		if !allowed[key] {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return &Error{Field: unknown[0], Message: "field is not allowed"}
	}

	for _, f := range s.Fields {
		if err := validation.Validate(payload[f.Name], f.Rules...); err != nil {
			return &Error{Field: f.Name, Message: err.Error()}
		}
	}

	for _, check := range s.CrossChecks {
		if err := check(payload); err != nil {
			return err
		}
	}

	return nil
}

// Country validates the country reference of an address submission. A
// missing country code is itself a violation.
func Country() *Schema {
	return &Schema{
		Name: "country",
		Fields: []Field{
			{Name: CountryField, Rules: []validation.Rule{
				validation.Required.Error("is required"),
				validation.Match(isoCodePattern).Error("must be a 3-letter uppercase iso code"),
			}},
		},
	}
}

// ForCountryCode selects the address schema variant: the UK one for GBR,
// the default otherwise. The returned schema expects the country code to
// already be consumed from the payload.
func ForCountryCode(iso string) *Schema {
	if iso == UKCountryCode {
		return addressSchema("address_gbr", []validation.Rule{
			validation.Required.Error("is required"),
			validation.Length(5, 8).Error("must be between 5 and 8 characters"),
			validation.Match(ukPostcodePattern).Error("is not a valid UK postcode"),
		})
	}
	return addressSchema("address_default", []validation.Rule{
		validation.Required.Error("is required"),
		validation.Length(3, 10).Error("must be between 3 and 10 characters"),
		validation.Match(postcodePattern).Error("may only contain letters, digits and spaces"),
	})
}

func addressSchema(name string, postcodeRules []validation.Rule) *Schema {
	return &Schema{
		Name: name,
		Fields: []Field{
			{Name: "house_name", Rules: []validation.Rule{
				validation.Length(1, 50).Error("must be at most 50 characters"),
			}},
			{Name: "house_number", Rules: []validation.Rule{
				validation.Length(1, 50).Error("must be at most 50 characters"),
			}},
			{Name: "address_line_1", Rules: []validation.Rule{
				validation.Required.Error("is required"),
				validation.Length(1, 150).Error("must be at most 150 characters"),
			}},
			{Name: "address_line_2", Rules: []validation.Rule{
				validation.Length(1, 150).Error("must be at most 150 characters"),
			}},
			{Name: "address_line_3", Rules: []validation.Rule{
				validation.Length(1, 150).Error("must be at most 150 characters"),
			}},
			{Name: "state_region_county", Rules: []validation.Rule{
				validation.Length(1, 150).Error("must be at most 150 characters"),
			}},
			{Name: "post_zip_code", Rules: postcodeRules},
		},
		CrossChecks: []CrossCheck{requireHouseNameOrNumber},
	}
}

func requireHouseNameOrNumber(payload map[string]interface{}) *Error {
	if nonEmptyString(payload["house_name"]) || nonEmptyString(payload["house_number"]) {
		return nil
	}
	return &Error{Message: "one of house_name or house_number must be provided"}
}

func nonEmptyString(v interface{}) bool {
	s, ok := v.(string)
	return ok && s != ""
}
