package address

import (
	"errors"
	"fmt"
)

// AddressError is the domain error carried between the store, the service
// and the handlers. Handlers translate codes into per-route HTTP statuses.
type AddressError struct {
	Code    string
	Message string
	Err     error
}

func (e *AddressError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AddressError) Unwrap() error {
	return e.Err
}

const (
	codeValidation    = "VALIDATION_FAILED"
	codeNotFound      = "ADDRESS_NOT_FOUND"
	codeNotOwned      = "ADDRESS_NOT_OWNED"
	codeStoreFailure  = "STORE_FAILURE"
	codeCountryLookup = "COUNTRY_NOT_FOUND"
)

// NewValidationError wraps a schema violation. detail is the validator's
// message, surfaced verbatim in the API error body.
func NewValidationError(detail string) *AddressError {
	return &AddressError{
		Code:    codeValidation,
		Message: detail,
	}
}

// NewCountryNotFound reports an iso_code with no matching country row.
// Treated as a validation failure at the API boundary.
func NewCountryNotFound(iso string) *AddressError {
	return &AddressError{
		Code:    codeCountryLookup,
		Message: fmt.Sprintf("country not found for iso code [%s]", iso),
	}
}

func NewNotFound(addressID string) *AddressError {
	return &AddressError{
		Code:    codeNotFound,
		Message: fmt.Sprintf("no addresses found for supplied id [%s]", addressID),
	}
}

// NewNoAddresses reports an empty owner-scoped listing.
func NewNoAddresses() *AddressError {
	return &AddressError{
		Code:    codeNotFound,
		Message: "no addresses found for user",
	}
}

// NewNotOwned reports a delete whose address_id/public_id pair matched
// nothing. Deliberately indistinguishable from "does not exist" so callers
// cannot probe for other users' addresses.
func NewNotOwned() *AddressError {
	return &AddressError{
		Code:    codeNotOwned,
		Message: "address not deleted",
	}
}

// NewStoreError wraps an unexpected storage failure. The underlying error
// is kept for logs only and never leaks into a response body.
func NewStoreError(err error) *AddressError {
	return &AddressError{
		Code:    codeStoreFailure,
		Message: "sorry, we couldn't complete your request",
		Err:     err,
	}
}

func IsValidation(err error) bool {
	var addrErr *AddressError
	return errors.As(err, &addrErr) &&
		(addrErr.Code == codeValidation || addrErr.Code == codeCountryLookup)
}

func IsNotFound(err error) bool {
	var addrErr *AddressError
	return errors.As(err, &addrErr) && addrErr.Code == codeNotFound
}

func IsNotOwned(err error) bool {
	var addrErr *AddressError
	return errors.As(err, &addrErr) && addrErr.Code == codeNotOwned
}

func IsStoreFailure(err error) bool {
	var addrErr *AddressError
	return errors.As(err, &addrErr) && addrErr.Code == codeStoreFailure
}

// ErrorMessage extracts the client-facing message from a domain error.
func ErrorMessage(err error) string {
	var addrErr *AddressError
	if errors.As(err, &addrErr) {
		return addrErr.Message
	}
	return err.Error()
}
