package valueobject

import (
	"database/sql/driver"
	"encoding/json"
	"strings"

	"github.com/shandysiswandi/gofood/internal/pkg/validator"
)

const (
	StreetMaxLen     = 200
	CityMaxLen       = 100
	PostalCodeMaxLen = 20
)

// Address is a postal address with an optional geographic pin.
type Address struct {
	Street      string    `json:"street"`
	City        string    `json:"city"`
	PostalCode  string    `json:"postal_code"`
	CountryCode string    `json:"country_code"`
	Location    *Location `json:"location,omitempty"`
}

// Value implements driver.Valuer for Address.
func (a Address) Value() (driver.Value, error) {
	return json.Marshal(a)
}

// Scan implements sql.Scanner for Address.
func (a *Address) Scan(value any) error {
	return scanJSON(value, a)
}

// AddressValidator applies the fixed address rules into a caller-owned
// accumulator.
type AddressValidator struct {
	tags *validator.TagChecker
}

// NormalizeCountryCode trims and uppercases an ISO 3166-1 alpha-2 code.
func NormalizeCountryCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// NewAddressValidator returns an AddressValidator backed by tags. With nil
// tags the postal code pattern and country registry checks are skipped.
func NewAddressValidator(tags *validator.TagChecker) *AddressValidator {
	return &AddressValidator{tags: tags}
}

// Validate records every address violation in errs under prefix. A nil
// address is reported once under prefix itself.
func (v *AddressValidator) Validate(addr *Address, errs validator.Errors, prefix string) {
	if addr == nil {
		errs.Add(prefix, "Address is required")
		return
	}

	var tags *validator.TagChecker
	if v != nil {
		tags = v.tags
	}

	errs.Collect(validator.Path(prefix, "Street"),
		validator.CheckLength(validator.Path(prefix, "Street"), addr.Street, StreetMaxLen, true))
	errs.Collect(validator.Path(prefix, "City"),
		validator.CheckLength(validator.Path(prefix, "City"), addr.City, CityMaxLen, true))

	postal := validator.Path(prefix, "PostalCode")
	if msg := validator.CheckLength(postal, addr.PostalCode, PostalCodeMaxLen, false); msg != "" {
		errs.Add(postal, msg)
	} else if tags != nil && !validator.IsBlank(addr.PostalCode) {
		errs.Collect(postal, tags.Var(postal, strings.TrimSpace(addr.PostalCode), "postalcode"))
	}

	// Country codes are case-insensitive; the registry lists them uppercase.
	if tags != nil && !validator.IsBlank(addr.CountryCode) {
		country := validator.Path(prefix, "CountryCode")
		errs.Collect(country, tags.Var(country, NormalizeCountryCode(addr.CountryCode), "iso3166_1_alpha2"))
	}

	if addr.Location != nil {
		validator.CheckCoordinates(errs, validator.Path(prefix, "Location"), addr.Location.Lat, addr.Location.Lon)
	}
}
