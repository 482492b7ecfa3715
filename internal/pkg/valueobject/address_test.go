package valueobject

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shandysiswandi/gofood/internal/pkg/validator"
)

func newAddressValidator(t *testing.T) *AddressValidator {
	t.Helper()

	tags, err := validator.NewTagChecker()
	require.NoError(t, err)

	return NewAddressValidator(tags)
}

func validAddress() *Address {
	return &Address{
		Street:      "Jl. Sudirman No. 1",
		City:        "Jakarta",
		PostalCode:  "10220",
		CountryCode: "ID",
		Location:    &Location{Lat: -6.2, Lon: 106.8},
	}
}

func TestAddressValidator_Validate(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(a *Address)
		wantFields []string
	}{
		{
			name:       "valid",
			mutate:     func(*Address) {},
			wantFields: []string{},
		},
		{
			name: "optional fields blank",
			mutate: func(a *Address) {
				a.PostalCode = ""
				a.CountryCode = " "
				a.Location = nil
			},
			wantFields: []string{},
		},
		{
			name:       "street required",
			mutate:     func(a *Address) { a.Street = "  " },
			wantFields: []string{"Address.Street"},
		},
		{
			name:       "city too long",
			mutate:     func(a *Address) { a.City = strings.Repeat("c", 101) },
			wantFields: []string{"Address.City"},
		},
		{
			name:       "postal code too long",
			mutate:     func(a *Address) { a.PostalCode = strings.Repeat("1", 21) },
			wantFields: []string{"Address.PostalCode"},
		},
		{
			name:       "postal code bad characters",
			mutate:     func(a *Address) { a.PostalCode = "10#20" },
			wantFields: []string{"Address.PostalCode"},
		},
		{
			name:       "country code unknown",
			mutate:     func(a *Address) { a.CountryCode = "XX" },
			wantFields: []string{"Address.CountryCode"},
		},
		{
			name:       "location out of range",
			mutate:     func(a *Address) { a.Location = &Location{Lat: 91, Lon: 181} },
			wantFields: []string{"Address.Location.Lat", "Address.Location.Lon"},
		},
		{
			name: "everything wrong at once",
			mutate: func(a *Address) {
				a.Street = ""
				a.City = ""
				a.CountryCode = "Indonesia"
			},
			wantFields: []string{"Address.City", "Address.CountryCode", "Address.Street"},
		},
	}

	v := newAddressValidator(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := validAddress()
			tt.mutate(addr)

			errs := validator.NewErrors()
			v.Validate(addr, errs, "Address")

			assert.Equal(t, tt.wantFields, errs.Fields())
		})
	}
}

func TestAddressValidator_Nil(t *testing.T) {
	v := newAddressValidator(t)

	errs := validator.NewErrors()
	v.Validate(nil, errs, "Address")

	assert.Equal(t, []string{"Address is required"}, errs.Get("Address"))
	assert.Equal(t, 1, errs.Count())
}

func TestAddressValidator_Messages(t *testing.T) {
	v := newAddressValidator(t)

	errs := validator.NewErrors()
	v.Validate(&Address{City: "Bandung"}, errs, "Address")

	assert.Equal(t, "Address.Street is required", errs.First("Address.Street"))
	assert.False(t, errs.Has("Address.City"))
}

func TestAddressValidator_CountryCodeCase(t *testing.T) {
	v := newAddressValidator(t)

	for _, code := range []string{"id", " sg ", "Gb"} {
		addr := validAddress()
		addr.CountryCode = code

		errs := validator.NewErrors()
		v.Validate(addr, errs, "Address")
		assert.True(t, errs.IsEmpty(), "country code %q", code)
	}

	addr := validAddress()
	addr.CountryCode = "zz"
	errs := validator.NewErrors()
	v.Validate(addr, errs, "Address")
	assert.Equal(t,
		[]string{"Address.CountryCode must be a valid ISO 3166-1 alpha-2 country code"},
		errs.Get("Address.CountryCode"),
	)
}

func TestNormalizeCountryCode(t *testing.T) {
	assert.Equal(t, "ID", NormalizeCountryCode("  id "))
	assert.Equal(t, "", NormalizeCountryCode("   "))
}

func TestAddress_SQLRoundTrip(t *testing.T) {
	in := *validAddress()

	raw, err := in.Value()
	require.NoError(t, err)

	var out Address
	require.NoError(t, out.Scan(raw))
	assert.Equal(t, in, out)

	assert.ErrorIs(t, out.Scan(42), ErrScanValueNotBytes)
}
