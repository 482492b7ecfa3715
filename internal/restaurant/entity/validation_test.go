package entity

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shandysiswandi/gofood/internal/pkg/validator"
	"github.com/shandysiswandi/gofood/internal/pkg/valueobject"
)

func newAddressValidator(t *testing.T) *valueobject.AddressValidator {
	t.Helper()

	tags, err := validator.NewTagChecker()
	require.NoError(t, err)
	return valueobject.NewAddressValidator(tags)
}

func validRestaurant() *Restaurant {
	return &Restaurant{
		Name:                          "Warung Bu Tini",
		Phone:                         "+62 21 555-0100",
		DeliveryRadiusKm:              7.5,
		AveragePreparationTimeMinutes: 20,
		Rating:                        4.6,
		Address: &valueobject.Address{
			Street:      "Jl. Kemang Raya 10",
			City:        "Jakarta",
			PostalCode:  "12730",
			CountryCode: "ID",
			Location:    &valueobject.Location{Lat: -6.26, Lon: 106.81},
		},
		Menu: []MenuItem{
			{Name: "Nasi Goreng", Price: 25000, PreparationTimeMinutes: 15},
			{Name: "Es Teh", Price: 0, PreparationTimeMinutes: 5},
		},
	}
}

func TestValidateRestaurant_Valid(t *testing.T) {
	errs := ValidateRestaurant(validRestaurant(), newAddressValidator(t))

	require.NotNil(t, errs)
	assert.True(t, errs.IsEmpty(), errs.Error())
}

func TestValidateRestaurant_Nil(t *testing.T) {
	errs := ValidateRestaurant(nil, newAddressValidator(t))

	assert.Equal(t, validator.Errors{"Restaurant": {"Restaurant is required"}}, errs)
}

func TestValidateRestaurant_WithoutAddressValidator(t *testing.T) {
	assert.NotPanics(t, func() {
		assert.True(t, ValidateRestaurant(validRestaurant(), nil).IsEmpty())
	})

	r := validRestaurant()
	r.Address = nil
	assert.Equal(t, []string{"Address is required"}, ValidateRestaurant(r, nil).Get("Address"))

	r = validRestaurant()
	r.Address.Street = " "
	r.Address.CountryCode = "Indonesia"
	var typedNil *valueobject.AddressValidator
	errs := ValidateRestaurant(r, typedNil)
	assert.Equal(t, []string{"Address.Street"}, errs.Fields())
}

func TestValidateRestaurant_Rules(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *Restaurant)
		field   string
		wantMsg string
	}{
		{
			name:    "name blank",
			mutate:  func(r *Restaurant) { r.Name = "   " },
			field:   "Name",
			wantMsg: "Name is required",
		},
		{
			name:    "name too short",
			mutate:  func(r *Restaurant) { r.Name = "W" },
			field:   "Name",
			wantMsg: "Name must be at least 2 characters",
		},
		{
			name:    "name too long",
			mutate:  func(r *Restaurant) { r.Name = strings.Repeat("W", 201) },
			field:   "Name",
			wantMsg: "Name must not exceed 200 characters",
		},
		{
			name:    "phone invalid",
			mutate:  func(r *Restaurant) { r.Phone = "call me" },
			field:   "Phone",
			wantMsg: "Phone may only contain digits, spaces, hyphens, parentheses and a leading +",
		},
		{
			name:    "radius zero",
			mutate:  func(r *Restaurant) { r.DeliveryRadiusKm = 0 },
			field:   "DeliveryRadiusKm",
			wantMsg: "DeliveryRadiusKm must be greater than 0",
		},
		{
			name:    "radius too far",
			mutate:  func(r *Restaurant) { r.DeliveryRadiusKm = 51 },
			field:   "DeliveryRadiusKm",
			wantMsg: "DeliveryRadiusKm cannot exceed 50 km",
		},
		{
			name:    "average preparation too quick",
			mutate:  func(r *Restaurant) { r.AveragePreparationTimeMinutes = 4 },
			field:   "AveragePreparationTimeMinutes",
			wantMsg: "AveragePreparationTimeMinutes must be between 5 and 120 (got 4)",
		},
		{
			name:    "rating too high",
			mutate:  func(r *Restaurant) { r.Rating = 5.1 },
			field:   "Rating",
			wantMsg: "Rating must be between 0 and 5 (got 5.1)",
		},
		{
			name:    "address missing",
			mutate:  func(r *Restaurant) { r.Address = nil },
			field:   "Address",
			wantMsg: "Address is required",
		},
		{
			name:    "address street missing",
			mutate:  func(r *Restaurant) { r.Address.Street = "" },
			field:   "Address.Street",
			wantMsg: "Address.Street is required",
		},
	}

	addr := newAddressValidator(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRestaurant()
			tt.mutate(r)

			errs := ValidateRestaurant(r, addr)

			assert.Equal(t, []string{tt.field}, errs.Fields())
			assert.Equal(t, []string{tt.wantMsg}, errs.Get(tt.field))
		})
	}
}

func TestValidateRestaurant_RadiusBoundaries(t *testing.T) {
	addr := newAddressValidator(t)

	for _, radius := range []float64{0.1, 25, 50} {
		r := validRestaurant()
		r.DeliveryRadiusKm = radius
		assert.False(t, ValidateRestaurant(r, addr).Has("DeliveryRadiusKm"), "radius %v", radius)
	}
}

func TestValidateRestaurant_EmptyMenuIsValid(t *testing.T) {
	addr := newAddressValidator(t)

	r := validRestaurant()
	r.Menu = nil
	assert.True(t, ValidateRestaurant(r, addr).IsEmpty())

	r.Menu = []MenuItem{}
	assert.True(t, ValidateRestaurant(r, addr).IsEmpty())
}

func TestValidateRestaurant_MenuItemChecksAreIndependent(t *testing.T) {
	r := validRestaurant()
	r.Menu = []MenuItem{
		{Name: "Sate Ayam", Price: 30000, PreparationTimeMinutes: 20},
		{Name: "", Price: -1, PreparationTimeMinutes: 3},
		{Name: "Slow Rendang", Price: 999999999, PreparationTimeMinutes: 181},
	}

	errs := ValidateRestaurant(r, newAddressValidator(t))

	assert.Equal(t, []string{
		"Menu[1].Name",
		"Menu[1].PreparationTimeMinutes",
		"Menu[1].Price",
		"Menu[2].PreparationTimeMinutes",
	}, errs.Fields())
	assert.Equal(t, 4, errs.Count())
	assert.Equal(t, "Menu[1].Name is required", errs.First("Menu[1].Name"))
	assert.Equal(t, "Menu[1].Price cannot be negative", errs.First("Menu[1].Price"))
	assert.Equal(t, "Menu[1].PreparationTimeMinutes must be between 5 and 180 (got 3)", errs.First("Menu[1].PreparationTimeMinutes"))
}

func TestValidateRestaurant_FullReport(t *testing.T) {
	r := &Restaurant{
		Name:                          "",
		Phone:                         "abc",
		DeliveryRadiusKm:              -1,
		AveragePreparationTimeMinutes: 0,
		Rating:                        -1,
		Menu:                          []MenuItem{{Name: "", Price: -1, PreparationTimeMinutes: 3}},
	}

	errs := ValidateRestaurant(r, newAddressValidator(t))

	assert.Equal(t, []string{
		"Address",
		"AveragePreparationTimeMinutes",
		"DeliveryRadiusKm",
		"Menu[0].Name",
		"Menu[0].PreparationTimeMinutes",
		"Menu[0].Price",
		"Name",
		"Phone",
		"Rating",
	}, errs.Fields())
}

func TestValidateRestaurant_Idempotent(t *testing.T) {
	addr := newAddressValidator(t)
	r := validRestaurant()
	r.Name = "X"
	r.Menu[0].Price = -5

	assert.Equal(t, ValidateRestaurant(r, addr), ValidateRestaurant(r, addr))
}

func TestValidateRestaurant_Concurrent(t *testing.T) {
	addr := newAddressValidator(t)

	var wg sync.WaitGroup
	for i := range 32 {
		wg.Go(func() {
			r := validRestaurant()
			r.Rating = float64(i % 7)
			errs := ValidateRestaurant(r, addr)
			assert.Equal(t, i%7 > 5, errs.Has("Rating"))
		})
	}
	wg.Wait()
}
