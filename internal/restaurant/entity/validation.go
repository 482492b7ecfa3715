package entity

import (
	"github.com/shandysiswandi/gofood/internal/pkg/validator"
	"github.com/shandysiswandi/gofood/internal/pkg/valueobject"
)

const (
	DeliveryRadiusMaxKm = 50.0

	AveragePreparationMinMinutes = 5
	AveragePreparationMaxMinutes = 120

	RatingMin = 0.0
	RatingMax = 5.0

	MenuItemPreparationMinMinutes = 5
	MenuItemPreparationMaxMinutes = 180
)

// AddressValidator writes address violations into errs under prefix.
type AddressValidator interface {
	Validate(addr *valueobject.Address, errs validator.Errors, prefix string)
}

// ValidateRestaurant runs every restaurant rule and returns all violations.
// An empty result means the restaurant is valid. A nil addr falls back to the
// structural address rules only.
func ValidateRestaurant(r *Restaurant, addr AddressValidator) validator.Errors {
	if addr == nil {
		addr = valueobject.NewAddressValidator(nil)
	}

	errs := validator.NewErrors()
	if r == nil {
		errs.Add("Restaurant", "Restaurant is required")
		return errs
	}

	errs.Collect("Name", validator.CheckName("Name", r.Name, validator.RestaurantNameMaxLen))
	errs.Collect("Phone", validator.CheckPhone("Phone", r.Phone))
	errs.Collect("DeliveryRadiusKm",
		validator.CheckPositiveMax("DeliveryRadiusKm", r.DeliveryRadiusKm, DeliveryRadiusMaxKm, "km"))
	errs.Collect("AveragePreparationTimeMinutes",
		validator.CheckRange("AveragePreparationTimeMinutes", r.AveragePreparationTimeMinutes,
			AveragePreparationMinMinutes, AveragePreparationMaxMinutes))
	errs.Collect("Rating", validator.CheckRange("Rating", r.Rating, RatingMin, RatingMax))

	addr.Validate(r.Address, errs, "Address")

	for i, item := range r.Menu {
		validateMenuItem(errs, validator.Index("Menu", i), item)
	}

	return errs
}

// Menu items are loosely validated: no name length or price ceiling.
func validateMenuItem(errs validator.Errors, prefix string, item MenuItem) {
	name := validator.Path(prefix, "Name")
	price := validator.Path(prefix, "Price")
	prep := validator.Path(prefix, "PreparationTimeMinutes")

	errs.Collect(name, validator.CheckRequired(name, item.Name))
	errs.Collect(price, validator.CheckNonNegative(price, item.Price))
	errs.Collect(prep, validator.CheckRange(prep, item.PreparationTimeMinutes,
		MenuItemPreparationMinMinutes, MenuItemPreparationMaxMinutes))
}
