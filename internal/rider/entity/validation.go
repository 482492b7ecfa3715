package entity

import (
	"github.com/shandysiswandi/gofood/internal/pkg/validator"
	"github.com/shandysiswandi/gofood/internal/pkg/valueobject"
)

const VehicleNumberMaxLen = 50

// ValidateRider runs every rider rule and returns all violations.
func ValidateRider(r *Rider) validator.Errors {
	errs := validator.NewErrors()
	if r == nil {
		errs.Add("Rider", "Rider is required")
		return errs
	}

	errs.Collect("Name", validator.CheckName("Name", r.Name, validator.PersonNameMaxLen))
	errs.Collect("Email", validator.CheckEmail("Email", r.Email))
	errs.Collect("Phone", validator.CheckPhone("Phone", r.Phone))
	errs.Collect("VehicleNumber", validator.CheckLength("VehicleNumber", r.VehicleNumber, VehicleNumberMaxLen, false))

	if r.CurrentLocation != nil {
		validator.CheckCoordinates(errs, "CurrentLocation", r.CurrentLocation.Lat, r.CurrentLocation.Lon)
	}

	return errs
}

// ValidateLocation checks a location update, where the location itself is mandatory.
func ValidateLocation(loc *valueobject.Location) validator.Errors {
	errs := validator.NewErrors()
	if loc == nil {
		errs.Add("CurrentLocation", "CurrentLocation is required")
		return errs
	}

	validator.CheckCoordinates(errs, "CurrentLocation", loc.Lat, loc.Lon)
	return errs
}
