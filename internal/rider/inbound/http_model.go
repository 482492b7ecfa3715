package inbound

import (
	"net/http"
	"time"

	"github.com/samber/lo"
	"github.com/shandysiswandi/gofood/internal/pkg/validator"
	"github.com/shandysiswandi/gofood/internal/pkg/valueobject"
	"github.com/shandysiswandi/gofood/internal/rider/entity"
)

type LocationRequest struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func (l *LocationRequest) toValueObject() *valueobject.Location {
	if l == nil {
		return nil
	}
	return &valueobject.Location{Lat: l.Lat, Lon: l.Lon}
}

type RiderRequest struct {
	Name            string           `json:"name"`
	Email           string           `json:"email"`
	Phone           string           `json:"phone"`
	VehicleNumber   string           `json:"vehicle_number"`
	CurrentLocation *LocationRequest `json:"current_location"`
}

func (r RiderRequest) ToEntity() *entity.Rider {
	return &entity.Rider{
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		VehicleNumber:   r.VehicleNumber,
		CurrentLocation: r.CurrentLocation.toValueObject(),
	}
}

type UpdateLocationRequest struct {
	CurrentLocation *LocationRequest `json:"current_location"`
}

// ---- //

type ValidationResponse struct {
	Valid      bool                `json:"valid"`
	ErrorCount int                 `json:"error_count"`
	Fields     []string            `json:"fields"`
	Errors     map[string][]string `json:"errors"`
}

func NewValidationResponse(errs validator.Errors) ValidationResponse {
	errs = lo.Ternary(errs == nil, validator.NewErrors(), errs)

	return ValidationResponse{
		Valid:      errs.IsEmpty(),
		ErrorCount: errs.Count(),
		Fields:     errs.Fields(),
		Errors:     errs.Values(),
	}
}

func (v ValidationResponse) Message() string {
	return lo.Ternary(v.Valid, "Rider is valid", "Rider has validation errors")
}

type LocationResponse struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type RiderResponse struct {
	ID              int64             `json:"id,string"`
	Name            string            `json:"name"`
	Email           string            `json:"email"`
	Phone           string            `json:"phone"`
	VehicleNumber   string            `json:"vehicle_number"`
	CurrentLocation *LocationResponse `json:"current_location"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

func NewRiderResponse(r *entity.Rider) RiderResponse {
	resp := RiderResponse{
		ID:            r.ID,
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		VehicleNumber: r.VehicleNumber,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
	if loc := r.CurrentLocation; loc != nil {
		resp.CurrentLocation = &LocationResponse{Lat: loc.Lat, Lon: loc.Lon}
	}

	return resp
}

type CreateRiderResponse struct {
	RiderResponse
}

func (CreateRiderResponse) StatusCode() int {
	return http.StatusCreated
}

func (CreateRiderResponse) Message() string {
	return "Rider registered"
}
