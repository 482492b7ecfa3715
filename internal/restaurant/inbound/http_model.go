package inbound

import (
	"net/http"
	"time"

	"github.com/samber/lo"
	"github.com/shandysiswandi/gofood/internal/pkg/validator"
	"github.com/shandysiswandi/gofood/internal/pkg/valueobject"
	"github.com/shandysiswandi/gofood/internal/restaurant/entity"
	"github.com/shandysiswandi/gofood/internal/shared/event"
)

type LocationRequest struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type AddressRequest struct {
	Street      string           `json:"street"`
	City        string           `json:"city"`
	PostalCode  string           `json:"postal_code"`
	CountryCode string           `json:"country_code"`
	Location    *LocationRequest `json:"location"`
}

type MenuItemRequest struct {
	Name                   string  `json:"name"`
	Price                  float64 `json:"price"`
	PreparationTimeMinutes int     `json:"preparation_time_minutes"`
}

type RestaurantRequest struct {
	Name                          string            `json:"name"`
	Phone                         string            `json:"phone"`
	DeliveryRadiusKm              float64           `json:"delivery_radius_km"`
	AveragePreparationTimeMinutes int               `json:"average_preparation_time_minutes"`
	Rating                        float64           `json:"rating"`
	Address                       *AddressRequest   `json:"address"`
	Menu                          []MenuItemRequest `json:"menu"`
}

func (r RestaurantRequest) ToEntity() *entity.Restaurant {
	out := &entity.Restaurant{
		Name:                          r.Name,
		Phone:                         r.Phone,
		DeliveryRadiusKm:              r.DeliveryRadiusKm,
		AveragePreparationTimeMinutes: r.AveragePreparationTimeMinutes,
		Rating:                        r.Rating,
		Menu: lo.Map(r.Menu, func(m MenuItemRequest, _ int) entity.MenuItem {
			return entity.MenuItem{Name: m.Name, Price: m.Price, PreparationTimeMinutes: m.PreparationTimeMinutes}
		}),
	}

	if r.Address != nil {
		out.Address = &valueobject.Address{
			Street:      r.Address.Street,
			City:        r.Address.City,
			PostalCode:  r.Address.PostalCode,
			CountryCode: r.Address.CountryCode,
		}
		if r.Address.Location != nil {
			out.Address.Location = &valueobject.Location{Lat: r.Address.Location.Lat, Lon: r.Address.Location.Lon}
		}
	}

	return out
}

// submissionToEntity maps a broker submission onto the same entity the HTTP
// endpoints validate.
func submissionToEntity(p event.RestaurantPayload) *entity.Restaurant {
	req := RestaurantRequest{
		Name:                          p.Name,
		Phone:                         p.Phone,
		DeliveryRadiusKm:              p.DeliveryRadiusKm,
		AveragePreparationTimeMinutes: p.AveragePreparationTimeMinutes,
		Rating:                        p.Rating,
		Menu: lo.Map(p.Menu, func(m event.MenuItemPayload, _ int) MenuItemRequest {
			return MenuItemRequest(m)
		}),
	}
	if p.Address != nil {
		req.Address = &AddressRequest{
			Street:      p.Address.Street,
			City:        p.Address.City,
			PostalCode:  p.Address.PostalCode,
			CountryCode: p.Address.CountryCode,
		}
		if p.Address.Location != nil {
			req.Address.Location = &LocationRequest{Lat: p.Address.Location.Lat, Lon: p.Address.Location.Lon}
		}
	}

	return req.ToEntity()
}

// ---- //

type ValidationResponse struct {
	Valid      bool                `json:"valid"`
	ErrorCount int                 `json:"error_count"`
	Fields     []string            `json:"fields"`
	Errors     map[string][]string `json:"errors"`
}

func NewValidationResponse(errs validator.Errors) ValidationResponse {
	if errs == nil {
		errs = validator.NewErrors()
	}

	return ValidationResponse{
		Valid:      errs.IsEmpty(),
		ErrorCount: errs.Count(),
		Fields:     errs.Fields(),
		Errors:     errs.Values(),
	}
}

func (v ValidationResponse) Message() string {
	if v.Valid {
		return "Restaurant is valid"
	}
	return "Restaurant has validation errors"
}

type LocationResponse struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type AddressResponse struct {
	Street      string            `json:"street"`
	City        string            `json:"city"`
	PostalCode  string            `json:"postal_code"`
	CountryCode string            `json:"country_code"`
	Location    *LocationResponse `json:"location,omitempty"`
}

type MenuItemResponse struct {
	ID                     int64   `json:"id,string"`
	Name                   string  `json:"name"`
	Price                  float64 `json:"price"`
	PreparationTimeMinutes int     `json:"preparation_time_minutes"`
}

type RestaurantResponse struct {
	ID                            int64              `json:"id,string"`
	Name                          string             `json:"name"`
	Phone                         string             `json:"phone"`
	DeliveryRadiusKm              float64            `json:"delivery_radius_km"`
	AveragePreparationTimeMinutes int                `json:"average_preparation_time_minutes"`
	Rating                        float64            `json:"rating"`
	Address                       *AddressResponse   `json:"address"`
	Menu                          []MenuItemResponse `json:"menu"`
	CreatedAt                     time.Time          `json:"created_at"`
	UpdatedAt                     time.Time          `json:"updated_at"`
}

func NewRestaurantResponse(r *entity.Restaurant) RestaurantResponse {
	resp := RestaurantResponse{
		ID:                            r.ID,
		Name:                          r.Name,
		Phone:                         r.Phone,
		DeliveryRadiusKm:              r.DeliveryRadiusKm,
		AveragePreparationTimeMinutes: r.AveragePreparationTimeMinutes,
		Rating:                        r.Rating,
		Menu: lo.Map(r.Menu, func(m entity.MenuItem, _ int) MenuItemResponse {
			return MenuItemResponse{
				ID:                     m.ID,
				Name:                   m.Name,
				Price:                  m.Price,
				PreparationTimeMinutes: m.PreparationTimeMinutes,
			}
		}),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}

	if r.Address != nil {
		resp.Address = &AddressResponse{
			Street:      r.Address.Street,
			City:        r.Address.City,
			PostalCode:  r.Address.PostalCode,
			CountryCode: r.Address.CountryCode,
		}
		if loc := r.Address.Location; loc != nil {
			resp.Address.Location = &LocationResponse{Lat: loc.Lat, Lon: loc.Lon}
		}
	}

	return resp
}

type CreateRestaurantResponse struct {
	RestaurantResponse
}

func (CreateRestaurantResponse) StatusCode() int {
	return http.StatusCreated
}

func (CreateRestaurantResponse) Message() string {
	return "Restaurant registered"
}
