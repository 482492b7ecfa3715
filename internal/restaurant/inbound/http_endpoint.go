package inbound

import (
	"github.com/shandysiswandi/gofood/internal/pkg/router"
	"github.com/shandysiswandi/gofood/internal/restaurant/usecase"
)

// HTTPEndpoint exposes restaurant onboarding over HTTP.
type HTTPEndpoint struct {
	uc uc
}

// ValidateRestaurant checks a restaurant payload and reports every violation
// without storing it.
func (h *HTTPEndpoint) ValidateRestaurant(r *router.Request) (any, error) {
	var req RestaurantRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	return NewValidationResponse(h.uc.ValidateRestaurant(r.Context(), req.ToEntity())), nil
}

// CreateRestaurant registers a restaurant with its menu. Clients may send an
// Idempotency-Key header to retry safely.
func (h *HTTPEndpoint) CreateRestaurant(r *router.Request) (any, error) {
	var req RestaurantRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.CreateRestaurant(r.Context(), usecase.CreateRestaurantInput{
		IdempotencyKey: r.GetHeader(router.HeaderIdempotencyKey),
		Restaurant:     req.ToEntity(),
	})
	if err != nil {
		return nil, err
	}

	return CreateRestaurantResponse{RestaurantResponse: NewRestaurantResponse(resp)}, nil
}

func (h *HTTPEndpoint) GetRestaurant(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.GetRestaurant(r.Context(), id)
	if err != nil {
		return nil, err
	}

	return NewRestaurantResponse(resp), nil
}
