package inbound

import (
	"github.com/shandysiswandi/gofood/internal/pkg/router"
	"github.com/shandysiswandi/gofood/internal/rider/usecase"
)

type HTTPEndpoint struct {
	uc uc
}

func (h *HTTPEndpoint) ValidateRider(r *router.Request) (any, error) {
	var req RiderRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	return NewValidationResponse(h.uc.ValidateRider(r.Context(), req.ToEntity())), nil
}

func (h *HTTPEndpoint) CreateRider(r *router.Request) (any, error) {
	var req RiderRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.CreateRider(r.Context(), usecase.CreateRiderInput{
		IdempotencyKey: r.GetHeader(router.HeaderIdempotencyKey),
		Rider:          req.ToEntity(),
	})
	if err != nil {
		return nil, err
	}

	return CreateRiderResponse{RiderResponse: NewRiderResponse(resp)}, nil
}

func (h *HTTPEndpoint) GetRider(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.GetRider(r.Context(), id)
	if err != nil {
		return nil, err
	}

	return NewRiderResponse(resp), nil
}

// UpdateRiderLocation replaces the rider's current position. A body without
// a location is reported as a validation error, not a format error.
func (h *HTTPEndpoint) UpdateRiderLocation(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	var req UpdateLocationRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.UpdateRiderLocation(r.Context(), usecase.UpdateRiderLocationInput{
		ID:       id,
		Location: req.CurrentLocation.toValueObject(),
	})
	if err != nil {
		return nil, err
	}

	return NewRiderResponse(resp), nil
}
