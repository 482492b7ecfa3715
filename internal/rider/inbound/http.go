package inbound

import (
	"context"

	"github.com/shandysiswandi/gofood/internal/pkg/router"
	"github.com/shandysiswandi/gofood/internal/pkg/validator"
	"github.com/shandysiswandi/gofood/internal/rider/entity"
	"github.com/shandysiswandi/gofood/internal/rider/usecase"
)

type uc interface {
	ValidateRider(ctx context.Context, in *entity.Rider) validator.Errors
	CreateRider(ctx context.Context, in usecase.CreateRiderInput) (*entity.Rider, error)
	GetRider(ctx context.Context, id int64) (*entity.Rider, error)
	UpdateRiderLocation(ctx context.Context, in usecase.UpdateRiderLocationInput) (*entity.Rider, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/api/v1/riders/validate", end.ValidateRider)
	r.POST("/api/v1/riders", end.CreateRider)
	r.GET("/api/v1/riders/:id", end.GetRider)
	r.PUT("/api/v1/riders/:id/location", end.UpdateRiderLocation)
}
