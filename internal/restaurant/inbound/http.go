package inbound

import (
	"context"

	"github.com/shandysiswandi/gofood/internal/pkg/router"
	"github.com/shandysiswandi/gofood/internal/pkg/validator"
	"github.com/shandysiswandi/gofood/internal/restaurant/entity"
	"github.com/shandysiswandi/gofood/internal/restaurant/usecase"
)

type uc interface {
	ValidateRestaurant(ctx context.Context, in *entity.Restaurant) validator.Errors
	CreateRestaurant(ctx context.Context, in usecase.CreateRestaurantInput) (*entity.Restaurant, error)
	GetRestaurant(ctx context.Context, id int64) (*entity.Restaurant, error)
	ConsumeRestaurantSubmission(ctx context.Context, in usecase.ConsumeRestaurantSubmissionInput) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/api/v1/restaurants/validate", end.ValidateRestaurant)
	r.POST("/api/v1/restaurants", end.CreateRestaurant)
	r.GET("/api/v1/restaurants/:id", end.GetRestaurant)
}
