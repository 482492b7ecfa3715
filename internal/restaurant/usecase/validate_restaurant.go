package usecase

import (
	"context"

	"github.com/shandysiswandi/gofood/internal/pkg/validator"
	"github.com/shandysiswandi/gofood/internal/restaurant/entity"
)

// ValidateRestaurant reports every rule violation without persisting anything.
func (s *Usecase) ValidateRestaurant(ctx context.Context, in *entity.Restaurant) validator.Errors {
	ctx, span := s.startSpan(ctx, "ValidateRestaurant")
	defer span.End()

	return s.validate(ctx, "http", in)
}
