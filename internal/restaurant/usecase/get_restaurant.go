package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/gofood/internal/pkg/goerror"
	"github.com/shandysiswandi/gofood/internal/restaurant/entity"
)

func (s *Usecase) GetRestaurant(ctx context.Context, id int64) (*entity.Restaurant, error) {
	ctx, span := s.startSpan(ctx, "GetRestaurant")
	defer span.End()

	r, err := s.repoDB.GetRestaurant(ctx, id)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, errNotFound()
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get restaurant", "restaurant_id", id, "error", err)
		return nil, goerror.NewServer(err)
	}

	return r, nil
}
