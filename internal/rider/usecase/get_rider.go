package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/gofood/internal/pkg/goerror"
	"github.com/shandysiswandi/gofood/internal/rider/entity"
)

func (s *Usecase) GetRider(ctx context.Context, id int64) (*entity.Rider, error) {
	ctx, span := s.startSpan(ctx, "GetRider")
	defer span.End()

	r, err := s.repoDB.GetRider(ctx, id)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, errNotFound()
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get rider", "rider_id", id, "error", err)
		return nil, goerror.NewServer(err)
	}

	return r, nil
}
