package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/gofood/internal/pkg/goerror"
	"github.com/shandysiswandi/gofood/internal/pkg/valueobject"
	"github.com/shandysiswandi/gofood/internal/rider/entity"
)

type UpdateRiderLocationInput struct {
	ID       int64
	Location *valueobject.Location
}

// UpdateRiderLocation validates and stores a new position, returning the
// updated rider.
func (s *Usecase) UpdateRiderLocation(ctx context.Context, in UpdateRiderLocationInput) (*entity.Rider, error) {
	ctx, span := s.startSpan(ctx, "UpdateRiderLocation")
	defer span.End()

	if errs := entity.ValidateLocation(in.Location); !errs.IsEmpty() {
		return nil, goerror.NewValidation(errs)
	}

	now := s.clock.Now()
	err := s.repoDB.UpdateRiderLocation(ctx, in.ID, *in.Location, now)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, errNotFound()
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo update rider location", "rider_id", in.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return s.GetRider(ctx, in.ID)
}
