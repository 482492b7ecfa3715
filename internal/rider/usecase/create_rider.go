package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/gofood/internal/pkg/goerror"
	"github.com/shandysiswandi/gofood/internal/pkg/idempotency"
	"github.com/shandysiswandi/gofood/internal/rider/entity"
)

type CreateRiderInput struct {
	IdempotencyKey string
	Rider          *entity.Rider
}

func (s *Usecase) CreateRider(ctx context.Context, in CreateRiderInput) (*entity.Rider, error) {
	ctx, span := s.startSpan(ctx, "CreateRider")
	defer span.End()

	if errs := entity.ValidateRider(in.Rider); !errs.IsEmpty() {
		return nil, goerror.NewValidation(errs)
	}

	r := in.Rider
	normalize(r)

	insert := func(ctx context.Context) error {
		now := s.clock.Now()
		r.ID = s.uid.Generate()
		r.CreatedAt = now
		r.UpdatedAt = now

		return s.repoDB.CreateRider(ctx, r)
	}

	var err error
	if in.IdempotencyKey == "" {
		err = insert(ctx)
	} else {
		err = s.idemp.Exec(ctx, "rider:"+in.IdempotencyKey, insert,
			idempotency.WithStateTTL(s.cfg.GetMinute("modules.rider.idempotency_ttl_minutes")))
	}
	if duplicateRequest(err) {
		slog.WarnContext(ctx, "duplicate rider registration", "idempotency_key", in.IdempotencyKey, "error", err)
		return nil, goerror.NewBusiness("Duplicate request", goerror.CodeConflict)
	}
	if errors.Is(err, goerror.ErrConflict) {
		return nil, goerror.NewBusiness("Rider email already registered", goerror.CodeConflict)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo create rider", "error", err)
		return nil, goerror.NewServer(err)
	}

	if err := s.repoMessaging.PublishRiderRegistered(ctx, RiderRegisteredEvent{
		RiderID:       r.ID,
		Name:          r.Name,
		VehicleNumber: r.VehicleNumber,
		RegisteredAt:  r.CreatedAt,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to publish rider registered", "rider_id", r.ID, "error", err)
	}

	return r, nil
}
