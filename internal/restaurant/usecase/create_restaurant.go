package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/gofood/internal/pkg/goerror"
	"github.com/shandysiswandi/gofood/internal/pkg/idempotency"
	"github.com/shandysiswandi/gofood/internal/restaurant/entity"
)

type CreateRestaurantInput struct {
	IdempotencyKey string
	Restaurant     *entity.Restaurant
}

func (s *Usecase) CreateRestaurant(ctx context.Context, in CreateRestaurantInput) (*entity.Restaurant, error) {
	ctx, span := s.startSpan(ctx, "CreateRestaurant")
	defer span.End()

	if errs := s.validate(ctx, "http", in.Restaurant); !errs.IsEmpty() {
		return nil, goerror.NewValidation(errs)
	}

	r := in.Restaurant
	normalize(r)

	insert := func(ctx context.Context) error {
		now := s.clock.Now()
		r.ID = s.uid.Generate()
		r.CreatedAt = now
		r.UpdatedAt = now
		for i := range r.Menu {
			r.Menu[i].ID = s.uid.Generate()
			r.Menu[i].RestaurantID = r.ID
		}

		return s.repoDB.CreateRestaurant(ctx, r)
	}

	var err error
	if in.IdempotencyKey == "" {
		err = insert(ctx)
	} else {
		err = s.idemp.Exec(ctx, "restaurant:"+in.IdempotencyKey, insert,
			idempotency.WithStateTTL(s.cfg.GetMinute("modules.restaurant.idempotency_ttl_minutes")))
	}
	if duplicateRequest(err) {
		slog.WarnContext(ctx, "duplicate restaurant registration", "idempotency_key", in.IdempotencyKey, "error", err)
		return nil, goerror.NewBusiness("Duplicate request", goerror.CodeConflict)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo create restaurant", "name", r.Name, "error", err)
		return nil, goerror.NewServer(err)
	}

	if err := s.repoMessaging.PublishRestaurantRegistered(ctx, RestaurantRegisteredEvent{
		RestaurantID:  r.ID,
		Name:          r.Name,
		City:          r.Address.City,
		MenuItemCount: len(r.Menu),
		RegisteredAt:  r.CreatedAt,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to publish restaurant registered", "restaurant_id", r.ID, "error", err)
	}

	return r, nil
}
