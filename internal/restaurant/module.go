package restaurant

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shandysiswandi/gofood/internal/pkg/clock"
	"github.com/shandysiswandi/gofood/internal/pkg/config"
	"github.com/shandysiswandi/gofood/internal/pkg/goroutine"
	"github.com/shandysiswandi/gofood/internal/pkg/idempotency"
	"github.com/shandysiswandi/gofood/internal/pkg/instrument"
	"github.com/shandysiswandi/gofood/internal/pkg/messaging"
	"github.com/shandysiswandi/gofood/internal/pkg/router"
	"github.com/shandysiswandi/gofood/internal/pkg/uid"
	"github.com/shandysiswandi/gofood/internal/pkg/validator"
	"github.com/shandysiswandi/gofood/internal/pkg/valueobject"
	"github.com/shandysiswandi/gofood/internal/restaurant/inbound"
	"github.com/shandysiswandi/gofood/internal/restaurant/outbound/db"
	"github.com/shandysiswandi/gofood/internal/restaurant/outbound/mq"
	"github.com/shandysiswandi/gofood/internal/restaurant/usecase"
)

type Dependency struct {
	Ctx         context.Context
	DBConn      *pgxpool.Pool              `validate:"required"`
	Goroutine   *goroutine.Manager         `validate:"required"`
	Router      *router.Router             `validate:"required"`
	Idempotency idempotency.Idempotency    `validate:"required"`
	Messaging   messaging.Messaging        `validate:"required"`
	Config      config.Config              `validate:"required"`
	Instrument  instrument.Instrumentation `validate:"required"`
	UID         uid.NumberID               `validate:"required"`
	UUID        uid.StringID               `validate:"required"`
	Clock       clock.Clocker              `validate:"required"`
	Tags        *validator.TagChecker      `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Tags.Struct(dep); err != nil {
		return err
	}

	repoDB := db.NewDB(dep.DBConn, dep.Instrument)
	repoMsg := mq.NewMessaging(messaging.WithRetry(dep.Messaging, messaging.RetryConfig{
		MaxRetries:  uint64(max(dep.Config.GetInt("modules.restaurant.publish_max_retries"), 0)),
		BaseBackoff: time.Duration(dep.Config.GetInt("modules.restaurant.publish_backoff_ms")) * time.Millisecond,
	}), dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:           repoDB,
		RepoMessaging:    repoMsg,
		Idempotency:      dep.Idempotency,
		AddressValidator: valueobject.NewAddressValidator(dep.Tags),
		Config:           dep.Config,
		UID:              dep.UID,
		Clock:            dep.Clock,
		Instrument:       dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)
	inbound.RegisterMQConsumer(dep.Ctx, dep.Config, dep.Goroutine, dep.Messaging, dep.UUID, uc, dep.Instrument)

	return nil
}
