package rider

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shandysiswandi/gofood/internal/pkg/clock"
	"github.com/shandysiswandi/gofood/internal/pkg/config"
	"github.com/shandysiswandi/gofood/internal/pkg/idempotency"
	"github.com/shandysiswandi/gofood/internal/pkg/instrument"
	"github.com/shandysiswandi/gofood/internal/pkg/messaging"
	"github.com/shandysiswandi/gofood/internal/pkg/router"
	"github.com/shandysiswandi/gofood/internal/pkg/uid"
	"github.com/shandysiswandi/gofood/internal/pkg/validator"
	"github.com/shandysiswandi/gofood/internal/rider/inbound"
	"github.com/shandysiswandi/gofood/internal/rider/outbound/db"
	"github.com/shandysiswandi/gofood/internal/rider/outbound/mq"
	"github.com/shandysiswandi/gofood/internal/rider/usecase"
)

type Dependency struct {
	DBConn      *pgxpool.Pool              `validate:"required"`
	Router      *router.Router             `validate:"required"`
	Idempotency idempotency.Idempotency    `validate:"required"`
	Messaging   messaging.Messaging        `validate:"required"`
	Config      config.Config              `validate:"required"`
	Instrument  instrument.Instrumentation `validate:"required"`
	UID         uid.NumberID               `validate:"required"`
	Clock       clock.Clocker              `validate:"required"`
	Tags        *validator.TagChecker      `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Tags.Struct(dep); err != nil {
		return err
	}

	publisher := messaging.WithRetry(dep.Messaging, messaging.RetryConfig{
		MaxRetries:  uint64(max(dep.Config.GetInt("modules.rider.publish_max_retries"), 0)),
		BaseBackoff: time.Duration(dep.Config.GetInt("modules.rider.publish_backoff_ms")) * time.Millisecond,
	})

	uc := usecase.New(usecase.Dependency{
		RepoDB:        db.NewDB(dep.DBConn, dep.Instrument),
		RepoMessaging: mq.NewMessaging(publisher, dep.Instrument),
		Idempotency:   dep.Idempotency,
		Config:        dep.Config,
		UID:           dep.UID,
		Clock:         dep.Clock,
		Instrument:    dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
