package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shandysiswandi/gofood/internal/pkg/clock"
	"github.com/shandysiswandi/gofood/internal/pkg/config"
	"github.com/shandysiswandi/gofood/internal/pkg/goerror"
	"github.com/shandysiswandi/gofood/internal/pkg/idempotency"
	"github.com/shandysiswandi/gofood/internal/pkg/instrument"
	"github.com/shandysiswandi/gofood/internal/pkg/uid"
	"github.com/shandysiswandi/gofood/internal/pkg/valueobject"
	"github.com/shandysiswandi/gofood/internal/rider/entity"
	"go.opentelemetry.io/otel/trace"
)

type RiderRegisteredEvent struct {
	RiderID       int64
	Name          string
	VehicleNumber string
	RegisteredAt  time.Time
}

type repoMessaging interface {
	PublishRiderRegistered(ctx context.Context, msg RiderRegisteredEvent) error
}

type repoDB interface {
	CreateRider(ctx context.Context, r *entity.Rider) error
	GetRider(ctx context.Context, id int64) (*entity.Rider, error)
	UpdateRiderLocation(ctx context.Context, id int64, loc valueobject.Location, updatedAt time.Time) error
}

type Usecase struct {
	repoDB        repoDB
	repoMessaging repoMessaging
	idemp         idempotency.Idempotency
	cfg           config.Config
	uid           uid.NumberID
	clock         clock.Clocker
	ins           instrument.Instrumentation
}

type Dependency struct {
	RepoDB        repoDB
	RepoMessaging repoMessaging
	Idempotency   idempotency.Idempotency
	Config        config.Config
	UID           uid.NumberID
	Clock         clock.Clocker
	Instrument    instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:        dep.RepoDB,
		repoMessaging: dep.RepoMessaging,
		idemp:         dep.Idempotency,
		cfg:           dep.Config,
		uid:           dep.UID,
		clock:         dep.Clock,
		ins:           dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("rider.usecase").Start(ctx, name)
}

func normalize(r *entity.Rider) {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)
	r.VehicleNumber = strings.ToUpper(strings.TrimSpace(r.VehicleNumber))
}

func duplicateRequest(err error) bool {
	return errors.Is(err, idempotency.ErrAlreadyCompleted) ||
		errors.Is(err, idempotency.ErrAlreadyInProgress) ||
		errors.Is(err, idempotency.ErrAlreadyFailed)
}

func errNotFound() error {
	return goerror.NewBusiness("Rider not found", goerror.CodeNotFound)
}
