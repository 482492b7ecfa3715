package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/shandysiswandi/gofood/internal/pkg/clock"
	"github.com/shandysiswandi/gofood/internal/pkg/config"
	"github.com/shandysiswandi/gofood/internal/pkg/goerror"
	"github.com/shandysiswandi/gofood/internal/pkg/idempotency"
	"github.com/shandysiswandi/gofood/internal/pkg/instrument"
	"github.com/shandysiswandi/gofood/internal/pkg/uid"
	"github.com/shandysiswandi/gofood/internal/pkg/validator"
	"github.com/shandysiswandi/gofood/internal/pkg/valueobject"
	"github.com/shandysiswandi/gofood/internal/restaurant/entity"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

type RestaurantRegisteredEvent struct {
	RestaurantID  int64
	Name          string
	City          string
	MenuItemCount int
	RegisteredAt  time.Time
}

type repoMessaging interface {
	PublishRestaurantRegistered(ctx context.Context, msg RestaurantRegisteredEvent) error
	PublishValidationReport(ctx context.Context, report entity.ValidationReport) error
}

type repoDB interface {
	CreateRestaurant(ctx context.Context, r *entity.Restaurant) error
	GetRestaurant(ctx context.Context, id int64) (*entity.Restaurant, error)
}

type Usecase struct {
	repoDB        repoDB
	repoMessaging repoMessaging
	idemp         idempotency.Idempotency
	address       entity.AddressValidator
	cfg           config.Config
	uid           uid.NumberID
	clock         clock.Clocker
	ins           instrument.Instrumentation

	validations metric.Int64Counter
}

type Dependency struct {
	RepoDB           repoDB
	RepoMessaging    repoMessaging
	Idempotency      idempotency.Idempotency
	AddressValidator entity.AddressValidator
	Config           config.Config
	UID              uid.NumberID
	Clock            clock.Clocker
	Instrument       instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	validations, err := dep.Instrument.Meter("restaurant.usecase").Int64Counter(
		"restaurant.validations",
		metric.WithDescription("Restaurant submissions validated, by outcome"),
	)
	if err != nil {
		slog.Error("failed to create restaurant validation counter", "error", err)
	}

	return &Usecase{
		repoDB:        dep.RepoDB,
		repoMessaging: dep.RepoMessaging,
		idemp:         dep.Idempotency,
		address:       dep.AddressValidator,
		cfg:           dep.Config,
		uid:           dep.UID,
		clock:         dep.Clock,
		ins:           dep.Instrument,
		validations:   validations,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("restaurant.usecase").Start(ctx, name)
}

// validate runs the restaurant rules and records the outcome on the span and counter.
func (s *Usecase) validate(ctx context.Context, source string, r *entity.Restaurant) validator.Errors {
	errs := entity.ValidateRestaurant(r, s.address)

	attrs := []attribute.KeyValue{
		attribute.String("source", source),
		attribute.Bool("valid", errs.IsEmpty()),
	}
	trace.SpanFromContext(ctx).SetAttributes(append(attrs, attribute.Int("validation.error_count", errs.Count()))...)
	if s.validations != nil {
		s.validations.Add(ctx, 1, metric.WithAttributes(attrs...))
	}

	if !errs.IsEmpty() {
		slog.InfoContext(ctx, "restaurant failed validation", "source", source, "fields", errs.Fields())
	}

	return errs
}

func normalize(r *entity.Restaurant) {
	if r == nil {
		return
	}

	r.Name = strings.TrimSpace(r.Name)
	r.Phone = strings.TrimSpace(r.Phone)
	for i := range r.Menu {
		r.Menu[i].Name = strings.TrimSpace(r.Menu[i].Name)
	}
	if r.Address != nil {
		r.Address.Street = strings.TrimSpace(r.Address.Street)
		r.Address.City = strings.TrimSpace(r.Address.City)
		r.Address.PostalCode = strings.TrimSpace(r.Address.PostalCode)
		r.Address.CountryCode = valueobject.NormalizeCountryCode(r.Address.CountryCode)
	}
}

func duplicateRequest(err error) bool {
	return errors.Is(err, idempotency.ErrAlreadyCompleted) ||
		errors.Is(err, idempotency.ErrAlreadyInProgress) ||
		errors.Is(err, idempotency.ErrAlreadyFailed)
}

func errNotFound() error {
	return goerror.NewBusiness("Restaurant not found", goerror.CodeNotFound)
}
