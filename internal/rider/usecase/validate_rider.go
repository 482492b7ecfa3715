package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/gofood/internal/pkg/validator"
	"github.com/shandysiswandi/gofood/internal/rider/entity"
	"go.opentelemetry.io/otel/attribute"
)

// ValidateRider reports every rule violation without persisting anything.
func (s *Usecase) ValidateRider(ctx context.Context, in *entity.Rider) validator.Errors {
	ctx, span := s.startSpan(ctx, "ValidateRider")
	defer span.End()

	errs := entity.ValidateRider(in)
	span.SetAttributes(attribute.Int("validation.error_count", errs.Count()))
	if !errs.IsEmpty() {
		slog.InfoContext(ctx, "rider failed validation", "fields", errs.Fields())
	}

	return errs
}
