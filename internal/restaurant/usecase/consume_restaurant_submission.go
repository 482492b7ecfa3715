package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/gofood/internal/restaurant/entity"
)

type ConsumeRestaurantSubmissionInput struct {
	SubmissionID string
	PartnerID    string
	Restaurant   *entity.Restaurant
}

// ConsumeRestaurantSubmission validates a partner submission and publishes the
// report. Neither broker redelivers a failed submission: core NATS drops it and
// a later Kafka commit moves past it. When publishing fails the whole report is
// logged at error level so it can be replayed, and the error is returned.
func (s *Usecase) ConsumeRestaurantSubmission(ctx context.Context, in ConsumeRestaurantSubmissionInput) error {
	ctx, span := s.startSpan(ctx, "ConsumeRestaurantSubmission")
	defer span.End()

	errs := s.validate(ctx, "mq", in.Restaurant)

	report := entity.ValidationReport{
		SubmissionID: in.SubmissionID,
		PartnerID:    in.PartnerID,
		Errors:       errs,
	}

	if err := s.repoMessaging.PublishValidationReport(ctx, report); err != nil {
		slog.ErrorContext(ctx, "failed to publish restaurant validation report",
			"submission_id", in.SubmissionID,
			"partner_id", in.PartnerID,
			"valid", report.Valid(),
			"report_errors", report.Errors,
			"error", err,
		)
		return err
	}

	return nil
}
