package mq

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/shandysiswandi/gofood/internal/pkg/instrument"
	"github.com/shandysiswandi/gofood/internal/pkg/messaging"
	"github.com/shandysiswandi/gofood/internal/restaurant/entity"
	"github.com/shandysiswandi/gofood/internal/restaurant/usecase"
	"github.com/shandysiswandi/gofood/internal/shared/event"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type Messaging struct {
	client messaging.Publisher
	ins    instrument.Instrumentation
}

func NewMessaging(client messaging.Publisher, ins instrument.Instrumentation) *Messaging {
	return &Messaging{client: client, ins: ins}
}

func (m *Messaging) PublishRestaurantRegistered(ctx context.Context, msg usecase.RestaurantRegisteredEvent) error {
	ctx, span := m.ins.Tracer("restaurant.outbound.mq").Start(ctx, "PublishRestaurantRegistered")
	defer span.End()

	return m.publish(ctx, span, event.RestaurantRegisteredDestination, strconv.FormatInt(msg.RestaurantID, 10),
		event.RestaurantRegisteredMessage{
			RestaurantID:  msg.RestaurantID,
			Name:          msg.Name,
			City:          msg.City,
			MenuItemCount: msg.MenuItemCount,
			RegisteredAt:  msg.RegisteredAt,
		})
}

func (m *Messaging) PublishValidationReport(ctx context.Context, report entity.ValidationReport) error {
	ctx, span := m.ins.Tracer("restaurant.outbound.mq").Start(ctx, "PublishValidationReport")
	defer span.End()

	errs := report.Errors
	if errs == nil {
		errs = map[string][]string{}
	}

	count := 0
	for _, msgs := range errs {
		count += len(msgs)
	}

	return m.publish(ctx, span, event.RestaurantValidationReportDestination, report.SubmissionID,
		event.RestaurantValidationReportMessage{
			SubmissionID: report.SubmissionID,
			PartnerID:    report.PartnerID,
			Valid:        report.Valid(),
			ErrorCount:   count,
			Errors:       errs,
		})
}

func (m *Messaging) publish(ctx context.Context, span trace.Span, destination, key string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	cID := instrument.GetCorrelationID(ctx)
	if _, err := m.client.Publish(ctx, destination, messaging.OutgoingMessage{
		Body:    body,
		Key:     []byte(key),
		Headers: []messaging.Header{{Key: messaging.HeaderCorrelationID, Value: []byte(cID)}},
	}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
