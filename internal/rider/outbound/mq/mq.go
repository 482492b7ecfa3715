package mq

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/shandysiswandi/gofood/internal/pkg/instrument"
	"github.com/shandysiswandi/gofood/internal/pkg/messaging"
	"github.com/shandysiswandi/gofood/internal/rider/usecase"
	"github.com/shandysiswandi/gofood/internal/shared/event"
	"go.opentelemetry.io/otel/codes"
)

type Messaging struct {
	client messaging.Publisher
	ins    instrument.Instrumentation
}

func NewMessaging(client messaging.Publisher, ins instrument.Instrumentation) *Messaging {
	return &Messaging{client: client, ins: ins}
}

func (m *Messaging) PublishRiderRegistered(ctx context.Context, msg usecase.RiderRegisteredEvent) error {
	ctx, span := m.ins.Tracer("rider.outbound.mq").Start(ctx, "PublishRiderRegistered")
	defer span.End()

	body, err := json.Marshal(event.RiderRegisteredMessage{
		RiderID:       msg.RiderID,
		Name:          msg.Name,
		VehicleNumber: msg.VehicleNumber,
		RegisteredAt:  msg.RegisteredAt,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	cID := instrument.GetCorrelationID(ctx)
	if _, err := m.client.Publish(ctx, event.RiderRegisteredDestination, messaging.OutgoingMessage{
		Body:    body,
		Key:     []byte(strconv.FormatInt(msg.RiderID, 10)),
		Headers: []messaging.Header{{Key: messaging.HeaderCorrelationID, Value: []byte(cID)}},
	}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
