package inbound

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/shandysiswandi/gofood/internal/pkg/instrument"
	"github.com/shandysiswandi/gofood/internal/pkg/messaging"
	"github.com/shandysiswandi/gofood/internal/pkg/uid"
	"github.com/shandysiswandi/gofood/internal/restaurant/usecase"
	"github.com/shandysiswandi/gofood/internal/shared/event"
)

type MQHandler struct {
	uc   uc
	uuid uid.StringID
	ins  instrument.Instrumentation
}

func (h *MQHandler) ensureCorrelationID(ctx context.Context, headers []messaging.Header) context.Context {
	if cID := messaging.HeaderValue(headers, messaging.HeaderCorrelationID); cID != "" {
		return instrument.SetCorrelationID(ctx, cID)
	}
	return instrument.SetCorrelationID(ctx, h.uuid.Generate())
}

// RestaurantSubmission validates a partner submission. Undecodable bodies are
// logged and dropped. A failed report publish is returned for the span and the
// consumer log; the usecase has already logged the full report.
func (h *MQHandler) RestaurantSubmission(ctx context.Context, msg messaging.Message) error {
	ctx = h.ensureCorrelationID(ctx, msg.Headers())

	ctx, span := h.ins.Tracer("restaurant.inbound.mq").Start(ctx, "RestaurantSubmission")
	defer span.End()

	body := msg.Body()
	slog.InfoContext(ctx, "consume: restaurant submission", "msg_id", msg.ID(), "source", msg.Source())

	var payload event.RestaurantSubmissionMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		slog.ErrorContext(ctx, "failed to parse message body of restaurant submission", "msg_body", string(body), "error", err)
		return nil
	}

	if err := h.uc.ConsumeRestaurantSubmission(ctx, usecase.ConsumeRestaurantSubmissionInput{
		SubmissionID: payload.SubmissionID,
		PartnerID:    payload.PartnerID,
		Restaurant:   submissionToEntity(payload.Restaurant),
	}); err != nil {
		slog.ErrorContext(ctx, "failed to consume restaurant submission", "submission_id", payload.SubmissionID, "error", err)
		return err
	}

	return nil
}
