package inbound

import (
	"context"
	"log/slog"
	"slices"

	"github.com/shandysiswandi/gofood/internal/pkg/config"
	"github.com/shandysiswandi/gofood/internal/pkg/goroutine"
	"github.com/shandysiswandi/gofood/internal/pkg/instrument"
	"github.com/shandysiswandi/gofood/internal/pkg/messaging"
	"github.com/shandysiswandi/gofood/internal/pkg/uid"
	"github.com/shandysiswandi/gofood/internal/shared/event"
)

func RegisterMQConsumer(
	ctx context.Context,
	cfg config.Config,
	routine *goroutine.Manager,
	messenger messaging.Consumer,
	uuid uid.StringID,
	uc uc,
	ins instrument.Instrumentation,
) {
	mqHandler := &MQHandler{uc: uc, uuid: uuid, ins: ins}

	enabled := cfg.GetArray("modules.restaurant.consumer_names")
	concurrency := cfg.GetInt("modules.restaurant.consumer_concurrency")

	consumers := []struct {
		name    string
		topic   string // destination where partners publish
		handler messaging.Handler
	}{
		{
			name:    event.RestaurantSubmissionConsumerValidator,
			topic:   event.RestaurantSubmissionDestination,
			handler: mqHandler.RestaurantSubmission,
		},
	}

	for _, consumer := range consumers {
		if !slices.Contains(enabled, consumer.name) {
			continue
		}

		ok := routine.Go(ctx, func(pCtx context.Context) error {
			slog.InfoContext(ctx, "running job for handling consumer", "consumer", consumer.name)
			return messenger.Consume(pCtx,
				consumer.topic,
				consumer.handler,
				messaging.WithGroup(consumer.name),
				messaging.WithAutoAck(true),
				messaging.WithConcurrency(concurrency),
			)
		})
		if !ok {
			slog.ErrorContext(ctx, "failed to schedule consumer", "consumer", consumer.name)
		}
	}
}
