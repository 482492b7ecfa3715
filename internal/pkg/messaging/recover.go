package messaging

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/shandysiswandi/gofood/internal/pkg/stacktrace"
)

func dispatch(ctx context.Context, kind string, handler Handler, msg Message, autoAck bool) (err error) {
	defer func() {
		if rvr := recover(); rvr != nil {
			slog.ErrorContext(ctx, "panic in messaging handler",
				"kind", kind,
				"source", msg.Source(),
				"panic", rvr,
				"stack", stacktrace.InternalPaths(debug.Stack()),
			)
			err = fmt.Errorf("messaging: panic in %s handler: %v", kind, rvr)
		}

		if !autoAck {
			return
		}
		if err == nil {
			err = msg.Ack(ctx)
			return
		}
		if nerr := msg.Nack(ctx); nerr != nil {
			slog.WarnContext(ctx, "failed to nack message", "kind", kind, "source", msg.Source(), "error", nerr)
		}
	}()

	return handler(ctx, msg)
}
