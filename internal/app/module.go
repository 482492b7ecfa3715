package app

import (
	"log/slog"
	"os"

	"github.com/shandysiswandi/gofood/internal/restaurant"
	"github.com/shandysiswandi/gofood/internal/rider"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.restaurant.enabled") {
		if err := restaurant.New(restaurant.Dependency{
			Ctx:         a.ctx,
			DBConn:      a.dbConn,
			Goroutine:   a.goroutine,
			Router:      a.router,
			Idempotency: a.idemp,
			Messaging:   a.messaging,
			Config:      a.config,
			Instrument:  a.ins,
			UID:         a.uid,
			UUID:        a.uuid,
			Clock:       a.clock,
			Tags:        a.tags,
		}); err != nil {
			slog.Error("failed to init module restaurant", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.rider.enabled") {
		if err := rider.New(rider.Dependency{
			DBConn:      a.dbConn,
			Router:      a.router,
			Idempotency: a.idemp,
			Messaging:   a.messaging,
			Config:      a.config,
			Instrument:  a.ins,
			UID:         a.uid,
			Clock:       a.clock,
			Tags:        a.tags,
		}); err != nil {
			slog.Error("failed to init module rider", "error", err)
			os.Exit(1)
		}
	}
}
