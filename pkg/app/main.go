package app

import (
	"github.com/ghuser/ticketdesk/pkg/cache"
	"github.com/ghuser/ticketdesk/pkg/events"
	"github.com/ghuser/ticketdesk/pkg/logger"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to every service's Routes function during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler; use slog's context methods
// and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "ticket created", "ticket_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Logger       logger.Logger
	EventBus     *events.EventBus
	Redis        *cache.RedisClient
	IsProduction bool // hides 5xx details from clients
}
