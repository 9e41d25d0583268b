package middleware

import (
	"log"
	"time"

	"github.com/KirkDiggler/dream-bot-discord/internal/discord/v2/core"
)

// LogConfig configures logging behavior
type LogConfig struct {
	// LogRequests logs incoming interactions
	LogRequests bool

	// LogDuration logs handler execution time
	LogDuration bool

	// SlowThreshold logs a warning when a handler runs longer than this.
	// Discord drops interactions that are not acknowledged within 3s.
	SlowThreshold time.Duration

	// RequestFilter filters which requests to log
	RequestFilter func(*core.InteractionContext) bool
}

// DefaultLogConfig returns sensible defaults
func DefaultLogConfig() *LogConfig {
	return &LogConfig{
		LogRequests:   true,
		LogDuration:   true,
		SlowThreshold: 2 * time.Second,
	}
}

// LoggingMiddleware provides request/response logging
func LoggingMiddleware(config *LogConfig) core.Middleware {
	if config == nil {
		config = DefaultLogConfig()
	}

	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			if config.RequestFilter != nil && !config.RequestFilter(ctx) {
				return next.Handle(ctx)
			}

			name := interactionName(ctx)
			if config.LogRequests {
				log.Printf("[Discord] %s, User: %s, Guild: %s", name, ctx.UserID, ctx.GuildID)
			}

			start := time.Now()
			result, err := next.Handle(ctx)
			duration := time.Since(start)

			switch {
			case config.SlowThreshold > 0 && duration > config.SlowThreshold:
				log.Printf("[Discord] %s was slow: %v", name, duration)
			case config.LogDuration:
				log.Printf("[Discord] %s completed in %v", name, duration)
			}

			return result, err
		})
	}
}

// interactionName describes an interaction for logs
func interactionName(ctx *core.InteractionContext) string {
	if ctx.Interaction == nil {
		return "unknown"
	}

	switch {
	case ctx.IsCommand():
		name := "/" + ctx.GetCommandName()
		if sub := ctx.GetSubcommand(); sub != "" {
			name += " " + sub
		}
		return name
	case ctx.IsComponent():
		if parsed, err := core.ParseCustomID(ctx.GetCustomID()); err == nil {
			return "component " + parsed.Domain + ":" + parsed.Action
		}
		return "component " + ctx.GetCustomID()
	case ctx.IsModal():
		if parsed, err := core.ParseCustomID(ctx.GetCustomID()); err == nil {
			return "modal " + parsed.Domain + ":" + parsed.Action
		}
		return "modal " + ctx.GetCustomID()
	}
	return "unknown"
}
