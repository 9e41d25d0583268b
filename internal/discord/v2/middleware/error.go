package middleware

import (
	"fmt"
	"log"

	"github.com/KirkDiggler/dream-bot-discord/internal/discord/v2/builders"
	"github.com/KirkDiggler/dream-bot-discord/internal/discord/v2/core"
	dnderr "github.com/KirkDiggler/dream-bot-discord/internal/errors"
)

// MsgLoginAgain is shown when the dashboard session is gone
const MsgLoginAgain = "Your Game Sync session has expired. Log in again with `/dream login`."

// ErrorConfig configures error handling behavior
type ErrorConfig struct {
	// LogErrors controls whether errors are logged
	LogErrors bool

	// DefaultUserMessage is shown when no user-friendly message exists
	DefaultUserMessage string

	// ErrorLogger allows custom logging
	ErrorLogger ErrorLogger
}

// ErrorLogger logs errors
type ErrorLogger func(ctx *core.InteractionContext, err error)

// DefaultErrorConfig returns sensible defaults
func DefaultErrorConfig() *ErrorConfig {
	return &ErrorConfig{
		LogErrors:          true,
		DefaultUserMessage: "An error occurred while processing your request.",
		ErrorLogger:        defaultErrorLogger,
	}
}

// ErrorMiddleware turns handler errors into responses
func ErrorMiddleware(config *ErrorConfig) core.Middleware {
	if config == nil {
		config = DefaultErrorConfig()
	}

	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			result, err := next.Handle(ctx)
			if err == nil {
				return result, nil
			}

			// Validation problems are expected; only log the rest
			if config.LogErrors && config.ErrorLogger != nil && core.ErrorCode(err) != dnderr.CodeValidation {
				config.ErrorLogger(ctx, err)
			}

			return &core.HandlerResult{
				Response: ErrorResponse(err, config.DefaultUserMessage),
				Context: map[string]any{
					"error": err,
				},
			}, nil
		})
	}
}

// ErrorResponse builds the ephemeral reply for an error. Validation errors
// are shown as is, a lost dashboard session points back at the login
// command, and dashboard failures name the operation that failed.
func ErrorResponse(err error, fallback string) *core.Response {
	if msg, ok := core.UserMessage(err); ok {
		return core.NewEphemeralResponse(msg)
	}

	switch core.ErrorCode(err) {
	case dnderr.CodeUnauthenticated:
		return core.NewEphemeralResponse(MsgLoginAgain)
	case dnderr.CodeUnavailable:
		description := "The dashboard could not be reached."
		if op := dnderr.GetOp(err); op != "" {
			description = fmt.Sprintf("Something went wrong while %s.", op)
		}
		embed := builders.ErrorEmbed("Dashboard unavailable", description).Build()
		return core.NewEmbedResponse(embed).AsEphemeral()
	}

	return core.NewEphemeralResponse(fallback)
}

// RecoveryMiddleware recovers from panics
func RecoveryMiddleware() core.Middleware {
	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (result *core.HandlerResult, err error) {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("[Discord] Panic recovered in %s: %v", interactionName(ctx), r)

					err = nil
					result = &core.HandlerResult{
						Response: core.NewEphemeralResponse("An unexpected error occurred. Please try again later."),
					}
				}
			}()

			return next.Handle(ctx)
		})
	}
}

func defaultErrorLogger(ctx *core.InteractionContext, err error) {
	log.Printf("[Discord] Handler error in %s for user %s (code=%s): %v",
		interactionName(ctx),
		ctx.UserID,
		core.ErrorCode(err),
		err,
	)
}
