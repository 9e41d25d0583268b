package middleware

import (
	"log"
	"slices"
	"time"

	"github.com/KirkDiggler/dream-bot-discord/internal/discord/v2/core"
)

// DeferConfig configures the defer middleware
type DeferConfig struct {
	// DeferAfter acknowledges the interaction if the handler is still running
	// after this long. Discord requires an answer within 3s.
	DeferAfter time.Duration

	// EphemeralCommands makes the loading message of slash commands ephemeral
	EphemeralCommands bool

	// SkipActions lists component actions that must answer directly, such as
	// the ones that open a modal
	SkipActions []string
}

// DefaultDeferConfig returns a sensible default configuration
func DefaultDeferConfig() *DeferConfig {
	return &DeferConfig{
		DeferAfter:        2 * time.Second,
		EphemeralCommands: true,
	}
}

type handlerResponse struct {
	result   *core.HandlerResult
	err      error
	panicked any
}

// DeferMiddleware acknowledges slow interactions. Commands get a loading
// message; components and modal submits keep their message until the
// handler's update arrives.
func DeferMiddleware(config *DeferConfig) core.Middleware {
	if config == nil {
		config = DefaultDeferConfig()
	}

	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			responder, ok := ctx.Responder()
			if !ok || config.DeferAfter <= 0 || skipDefer(ctx, config) {
				return next.Handle(ctx)
			}

			done := make(chan handlerResponse, 1)
			go func() {
				// Panics are handed back so the recovery middleware sees them
				defer func() {
					if r := recover(); r != nil {
						done <- handlerResponse{panicked: r}
					}
				}()
				result, err := next.Handle(ctx)
				done <- handlerResponse{result: result, err: err}
			}()

			timer := time.NewTimer(config.DeferAfter)
			defer timer.Stop()

			select {
			case resp := <-done:
				return resp.unwrap()
			case <-timer.C:
			}

			var err error
			if ctx.IsCommand() {
				err = responder.Defer(config.EphemeralCommands)
			} else {
				err = responder.DeferUpdate()
			}
			if err != nil {
				log.Printf("[Discord] Failed to defer %s: %v", interactionName(ctx), err)
			}

			resp := <-done
			if resp.result != nil {
				resp.result.Deferred = true
			}
			return resp.unwrap()
		})
	}
}

func (r handlerResponse) unwrap() (*core.HandlerResult, error) {
	if r.panicked != nil {
		panic(r.panicked)
	}
	return r.result, r.err
}

func skipDefer(ctx *core.InteractionContext, config *DeferConfig) bool {
	if !ctx.IsComponent() {
		return false
	}
	customID, err := core.ParseCustomID(ctx.GetCustomID())
	if err != nil {
		return false
	}
	return slices.Contains(config.SkipActions, customID.Action)
}
