package core

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/bwmarrin/discordgo"
)

// Pipeline manages handler registration and execution
type Pipeline struct {
	// Handlers registered in the pipeline
	handlers []Handler

	// Middleware to apply to all handlers
	middleware []Middleware

	// Error handler for uncaught errors
	errorHandler ErrorHandler

	// Whether to stop on first handler that can handle
	stopOnFirst bool

	// Mutex for thread-safe handler registration
	mu sync.RWMutex
}

// Middleware is a function that wraps a handler
type Middleware func(Handler) Handler

// ErrorHandler handles errors that occur during pipeline execution
type ErrorHandler func(ctx *InteractionContext, err error) *HandlerResult

// NewPipeline creates a new handler pipeline
func NewPipeline() *Pipeline {
	return &Pipeline{
		handlers:     make([]Handler, 0),
		middleware:   make([]Middleware, 0),
		errorHandler: defaultErrorHandler,
		stopOnFirst:  true,
	}
}

// Register adds handlers to the pipeline
func (p *Pipeline) Register(handlers ...Handler) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, h := range handlers {
		// Apply all middleware to the handler
		wrapped := h
		for i := len(p.middleware) - 1; i >= 0; i-- {
			wrapped = p.middleware[i](wrapped)
		}
		p.handlers = append(p.handlers, wrapped)
	}
}

// Use adds middleware to the pipeline
func (p *Pipeline) Use(middleware ...Middleware) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.middleware = append(p.middleware, middleware...)
}

// SetStopOnFirst configures whether to stop after the first handler that can handle
func (p *Pipeline) SetStopOnFirst(stop bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopOnFirst = stop
}

// Execute runs the pipeline for an interaction
func (p *Pipeline) Execute(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return p.Dispatch(NewInteractionContext(ctx, s, i), NewDiscordResponder(s, i))
}

// Dispatch runs the pipeline for an already parsed interaction
func (p *Pipeline) Dispatch(interactionCtx *InteractionContext, responder InteractionResponder) error {
	interactionCtx.SetResponder(responder)

	p.mu.RLock()
	handlers := make([]Handler, len(p.handlers))
	copy(handlers, p.handlers)
	stopOnFirst := p.stopOnFirst
	errorHandler := p.errorHandler
	p.mu.RUnlock()

	handled := false
	for _, handler := range handlers {
		if !handler.CanHandle(interactionCtx) {
			continue
		}
		result, err := handler.Handle(interactionCtx)

		if err != nil {
			result = errorHandler(interactionCtx, err)
		}

		if result != nil && result.Response != nil {
			if err := p.sendResponse(interactionCtx, responder, result.Response); err != nil {
				return fmt.Errorf("failed to send response: %w", err)
			}
		}

		handled = true

		if stopOnFirst || (result != nil && result.StopPropagation) {
			break
		}
	}

	if !handled {
		log.Printf("[Pipeline] No handler for %s", describe(interactionCtx))
		if !responder.HasResponded() {
			return p.sendResponse(interactionCtx, responder, NewEphemeralResponse("I don't know how to handle that."))
		}
	}

	return nil
}

// sendResponse delivers a response. After a deferred component update only
// message updates edit the original; anything else goes out as a follow-up.
func (p *Pipeline) sendResponse(ctx *InteractionContext, responder InteractionResponder, response *Response) error {
	if !responder.HasResponded() {
		return responder.Respond(response)
	}

	if ctx.IsCommand() || response.Update {
		return responder.Edit(response)
	}

	_, err := responder.FollowUp(response)
	return err
}

func describe(ctx *InteractionContext) string {
	switch {
	case ctx.IsCommand():
		return fmt.Sprintf("command %s/%s", ctx.GetCommandName(), ctx.GetSubcommand())
	case ctx.IsComponent(), ctx.IsModal():
		return fmt.Sprintf("custom id %q", ctx.GetCustomID())
	}
	return "unknown interaction"
}

// Clear removes all handlers from the pipeline
func (p *Pipeline) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.handlers = make([]Handler, 0)
}

// HandlerCount returns the number of registered handlers
func (p *Pipeline) HandlerCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return len(p.handlers)
}

// defaultErrorHandler is the default error handler
func defaultErrorHandler(ctx *InteractionContext, err error) *HandlerResult {
	if msg, ok := UserMessage(err); ok {
		return &HandlerResult{
			Response: NewEphemeralResponse(msg),
		}
	}

	return &HandlerResult{
		Response: NewEphemeralResponse("An error occurred while processing your request."),
	}
}

// MiddlewareChain creates a single middleware from multiple middleware
func MiddlewareChain(middleware ...Middleware) Middleware {
	return func(next Handler) Handler {
		// Apply middleware in reverse order
		for i := len(middleware) - 1; i >= 0; i-- {
			next = middleware[i](next)
		}
		return next
	}
}
