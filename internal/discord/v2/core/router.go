package core

import (
	"fmt"
	"strings"
)

const wildcard = "*"

// Router maps the interactions of one domain to handlers. The domain is both
// the slash command name and the first part of every custom ID it builds.
// Routes are keyed as cmd:<domain>:<sub>, component:<action> and
// modal:<action>; a trailing ":*" matches any remainder.
type Router struct {
	domain     string
	routes     map[string]Handler
	middleware []Middleware
	ids        *CustomIDBuilder
	pipeline   *Pipeline
}

// NewRouter creates a router for domain that registers with pipeline
func NewRouter(domain string, pipeline *Pipeline) *Router {
	return &Router{
		domain:   domain,
		routes:   make(map[string]Handler),
		ids:      NewCustomIDBuilder(domain),
		pipeline: pipeline,
	}
}

// Use adds middleware to routes registered after the call
func (r *Router) Use(middleware ...Middleware) *Router {
	r.middleware = append(r.middleware, middleware...)
	return r
}

// Handle registers a handler under a raw route key
func (r *Router) Handle(route string, handler Handler) *Router {
	for i := len(r.middleware) - 1; i >= 0; i-- {
		handler = r.middleware[i](handler)
	}
	r.routes[route] = handler
	return r
}

// HandleFunc registers a function under a raw route key
func (r *Router) HandleFunc(route string, fn HandlerFunc) *Router {
	return r.Handle(route, fn)
}

// Subcommand handles /<domain> <sub>
func (r *Router) Subcommand(sub string, fn HandlerFunc) *Router {
	return r.Handle(fmt.Sprintf("cmd:%s:%s", r.domain, sub), fn)
}

// Component handles buttons and select menus whose custom ID carries action
func (r *Router) Component(action string, fn HandlerFunc) *Router {
	return r.Handle("component:"+action, fn)
}

// Modal handles modal submits whose custom ID carries action
func (r *Router) Modal(action string, fn HandlerFunc) *Router {
	return r.Handle("modal:"+action, fn)
}

// IDs returns the custom ID builder for this domain
func (r *Router) IDs() *CustomIDBuilder {
	return r.ids
}

// Build returns one handler serving every route
func (r *Router) Build() Handler {
	return &routerHandler{
		domain: r.domain,
		routes: r.routes,
	}
}

// Register adds the router to its pipeline
func (r *Router) Register() {
	if r.pipeline != nil {
		r.pipeline.Register(r.Build())
	}
}

type routerHandler struct {
	domain string
	routes map[string]Handler
}

func (h *routerHandler) CanHandle(ctx *InteractionContext) bool {
	_, ok := h.match(ctx)
	return ok
}

func (h *routerHandler) Handle(ctx *InteractionContext) (*HandlerResult, error) {
	handler, ok := h.match(ctx)
	if !ok {
		return nil, NewValidationError("That action is no longer available.")
	}
	return handler.Handle(ctx)
}

// match finds the exact route or the longest wildcard covering it
func (h *routerHandler) match(ctx *InteractionContext) (Handler, bool) {
	route := h.route(ctx)
	if route == "" {
		return nil, false
	}
	if handler, ok := h.routes[route]; ok {
		return handler, true
	}

	parts := strings.Split(route, ":")
	for i := len(parts); i > 0; i-- {
		key := strings.Join(parts[:i], ":") + ":" + wildcard
		if handler, ok := h.routes[key]; ok {
			return handler, true
		}
	}
	return nil, false
}

// route derives the route key of an interaction, or "" when it belongs to
// another domain
func (h *routerHandler) route(ctx *InteractionContext) string {
	switch {
	case ctx.IsCommand():
		if ctx.GetCommandName() != h.domain {
			return ""
		}
		if sub := ctx.GetSubcommand(); sub != "" {
			return fmt.Sprintf("cmd:%s:%s", h.domain, sub)
		}
		return "cmd:" + h.domain
	case ctx.IsComponent(), ctx.IsModal():
		id, err := ParseCustomID(ctx.GetCustomID())
		if err != nil || id.Domain != h.domain {
			return ""
		}
		prefix := "component:"
		if ctx.IsModal() {
			prefix = "modal:"
		}
		return prefix + id.Action
	}
	return ""
}
