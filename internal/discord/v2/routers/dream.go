package routers

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/dream-bot-discord/internal/discord/v2/builders"
	"github.com/KirkDiggler/dream-bot-discord/internal/discord/v2/core"
	"github.com/KirkDiggler/dream-bot-discord/internal/discord/v2/middleware"
	dnderr "github.com/KirkDiggler/dream-bot-discord/internal/errors"
	"github.com/KirkDiggler/dream-bot-discord/internal/profile"
	"github.com/KirkDiggler/dream-bot-discord/internal/services/editor"
	"github.com/bwmarrin/discordgo"
)

// DreamCommand is the slash command and custom ID domain of the editor
const DreamCommand = "dream"

// lookupLimit is the number of matches /dream lookup shows
const lookupLimit = 10

// DreamRouterConfig holds the dependencies of the dream router
type DreamRouterConfig struct {
	Pipeline      *core.Pipeline
	Service       editor.Service
	SpriteBaseURL string

	// RateLimit stores per-user request counts. Defaults to an in-memory store.
	RateLimit       middleware.RateLimitStore
	RateLimitMax    int
	RateLimitWindow time.Duration
}

// Validate checks the required fields
func (c *DreamRouterConfig) Validate() error {
	if c == nil {
		return errors.New("config is required")
	}
	if c.Pipeline == nil {
		return errors.New("pipeline is required")
	}
	if c.Service == nil {
		return errors.New("editor service is required")
	}
	return nil
}

// DreamRouter handles /dream and the editor's components and modals
type DreamRouter struct {
	router  *core.Router
	service editor.Service
	views   *builders.DreamViews
}

// NewDreamRouter creates the router and registers it with the pipeline
func NewDreamRouter(cfg *DreamRouterConfig) (*DreamRouter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	router := core.NewRouter(DreamCommand, cfg.Pipeline)

	store := cfg.RateLimit
	if store == nil {
		store = middleware.NewMemoryRateLimitStore()
	}
	maxRequests := cfg.RateLimitMax
	if maxRequests <= 0 {
		maxRequests = 30
	}
	window := cfg.RateLimitWindow
	if window <= 0 {
		window = time.Minute
	}
	router.Use(middleware.UserRateLimitMiddleware(maxRequests, window, store))

	dr := &DreamRouter{
		router:  router,
		service: cfg.Service,
		views:   builders.NewDreamViews(router.IDs(), cfg.SpriteBaseURL),
	}

	dr.registerRoutes()
	router.Register()

	return dr, nil
}

func (r *DreamRouter) registerRoutes() {
	// Slash commands
	r.router.Subcommand("login", r.handleLogin)
	r.router.Subcommand("profile", r.handleProfile)
	r.router.Subcommand("logout", r.handleLogout)
	r.router.Subcommand("lookup", r.handleLookup)

	// Components
	r.router.Component(builders.ActionOverview, r.handleOverview)
	r.router.Component(builders.ActionReload, r.handleProfile)
	r.router.Component(builders.ActionGrid, r.handleGrid)
	r.router.Component(builders.ActionEdit, r.handleEdit)
	r.router.Component(builders.ActionText, r.handleText)
	r.router.Component(builders.ActionField, r.handleField)
	r.router.Component(builders.ActionSaveSlot, r.handleSaveSlot)
	r.router.Component(builders.ActionCancel, r.handleCancel)
	r.router.Component(builders.ActionRemove, r.handleRemove)
	r.router.Component(builders.ActionDLC, r.handleDLC)
	r.router.Component(builders.ActionLevels, r.handleLevels)
	r.router.Component(builders.ActionPush, r.handlePush)
	r.router.Component(builders.ActionLogout, r.handleLogout)

	// Modals
	r.router.Modal(builders.ModalDraft, r.handleDraftSubmit)
	r.router.Modal(builders.ModalLevels, r.handleLevelsSubmit)
}

func respond(resp *core.Response) (*core.HandlerResult, error) {
	return &core.HandlerResult{Response: resp}, nil
}

// customID parses the custom ID of a component or modal
func customID(ctx *core.InteractionContext) (*core.CustomID, error) {
	id, err := core.ParseCustomID(ctx.GetCustomID())
	if err != nil {
		return nil, core.NewValidationError("That button is no longer valid.")
	}
	return id, nil
}

// slotKind reads the collection a component or modal targets
func slotKind(id *core.CustomID) (profile.SlotKind, error) {
	kind := profile.SlotKind(id.Target)
	if !kind.Valid() {
		return "", core.NewValidationError("That button is no longer valid.")
	}
	return kind, nil
}

func (r *DreamRouter) handleLogin(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	gsid := ctx.GetStringParam("gsid")
	if strings.TrimSpace(gsid) == "" {
		return nil, core.NewValidationError("Enter the Game Sync ID shown in your game.")
	}

	overview, err := r.service.Login(ctx.Context, ctx.UserID, gsid)
	if err != nil {
		return nil, err
	}
	return respond(r.views.Overview(overview))
}

// handleProfile re-fetches the profile. It serves both /dream profile and
// the Reload button.
func (r *DreamRouter) handleProfile(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	overview, err := r.service.Open(ctx.Context, ctx.UserID)
	if err != nil {
		return nil, err
	}
	return respond(r.views.Overview(overview))
}

func (r *DreamRouter) handleLookup(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	field := editor.Field(ctx.GetStringParam("field"))
	query := ctx.GetStringParam("query")

	matches, err := r.service.Search(ctx.Context, ctx.UserID, field, query, lookupLimit)
	if err != nil {
		return nil, err
	}
	return respond(r.views.Matches(field, query, matches))
}

func (r *DreamRouter) handleOverview(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	overview, err := r.service.Overview(ctx.Context, ctx.UserID)
	if err != nil {
		return nil, err
	}
	return respond(r.views.Overview(overview))
}

func (r *DreamRouter) handleGrid(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	id, err := customID(ctx)
	if err != nil {
		return nil, err
	}
	kind, err := slotKind(id)
	if err != nil {
		return nil, err
	}

	grid, err := r.service.Grid(ctx.Context, ctx.UserID, kind)
	if err != nil {
		return nil, err
	}
	return respond(r.views.Grid(grid))
}

func (r *DreamRouter) handleEdit(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	id, err := customID(ctx)
	if err != nil {
		return nil, err
	}
	kind, err := slotKind(id)
	if err != nil {
		return nil, err
	}
	index, err := strconv.Atoi(id.Arg(0))
	if err != nil {
		return nil, core.NewValidationError("That button is no longer valid.")
	}

	edit, err := r.service.BeginEdit(ctx.Context, ctx.UserID, kind, index)
	if err != nil {
		return nil, err
	}
	return respond(r.views.Edit(edit))
}

// handleText opens the modal for the text fields of one part of the draft
func (r *DreamRouter) handleText(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	id, err := customID(ctx)
	if err != nil {
		return nil, err
	}
	kind, err := slotKind(id)
	if err != nil {
		return nil, err
	}

	edit, err := r.service.Draft(ctx.Context, ctx.UserID, kind)
	if err != nil {
		return nil, err
	}

	modal, err := r.views.DraftModal(edit, id.Arg(0))
	if err != nil {
		return nil, err
	}
	return respond(modal)
}

// handleField applies a value picked in one of the draft's select menus
func (r *DreamRouter) handleField(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	id, err := customID(ctx)
	if err != nil {
		return nil, err
	}
	kind, err := slotKind(id)
	if err != nil {
		return nil, err
	}

	value := ctx.FirstValue()
	if value == "" {
		return nil, core.NewValidationError("Pick an option first.")
	}

	var edit *editor.Edit
	switch field := editor.Field(id.Arg(0)); {
	case kind == profile.SlotEncounters && field == editor.FieldGender:
		edit, err = r.service.UpdateEncounterDraft(ctx.Context, ctx.UserID, &editor.EncounterInput{Gender: profile.Gender(value)})
	case kind == profile.SlotEncounters && field == editor.FieldAnimation:
		edit, err = r.service.UpdateEncounterDraft(ctx.Context, ctx.UserID, &editor.EncounterInput{Animation: profile.Animation(value)})
	case kind == profile.SlotVisitors && field == editor.FieldVisitorType:
		edit, err = r.service.UpdateVisitorDraft(ctx.Context, ctx.UserID, &editor.VisitorInput{Type: profile.VisitorType(value)})
	case kind == profile.SlotVisitors && field == editor.FieldShop:
		edit, err = r.service.UpdateVisitorDraft(ctx.Context, ctx.UserID, &editor.VisitorInput{ShopType: profile.ShopType(value)})
	default:
		return nil, core.NewValidationError("That menu is no longer valid.")
	}
	if err != nil {
		return nil, err
	}
	return respond(r.views.Edit(edit))
}

func (r *DreamRouter) handleSaveSlot(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	return r.gridAction(ctx, r.service.Commit)
}

func (r *DreamRouter) handleCancel(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	return r.gridAction(ctx, r.service.Cancel)
}

func (r *DreamRouter) handleRemove(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	return r.gridAction(ctx, r.service.Remove)
}

type gridFunc func(ctx context.Context, userID string, kind profile.SlotKind) (*editor.Grid, error)

// gridAction closes the edit surface of the targeted collection and shows its grid
func (r *DreamRouter) gridAction(ctx *core.InteractionContext, fn gridFunc) (*core.HandlerResult, error) {
	id, err := customID(ctx)
	if err != nil {
		return nil, err
	}
	kind, err := slotKind(id)
	if err != nil {
		return nil, err
	}

	grid, err := fn(ctx.Context, ctx.UserID, kind)
	if err != nil {
		return nil, err
	}
	return respond(r.views.Grid(grid))
}

func (r *DreamRouter) handleDLC(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	id, err := customID(ctx)
	if err != nil {
		return nil, err
	}

	overview, err := r.service.SelectDLC(ctx.Context, ctx.UserID, profile.DLCType(id.Target), ctx.FirstValue())
	if err != nil {
		return nil, err
	}
	return respond(r.views.Overview(overview))
}

func (r *DreamRouter) handleLevels(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	overview, err := r.service.Overview(ctx.Context, ctx.UserID)
	if err != nil {
		return nil, err
	}
	return respond(r.views.LevelsModal(overview.GainedLevels))
}

func (r *DreamRouter) handlePush(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	status, err := r.service.Save(ctx.Context, ctx.UserID)
	if err != nil {
		return nil, err
	}

	overview, err := r.service.Overview(ctx.Context, ctx.UserID)
	if err != nil {
		return nil, err
	}
	return respond(r.views.Saved(overview, status))
}

func (r *DreamRouter) handleLogout(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	if err := r.service.Logout(ctx.Context, ctx.UserID); err != nil {
		return nil, err
	}
	return respond(r.views.LoggedOut())
}

// handleDraftSubmit applies the text fields of a draft modal
func (r *DreamRouter) handleDraftSubmit(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	id, err := customID(ctx)
	if err != nil {
		return nil, err
	}
	kind, err := slotKind(id)
	if err != nil {
		return nil, err
	}

	text := func(f editor.Field) string {
		return strings.TrimSpace(ctx.GetStringParam(string(f)))
	}

	var edit *editor.Edit
	switch kind {
	case profile.SlotEncounters:
		form, perr := optionalInt(text(editor.FieldForm), "Form")
		if perr != nil {
			return nil, perr
		}
		edit, err = r.service.UpdateEncounterDraft(ctx.Context, ctx.UserID, &editor.EncounterInput{
			Species: text(editor.FieldSpecies),
			Move:    text(editor.FieldMove),
			Form:    form,
		})
	case profile.SlotItems:
		quantity, perr := optionalInt(text(editor.FieldQuantity), "Quantity")
		if perr != nil {
			return nil, perr
		}
		edit, err = r.service.UpdateItemDraft(ctx.Context, ctx.UserID, &editor.ItemInput{
			Item:     text(editor.FieldItem),
			Quantity: quantity,
		})
	case profile.SlotVisitors:
		input := &editor.VisitorInput{}
		if id.Arg(0) == builders.PartDetails {
			name := text(editor.FieldName)
			input.Name = &name
			input.DreamerSpecies = text(editor.FieldDreamerSpecies)
			input.Personality, err = optionalInt(text(editor.FieldPersonality), "Personality")
			if err != nil {
				return nil, err
			}
		} else {
			input.GameVersion = text(editor.FieldGameVersion)
			input.Country = text(editor.FieldCountry)
			input.Subregion = text(editor.FieldSubregion)
		}
		edit, err = r.service.UpdateVisitorDraft(ctx.Context, ctx.UserID, input)
	}
	if err != nil {
		return nil, err
	}
	return respond(r.views.Edit(edit))
}

func (r *DreamRouter) handleLevelsSubmit(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	levels, err := optionalInt(strings.TrimSpace(ctx.GetStringParam(builders.LevelsInput)), "Levels gained")
	if err != nil {
		return nil, err
	}
	if levels == nil {
		return nil, dnderr.Validation("Levels gained must be a number.")
	}

	overview, err := r.service.SetGainedLevels(ctx.Context, ctx.UserID, *levels)
	if err != nil {
		return nil, err
	}
	return respond(r.views.Overview(overview))
}

// optionalInt parses a numeric modal field. An empty field keeps the current value.
func optionalInt(value, label string) (*int, error) {
	if value == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil, dnderr.Validationf("%s must be a number.", label)
	}
	return &n, nil
}

// Commands returns the application commands this router answers
func (r *DreamRouter) Commands() []*discordgo.ApplicationCommand {
	fieldChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(lookupFields))
	for _, f := range lookupFields {
		fieldChoices = append(fieldChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  profile.Title(string(f)),
			Value: string(f),
		})
	}

	return []*discordgo.ApplicationCommand{
		{
			Name:        DreamCommand,
			Description: "Edit your Pokémon Dream World profile",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "login",
					Description: "Open your profile with a Game Sync ID",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "gsid",
							Description: "The Game Sync ID shown in your game",
							Required:    true,
							MaxLength:   16,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "profile",
					Description: "Reload your profile, discarding unsaved changes",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "logout",
					Description: "Close your profile",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "lookup",
					Description: "Find the names and ids a field accepts",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "field",
							Description: "What to look up",
							Required:    true,
							Choices:     fieldChoices,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "query",
							Description: "Part of a name",
							Required:    true,
						},
					},
				},
			},
		},
	}
}

// lookupFields are the text fields /dream lookup can search
var lookupFields = []editor.Field{
	editor.FieldSpecies,
	editor.FieldMove,
	editor.FieldItem,
	editor.FieldCountry,
	editor.FieldSubregion,
	editor.FieldGameVersion,
	editor.FieldDreamerSpecies,
}
