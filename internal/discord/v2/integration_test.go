package v2_test

import (
	"context"
	"errors"
	"testing"
	"time"

	v2 "github.com/KirkDiggler/dream-bot-discord/internal/discord/v2"
	"github.com/KirkDiggler/dream-bot-discord/internal/discord/v2/builders"
	"github.com/KirkDiggler/dream-bot-discord/internal/discord/v2/core"
	"github.com/KirkDiggler/dream-bot-discord/internal/discord/v2/middleware"
	"github.com/KirkDiggler/dream-bot-discord/internal/profile"
	"github.com/KirkDiggler/dream-bot-discord/internal/services/editor"
	mockeditor "github.com/KirkDiggler/dream-bot-discord/internal/services/editor/mock"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeCommandCreator records created commands
type fakeCommandCreator struct {
	appID    string
	guildID  string
	commands []*discordgo.ApplicationCommand
	err      error
}

func (f *fakeCommandCreator) ApplicationCommandCreate(appID, guildID string, cmd *discordgo.ApplicationCommand, _ ...discordgo.RequestOption) (*discordgo.ApplicationCommand, error) {
	f.appID = appID
	f.guildID = guildID
	if f.err != nil {
		return nil, f.err
	}
	f.commands = append(f.commands, cmd)
	return cmd, nil
}

func overview() *editor.Overview {
	return &editor.Overview{
		GameVersion: "WHITE2",
		Slots: []editor.SlotSummary{
			{Kind: profile.SlotEncounters, Capacity: 10},
			{Kind: profile.SlotItems, Capacity: 20},
			{Kind: profile.SlotVisitors, Capacity: 4},
		},
	}
}

func setup(t *testing.T) (*v2.Bot, *mockeditor.MockService) {
	ctrl := gomock.NewController(t)
	service := mockeditor.NewMockService(ctrl)

	bot, err := v2.Setup(&v2.Config{
		Service:       service,
		SpriteBaseURL: "https://sprites.example.test",
		DeferAfter:    20 * time.Millisecond,
	})
	require.NoError(t, err)
	return bot, service
}

func TestSetup_RequiresService(t *testing.T) {
	_, err := v2.Setup(&v2.Config{})
	assert.Error(t, err)

	_, err = v2.Setup(nil)
	assert.Error(t, err)
}

func TestSetup_LoginCommand(t *testing.T) {
	bot, service := setup(t)
	service.EXPECT().Login(gomock.Any(), "user123", "GSID123").Return(overview(), nil)

	responder := core.NewMockResponder()
	ctx := core.NewTestInteractionContext().
		WithUserID("user123").
		WithParam("gsid", "GSID123").
		AsCommand("dream", "login")

	require.NoError(t, bot.Pipeline.Dispatch(ctx.InteractionContext, responder))

	require.Len(t, responder.Responses, 1)
	assert.True(t, responder.Responses[0].Ephemeral)
	assert.Equal(t, "Dream profile", responder.Responses[0].Embeds[0].Title)
}

func TestSetup_SlowComponentIsDeferredThenEdited(t *testing.T) {
	bot, service := setup(t)
	service.EXPECT().Save(gomock.Any(), "user123").
		DoAndReturn(func(ctx context.Context, userID string) (*profile.Status, error) {
			time.Sleep(100 * time.Millisecond)
			return &profile.Status{Message: "Saved."}, nil
		})
	service.EXPECT().Overview(gomock.Any(), "user123").Return(overview(), nil)

	responder := core.NewMockResponder()
	ctx := core.NewTestInteractionContext().
		WithUserID("user123").
		AsComponent("dream:push")

	require.NoError(t, bot.Pipeline.Dispatch(ctx.InteractionContext, responder))

	assert.Equal(t, 1, responder.DeferUpdates)
	assert.Empty(t, responder.Responses)
	require.Len(t, responder.Edits, 1)
	assert.Equal(t, "✅ Saved.", responder.Edits[0].Content)
}

func TestSetup_SlowFailureBecomesFollowUp(t *testing.T) {
	bot, service := setup(t)
	service.EXPECT().Save(gomock.Any(), "user123").
		DoAndReturn(func(ctx context.Context, userID string) (*profile.Status, error) {
			time.Sleep(100 * time.Millisecond)
			return nil, errors.New("boom")
		})

	responder := core.NewMockResponder()
	ctx := core.NewTestInteractionContext().
		WithUserID("user123").
		AsComponent("dream:push")

	require.NoError(t, bot.Pipeline.Dispatch(ctx.InteractionContext, responder))

	assert.Empty(t, responder.Edits)
	require.Len(t, responder.FollowUps, 1)
	assert.True(t, responder.FollowUps[0].Ephemeral)
}

func TestSetup_ModalActionsAreNotDeferred(t *testing.T) {
	bot, service := setup(t)
	service.EXPECT().Overview(gomock.Any(), "user123").
		DoAndReturn(func(ctx context.Context, userID string) (*editor.Overview, error) {
			time.Sleep(60 * time.Millisecond)
			return overview(), nil
		})

	responder := core.NewMockResponder()
	ctx := core.NewTestInteractionContext().
		WithUserID("user123").
		AsComponent("dream:levels")

	require.NoError(t, bot.Pipeline.Dispatch(ctx.InteractionContext, responder))

	assert.Zero(t, responder.DeferUpdates)
	require.Len(t, responder.Responses, 1)
	assert.NotNil(t, responder.Responses[0].Modal)
}

func TestSetup_RecoversFromPanics(t *testing.T) {
	bot, service := setup(t)
	service.EXPECT().Overview(gomock.Any(), "user123").
		DoAndReturn(func(ctx context.Context, userID string) (*editor.Overview, error) {
			panic("nil map")
		})

	responder := core.NewMockResponder()
	ctx := core.NewTestInteractionContext().
		WithUserID("user123").
		AsComponent("dream:overview")

	require.NoError(t, bot.Pipeline.Dispatch(ctx.InteractionContext, responder))

	require.Len(t, responder.Responses, 1)
	assert.True(t, responder.Responses[0].Ephemeral)
}

func TestRegisterCommands(t *testing.T) {
	bot, _ := setup(t)
	creator := &fakeCommandCreator{}

	require.NoError(t, bot.RegisterCommands(creator, "app123", "guild123"))

	assert.Equal(t, "app123", creator.appID)
	assert.Equal(t, "guild123", creator.guildID)
	require.Len(t, creator.commands, 1)
	assert.Equal(t, "dream", creator.commands[0].Name)
}

func TestRegisterCommands_Error(t *testing.T) {
	bot, _ := setup(t)
	creator := &fakeCommandCreator{err: errors.New("missing access")}

	err := bot.RegisterCommands(creator, "app123", "")
	assert.ErrorContains(t, err, "failed to create command dream")
}

func TestRouterIntegration(t *testing.T) {
	pipeline := core.NewPipeline()
	router := core.NewRouter("test", pipeline)

	var lastResponse *core.Response

	router.HandleFunc("cmd:test:show", func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
		lastResponse = core.NewResponse("Showing: " + ctx.GetStringParam("id"))
		return &core.HandlerResult{Response: lastResponse}, nil
	})

	router.Component("button", func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
		customID, err := core.ParseCustomID(ctx.GetCustomID())
		if err != nil {
			return nil, core.NewInternalError(err)
		}
		lastResponse = core.NewResponse("Button pressed: " + customID.Target)
		return &core.HandlerResult{Response: lastResponse}, nil
	})

	router.Register()
	require.Equal(t, 1, pipeline.HandlerCount())

	t.Run("ShowCommand", func(t *testing.T) {
		responder := core.NewMockResponder()
		ctx := core.NewTestInteractionContext().
			AsCommand("test", "show").
			WithParam("id", "item123")

		require.NoError(t, pipeline.Dispatch(ctx.InteractionContext, responder))
		assert.Equal(t, "Showing: item123", lastResponse.Content)
	})

	t.Run("ButtonComponent", func(t *testing.T) {
		responder := core.NewMockResponder()
		ctx := core.NewTestInteractionContext().AsComponent("test:button:target123")

		require.NoError(t, pipeline.Dispatch(ctx.InteractionContext, responder))
		assert.Equal(t, "Button pressed: target123", lastResponse.Content)
	})
}

func TestMiddlewareIntegration_ErrorMiddleware(t *testing.T) {
	pipeline := core.NewPipeline()
	pipeline.Use(middleware.ErrorMiddleware(&middleware.ErrorConfig{}))
	pipeline.Register(core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
		return nil, core.NewValidationError("Invalid input")
	}))

	responder := core.NewMockResponder()
	ctx := core.NewTestInteractionContext().AsCommand("test")

	require.NoError(t, pipeline.Dispatch(ctx.InteractionContext, responder))

	resp := responder.LastResponse()
	require.NotNil(t, resp)
	assert.Equal(t, "Invalid input", resp.Content)
	assert.True(t, resp.Ephemeral)
}

func TestBuildersIntegration(t *testing.T) {
	t.Run("EmbedBuilder", func(t *testing.T) {
		embed := builders.SuccessEmbed("Saved", "Your profile was sent.").
			Field("Encounters", "3/10", true).
			Field("Items", "", true).
			Footer("Game Sync").
			Build()

		assert.Equal(t, "✅ Saved", embed.Title)
		assert.Equal(t, builders.ColorSuccess, embed.Color)
		require.Len(t, embed.Fields, 2)
		assert.Equal(t, "\u200b", embed.Fields[1].Value)
	})

	t.Run("ComponentBuilder", func(t *testing.T) {
		builder := builders.NewComponentBuilder(core.NewCustomIDBuilder("dream"))

		components := builder.
			PrimaryButton("Items", "grid", "items").
			SecondaryButton("Back", "overview", "").
			SelectMenu("Gender", "field", "encounters", []builders.SelectOption{
				{Label: "Male", Value: "MALE"},
				{Label: "Female", Value: "FEMALE"},
			}, "gender").
			Build()

		require.Len(t, components, 2)

		row1, ok := components[0].(discordgo.ActionsRow)
		require.True(t, ok)
		require.Len(t, row1.Components, 2)

		btn, ok := row1.Components[0].(discordgo.Button)
		require.True(t, ok)
		assert.Equal(t, "dream:grid:items", btn.CustomID)

		row2 := components[1].(discordgo.ActionsRow)
		menu, ok := row2.Components[0].(discordgo.SelectMenu)
		require.True(t, ok)
		assert.Equal(t, "dream:field:encounters:gender", menu.CustomID)
	})
}
