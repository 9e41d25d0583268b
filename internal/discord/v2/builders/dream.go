package builders

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/dream-bot-discord/internal/catalog"
	"github.com/KirkDiggler/dream-bot-discord/internal/discord/v2/core"
	"github.com/KirkDiggler/dream-bot-discord/internal/profile"
	"github.com/KirkDiggler/dream-bot-discord/internal/services/editor"
	"github.com/KirkDiggler/dream-bot-discord/internal/slots"
	"github.com/bwmarrin/discordgo"
)

// Component actions of the dream router
const (
	ActionOverview = "overview"
	ActionReload   = "reload"
	ActionGrid     = "grid"
	ActionEdit     = "edit"
	ActionText     = "text"
	ActionField    = "field"
	ActionSaveSlot = "save_slot"
	ActionCancel   = "cancel"
	ActionRemove   = "remove"
	ActionDLC      = "dlc"
	ActionLevels   = "levels"
	ActionPush     = "push"
	ActionLogout   = "logout"
)

// Modal actions of the dream router
const (
	ModalDraft  = "draft"
	ModalLevels = "levels"
)

// Parts of a draft edited through a modal
const (
	PartMain    = "main"
	PartDetails = "details"
	PartOrigin  = "origin"
)

// LevelsInput is the text input id of the gained levels modal
const LevelsInput = "levels"

// DreamViews renders editor views as Discord messages
type DreamViews struct {
	ids        *core.CustomIDBuilder
	spriteBase string
}

// NewDreamViews creates the renderer. Sprite paths are resolved against spriteBase.
func NewDreamViews(ids *core.CustomIDBuilder, spriteBase string) *DreamViews {
	return &DreamViews{
		ids:        ids,
		spriteBase: strings.TrimRight(spriteBase, "/"),
	}
}

// SpriteURL turns a sprite path into an absolute URL
func (v *DreamViews) SpriteURL(path string) string {
	if path == "" || strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return v.spriteBase + path
}

func view(embeds []*discordgo.MessageEmbed, components []discordgo.MessageComponent) *core.Response {
	return core.NewResponse("").
		WithEmbeds(embeds...).
		WithComponents(components...).
		AsEphemeral().
		AsUpdate()
}

// KindTitle names a slot collection
func KindTitle(kind profile.SlotKind) string {
	switch kind {
	case profile.SlotEncounters:
		return "Encounters"
	case profile.SlotItems:
		return "Items"
	case profile.SlotVisitors:
		return "Join Avenue visitors"
	}
	return string(kind)
}

func kindNoun(kind profile.SlotKind) string {
	switch kind {
	case profile.SlotEncounters:
		return "encounter"
	case profile.SlotItems:
		return "item"
	case profile.SlotVisitors:
		return "visitor"
	}
	return "slot"
}

// DLCTitle names a DLC category
func DLCTitle(t profile.DLCType) string {
	switch t {
	case profile.DLCCGear, profile.DLCCGear2:
		return "C-Gear skin"
	case profile.DLCDexSkin:
		return "Pokédex skin"
	case profile.DLCMusical:
		return "Musical show"
	}
	return string(t)
}

// Overview renders the profile summary with navigation and DLC pickers
func (v *DreamViews) Overview(o *editor.Overview) *core.Response {
	game := "Unknown"
	if o.GameVersion != "" {
		game = profile.Title(o.GameVersion)
	}

	main := NewEmbed().
		Title("Dream profile").
		Color(ColorDream).
		Thumbnail(v.SpriteURL(o.DreamerSprite)).
		Field("Game", game, true).
		Field("Levels gained", strconv.Itoa(o.GainedLevels), true)

	if o.Dreamer != nil {
		d := o.Dreamer
		main.Field("Dreaming", fmt.Sprintf("%s (%s) Lv. %d\nTrainer %s · ID %05d",
			d.Nickname, o.DreamerName, d.Level, d.TrainerName, d.TrainerID), false)
	} else {
		main.Description("No Pokémon is asleep in the Game Sync yet.")
	}

	for _, s := range o.Slots {
		main.Field(KindTitle(s.Kind), fmt.Sprintf("%d/%d", s.Size, s.Capacity), true)
	}
	for _, d := range o.DLC {
		main.Field(DLCTitle(d.Type), displayDLC(d.Selected), true)
	}

	embeds := []*discordgo.MessageEmbed{main.Build()}
	for _, d := range o.DLC {
		if d.PreviewURL == "" {
			continue
		}
		embeds = append(embeds, NewEmbed().
			Title(fmt.Sprintf("%s: %s", DLCTitle(d.Type), d.Selected)).
			Color(ColorDream).
			Image(d.PreviewURL).
			Build())
	}

	components := NewComponentBuilder(v.ids)
	for _, s := range o.Slots {
		components.PrimaryButton(KindTitle(s.Kind), ActionGrid, string(s.Kind))
	}
	components.SecondaryButton("Levels gained", ActionLevels, "")
	components.SuccessButton("Save to Game Sync", ActionPush, "")

	for _, d := range o.DLC {
		components.SelectMenu(DLCTitle(d.Type), ActionDLC, string(d.Type), dlcOptions(d))
	}

	components.SecondaryButton("Reload", ActionReload, "")
	components.DangerButton("Log out", ActionLogout, "")

	return view(embeds, components.Build())
}

func displayDLC(name string) string {
	if name == "" || name == profile.NoDLC {
		return "None"
	}
	return name
}

func dlcOptions(d editor.DLCChoice) []SelectOption {
	options := []SelectOption{{
		Label:   "None",
		Value:   profile.NoDLC,
		Default: d.Selected == profile.NoDLC,
	}}
	for _, name := range d.Options {
		if name == profile.NoDLC {
			continue
		}
		options = append(options, SelectOption{
			Label:   name,
			Value:   name,
			Default: name == d.Selected,
		})
	}
	return options
}

// Grid renders one collection with a button per occupied slot
func (v *DreamViews) Grid(g *editor.Grid) *core.Response {
	embed := NewEmbed().
		Title(fmt.Sprintf("%s (%d/%d)", KindTitle(g.Kind), g.Size, g.Capacity)).
		Color(ColorDream)

	var lines []string
	for _, cell := range g.Cells {
		if cell.Empty {
			continue
		}
		lines = append(lines, cellLine(cell, cell.Index == g.EditIndex))
	}
	if len(lines) == 0 {
		embed.Description(fmt.Sprintf("No %ss yet.", kindNoun(g.Kind)))
	} else {
		embed.Description(strings.Join(lines, "\n"))
	}

	if n := len(g.Updated); n > 0 {
		last := g.Updated[n-1]
		embed.Thumbnail(v.SpriteURL(last.Sprite))
		embed.Footer(updatedFooter(g.Updated))
	}

	components := NewComponentBuilder(v.ids)
	for i := range g.Size {
		components.SecondaryButton(strconv.Itoa(i+1), ActionEdit, string(g.Kind), strconv.Itoa(i))
	}
	components.NewRow()
	components.ButtonIf(g.Size < g.Capacity, "Add "+kindNoun(g.Kind), discordgo.SuccessButton,
		ActionEdit, string(g.Kind), strconv.Itoa(g.Size))
	components.SecondaryButton("Back", ActionOverview, "")

	return view([]*discordgo.MessageEmbed{embed.Build()}, components.Build())
}

func cellLine(cell slots.Cell, editing bool) string {
	line := fmt.Sprintf("`%2d` **%s**", cell.Index+1, cell.Label)
	if cell.Caption != "" {
		line += " · " + cell.Caption
	}
	if editing {
		line += " ✏️"
	}
	return line
}

func updatedFooter(cells []slots.Cell) string {
	indexes := make([]string, 0, len(cells))
	for _, c := range cells {
		indexes = append(indexes, strconv.Itoa(c.Index+1))
	}
	if len(indexes) == 1 {
		return "Updated slot " + indexes[0]
	}
	return "Updated slots " + strings.Join(indexes, ", ")
}

// Edit renders the open edit surface of a collection
func (v *DreamViews) Edit(e *editor.Edit) *core.Response {
	title := fmt.Sprintf("Editing %s %d", kindNoun(e.Kind), e.Index+1)
	if !e.Existing {
		title = fmt.Sprintf("New %s (slot %d)", kindNoun(e.Kind), e.Index+1)
	}

	embed := NewEmbed().
		Title(title).
		Color(ColorInfo).
		Thumbnail(v.SpriteURL(e.Preview.Sprite))
	for _, f := range e.Fields {
		embed.Field(f.Label, f.Value, true)
	}
	if e.Kind == profile.SlotEncounters && e.MaxForm > 0 {
		embed.Footer(fmt.Sprintf("Forms 0 to %d", e.MaxForm))
	}

	kind := string(e.Kind)
	components := NewComponentBuilder(v.ids)

	switch e.Kind {
	case profile.SlotEncounters:
		components.SelectMenu("Gender", ActionField, kind, enumOptions(profile.Genders, e.Encounter.Gender), string(editor.FieldGender))
		components.SelectMenu("Animation", ActionField, kind, enumOptions(profile.Animations, e.Encounter.Animation), string(editor.FieldAnimation))
		components.PrimaryButton("Pokémon, move & form", ActionText, kind, PartMain)
	case profile.SlotItems:
		components.PrimaryButton("Item & quantity", ActionText, kind, PartMain)
	case profile.SlotVisitors:
		components.SelectMenu("Trainer class", ActionField, kind, enumOptions(profile.VisitorTypes, e.Visitor.Type), string(editor.FieldVisitorType))
		components.SelectMenu("Shop", ActionField, kind, enumOptions(profile.ShopTypes, e.Visitor.ShopType), string(editor.FieldShop))
		components.PrimaryButton("Name & Pokémon", ActionText, kind, PartDetails)
		components.PrimaryButton("Origin", ActionText, kind, PartOrigin)
	}

	components.SuccessButton("Save slot", ActionSaveSlot, kind)
	components.SecondaryButton("Cancel", ActionCancel, kind)
	if e.Existing {
		components.DangerButton("Remove", ActionRemove, kind)
	}

	return view([]*discordgo.MessageEmbed{embed.Build()}, components.Build())
}

type enum interface {
	~string
	String() string
}

func enumOptions[T enum](values []T, selected T) []SelectOption {
	options := make([]SelectOption, 0, len(values))
	for _, value := range values {
		options = append(options, SelectOption{
			Label:   value.String(),
			Value:   string(value),
			Default: value == selected,
		})
	}
	return options
}

// DraftModal opens the text fields of one part of a draft
func (v *DreamViews) DraftModal(e *editor.Edit, part string) (*core.Response, error) {
	id := v.ids.ID(ModalDraft, string(e.Kind), part)
	title := fmt.Sprintf("%s slot %d", strings.ToUpper(kindNoun(e.Kind)[:1])+kindNoun(e.Kind)[1:], e.Index+1)

	switch {
	case e.Kind == profile.SlotEncounters && part == PartMain:
		// left blank so a new species can reset it
		form := ShortInput(string(editor.FieldForm), fmt.Sprintf("Form (0 to %d)", e.MaxForm), "", false, 3)
		form.Placeholder = fmt.Sprintf("Currently %d. Blank keeps it for the same Pokémon.", e.Encounter.Form)
		return core.NewModalResponse(id, title,
			ShortInput(string(editor.FieldSpecies), "Pokémon (name or #id)", fieldValue(e, editor.FieldSpecies), false, 40),
			ShortInput(string(editor.FieldMove), "Move (name or #id)", fieldValue(e, editor.FieldMove), false, 40),
			form,
		), nil
	case e.Kind == profile.SlotItems && part == PartMain:
		return core.NewModalResponse(id, title,
			ShortInput(string(editor.FieldItem), "Item (name or #id)", fieldValue(e, editor.FieldItem), false, 40),
			ShortInput(string(editor.FieldQuantity), fmt.Sprintf("Quantity (%d to %d)", profile.MinItemQuantity, profile.MaxItemQuantity),
				strconv.Itoa(e.Item.Quantity), false, 3),
		), nil
	case e.Kind == profile.SlotVisitors && part == PartDetails:
		return core.NewModalResponse(id, title,
			ShortInput(string(editor.FieldName), "Name", e.Visitor.Name, true, profile.MaxVisitorNameLen),
			ShortInput(string(editor.FieldPersonality), fmt.Sprintf("Personality (0 to %d)", profile.MaxPersonality),
				strconv.Itoa(e.Visitor.Personality), false, 2),
			ShortInput(string(editor.FieldDreamerSpecies), "Dream Pokémon (name or #id)", fieldValue(e, editor.FieldDreamerSpecies), false, 40),
		), nil
	case e.Kind == profile.SlotVisitors && part == PartOrigin:
		return core.NewModalResponse(id, title,
			ShortInput(string(editor.FieldGameVersion), "Game", fieldValue(e, editor.FieldGameVersion), false, 40),
			ShortInput(string(editor.FieldCountry), "Country", fieldValue(e, editor.FieldCountry), false, 60),
			ShortInput(string(editor.FieldSubregion), "State or province", fieldValue(e, editor.FieldSubregion), false, 60),
		), nil
	}

	return nil, core.NewValidationError("That form does not exist.")
}

// fieldValue returns the displayed value of a field, blank for "N/A"
func fieldValue(e *editor.Edit, field editor.Field) string {
	for _, f := range e.Fields {
		if f.Field == field && f.Value != "N/A" {
			return f.Value
		}
	}
	return ""
}

// LevelsModal asks for the gained levels counter
func (v *DreamViews) LevelsModal(current int) *core.Response {
	return core.NewModalResponse(v.ids.ID(ModalLevels, ""), "Levels gained",
		ShortInput(LevelsInput, fmt.Sprintf("Levels gained (0 to %d)", profile.MaxGainedLevels), strconv.Itoa(current), true, 2),
	)
}

// Saved renders the overview with the dashboard's reply on top
func (v *DreamViews) Saved(o *editor.Overview, status *profile.Status) *core.Response {
	resp := v.Overview(o)
	if status.Error {
		resp.Content = "⚠️ " + status.Message
	} else {
		resp.Content = "✅ " + status.Message
	}
	return resp
}

// LoggedOut replaces the editor with a goodbye
func (v *DreamViews) LoggedOut() *core.Response {
	embed := InfoEmbed("Logged out", "Your editor was closed. Use `/dream login` to open it again.").Build()
	return view([]*discordgo.MessageEmbed{embed}, nil)
}

// Matches lists catalog search results
func (v *DreamViews) Matches(field editor.Field, query string, matches []catalog.Match) *core.Response {
	embed := NewEmbed().
		Title(fmt.Sprintf("%s matching %q", profile.Title(string(field)), query)).
		Color(ColorInfo)

	if len(matches) == 0 {
		embed.Description("Nothing matches.")
	} else {
		lines := make([]string, 0, len(matches))
		for _, m := range matches {
			lines = append(lines, fmt.Sprintf("`#%d` %s", m.ID, m.Name))
		}
		embed.Description(strings.Join(lines, "\n"))
	}

	return core.NewEmbedResponse(embed.Build()).AsEphemeral()
}
