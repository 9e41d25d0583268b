package builders

import (
	"github.com/KirkDiggler/dream-bot-discord/internal/discord/v2/core"
	"github.com/bwmarrin/discordgo"
)

const (
	// MaxRows is Discord's limit of action rows per message
	MaxRows = 5

	// MaxPerRow is the number of buttons an action row holds
	MaxPerRow = 5

	// MaxSelectOptions is Discord's limit of options per select menu
	MaxSelectOptions = 25
)

// ComponentBuilder builds Discord message components
type ComponentBuilder struct {
	rows       []discordgo.MessageComponent
	currentRow []discordgo.MessageComponent
	ids        *core.CustomIDBuilder
}

// NewComponentBuilder creates a new component builder
func NewComponentBuilder(ids *core.CustomIDBuilder) *ComponentBuilder {
	return &ComponentBuilder{
		rows:       make([]discordgo.MessageComponent, 0),
		currentRow: make([]discordgo.MessageComponent, 0, MaxPerRow),
		ids:        ids,
	}
}

// Button adds a button to the current row
func (b *ComponentBuilder) Button(label string, style discordgo.ButtonStyle, action, target string, args ...string) *ComponentBuilder {
	b.addComponent(discordgo.Button{
		Label:    label,
		Style:    style,
		CustomID: b.ids.ID(action, target, args...),
	})
	return b
}

// ButtonIf adds an enabled button when enabled is true and a disabled one otherwise
func (b *ComponentBuilder) ButtonIf(enabled bool, label string, style discordgo.ButtonStyle, action, target string, args ...string) *ComponentBuilder {
	b.addComponent(discordgo.Button{
		Label:    label,
		Style:    style,
		CustomID: b.ids.ID(action, target, args...),
		Disabled: !enabled,
	})
	return b
}

// LinkButton adds a URL button
func (b *ComponentBuilder) LinkButton(label, url string) *ComponentBuilder {
	b.addComponent(discordgo.Button{
		Label: label,
		Style: discordgo.LinkButton,
		URL:   url,
	})
	return b
}

// PrimaryButton adds a blurple button
func (b *ComponentBuilder) PrimaryButton(label, action, target string, args ...string) *ComponentBuilder {
	return b.Button(label, discordgo.PrimaryButton, action, target, args...)
}

// SecondaryButton adds a grey button
func (b *ComponentBuilder) SecondaryButton(label, action, target string, args ...string) *ComponentBuilder {
	return b.Button(label, discordgo.SecondaryButton, action, target, args...)
}

// SuccessButton adds a green button
func (b *ComponentBuilder) SuccessButton(label, action, target string, args ...string) *ComponentBuilder {
	return b.Button(label, discordgo.SuccessButton, action, target, args...)
}

// DangerButton adds a red button
func (b *ComponentBuilder) DangerButton(label, action, target string, args ...string) *ComponentBuilder {
	return b.Button(label, discordgo.DangerButton, action, target, args...)
}

// SelectMenu adds a select menu on a row of its own. Options beyond
// Discord's limit are dropped.
func (b *ComponentBuilder) SelectMenu(placeholder, action, target string, options []SelectOption, args ...string) *ComponentBuilder {
	if len(options) > MaxSelectOptions {
		options = options[:MaxSelectOptions]
	}

	discordOptions := make([]discordgo.SelectMenuOption, len(options))
	for i, opt := range options {
		discordOptions[i] = discordgo.SelectMenuOption{
			Label:       opt.Label,
			Value:       opt.Value,
			Description: opt.Description,
			Default:     opt.Default,
		}
	}

	b.NewRow()
	b.currentRow = append(b.currentRow, discordgo.SelectMenu{
		CustomID:    b.ids.ID(action, target, args...),
		Placeholder: placeholder,
		Options:     discordOptions,
	})
	b.NewRow()
	return b
}

// NewRow starts a new action row
func (b *ComponentBuilder) NewRow() *ComponentBuilder {
	if len(b.currentRow) > 0 {
		b.rows = append(b.rows, discordgo.ActionsRow{
			Components: b.currentRow,
		})
		b.currentRow = make([]discordgo.MessageComponent, 0, MaxPerRow)
	}
	return b
}

// Build returns the built components
func (b *ComponentBuilder) Build() []discordgo.MessageComponent {
	b.NewRow()
	return b.rows
}

// addComponent adds a component to the current row
func (b *ComponentBuilder) addComponent(component discordgo.MessageComponent) {
	if len(b.currentRow) >= MaxPerRow {
		b.NewRow()
	}
	b.currentRow = append(b.currentRow, component)
}

// SelectOption represents an option in a select menu
type SelectOption struct {
	Label       string
	Value       string
	Description string
	Default     bool
}

// ShortInput is a single-line modal text input
func ShortInput(id, label, value string, required bool, maxLength int) discordgo.TextInput {
	return discordgo.TextInput{
		CustomID:  id,
		Label:     label,
		Style:     discordgo.TextInputShort,
		Value:     value,
		Required:  required,
		MaxLength: maxLength,
	}
}
