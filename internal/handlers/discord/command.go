package discord

import (
	"github.com/bwmarrin/discordgo"
)

// Embed colors
const (
	colorGame     = 0x00ff00
	colorComplete = 0xffd700
	colorWarning  = 0xffa500
	colorError    = 0xff0000
)

// CommandHandler defines the interface for Discord command handlers
type CommandHandler interface {
	// GetName returns the command name
	GetName() string

	// GetCommand returns the application command definition
	GetCommand() *discordgo.ApplicationCommand

	// Handle processes a slash command interaction
	Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error

	// HandleComponent processes a button or select menu interaction
	HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) error
}

// BaseCommand provides common functionality for all commands
type BaseCommand struct {
	Name        string
	Description string
	Options     []*discordgo.ApplicationCommandOption
}

// GetName returns the command name
func (c *BaseCommand) GetName() string {
	return c.Name
}

// GetCommand returns the application command definition
func (c *BaseCommand) GetCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name,
		Description: c.Description,
		Options:     c.Options,
	}
}

// view is a rendered reply, independent of how it is delivered
type view struct {
	Embeds     []*discordgo.MessageEmbed
	Components []discordgo.MessageComponent

	// Ephemeral replies are only shown to the player who asked
	Ephemeral bool
}

func (v *view) data() *discordgo.InteractionResponseData {
	data := &discordgo.InteractionResponseData{
		Embeds: v.Embeds,
		// An empty slice clears the buttons of an updated message
		Components: v.Components,
	}
	if data.Components == nil {
		data.Components = []discordgo.MessageComponent{}
	}
	if v.Ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	return data
}

// RespondWithView sends v as a new message
func RespondWithView(s *discordgo.Session, i *discordgo.InteractionCreate, v *view) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: v.data(),
	})
}

// UpdateWithView replaces the message the component belongs to
func UpdateWithView(s *discordgo.Session, i *discordgo.InteractionCreate, v *view) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: v.data(),
	})
}

// RespondWithError sends an ephemeral error response to an interaction
func RespondWithError(s *discordgo.Session, i *discordgo.InteractionCreate, errorMessage string) error {
	return RespondWithView(s, i, renderError(errorMessage))
}
