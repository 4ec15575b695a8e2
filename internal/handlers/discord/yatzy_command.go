package discord

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/yatzy/internal/engine"
	"github.com/KirkDiggler/yatzy/internal/services/game"
	"github.com/KirkDiggler/yatzy/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

// customIDPrefix namespaces the component IDs owned by this command
const customIDPrefix = "yatzy"

// DefaultScoreboardLimit is how many records the scoreboard shows
const DefaultScoreboardLimit = 10

// actionKind is a player request, from a subcommand or a component
type actionKind string

const (
	actionStart      actionKind = "start"
	actionShow       actionKind = "show"
	actionRoll       actionKind = "roll"
	actionHold       actionKind = "hold"
	actionScore      actionKind = "score"
	actionConfirm    actionKind = "confirm"
	actionReset      actionKind = "reset"
	actionNew        actionKind = "new"
	actionSave       actionKind = "save"
	actionScoreboard actionKind = "scoreboard"
	actionRules      actionKind = "rules"
)

// action is a parsed request; Arg is a die index or a category
type action struct {
	Kind actionKind
	Arg  int
}

// player identifies who sent an interaction
type player struct {
	ID   string
	Name string
}

// customID encodes a component ID such as "yatzy:hold:2"
func customID(kind actionKind, arg ...int) string {
	parts := []string{customIDPrefix, string(kind)}
	for _, a := range arg {
		parts = append(parts, strconv.Itoa(a))
	}
	return strings.Join(parts, ":")
}

// parseComponent decodes a component ID; values carries a select menu choice
func parseComponent(id string, values []string) (action, error) {
	parts := strings.Split(id, ":")
	if len(parts) < 2 || parts[0] != customIDPrefix {
		return action{}, fmt.Errorf("unknown component: %s", id)
	}

	act := action{Kind: actionKind(parts[1])}
	switch act.Kind {
	case actionHold, actionConfirm:
		if len(parts) != 3 {
			return action{}, fmt.Errorf("missing argument: %s", id)
		}
		arg, err := strconv.Atoi(parts[2])
		if err != nil {
			return action{}, fmt.Errorf("invalid argument: %s", id)
		}
		act.Arg = arg
	case actionScore:
		if len(values) != 1 {
			return action{}, errors.New("no category selected")
		}
		arg, err := strconv.Atoi(values[0])
		if err != nil {
			return action{}, fmt.Errorf("invalid category: %s", values[0])
		}
		act.Arg = arg
	case actionStart, actionShow, actionRoll, actionReset, actionNew, actionSave, actionScoreboard, actionRules:
	default:
		return action{}, fmt.Errorf("unknown action: %s", id)
	}

	return act, nil
}

// YatzyCommand handles the /yatzy command and its buttons
type YatzyCommand struct {
	BaseCommand
	gameService      game.Service
	messagingService messaging.Service
	logger           zerolog.Logger
	scoreboardLimit  int
}

// NewYatzyCommand creates a new yatzy command handler
func NewYatzyCommand(gameService game.Service, messagingService messaging.Service, logger zerolog.Logger) *YatzyCommand {
	minDie := 1.0
	minCategory := 1.0

	return &YatzyCommand{
		BaseCommand: BaseCommand{
			Name:        "yatzy",
			Description: "Play the upper section of Yatzy",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        string(actionStart),
					Description: "Start a game, or pick up the one you left",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        string(actionRoll),
					Description: "Roll every die you are not holding",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        string(actionHold),
					Description: "Hold or release a die",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "die",
							Description: "Die position, 1 to 5",
							Required:    true,
							MinValue:    &minDie,
							MaxValue:    engine.NumDice,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        string(actionScore),
					Description: "Score your held dice in a category",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "category",
							Description: "Face to score, 1 to 6",
							Required:    true,
							MinValue:    &minCategory,
							MaxValue:    engine.NumCategories,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        string(actionReset),
					Description: "Throw away your game and start over",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        string(actionSave),
					Description: "Retry saving the score of your finished game",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        string(actionScoreboard),
					Description: "Show the best finished games",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        string(actionRules),
					Description: "How to play",
				},
			},
		},
		gameService:      gameService,
		messagingService: messagingService,
		logger:           logger.With().Str("command", "yatzy").Logger(),
		scoreboardLimit:  DefaultScoreboardLimit,
	}
}

// Handle processes a Discord interaction for the yatzy command
func (c *YatzyCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	sub := data.Options[0]
	act := action{Kind: actionKind(sub.Name)}
	if len(sub.Options) > 0 {
		switch act.Kind {
		case actionHold:
			// Players count dice from 1
			act.Arg = int(sub.Options[0].IntValue()) - 1
		case actionScore:
			act.Arg = int(sub.Options[0].IntValue())
		}
	}

	v := c.dispatch(context.Background(), interactionPlayer(i), act)
	return RespondWithView(s, i, v)
}

// HandleComponent processes a button or select menu of a game message
func (c *YatzyCommand) HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.MessageComponentData()

	act, err := parseComponent(data.CustomID, data.Values)
	if err != nil {
		return RespondWithError(s, i, err.Error())
	}

	v := c.dispatch(context.Background(), interactionPlayer(i), act)

	// The scoreboard gets its own public message; everything else redraws the game
	if act.Kind == actionScoreboard {
		return RespondWithView(s, i, v)
	}
	return UpdateWithView(s, i, v)
}

// OwnsComponent reports whether a component ID belongs to this command
func (c *YatzyCommand) OwnsComponent(id string) bool {
	return strings.HasPrefix(id, customIDPrefix+":")
}

// dispatch runs an action for a player and renders the reply
func (c *YatzyCommand) dispatch(ctx context.Context, p player, act action) *view {
	switch act.Kind {
	case actionStart:
		return c.handleStart(ctx, p)
	case actionShow:
		return c.handleShow(ctx, p)
	case actionRoll:
		return c.handleRoll(ctx, p)
	case actionHold:
		return c.handleHold(ctx, p, act.Arg)
	case actionScore:
		return c.handleScore(ctx, p, act.Arg, false)
	case actionConfirm:
		return c.handleScore(ctx, p, act.Arg, true)
	case actionReset:
		return c.handleReset(ctx, p)
	case actionNew:
		return c.handleNew(ctx, p)
	case actionSave:
		return c.handleSave(ctx, p)
	case actionScoreboard:
		return c.handleScoreboard(ctx)
	case actionRules:
		return renderRules()
	default:
		return renderError(fmt.Sprintf("Unknown action: %s", act.Kind))
	}
}

func (c *YatzyCommand) handleStart(ctx context.Context, p player) *view {
	output, err := c.gameService.StartGame(ctx, &game.StartGameInput{
		PlayerID:   p.ID,
		PlayerName: p.Name,
	})
	if err != nil {
		return c.renderServiceError(ctx, p, "start", err)
	}

	note := ""
	msg, err := c.messagingService.GetGameStartedMessage(ctx, &messaging.GetGameStartedMessageInput{
		PlayerName: p.Name,
		Resumed:    output.Resumed,
	})
	if err == nil {
		note = msg.Message
	}

	return renderGame(output.Game, "", note)
}

func (c *YatzyCommand) handleShow(ctx context.Context, p player) *view {
	output, err := c.gameService.GetGame(ctx, &game.GetGameInput{
		PlayerID: p.ID,
	})
	if err != nil {
		return c.renderServiceError(ctx, p, "show", err)
	}

	return renderGame(output.Game, "", "")
}

func (c *YatzyCommand) handleRoll(ctx context.Context, p player) *view {
	output, err := c.gameService.RollDice(ctx, &game.RollDiceInput{
		PlayerID: p.ID,
	})
	if err != nil {
		return c.renderServiceError(ctx, p, "roll", err)
	}

	title, note := "", ""
	msg, err := c.messagingService.GetRollResultMessage(ctx, &messaging.GetRollResultMessageInput{
		PlayerName:     output.Game.PlayerName,
		Dice:           output.Game.State.Dice,
		RollsRemaining: output.Game.State.RollsRemaining,
	})
	if err == nil {
		title, note = msg.Title, msg.Message
	}

	return renderGame(output.Game, title, note)
}

func (c *YatzyCommand) handleHold(ctx context.Context, p player, index int) *view {
	output, err := c.gameService.ToggleHold(ctx, &game.ToggleHoldInput{
		PlayerID: p.ID,
		DieIndex: index,
	})
	if err != nil {
		return c.renderServiceError(ctx, p, "hold", err)
	}

	return renderGame(output.Game, "", "")
}

// handleScore chooses a category. A choice that would score nothing is shown
// for confirmation first unless confirmed is set.
func (c *YatzyCommand) handleScore(ctx context.Context, p player, category int, confirmed bool) *view {
	if !confirmed {
		current, err := c.gameService.GetGame(ctx, &game.GetGameInput{
			PlayerID: p.ID,
		})
		if err != nil {
			return c.renderServiceError(ctx, p, "score", err)
		}

		state := current.Game.State
		if !state.Complete && !state.HasCategory(category) &&
			category >= 1 && category <= engine.NumCategories &&
			state.PotentialPoints(category) == 0 {
			return renderZeroConfirm(current.Game, category)
		}
	}

	output, err := c.gameService.ChooseCategory(ctx, &game.ChooseCategoryInput{
		PlayerID: p.ID,
		Category: category,
	})
	if err != nil {
		return c.renderServiceError(ctx, p, "score", err)
	}

	if output.Outcome.Completed {
		return c.renderCompleted(ctx, output)
	}

	note := ""
	msg, err := c.messagingService.GetCategoryMessage(ctx, &messaging.GetCategoryMessageInput{
		PlayerName:     output.Game.PlayerName,
		Outcome:        output.Outcome,
		BonusRemaining: output.Game.State.BonusRemaining(),
	})
	if err == nil {
		note = msg.Message
	}

	return renderGame(output.Game, "", note)
}

// renderCompleted shows the final scorecard, with a warning when the score
// could not be stored
func (c *YatzyCommand) renderCompleted(ctx context.Context, output *game.ChooseCategoryOutput) *view {
	title, note := "", ""
	msg, err := c.messagingService.GetGameCompletedMessage(ctx, &messaging.GetGameCompletedMessageInput{
		PlayerName:   output.Game.PlayerName,
		FinalPoints:  output.Record.Points,
		BonusAwarded: output.Game.State.BonusAwarded,
	})
	if err == nil {
		title, note = msg.Title, msg.Message
	}

	v := renderGame(output.Game, title, note)

	if output.PersistenceWarning != nil {
		warning := "Your score could not be saved. Use Save Score to try again."
		errMsg, err := c.messagingService.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{
			ErrorType: messaging.ErrorTypePersistenceFailure,
		})
		if err == nil {
			warning = errMsg.Message
		}

		v.Embeds = append(v.Embeds, &discordgo.MessageEmbed{
			Title:       "⚠️ Score not saved",
			Description: warning,
			Color:       colorWarning,
		})
	}

	return v
}

func (c *YatzyCommand) handleReset(ctx context.Context, p player) *view {
	output, err := c.gameService.ResetGame(ctx, &game.ResetGameInput{
		PlayerID:   p.ID,
		PlayerName: p.Name,
	})
	if err != nil {
		return c.renderServiceError(ctx, p, "reset", err)
	}

	return renderGame(output.Game, "", "Game reset. Fresh scorecard!")
}

// handleNew replaces a finished game with a new one
func (c *YatzyCommand) handleNew(ctx context.Context, p player) *view {
	return c.handleStart(ctx, p)
}

func (c *YatzyCommand) handleSave(ctx context.Context, p player) *view {
	output, err := c.gameService.SaveScore(ctx, &game.SaveScoreInput{
		PlayerID: p.ID,
	})
	if err != nil {
		if errors.Is(err, game.ErrNoPendingScore) {
			return renderError("There is no unsaved score to save.")
		}
		return c.renderServiceError(ctx, p, "save", err)
	}

	current, err := c.gameService.GetGame(ctx, &game.GetGameInput{
		PlayerID: p.ID,
	})
	if err != nil {
		return c.renderServiceError(ctx, p, "save", err)
	}

	return renderGame(current.Game, "", fmt.Sprintf("Score of %d saved to the scoreboard.", output.Record.Points))
}

func (c *YatzyCommand) handleScoreboard(ctx context.Context) *view {
	output, err := c.gameService.GetScoreboard(ctx, &game.GetScoreboardInput{
		Limit: c.scoreboardLimit,
	})
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to load scoreboard")
		return renderError("The scoreboard is unavailable right now.")
	}

	return renderScoreboard(output.Records)
}

// renderServiceError turns a service error into a player-facing message.
// Rejections are expected; anything else is logged.
func (c *YatzyCommand) renderServiceError(ctx context.Context, p player, command string, err error) *view {
	errorType := messaging.ClassifyError(err)
	if errorType == messaging.ErrorTypeUnknown {
		c.logger.Error().
			Err(err).
			Str("player_id", p.ID).
			Str("command", command).
			Msg("command failed")
	}

	msg, msgErr := c.messagingService.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{
		ErrorType: errorType,
	})
	if msgErr != nil {
		return renderError("Something went wrong. Try again later.")
	}

	return renderError(msg.Message)
}

// interactionPlayer returns who sent the interaction, using the server
// nickname when there is one
func interactionPlayer(i *discordgo.InteractionCreate) player {
	if i.Member != nil && i.Member.User != nil {
		name := i.Member.User.Username
		if i.Member.Nick != "" {
			name = i.Member.Nick
		}
		return player{ID: i.Member.User.ID, Name: name}
	}
	if i.User != nil {
		return player{ID: i.User.ID, Name: i.User.Username}
	}
	return player{}
}
