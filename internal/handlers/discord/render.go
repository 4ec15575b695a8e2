package discord

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/yatzy/internal/engine"
	"github.com/KirkDiggler/yatzy/internal/models"
	"github.com/bwmarrin/discordgo"
)

var categoryNames = [engine.NumCategories + 1]string{"", "Ones", "Twos", "Threes", "Fours", "Fives", "Sixes"}

var dieFaces = [7]string{"?", "⚀", "⚁", "⚂", "⚃", "⚄", "⚅"}

// categoryName returns the display name of a category, or its number when out of range
func categoryName(category int) string {
	if category < 1 || category > engine.NumCategories {
		return strconv.Itoa(category)
	}
	return categoryNames[category]
}

// renderDice shows the five dice, held dice in brackets
func renderDice(state engine.GameState) string {
	if !state.DiceRolled {
		return "? ? ? ? ?"
	}

	parts := make([]string, 0, engine.NumDice)
	for _, d := range state.Dice {
		face := dieFaces[0]
		if d.Value >= 1 && d.Value <= 6 {
			face = dieFaces[d.Value]
		}
		if d.Held {
			parts = append(parts, fmt.Sprintf("**[%s %d]**", face, d.Value))
		} else {
			parts = append(parts, fmt.Sprintf("%s %d", face, d.Value))
		}
	}
	return strings.Join(parts, "  ")
}

// renderScorecard lists every category with its points, or the points the
// current holds would score when still open
func renderScorecard(state engine.GameState) string {
	var sb strings.Builder
	for c := 1; c <= engine.NumCategories; c++ {
		if sel, ok := state.Selection(c); ok {
			fmt.Fprintf(&sb, "%s: **%d**\n", categoryName(c), sel.Points)
			continue
		}
		if state.DiceRolled && !state.Complete {
			fmt.Fprintf(&sb, "%s: _(%d)_\n", categoryName(c), state.PotentialPoints(c))
		} else {
			fmt.Fprintf(&sb, "%s: -\n", categoryName(c))
		}
	}
	return sb.String()
}

// renderBonus describes progress toward the bonus
func renderBonus(state engine.GameState) string {
	if state.BonusAwarded {
		return fmt.Sprintf("+%d", engine.BonusPoints)
	}
	if state.Complete {
		return "Missed"
	}
	return fmt.Sprintf("%d to go", state.BonusRemaining())
}

// renderGame renders a player's game with the controls for their next move
func renderGame(game *models.Game, title, note string) *view {
	state := game.State

	fields := []*discordgo.MessageEmbedField{
		{
			Name:  "Dice",
			Value: renderDice(state),
		},
		{
			Name:   "Scorecard",
			Value:  renderScorecard(state),
			Inline: true,
		},
		{
			Name:   "Total",
			Value:  strconv.Itoa(state.TotalPoints),
			Inline: true,
		},
		{
			Name:   "Bonus",
			Value:  renderBonus(state),
			Inline: true,
		},
	}

	color := colorGame
	footer := fmt.Sprintf("Rolls left: %d", state.RollsRemaining)
	if state.Complete {
		color = colorComplete
		footer = fmt.Sprintf("Final score: %d", state.FinalPoints())
	}

	if title == "" {
		title = fmt.Sprintf("%s's Yatzy", game.PlayerName)
	}

	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: note,
		Color:       color,
		Fields:      fields,
		Footer: &discordgo.MessageEmbedFooter{
			Text: footer,
		},
	}

	return &view{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: gameComponents(game),
		Ephemeral:  true,
	}
}

// gameComponents builds the buttons for the next move
func gameComponents(game *models.Game) []discordgo.MessageComponent {
	state := game.State

	if state.Complete {
		buttons := []discordgo.MessageComponent{
			discordgo.Button{
				Label:    "🎲 New Game",
				Style:    discordgo.PrimaryButton,
				CustomID: customID(actionNew),
			},
			discordgo.Button{
				Label:    "🏆 Scoreboard",
				Style:    discordgo.SecondaryButton,
				CustomID: customID(actionScoreboard),
			},
		}
		if game.NeedsScoreSave() {
			buttons = append(buttons, discordgo.Button{
				Label:    "💾 Save Score",
				Style:    discordgo.SuccessButton,
				CustomID: customID(actionSave),
			})
		}
		return []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: buttons},
		}
	}

	holds := make([]discordgo.MessageComponent, 0, engine.NumDice)
	for i, d := range state.Dice {
		style := discordgo.SecondaryButton
		label := fmt.Sprintf("Hold %d", i+1)
		if d.Held {
			style = discordgo.SuccessButton
			label = fmt.Sprintf("Held %d", i+1)
		}
		holds = append(holds, discordgo.Button{
			Label:    label,
			Style:    style,
			Disabled: !state.DiceRolled,
			CustomID: customID(actionHold, i),
		})
	}

	options := make([]discordgo.SelectMenuOption, 0, engine.NumCategories)
	for _, c := range state.AvailableCategories() {
		points := state.PotentialPoints(c)
		options = append(options, discordgo.SelectMenuOption{
			Label:       categoryName(c),
			Value:       strconv.Itoa(c),
			Description: fmt.Sprintf("%d points", points),
		})
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    fmt.Sprintf("🎲 Roll (%d left)", state.RollsRemaining),
					Style:    discordgo.PrimaryButton,
					Disabled: state.RollsRemaining <= 0,
					CustomID: customID(actionRoll),
				},
				discordgo.Button{
					Label:    "Reset",
					Style:    discordgo.DangerButton,
					CustomID: customID(actionReset),
				},
			},
		},
		discordgo.ActionsRow{Components: holds},
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					MenuType:    discordgo.StringSelectMenu,
					CustomID:    customID(actionScore),
					Placeholder: "Score a category",
					Options:     options,
				},
			},
		},
	}
}

// renderZeroConfirm asks the player to confirm a selection that scores nothing
func renderZeroConfirm(game *models.Game, category int) *view {
	embed := &discordgo.MessageEmbed{
		Title: "Score zero?",
		Description: fmt.Sprintf("None of your held dice show %d. Choosing %s now scores 0 and uses up the category.",
			category, categoryName(category)),
		Color: colorWarning,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "Dice",
				Value: renderDice(game.State),
			},
		},
	}

	return &view{
		Embeds: []*discordgo.MessageEmbed{embed},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    fmt.Sprintf("Score 0 in %s", categoryName(category)),
						Style:    discordgo.DangerButton,
						CustomID: customID(actionConfirm, category),
					},
					discordgo.Button{
						Label:    "Go back",
						Style:    discordgo.SecondaryButton,
						CustomID: customID(actionShow),
					},
				},
			},
		},
		Ephemeral: true,
	}
}

// renderScoreboard lists the records best first
func renderScoreboard(records []*models.ScoreRecord) *view {
	description := "No completed games yet. Be the first!"
	if len(records) > 0 {
		var sb strings.Builder
		for i, r := range records {
			fmt.Fprintf(&sb, "**%d.** %s · %d pts · %s\n", i+1, r.PlayerName, r.Points, r.Date)
		}
		description = sb.String()
	}

	return &view{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       "🏆 Scoreboard",
				Description: description,
				Color:       colorComplete,
			},
		},
	}
}

// renderRules explains how a game is played
func renderRules() *view {
	rules := []string{
		fmt.Sprintf("You play with %d dice and get up to %d rolls per turn.", engine.NumDice, engine.MaxRolls),
		"Hold the dice you want to keep; only unheld dice are rolled.",
		fmt.Sprintf("End each turn by scoring one of the %d categories, Ones to Sixes, in any order.", engine.NumCategories),
		"A category scores the sum of your held dice showing its face. Nothing held that matches scores 0.",
		fmt.Sprintf("Reach %d points across the categories for a %d point bonus.", engine.BonusThreshold, engine.BonusPoints),
		fmt.Sprintf("The game ends once all %d categories are filled and your score goes on the scoreboard.", engine.NumCategories),
	}

	var sb strings.Builder
	for i, rule := range rules {
		fmt.Fprintf(&sb, "**%d.** %s\n", i+1, rule)
	}

	return &view{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       "🎲 How to play",
				Description: sb.String(),
				Color:       colorGame,
			},
		},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    "🎲 Start",
						Style:    discordgo.PrimaryButton,
						CustomID: customID(actionStart),
					},
				},
			},
		},
		Ephemeral: true,
	}
}

// renderError renders an ephemeral error message
func renderError(message string) *view {
	return &view{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       "Error",
				Description: message,
				Color:       colorError,
			},
		},
		Ephemeral: true,
	}
}
