package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"pokertrainer-server/pkg/action"
	"pokertrainer-server/pkg/deck"
	"pokertrainer-server/pkg/preflop"
	"pokertrainer-server/pkg/puzzle"
	"pokertrainer-server/pkg/session"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	redCardStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9"))

	blackCardStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	userSeatStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	correctStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	incorrectStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

// chart cell colours per action
var actionStyles = map[action.Action]lipgloss.Style{
	action.Raise: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("9")),
	action.Call:  lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11")),
	action.Check: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("10")),
	action.Fold:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("8")),
}

func renderCard(c deck.Card) string {
	if c.Suit.IsRed() {
		return redCardStyle.Render(c.String())
	}

	return blackCardStyle.Render(c.String())
}

func renderCards(cards []deck.Card) string {
	s := make([]string, len(cards))
	for i, c := range cards {
		s[i] = renderCard(c)
	}

	return strings.Join(s, " ")
}

func renderPuzzle(p *puzzle.Puzzle) string {
	var sb strings.Builder

	sb.WriteString(headerStyle.Render(p.Situation))
	sb.WriteString("\n\n")

	seats := make([]string, len(p.Players))
	for i, player := range p.Players {
		if player.IsUser {
			seats[i] = userSeatStyle.Render(string(player.Position) + " (you)")
		} else {
			seats[i] = dimStyle.Render(string(player.Position))
		}
	}

	sb.WriteString("Seats: " + strings.Join(seats, "  ") + "\n")

	hand := p.Hand()
	sb.WriteString(fmt.Sprintf("Hand:  %s  %s\n", renderCards(hand[:]), dimStyle.Render(hand.Category())))
	sb.WriteString(fmt.Sprintf("Board: %s\n\n", renderCards(p.CommunityCards)))

	keys := make([]string, 0, len(p.AvailableActions)+2)
	for _, a := range p.AvailableActions {
		keys = append(keys, fmt.Sprintf("[%c] %s", a.Hotkey(), a.String()))
	}

	keys = append(keys, dimStyle.Render("[n] next"), dimStyle.Render("[q] quit"))
	sb.WriteString(strings.Join(keys, "  "))

	return sb.String()
}

func renderResult(res *session.Result) string {
	feedback := incorrectStyle.Render(res.Feedback)
	if res.Correct {
		feedback = correctStyle.Render(res.Feedback)
	}

	return fmt.Sprintf("%s\n%s", feedback, renderStats(res.Stats))
}

func renderStats(s session.Stats) string {
	return dimStyle.Render(fmt.Sprintf("Correct: %d  Incorrect: %d  Total: %d  Accuracy: %d%%", s.Correct, s.Incorrect, s.Total, s.Accuracy()))
}

func renderChart(c *preflop.Chart) string {
	var sb strings.Builder

	sb.WriteString(headerStyle.Render(fmt.Sprintf("Heads-up small blind, %dbb", c.StackDepth)))
	sb.WriteString("\n")

	grid := c.Grid()
	for _, row := range grid {
		cells := make([]string, len(row))
		for i, entry := range row {
			cells[i] = actionStyles[entry.Action].Render(fmt.Sprintf(" %-3s ", entry.Category))
		}

		sb.WriteString(strings.Join(cells, ""))
		sb.WriteString("\n")
	}

	legend := make([]string, 0, len(action.All))
	for _, a := range action.All {
		freq, ok := c.Frequency[a]
		if !ok {
			continue
		}

		legend = append(legend, actionStyles[a].Render(fmt.Sprintf(" %s %.1f%% ", a.String(), freq)))
	}

	sb.WriteString(strings.Join(legend, " "))
	return sb.String()
}
