package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ritwika/khel/internal/ui/theme"
)

// OptionCard is one selectable answer card.
type OptionCard struct {
	Label string
	Emoji string
}

// OptionGrid lays out a prompt's answers as a row of cards with a
// movable cursor. Selection feedback (which card was chosen, which was
// right) is painted from outside; the grid itself only tracks the
// cursor.
type OptionGrid struct {
	Options  []OptionCard
	Selected int

	// Locked freezes the cursor during the feedback window.
	Locked bool

	// Chosen and Correct drive feedback colors; NoChoice means none yet.
	Chosen  int
	Correct int
}

// NoChoice marks a grid with no chosen card.
const NoChoice = -1

// NewOptionGrid creates a grid with the cursor on the first card.
func NewOptionGrid(options []OptionCard, correct int) OptionGrid {
	return OptionGrid{
		Options: options,
		Correct: correct,
		Chosen:  NoChoice,
	}
}

// Init returns nil.
func (g OptionGrid) Init() tea.Cmd {
	return nil
}

// Update moves the cursor. Choosing is the hosting screen's business.
func (g OptionGrid) Update(msg tea.Msg) (OptionGrid, bool) {
	if g.Locked {
		return g, false
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return g, false
	}

	switch kmsg.String() {
	case "left", "up":
		if g.Selected > 0 {
			g.Selected--
			return g, true
		}
	case "right", "down":
		if g.Selected < len(g.Options)-1 {
			g.Selected++
			return g, true
		}
	}

	return g, false
}

// View renders the cards side by side.
func (g OptionGrid) View() string {
	cards := make([]string, 0, len(g.Options))
	for i, opt := range g.Options {
		content := opt.Label
		if opt.Emoji != "" {
			content = opt.Emoji + "\n" + opt.Label
		}

		style := theme.Unselected
		switch {
		case g.Chosen != NoChoice && i == g.Correct:
			style = theme.Correct
		case g.Chosen == i:
			style = theme.Incorrect
		case i == g.Selected && !g.Locked:
			style = theme.Selected
		}

		cards = append(cards, style.
			Width(14).
			Align(lipgloss.Center).
			Render(content))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, cards...)
}
