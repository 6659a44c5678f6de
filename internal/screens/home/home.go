// Package home is the app's landing screen: a big friendly menu that
// fans out to every activity.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ritwika/khel/internal/router"
	"github.com/ritwika/khel/internal/screen"
	"github.com/ritwika/khel/internal/screens/festivals"
	"github.com/ritwika/khel/internal/screens/market"
	"github.com/ritwika/khel/internal/screens/mood"
	"github.com/ritwika/khel/internal/screens/profile"
	"github.com/ritwika/khel/internal/screens/traffic"
	"github.com/ritwika/khel/internal/ui/components"
	"github.com/ritwika/khel/internal/ui/theme"
)

// ID names the home screen in the router.
const ID router.ScreenID = "home"

// Screen is the main menu.
type Screen struct {
	menu components.Menu
	name string
}

var _ screen.Screen = (*Screen)(nil)

// New creates the home screen. name is the child's saved profile name,
// empty when none has been set yet.
func New(name string) *Screen {
	nav := func(to router.ScreenID) func() tea.Cmd {
		return func() tea.Cmd { return router.Navigate(to) }
	}

	items := []components.MenuItem{
		{Label: "Festivals", Emoji: "🎉", Action: nav(festivals.ID)},
		{Label: "Traffic Safety", Emoji: "🚦", Action: nav(traffic.ID)},
		{Label: "At the Market", Emoji: "🛒", Action: nav(market.ID)},
		{Label: "Mood Calendar", Emoji: "📅", Action: nav(mood.ID)},
		{Label: "My Profile", Emoji: "👤", Action: nav(profile.ID)},
		// Back with no history bubbles up as the app's exit confirmation.
		{Label: "Exit", Emoji: "👋", Action: func() tea.Cmd { return router.Back() }},
	}

	return &Screen{
		menu: components.NewMenu(items),
		name: name,
	}
}

func (h *Screen) Init() tea.Cmd {
	return nil
}

func (h *Screen) Title() string {
	return "Home"
}

func (h *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *Screen) View(width, height int) string {
	greeting := "Hello! What shall we play today?"
	if h.name != "" {
		greeting = fmt.Sprintf("Hello, %s! What shall we play today?", h.name)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(theme.Title.Render("🎈 Khel 🎈")))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(greeting))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(h.menu.View()))
	return b.String()
}
