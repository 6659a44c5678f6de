// Package festivals is the festival picker.
package festivals

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ritwika/khel/internal/catalog"
	"github.com/ritwika/khel/internal/router"
	"github.com/ritwika/khel/internal/screen"
	"github.com/ritwika/khel/internal/screens/items"
	"github.com/ritwika/khel/internal/ui/components"
	"github.com/ritwika/khel/internal/ui/layout"
	"github.com/ritwika/khel/internal/ui/theme"
)

// ID names the festival picker in the router.
const ID router.ScreenID = "festivals"

// Screen lists the festivals.
type Screen struct {
	menu components.Menu
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the festival picker from catalog content.
func New(cat *catalog.Catalog) *Screen {
	menuItems := make([]components.MenuItem, 0, len(cat.Festivals))
	for _, f := range cat.Festivals {
		to := items.ID(f.ID)
		menuItems = append(menuItems, components.MenuItem{
			Label: f.Name,
			Emoji: f.Emoji,
			Action: func() tea.Cmd {
				return router.Navigate(to)
			},
		})
	}
	return &Screen{menu: components.NewMenu(menuItems)}
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Festivals"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Choose"},
		{Key: "Enter", Description: "Open"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc", "backspace":
			return s, router.Back()
		}
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *Screen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(theme.Subtitle.Render("🎉 Choose a Festival 🎊")))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(s.menu.View()))
	return b.String()
}
