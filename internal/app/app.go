// Package app wires the screens, router and shared services into the
// root Bubble Tea model.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ritwika/khel/internal/calendar"
	"github.com/ritwika/khel/internal/catalog"
	"github.com/ritwika/khel/internal/router"
	"github.com/ritwika/khel/internal/screen"
	"github.com/ritwika/khel/internal/screens/festivals"
	"github.com/ritwika/khel/internal/screens/home"
	"github.com/ritwika/khel/internal/screens/items"
	"github.com/ritwika/khel/internal/screens/market"
	"github.com/ritwika/khel/internal/screens/mood"
	"github.com/ritwika/khel/internal/screens/practice"
	"github.com/ritwika/khel/internal/screens/profile"
	"github.com/ritwika/khel/internal/screens/traffic"
	"github.com/ritwika/khel/internal/speech"
	"github.com/ritwika/khel/internal/store"
	"github.com/ritwika/khel/internal/ui/layout"
)

// Options carries the shared services every screen draws from.
type Options struct {
	Catalog  *catalog.Catalog
	Speech   *speech.Coordinator
	Calendar *calendar.Store
	Store    *store.Store
	Logger   *slog.Logger
}

// Model is the root Bubble Tea model.
type Model struct {
	router *router.Router
	speech *speech.Coordinator
	width  int
	height int

	confirmQuit bool
}

func newModel(opts Options) Model {
	cat := opts.Catalog
	spk := opts.Speech
	log := opts.Logger

	factories := map[router.ScreenID]router.Factory{
		home.ID: func() screen.Screen {
			return home.New(loadName(opts.Store))
		},
		festivals.ID: func() screen.Screen {
			return festivals.New(cat)
		},
		traffic.ID: func() screen.Screen {
			return traffic.New(cat.Traffic, cat.VoiceConfig(cat.Traffic.Quiz.Voice), spk)
		},
		practice.ID(cat.Traffic.Quiz.ID): func() screen.Screen {
			return practice.New(cat.Activity(cat.Traffic.Quiz), spk, log)
		},
		market.ID: func() screen.Screen {
			return market.New(cat.Market, cat.VoiceConfig("default"), spk)
		},
		mood.ID: func() screen.Screen {
			return mood.New(opts.Calendar, cat.VoiceConfig("default"), spk)
		},
		profile.ID: func() screen.Screen {
			return profile.New(opts.Store, cat.VoiceConfig("default"), spk)
		},
	}

	for _, f := range cat.Festivals {
		factories[items.ID(f.ID)] = func() screen.Screen {
			return items.New(f, cat.VoiceConfig(f.Practice.Voice), spk)
		}
		factories[practice.ID(f.Practice.ID)] = func() screen.Screen {
			return practice.New(cat.Activity(f.Practice), spk, log)
		}
	}

	return Model{
		router: router.New(factories, home.ID, log),
		speech: spk,
	}
}

// loadName fetches the saved profile name, empty when unset.
func loadName(kv *store.Store) string {
	name, ok, err := kv.Get(context.Background(), profile.NameKey)
	if err != nil || !ok {
		return ""
	}
	return name
}

func (m Model) Init() tea.Cmd {
	return m.router.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case router.BackMsg:
		// Back from Home always means "leave the app", even when a
		// previous screen is recorded.
		if m.router.CurrentID() == home.ID {
			m.confirmQuit = true
			return m, nil
		}
		cmd, handled := m.router.GoBack()
		if !handled {
			m.confirmQuit = true
		}
		return m, cmd

	case tea.KeyMsg:
		if m.confirmQuit {
			switch msg.String() {
			case "y", "enter":
				return m, m.quit()
			case "n", "esc":
				m.confirmQuit = false
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c":
			return m, m.quit()
		case "esc", "backspace":
			// The home screen has nowhere to go back to; ask before
			// leaving the app.
			if m.router.CurrentID() == home.ID {
				m.confirmQuit = true
				return m, nil
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m Model) quit() tea.Cmd {
	m.router.Teardown()
	m.speech.Stop()
	return tea.Quit
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()

	title := ""
	stars := 0
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StarsProvider); ok {
			stars = sp.Stars()
		}
	}

	header := layout.RenderHeader(title, stars, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	}
	if m.confirmQuit {
		footerHints = []layout.KeyHint{
			{Key: "Y", Description: "Leave"},
			{Key: "N", Description: "Stay"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	var content string
	if m.confirmQuit {
		content = renderQuitConfirm(m.width, contentHeight)
	} else {
		content = m.router.View(m.width, contentHeight)
	}

	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

func renderQuitConfirm(width, height int) string {
	box := lipgloss.NewStyle().
		Align(lipgloss.Center).
		Padding(1, 3).
		Render("👋 Leaving already?\n\nY — yes, bye!\nN — keep playing")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
