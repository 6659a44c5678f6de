// Package items is a festival's learn page: a row of cards the child
// flips through while the app names and explains each one out loud.
package items

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ritwika/khel/internal/catalog"
	"github.com/ritwika/khel/internal/router"
	"github.com/ritwika/khel/internal/screen"
	"github.com/ritwika/khel/internal/screens/practice"
	"github.com/ritwika/khel/internal/speech"
	"github.com/ritwika/khel/internal/ui/layout"
	"github.com/ritwika/khel/internal/ui/theme"
)

// ID names a festival's learn page in the router.
func ID(festivalID string) router.ScreenID {
	return router.ScreenID("festival-" + festivalID)
}

// Speaker is the slice of the speech layer this screen uses.
type Speaker interface {
	Speak(text string, voice speech.VoiceConfig)
	Stop()
}

// Screen shows one festival's items.
type Screen struct {
	festival catalog.Festival
	voice    speech.VoiceConfig
	speaker  Speaker

	selected int
	shown    bool // description revealed for the selected item
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.Teardowner = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the learn page for a festival.
func New(f catalog.Festival, voice speech.VoiceConfig, speaker Speaker) *Screen {
	return &Screen{festival: f, voice: voice, speaker: speaker}
}

func (s *Screen) Init() tea.Cmd {
	s.speaker.Speak("Welcome to "+s.festival.Name+"! Tap an item to learn about it.", s.voice)
	return nil
}

func (s *Screen) Title() string {
	return s.festival.Name
}

func (s *Screen) Teardown() {
	s.speaker.Stop()
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←/→", Description: "Browse"},
		{Key: "Enter", Description: "Listen"},
		{Key: "P", Description: "Practice"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "esc", "backspace":
		return s, router.Back()
	case "left", "up":
		if s.selected > 0 {
			s.selected--
			s.shown = false
		}
	case "right", "down":
		if s.selected < len(s.festival.Items)-1 {
			s.selected++
			s.shown = false
		}
	case "enter", "space":
		item := s.festival.Items[s.selected]
		s.shown = true
		s.speaker.Speak(item.Name+". "+item.Description, s.voice)
	case "p":
		return s, router.Navigate(practice.ID(s.festival.Practice.ID))
	}

	return s, nil
}

func (s *Screen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(theme.Subtitle.Render(s.festival.Emoji + " " + s.festival.Name + " " + s.festival.Emoji)))
	b.WriteString("\n\n")

	cards := make([]string, 0, len(s.festival.Items))
	for i, item := range s.festival.Items {
		style := theme.Unselected
		if i == s.selected {
			style = theme.Selected
		}
		cards = append(cards, style.
			Width(14).
			Align(lipgloss.Center).
			Render(item.Emoji+"\n"+item.Name))
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(lipgloss.JoinHorizontal(lipgloss.Center, cards...)))
	b.WriteString("\n\n")

	if s.shown {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render(s.festival.Items[s.selected].Description))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(theme.Hint.Render("Press P to practice what you learned!")))
	return b.String()
}
