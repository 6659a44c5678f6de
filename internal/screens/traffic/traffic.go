// Package traffic is the road-safety explorer: three signal lights to
// poke at, plus an entry into the safety quiz.
package traffic

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

// ID names the traffic explorer in the router.
const ID router.ScreenID = "traffic"

// Speaker is the slice of the speech layer this screen uses.
type Speaker interface {
	Speak(text string, voice speech.VoiceConfig)
	Stop()
}

// Screen shows the signals.
type Screen struct {
	traffic catalog.Traffic
	voice   speech.VoiceConfig
	speaker Speaker

	selected int
	active   int // last pressed signal, -1 for none
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.Teardowner = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the traffic explorer.
func New(t catalog.Traffic, voice speech.VoiceConfig, speaker Speaker) *Screen {
	return &Screen{traffic: t, voice: voice, speaker: speaker, active: -1}
}

func (s *Screen) Init() tea.Cmd {
	s.speaker.Speak("Let's learn about traffic lights! Press a light to hear what it means.", s.voice)
	return nil
}

func (s *Screen) Title() string {
	return "Traffic Safety"
}

func (s *Screen) Teardown() {
	s.speaker.Stop()
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←/→", Description: "Choose light"},
		{Key: "Enter", Description: "Listen"},
		{Key: "Q", Description: "Quiz"},
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
		}
	case "right", "down":
		if s.selected < len(s.traffic.Signals)-1 {
			s.selected++
		}
	case "enter", "space":
		sig := s.traffic.Signals[s.selected]
		s.active = s.selected
		s.speaker.Speak(sig.Name+"! "+sig.Description, s.voice)
	case "q":
		return s, router.Navigate(practice.ID(s.traffic.Quiz.ID))
	}

	return s, nil
}

func (s *Screen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(theme.Subtitle.Render("🚦 Traffic Signals 🚦")))
	b.WriteString("\n\n")

	lights := make([]string, 0, len(s.traffic.Signals))
	for i, sig := range s.traffic.Signals {
		style := lipgloss.NewStyle().
			Width(12).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Background(lipgloss.Color(sig.Color)).
			Bold(true).
			Padding(1, 0)
		if i == s.selected {
			style = style.
				Border(lipgloss.ThickBorder()).
				BorderForeground(theme.Accent)
		} else {
			style = style.
				Border(lipgloss.HiddenBorder())
		}
		lights = append(lights, style.Render(sig.Emoji+"\n"+sig.Action))
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(lipgloss.JoinHorizontal(lipgloss.Center, lights...)))
	b.WriteString("\n\n")

	if s.active >= 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render(s.traffic.Signals[s.active].Description))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(theme.Hint.Render("Press Q for the road safety quiz!")))
	return b.String()
}
