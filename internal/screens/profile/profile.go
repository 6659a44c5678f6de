// Package profile lets the child set the name the app greets them by.
package profile

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ritwika/khel/internal/router"
	"github.com/ritwika/khel/internal/screen"
	"github.com/ritwika/khel/internal/speech"
	"github.com/ritwika/khel/internal/ui/components"
	"github.com/ritwika/khel/internal/ui/layout"
	"github.com/ritwika/khel/internal/ui/theme"
)

// ID names the profile screen in the router.
const ID router.ScreenID = "profile"

// NameKey is where the profile name lives in the key/value store.
const NameKey = "profile-name"

// KV is the slice of the store this screen uses.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Speaker is the slice of the speech layer this screen uses.
type Speaker interface {
	Speak(text string, voice speech.VoiceConfig)
	Stop()
}

// savedMsg reports the outcome of persisting the name.
type savedMsg struct {
	name string
	err  error
}

// Screen edits the profile name.
type Screen struct {
	kv      KV
	voice   speech.VoiceConfig
	speaker Speaker

	input  components.TextInput
	saved  bool
	failed bool
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.Teardowner = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the profile screen, pre-filled with any saved name.
func New(kv KV, voice speech.VoiceConfig, speaker Speaker) *Screen {
	s := &Screen{
		kv:      kv,
		voice:   voice,
		speaker: speaker,
		input:   components.NewTextInput("Your name...", 24),
	}
	if name, ok, err := kv.Get(context.Background(), NameKey); err == nil && ok {
		s.input.SetValue(name)
	}
	return s
}

func (s *Screen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *Screen) Title() string {
	return "My Profile"
}

func (s *Screen) Teardown() {
	s.speaker.Stop()
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Save"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		if msg.err != nil {
			s.failed = true
			return s, nil
		}
		s.saved = true
		s.input.Submit()
		s.speaker.Speak("Nice to meet you, "+msg.name+"!", s.voice)
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, router.Back()
		case "enter":
			return s, s.save()
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *Screen) save() tea.Cmd {
	name := strings.TrimSpace(s.input.Value())
	if name == "" {
		return nil
	}
	return func() tea.Msg {
		err := s.kv.Set(context.Background(), NameKey, name)
		return savedMsg{name: name, err: err}
	}
}

func (s *Screen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerLine(width, theme.Subtitle.Render("👤 My Profile 👤")))
	b.WriteString("\n")
	b.WriteString(centerLine(width, theme.Body.Render("What's your name?")))
	b.WriteString("\n")
	b.WriteString(centerLine(width, s.input.View()))

	switch {
	case s.failed:
		b.WriteString("\n")
		b.WriteString(centerLine(width, theme.Incorrect.Render(" Couldn't save your name, try again! ")))
	case s.saved:
		b.WriteString("\n")
		b.WriteString(centerLine(width, theme.Correct.Render(" Saved! ")))
	}
	return b.String()
}

func centerLine(width int, content string) string {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(content) + "\n"
}
