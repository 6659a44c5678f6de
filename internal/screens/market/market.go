// Package market is the MRP and expiry-date finder. Each product card
// hides its price and date behind buttons; finding them earns stars and
// a confetti burst.
package market

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ritwika/khel/internal/activity"
	"github.com/ritwika/khel/internal/catalog"
	"github.com/ritwika/khel/internal/celebrate"
	"github.com/ritwika/khel/internal/router"
	"github.com/ritwika/khel/internal/screen"
	"github.com/ritwika/khel/internal/speech"
	"github.com/ritwika/khel/internal/ui/components"
	"github.com/ritwika/khel/internal/ui/layout"
	"github.com/ritwika/khel/internal/ui/theme"
)

// ID names the market screen in the router.
const ID router.ScreenID = "market"

const hintDuration = 10 * time.Second

// Speaker is the slice of the speech layer this screen uses.
type Speaker interface {
	Speak(text string, voice speech.VoiceConfig)
	Stop()
}

// hintHideMsg hides the hint; stale generations are ignored.
type hintHideMsg struct {
	epoch uint64
}

// animTickMsg drives the confetti simulation.
type animTickMsg time.Time

const animInterval = 80 * time.Millisecond

func animTick() tea.Cmd {
	return tea.Tick(animInterval, func(t time.Time) tea.Msg {
		return animTickMsg(t)
	})
}

// Screen shows one product at a time.
type Screen struct {
	market  catalog.Market
	voice   speech.VoiceConfig
	speaker Speaker
	field   *celebrate.Field

	current   int
	score     int
	showMRP   bool
	showDate  bool
	showHint  bool
	hintEpoch activity.Epoch
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.Teardowner = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.StarsProvider = (*Screen)(nil)

// New creates the market screen.
func New(m catalog.Market, voice speech.VoiceConfig, speaker Speaker) *Screen {
	return &Screen{
		market:  m,
		voice:   voice,
		speaker: speaker,
		field:   celebrate.NewField(),
	}
}

func (s *Screen) Init() tea.Cmd {
	s.speaker.Speak(s.market.Intro, s.voice)
	return animTick()
}

func (s *Screen) Title() string {
	return "At the Market"
}

func (s *Screen) Stars() int {
	return s.score
}

func (s *Screen) Teardown() {
	s.hintEpoch.Next()
	s.speaker.Stop()
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "M", Description: "Show MRP"},
		{Key: "E", Description: "Expiry date"},
		{Key: "H", Description: "Hint"},
		{Key: "N", Description: "Next product"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) product() catalog.Product {
	return s.market.Products[s.current]
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case animTickMsg:
		if s.field.Active() {
			s.field.Tick(animInterval)
		}
		return s, animTick()

	case hintHideMsg:
		if s.hintEpoch.Matches(msg.epoch) {
			s.showHint = false
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	p := s.product()

	switch msg.String() {
	case "esc", "backspace":
		return s, router.Back()

	case "m":
		s.speaker.Speak("The MRP of "+p.Name+" is "+p.MRP, s.voice)
		s.showMRP = true
		s.score++
		s.field.Burst(celebrate.TopCenter, celebrate.DefaultCount, celebrate.DefaultDuration)

	case "e":
		s.speaker.Speak("The expiry date of "+p.Name+" is "+p.Expiry, s.voice)
		s.showDate = true
		s.score++
		s.field.Burst(celebrate.TopCenter, celebrate.DefaultCount, celebrate.DefaultDuration)

	case "h":
		s.speaker.Speak(p.Description, s.voice)
		s.showHint = true
		epoch := s.hintEpoch.Next()
		return s, tea.Tick(hintDuration, func(time.Time) tea.Msg {
			return hintHideMsg{epoch: epoch}
		})

	case "n", "right":
		s.current = (s.current + 1) % len(s.market.Products)
		s.showMRP, s.showDate, s.showHint = false, false, false
		s.hintEpoch.Next()
		s.speaker.Speak("Let's look at "+s.product().Name, s.voice)
	}

	return s, nil
}

func (s *Screen) View(width, height int) string {
	p := s.product()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerLine(width, theme.Subtitle.Render("🛒 MRP & Expiry Date Finder 🛒")))
	b.WriteString("\n")

	card := p.Emoji + "\n" + p.Name
	if s.showMRP {
		card += "\n\nMRP: " + p.MRP
	}
	if s.showDate {
		card += "\nUse by: " + p.Expiry
	}
	b.WriteString(centerLine(width, theme.Card.
		Width(26).
		Align(lipgloss.Center).
		Render(card)))
	b.WriteString("\n")

	buttons := lipgloss.JoinHorizontal(lipgloss.Center,
		components.NewButton("M Show MRP", !s.showMRP, nil).View(), " ",
		components.NewButton("E Expiry Date", !s.showDate, nil).View(), " ",
		components.NewButton("H Hint", !s.showHint, nil).View(), " ",
		components.NewButton("N Next", true, nil).View(),
	)
	b.WriteString(centerLine(width, buttons))
	b.WriteString("\n")

	if s.showHint {
		b.WriteString(centerLine(width, theme.Hint.Render(p.Description)))
		b.WriteString("\n")
	}

	if s.field.Active() {
		b.WriteString(components.RenderConfetti(s.field, width, 6))
		b.WriteString("\n")
	}

	return b.String()
}

func centerLine(width int, content string) string {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(content) + "\n"
}
