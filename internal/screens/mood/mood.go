// Package mood is the mood calendar: a month grid where the child
// records how each day felt.
package mood

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ritwika/khel/internal/calendar"
	"github.com/ritwika/khel/internal/router"
	"github.com/ritwika/khel/internal/screen"
	"github.com/ritwika/khel/internal/speech"
	"github.com/ritwika/khel/internal/ui/layout"
	"github.com/ritwika/khel/internal/ui/theme"
)

// ID names the mood calendar in the router.
const ID router.ScreenID = "mood"

// Speaker is the slice of the speech layer this screen uses.
type Speaker interface {
	Speak(text string, voice speech.VoiceConfig)
	Stop()
}

// Screen shows one month at a time.
type Screen struct {
	cal     *calendar.Store
	voice   speech.VoiceConfig
	speaker Speaker

	month  time.Month
	day    int
	notice string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.Teardowner = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the mood calendar opened on today.
func New(cal *calendar.Store, voice speech.VoiceConfig, speaker Speaker) *Screen {
	month, day := cal.Today()
	return &Screen{cal: cal, voice: voice, speaker: speaker, month: month, day: day}
}

func (s *Screen) Init() tea.Cmd {
	s.speaker.Speak("How are you feeling today?", s.voice)
	return nil
}

func (s *Screen) Title() string {
	return "Mood Calendar"
}

func (s *Screen) Teardown() {
	s.speaker.Stop()
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←/→", Description: "Day"},
		{Key: "[/]", Description: "Month"},
		{Key: "1-5", Description: "Record mood"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		return s.handleKey(kmsg)
	}
	return s, nil
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch key := msg.String(); key {
	case "esc", "backspace":
		return s, router.Back()

	case "left":
		if s.day > 1 {
			s.day--
		}
	case "right":
		if s.day < s.cal.DaysIn(s.month) {
			s.day++
		}
	case "up":
		if s.day > 7 {
			s.day -= 7
		}
	case "down":
		if s.day+7 <= s.cal.DaysIn(s.month) {
			s.day += 7
		}

	case "[":
		if s.month > time.January {
			s.month--
			s.clampDay()
		}
	case "]":
		if s.month < time.December {
			s.month++
			s.clampDay()
		}

	case "1", "2", "3", "4", "5":
		return s.record(calendar.Moods[key[0]-'1'])
	}

	s.notice = ""
	return s, nil
}

func (s *Screen) clampDay() {
	if n := s.cal.DaysIn(s.month); s.day > n {
		s.day = n
	}
}

func (s *Screen) record(m calendar.Mood) (screen.Screen, tea.Cmd) {
	err := s.cal.Record(context.Background(), s.month, s.day, m)
	if errors.Is(err, calendar.ErrFutureDate) {
		s.notice = "That day hasn't happened yet!"
		s.speaker.Speak("That day hasn't happened yet!", s.voice)
		return s, nil
	}
	if err != nil {
		s.notice = "Hmm, that didn't work."
		return s, nil
	}

	s.notice = ""
	s.speaker.Speak("You felt "+m.Label()+"!", s.voice)
	return s, nil
}

var dayHeaders = []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

func (s *Screen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerLine(width, theme.Subtitle.Render(
		fmt.Sprintf("📅 %s %d 📅", s.month, s.cal.Year()))))
	b.WriteString("\n")
	b.WriteString(centerLine(width, s.renderGrid()))
	b.WriteString("\n")
	b.WriteString(centerLine(width, s.renderLegend()))

	if s.notice != "" {
		b.WriteString("\n")
		b.WriteString(centerLine(width, theme.Hint.Render(s.notice)))
	}
	return b.String()
}

func (s *Screen) renderGrid() string {
	var b strings.Builder

	for _, h := range dayHeaders {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(5).
			Align(lipgloss.Center).
			Render(h))
	}
	b.WriteString("\n")

	first := time.Date(s.cal.Year(), s.month, 1, 0, 0, 0, 0, time.UTC)
	offset := int(first.Weekday())
	todayMonth, todayDay := s.cal.Today()

	col := 0
	for range offset {
		b.WriteString(strings.Repeat(" ", 5))
		col++
	}

	for day := 1; day <= s.cal.DaysIn(s.month); day++ {
		cell := fmt.Sprintf("%2d", day)
		if m, ok := s.cal.Get(s.month, day); ok {
			cell = m.Emoji()
		}

		style := lipgloss.NewStyle().Width(5).Align(lipgloss.Center)
		switch {
		case day == s.day:
			style = style.Background(theme.BgCard).Bold(true)
		case s.month == todayMonth && day == todayDay:
			style = style.Foreground(theme.Accent).Bold(true)
		default:
			style = style.Foreground(theme.Text)
		}
		b.WriteString(style.Render(cell))

		col++
		if col%7 == 0 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (s *Screen) renderLegend() string {
	parts := make([]string, 0, len(calendar.Moods))
	for i, m := range calendar.Moods {
		parts = append(parts, fmt.Sprintf("%d %s %s", i+1, m.Emoji(), m.Label()))
	}
	return theme.Body.Render(strings.Join(parts, "   "))
}

func centerLine(width int, content string) string {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(content) + "\n"
}
