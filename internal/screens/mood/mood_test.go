package mood

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/ritwika/khel/internal/calendar"
	"github.com/ritwika/khel/internal/router"
	"github.com/ritwika/khel/internal/speech"
)

type stubSpeaker struct {
	spoken []string
	stops  int
}

func (s *stubSpeaker) Speak(text string, _ speech.VoiceConfig) {
	s.spoken = append(s.spoken, text)
}

func (s *stubSpeaker) Stop() { s.stops++ }

type memKV struct {
	data map[string]string
}

func newMemKV() *memKV { return &memKV{data: make(map[string]string)} }

func (m *memKV) Set(_ context.Context, key, value string) error {
	m.data[key] = value
	return nil
}

func (m *memKV) Prefix(_ context.Context, prefix string) (map[string]string, error) {
	out := make(map[string]string)
	for k, v := range m.data {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			out[k] = v
		}
	}
	return out, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func newTestScreen() (*Screen, *calendar.Store, *stubSpeaker) {
	cal := calendar.New(newMemKV(), nil)
	spk := &stubSpeaker{}
	return New(cal, speech.DefaultVoice(), spk), cal, spk
}

func TestOpensOnToday(t *testing.T) {
	s, cal, _ := newTestScreen()

	month, day := cal.Today()
	if s.month != month || s.day != day {
		t.Errorf("expected cursor on %s %d, got %s %d", month, day, s.month, s.day)
	}
}

func TestRecordMoodForToday(t *testing.T) {
	s, cal, spk := newTestScreen()

	// Key 1 is the first mood in display order.
	s.Update(keyPress('1'))

	month, day := cal.Today()
	got, ok := cal.Get(month, day)
	if !ok {
		t.Fatal("expected a recorded mood")
	}
	if got != calendar.Moods[0] {
		t.Errorf("recorded %q, want %q", got, calendar.Moods[0])
	}
	want := "You felt " + calendar.Moods[0].Label() + "!"
	if spk.spoken[len(spk.spoken)-1] != want {
		t.Errorf("spoken %q, want %q", spk.spoken[len(spk.spoken)-1], want)
	}
}

func TestCursorStaysInsideMonth(t *testing.T) {
	s, cal, _ := newTestScreen()

	s.day = 1
	s.Update(specialKey(tea.KeyLeft))
	if s.day != 1 {
		t.Errorf("expected day pinned at 1, got %d", s.day)
	}

	s.day = cal.DaysIn(s.month)
	s.Update(specialKey(tea.KeyRight))
	if s.day != cal.DaysIn(s.month) {
		t.Errorf("expected day pinned at month end, got %d", s.day)
	}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestMonthSwitchClampsDay(t *testing.T) {
	s, _, _ := newTestScreen()

	// March 31 -> February must clamp to February's length.
	s.month = 3
	s.day = 31
	s.Update(keyPress('['))

	if s.month != 2 {
		t.Fatalf("expected February, got %s", s.month)
	}
	if s.day > 29 {
		t.Errorf("expected clamped day, got %d", s.day)
	}
}

func TestEscapeGoesBack(t *testing.T) {
	s, _, _ := newTestScreen()

	_, cmd := s.Update(specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.BackMsg); !ok {
		t.Error("expected a BackMsg")
	}
}

func TestTeardownStopsSpeech(t *testing.T) {
	s, _, spk := newTestScreen()
	s.Teardown()
	if spk.stops != 1 {
		t.Errorf("expected 1 stop, got %d", spk.stops)
	}
}
