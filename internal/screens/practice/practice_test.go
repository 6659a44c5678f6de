package practice

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/ritwika/khel/internal/activity"
	"github.com/ritwika/khel/internal/router"
	"github.com/ritwika/khel/internal/speech"
	"github.com/ritwika/khel/internal/ui/components"
)

type stubSpeaker struct {
	spoken []string
	stops  int
}

func (s *stubSpeaker) Speak(text string, _ speech.VoiceConfig) {
	s.spoken = append(s.spoken, text)
}

func (s *stubSpeaker) Stop() { s.stops++ }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testActivity() activity.Activity {
	return activity.Activity{
		ID:    "quiz",
		Title: "Quiz",
		Voice: speech.DefaultVoice(),
		Prompts: []activity.Prompt{
			{
				Text: "Pick A",
				Options: []activity.Option{
					{Label: "A", Correct: true},
					{Label: "B"},
				},
			},
			{
				Text: "Pick B",
				Options: []activity.Option{
					{Label: "A"},
					{Label: "B", Correct: true},
				},
			},
		},
	}
}

func newTestScreen() (*Screen, *stubSpeaker) {
	spk := &stubSpeaker{}
	return New(testActivity(), spk, nil), spk
}

// advanceTimer picks the machine's pending advance out of a selection and
// feeds it back, as the runtime's Tick would after the feedback delay.
func advanceTimer(t *testing.T, s *Screen, timers []activity.Timer) {
	t.Helper()
	for _, tm := range timers {
		if tm.Kind == activity.TimerAdvance {
			s.Update(timerMsg{Timer: tm})
			return
		}
	}
	t.Fatal("no advance timer scheduled")
}

func TestInitSchedulesStart(t *testing.T) {
	s, _ := newTestScreen()
	if cmd := s.Init(); cmd == nil {
		t.Fatal("expected init command")
	}
}

func TestEnterSelectsAndLocksGrid(t *testing.T) {
	s, spk := newTestScreen()

	s.Update(specialKey(tea.KeyEnter))

	if !s.machine.Session().FeedbackVisible {
		t.Fatal("expected feedback after selection")
	}
	if !s.grid.Locked {
		t.Error("expected grid to lock during feedback")
	}
	if s.grid.Chosen != 0 {
		t.Errorf("expected chosen 0, got %d", s.grid.Chosen)
	}
	if len(spk.spoken) == 0 {
		t.Error("expected selection to speak")
	}
}

func TestArrowMovesCursor(t *testing.T) {
	s, _ := newTestScreen()

	s.Update(specialKey(tea.KeyRight))
	if s.grid.Selected != 1 {
		t.Errorf("expected cursor 1, got %d", s.grid.Selected)
	}
}

func TestAdvanceRebuildsGrid(t *testing.T) {
	s, _ := newTestScreen()

	timers, ok := s.machine.SelectOption(0)
	if !ok {
		t.Fatal("selection rejected")
	}
	s.grid.Chosen = 0
	s.grid.Locked = true

	advanceTimer(t, s, timers)

	if s.machine.Session().PromptIndex != 1 {
		t.Fatalf("expected prompt 1, got %d", s.machine.Session().PromptIndex)
	}
	if s.grid.Chosen != components.NoChoice {
		t.Error("expected a fresh grid after advancing")
	}
	if s.grid.Locked {
		t.Error("expected unlocked grid after advancing")
	}
}

func TestEscapeGoesBack(t *testing.T) {
	s, _ := newTestScreen()

	_, cmd := s.Update(specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.BackMsg); !ok {
		t.Error("expected a BackMsg")
	}
}

func TestStarsTracksScore(t *testing.T) {
	s, _ := newTestScreen()

	if s.Stars() != 0 {
		t.Errorf("expected 0 stars, got %d", s.Stars())
	}
	s.machine.SelectOption(0)
	if s.Stars() != 1 {
		t.Errorf("expected 1 star, got %d", s.Stars())
	}
}

func TestTeardownSilencesSpeech(t *testing.T) {
	s, spk := newTestScreen()
	s.Teardown()
	if spk.stops != 1 {
		t.Errorf("expected 1 stop, got %d", spk.stops)
	}
}

func TestResetAfterCompletion(t *testing.T) {
	s, _ := newTestScreen()

	for range 2 {
		timers, ok := s.machine.SelectOption(s.grid.Selected)
		if !ok {
			t.Fatal("selection rejected")
		}
		advanceTimer(t, s, timers)
	}
	if !s.machine.Session().Completed {
		t.Fatal("expected completed session")
	}

	s.Update(keyPress('r'))

	sess := s.machine.Session()
	if sess.Completed || sess.PromptIndex != 0 || sess.Score != 0 {
		t.Errorf("expected fresh session, got %+v", sess)
	}
	if s.grid.Chosen != components.NoChoice {
		t.Error("expected a fresh grid after reset")
	}
}

func TestViewRendersPromptAndSummary(t *testing.T) {
	s, _ := newTestScreen()

	if got := s.View(80, 24); got == "" {
		t.Fatal("expected prompt view")
	}

	for range 2 {
		timers, _ := s.machine.SelectOption(s.grid.Selected)
		advanceTimer(t, s, timers)
	}
	if got := s.View(80, 24); got == "" {
		t.Fatal("expected summary view")
	}
}
