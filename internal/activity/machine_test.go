package activity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ritwika/khel/internal/celebrate"
	"github.com/ritwika/khel/internal/speech"
)

type fakeSpeaker struct {
	spoken []string
	stops  int
}

func (f *fakeSpeaker) Speak(text string, _ speech.VoiceConfig) {
	f.spoken = append(f.spoken, text)
}

func (f *fakeSpeaker) Stop() { f.stops++ }

type fakeCelebrant struct {
	bursts int
}

func (f *fakeCelebrant) Burst(_ celebrate.Point, _ int, _ time.Duration) {
	f.bursts++
}

func testActivity() Activity {
	prompt := func(text string, correct int) Prompt {
		p := Prompt{Text: text, Hint: "Look closer at " + text}
		for i, label := range []string{"A", "B", "C"} {
			p.Options = append(p.Options, Option{Label: label, Correct: i == correct})
		}
		return p
	}
	return Activity{
		ID:    "test-quiz",
		Title: "Test Quiz",
		Voice: speech.DefaultVoice(),
		Prompts: []Prompt{
			prompt("one", 0),
			prompt("two", 1),
			prompt("three", 2),
		},
		Encouragements: []string{"Try again!"},
	}
}

func newTestMachine(t *testing.T) (*Machine, *fakeSpeaker, *fakeCelebrant) {
	t.Helper()
	spk := &fakeSpeaker{}
	cel := &fakeCelebrant{}
	m := New(testActivity(), DefaultConfig(), spk, cel, nil)
	return m, spk, cel
}

// fireKind delivers every pending timer of one kind, returning any timers
// the firing produced in turn.
func fireKind(m *Machine, timers []Timer, kind TimerKind) []Timer {
	var out []Timer
	for _, tm := range timers {
		if tm.Kind == kind {
			out = append(out, m.Fire(tm)...)
		}
	}
	return out
}

func TestSelectOptionCorrect(t *testing.T) {
	m, spk, cel := newTestMachine(t)
	m.Start()

	timers, ok := m.SelectOption(0)
	require.True(t, ok)

	s := m.Session()
	assert.Equal(t, 1, s.Score)
	assert.True(t, s.HasScored)
	assert.True(t, s.FeedbackVisible)
	assert.True(t, s.InputLocked)
	assert.True(t, s.LastCorrect)
	assert.Equal(t, 0, s.SelectedOption)
	assert.Equal(t, 1, cel.bursts)
	assert.Contains(t, spk.spoken, "Great job! That's correct!")

	var kinds []TimerKind
	for _, tm := range timers {
		kinds = append(kinds, tm.Kind)
	}
	assert.Contains(t, kinds, TimerAdvance)
}

func TestSelectOptionWrong(t *testing.T) {
	m, spk, cel := newTestMachine(t)
	m.Start()

	_, ok := m.SelectOption(1)
	require.True(t, ok)

	s := m.Session()
	assert.Equal(t, 0, s.Score)
	assert.False(t, s.HasScored)
	assert.False(t, s.LastCorrect)
	assert.True(t, s.FeedbackVisible)
	assert.Equal(t, 0, cel.bursts)
	assert.Contains(t, spk.spoken, "Try again!")
}

func TestDoubleSelectionIsNoOp(t *testing.T) {
	m, _, cel := newTestMachine(t)
	m.Start()

	_, ok := m.SelectOption(0)
	require.True(t, ok)

	// Second tap lands inside the feedback window.
	timers, ok := m.SelectOption(0)
	assert.False(t, ok)
	assert.Nil(t, timers)
	assert.Equal(t, 1, m.Session().Score)
	assert.Equal(t, 1, cel.bursts)
}

func TestOutOfRangeSelection(t *testing.T) {
	m, _, _ := newTestMachine(t)
	m.Start()

	_, ok := m.SelectOption(-1)
	assert.False(t, ok)
	_, ok = m.SelectOption(3)
	assert.False(t, ok)
	assert.False(t, m.Session().FeedbackVisible)
}

func TestInputLockedTracksFeedback(t *testing.T) {
	m, _, _ := newTestMachine(t)
	m.Start()
	s := m.Session()

	check := func() {
		t.Helper()
		assert.Equal(t, s.FeedbackVisible, s.InputLocked)
	}

	check()
	timers, _ := m.SelectOption(0)
	check()
	fireKind(m, timers, TimerAdvance)
	check()
}

func TestAdvanceMovesToNextPrompt(t *testing.T) {
	m, _, _ := newTestMachine(t)
	m.Start()

	timers, _ := m.SelectOption(0)
	fireKind(m, timers, TimerAdvance)

	s := m.Session()
	assert.Equal(t, 1, s.PromptIndex)
	assert.False(t, s.FeedbackVisible)
	assert.False(t, s.InputLocked)
	assert.False(t, s.HasScored)
	assert.Equal(t, NoSelection, s.SelectedOption)
	assert.False(t, s.Completed)
}

func TestStaleAdvanceDiscardedAfterTeardown(t *testing.T) {
	m, _, _ := newTestMachine(t)
	m.Start()

	timers, _ := m.SelectOption(0)
	m.Teardown()

	fireKind(m, timers, TimerAdvance)
	assert.Equal(t, 0, m.Session().PromptIndex)
	assert.True(t, m.Session().FeedbackVisible)
}

func TestTeardownStopsSpeech(t *testing.T) {
	m, spk, _ := newTestMachine(t)
	m.Start()
	m.Teardown()
	assert.Equal(t, 1, spk.stops)
}

func TestFullRunAndReset(t *testing.T) {
	m, spk, _ := newTestMachine(t)
	m.Start()

	answer := func(i int) {
		t.Helper()
		timers, ok := m.SelectOption(i)
		require.True(t, ok)
		fireKind(m, timers, TimerAdvance)
	}

	answer(0) // correct
	answer(0) // wrong (correct is 1)
	answer(2) // correct

	s := m.Session()
	assert.True(t, s.Completed)
	assert.Equal(t, 2, s.Score)
	assert.Contains(t, spk.spoken, "Quiz completed! You scored 2 out of 3!")

	// Selection after completion is rejected.
	_, ok := m.SelectOption(0)
	assert.False(t, ok)

	oldID := s.ID
	m.Reset()
	s = m.Session()
	assert.NotEqual(t, oldID, s.ID)
	assert.False(t, s.Completed)
	assert.Equal(t, 0, s.PromptIndex)
	assert.Equal(t, 0, s.Score)
	assert.Contains(t, spk.spoken, replayPhrase)
}

func TestResetBeforeCompletionIgnored(t *testing.T) {
	m, _, _ := newTestMachine(t)
	m.Start()
	m.SelectOption(0)

	timers := m.Reset()
	assert.Nil(t, timers)
	assert.Equal(t, 1, m.Session().Score)
	assert.True(t, m.Session().FeedbackVisible)
}

func TestHintShowsAndAutoHides(t *testing.T) {
	m, spk, _ := newTestMachine(t)
	m.Start()

	timers := m.RequestHint()
	assert.True(t, m.Session().HintVisible)
	assert.False(t, m.Session().InputLocked)
	assert.Contains(t, spk.spoken, "Look closer at one")

	fireKind(m, timers, TimerHintHide)
	assert.False(t, m.Session().HintVisible)
}

func TestHintSurvivesSelection(t *testing.T) {
	m, _, _ := newTestMachine(t)
	m.Start()

	hintTimers := m.RequestHint()
	m.SelectOption(1)

	// The selection does not invalidate the independent hint timer.
	fireKind(m, hintTimers, TimerHintHide)
	assert.False(t, m.Session().HintVisible)
}

func TestIdleAttract(t *testing.T) {
	m, _, _ := newTestMachine(t)
	timers := m.Start()

	fireKind(m, timers, TimerIdle)
	assert.True(t, m.Attracting())

	// Any interaction stops the animation.
	m.Touch()
	assert.False(t, m.Attracting())
}

func TestStaleIdleDiscarded(t *testing.T) {
	m, _, _ := newTestMachine(t)
	timers := m.Start()

	// Interaction re-arms the idle timer; the original one is stale.
	m.Touch()
	fireKind(m, timers, TimerIdle)
	assert.False(t, m.Attracting())
}

func TestIdleIgnoredDuringFeedback(t *testing.T) {
	m, _, _ := newTestMachine(t)
	m.Start()

	// Selection re-arms idle, then locks input; the timer fires while the
	// feedback window is open and must not start the animation.
	timers, _ := m.SelectOption(0)
	fireKind(m, timers, TimerIdle)
	assert.False(t, m.Attracting())
}

func TestSpeakOptionLabels(t *testing.T) {
	spk := &fakeSpeaker{}
	a := testActivity()
	a.SpeakOptionLabels = true
	m := New(a, DefaultConfig(), spk, &fakeCelebrant{}, nil)
	m.Start()

	m.SelectOption(2)
	assert.Contains(t, spk.spoken, "C")
}
