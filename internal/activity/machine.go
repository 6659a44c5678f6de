package activity

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/ritwika/khel/internal/celebrate"
	"github.com/ritwika/khel/internal/speech"
)

// Speaker is what the machine needs from the speech layer. Satisfied by
// *speech.Coordinator.
type Speaker interface {
	Speak(text string, voice speech.VoiceConfig)
	Stop()
}

// TimerKind distinguishes the scheduled callbacks a machine can request.
type TimerKind int

const (
	// TimerAdvance ends the feedback window and advances the session.
	TimerAdvance TimerKind = iota
	// TimerHintHide hides a requested hint.
	TimerHintHide
	// TimerIdle starts the attract animation after a quiet spell.
	TimerIdle
)

// Timer is an epoch-tagged scheduled callback. The hosting screen delivers
// it back through Fire after Delay; if the machine's state has been
// superseded in the meantime the firing is discarded.
type Timer struct {
	Kind  TimerKind
	Epoch uint64
	Delay time.Duration
}

const replayPhrase = "Let's start the quiz again!"

// Machine drives one activity session: prompt progression, answer
// locking, idempotent scoring and timed feedback. All methods must be
// called from the UI goroutine; the machine schedules nothing itself and
// only hands out Timer tokens.
type Machine struct {
	activity  Activity
	cfg       Config
	speaker   Speaker
	celebrant celebrate.Celebrator
	log       *slog.Logger

	session *Session

	// Separate generations per timer kind: a selection supersedes a
	// pending advance without killing an independent hint timer.
	advanceEpoch Epoch
	hintEpoch    Epoch
	idleEpoch    Epoch

	attracting bool
}

// New creates a machine over a fresh session. A nil logger disables logging.
func New(a Activity, cfg Config, speaker Speaker, celebrant celebrate.Celebrator, log *slog.Logger) *Machine {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Machine{
		activity:  a,
		cfg:       cfg,
		speaker:   speaker,
		celebrant: celebrant,
		log:       log,
		session:   newSession(),
	}
}

// Session exposes the runtime state for views. Read-only by convention.
func (m *Machine) Session() *Session {
	return m.session
}

// Activity returns the static lesson content.
func (m *Machine) Activity() Activity {
	return m.activity
}

// Prompt returns the current prompt. Only meaningful before completion.
func (m *Machine) Prompt() Prompt {
	return m.activity.Prompts[m.session.PromptIndex]
}

// Attracting reports whether the idle attract animation is running. The
// flag lives outside the Session: attraction is presentation, not state.
func (m *Machine) Attracting() bool {
	return m.attracting
}

// Start speaks the intro, if any, and arms the idle timer.
func (m *Machine) Start() []Timer {
	if m.activity.Intro != "" {
		m.speaker.Speak(m.activity.Intro, m.activity.Voice)
	}
	m.log.Info("activity started", "activity", m.activity.ID, "session", m.session.ID)
	return m.armIdle()
}

// Touch records an interaction that isn't a selection (cursor movement).
// It cancels any running attract animation and re-arms the idle timer.
func (m *Machine) Touch() []Timer {
	m.attracting = false
	if m.session.Completed {
		return nil
	}
	return m.armIdle()
}

// SelectOption handles the user choosing option i of the current prompt.
// Valid only while presenting and unlocked; everything else — including
// the double-tap during the feedback window — is a no-op. Returns the
// timers to schedule and whether the selection was accepted.
func (m *Machine) SelectOption(i int) ([]Timer, bool) {
	s := m.session
	if s.Completed || s.InputLocked {
		return nil, false
	}
	prompt := m.activity.Prompts[s.PromptIndex]
	if i < 0 || i >= len(prompt.Options) {
		return nil, false
	}

	timers := m.Touch()
	opt := prompt.Options[i]

	m.speaker.Speak(m.feedbackPhrase(opt), m.activity.Voice)

	s.SelectedOption = i
	s.LastCorrect = opt.Correct

	if opt.Correct {
		if !s.HasScored {
			s.Score++
			s.HasScored = true
		}
		m.celebrant.Burst(celebrate.TopCenter, celebrate.DefaultCount, celebrate.DefaultDuration)
	}

	s.FeedbackVisible = true
	s.InputLocked = true

	m.log.Debug("option selected",
		"session", s.ID, "prompt", s.PromptIndex, "option", i, "correct", opt.Correct, "score", s.Score)

	return append(timers, Timer{
		Kind:  TimerAdvance,
		Epoch: m.advanceEpoch.Next(),
		Delay: m.cfg.FeedbackDelay,
	}), true
}

// RequestHint shows and speaks the current prompt's hint. Orthogonal to
// the main progression: does not lock input, does not touch the score,
// auto-hides after cfg.HintDuration.
func (m *Machine) RequestHint() []Timer {
	if m.session.Completed {
		return nil
	}
	timers := m.Touch()

	hint := m.Prompt().Hint
	if hint == "" {
		return timers
	}

	m.session.HintVisible = true
	m.speaker.Speak(hint, m.activity.Voice)

	return append(timers, Timer{
		Kind:  TimerHintHide,
		Epoch: m.hintEpoch.Next(),
		Delay: m.cfg.HintDuration,
	})
}

// Reset re-initializes the session ("play again"). Only valid from the
// completed state.
func (m *Machine) Reset() []Timer {
	if !m.session.Completed {
		return nil
	}
	m.invalidate()
	m.session = newSession()
	m.speaker.Speak(replayPhrase, m.activity.Voice)
	m.log.Info("activity reset", "activity", m.activity.ID, "session", m.session.ID)
	return m.armIdle()
}

// Fire delivers a scheduled timer back to the machine. Stale timers —
// ones whose generation has been superseded — are discarded, which is the
// whole teardown story for navigation, reset and double-selection races.
func (m *Machine) Fire(t Timer) []Timer {
	switch t.Kind {
	case TimerAdvance:
		if !m.advanceEpoch.Matches(t.Epoch) {
			return nil
		}
		return m.advance()
	case TimerHintHide:
		if m.hintEpoch.Matches(t.Epoch) {
			m.session.HintVisible = false
		}
	case TimerIdle:
		if m.idleEpoch.Matches(t.Epoch) && !m.session.Completed && !m.session.InputLocked {
			m.attracting = true
		}
	}
	return nil
}

// Teardown invalidates every pending timer and silences speech. Called
// when the owning screen is navigated away from.
func (m *Machine) Teardown() {
	m.invalidate()
	m.speaker.Stop()
	m.log.Debug("activity torn down", "activity", m.activity.ID, "session", m.session.ID)
}

// advance ends the feedback window: next prompt, or completion.
func (m *Machine) advance() []Timer {
	s := m.session
	s.FeedbackVisible = false
	s.InputLocked = false
	s.SelectedOption = NoSelection
	s.HintVisible = false

	if s.PromptIndex >= len(m.activity.Prompts)-1 {
		s.Completed = true
		m.speaker.Speak(fmt.Sprintf(m.activity.summary(), s.Score, len(m.activity.Prompts)), m.activity.Voice)
		m.log.Info("activity completed",
			"activity", m.activity.ID, "session", s.ID, "score", s.Score, "prompts", len(m.activity.Prompts))
		return nil
	}

	s.PromptIndex++
	s.HasScored = false
	return m.armIdle()
}

func (m *Machine) armIdle() []Timer {
	return []Timer{{
		Kind:  TimerIdle,
		Epoch: m.idleEpoch.Next(),
		Delay: m.cfg.IdleDelay,
	}}
}

func (m *Machine) invalidate() {
	m.advanceEpoch.Next()
	m.hintEpoch.Next()
	m.idleEpoch.Next()
	m.attracting = false
}

func (m *Machine) feedbackPhrase(opt Option) string {
	if m.activity.SpeakOptionLabels {
		return opt.Label
	}
	if opt.Correct {
		return m.activity.affirmation()
	}
	if len(m.activity.Encouragements) == 0 {
		return "Try again!"
	}
	return m.activity.Encouragements[rand.IntN(len(m.activity.Encouragements))]
}
