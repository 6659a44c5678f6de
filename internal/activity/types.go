package activity

import (
	"time"

	"github.com/ritwika/khel/internal/speech"
)

// Option is one selectable answer for a prompt.
type Option struct {
	Label   string
	Correct bool
	// Media names the picture asset associated with the option. The
	// terminal renderer substitutes an emoji stand-in.
	Media string
}

// Prompt is one question/step of an activity.
type Prompt struct {
	Text    string
	Options []Option
	Hint    string
	Media   string
}

// Activity is an ordered sequence of prompts plus the spoken-feedback
// phrasing for one lesson. Immutable static content from the catalog.
type Activity struct {
	ID      string
	Title   string
	Voice   speech.VoiceConfig
	Prompts []Prompt

	// Intro is spoken once when the activity starts.
	Intro string

	// SpeakOptionLabels makes a selection speak the chosen option's label
	// (picture lessons); otherwise the affirmation/encouragement phrases
	// below are used (text quizzes).
	SpeakOptionLabels bool

	// Affirmation is spoken after a correct answer.
	Affirmation string

	// Encouragements are rotated through after wrong answers.
	Encouragements []string

	// Summary formats the final spoken score line. Verb substitution is
	// kept trivial: %d score, %d total.
	Summary string
}

func (a Activity) affirmation() string {
	if a.Affirmation != "" {
		return a.Affirmation
	}
	return "Great job! That's correct!"
}

func (a Activity) summary() string {
	if a.Summary != "" {
		return a.Summary
	}
	return "Quiz completed! You scored %d out of %d!"
}

// Config holds the engine's fixed delays.
type Config struct {
	// FeedbackDelay is the feedback window: how long selection feedback
	// shows (and input stays locked) before auto-advancing.
	FeedbackDelay time.Duration

	// HintDuration is how long a requested hint stays visible.
	HintDuration time.Duration

	// IdleDelay is how long without interaction before the attract
	// animation starts.
	IdleDelay time.Duration
}

// DefaultConfig returns the domain-typical delays.
func DefaultConfig() Config {
	return Config{
		FeedbackDelay: 1800 * time.Millisecond,
		HintDuration:  10 * time.Second,
		IdleDelay:     10 * time.Second,
	}
}
