package speech

import (
	"log/slog"
	"sync"
)

// VoiceConfig selects the synthesis voice for an utterance.
type VoiceConfig struct {
	Locale string
	Pitch  float64
	Rate   float64
}

// DefaultVoice is used when a lesson doesn't specify its own voice.
func DefaultVoice() VoiceConfig {
	return VoiceConfig{Locale: "hi-IN", Pitch: 1.0, Rate: 0.8}
}

// Synthesizer is the underlying text-to-speech capability. Speak begins
// synthesizing and returns; Stop cancels whatever is in progress.
type Synthesizer interface {
	Speak(text string, voice VoiceConfig) error
	Stop()
}

// Coordinator serializes all spoken feedback into a single active
// utterance: every Speak cancels the utterance currently in progress
// before starting the new one, so at most one utterance is audible at any
// time. Synthesis failures are logged and swallowed — speech is an
// enhancement, never a required path through a lesson.
type Coordinator struct {
	mu    sync.Mutex
	synth Synthesizer
	log   *slog.Logger
}

// NewCoordinator wraps a synthesizer. A nil logger disables logging.
func NewCoordinator(synth Synthesizer, log *slog.Logger) *Coordinator {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Coordinator{synth: synth, log: log}
}

// Speak cancels any in-flight utterance and speaks text under voice.
// Pictographic symbols are stripped before synthesis since they are not
// reliably speakable.
func (c *Coordinator) Speak(text string, voice VoiceConfig) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.synth.Stop()

	clean := Sanitize(text)
	if clean == "" {
		return
	}

	if err := c.synth.Speak(clean, voice); err != nil {
		c.log.Warn("speech synthesis failed", "locale", voice.Locale, "err", err)
	}
}

// Stop cancels the current utterance, if any. Safe to call at any time.
func (c *Coordinator) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.synth.Stop()
}
