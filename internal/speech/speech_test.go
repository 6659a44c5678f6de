package speech

import (
	"errors"
	"testing"
)

// recordingSynth records the lifecycle of utterances the coordinator
// hands it. An utterance stays "live" until the next Stop.
type recordingSynth struct {
	spoken []string
	voices []VoiceConfig
	live   []string
	stops  int
	err    error
}

func (r *recordingSynth) Speak(text string, voice VoiceConfig) error {
	if r.err != nil {
		return r.err
	}
	r.spoken = append(r.spoken, text)
	r.voices = append(r.voices, voice)
	r.live = append(r.live, text)
	return nil
}

func (r *recordingSynth) Stop() {
	r.stops++
	r.live = nil
}

func TestSpeakCancelsPreviousUtterance(t *testing.T) {
	synth := &recordingSynth{}
	c := NewCoordinator(synth, nil)

	c.Speak("A", DefaultVoice())
	c.Speak("B", DefaultVoice())

	if len(synth.live) != 1 {
		t.Fatalf("expected exactly one live utterance, got %d", len(synth.live))
	}
	if synth.live[0] != "B" {
		t.Errorf("live utterance = %q, want %q", synth.live[0], "B")
	}
	// "A" was cut off: one stop before A, one before B.
	if synth.stops != 2 {
		t.Errorf("stops = %d, want 2", synth.stops)
	}
}

func TestSpeakPassesVoiceConfig(t *testing.T) {
	synth := &recordingSynth{}
	c := NewCoordinator(synth, nil)

	voice := VoiceConfig{Locale: "mr-IN", Pitch: 1.0, Rate: 0.9}
	c.Speak("Diya", voice)

	if len(synth.voices) != 1 {
		t.Fatalf("expected 1 utterance, got %d", len(synth.voices))
	}
	if synth.voices[0] != voice {
		t.Errorf("voice = %+v, want %+v", synth.voices[0], voice)
	}
}

func TestSpeakStripsPictographs(t *testing.T) {
	synth := &recordingSynth{}
	c := NewCoordinator(synth, nil)

	c.Speak("🎉 Quiz Complete! 🎉", DefaultVoice())

	if len(synth.spoken) != 1 {
		t.Fatalf("expected 1 utterance, got %d", len(synth.spoken))
	}
	if synth.spoken[0] != "Quiz Complete!" {
		t.Errorf("spoken = %q, want %q", synth.spoken[0], "Quiz Complete!")
	}
}

func TestSpeakSkipsEmptyAfterSanitize(t *testing.T) {
	synth := &recordingSynth{}
	c := NewCoordinator(synth, nil)

	c.Speak("🎉🎊", DefaultVoice())

	if len(synth.spoken) != 0 {
		t.Errorf("expected no utterance for pictograph-only text, got %v", synth.spoken)
	}
	// The previous utterance is still cancelled.
	if synth.stops != 1 {
		t.Errorf("stops = %d, want 1", synth.stops)
	}
}

func TestSynthesisFailureIsSwallowed(t *testing.T) {
	synth := &recordingSynth{err: errors.New("unsupported locale")}
	c := NewCoordinator(synth, nil)

	// Must not panic and must not propagate.
	c.Speak("hello", VoiceConfig{Locale: "xx-XX"})
}

func TestStopIsIdempotent(t *testing.T) {
	synth := &recordingSynth{}
	c := NewCoordinator(synth, nil)

	c.Speak("hello", DefaultVoice())
	c.Stop()
	c.Stop()

	if len(synth.live) != 0 {
		t.Errorf("expected no live utterance after Stop, got %v", synth.live)
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain words", "plain words"},
		{"Score: 3 ⭐", "Score: 3"},
		{"🚦 Traffic Safety Learning", "Traffic Safety Learning"},
		{"Look for a white packet with a cow picture! 🐄 Strong! 💪", "Look for a white packet with a cow picture! Strong!"},
		{"👍 Correct!", "Correct!"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Sanitize(tt.in); got != tt.want {
			t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
