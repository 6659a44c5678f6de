package speech

// NopSynthesizer silently discards all utterances. Used when no speech
// backend is available; the app works the same, just quietly.
type NopSynthesizer struct{}

func (NopSynthesizer) Speak(string, VoiceConfig) error { return nil }
func (NopSynthesizer) Stop()                           {}
