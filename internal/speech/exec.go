package speech

import (
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"
	"strconv"
	"sync"
)

// ExecSynthesizer speaks through a local speech command. It tries
// espeak-ng, espeak, say (macOS) and spd-say, in that order. Stop kills
// the speaking process; killing an already-finished process is harmless,
// which is what makes cancellation unconditional and idempotent.
type ExecSynthesizer struct {
	bin string
	log *slog.Logger

	mu  sync.Mutex
	cmd *exec.Cmd
}

var speechCommands = []string{"espeak-ng", "espeak", "say", "spd-say"}

// NewExecSynthesizer locates a speech command on PATH.
func NewExecSynthesizer(log *slog.Logger) (*ExecSynthesizer, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	for _, candidate := range speechCommands {
		if path, err := exec.LookPath(candidate); err == nil {
			return &ExecSynthesizer{bin: path, log: log}, nil
		}
	}
	return nil, fmt.Errorf("no speech command found (tried %v)", speechCommands)
}

func (s *ExecSynthesizer) Speak(text string, voice VoiceConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()

	cmd := exec.Command(s.bin, s.args(text, voice)...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", s.bin, err)
	}
	s.cmd = cmd

	go func() {
		if err := cmd.Wait(); err != nil {
			// Kill on Stop surfaces here; not worth more than a debug line.
			s.log.Debug("speech process exited", "err", err)
		}
		s.mu.Lock()
		if s.cmd == cmd {
			s.cmd = nil
		}
		s.mu.Unlock()
	}()

	return nil
}

func (s *ExecSynthesizer) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

func (s *ExecSynthesizer) stopLocked() {
	if s.cmd != nil && s.cmd.Process != nil {
		_ = s.cmd.Process.Kill()
	}
	s.cmd = nil
}

// args maps VoiceConfig onto the flags of whichever command was found.
func (s *ExecSynthesizer) args(text string, voice VoiceConfig) []string {
	switch filepath.Base(s.bin) {
	case "espeak-ng", "espeak":
		// espeak pitch is 0-99 (50 neutral), speed in words per minute.
		pitch := int(voice.Pitch * 50)
		speed := int(voice.Rate * 175)
		args := []string{"-p", strconv.Itoa(pitch), "-s", strconv.Itoa(speed)}
		if voice.Locale != "" {
			args = append(args, "-v", voice.Locale)
		}
		return append(args, text)
	case "spd-say":
		args := []string{"-w"}
		if voice.Locale != "" {
			args = append(args, "-l", voice.Locale)
		}
		return append(args, text)
	default: // say
		args := []string{}
		if voice.Rate > 0 {
			args = append(args, "-r", strconv.Itoa(int(voice.Rate*175)))
		}
		return append(args, text)
	}
}
