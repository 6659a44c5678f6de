package speech

import (
	"context"
	"crypto/sha1"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"

	"github.com/sashabaranov/go-openai"
)

// OpenAISynthesizer renders speech through the OpenAI TTS API and plays
// the resulting MP3 with a local player. Rendered clips are cached on disk
// keyed by text and voice, so repeated prompts don't hit the network.
type OpenAISynthesizer struct {
	client   *openai.Client
	player   string
	cacheDir string
	log      *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
}

var mp3Players = []string{"mpg123", "ffplay", "mpv"}

// NewOpenAISynthesizer builds a synthesizer from an API key. Fails when no
// MP3 player is available, since there would be nothing to hear.
func NewOpenAISynthesizer(apiKey string, log *slog.Logger) (*OpenAISynthesizer, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	var player string
	for _, candidate := range mp3Players {
		if path, err := exec.LookPath(candidate); err == nil {
			player = path
			break
		}
	}
	if player == "" {
		return nil, fmt.Errorf("no MP3 player found (tried %v)", mp3Players)
	}

	cacheBase, err := os.UserCacheDir()
	if err != nil {
		return nil, fmt.Errorf("resolve cache dir: %w", err)
	}
	cacheDir := filepath.Join(cacheBase, "khel", "tts")
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("create tts cache dir: %w", err)
	}

	return &OpenAISynthesizer{
		client:   openai.NewClient(apiKey),
		player:   player,
		cacheDir: cacheDir,
		log:      log,
	}, nil
}

func (s *OpenAISynthesizer) Speak(text string, voice VoiceConfig) error {
	s.mu.Lock()
	s.stopLocked()
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.mu.Unlock()

	go s.run(ctx, text, voice)
	return nil
}

func (s *OpenAISynthesizer) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

func (s *OpenAISynthesizer) stopLocked() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *OpenAISynthesizer) run(ctx context.Context, text string, voice VoiceConfig) {
	path, err := s.ensureClip(ctx, text, voice)
	if err != nil {
		if ctx.Err() == nil {
			s.log.Warn("tts synthesis failed", "err", err)
		}
		return
	}

	// CommandContext kills the player when a newer utterance cancels us.
	cmd := exec.CommandContext(ctx, s.player, s.playerArgs(path)...)
	if err := cmd.Run(); err != nil && ctx.Err() == nil {
		s.log.Warn("tts playback failed", "player", s.player, "err", err)
	}
}

// ensureClip returns the cached MP3 for (text, voice), rendering it first
// if necessary.
func (s *OpenAISynthesizer) ensureClip(ctx context.Context, text string, voice VoiceConfig) (string, error) {
	sum := sha1.Sum([]byte(fmt.Sprintf("%s|%s|%.2f|%.2f", text, voice.Locale, voice.Pitch, voice.Rate)))
	path := filepath.Join(s.cacheDir, fmt.Sprintf("%x.mp3", sum))

	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	reqCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	resp, err := s.client.CreateSpeech(reqCtx, openai.CreateSpeechRequest{
		Model: openai.TTSModel1,
		Input: text,
		Voice: openai.VoiceNova,
		Speed: voice.Rate,
	})
	if err != nil {
		return "", fmt.Errorf("create speech: %w", err)
	}
	defer resp.Close()

	tmp, err := os.CreateTemp(s.cacheDir, "clip-*.mp3")
	if err != nil {
		return "", fmt.Errorf("create clip file: %w", err)
	}
	if _, err := io.Copy(tmp, resp); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write clip: %w", err)
	}
	tmp.Close()

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("store clip: %w", err)
	}
	return path, nil
}

func (s *OpenAISynthesizer) playerArgs(path string) []string {
	switch filepath.Base(s.player) {
	case "ffplay":
		return []string{"-nodisp", "-autoexit", "-loglevel", "quiet", path}
	case "mpv":
		return []string{"--no-video", "--really-quiet", path}
	default: // mpg123
		return []string{"-q", path}
	}
}
