package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ritwika/khel/internal/app"
	"github.com/ritwika/khel/internal/calendar"
	"github.com/ritwika/khel/internal/catalog"
	"github.com/ritwika/khel/internal/speech"
	"github.com/ritwika/khel/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	log, closeLog, err := openLogger(dbPath)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closeLog()

	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	cal := calendar.New(st, log)
	if err := cal.Load(context.Background()); err != nil {
		// Start with an empty calendar rather than refusing to play.
		log.Warn("mood calendar load failed", "error", err)
	}

	synth := buildSynthesizer(log)

	return app.Run(app.Options{
		Catalog:  cat,
		Speech:   speech.NewCoordinator(synth, log),
		Calendar: cal,
		Store:    st,
		Logger:   log,
	})
}

// openLogger writes structured logs next to the database; stderr belongs
// to the TUI.
func openLogger(dbPath string) (*slog.Logger, func(), error) {
	logPath := filepath.Join(filepath.Dir(dbPath), "khel.log")
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	log := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return log, func() { f.Close() }, nil
}

// buildSynthesizer picks the best available speech backend: the OpenAI
// TTS API when a key is configured, otherwise a local speech command,
// otherwise silence.
func buildSynthesizer(log *slog.Logger) speech.Synthesizer {
	key := os.Getenv("KHEL_OPENAI_KEY")
	if key == "" {
		key = os.Getenv("OPENAI_API_KEY")
	}
	if key != "" {
		if s, err := speech.NewOpenAISynthesizer(key, log); err == nil {
			return s
		} else {
			log.Warn("openai speech unavailable", "error", err)
		}
	}

	if s, err := speech.NewExecSynthesizer(log); err == nil {
		return s
	}

	fmt.Fprintln(os.Stderr, "No speech engine found; the app will play silently.")
	return speech.NopSynthesizer{}
}
