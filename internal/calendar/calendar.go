package calendar

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// keyPrefix namespaces calendar entries inside the shared key/value store.
const keyPrefix = "mood-"

var (
	// ErrFutureDate rejects recording a mood for a day that hasn't
	// happened yet.
	ErrFutureDate = errors.New("cannot record a mood for a future date")

	// ErrUnknownMood rejects moods outside the fixed set.
	ErrUnknownMood = errors.New("unknown mood")
)

// KV is the slice of the store the calendar needs.
type KV interface {
	Set(ctx context.Context, key, value string) error
	Prefix(ctx context.Context, prefix string) (map[string]string, error)
}

// Store keeps one recorded mood per calendar day of the current year,
// cached in memory and mirrored to the key/value store. Persistence
// failures are logged and the in-memory value stands, so a flaky disk
// never loses the day's mood on screen.
type Store struct {
	kv  KV
	log *slog.Logger
	now func() time.Time

	mu    sync.Mutex
	moods map[string]Mood
}

// New creates a calendar over kv. A nil logger disables logging.
func New(kv KV, log *slog.Logger) *Store {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Store{
		kv:    kv,
		log:   log,
		now:   time.Now,
		moods: make(map[string]Mood),
	}
}

// Key is the per-day identity: month name and day-of-month, so an entry
// survives across app runs within the same year.
func Key(month time.Month, day int) string {
	return fmt.Sprintf("%s-%d", month, day)
}

// Load fills the in-memory cache from the store. Unknown moods in the
// store are skipped with a warning rather than failing the whole load.
func (s *Store) Load(ctx context.Context) error {
	entries, err := s.kv.Prefix(ctx, keyPrefix)
	if err != nil {
		return fmt.Errorf("load mood calendar: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range entries {
		m := Mood(v)
		if !m.Valid() {
			s.log.Warn("skipping unknown mood in store", "key", k, "value", v)
			continue
		}
		s.moods[k[len(keyPrefix):]] = m
	}
	return nil
}

// Record stores mood for the given day of the current year. Future dates
// and unknown moods are rejected; re-recording a day overwrites it.
func (s *Store) Record(ctx context.Context, month time.Month, day int, mood Mood) error {
	if !mood.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownMood, mood)
	}
	if s.isFuture(month, day) {
		return ErrFutureDate
	}

	key := Key(month, day)

	s.mu.Lock()
	s.moods[key] = mood
	s.mu.Unlock()

	if err := s.kv.Set(ctx, keyPrefix+key, string(mood)); err != nil {
		s.log.Warn("persist mood failed", "key", key, "error", err)
	}
	return nil
}

// Get returns the recorded mood for a day, if any.
func (s *Store) Get(month time.Month, day int) (Mood, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.moods[Key(month, day)]
	return m, ok
}

// Today returns the current month and day.
func (s *Store) Today() (time.Month, int) {
	now := s.now()
	return now.Month(), now.Day()
}

// Year returns the calendar's year.
func (s *Store) Year() int {
	return s.now().Year()
}

// DaysIn returns the number of days in month for the calendar's year.
func (s *Store) DaysIn(month time.Month) int {
	return time.Date(s.Year(), month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func (s *Store) isFuture(month time.Month, day int) bool {
	now := s.now()
	if month > now.Month() {
		return true
	}
	return month == now.Month() && day > now.Day()
}
