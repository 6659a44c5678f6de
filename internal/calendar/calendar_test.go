package calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeKV struct {
	data    map[string]string
	setErr  error
	setHits int
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: make(map[string]string)}
}

func (f *fakeKV) Set(_ context.Context, key, value string) error {
	f.setHits++
	if f.setErr != nil {
		return f.setErr
	}
	f.data[key] = value
	return nil
}

func (f *fakeKV) Prefix(_ context.Context, prefix string) (map[string]string, error) {
	out := make(map[string]string)
	for k, v := range f.data {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			out[k] = v
		}
	}
	return out, nil
}

// newTestStore pins "now" to August 15 so future-date checks are stable.
func newTestStore(t *testing.T, kv KV) *Store {
	t.Helper()
	s := New(kv, nil)
	s.now = func() time.Time {
		return time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	}
	return s
}

func TestRecordAndGet(t *testing.T) {
	kv := newFakeKV()
	s := newTestStore(t, kv)

	require.NoError(t, s.Record(context.Background(), time.August, 10, MoodHappy))

	got, ok := s.Get(time.August, 10)
	require.True(t, ok)
	assert.Equal(t, MoodHappy, got)
	assert.Equal(t, "happy", kv.data["mood-August-10"])
}

func TestRecordOverwrites(t *testing.T) {
	kv := newFakeKV()
	s := newTestStore(t, kv)
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, time.August, 10, MoodSad))
	require.NoError(t, s.Record(ctx, time.August, 10, MoodHappy))

	got, _ := s.Get(time.August, 10)
	assert.Equal(t, MoodHappy, got)
}

func TestRecordRejectsFutureDate(t *testing.T) {
	s := newTestStore(t, newFakeKV())
	ctx := context.Background()

	err := s.Record(ctx, time.August, 16, MoodHappy)
	assert.ErrorIs(t, err, ErrFutureDate)

	err = s.Record(ctx, time.December, 1, MoodHappy)
	assert.ErrorIs(t, err, ErrFutureDate)

	// Today and the past are fine.
	assert.NoError(t, s.Record(ctx, time.August, 15, MoodHappy))
	assert.NoError(t, s.Record(ctx, time.January, 31, MoodSad))
}

func TestRecordRejectsUnknownMood(t *testing.T) {
	s := newTestStore(t, newFakeKV())

	err := s.Record(context.Background(), time.August, 1, Mood("giddy"))
	assert.ErrorIs(t, err, ErrUnknownMood)
	_, ok := s.Get(time.August, 1)
	assert.False(t, ok)
}

func TestPersistFailureKeepsMemory(t *testing.T) {
	kv := newFakeKV()
	kv.setErr = errors.New("disk full")
	s := newTestStore(t, kv)

	require.NoError(t, s.Record(context.Background(), time.August, 10, MoodHappy))

	got, ok := s.Get(time.August, 10)
	require.True(t, ok)
	assert.Equal(t, MoodHappy, got)
	assert.Equal(t, 1, kv.setHits)
}

func TestLoad(t *testing.T) {
	kv := newFakeKV()
	kv.data["mood-July-4"] = "fearful"
	kv.data["mood-July-5"] = "confused" // unknown, skipped
	kv.data["profile-name"] = "Ritu"    // different namespace

	s := newTestStore(t, kv)
	require.NoError(t, s.Load(context.Background()))

	got, ok := s.Get(time.July, 4)
	require.True(t, ok)
	assert.Equal(t, MoodFearful, got)

	_, ok = s.Get(time.July, 5)
	assert.False(t, ok)
}

func TestDaysIn(t *testing.T) {
	s := newTestStore(t, newFakeKV())

	assert.Equal(t, 31, s.DaysIn(time.January))
	assert.Equal(t, 28, s.DaysIn(time.February)) // 2026 is not a leap year
	assert.Equal(t, 30, s.DaysIn(time.April))
	assert.Equal(t, 31, s.DaysIn(time.December))
}
