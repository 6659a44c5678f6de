package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbedded(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.Len(t, c.Festivals, 4)
	for _, id := range []string{"diwali", "eid", "christmas", "holi"} {
		f, ok := c.Festival(id)
		require.True(t, ok, "festival %s", id)
		assert.NotEmpty(t, f.Items)
		assert.NotEmpty(t, f.Practice.Questions)
	}

	assert.Len(t, c.Traffic.Signals, 3)
	assert.Len(t, c.Traffic.Quiz.Questions, 3)
	assert.Len(t, c.Market.Products, 3)
	assert.NotEmpty(t, c.Encouragements)
}

func TestFestivalLookupMiss(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	_, ok := c.Festival("pongal")
	assert.False(t, ok)
}

func TestVoiceConfig(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	v := c.VoiceConfig("marathi")
	assert.Equal(t, "mr-IN", v.Locale)
	assert.Equal(t, 0.9, v.Rate)

	// Unknown names fall back to the default voice.
	v = c.VoiceConfig("klingon")
	assert.Equal(t, "hi-IN", v.Locale)
}

func TestActivityConversion(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	f, ok := c.Festival("diwali")
	require.True(t, ok)

	a := c.Activity(f.Practice)
	assert.Equal(t, "diwali-practice", a.ID)
	assert.Equal(t, "mr-IN", a.Voice.Locale)
	assert.True(t, a.SpeakOptionLabels)
	assert.Equal(t, c.Encouragements, a.Encouragements)
	require.Len(t, a.Prompts, 2)

	first := a.Prompts[0]
	assert.Equal(t, "Which one is a Diya?", first.Text)
	require.Len(t, first.Options, 3)
	assert.Equal(t, "Diya", first.Options[0].Label)
	assert.True(t, first.Options[0].Correct)
	assert.False(t, first.Options[1].Correct)
}

func TestParseRejectsBadContent(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "no correct option",
			yaml: `
voices:
  default: {locale: hi-IN, pitch: 1.0, rate: 0.8}
festivals:
  - id: x
    name: X
    items: [{name: A, emoji: "a"}]
    practice:
      id: x-practice
      voice: default
      questions:
        - text: "Q?"
          options: [{label: A}, {label: B}]
traffic:
  signals: [{id: red, name: Red}]
  quiz:
    id: t
    voice: default
    questions:
      - text: "Q?"
        options: [{label: A, correct: true}, {label: B}]
market:
  products: [{id: p, name: P}]
`,
		},
		{
			name: "unknown voice",
			yaml: `
voices:
  default: {locale: hi-IN, pitch: 1.0, rate: 0.8}
festivals:
  - id: x
    name: X
    items: [{name: A, emoji: "a"}]
    practice:
      id: x-practice
      voice: nope
      questions:
        - text: "Q?"
          options: [{label: A, correct: true}, {label: B}]
traffic:
  signals: [{id: red, name: Red}]
  quiz:
    id: t
    voice: default
    questions:
      - text: "Q?"
        options: [{label: A, correct: true}, {label: B}]
market:
  products: [{id: p, name: P}]
`,
		},
		{
			name: "not yaml",
			yaml: "{{{",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}
