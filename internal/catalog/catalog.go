// Package catalog holds the app's static lesson content: festivals with
// their items and practice quizzes, the traffic-safety explorer, and the
// market products. Content ships embedded in the binary as YAML.
package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ritwika/khel/internal/activity"
	"github.com/ritwika/khel/internal/speech"
)

//go:embed data/catalog.yaml
var embedded []byte

// Voice is a named speech configuration.
type Voice struct {
	Locale string  `yaml:"locale"`
	Pitch  float64 `yaml:"pitch"`
	Rate   float64 `yaml:"rate"`
}

// Catalog is the full content tree.
type Catalog struct {
	Voices         map[string]Voice `yaml:"voices"`
	Encouragements []string         `yaml:"encouragements"`
	Festivals      []Festival       `yaml:"festivals"`
	Traffic        Traffic          `yaml:"traffic"`
	Market         Market           `yaml:"market"`
}

// Festival couples a learn page (items) with a practice quiz.
type Festival struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Emoji    string `yaml:"emoji"`
	Items    []Item `yaml:"items"`
	Practice Quiz   `yaml:"practice"`
}

// Item is one tappable thing on a festival's learn page.
type Item struct {
	Name        string `yaml:"name"`
	Emoji       string `yaml:"emoji"`
	Description string `yaml:"description"`
}

// Quiz is catalog-side quiz content, converted to an activity.Activity
// before play.
type Quiz struct {
	ID                string     `yaml:"id"`
	Title             string     `yaml:"title"`
	Voice             string     `yaml:"voice"`
	Intro             string     `yaml:"intro"`
	SpeakOptionLabels bool       `yaml:"speak_option_labels"`
	Questions         []Question `yaml:"questions"`
}

// Question is one quiz question.
type Question struct {
	Text    string       `yaml:"text"`
	Options []QuizOption `yaml:"options"`
	Hint    string       `yaml:"hint"`
}

// QuizOption is one selectable answer.
type QuizOption struct {
	Label   string `yaml:"label"`
	Emoji   string `yaml:"emoji"`
	Correct bool   `yaml:"correct"`
}

// Traffic holds the signal explorer plus its road-safety quiz.
type Traffic struct {
	Signals []Signal `yaml:"signals"`
	Quiz    Quiz     `yaml:"quiz"`
}

// Signal is one light of the explorer.
type Signal struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Color       string `yaml:"color"`
	Emoji       string `yaml:"emoji"`
	Description string `yaml:"description"`
	Action      string `yaml:"action"`
}

// Market holds the MRP and expiry-date finder content.
type Market struct {
	Intro    string    `yaml:"intro"`
	Products []Product `yaml:"products"`
}

// Product is one thing to inspect at the market.
type Product struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Emoji       string `yaml:"emoji"`
	MRP         string `yaml:"mrp"`
	Expiry      string `yaml:"expiry"`
	Description string `yaml:"description"`
}

// Load parses and validates the embedded catalog.
func Load() (*Catalog, error) {
	return Parse(embedded)
}

// Parse parses and validates catalog YAML.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate catalog: %w", err)
	}
	return &c, nil
}

// Validate checks the structural invariants the screens rely on: every
// quiz has questions, every question has at least two options with
// exactly one marked correct, and voice references resolve.
func (c *Catalog) Validate() error {
	for _, f := range c.Festivals {
		if f.ID == "" {
			return fmt.Errorf("festival %q: missing id", f.Name)
		}
		if len(f.Items) == 0 {
			return fmt.Errorf("festival %q: no items", f.ID)
		}
		if err := c.validateQuiz(f.Practice); err != nil {
			return fmt.Errorf("festival %q: %w", f.ID, err)
		}
	}
	if len(c.Traffic.Signals) == 0 {
		return fmt.Errorf("traffic: no signals")
	}
	if err := c.validateQuiz(c.Traffic.Quiz); err != nil {
		return fmt.Errorf("traffic: %w", err)
	}
	if len(c.Market.Products) == 0 {
		return fmt.Errorf("market: no products")
	}
	return nil
}

func (c *Catalog) validateQuiz(q Quiz) error {
	if len(q.Questions) == 0 {
		return fmt.Errorf("quiz %q: no questions", q.ID)
	}
	if _, ok := c.Voices[q.Voice]; !ok {
		return fmt.Errorf("quiz %q: unknown voice %q", q.ID, q.Voice)
	}
	for i, question := range q.Questions {
		if len(question.Options) < 2 {
			return fmt.Errorf("quiz %q question %d: needs at least two options", q.ID, i)
		}
		correct := 0
		for _, o := range question.Options {
			if o.Correct {
				correct++
			}
		}
		if correct != 1 {
			return fmt.Errorf("quiz %q question %d: %d correct options, want exactly one", q.ID, i, correct)
		}
	}
	return nil
}

// Festival looks up a festival by id.
func (c *Catalog) Festival(id string) (Festival, bool) {
	for _, f := range c.Festivals {
		if f.ID == id {
			return f, true
		}
	}
	return Festival{}, false
}

// VoiceConfig resolves a named voice, falling back to the default.
func (c *Catalog) VoiceConfig(name string) speech.VoiceConfig {
	if v, ok := c.Voices[name]; ok {
		return speech.VoiceConfig{Locale: v.Locale, Pitch: v.Pitch, Rate: v.Rate}
	}
	return speech.DefaultVoice()
}

// Activity converts a quiz into playable activity content, wiring in the
// shared encouragement phrases and resolving the quiz's voice.
func (c *Catalog) Activity(q Quiz) activity.Activity {
	a := activity.Activity{
		ID:                q.ID,
		Title:             q.Title,
		Voice:             c.VoiceConfig(q.Voice),
		Intro:             q.Intro,
		SpeakOptionLabels: q.SpeakOptionLabels,
		Encouragements:    c.Encouragements,
	}
	for _, question := range q.Questions {
		p := activity.Prompt{Text: question.Text, Hint: question.Hint}
		for _, o := range question.Options {
			p.Options = append(p.Options, activity.Option{
				Label:   o.Label,
				Correct: o.Correct,
				Media:   o.Emoji,
			})
		}
		a.Prompts = append(a.Prompts, p)
	}
	return a
}
