// Package practice hosts one activity run: it owns the state machine,
// schedules its timers as delayed messages, and renders prompts, option
// cards, feedback and the completion summary.
package practice

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/ritwika/khel/internal/activity"
	"github.com/ritwika/khel/internal/celebrate"
	"github.com/ritwika/khel/internal/router"
	"github.com/ritwika/khel/internal/screen"
	"github.com/ritwika/khel/internal/ui/components"
	"github.com/ritwika/khel/internal/ui/layout"
)

// ID names the practice screen for an activity in the router.
func ID(activityID string) router.ScreenID {
	return router.ScreenID("practice-" + activityID)
}

// Screen runs a single activity.
type Screen struct {
	machine *activity.Machine
	field   *celebrate.Field
	grid    components.OptionGrid

	// promptIndex mirrors the machine's index so the grid can be rebuilt
	// when the session advances.
	promptIndex int
	frame       int
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.Teardowner = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.StarsProvider = (*Screen)(nil)

// New creates a practice screen for the given activity.
func New(a activity.Activity, speaker activity.Speaker, log *slog.Logger) *Screen {
	field := celebrate.NewField()
	s := &Screen{
		machine: activity.New(a, activity.DefaultConfig(), speaker, field, log),
		field:   field,
	}
	s.grid = newGrid(s.machine.Prompt())
	return s
}

func newGrid(p activity.Prompt) components.OptionGrid {
	cards := make([]components.OptionCard, 0, len(p.Options))
	correct := 0
	for i, o := range p.Options {
		cards = append(cards, components.OptionCard{Label: o.Label, Emoji: o.Media})
		if o.Correct {
			correct = i
		}
	}
	return components.NewOptionGrid(cards, correct)
}

func (s *Screen) Init() tea.Cmd {
	return tea.Batch(schedule(s.machine.Start()), animTick())
}

func (s *Screen) Title() string {
	return s.machine.Activity().Title
}

// Stars surfaces the running score in the header.
func (s *Screen) Stars() int {
	return s.machine.Session().Score
}

func (s *Screen) Teardown() {
	s.machine.Teardown()
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.machine.Session().Completed {
		return []layout.KeyHint{
			{Key: "R", Description: "Play again"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "←/→", Description: "Choose"},
		{Key: "Enter", Description: "Answer"},
		{Key: "H", Description: "Hint"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerMsg:
		return s.handleTimer(msg)
	case animTickMsg:
		return s.handleAnimTick()
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *Screen) handleTimer(msg timerMsg) (screen.Screen, tea.Cmd) {
	cmd := schedule(s.machine.Fire(msg.Timer))
	s.syncGrid()
	return s, cmd
}

func (s *Screen) handleAnimTick() (screen.Screen, tea.Cmd) {
	s.frame++
	if s.field.Active() {
		s.field.Tick(animInterval)
	}
	return s, animTick()
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace":
		return s, router.Back()

	case "enter", "space":
		timers, ok := s.machine.SelectOption(s.grid.Selected)
		if ok {
			s.grid.Chosen = s.grid.Selected
			s.grid.Locked = true
		}
		return s, schedule(timers)

	case "h":
		return s, schedule(s.machine.RequestHint())

	case "r":
		cmd := schedule(s.machine.Reset())
		s.syncGrid()
		return s, cmd
	}

	var moved bool
	s.grid, moved = s.grid.Update(msg)
	if moved {
		return s, schedule(s.machine.Touch())
	}
	return s, nil
}

// syncGrid rebuilds the option cards when the machine moved to another
// prompt or back to a fresh session.
func (s *Screen) syncGrid() {
	sess := s.machine.Session()
	if sess.Completed {
		return
	}
	if sess.PromptIndex != s.promptIndex || (!sess.FeedbackVisible && s.grid.Chosen != components.NoChoice) {
		s.promptIndex = sess.PromptIndex
		s.grid = newGrid(s.machine.Prompt())
	}
}
