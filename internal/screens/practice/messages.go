package practice

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/ritwika/khel/internal/activity"
)

// timerMsg delivers a scheduled machine timer back to the screen.
type timerMsg struct {
	Timer activity.Timer
}

// animTickMsg drives the confetti and attract animations.
type animTickMsg time.Time

const animInterval = 80 * time.Millisecond

func animTick() tea.Cmd {
	return tea.Tick(animInterval, func(t time.Time) tea.Msg {
		return animTickMsg(t)
	})
}

// schedule converts machine timers into delayed messages.
func schedule(timers []activity.Timer) tea.Cmd {
	if len(timers) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(timers))
	for _, t := range timers {
		cmds = append(cmds, tea.Tick(t.Delay, func(time.Time) tea.Msg {
			return timerMsg{Timer: t}
		}))
	}
	return tea.Batch(cmds...)
}
