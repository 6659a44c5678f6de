package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/ritwika/khel/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// Teardowner is an optional interface for screens that hold live resources.
// The router calls Teardown before discarding a screen, so pending timers
// and utterances cannot outlive the screen that scheduled them.
type Teardowner interface {
	Teardown()
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StarsProvider is an optional interface for screens that award stars;
// the header shows the count while such a screen is active.
type StarsProvider interface {
	Stars() int
}
