package router

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/ritwika/khel/internal/screen"
)

// ScreenID names a registered screen.
type ScreenID string

// Factory builds a fresh screen instance. Screens are rebuilt on every
// visit, so re-entering an activity always starts it over.
type Factory func() screen.Screen

// NavigateMsg requests the router to switch to a named screen.
type NavigateMsg struct {
	To ScreenID
}

// BackMsg requests a return to the previously shown screen.
type BackMsg struct{}

// Navigate returns a command that switches to the named screen.
func Navigate(to ScreenID) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{To: to} }
}

// Back returns a command that returns to the previous screen.
func Back() tea.Cmd {
	return func() tea.Msg { return BackMsg{} }
}

// Router shows one screen at a time and remembers a single step of
// history: the screen shown just before the current one. A second "back"
// therefore returns to where the first one started, which keeps the
// mental model simple for small children mashing the back key.
type Router struct {
	factories map[ScreenID]Factory
	log       *slog.Logger

	currentID  ScreenID
	previousID ScreenID
	hasPrev    bool
	current    screen.Screen
}

// New creates a router showing the initial screen. A nil logger disables
// logging.
func New(factories map[ScreenID]Factory, initial ScreenID, log *slog.Logger) *Router {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	r := &Router{factories: factories, log: log, currentID: initial}
	if f, ok := factories[initial]; ok {
		r.current = f()
	} else {
		log.Warn("unknown initial screen", "screen", initial)
	}
	return r
}

// Init initializes the current screen.
func (r *Router) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

// NavigateTo tears down the current screen and switches to the named
// one. An unknown target leaves a blank content area rather than
// crashing; the old screen stays reachable via Back.
func (r *Router) NavigateTo(to ScreenID) tea.Cmd {
	r.teardown()
	r.previousID, r.hasPrev = r.currentID, true
	r.currentID = to

	f, ok := r.factories[to]
	if !ok {
		r.log.Warn("navigate to unknown screen", "screen", to)
		r.current = nil
		return nil
	}
	r.current = f()
	return r.current.Init()
}

// GoBack returns to the previous screen. The second return reports
// whether there was anywhere to go; the caller decides what an
// unhandled back means (the app shows its exit prompt).
func (r *Router) GoBack() (tea.Cmd, bool) {
	if !r.hasPrev {
		return nil, false
	}
	return r.NavigateTo(r.previousID), true
}

// CurrentID returns the active screen's name.
func (r *Router) CurrentID() ScreenID {
	return r.currentID
}

// CanGoBack reports whether a previous screen is recorded.
func (r *Router) CanGoBack() bool {
	return r.hasPrev
}

// Active returns the current screen, nil after navigating to an unknown
// name.
func (r *Router) Active() screen.Screen {
	return r.current
}

// Update forwards a message to the current screen and handles navigation
// messages.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case NavigateMsg:
		return r.NavigateTo(msg.To)
	case BackMsg:
		cmd, _ := r.GoBack()
		return cmd
	}

	if r.current == nil {
		return nil
	}
	updated, cmd := r.current.Update(msg)
	r.current = updated
	return cmd
}

// View renders the current screen.
func (r *Router) View(width, height int) string {
	if r.current == nil {
		return ""
	}
	return r.current.View(width, height)
}

// Teardown releases the current screen, silencing its timers and speech.
// Called when the app exits.
func (r *Router) Teardown() {
	r.teardown()
}

func (r *Router) teardown() {
	if td, ok := r.current.(screen.Teardowner); ok {
		td.Teardown()
	}
}
