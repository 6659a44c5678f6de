package activity

import "github.com/google/uuid"

// NoSelection is the SelectedOption value while no option is chosen.
const NoSelection = -1

// Session is the runtime state of one activity run. Mutated only by the
// owning Machine; views read it. Invariants:
//
//   - InputLocked is true iff FeedbackVisible is true
//   - Score increases at most once per prompt index (HasScored)
//   - PromptIndex never decreases within a session
//   - Completed becomes true exactly once, past the last prompt
type Session struct {
	ID              string
	PromptIndex     int
	Score           int
	SelectedOption  int
	FeedbackVisible bool
	InputLocked     bool
	HasScored       bool
	Completed       bool
	LastCorrect     bool
	HintVisible     bool
}

func newSession() *Session {
	return &Session{
		ID:             uuid.New().String(),
		SelectedOption: NoSelection,
	}
}
