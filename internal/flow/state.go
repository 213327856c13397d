package flow

import (
	"github.com/mediasaver/media-saver/internal/detect"
)

// Phase represents where the flow currently is in its state machine
type Phase string

const (
	// PhaseIdle means no download action is running
	PhaseIdle Phase = "Idle"

	// PhaseLoading means a request is in flight
	PhaseLoading Phase = "Loading"

	// PhaseSuccess means the last action saved a file
	PhaseSuccess Phase = "Success"

	// PhaseError means the last action failed
	PhaseError Phase = "Error"
)

// String returns the string representation of Phase
func (p Phase) String() string {
	return string(p)
}

// State is the transient view state for one user interaction. It is a plain
// value: every transition below returns a new State and leaves the receiver
// untouched, so the UI can render any snapshot it was handed.
type State struct {
	URL      string
	Platform detect.Platform
	Phase    Phase
	Progress string // cosmetic progress phrase while loading
	Error    string
	Success  string
}

// NewState returns the initial idle state.
func NewState() State {
	return State{Phase: PhaseIdle, Platform: detect.PlatformUnknown}
}

// Loading returns true while a request is in flight. It is the sole mutual
// exclusion: the UI disables its triggers whenever it holds.
func (s State) Loading() bool {
	return s.Phase == PhaseLoading
}

// WithURL sets the input text and re-derives the platform badge from it.
// Platform is never assigned anywhere else, so badge and input cannot drift
// apart.
func (s State) WithURL(url string) State {
	s.URL = url
	s.Platform = detect.Detect(url)
	return s
}

// Submitted enters the loading phase: prior error/success are cleared and the
// first progress phrase is shown.
func (s State) Submitted(firstPhrase string) State {
	s.Phase = PhaseLoading
	s.Progress = firstPhrase
	s.Error = ""
	s.Success = ""
	return s
}

// Progressed swaps in the next cosmetic phrase. Outside the loading phase it
// is a no-op, which makes stale ticker callbacks harmless.
func (s State) Progressed(phrase string) State {
	if s.Phase != PhaseLoading {
		return s
	}
	s.Progress = phrase
	return s
}

// Failed enters the error phase with a user-facing message.
func (s State) Failed(msg string) State {
	s.Phase = PhaseError
	s.Error = msg
	s.Progress = ""
	s.Success = ""
	return s
}

// Succeeded enters the success phase and clears the input field, ready for
// the next link.
func (s State) Succeeded(msg string) State {
	s.Phase = PhaseSuccess
	s.Success = msg
	s.Progress = ""
	s.Error = ""
	s.URL = ""
	s.Platform = detect.PlatformUnknown
	return s
}

// Warned shows a transient validation message without leaving the idle
// phase. Used for the empty-URL case.
func (s State) Warned(msg string) State {
	s.Error = msg
	return s
}

// Cleared returns to idle, dropping any transient messages but keeping the
// typed URL and its badge.
func (s State) Cleared() State {
	s.Phase = PhaseIdle
	s.Progress = ""
	s.Error = ""
	s.Success = ""
	return s
}
