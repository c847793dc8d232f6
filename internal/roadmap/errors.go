package roadmap

import (
	"fmt"
	"strings"
)

// ModuleNotFoundError indicates a module id that is not in the roadmap.
type ModuleNotFoundError struct {
	ModuleID string
}

func (e *ModuleNotFoundError) Error() string {
	return fmt.Sprintf("module not found: %q", e.ModuleID)
}

// InvalidTransitionError indicates a status change that the lifecycle
// rules do not allow.
type InvalidTransitionError struct {
	ModuleID string
	From     Status
	To       Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("module %q: invalid transition %s -> %s", e.ModuleID, e.From, e.To)
}

// InvariantError indicates the single-unlocked-module invariant was
// broken. This is never expected in normal operation and signals a bug
// in a caller.
type InvariantError struct {
	Unlocked []string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant violated: %d modules unlocked (%s), want at most 1",
		len(e.Unlocked), strings.Join(e.Unlocked, ", "))
}
