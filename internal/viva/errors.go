package viva

import "errors"

// ErrSessionNotFound is returned when no session has the given id.
var ErrSessionNotFound = errors.New("viva: session not found")

// ErrSessionConcluded is returned when submitting to a session that
// already reached a terminal status.
var ErrSessionConcluded = errors.New("viva: session already concluded")

// ErrModuleNotUnlocked is returned when starting an assessment on a
// module that is not currently unlocked.
var ErrModuleNotUnlocked = errors.New("viva: module is not unlocked")
