package schedule

import "errors"

// ErrNotFound is returned when the owner has no schedule.
var ErrNotFound = errors.New("schedule: not found")

// ErrAlreadyExists is returned when creating a schedule for an owner
// who already has one.
var ErrAlreadyExists = errors.New("schedule: already exists")

// ErrConflict is returned when an update loses the concurrent-write
// race more times than the service is willing to retry.
var ErrConflict = errors.New("schedule: concurrent update conflict")
