// Package schedule owns the learner's study plan: the module roadmap
// plus the allocated calendar, persisted as one versioned document.
package schedule

import (
	"time"

	"github.com/abhisek/studyplan/internal/calendar"
	"github.com/abhisek/studyplan/internal/roadmap"
)

// Schedule is a learner's complete study plan.
type Schedule struct {
	OwnerID              string              `json:"owner_id"`
	Goal                 string              `json:"goal"`
	StartDate            time.Time           `json:"start_date"`
	DailyCommitmentHours int                 `json:"daily_commitment_hours"`
	Modules              []roadmap.Module    `json:"modules"`
	Calendar             []calendar.TimeSlot `json:"calendar"`
	CreatedAt            time.Time           `json:"created_at"`

	// Version is the store's optimistic concurrency token. It is not
	// part of the document body.
	Version int64 `json:"-"`
}

// Module returns the schedule's module with the given id.
func (s *Schedule) Module(id string) (*roadmap.Module, error) {
	return roadmap.Find(s.Modules, id)
}

// Finished reports whether every module has been completed.
func (s *Schedule) Finished() bool {
	return roadmap.Finished(s.Modules)
}
