package calendar

import (
	"time"

	"github.com/abhisek/studyplan/internal/roadmap"
)

// Allocate maps a roadmap onto calendar time slots.
//
// For each module in order, skipping completed ones, it emits one study
// slot per day until the module's estimated effort is covered (the last
// day carries the remainder), then a practice slot the following day and
// an assessment slot the day after that. The date cursor then advances
// past the assessment day and the next module begins.
func Allocate(modules []roadmap.Module, dailyHours int, startDate time.Time) []TimeSlot {
	var cal []TimeSlot
	cursor := startDate
	dailyMinutes := dailyHours * 60

	for _, m := range modules {
		if m.Status == roadmap.StatusCompleted {
			continue
		}

		totalMinutes := m.EstimatedHours * 60
		daysNeeded := (totalMinutes + dailyMinutes - 1) / dailyMinutes

		for day := 0; day < daysNeeded; day++ {
			remaining := totalMinutes - day*dailyMinutes
			minutes := dailyMinutes
			if remaining < minutes {
				minutes = remaining
			}
			cal = append(cal, TimeSlot{
				Day:             DayLabel(cursor.AddDate(0, 0, day)),
				StartTime:       SlotStartTime,
				DurationMinutes: minutes,
				Activity:        ActivityStudy,
			})
		}

		practiceDate := cursor.AddDate(0, 0, daysNeeded)
		cal = append(cal, TimeSlot{
			Day:             DayLabel(practiceDate),
			StartTime:       SlotStartTime,
			DurationMinutes: PracticeMinutes,
			Activity:        ActivityPractice,
		})

		assessmentDate := practiceDate.AddDate(0, 0, 1)
		cal = append(cal, TimeSlot{
			Day:             DayLabel(assessmentDate),
			StartTime:       SlotStartTime,
			DurationMinutes: AssessmentMinutes,
			Activity:        ActivityAssessment,
		})

		cursor = assessmentDate.AddDate(0, 0, 1)
	}

	return cal
}
