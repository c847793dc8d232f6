package calendar

import "time"

// Replan rebuilds a calendar after an assessment failure: a remedial
// slot anchored at tomorrow (relative to now) goes first, and every
// existing slot is pushed shiftDays later by weekday label.
//
// The shift wraps modulo 7 because slots carry no absolute date, so a
// calendar spanning more than one week can end up with ambiguous labels
// after repeated replanning.
//
// Replan is not idempotent: invoking it twice for the same failure
// double-shifts the calendar. Callers guarantee at-most-once invocation
// per failure event.
func Replan(cal []TimeSlot, now time.Time, shiftDays int) []TimeSlot {
	out := make([]TimeSlot, 0, len(cal)+1)

	out = append(out, TimeSlot{
		Day:             DayLabel(now.AddDate(0, 0, 1)),
		StartTime:       SlotStartTime,
		DurationMinutes: RemedialMinutes,
		Activity:        ActivityRemedial,
	})

	for _, slot := range cal {
		out = append(out, TimeSlot{
			Day:             ShiftDayLabel(slot.Day, shiftDays),
			StartTime:       slot.StartTime,
			DurationMinutes: slot.DurationMinutes,
			Activity:        slot.Activity,
		})
	}

	return out
}
