package calendar

import "time"

// Activity is the kind of work a time slot is reserved for.
type Activity string

const (
	ActivityStudy      Activity = "study"
	ActivityPractice   Activity = "practice"
	ActivityAssessment Activity = "assessment"
	ActivityRemedial   Activity = "remedial"
)

// Fixed slot parameters. The calendar models one session per day at a
// single time of day; it does not model collisions.
const (
	SlotStartTime = "18:00"

	PracticeMinutes   = 60
	AssessmentMinutes = 30
	RemedialMinutes   = 120

	// DefaultShiftDays is how far the replanner pushes existing slots
	// to make room for a remedial session.
	DefaultShiftDays = 1
)

// TimeSlot is one scheduled session. Slots are labeled by weekday only;
// the absolute date is dropped after allocation.
type TimeSlot struct {
	Day             string   `json:"day"`
	StartTime       string   `json:"start_time"`
	DurationMinutes int      `json:"duration_minutes"`
	Activity        Activity `json:"activity_type"`
}

var dayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// DayLabel returns the weekday label for a date.
func DayLabel(t time.Time) string {
	return t.Weekday().String()
}

// ShiftDayLabel advances a weekday label by n days, wrapping around the
// week. Unrecognized labels are returned unchanged.
func ShiftDayLabel(label string, n int) string {
	for i, name := range dayNames {
		if name == label {
			return dayNames[((i+n)%7+7)%7]
		}
	}
	return label
}
