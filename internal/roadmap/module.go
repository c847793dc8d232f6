package roadmap

// Status is a module's lifecycle state.
type Status string

const (
	StatusLocked    Status = "locked"    // One or more prerequisites not yet completed
	StatusUnlocked  Status = "unlocked"  // Eligible for study and assessment
	StatusCompleted Status = "completed" // Assessment passed
	StatusFailed    Status = "failed"    // Assessment failed; retakeable after remedial study
)

// Label returns the display label for a status.
func (s Status) Label() string {
	switch s {
	case StatusLocked:
		return "Locked"
	case StatusUnlocked:
		return "Unlocked"
	case StatusCompleted:
		return "Completed"
	case StatusFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Icon returns the display icon for a status.
func (s Status) Icon() string {
	switch s {
	case StatusLocked:
		return "🔒"
	case StatusUnlocked:
		return "🔓"
	case StatusCompleted:
		return "✅"
	case StatusFailed:
		return "❌"
	default:
		return "?"
	}
}

// Module is one unit of curriculum content. Modules are held in
// dependency order: a module's prerequisites always appear earlier in
// the list.
type Module struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Prerequisites   []string `json:"prerequisites"`
	EstimatedHours  int      `json:"estimated_hours"`
	Status          Status   `json:"status"`
	AssessmentScore *int     `json:"assessment_score,omitempty"`
}
