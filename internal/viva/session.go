// Package viva runs scored oral assessments. A session starts when a
// learner opens an assessment on an unlocked module, progresses one
// graded answer at a time, and concludes after a fixed number of
// questions, feeding the verdict back into the schedule.
package viva

import "time"

// Scoring parameters.
const (
	// StartScore is the score a session opens with.
	StartScore = 50

	// DefaultPassThreshold is the minimum concluding score to pass.
	DefaultPassThreshold = 70

	// DefaultQuestionTarget is how many graded answers conclude a session.
	DefaultQuestionTarget = 5
)

// Status is the session lifecycle state. Passed and failed are terminal.
type Status string

const (
	StatusActive Status = "active"
	StatusPassed Status = "passed"
	StatusFailed Status = "failed"
)

// Session is one oral assessment in progress or concluded.
type Session struct {
	ID            string    `json:"id"`
	OwnerID       string    `json:"owner_id"`
	ModuleID      string    `json:"module_id"`
	ModuleTitle   string    `json:"module_title"`
	Goal          string    `json:"goal"`
	Transcript    []Turn    `json:"transcript"`
	CurrentScore  int       `json:"current_score"`
	Status        Status    `json:"status"`
	QuestionCount int       `json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Turn is one utterance in the assessment transcript.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`

	// Degraded marks an examiner turn produced by a local fallback
	// while the oracle was unreachable. Degraded graded turns carry a
	// zero score delta.
	Degraded bool `json:"degraded,omitempty"`
}

// Transcript roles.
const (
	RoleExaminer  = "examiner"
	RoleCandidate = "candidate"
)

// Concluded reports whether the session reached a terminal status.
func (s *Session) Concluded() bool {
	return s.Status != StatusActive
}

// LastQuestion returns the most recent examiner utterance, or "".
func (s *Session) LastQuestion() string {
	for i := len(s.Transcript) - 1; i >= 0; i-- {
		if s.Transcript[i].Role == RoleExaminer {
			return s.Transcript[i].Content
		}
	}
	return ""
}
