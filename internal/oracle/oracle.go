// Package oracle turns a language model into the curriculum planner and
// oral examiner behind the schedule and viva services. Every call
// returns an error on model failure; callers degrade to the Fallback*
// helpers so an outage never blocks a learner.
package oracle

import (
	"context"

	"github.com/abhisek/studyplan/internal/roadmap"
)

// Oracle plans curricula and conducts oral assessments.
type Oracle interface {
	// Plan designs a module sequence for the learner's goal. Returned
	// modules are all locked with no assessment score.
	Plan(ctx context.Context, req PlanRequest) ([]roadmap.Module, error)

	// Opening produces the examiner's greeting and first question for
	// an assessment on the given module.
	Opening(ctx context.Context, req OpeningRequest) (string, error)

	// Grade evaluates the candidate's latest answer in context and
	// returns the examiner's reply plus a score delta in [-10, 10].
	Grade(ctx context.Context, req GradeRequest) (GradeResult, error)

	// Conclude produces closing feedback for a finished assessment.
	Conclude(ctx context.Context, req ConcludeRequest) (string, error)
}

// PlanRequest describes the learner a curriculum is designed for.
type PlanRequest struct {
	Goal                 string
	KnownSkills          []string
	DailyCommitmentHours int
}

// OpeningRequest identifies the module an assessment is starting on.
type OpeningRequest struct {
	Goal        string
	ModuleTitle string
}

// GradeRequest carries the conversation so far and the answer to grade.
type GradeRequest struct {
	Goal        string
	ModuleTitle string
	Transcript  []Exchange
	Answer      string
}

// GradeResult is the examiner's verdict on one answer.
type GradeResult struct {
	// Reply is the examiner's spoken response, ending in the next
	// question or a transition to the next concept.
	Reply string

	// Delta is the score adjustment, clamped to [-10, 10].
	Delta int
}

// ConcludeRequest describes a finished assessment.
type ConcludeRequest struct {
	ModuleTitle string
	Score       int
	Passed      bool
}

// Exchange is one turn of the assessment conversation.
type Exchange struct {
	Role    string
	Content string
}

// Exchange roles.
const (
	RoleExaminer  = "examiner"
	RoleCandidate = "candidate"
)
