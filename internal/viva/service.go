package viva

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/studyplan/internal/oracle"
	"github.com/abhisek/studyplan/internal/roadmap"
	"github.com/abhisek/studyplan/internal/schedule"
	"github.com/abhisek/studyplan/internal/store"
)

// Config tunes the assessment service.
type Config struct {
	// PassThreshold is the minimum concluding score to pass.
	PassThreshold int

	// QuestionTarget is how many graded answers conclude a session.
	QuestionTarget int

	// SessionTTL is how long an inactive session survives before the
	// expiry sweep removes it.
	SessionTTL time.Duration
}

// DefaultConfig returns the standard assessment settings.
func DefaultConfig() Config {
	return Config{
		PassThreshold:  DefaultPassThreshold,
		QuestionTarget: DefaultQuestionTarget,
		SessionTTL:     24 * time.Hour,
	}
}

// Service runs assessment sessions and applies their verdicts to the
// learner's schedule.
type Service struct {
	sessions  store.SessionRepo
	schedules *schedule.Service
	oracle    oracle.Oracle
	cfg       Config
	now       func() time.Time
	newID     func() string
}

// NewService creates a Service.
func NewService(sessions store.SessionRepo, schedules *schedule.Service, orc oracle.Oracle, cfg Config) *Service {
	return &Service{
		sessions:  sessions,
		schedules: schedules,
		oracle:    orc,
		cfg:       cfg,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// Start opens an assessment session on an unlocked module. The first
// examiner question is in the returned session's transcript; when the
// oracle is unreachable a templated opening is used instead.
func (s *Service) Start(ctx context.Context, ownerID, moduleID string) (*Session, error) {
	sched, err := s.schedules.Get(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	m, err := sched.Module(moduleID)
	if err != nil {
		return nil, err
	}
	if m.Status != roadmap.StatusUnlocked {
		return nil, fmt.Errorf("%w: %s is %s", ErrModuleNotUnlocked, moduleID, m.Status)
	}

	opening, degraded := "", false
	opening, err = s.oracle.Opening(ctx, oracle.OpeningRequest{
		Goal:        sched.Goal,
		ModuleTitle: m.Title,
	})
	if err != nil {
		opening = oracle.FallbackOpening(m.Title)
		degraded = true
	}

	now := s.now().UTC()
	sess := &Session{
		ID:           s.newID(),
		OwnerID:      ownerID,
		ModuleID:     moduleID,
		ModuleTitle:  m.Title,
		Goal:         sched.Goal,
		CurrentScore: StartScore,
		Status:       StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
		Transcript: []Turn{
			{Role: RoleExaminer, Content: opening, Degraded: degraded},
		},
	}

	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// TurnResult is the outcome of one submitted answer.
type TurnResult struct {
	Session *Session

	// Reply is the examiner's response to this answer.
	Reply string

	// Concluded is true when this answer ended the session.
	Concluded bool
	Passed    bool

	// Feedback is the examiner's closing message, set when Concluded.
	Feedback string

	// Outcome reports what the conclusion did to the schedule.
	Outcome schedule.Outcome
}

// Submit grades one answer. Skip utterances re-ask the current question
// without grading. The session concludes once enough answers have been
// graded; the verdict is applied to the schedule before the concluded
// session is persisted.
func (s *Service) Submit(ctx context.Context, sessionID, answer string) (*TurnResult, error) {
	sess, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Concluded() {
		return nil, ErrSessionConcluded
	}

	if isSkip(answer) {
		reply := "No problem, take your time. " + sess.LastQuestion()
		sess.Transcript = append(sess.Transcript,
			Turn{Role: RoleCandidate, Content: answer},
			Turn{Role: RoleExaminer, Content: reply},
		)
		if err := s.save(ctx, sess); err != nil {
			return nil, err
		}
		return &TurnResult{Session: sess, Reply: reply}, nil
	}

	grade, degraded := oracle.GradeResult{}, false
	grade, err = s.oracle.Grade(ctx, oracle.GradeRequest{
		Goal:        sess.Goal,
		ModuleTitle: sess.ModuleTitle,
		Transcript:  exchanges(sess.Transcript),
		Answer:      answer,
	})
	if err != nil {
		grade = oracle.FallbackGrade()
		degraded = true
	}

	sess.CurrentScore = clampScore(sess.CurrentScore + grade.Delta)
	sess.QuestionCount++
	sess.Transcript = append(sess.Transcript,
		Turn{Role: RoleCandidate, Content: answer},
		Turn{Role: RoleExaminer, Content: grade.Reply, Degraded: degraded},
	)

	result := &TurnResult{Session: sess, Reply: grade.Reply}

	if sess.QuestionCount >= s.cfg.QuestionTarget {
		if err := s.conclude(ctx, sess, result); err != nil {
			return nil, err
		}
	}

	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}
	return result, nil
}

// conclude finalizes the session and pushes the verdict into the
// schedule. The schedule write happens first so a failed cascade leaves
// the session active and the answer retryable.
func (s *Service) conclude(ctx context.Context, sess *Session, result *TurnResult) error {
	passed := sess.CurrentScore >= s.cfg.PassThreshold

	_, outcome, err := s.schedules.CompleteAssessment(ctx, sess.OwnerID, sess.ModuleID, sess.CurrentScore, passed)
	if err != nil {
		return fmt.Errorf("apply assessment verdict: %w", err)
	}

	feedback, err := s.oracle.Conclude(ctx, oracle.ConcludeRequest{
		ModuleTitle: sess.ModuleTitle,
		Score:       sess.CurrentScore,
		Passed:      passed,
	})
	degraded := false
	if err != nil {
		feedback = oracle.FallbackFeedback(sess.CurrentScore, passed)
		degraded = true
	}

	sess.Status = StatusFailed
	if passed {
		sess.Status = StatusPassed
	}
	sess.Transcript = append(sess.Transcript,
		Turn{Role: RoleExaminer, Content: feedback, Degraded: degraded})

	result.Concluded = true
	result.Passed = passed
	result.Feedback = feedback
	result.Outcome = outcome
	return nil
}

// Get loads a session by id.
func (s *Service) Get(ctx context.Context, sessionID string) (*Session, error) {
	doc, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	var sess Session
	if err := json.Unmarshal(doc.Data, &sess); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &sess, nil
}

// ExpireInactive removes sessions whose last activity is older than the
// configured TTL. Expiry never touches the schedule.
func (s *Service) ExpireInactive(ctx context.Context) (int, error) {
	return s.sessions.DeleteInactive(ctx, s.now().Add(-s.cfg.SessionTTL))
}

func (s *Service) save(ctx context.Context, sess *Session) error {
	sess.UpdatedAt = s.now().UTC()
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return s.sessions.Save(ctx, &store.SessionDoc{
		SessionID: sess.ID,
		OwnerID:   sess.OwnerID,
		Data:      data,
	})
}

// isSkip recognizes utterances that ask to move on without an answer.
func isSkip(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "skip", "pass", "next", "continue":
		return true
	}
	return false
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// exchanges converts a transcript to the oracle's conversation format.
func exchanges(transcript []Turn) []oracle.Exchange {
	out := make([]oracle.Exchange, 0, len(transcript))
	for _, t := range transcript {
		role := oracle.RoleCandidate
		if t.Role == RoleExaminer {
			role = oracle.RoleExaminer
		}
		out = append(out, oracle.Exchange{Role: role, Content: t.Content})
	}
	return out
}
