package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/studyplan/internal/calendar"
	"github.com/abhisek/studyplan/internal/oracle"
	"github.com/abhisek/studyplan/internal/roadmap"
	"github.com/abhisek/studyplan/internal/store"
)

// casAttempts bounds optimistic-concurrency retries on schedule saves.
const casAttempts = 3

// Service owns schedule lifecycle: planning, persistence, and the
// assessment-driven state transitions.
type Service struct {
	repo   store.ScheduleRepo
	oracle oracle.Oracle
	now    func() time.Time
}

// NewService creates a Service.
func NewService(repo store.ScheduleRepo, orc oracle.Oracle) *Service {
	return &Service{repo: repo, oracle: orc, now: time.Now}
}

// CreateRequest describes a new schedule.
type CreateRequest struct {
	OwnerID              string
	Goal                 string
	KnownSkills          []string
	DailyCommitmentHours int
	StartDate            time.Time

	// PlanFile, when set, loads the curriculum from a YAML file
	// instead of asking the oracle.
	PlanFile string
}

// Create plans a curriculum for the owner, unlocks the first eligible
// module, allocates the calendar, and persists the result. Fails with
// ErrAlreadyExists when the owner already has a schedule.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Schedule, error) {
	if req.OwnerID == "" {
		return nil, errors.New("owner id is required")
	}
	if req.DailyCommitmentHours < 1 {
		return nil, errors.New("daily commitment must be at least 1 hour")
	}

	if _, err := s.repo.Load(ctx, req.OwnerID); err == nil {
		return nil, ErrAlreadyExists
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("check existing schedule: %w", err)
	}

	var (
		modules []roadmap.Module
		err     error
	)
	if req.PlanFile != "" {
		modules, err = oracle.LoadPlanFile(req.PlanFile)
	} else {
		modules, err = s.oracle.Plan(ctx, oracle.PlanRequest{
			Goal:                 req.Goal,
			KnownSkills:          req.KnownSkills,
			DailyCommitmentHours: req.DailyCommitmentHours,
		})
	}
	if err != nil {
		return nil, err
	}

	markKnownSkills(modules, req.KnownSkills)
	if _, err := roadmap.UnlockFirstEligible(modules); err != nil {
		return nil, err
	}

	start := req.StartDate
	if start.IsZero() {
		start = s.now()
	}

	sched := &Schedule{
		OwnerID:              req.OwnerID,
		Goal:                 req.Goal,
		StartDate:            start,
		DailyCommitmentHours: req.DailyCommitmentHours,
		Modules:              modules,
		Calendar:             calendar.Allocate(modules, req.DailyCommitmentHours, start),
		CreatedAt:            s.now().UTC(),
	}

	if err := s.save(ctx, sched); err != nil {
		return nil, err
	}
	return sched, nil
}

// Get loads the owner's schedule.
func (s *Service) Get(ctx context.Context, ownerID string) (*Schedule, error) {
	doc, err := s.repo.Load(ctx, ownerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return decode(doc)
}

// Outcome reports what an assessment conclusion did to the schedule.
type Outcome struct {
	// NextModuleID is the module unlocked by a pass, if any.
	NextModuleID string

	// Replanned is true when a failure rebuilt the calendar.
	Replanned bool

	// Finished is true when every module is now completed.
	Finished bool
}

// CompleteAssessment applies a concluded assessment to the schedule.
// A pass completes the module and unlocks the next eligible one; a
// failure marks it failed and replans the calendar with a remedial
// session. The updated schedule is persisted before returning.
func (s *Service) CompleteAssessment(ctx context.Context, ownerID, moduleID string, finalScore int, passed bool) (*Schedule, Outcome, error) {
	var outcome Outcome
	sched, err := s.update(ctx, ownerID, func(sched *Schedule) error {
		outcome = Outcome{}
		if passed {
			next, err := roadmap.MarkCompleted(sched.Modules, moduleID, finalScore)
			if err != nil {
				return err
			}
			outcome.NextModuleID = next
			outcome.Finished = roadmap.Finished(sched.Modules)
			return nil
		}

		if err := roadmap.MarkFailed(sched.Modules, moduleID, finalScore); err != nil {
			return err
		}
		sched.Calendar = calendar.Replan(sched.Calendar, s.now(), calendar.DefaultShiftDays)
		outcome.Replanned = true
		return nil
	})
	if err != nil {
		return nil, Outcome{}, err
	}
	return sched, outcome, nil
}

// Retake re-opens a failed module after remedial study.
func (s *Service) Retake(ctx context.Context, ownerID, moduleID string) (*Schedule, error) {
	return s.update(ctx, ownerID, func(sched *Schedule) error {
		return roadmap.Retake(sched.Modules, moduleID)
	})
}

// Reset deletes the owner's schedule.
func (s *Service) Reset(ctx context.Context, ownerID string) error {
	if err := s.repo.Delete(ctx, ownerID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// update runs a read-modify-write cycle under optimistic concurrency,
// retrying a bounded number of times on version conflicts. The mutate
// function runs against a freshly loaded schedule on every attempt.
func (s *Service) update(ctx context.Context, ownerID string, mutate func(*Schedule) error) (*Schedule, error) {
	for attempt := 0; attempt < casAttempts; attempt++ {
		sched, err := s.Get(ctx, ownerID)
		if err != nil {
			return nil, err
		}
		if err := mutate(sched); err != nil {
			return nil, err
		}
		err = s.save(ctx, sched)
		if errors.Is(err, store.ErrConflict) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return sched, nil
	}
	return nil, ErrConflict
}

func (s *Service) save(ctx context.Context, sched *Schedule) error {
	data, err := json.Marshal(sched)
	if err != nil {
		return fmt.Errorf("encode schedule: %w", err)
	}
	doc := &store.ScheduleDoc{
		OwnerID: sched.OwnerID,
		Version: sched.Version,
		Data:    data,
	}
	if err := s.repo.Save(ctx, doc); err != nil {
		return err
	}
	sched.Version = doc.Version
	return nil
}

func decode(doc *store.ScheduleDoc) (*Schedule, error) {
	var sched Schedule
	if err := json.Unmarshal(doc.Data, &sched); err != nil {
		return nil, fmt.Errorf("decode schedule: %w", err)
	}
	sched.Version = doc.Version
	return &sched, nil
}

// markKnownSkills completes modules matching the learner's declared
// skills so allocation and unlocking skip past them.
func markKnownSkills(modules []roadmap.Module, skills []string) {
	if len(skills) == 0 {
		return
	}
	known := make(map[string]bool, len(skills))
	for _, sk := range skills {
		known[strings.ToLower(strings.TrimSpace(sk))] = true
	}
	for i := range modules {
		if known[strings.ToLower(modules[i].Title)] || known[strings.ToLower(modules[i].ID)] {
			modules[i].Status = roadmap.StatusCompleted
		}
	}
}
