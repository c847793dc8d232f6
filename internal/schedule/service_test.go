package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/studyplan/internal/calendar"
	"github.com/abhisek/studyplan/internal/llm"
	"github.com/abhisek/studyplan/internal/oracle"
	"github.com/abhisek/studyplan/internal/roadmap"
	"github.com/abhisek/studyplan/internal/store"
)

const planJSON = `{
	"modules": [
		{"module_id": "module_1", "title": "Linux Fundamentals", "prerequisites": [], "estimated_hours": 10},
		{"module_id": "module_2", "title": "Docker", "prerequisites": ["module_1"], "estimated_hours": 6},
		{"module_id": "module_3", "title": "Kubernetes", "prerequisites": ["module_2"], "estimated_hours": 4}
	]
}`

func newTestService(t *testing.T) (*Service, store.ScheduleRepo) {
	t.Helper()
	st, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(planJSON)})
	repo := st.ScheduleRepo()
	svc := NewService(repo, oracle.New(mock, oracle.DefaultConfig()))
	svc.now = func() time.Time { return time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC) } // a Monday
	return svc, repo
}

func mustCreate(t *testing.T, svc *Service, skills ...string) *Schedule {
	t.Helper()
	sched, err := svc.Create(context.Background(), CreateRequest{
		OwnerID:              "learner-1",
		Goal:                 "DevOps Engineer",
		KnownSkills:          skills,
		DailyCommitmentHours: 2,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return sched
}

func TestCreate(t *testing.T) {
	svc, _ := newTestService(t)
	sched := mustCreate(t, svc)

	if sched.Version != 1 {
		t.Errorf("Version = %d, want 1", sched.Version)
	}
	if got := roadmap.UnlockedIDs(sched.Modules); len(got) != 1 || got[0] != "module_1" {
		t.Errorf("unlocked = %v, want [module_1]", got)
	}
	if len(sched.Calendar) == 0 {
		t.Fatal("calendar is empty")
	}
	// 10h at 2h/day: 5 study days, then practice and assessment.
	if sched.Calendar[0].Day != "Monday" || sched.Calendar[0].Activity != calendar.ActivityStudy {
		t.Errorf("first slot = %+v", sched.Calendar[0])
	}

	got, err := svc.Get(context.Background(), "learner-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Goal != "DevOps Engineer" || len(got.Modules) != 3 {
		t.Errorf("round-trip schedule = %+v", got)
	}
}

func TestCreateAlreadyExists(t *testing.T) {
	svc, _ := newTestService(t)
	mustCreate(t, svc)

	_, err := svc.Create(context.Background(), CreateRequest{
		OwnerID:              "learner-1",
		Goal:                 "DevOps Engineer",
		DailyCommitmentHours: 2,
	})
	if !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("Create again = %v, want ErrAlreadyExists", err)
	}
}

func TestCreateKnownSkillsSkipModules(t *testing.T) {
	svc, _ := newTestService(t)
	sched := mustCreate(t, svc, "linux fundamentals")

	m1, _ := sched.Module("module_1")
	if m1.Status != roadmap.StatusCompleted {
		t.Errorf("module_1 status = %s, want completed", m1.Status)
	}
	if got := roadmap.UnlockedIDs(sched.Modules); len(got) != 1 || got[0] != "module_2" {
		t.Errorf("unlocked = %v, want [module_2]", got)
	}

	// Completed modules get no study time: 6h + 4h at 2h/day is
	// 3+2 study slots plus practice and assessment per module.
	wantSlots := (3 + 1 + 1) + (2 + 1 + 1)
	if len(sched.Calendar) != wantSlots {
		t.Errorf("calendar has %d slots, want %d", len(sched.Calendar), wantSlots)
	}
}

func TestGetMissing(t *testing.T) {
	svc, _ := newTestService(t)
	if _, err := svc.Get(context.Background(), "nobody"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get = %v, want ErrNotFound", err)
	}
}

func TestCompleteAssessmentPass(t *testing.T) {
	svc, _ := newTestService(t)
	mustCreate(t, svc)

	sched, outcome, err := svc.CompleteAssessment(context.Background(), "learner-1", "module_1", 85, true)
	if err != nil {
		t.Fatalf("CompleteAssessment: %v", err)
	}
	if outcome.NextModuleID != "module_2" {
		t.Errorf("NextModuleID = %q, want module_2", outcome.NextModuleID)
	}
	if outcome.Replanned || outcome.Finished {
		t.Errorf("outcome = %+v", outcome)
	}

	m1, _ := sched.Module("module_1")
	if m1.Status != roadmap.StatusCompleted {
		t.Errorf("module_1 status = %s", m1.Status)
	}
	if m1.AssessmentScore == nil || *m1.AssessmentScore != 85 {
		t.Errorf("module_1 score = %v, want 85", m1.AssessmentScore)
	}
	if got := roadmap.UnlockedIDs(sched.Modules); len(got) != 1 || got[0] != "module_2" {
		t.Errorf("unlocked = %v", got)
	}

	// The pass must be durable.
	persisted, err := svc.Get(context.Background(), "learner-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if m, _ := persisted.Module("module_1"); m.Status != roadmap.StatusCompleted {
		t.Error("pass was not persisted")
	}
}

func TestCompleteAssessmentFinishes(t *testing.T) {
	svc, _ := newTestService(t)
	mustCreate(t, svc)
	ctx := context.Background()

	for _, id := range []string{"module_1", "module_2"} {
		if _, _, err := svc.CompleteAssessment(ctx, "learner-1", id, 80, true); err != nil {
			t.Fatalf("pass %s: %v", id, err)
		}
	}
	sched, outcome, err := svc.CompleteAssessment(ctx, "learner-1", "module_3", 90, true)
	if err != nil {
		t.Fatalf("pass module_3: %v", err)
	}
	if !outcome.Finished || outcome.NextModuleID != "" {
		t.Errorf("outcome = %+v, want finished with no next module", outcome)
	}
	if !sched.Finished() {
		t.Error("schedule not finished")
	}
}

func TestCompleteAssessmentFailReplans(t *testing.T) {
	svc, _ := newTestService(t)
	created := mustCreate(t, svc)
	before := len(created.Calendar)

	sched, outcome, err := svc.CompleteAssessment(context.Background(), "learner-1", "module_1", 40, false)
	if err != nil {
		t.Fatalf("CompleteAssessment: %v", err)
	}
	if !outcome.Replanned {
		t.Error("outcome.Replanned = false")
	}

	m1, _ := sched.Module("module_1")
	if m1.Status != roadmap.StatusFailed {
		t.Errorf("module_1 status = %s, want failed", m1.Status)
	}
	if len(sched.Calendar) != before+1 {
		t.Errorf("calendar has %d slots, want %d", len(sched.Calendar), before+1)
	}
	head := sched.Calendar[0]
	if head.Activity != calendar.ActivityRemedial || head.DurationMinutes != calendar.RemedialMinutes {
		t.Errorf("head slot = %+v, want 120-minute remedial", head)
	}
	// now() is a Monday, so the remedial session lands on Tuesday.
	if head.Day != "Tuesday" {
		t.Errorf("remedial day = %s, want Tuesday", head.Day)
	}
}

func TestCompleteAssessmentUnknownModule(t *testing.T) {
	svc, _ := newTestService(t)
	mustCreate(t, svc)

	_, _, err := svc.CompleteAssessment(context.Background(), "learner-1", "module_9", 80, true)
	var nf *roadmap.ModuleNotFoundError
	if !errors.As(err, &nf) {
		t.Errorf("err = %v, want ModuleNotFoundError", err)
	}
}

func TestRetake(t *testing.T) {
	svc, _ := newTestService(t)
	mustCreate(t, svc)
	ctx := context.Background()

	if _, _, err := svc.CompleteAssessment(ctx, "learner-1", "module_1", 40, false); err != nil {
		t.Fatalf("fail module_1: %v", err)
	}
	sched, err := svc.Retake(ctx, "learner-1", "module_1")
	if err != nil {
		t.Fatalf("Retake: %v", err)
	}
	if m, _ := sched.Module("module_1"); m.Status != roadmap.StatusUnlocked {
		t.Errorf("module_1 status = %s, want unlocked", m.Status)
	}
}

func TestReset(t *testing.T) {
	svc, _ := newTestService(t)
	mustCreate(t, svc)
	ctx := context.Background()

	if err := svc.Reset(ctx, "learner-1"); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if _, err := svc.Get(ctx, "learner-1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after reset = %v, want ErrNotFound", err)
	}
	if err := svc.Reset(ctx, "learner-1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Reset again = %v, want ErrNotFound", err)
	}
}

// flakyRepo fails the first n versioned saves with ErrConflict, then
// delegates to the real repository.
type flakyRepo struct {
	store.ScheduleRepo
	conflicts int
}

func (r *flakyRepo) Save(ctx context.Context, doc *store.ScheduleDoc) error {
	if doc.Version > 0 && r.conflicts > 0 {
		r.conflicts--
		return store.ErrConflict
	}
	return r.ScheduleRepo.Save(ctx, doc)
}

func TestUpdateRetriesOnConflict(t *testing.T) {
	svc, repo := newTestService(t)
	mustCreate(t, svc)

	flaky := &flakyRepo{ScheduleRepo: repo, conflicts: 2}
	retrying := NewService(flaky, nil)
	retrying.now = svc.now

	_, outcome, err := retrying.CompleteAssessment(context.Background(), "learner-1", "module_1", 85, true)
	if err != nil {
		t.Fatalf("CompleteAssessment with conflicts: %v", err)
	}
	if outcome.NextModuleID != "module_2" {
		t.Errorf("NextModuleID = %q", outcome.NextModuleID)
	}
}

func TestUpdateGivesUpAfterRetries(t *testing.T) {
	svc, repo := newTestService(t)
	mustCreate(t, svc)

	flaky := &flakyRepo{ScheduleRepo: repo, conflicts: casAttempts}
	failing := NewService(flaky, nil)
	failing.now = svc.now

	_, _, err := failing.CompleteAssessment(context.Background(), "learner-1", "module_1", 85, true)
	if !errors.Is(err, ErrConflict) {
		t.Errorf("err = %v, want ErrConflict", err)
	}
}
