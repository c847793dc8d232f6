package roadmap

import (
	"errors"
	"testing"
)

func testRoadmap() []Module {
	return []Module{
		{ID: "module_1", Title: "Linux Fundamentals", EstimatedHours: 10, Status: StatusUnlocked},
		{ID: "module_2", Title: "Docker Containers", Prerequisites: []string{"module_1"}, EstimatedHours: 6, Status: StatusLocked},
		{ID: "module_3", Title: "Kubernetes Basics", Prerequisites: []string{"module_2"}, EstimatedHours: 4, Status: StatusLocked},
	}
}

func TestFind_Exists(t *testing.T) {
	modules := testRoadmap()
	m, err := Find(modules, "module_2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Title != "Docker Containers" {
		t.Errorf("got title %q, want %q", m.Title, "Docker Containers")
	}
}

func TestFind_NotFound(t *testing.T) {
	_, err := Find(testRoadmap(), "module_99")
	var nf *ModuleNotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected ModuleNotFoundError, got %v", err)
	}
	if nf.ModuleID != "module_99" {
		t.Errorf("got module id %q, want %q", nf.ModuleID, "module_99")
	}
}

func TestUnlockFirstEligible_NoOpWhenOneUnlocked(t *testing.T) {
	modules := testRoadmap()
	id, err := UnlockFirstEligible(modules)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "" {
		t.Errorf("expected no-op, got unlocked id %q", id)
	}
	if got := UnlockedIDs(modules); len(got) != 1 || got[0] != "module_1" {
		t.Errorf("unlocked set changed: %v", got)
	}
}

func TestUnlockFirstEligible_Idempotent(t *testing.T) {
	modules := testRoadmap()
	modules[0].Status = StatusCompleted
	modules[1].Status = StatusLocked

	first, err := UnlockFirstEligible(modules)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	if first != "module_2" {
		t.Errorf("first call unlocked %q, want module_2", first)
	}

	second, err := UnlockFirstEligible(modules)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if second != "" {
		t.Errorf("second call mutated state, unlocked %q", second)
	}
}

func TestUnlockFirstEligible_RespectsPrerequisites(t *testing.T) {
	modules := []Module{
		{ID: "a", EstimatedHours: 2, Status: StatusCompleted},
		{ID: "b", Prerequisites: []string{"a", "c"}, EstimatedHours: 2, Status: StatusLocked},
		{ID: "c", Prerequisites: []string{"a"}, EstimatedHours: 2, Status: StatusLocked},
	}
	id, err := UnlockFirstEligible(modules)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// b comes first in order but c is the first with all prereqs completed.
	if id != "c" {
		t.Errorf("unlocked %q, want c", id)
	}
}

func TestUnlockFirstEligible_InvariantViolation(t *testing.T) {
	modules := testRoadmap()
	modules[1].Status = StatusUnlocked // two unlocked: a bug elsewhere

	_, err := UnlockFirstEligible(modules)
	var inv *InvariantError
	if !errors.As(err, &inv) {
		t.Fatalf("expected InvariantError, got %v", err)
	}
	if len(inv.Unlocked) != 2 {
		t.Errorf("got %d unlocked ids, want 2", len(inv.Unlocked))
	}
}

func TestMarkCompleted_UnlocksNext(t *testing.T) {
	modules := testRoadmap()

	next, err := MarkCompleted(modules, "module_1", 85)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next != "module_2" {
		t.Errorf("unlocked %q, want module_2", next)
	}
	if modules[0].Status != StatusCompleted {
		t.Errorf("module_1 status %q, want completed", modules[0].Status)
	}
	if modules[0].AssessmentScore == nil || *modules[0].AssessmentScore != 85 {
		t.Errorf("score not recorded: %v", modules[0].AssessmentScore)
	}
	if modules[2].Status != StatusLocked {
		t.Errorf("module_3 should stay locked, got %q", modules[2].Status)
	}
}

func TestMarkCompleted_LastModule(t *testing.T) {
	modules := testRoadmap()
	modules[0].Status = StatusCompleted
	modules[1].Status = StatusCompleted
	modules[2].Status = StatusUnlocked

	next, err := MarkCompleted(modules, "module_3", 90)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next != "" {
		t.Errorf("nothing left to unlock, got %q", next)
	}
	if !Finished(modules) {
		t.Error("expected roadmap to be finished")
	}
}

func TestMarkCompleted_RequiresUnlocked(t *testing.T) {
	modules := testRoadmap()
	_, err := MarkCompleted(modules, "module_2", 80)
	var it *InvalidTransitionError
	if !errors.As(err, &it) {
		t.Fatalf("expected InvalidTransitionError, got %v", err)
	}
	if it.From != StatusLocked || it.To != StatusCompleted {
		t.Errorf("got transition %s -> %s", it.From, it.To)
	}
}

func TestMarkFailed_StaysRetakeable(t *testing.T) {
	modules := testRoadmap()

	if err := MarkFailed(modules, "module_1", 45); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if modules[0].Status != StatusFailed {
		t.Errorf("status %q, want failed", modules[0].Status)
	}
	if got := UnlockedIDs(modules); len(got) != 0 {
		t.Errorf("failure must not unlock anything, got %v", got)
	}
}

func TestMarkFailed_RequiresUnlocked(t *testing.T) {
	modules := testRoadmap()
	err := MarkFailed(modules, "module_3", 30)
	var it *InvalidTransitionError
	if !errors.As(err, &it) {
		t.Fatalf("expected InvalidTransitionError, got %v", err)
	}
}

func TestRetake(t *testing.T) {
	modules := testRoadmap()
	if err := MarkFailed(modules, "module_1", 40); err != nil {
		t.Fatalf("mark failed: %v", err)
	}

	if err := Retake(modules, "module_1"); err != nil {
		t.Fatalf("retake: %v", err)
	}
	if modules[0].Status != StatusUnlocked {
		t.Errorf("status %q, want unlocked", modules[0].Status)
	}
}

func TestRetake_RefusedWhileAnotherUnlocked(t *testing.T) {
	modules := testRoadmap()
	modules[0].Status = StatusFailed
	modules[1].Status = StatusUnlocked

	err := Retake(modules, "module_1")
	var inv *InvariantError
	if !errors.As(err, &inv) {
		t.Fatalf("expected InvariantError, got %v", err)
	}
}

func TestRetake_OnlyFromFailed(t *testing.T) {
	modules := testRoadmap()
	err := Retake(modules, "module_2")
	var it *InvalidTransitionError
	if !errors.As(err, &it) {
		t.Fatalf("expected InvalidTransitionError, got %v", err)
	}
}
