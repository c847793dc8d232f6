package calendar

import (
	"testing"
	"time"

	"github.com/abhisek/studyplan/internal/roadmap"
)

// monday is an arbitrary Monday used as a schedule start date.
var monday = time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

func TestAllocate_SlotCounts(t *testing.T) {
	modules := []roadmap.Module{
		{ID: "m1", EstimatedHours: 10, Status: roadmap.StatusUnlocked},
	}

	cal := Allocate(modules, 2, monday)

	// ceil(10*60/120) = 5 study slots, plus practice and assessment.
	if len(cal) != 7 {
		t.Fatalf("got %d slots, want 7", len(cal))
	}
	var study, practice, assessment int
	for _, s := range cal {
		switch s.Activity {
		case ActivityStudy:
			study++
		case ActivityPractice:
			practice++
		case ActivityAssessment:
			assessment++
		}
	}
	if study != 5 || practice != 1 || assessment != 1 {
		t.Errorf("got %d study / %d practice / %d assessment, want 5/1/1", study, practice, assessment)
	}
}

func TestAllocate_RemainderOnFinalStudyDay(t *testing.T) {
	modules := []roadmap.Module{
		{ID: "m1", EstimatedHours: 5, Status: roadmap.StatusUnlocked},
	}

	// 300 minutes at 120/day: two full days plus a 60-minute remainder.
	cal := Allocate(modules, 2, monday)

	if cal[0].DurationMinutes != 120 || cal[1].DurationMinutes != 120 {
		t.Errorf("full study days got %d and %d minutes, want 120", cal[0].DurationMinutes, cal[1].DurationMinutes)
	}
	if cal[2].DurationMinutes != 60 {
		t.Errorf("final study day got %d minutes, want 60", cal[2].DurationMinutes)
	}
}

func TestAllocate_ThreeModuleScenario(t *testing.T) {
	modules := []roadmap.Module{
		{ID: "m1", EstimatedHours: 10, Status: roadmap.StatusUnlocked},
		{ID: "m2", Prerequisites: []string{"m1"}, EstimatedHours: 6, Status: roadmap.StatusLocked},
		{ID: "m3", Prerequisites: []string{"m2"}, EstimatedHours: 4, Status: roadmap.StatusLocked},
	}

	cal := Allocate(modules, 2, monday)

	want := []struct {
		day      string
		activity Activity
	}{
		// M1: five study days Mon-Fri, practice Sat, assessment Sun.
		{"Monday", ActivityStudy},
		{"Tuesday", ActivityStudy},
		{"Wednesday", ActivityStudy},
		{"Thursday", ActivityStudy},
		{"Friday", ActivityStudy},
		{"Saturday", ActivityPractice},
		{"Sunday", ActivityAssessment},
		// M2 starts the following Monday: three study days, practice Thu, assessment Fri.
		{"Monday", ActivityStudy},
		{"Tuesday", ActivityStudy},
		{"Wednesday", ActivityStudy},
		{"Thursday", ActivityPractice},
		{"Friday", ActivityAssessment},
		// M3 starts Saturday: two study days, practice Mon, assessment Tue.
		{"Saturday", ActivityStudy},
		{"Sunday", ActivityStudy},
		{"Monday", ActivityPractice},
		{"Tuesday", ActivityAssessment},
	}

	if len(cal) != len(want) {
		t.Fatalf("got %d slots, want %d", len(cal), len(want))
	}
	for i, w := range want {
		if cal[i].Day != w.day || cal[i].Activity != w.activity {
			t.Errorf("slot %d: got %s/%s, want %s/%s", i, cal[i].Day, cal[i].Activity, w.day, w.activity)
		}
	}
}

func TestAllocate_SkipsCompletedModules(t *testing.T) {
	modules := []roadmap.Module{
		{ID: "m1", EstimatedHours: 10, Status: roadmap.StatusCompleted},
		{ID: "m2", Prerequisites: []string{"m1"}, EstimatedHours: 2, Status: roadmap.StatusUnlocked},
	}

	cal := Allocate(modules, 2, monday)

	// Only m2: one study day plus practice and assessment.
	if len(cal) != 3 {
		t.Fatalf("got %d slots, want 3", len(cal))
	}
	if cal[0].Day != "Monday" {
		t.Errorf("m2 should start at the cursor start date, got %s", cal[0].Day)
	}
}

func TestAllocate_FixedStartTime(t *testing.T) {
	modules := []roadmap.Module{
		{ID: "m1", EstimatedHours: 2, Status: roadmap.StatusUnlocked},
	}
	for _, s := range Allocate(modules, 2, monday) {
		if s.StartTime != SlotStartTime {
			t.Errorf("slot start time %q, want %q", s.StartTime, SlotStartTime)
		}
	}
}
