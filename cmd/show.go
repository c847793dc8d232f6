package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/studyplan/internal/schedule"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current schedule and calendar",
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := buildServices(cmd)
		if err != nil {
			return err
		}
		defer svcs.Close()

		sched, err := svcs.schedules.Get(cmd.Context(), ownerID(cmd))
		if err != nil {
			if errors.Is(err, schedule.ErrNotFound) {
				return errors.New("no schedule yet; run `studyplan plan` first")
			}
			return err
		}

		printSchedule(sched)
		return nil
	},
}

func printSchedule(sched *schedule.Schedule) {
	fmt.Printf("Goal: %s (started %s, %dh/day)\n\n",
		sched.Goal, sched.StartDate.Format("2006-01-02"), sched.DailyCommitmentHours)

	fmt.Println("Modules")
	fmt.Println(strings.Repeat("─", 64))
	for _, m := range sched.Modules {
		score := ""
		if m.AssessmentScore != nil {
			score = fmt.Sprintf("  [%d/100]", *m.AssessmentScore)
		}
		fmt.Printf("%s %-12s  %-34s  %2dh%s\n",
			m.Status.Icon(), m.ID, truncate(m.Title, 34), m.EstimatedHours, score)
	}

	if len(sched.Calendar) == 0 {
		return
	}
	fmt.Println()
	fmt.Println("Calendar")
	fmt.Println(strings.Repeat("─", 64))
	fmt.Printf("%-11s  %-7s  %-8s  %s\n", "Day", "Start", "Minutes", "Activity")
	for _, slot := range sched.Calendar {
		fmt.Printf("%-11s  %-7s  %-8d  %s\n",
			slot.Day, slot.StartTime, slot.DurationMinutes, slot.Activity)
	}

	if sched.Finished() {
		fmt.Println("\nAll modules completed. Congratulations!")
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
