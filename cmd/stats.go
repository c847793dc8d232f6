package cmd

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/studyplan/internal/roadmap"
	"github.com/abhisek/studyplan/internal/schedule"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show progress and model usage statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := buildServices(cmd)
		if err != nil {
			return err
		}
		defer svcs.Close()
		ctx := cmd.Context()

		sched, err := svcs.schedules.Get(ctx, ownerID(cmd))
		switch {
		case err == nil:
			printProgress(sched)
		case errors.Is(err, schedule.ErrNotFound):
			fmt.Println("No schedule yet.")
		default:
			return err
		}

		usage, err := svcs.store.EventRepo().LLMUsage(ctx)
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}
		if usage.TotalRequests == 0 {
			fmt.Println("\nNo model usage recorded yet.")
			return nil
		}

		purposes := make([]string, 0, len(usage.ByPurpose))
		for p := range usage.ByPurpose {
			purposes = append(purposes, p)
		}
		sort.Strings(purposes)

		fmt.Println("\nModel Usage")
		fmt.Println(strings.Repeat("─", 56))
		fmt.Printf("%-16s  %6s\n", "Purpose", "Calls")
		for _, p := range purposes {
			fmt.Printf("%-16s  %6d\n", p, usage.ByPurpose[p])
		}
		fmt.Println(strings.Repeat("─", 56))
		fmt.Printf("Requests: %d (%d failed)\n", usage.TotalRequests, usage.FailedCount)
		fmt.Printf("Tokens:   %d in / %d out\n", usage.InputTokens, usage.OutputTokens)
		return nil
	},
}

func printProgress(sched *schedule.Schedule) {
	var completed, failed, scoreSum, scored int
	for _, m := range sched.Modules {
		switch m.Status {
		case roadmap.StatusCompleted:
			completed++
		case roadmap.StatusFailed:
			failed++
		}
		if m.AssessmentScore != nil {
			scoreSum += *m.AssessmentScore
			scored++
		}
	}

	fmt.Printf("Goal: %s\n", sched.Goal)
	fmt.Printf("Progress: %d/%d modules completed", completed, len(sched.Modules))
	if failed > 0 {
		fmt.Printf(" (%d awaiting retake)", failed)
	}
	fmt.Println()
	if scored > 0 {
		fmt.Printf("Average assessment score: %d/100\n", scoreSum/scored)
	}
}
