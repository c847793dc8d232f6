package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/studyplan/internal/schedule"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Create a study schedule for a learning goal",
	RunE: func(cmd *cobra.Command, args []string) error {
		goal, _ := cmd.Flags().GetString("goal")
		hours, _ := cmd.Flags().GetInt("hours")
		skills, _ := cmd.Flags().GetStringSlice("skills")
		planFile, _ := cmd.Flags().GetString("plan-file")
		startStr, _ := cmd.Flags().GetString("start")

		if goal == "" && planFile == "" {
			return errors.New("--goal is required (or provide --plan-file)")
		}

		var start time.Time
		if startStr != "" {
			var err error
			start, err = time.Parse("2006-01-02", startStr)
			if err != nil {
				return fmt.Errorf("invalid --start date %q (want YYYY-MM-DD): %w", startStr, err)
			}
		}

		svcs, err := buildServices(cmd)
		if err != nil {
			return err
		}
		defer svcs.Close()

		sched, err := svcs.schedules.Create(cmd.Context(), schedule.CreateRequest{
			OwnerID:              ownerID(cmd),
			Goal:                 goal,
			KnownSkills:          skills,
			DailyCommitmentHours: hours,
			StartDate:            start,
			PlanFile:             planFile,
		})
		if err != nil {
			if errors.Is(err, schedule.ErrAlreadyExists) {
				return errors.New("a schedule already exists; run `studyplan reset` first to start over")
			}
			return err
		}

		fmt.Printf("Created schedule for %q: %d modules, %d calendar slots.\n\n",
			sched.Goal, len(sched.Modules), len(sched.Calendar))
		printSchedule(sched)
		return nil
	},
}

func init() {
	planCmd.Flags().String("goal", "", "Learning goal, e.g. \"DevOps Engineer\"")
	planCmd.Flags().Int("hours", 2, "Daily study commitment in hours")
	planCmd.Flags().StringSlice("skills", nil, "Skills you already have (matching modules are marked completed)")
	planCmd.Flags().String("plan-file", "", "YAML curriculum file to use instead of the model planner")
	planCmd.Flags().String("start", "", "Start date as YYYY-MM-DD (default today)")
}
