package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/studyplan/internal/schedule"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the current schedule and start over",
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := buildServices(cmd)
		if err != nil {
			return err
		}
		defer svcs.Close()

		owner := ownerID(cmd)
		if err := svcs.schedules.Reset(cmd.Context(), owner); err != nil {
			if errors.Is(err, schedule.ErrNotFound) {
				fmt.Println("Nothing to reset.")
				return nil
			}
			return err
		}

		fmt.Println("Schedule deleted. Run `studyplan plan` to create a new one.")
		return nil
	},
}
