package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var retakeCmd = &cobra.Command{
	Use:   "retake <module-id>",
	Short: "Re-open a failed module for another assessment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := buildServices(cmd)
		if err != nil {
			return err
		}
		defer svcs.Close()

		sched, err := svcs.schedules.Retake(cmd.Context(), ownerID(cmd), args[0])
		if err != nil {
			return err
		}

		m, err := sched.Module(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s is unlocked again. Run `studyplan viva %s` when you're ready.\n", m.Title, m.ID)
		return nil
	},
}
