package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var vivaCmd = &cobra.Command{
	Use:   "viva <module-id>",
	Short: "Take an oral assessment on an unlocked module",
	Long: `Start an oral assessment (viva voce) on a module. The examiner asks
questions one at a time; type your answers and press enter. Type "skip"
to have the question re-asked without being graded. The assessment
concludes after a fixed number of graded answers: passing completes the
module and unlocks the next one, failing schedules a remedial session.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := buildServices(cmd)
		if err != nil {
			return err
		}
		defer svcs.Close()
		ctx := cmd.Context()

		if n, err := svcs.viva.ExpireInactive(ctx); err == nil && n > 0 {
			fmt.Fprintf(os.Stderr, "Cleaned up %d expired session(s).\n", n)
		}

		sess, err := svcs.viva.Start(ctx, ownerID(cmd), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Assessment on %s (session %s)\n\n", sess.ModuleTitle, sess.ID)
		fmt.Printf("Examiner: %s\n\n", sess.Transcript[0].Content)

		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("> ")
			if !scanner.Scan() {
				fmt.Println("\nSession paused. Resume by running the command again before it expires.")
				return scanner.Err()
			}
			answer := strings.TrimSpace(scanner.Text())
			if answer == "" {
				continue
			}

			res, err := svcs.viva.Submit(ctx, sess.ID, answer)
			if err != nil {
				return err
			}

			fmt.Printf("\nExaminer: %s\n", res.Reply)
			if !res.Concluded {
				fmt.Printf("(score %d/100, question %d of %d)\n\n",
					res.Session.CurrentScore, res.Session.QuestionCount+1, svcs.cfg.QuestionTarget)
				continue
			}

			fmt.Printf("\n%s\n", res.Feedback)
			fmt.Printf("Final score: %d/100\n", res.Session.CurrentScore)
			if res.Passed {
				fmt.Printf("Passed. ")
				switch {
				case res.Outcome.Finished:
					fmt.Println("That was the last module; the roadmap is complete!")
				case res.Outcome.NextModuleID != "":
					fmt.Printf("Unlocked %s.\n", res.Outcome.NextModuleID)
				default:
					fmt.Println()
				}
			} else {
				fmt.Println("Not passed. A remedial session was added to your calendar;")
				fmt.Println("run `studyplan retake` after reviewing to try again.")
			}
			return nil
		}
	},
}
