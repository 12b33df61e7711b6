package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hirewire-labs/hirewire-cli/internal/core/domain"
)

var (
	reminderAll  bool
	reminderJSON bool

	reminderJob  string
	reminderType string
	reminderDate string
)

var reminderCmd = &cobra.Command{
	Use:     "reminder",
	Aliases: []string{"reminders"},
	Short:   "Manage follow-up, interview and deadline reminders",
}

var reminderListCmd = &cobra.Command{
	Use:   "list",
	Short: "List open reminders",
	Args:  cobra.NoArgs,
	RunE:  runReminderList,
}

var reminderAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a reminder",
	Args:  cobra.NoArgs,
	RunE:  runReminderAdd,
}

var reminderDoneCmd = &cobra.Command{
	Use:   "done [id]",
	Short: "Mark a reminder as completed",
	Args:  cobra.ExactArgs(1),
	RunE:  runReminderDone,
}

func init() {
	reminderListCmd.Flags().BoolVarP(&reminderAll, "all", "a", false, "include completed reminders")
	reminderListCmd.Flags().BoolVar(&reminderJSON, "json", false, "output as JSON")

	reminderAddCmd.Flags().StringVar(&reminderJob, "job", "", "related job id")
	reminderAddCmd.Flags().StringVar(&reminderType, "type", string(domain.ReminderFollowUp),
		"reminder type (Follow-up, Interview, Deadline)")
	reminderAddCmd.Flags().StringVar(&reminderDate, "date", "", "due date (YYYY-MM-DD)")
	_ = reminderAddCmd.MarkFlagRequired("date")

	reminderCmd.AddCommand(reminderListCmd, reminderAddCmd, reminderDoneCmd)
	rootCmd.AddCommand(reminderCmd)
}

func runReminderList(cmd *cobra.Command, _ []string) error {
	tracker, err := requireTracker()
	if err != nil {
		return err
	}

	reminders := make([]domain.Reminder, 0)
	for _, r := range tracker.Reminders() {
		if reminderAll || !r.Completed {
			reminders = append(reminders, r)
		}
	}
	if reminderJSON {
		return printJSON(cmd, reminders)
	}

	if len(reminders) == 0 {
		cmd.Println("No reminders.")
		return nil
	}

	for _, r := range reminders {
		mark := "[ ]"
		if r.Completed {
			mark = "[x]"
		}
		subject := "-"
		if r.JobID != "" {
			if job, ok := tracker.Job(r.JobID); ok {
				subject = fmt.Sprintf("%s at %s", job.Role, job.Company)
			} else {
				subject = r.JobID + " (deleted)"
			}
		}
		cmd.Printf("%s %s  %-10s  %-9s  %s\n", mark, r.ID, r.Date, r.Type, subject)
	}
	return nil
}

func runReminderAdd(cmd *cobra.Command, _ []string) error {
	tracker, err := requireTracker()
	if err != nil {
		return err
	}

	kind, ok := domain.ParseReminderType(reminderType)
	if !ok {
		return fmt.Errorf("unknown reminder type %q: %w", reminderType, domain.ErrInvalidInput)
	}
	if _, ok := domain.ParseDate(reminderDate); !ok {
		return fmt.Errorf("invalid date %q: %w", reminderDate, domain.ErrInvalidInput)
	}

	added, err := tracker.AddReminder(cmd.Context(), domain.Reminder{
		JobID: reminderJob,
		Type:  kind,
		Date:  reminderDate,
	})
	if err != nil {
		return fmt.Errorf("failed to add reminder: %w", err)
	}

	cmd.Printf("Added %s reminder for %s (%s)\n", added.Type, added.Date, added.ID)
	return nil
}

func runReminderDone(cmd *cobra.Command, args []string) error {
	tracker, err := requireTracker()
	if err != nil {
		return err
	}

	found, err := tracker.CompleteReminder(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to complete reminder: %w", err)
	}
	if !found {
		return fmt.Errorf("reminder %s: %w", args[0], domain.ErrNotFound)
	}
	cmd.Printf("Completed %s\n", args[0])
	return nil
}
