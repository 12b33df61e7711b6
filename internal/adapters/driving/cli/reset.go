package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var resetConfirm bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Purge all records",
	Long: `Delete every application, contact and reminder and restore the
default résumé and social profiles. This cannot be undone.`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&resetConfirm, "yes", false, "confirm the purge")
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, _ []string) error {
	tracker, err := requireTracker()
	if err != nil {
		return err
	}
	if !resetConfirm {
		return errors.New("refusing to purge without --yes")
	}

	if err := tracker.Reset(cmd.Context()); err != nil {
		return fmt.Errorf("failed to reset: %w", err)
	}
	if viewSelector != nil {
		viewSelector.Reset()
	}
	cmd.Println("All records purged.")
	return nil
}
