package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

var (
	statsWeekly bool
	statsJSON   bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show pipeline metrics",
	Long: `Show totals, the interview conversion rate and the most recent applications.

Use --weekly for the five-week application histogram.`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().BoolVarP(&statsWeekly, "weekly", "w", false, "show weekly activity")
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	tracker, err := requireTracker()
	if err != nil {
		return err
	}

	if statsWeekly {
		buckets := tracker.WeeklyActivity()
		if statsJSON {
			return printJSON(cmd, buckets)
		}
		cmd.Println("Weekly Activity")
		cmd.Println("===============")
		for _, b := range buckets {
			cmd.Printf("  %-7s %-30s %d\n", b.Name, strings.Repeat("#", min(b.Apps, 30)), b.Apps)
		}
		return nil
	}

	m := tracker.Metrics()
	if statsJSON {
		return printJSON(cmd, m)
	}

	cmd.Println("Pipeline")
	cmd.Println("========")
	cmd.Printf("  Applications:    %d\n", m.TotalApplications)
	cmd.Printf("  Interviews:      %d\n", m.TotalInterviews)
	cmd.Printf("  Offers:          %d\n", m.TotalOffers)
	cmd.Printf("  Conversion Rate: %.1f%%\n", m.ConversionRate)

	if len(m.RecentStatus) > 0 {
		cmd.Println()
		cmd.Println("Recent")
		for _, j := range m.RecentStatus {
			cmd.Printf("  %-10s  %-24s  %-20s  %s\n", j.Status, truncate(j.Role, 24), truncate(j.Company, 20), j.DateApplied)
		}
	}
	return nil
}
