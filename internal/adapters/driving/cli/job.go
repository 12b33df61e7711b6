package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hirewire-labs/hirewire-cli/internal/core/domain"
	"github.com/hirewire-labs/hirewire-cli/internal/core/services"
)

var (
	jobStatusFilter string
	jobSearch       string
	jobJSON         bool

	jobCompany         string
	jobRole            string
	jobStatus          string
	jobSalary          string
	jobLocation        string
	jobDate            string
	jobDescription     string
	jobDescriptionFile string
	jobOffer           bool

	jobInterviewDate string
	jobReason        string
	jobOfferSalary   string
)

var jobCmd = &cobra.Command{
	Use:     "job",
	Aliases: []string{"jobs"},
	Short:   "Manage job applications",
	Long: `Track the roles you have applied to and move them through the pipeline:
Applied -> Interview -> Offer -> Accepted, or Rejected at any point.`,
}

var jobListCmd = &cobra.Command{
	Use:   "list",
	Short: "List job applications",
	Args:  cobra.NoArgs,
	RunE:  runJobList,
}

var jobAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a job application",
	Long: `Add a job application. Company and role are required.

The description can be typed with --description or read from a PDF, DOCX,
Markdown or text file with --description-file.`,
	Args: cobra.NoArgs,
	RunE: runJobAdd,
}

var jobShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a job application",
	Args:  cobra.ExactArgs(1),
	RunE:  runJobShow,
}

var jobUpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update fields of a job application",
	Long:  `Update only the fields passed as flags. Unknown ids are ignored.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runJobUpdate,
}

var jobDeleteCmd = &cobra.Command{
	Use:     "delete [id]",
	Aliases: []string{"rm"},
	Short:   "Delete a job application",
	Args:    cobra.ExactArgs(1),
	RunE:    runJobDelete,
}

var jobInterviewCmd = &cobra.Command{
	Use:   "interview [id]",
	Short: "Log an interview and move the job to Interview",
	Args:  cobra.ExactArgs(1),
	RunE:  runJobInterview,
}

var jobRejectCmd = &cobra.Command{
	Use:   "reject [id]",
	Short: "Mark a job as Rejected",
	Args:  cobra.ExactArgs(1),
	RunE:  runJobReject,
}

var jobOfferCmd = &cobra.Command{
	Use:   "offer [id]",
	Short: "Record an offer and move the job to Offer",
	Args:  cobra.ExactArgs(1),
	RunE:  runJobOffer,
}

func init() {
	jobListCmd.Flags().StringVarP(&jobStatusFilter, "status", "s", "", "filter by status (Applied, Interview, Offer, Rejected, Accepted)")
	jobListCmd.Flags().StringVarP(&jobSearch, "search", "q", "", "filter by company or role")
	jobListCmd.Flags().BoolVar(&jobJSON, "json", false, "output as JSON")

	for _, c := range []*cobra.Command{jobAddCmd, jobUpdateCmd} {
		c.Flags().StringVar(&jobCompany, "company", "", "company name")
		c.Flags().StringVar(&jobRole, "role", "", "role title")
		c.Flags().StringVar(&jobStatus, "status", "", "application status")
		c.Flags().StringVar(&jobSalary, "salary", "", "salary or range")
		c.Flags().StringVar(&jobLocation, "location", "", "location")
		c.Flags().StringVar(&jobDate, "date", "", "date applied (YYYY-MM-DD, default today)")
		c.Flags().StringVar(&jobDescription, "description", "", "job description text")
		c.Flags().StringVar(&jobDescriptionFile, "description-file", "", "read the description from a file")
	}
	jobAddCmd.Flags().BoolVar(&jobOffer, "offer", false, "record as an inbound offer rather than an application")

	jobShowCmd.Flags().BoolVar(&jobJSON, "json", false, "output as JSON")
	jobInterviewCmd.Flags().StringVar(&jobInterviewDate, "date", "", "interview date (YYYY-MM-DD)")
	_ = jobInterviewCmd.MarkFlagRequired("date")
	jobRejectCmd.Flags().StringVar(&jobReason, "reason", "", "rejection reason")
	jobOfferCmd.Flags().StringVar(&jobOfferSalary, "salary", "", "offered salary")

	jobCmd.AddCommand(jobListCmd, jobAddCmd, jobShowCmd, jobUpdateCmd, jobDeleteCmd,
		jobInterviewCmd, jobRejectCmd, jobOfferCmd)
	rootCmd.AddCommand(jobCmd)
}

func runJobList(cmd *cobra.Command, _ []string) error {
	tracker, err := requireTracker()
	if err != nil {
		return err
	}

	status := services.StatusAll
	if jobStatusFilter != "" && !strings.EqualFold(jobStatusFilter, string(services.StatusAll)) {
		parsed, ok := domain.ParseJobStatus(jobStatusFilter)
		if !ok {
			return fmt.Errorf("unknown status %q: %w", jobStatusFilter, domain.ErrInvalidInput)
		}
		status = parsed
	}

	jobs := services.FilterJobs(tracker.Jobs(), jobSearch, status)
	if jobJSON {
		return printJSON(cmd, jobs)
	}

	if len(jobs) == 0 {
		cmd.Println("No applications found.")
		return nil
	}

	cmd.Printf("%-36s  %-20s  %-24s  %-10s  %s\n", "ID", "COMPANY", "ROLE", "STATUS", "APPLIED")
	for _, j := range jobs {
		cmd.Printf("%-36s  %-20s  %-24s  %-10s  %s\n",
			j.ID, truncate(j.Company, 20), truncate(j.Role, 24), j.Status, j.DateApplied)
	}
	cmd.Printf("\n%d application(s)\n", len(jobs))
	return nil
}

func runJobAdd(cmd *cobra.Command, _ []string) error {
	tracker, err := requireTracker()
	if err != nil {
		return err
	}

	if strings.TrimSpace(jobCompany) == "" {
		return domain.MissingField("company")
	}
	if strings.TrimSpace(jobRole) == "" {
		return domain.MissingField("role")
	}

	job := domain.JobApplication{
		Company:     jobCompany,
		Role:        jobRole,
		Salary:      jobSalary,
		Location:    jobLocation,
		DateApplied: jobDate,
		Description: jobDescription,
	}
	if jobOffer {
		job.Origin = domain.OriginOffer
		job.Status = domain.StatusOffer
	}
	if jobStatus != "" {
		parsed, ok := domain.ParseJobStatus(jobStatus)
		if !ok {
			return fmt.Errorf("unknown status %q: %w", jobStatus, domain.ErrInvalidInput)
		}
		job.Status = parsed
	}
	if jobDate != "" {
		if _, ok := domain.ParseDate(jobDate); !ok {
			return fmt.Errorf("invalid date %q: %w", jobDate, domain.ErrInvalidInput)
		}
	}
	if jobDescriptionFile != "" {
		text, err := readDescriptionFile(cmd.Context(), jobDescriptionFile)
		if err != nil {
			return err
		}
		job.Description = text
	}

	added, err := tracker.AddJob(cmd.Context(), job)
	if err != nil {
		return fmt.Errorf("failed to add job: %w", err)
	}

	cmd.Printf("Added %s at %s (%s)\n", added.Role, added.Company, added.ID)
	return nil
}

func runJobShow(cmd *cobra.Command, args []string) error {
	tracker, err := requireTracker()
	if err != nil {
		return err
	}

	job, ok := tracker.Job(args[0])
	if !ok {
		return fmt.Errorf("job %s: %w", args[0], domain.ErrNotFound)
	}
	if jobJSON {
		return printJSON(cmd, job)
	}

	cmd.Printf("%s at %s\n", job.Role, job.Company)
	cmd.Println(strings.Repeat("=", len(job.Role)+len(job.Company)+4))
	cmd.Printf("  ID:       %s\n", job.ID)
	cmd.Printf("  Status:   %s\n", job.Status)
	cmd.Printf("  Origin:   %s\n", job.Origin)
	cmd.Printf("  Applied:  %s\n", job.DateApplied)
	if job.Salary != "" {
		cmd.Printf("  Salary:   %s\n", job.Salary)
	}
	if job.Location != "" {
		cmd.Printf("  Location: %s\n", job.Location)
	}
	if job.InterviewDate != "" {
		cmd.Printf("  Interview: %s\n", job.InterviewDate)
	}
	if job.RejectionReason != "" {
		cmd.Printf("  Rejected: %s\n", job.RejectionReason)
	}
	printBlock(cmd, "Description", job.Description)
	printBlock(cmd, "Cover Letter", job.CoverLetter)
	printBlock(cmd, "Skill Gap Analysis", job.SkillGapAnalysis)
	printBlock(cmd, "Interview Guide", job.InterviewGuide)
	return nil
}

func runJobUpdate(cmd *cobra.Command, args []string) error {
	tracker, err := requireTracker()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	var status domain.JobStatus
	if flags.Changed("status") {
		parsed, ok := domain.ParseJobStatus(jobStatus)
		if !ok {
			return fmt.Errorf("unknown status %q: %w", jobStatus, domain.ErrInvalidInput)
		}
		status = parsed
	}
	description := jobDescription
	if flags.Changed("description-file") {
		text, err := readDescriptionFile(cmd.Context(), jobDescriptionFile)
		if err != nil {
			return err
		}
		description = text
	}

	found, err := tracker.UpdateJobFunc(cmd.Context(), args[0], func(j *domain.JobApplication) {
		if flags.Changed("company") {
			j.Company = jobCompany
		}
		if flags.Changed("role") {
			j.Role = jobRole
		}
		if status != "" {
			j.Status = status
		}
		if flags.Changed("salary") {
			j.Salary = jobSalary
		}
		if flags.Changed("location") {
			j.Location = jobLocation
		}
		if flags.Changed("date") {
			j.DateApplied = jobDate
		}
		if flags.Changed("description") || flags.Changed("description-file") {
			j.Description = description
		}
	})
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}
	if !found {
		cmd.Printf("No job with id %s; nothing changed.\n", args[0])
		return nil
	}

	cmd.Printf("Updated %s\n", args[0])
	return nil
}

func runJobDelete(cmd *cobra.Command, args []string) error {
	tracker, err := requireTracker()
	if err != nil {
		return err
	}

	if err := tracker.DeleteJob(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	cmd.Printf("Deleted %s\n", args[0])
	return nil
}

func runJobInterview(cmd *cobra.Command, args []string) error {
	return runQuickAction(cmd, args[0], "Interview logged", func(ctx context.Context, id string) (bool, error) {
		if _, ok := domain.ParseDate(jobInterviewDate); !ok {
			return false, fmt.Errorf("invalid date %q: %w", jobInterviewDate, domain.ErrInvalidInput)
		}
		return trackerService.LogInterview(ctx, id, jobInterviewDate)
	})
}

func runJobReject(cmd *cobra.Command, args []string) error {
	return runQuickAction(cmd, args[0], "Rejection recorded", func(ctx context.Context, id string) (bool, error) {
		return trackerService.RecordRejection(ctx, id, jobReason)
	})
}

func runJobOffer(cmd *cobra.Command, args []string) error {
	return runQuickAction(cmd, args[0], "Offer recorded", func(ctx context.Context, id string) (bool, error) {
		return trackerService.RecordOffer(ctx, id, jobOfferSalary)
	})
}

func runQuickAction(
	cmd *cobra.Command,
	id, done string,
	action func(ctx context.Context, id string) (bool, error),
) error {
	if _, err := requireTracker(); err != nil {
		return err
	}

	found, err := action(cmd.Context(), id)
	if err != nil {
		return err
	}
	if !found {
		cmd.Printf("No job with id %s; nothing changed.\n", id)
		return nil
	}

	job, _ := trackerService.Job(id)
	cmd.Printf("%s: %s at %s is now %s\n", done, job.Role, job.Company, job.Status)
	return nil
}

func readDescriptionFile(ctx context.Context, path string) (string, error) {
	if descExtractor == nil {
		return "", fmt.Errorf("description extractor not configured")
	}
	text, err := descExtractor.Extract(ctx, path)
	if err != nil {
		return "", fmt.Errorf("failed to read description: %w", err)
	}
	return text, nil
}

func printBlock(cmd *cobra.Command, title, body string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	cmd.Printf("\n[%s]\n%s\n", title, strings.TrimSpace(body))
}
