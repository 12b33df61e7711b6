package cli

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/hirewire-labs/hirewire-cli/internal/core/domain"
)

var (
	resumeJSON bool

	resumeName    string
	resumeSummary string
	resumeSkills  string

	sectionTitle   string
	sectionContent string
	sectionDate    string

	projectName        string
	projectDescription string
	projectTech        string
)

var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "View and edit your résumé",
}

var resumeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the résumé",
	Args:  cobra.NoArgs,
	RunE:  runResumeShow,
}

var resumeSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set name, summary or skills",
	Args:  cobra.NoArgs,
	RunE:  runResumeSet,
}

var resumeAddExperienceCmd = &cobra.Command{
	Use:   "add-experience",
	Short: "Add an experience entry",
	Args:  cobra.NoArgs,
	RunE:  runResumeAddSection,
}

var resumeAddEducationCmd = &cobra.Command{
	Use:   "add-education",
	Short: "Add an education entry",
	Args:  cobra.NoArgs,
}

var resumeAddProjectCmd = &cobra.Command{
	Use:   "add-project",
	Short: "Add a portfolio project",
	Args:  cobra.NoArgs,
	RunE:  runResumeAddProject,
}

var resumeFormatCmd = &cobra.Command{
	Use:   "format [format]",
	Short: "Set the regional format without rewriting the summary",
	Long: `Set the regional résumé format: US-Resume, EU-CV, UK-CV or AU-Resume.

Use 'hirewire assist reformat' to also rewrite the summary for the format.`,
	Args: cobra.ExactArgs(1),
	RunE: runResumeFormat,
}

func init() {
	// Assigned here to avoid an initialization cycle: runResumeAddSection
	// compares against resumeAddEducationCmd.
	resumeAddEducationCmd.RunE = runResumeAddSection

	resumeShowCmd.Flags().BoolVar(&resumeJSON, "json", false, "output as JSON")

	resumeSetCmd.Flags().StringVar(&resumeName, "name", "", "full name")
	resumeSetCmd.Flags().StringVar(&resumeSummary, "summary", "", "professional summary")
	resumeSetCmd.Flags().StringVar(&resumeSkills, "skills", "", "comma separated skills")

	for _, c := range []*cobra.Command{resumeAddExperienceCmd, resumeAddEducationCmd} {
		c.Flags().StringVar(&sectionTitle, "title", "", "title (required)")
		c.Flags().StringVar(&sectionContent, "content", "", "details")
		c.Flags().StringVar(&sectionDate, "date", "", "date or range, e.g. 2019 - 2023")
	}

	resumeAddProjectCmd.Flags().StringVar(&projectName, "name", "", "project name (required)")
	resumeAddProjectCmd.Flags().StringVar(&projectDescription, "description", "", "description")
	resumeAddProjectCmd.Flags().StringVar(&projectTech, "tech", "", "comma separated technologies")

	resumeCmd.AddCommand(resumeShowCmd, resumeSetCmd, resumeAddExperienceCmd,
		resumeAddEducationCmd, resumeAddProjectCmd, resumeFormatCmd)
	rootCmd.AddCommand(resumeCmd)
}

func runResumeShow(cmd *cobra.Command, _ []string) error {
	tracker, err := requireTracker()
	if err != nil {
		return err
	}

	r := tracker.Resume()
	if resumeJSON {
		return printJSON(cmd, r)
	}

	cmd.Println(r.FullName)
	cmd.Println(strings.Repeat("=", len([]rune(r.FullName))))
	cmd.Printf("Format: %s\n", r.RegionalFormat)
	printBlock(cmd, "Summary", r.Summary)
	printBlock(cmd, "Skills", r.Skills)
	printSections(cmd, "Experience", r.Experience)
	printSections(cmd, "Education", r.Education)
	if len(r.Projects) > 0 {
		cmd.Println("\n[Projects]")
		for _, p := range r.Projects {
			cmd.Printf("  %s", p.Name)
			if len(p.Tech) > 0 {
				cmd.Printf(" (%s)", strings.Join(p.Tech, ", "))
			}
			cmd.Println()
			if p.Description != "" {
				cmd.Printf("    %s\n", p.Description)
			}
		}
	}
	return nil
}

func printSections(cmd *cobra.Command, title string, sections []domain.Section) {
	if len(sections) == 0 {
		return
	}
	cmd.Printf("\n[%s]\n", title)
	for _, s := range sections {
		cmd.Printf("  %s", s.Title)
		if s.Date != "" {
			cmd.Printf(" (%s)", s.Date)
		}
		cmd.Println()
		if s.Content != "" {
			cmd.Printf("    %s\n", s.Content)
		}
	}
}

func runResumeSet(cmd *cobra.Command, _ []string) error {
	tracker, err := requireTracker()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("name") && !flags.Changed("summary") && !flags.Changed("skills") {
		return fmt.Errorf("nothing to set: pass --name, --summary or --skills: %w", domain.ErrInvalidInput)
	}

	err = tracker.UpdateResume(cmd.Context(), func(r domain.ResumeProfile) domain.ResumeProfile {
		if flags.Changed("name") {
			r.FullName = resumeName
		}
		if flags.Changed("summary") {
			r.Summary = resumeSummary
		}
		if flags.Changed("skills") {
			r.Skills = resumeSkills
		}
		return r
	})
	if err != nil {
		return fmt.Errorf("failed to update résumé: %w", err)
	}
	cmd.Println("Résumé updated.")
	return nil
}

func runResumeAddSection(cmd *cobra.Command, _ []string) error {
	tracker, err := requireTracker()
	if err != nil {
		return err
	}
	if strings.TrimSpace(sectionTitle) == "" {
		return domain.MissingField("title")
	}

	section := domain.Section{
		ID:      uuid.NewString(),
		Title:   sectionTitle,
		Content: sectionContent,
		Date:    sectionDate,
	}
	education := cmd == resumeAddEducationCmd

	err = tracker.UpdateResume(cmd.Context(), func(r domain.ResumeProfile) domain.ResumeProfile {
		if education {
			r.Education = append(r.Education, section)
		} else {
			r.Experience = append(r.Experience, section)
		}
		return r
	})
	if err != nil {
		return fmt.Errorf("failed to update résumé: %w", err)
	}
	cmd.Printf("Added %s\n", section.Title)
	return nil
}

func runResumeAddProject(cmd *cobra.Command, _ []string) error {
	tracker, err := requireTracker()
	if err != nil {
		return err
	}
	if strings.TrimSpace(projectName) == "" {
		return domain.MissingField("name")
	}

	project := domain.Project{
		ID:          uuid.NewString(),
		Name:        projectName,
		Description: projectDescription,
		Tech:        splitList(projectTech),
	}
	err = tracker.UpdateResume(cmd.Context(), func(r domain.ResumeProfile) domain.ResumeProfile {
		r.Projects = append(r.Projects, project)
		return r
	})
	if err != nil {
		return fmt.Errorf("failed to update résumé: %w", err)
	}
	cmd.Printf("Added project %s\n", project.Name)
	return nil
}

func runResumeFormat(cmd *cobra.Command, args []string) error {
	tracker, err := requireTracker()
	if err != nil {
		return err
	}

	format, ok := domain.ParseRegionalFormat(args[0])
	if !ok {
		return fmt.Errorf("unknown format %q: %w", args[0], domain.ErrInvalidInput)
	}
	err = tracker.UpdateResume(cmd.Context(), func(r domain.ResumeProfile) domain.ResumeProfile {
		r.RegionalFormat = format
		return r
	})
	if err != nil {
		return fmt.Errorf("failed to update résumé: %w", err)
	}
	cmd.Printf("Format set to %s\n", format)
	return nil
}

func splitList(v string) []string {
	out := []string{}
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
