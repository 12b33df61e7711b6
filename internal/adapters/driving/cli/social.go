package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hirewire-labs/hirewire-cli/internal/core/domain"
	"github.com/hirewire-labs/hirewire-cli/internal/core/services"
)

var (
	socialJSON   bool
	socialURL    string
	socialFormat string
)

var socialCmd = &cobra.Command{
	Use:   "social",
	Short: "Manage social profile links",
}

var socialListCmd = &cobra.Command{
	Use:   "list",
	Short: "List social profiles",
	Args:  cobra.NoArgs,
	RunE:  runSocialList,
}

var socialSetCmd = &cobra.Command{
	Use:   "set [platform] [handle]",
	Short: "Add or replace the profile for a platform",
	Long: `Add or replace the profile for a platform.

Platforms: linkedin, github, twitter, portfolio, email.
When --url is omitted a link is built from the handle.`,
	Args: cobra.ExactArgs(2),
	RunE: runSocialSet,
}

var socialExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print profiles for pasting into a bio or email",
	Args:  cobra.NoArgs,
	RunE:  runSocialExport,
}

func init() {
	socialListCmd.Flags().BoolVar(&socialJSON, "json", false, "output as JSON")
	socialSetCmd.Flags().StringVar(&socialURL, "url", "", "profile URL")
	socialExportCmd.Flags().StringVarP(&socialFormat, "format", "f", string(domain.ExportMarkdown),
		"export format (markdown, text)")

	socialCmd.AddCommand(socialListCmd, socialSetCmd, socialExportCmd)
	rootCmd.AddCommand(socialCmd)
}

func runSocialList(cmd *cobra.Command, _ []string) error {
	tracker, err := requireTracker()
	if err != nil {
		return err
	}

	profiles := tracker.SocialProfiles()
	if socialJSON {
		return printJSON(cmd, profiles)
	}
	if len(profiles) == 0 {
		cmd.Println("No social profiles.")
		return nil
	}
	for _, p := range profiles {
		cmd.Printf("%-10s  %-24s  %s\n", p.Platform, p.Handle, p.URL)
	}
	return nil
}

func runSocialSet(cmd *cobra.Command, args []string) error {
	tracker, err := requireTracker()
	if err != nil {
		return err
	}

	platform, ok := domain.ParsePlatform(args[0])
	if !ok {
		return fmt.Errorf("unknown platform %q: %w", args[0], domain.ErrInvalidInput)
	}
	url := socialURL
	if url == "" {
		url = profileURL(platform, args[1])
	}

	profile := domain.SocialProfile{Platform: platform, Handle: args[1], URL: url}
	if err := tracker.UpsertSocialProfile(cmd.Context(), profile); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	cmd.Printf("Saved %s profile: %s\n", platform, url)
	return nil
}

func runSocialExport(cmd *cobra.Command, _ []string) error {
	tracker, err := requireTracker()
	if err != nil {
		return err
	}

	out, err := services.ExportSocialProfiles(tracker.SocialProfiles(), domain.ExportFormat(socialFormat))
	if err != nil {
		return err
	}
	cmd.Println(out)
	return nil
}

func profileURL(platform domain.Platform, handle string) string {
	switch platform {
	case domain.PlatformLinkedIn:
		return "https://linkedin.com/in/" + handle
	case domain.PlatformGitHub:
		return "https://github.com/" + handle
	case domain.PlatformTwitter:
		return "https://twitter.com/" + handle
	case domain.PlatformEmail:
		return "mailto:" + handle
	default:
		return handle
	}
}
