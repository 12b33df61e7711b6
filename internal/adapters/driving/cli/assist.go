package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hirewire-labs/hirewire-cli/internal/core/domain"
	"github.com/hirewire-labs/hirewire-cli/internal/core/services"
)

var (
	assistRole            string
	assistCompany         string
	assistDescription     string
	assistDescriptionFile string
	assistPrompt          string
	assistBase            string
	assistOut             string
)

var assistCmd = &cobra.Command{
	Use:   "assist",
	Short: "AI career assistant",
	Long: `Use the configured AI provider to draft cover letters, analyse skill
gaps, prepare for interviews and improve your résumé.

Configure a provider with 'hirewire settings ai'. Without one, each command
prints its fallback message.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initServices(cmd, args); err != nil {
			return err
		}
		if assistantService != nil && !assistantService.Available() {
			cmd.PrintErrln("Note: no AI provider configured. Run 'hirewire settings ai' to set one up.")
		}
		return nil
	},
}

var assistCoverLetterCmd = &cobra.Command{
	Use:   "cover-letter [job-id]",
	Short: "Draft a cover letter",
	Long: `Draft a cover letter. With a job id the letter is saved on the job;
otherwise pass --role and --company for a one-off draft.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAssistCoverLetter,
}

var assistSkillGapCmd = &cobra.Command{
	Use:   "skill-gap [job-id]",
	Short: "Compare a job description with your skills",
	Long: `Compare a job description with your résumé skills. With a job id the
analysis is saved on the job; otherwise pass --description or
--description-file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAssistSkillGap,
}

var assistMockCmd = &cobra.Command{
	Use:   "mock [job-id]",
	Short: "Generate mock interview questions",
	Args:  cobra.ExactArgs(1),
	RunE:  runAssistMock,
}

var assistGuideCmd = &cobra.Command{
	Use:   "guide [job-id]",
	Short: "Prepare an interview guide",
	Long: `Prepare a company-specific interview guide. With a job id the guide is
saved on the job; otherwise pass --role and --company.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAssistGuide,
}

var assistSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Write a new résumé summary",
	Args:  cobra.NoArgs,
	RunE:  runAssistSummary,
}

var assistReformatCmd = &cobra.Command{
	Use:   "reformat [format]",
	Short: "Switch regional format and rewrite the summary",
	Args:  cobra.ExactArgs(1),
	RunE:  runAssistReformat,
}

var assistDiscoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Suggest related roles",
	Args:  cobra.NoArgs,
	RunE:  runAssistDiscover,
}

var assistChatCmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "Talk to the career coach",
	Long: `Ask the career coach a question. Without a message an interactive
session starts; an empty line or 'exit' ends it.`,
	RunE: runAssistChat,
}

var assistAvatarCmd = &cobra.Command{
	Use:   "avatar",
	Short: "Generate or restyle your résumé avatar",
	Long: `Generate a professional headshot (Gemini only). Pass --base to restyle
an existing image instead.`,
	Args: cobra.NoArgs,
	RunE: runAssistAvatar,
}

func init() {
	for _, c := range []*cobra.Command{assistCoverLetterCmd, assistGuideCmd} {
		c.Flags().StringVar(&assistRole, "role", "", "role title")
		c.Flags().StringVar(&assistCompany, "company", "", "company name")
	}
	assistSkillGapCmd.Flags().StringVar(&assistDescription, "description", "", "job description text")
	assistSkillGapCmd.Flags().StringVar(&assistDescriptionFile, "description-file", "", "read the description from a file")
	assistAvatarCmd.Flags().StringVar(&assistPrompt, "prompt", "", "describe the avatar (default: your skills)")
	assistAvatarCmd.Flags().StringVar(&assistBase, "base", "", "image file to restyle")
	assistAvatarCmd.Flags().StringVarP(&assistOut, "out", "o", "", "also write the image to this file")

	assistCmd.AddCommand(assistCoverLetterCmd, assistSkillGapCmd, assistMockCmd, assistGuideCmd,
		assistSummaryCmd, assistReformatCmd, assistDiscoverCmd, assistChatCmd, assistAvatarCmd)
	rootCmd.AddCommand(assistCmd)
}

func runAssistCoverLetter(cmd *cobra.Command, args []string) error {
	assistant, err := requireAssistant()
	if err != nil {
		return err
	}

	var text string
	if len(args) == 1 {
		text, err = assistant.WriteCoverLetter(cmd.Context(), args[0])
	} else {
		text, err = assistant.DraftCoverLetter(cmd.Context(), assistRole, assistCompany)
	}
	if err != nil {
		return err
	}
	cmd.Println(text)
	return nil
}

func runAssistSkillGap(cmd *cobra.Command, args []string) error {
	assistant, err := requireAssistant()
	if err != nil {
		return err
	}

	var text string
	if len(args) == 1 {
		text, err = assistant.WriteSkillGap(cmd.Context(), args[0])
	} else {
		description := assistDescription
		if assistDescriptionFile != "" {
			if description, err = readDescriptionFile(cmd.Context(), assistDescriptionFile); err != nil {
				return err
			}
		}
		text, err = assistant.AnalyzeSkillGap(cmd.Context(), description)
	}
	if err != nil {
		return err
	}
	cmd.Println(text)
	return nil
}

func runAssistMock(cmd *cobra.Command, args []string) error {
	assistant, err := requireAssistant()
	if err != nil {
		return err
	}

	text, err := assistant.MockQuestions(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	cmd.Println(text)
	return nil
}

func runAssistGuide(cmd *cobra.Command, args []string) error {
	assistant, err := requireAssistant()
	if err != nil {
		return err
	}

	var text string
	if len(args) == 1 {
		text, err = assistant.WriteInterviewGuide(cmd.Context(), args[0])
	} else {
		text, err = assistant.InterviewGuide(cmd.Context(), assistRole, assistCompany)
	}
	if err != nil {
		return err
	}
	cmd.Println(text)
	return nil
}

func runAssistSummary(cmd *cobra.Command, _ []string) error {
	assistant, err := requireAssistant()
	if err != nil {
		return err
	}

	text, err := assistant.GenerateResumeSummary(cmd.Context())
	if err != nil {
		return err
	}
	cmd.Println(text)
	return nil
}

func runAssistReformat(cmd *cobra.Command, args []string) error {
	assistant, err := requireAssistant()
	if err != nil {
		return err
	}

	format, ok := domain.ParseRegionalFormat(args[0])
	if !ok {
		return fmt.Errorf("unknown format %q: %w", args[0], domain.ErrInvalidInput)
	}
	text, err := assistant.ReformatResume(cmd.Context(), format)
	if err != nil {
		return err
	}
	cmd.Println(text)
	return nil
}

func runAssistDiscover(cmd *cobra.Command, _ []string) error {
	assistant, err := requireAssistant()
	if err != nil {
		return err
	}

	text, err := assistant.DiscoverRoles(cmd.Context())
	if err != nil {
		return err
	}
	cmd.Println(text)
	return nil
}

func runAssistChat(cmd *cobra.Command, args []string) error {
	assistant, err := requireAssistant()
	if err != nil {
		return err
	}

	if len(args) > 0 {
		reply, err := assistant.Chat(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		cmd.Println(reply)
		return nil
	}

	reader := bufio.NewReader(cmd.InOrStdin())
	for {
		cmd.Print("you> ")
		line := readLine(reader)
		if line == "" || strings.EqualFold(line, "exit") {
			return nil
		}
		reply, err := assistant.Chat(cmd.Context(), line)
		if err != nil {
			return err
		}
		cmd.Printf("coach> %s\n\n", reply)
	}
}

func runAssistAvatar(cmd *cobra.Command, _ []string) error {
	assistant, err := requireAssistant()
	if err != nil {
		return err
	}

	var base []byte
	if assistBase != "" {
		if base, err = os.ReadFile(assistBase); err != nil {
			return fmt.Errorf("failed to read base image: %w", err)
		}
	}

	uri, err := assistant.GenerateAvatar(cmd.Context(), assistPrompt, base)
	if err != nil {
		return err
	}
	if uri == "" {
		cmd.Println("Avatar generation failed; your current avatar was kept.")
		return nil
	}

	if assistOut != "" {
		img, err := services.DecodeImageData(uri)
		if err != nil {
			return err
		}
		if err := os.WriteFile(assistOut, img, 0o600); err != nil {
			return fmt.Errorf("failed to write avatar: %w", err)
		}
		cmd.Printf("Avatar saved to your résumé and %s\n", assistOut)
		return nil
	}
	cmd.Println("Avatar saved to your résumé.")
	return nil
}
