// Package cli provides the hirewire command line interface built on cobra.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hirewire-labs/hirewire-cli/internal/core/ports/driven"
	"github.com/hirewire-labs/hirewire-cli/internal/core/ports/driving"
	"github.com/hirewire-labs/hirewire-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// annotationNoServices marks commands that run without the core services.
const annotationNoServices = "hirewire/no-services"

// Global flags.
var (
	verbose   bool
	configDir string
	ephemeral bool
)

// Services wired into the commands.
var (
	trackerService   driving.TrackerService
	assistantService driving.AssistantService
	settingsService  driving.SettingsService
	viewSelector     driving.ViewSelector
	descExtractor    driven.DescriptionExtractor
	promptAdmin      PromptAdmin
	slotInspector    driven.SlotInspector
	storageInfo      string
)

// PromptAdmin manages the user's prompt template files.
type PromptAdmin interface {
	driven.PromptStore
	Dir() string
	Names() []string
	Path(name string) string
	Restore(name string) error
	Watch(ctx context.Context, ready chan<- struct{}) error
}

// Services bundles everything the commands need.
type Services struct {
	Tracker   driving.TrackerService
	Assistant driving.AssistantService
	Settings  driving.SettingsService
	Views     driving.ViewSelector
	Extractor driven.DescriptionExtractor
	Prompts   PromptAdmin
	Slots     driven.SlotInspector

	// Storage describes the active slot store for display.
	Storage string
}

// Options are the global flag values handed to the bootstrapper.
type Options struct {
	ConfigDir string
	Ephemeral bool
}

// Bootstrapper builds the services once flags are parsed.
// The returned cleanup func is called after the command finishes.
type Bootstrapper func(ctx context.Context, opts Options) (*Services, func() error, error)

var (
	bootstrapper  Bootstrapper
	servicesReady bool
	cleanup       func() error
)

var rootCmd = &cobra.Command{
	Use:   "hirewire",
	Short: "Job search command centre",
	Long: `HireWire tracks job applications, contacts, reminders and your résumé,
and uses an AI provider to draft cover letters, analyse skill gaps and
prepare you for interviews.

Run 'hirewire tui' for the interactive dashboard.`,
	SilenceUsage:       true,
	PersistentPreRunE:  initServices,
	PersistentPostRunE: closeServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.hirewire)")
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "keep data in memory only")
}

// SetBootstrapper registers the function that builds services.
func SetBootstrapper(b Bootstrapper) {
	bootstrapper = b
}

// SetServices injects services directly, bypassing the bootstrapper.
func SetServices(s *Services) {
	if s == nil {
		trackerService, assistantService, settingsService = nil, nil, nil
		viewSelector, descExtractor, promptAdmin = nil, nil, nil
		slotInspector = nil
		storageInfo = ""
		servicesReady = false
		return
	}
	trackerService = s.Tracker
	assistantService = s.Assistant
	settingsService = s.Settings
	viewSelector = s.Views
	descExtractor = s.Extractor
	promptAdmin = s.Prompts
	slotInspector = s.Slots
	storageInfo = s.Storage
	servicesReady = true
}

// SetVersion sets the version reported by 'hirewire version'.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	defer func() {
		if cleanup != nil {
			_ = cleanup()
			cleanup = nil
		}
		logger.Sync()
	}()
	return rootCmd.Execute()
}

func initServices(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	logger.SetOutput(cmd.ErrOrStderr())

	if cmd.Annotations[annotationNoServices] == "true" || servicesReady || bootstrapper == nil {
		return nil
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	svc, done, err := bootstrapper(ctx, Options{ConfigDir: configDir, Ephemeral: ephemeral})
	if err != nil {
		return fmt.Errorf("starting hirewire: %w", err)
	}
	SetServices(svc)
	cleanup = done
	return nil
}

func closeServices(_ *cobra.Command, _ []string) error {
	if cleanup == nil {
		return nil
	}
	err := cleanup()
	cleanup = nil
	return err
}

// requireTracker returns the tracker or a configuration error.
func requireTracker() (driving.TrackerService, error) {
	if trackerService == nil {
		return nil, errors.New("tracker service not configured")
	}
	return trackerService, nil
}

// requireAssistant returns the assistant or a configuration error.
func requireAssistant() (driving.AssistantService, error) {
	if assistantService == nil {
		return nil, errors.New("assistant service not configured")
	}
	return assistantService, nil
}

// printJSON writes v as indented JSON to stdout so it can be piped.
func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

// truncate shortens s to n runes with an ellipsis.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}
