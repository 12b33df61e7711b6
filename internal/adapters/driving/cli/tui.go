package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/hirewire-labs/hirewire-cli/internal/adapters/driving/tui"
	"github.com/hirewire-labs/hirewire-cli/internal/logger"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for HireWire.

The TUI shows your pipeline dashboard, applications, interviews and offers,
résumé, contacts and role discovery in one window. Prompt template edits are
picked up while it runs.

Controls:
  ↑/k, ↓/j - Navigate
  Enter    - Open screen
  Esc      - Back to menu
  /        - Filter (applications, contacts)
  g / m    - Generate guide / mock questions
  q        - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

// buildTUIPorts collects the wired services into TUI ports.
func buildTUIPorts() *tui.Ports {
	ports := tui.NewPorts(trackerService, viewSelector)
	ports.Assistant = assistantService
	ports.Settings = settingsService
	ports.Storage = storageInfo
	return ports
}

// watchPrompts reloads prompt templates on change until ctx is cancelled.
func watchPrompts(ctx context.Context) {
	if promptAdmin == nil {
		return
	}
	go func() {
		if err := promptAdmin.Watch(ctx, nil); err != nil && ctx.Err() == nil {
			logger.Warn("prompt watcher stopped: %v", err)
		}
	}()
}

func runTUI(cmd *cobra.Command, _ []string) error {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	app, err := tui.NewApp(buildTUIPorts())
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	watchPrompts(ctx)

	// Log lines would tear the alternate screen.
	logger.SetOutput(io.Discard)
	defer logger.SetOutput(cmd.ErrOrStderr())

	app.WithContext(ctx)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
