package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hirewire-labs/hirewire-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the AI provider, storage backend and prompt templates.

Use subcommands to configure specific settings or run the interactive wizard.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to configure the AI provider and storage backend.`,
	RunE:  runSettingsWizard,
}

var settingsAICmd = &cobra.Command{
	Use:   "ai",
	Short: "Configure AI provider",
	Long: `Configure the provider used for cover letters, skill gap analysis,
interview preparation and the career coach.

Available providers:
  gemini - Google Gemini (text and avatar images)
  openai - OpenAI or any compatible server (text only)
  ollama - local Ollama instance (text only)`,
	RunE: runSettingsAI,
}

var settingsStorageCmd = &cobra.Command{
	Use:   "storage",
	Short: "Configure storage backend",
	Long: `Configure where your applications, contacts and résumé are kept.

Available backends:
  sqlite - local database file (default)
  redis  - Redis server
  memory - nothing is saved between runs`,
	RunE: runSettingsStorage,
}

var settingsPromptsCmd = &cobra.Command{
	Use:   "prompts",
	Short: "List prompt templates",
	Long: `List the prompt templates used by the assistant.

Templates are plain text/template files you can edit. A missing or empty
file falls back to the built-in default.`,
	RunE: runSettingsPromptsList,
}

var settingsPromptsRestoreCmd = &cobra.Command{
	Use:   "restore [name]",
	Short: "Restore a prompt template to its default",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsPromptsRestore,
}

func init() {
	settingsPromptsCmd.AddCommand(settingsPromptsRestoreCmd)
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	settingsCmd.AddCommand(settingsAICmd)
	settingsCmd.AddCommand(settingsStorageCmd)
	settingsCmd.AddCommand(settingsPromptsCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	// AI settings
	cmd.Println("[AI]")
	cmd.Printf("  Provider: %s\n", settings.AI.Provider.Description())
	cmd.Printf("  Model: %s\n", settings.AI.Model)
	if settings.AI.Provider.SupportsImages() {
		cmd.Printf("  Image Model: %s\n", settings.AI.ImageModel)
	}
	if settings.AI.BaseURL != "" {
		cmd.Printf("  Base URL: %s\n", settings.AI.BaseURL)
	}
	if settings.AI.Provider.RequiresAPIKey() {
		if settings.AI.APIKey != "" {
			cmd.Printf("  API Key: %s\n", maskAPIKey(settings.AI.APIKey))
		} else {
			cmd.Printf("  API Key: (not set)\n")
		}
	}
	if settings.AI.RatePerMinute > 0 {
		cmd.Printf("  Rate Limit: %d requests/minute\n", settings.AI.RatePerMinute)
	} else {
		cmd.Printf("  Rate Limit: off\n")
	}
	status := "configured"
	if !settings.AI.IsConfigured() {
		status = "not configured"
	}
	cmd.Printf("  Status: %s\n", status)
	cmd.Println()

	// Storage settings
	cmd.Println("[Storage]")
	cmd.Printf("  Backend: %s\n", settings.Storage.Backend.Description())
	switch settings.Storage.Backend {
	case domain.StorageSQLite:
		dir := settings.Storage.DataDir
		if dir == "" {
			dir = "~/.hirewire/data"
		}
		cmd.Printf("  Data Dir: %s\n", dir)
	case domain.StorageRedis:
		cmd.Printf("  Address: %s\n", settings.Storage.RedisAddr)
		cmd.Printf("  Database: %d\n", settings.Storage.RedisDB)
	case domain.StorageMemory:
	}
	if storageInfo != "" {
		cmd.Printf("  Active: %s\n", storageInfo)
	}
	cmd.Println()

	if promptAdmin != nil {
		cmd.Println("[Prompts]")
		cmd.Printf("  Directory: %s\n", promptAdmin.Dir())
		cmd.Println()
	}

	// Validation
	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
		cmd.Println("Run 'hirewire settings wizard' to fix configuration issues.")
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	cmd.Println("HireWire Settings Wizard")
	cmd.Println("========================")
	cmd.Println()

	reader := bufio.NewReader(cmd.InOrStdin())

	cmd.Println("Step 1: Configure AI Provider")
	cmd.Println("-----------------------------")
	if err := configureAIProvider(cmd, reader); err != nil {
		return err
	}

	cmd.Println("Step 2: Configure Storage")
	cmd.Println("-------------------------")
	if err := configureStorage(cmd, reader); err != nil {
		return err
	}

	// Final validation
	cmd.Println("Configuration Complete!")
	cmd.Println("=======================")
	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
	} else {
		cmd.Println("All settings are valid and saved.")
	}

	return nil
}

func runSettingsAI(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	reader := bufio.NewReader(cmd.InOrStdin())
	return configureAIProvider(cmd, reader)
}

func runSettingsStorage(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	reader := bufio.NewReader(cmd.InOrStdin())
	return configureStorage(cmd, reader)
}

func configureAIProvider(cmd *cobra.Command, reader *bufio.Reader) error {
	cmd.Println("Select AI Provider")
	providers := domain.AllAIProviders()
	for i, p := range providers {
		cmd.Printf("  %d. %s\n", i+1, p.Description())
	}
	cmd.Print("\nEnter choice [1]: ")
	input := readLine(reader)
	idx := parseChoice(input, len(providers), 1)
	selectedProvider := providers[idx-1]

	// Get model
	defaultModel := domain.DefaultTextModels()[selectedProvider]
	cmd.Printf("Enter model name [%s]: ", defaultModel)
	model := readLine(reader)
	if model == "" {
		model = defaultModel
	}

	// Get API key if needed
	var apiKey string
	if selectedProvider.RequiresAPIKey() {
		cmd.Print("Enter API key: ")
		apiKey = readPassword(cmd.InOrStdin(), reader)
		cmd.Println()
		if apiKey == "" {
			return errors.New("API key is required for this provider")
		}
	}

	if err := settingsService.SetAIProvider(selectedProvider, model, apiKey); err != nil {
		return fmt.Errorf("failed to configure AI provider: %w", err)
	}

	// Validate the configuration by pinging the service
	cmd.Print("Validating configuration... ")
	if err := settingsService.ValidateAIConfig(); err != nil {
		cmd.Printf("FAILED: %v\n", err)
		return fmt.Errorf("AI configuration validation failed: %w", err)
	}
	cmd.Println("OK")

	cmd.Printf("AI provider configured: %s (%s)\n\n", selectedProvider.Description(), model)
	return nil
}

func configureStorage(cmd *cobra.Command, reader *bufio.Reader) error {
	cmd.Println("Select Storage Backend")
	backends := domain.AllStorageBackends()
	for i, b := range backends {
		cmd.Printf("  %d. %s\n", i+1, b.Description())
	}
	cmd.Print("\nEnter choice [1]: ")
	input := readLine(reader)
	idx := parseChoice(input, len(backends), 1)
	selected := backends[idx-1]

	var location string
	switch selected {
	case domain.StorageSQLite:
		cmd.Print("Enter data directory [~/.hirewire/data]: ")
		location = readLine(reader)
	case domain.StorageRedis:
		defaults := domain.DefaultAppSettings()
		cmd.Printf("Enter Redis address [%s]: ", defaults.Storage.RedisAddr)
		location = readLine(reader)
		if location == "" {
			location = defaults.Storage.RedisAddr
		}
	case domain.StorageMemory:
	}

	if err := settingsService.SetStorageBackend(selected, location); err != nil {
		return fmt.Errorf("failed to configure storage: %w", err)
	}

	cmd.Printf("Storage configured: %s\n", selected.Description())
	cmd.Println("The new backend is used from the next command.")
	cmd.Println()
	return nil
}

func runSettingsPromptsList(cmd *cobra.Command, _ []string) error {
	if promptAdmin == nil {
		return errors.New("prompt store not configured")
	}

	cmd.Printf("Prompt templates in %s\n\n", promptAdmin.Dir())
	for _, name := range promptAdmin.Names() {
		cmd.Printf("  %-18s %s\n", name, promptAdmin.Path(name))
	}
	cmd.Println()
	cmd.Println("Edit a file to customise a prompt; 'hirewire settings prompts restore <name>' undoes it.")
	return nil
}

func runSettingsPromptsRestore(cmd *cobra.Command, args []string) error {
	if promptAdmin == nil {
		return errors.New("prompt store not configured")
	}

	if err := promptAdmin.Restore(args[0]); err != nil {
		return fmt.Errorf("failed to restore prompt: %w", err)
	}
	cmd.Printf("Restored %s to its default.\n", args[0])
	return nil
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

// readPassword reads without echo when in is a terminal and falls back to
// the buffered reader otherwise.
func readPassword(in io.Reader, reader *bufio.Reader) string {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		password, err := term.ReadPassword(int(f.Fd()))
		if err == nil {
			return strings.TrimSpace(string(password))
		}
	}
	return readLine(reader)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
