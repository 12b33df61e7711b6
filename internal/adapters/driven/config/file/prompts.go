package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/hirewire-labs/hirewire-cli/internal/core/ports/driven"
	"github.com/hirewire-labs/hirewire-cli/internal/logger"
)

// Ensure PromptStore implements the interface.
var _ driven.PromptStore = (*PromptStore)(nil)

// promptExt is the file extension for prompt templates.
const promptExt = ".tmpl"

// PromptStore loads prompt templates from user-editable files on disk.
// Prompts are loaded from a configurable directory with fallback to the
// defaults supplied at construction.
//
// The store uses lazy initialisation - files are only created when first accessed,
// not in the constructor.
type PromptStore struct {
	mu        sync.RWMutex
	promptDir string
	defaults  map[string]string
	cache     map[string]string
	initOnce  sync.Once
	initErr   error
}

// NewPromptStore creates a new file-based prompt store.
// If promptDir is empty, defaults to ~/.hirewire/prompts/.
// defaults holds the built-in template for every known prompt name.
//
// The constructor does not perform any I/O - directory creation and
// file writes happen lazily on first Load() call.
func NewPromptStore(promptDir string, defaults map[string]string) (*PromptStore, error) {
	if promptDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home directory: %w", err)
		}
		promptDir = filepath.Join(home, ".hirewire", "prompts")
	}

	copied := make(map[string]string, len(defaults))
	for k, v := range defaults {
		copied[k] = v
	}

	return &PromptStore{
		promptDir: promptDir,
		defaults:  copied,
		cache:     make(map[string]string),
	}, nil
}

// Load returns the prompt template for the given name.
// On first call, initialises the prompt directory and creates default files.
// Returns cached value if available, otherwise loads from file.
// Falls back to the default if the file doesn't exist.
func (s *PromptStore) Load(name string) (string, error) {
	s.initOnce.Do(s.initialise)
	if s.initErr != nil {
		if prompt, ok := s.defaults[name]; ok {
			return prompt, nil
		}
		return "", fmt.Errorf("prompt store init failed: %w", s.initErr)
	}

	s.mu.RLock()
	if prompt, ok := s.cache[name]; ok {
		s.mu.RUnlock()
		return prompt, nil
	}
	s.mu.RUnlock()

	// No lock held during I/O
	prompt, err := s.loadFromFile(name)
	if err != nil || prompt == "" {
		if defaultPrompt, ok := s.defaults[name]; ok {
			return defaultPrompt, nil
		}
		if err == nil {
			err = os.ErrNotExist
		}
		return "", fmt.Errorf("load prompt %q: %w", name, err)
	}

	// Double-check so concurrent loads agree on one value
	s.mu.Lock()
	if cached, ok := s.cache[name]; ok {
		prompt = cached
	} else {
		s.cache[name] = prompt
	}
	s.mu.Unlock()

	return prompt, nil
}

// Reload clears the prompt cache, forcing fresh loads from disk.
func (s *PromptStore) Reload() {
	s.mu.Lock()
	s.cache = make(map[string]string)
	s.mu.Unlock()
}

// Dir returns the prompt directory path.
func (s *PromptStore) Dir() string {
	return s.promptDir
}

// Names returns the known prompt names in sorted order.
func (s *PromptStore) Names() []string {
	names := make([]string, 0, len(s.defaults))
	for name := range s.defaults {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Path returns the file path for a prompt name.
func (s *PromptStore) Path(name string) string {
	return filepath.Join(s.promptDir, name+promptExt)
}

// Restore overwrites a prompt file with its default content.
func (s *PromptStore) Restore(name string) error {
	content, ok := s.defaults[name]
	if !ok {
		return fmt.Errorf("unknown prompt %q", name)
	}
	if err := os.MkdirAll(s.promptDir, 0700); err != nil {
		return fmt.Errorf("create prompt directory: %w", err)
	}
	if err := os.WriteFile(s.Path(name), []byte(content+"\n"), 0600); err != nil {
		return fmt.Errorf("restore prompt %q: %w", name, err)
	}

	s.mu.Lock()
	delete(s.cache, name)
	s.mu.Unlock()
	return nil
}

// Watch reloads the cache whenever a template file in the prompt directory
// changes. It blocks until ctx is cancelled or the watcher fails to start.
// ready, if non-nil, is closed once the watcher is registered.
func (s *PromptStore) Watch(ctx context.Context, ready chan<- struct{}) error {
	s.initOnce.Do(s.initialise)
	if s.initErr != nil {
		return s.initErr
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create prompt watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(s.promptDir); err != nil {
		return fmt.Errorf("watch %s: %w", s.promptDir, err)
	}
	if ready != nil {
		close(ready)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !strings.HasSuffix(event.Name, promptExt) || event.Op == fsnotify.Chmod {
				continue
			}
			logger.Debug("prompt %s changed (%s), reloading", filepath.Base(event.Name), event.Op)
			s.Reload()
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("prompt watcher: %v", werr)
		}
	}
}

// initialise creates the prompt directory and default files.
// Called once via sync.Once on first Load().
func (s *PromptStore) initialise() {
	if err := os.MkdirAll(s.promptDir, 0700); err != nil {
		s.initErr = fmt.Errorf("create prompt directory: %w", err)
		return
	}

	// Only create files that don't exist yet
	for name, content := range s.defaults {
		path := s.Path(name)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := os.WriteFile(path, []byte(content+"\n"), 0600); err != nil {
				s.initErr = fmt.Errorf("create default prompt %q: %w", name, err)
				return
			}
		}
	}

	if err := s.createReadme(); err != nil {
		s.initErr = err
	}
}

// loadFromFile reads a prompt from disk.
func (s *PromptStore) loadFromFile(name string) (string, error) {
	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// createReadme writes a README file explaining the prompts directory.
func (s *PromptStore) createReadme() error {
	path := filepath.Join(s.promptDir, "README.md")
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return nil // Already exists or stat error (ignore)
	}

	var files strings.Builder
	for _, name := range s.Names() {
		files.WriteString("- `" + name + promptExt + "`\n")
	}

	content := `# HireWire Prompts

This directory contains the prompt templates used by HireWire's AI assistant.

## Files

` + files.String() + `
## Customisation

Edit any file to change how the assistant writes. The running TUI picks up
changes automatically; commands read the files on each run. Delete a file
(or run ` + "`hirewire settings prompts restore <name>`" + `) to get the default back.

## Template Syntax

Prompts are Go text/template files. Fields such as ` + "`{{.Role}}`" + `,
` + "`{{.Company}}`" + ` and ` + "`{{.Skills}}`" + ` are filled in at request time.
A template that fails to parse falls back to the built-in version.
`
	return os.WriteFile(path, []byte(content), 0600)
}
