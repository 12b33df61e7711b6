package services

import (
	"embed"
	"fmt"
	"path"
	"strings"
	"sync"
	"text/template"

	"github.com/hirewire-labs/hirewire-cli/internal/core/ports/driven"
	"github.com/hirewire-labs/hirewire-cli/internal/logger"
)

//go:embed prompts/*.tmpl
var promptFS embed.FS

// DefaultPrompts returns the built-in prompt templates keyed by prompt name.
func DefaultPrompts() map[string]string {
	out := make(map[string]string, len(driven.AllPromptNames()))
	for _, name := range driven.AllPromptNames() {
		data, err := promptFS.ReadFile(path.Join("prompts", name+".tmpl"))
		if err != nil {
			continue
		}
		out[name] = strings.TrimSpace(string(data))
	}
	return out
}

// promptRenderer renders named templates, preferring the store's copy and
// falling back to the built-in template when the store copy is missing or broken.
type promptRenderer struct {
	mu       sync.RWMutex
	store    driven.PromptStore
	defaults map[string]string
}

func newPromptRenderer() *promptRenderer {
	return &promptRenderer{defaults: DefaultPrompts()}
}

func (r *promptRenderer) setStore(store driven.PromptStore) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.store = store
}

func (r *promptRenderer) render(name string, data any) (string, error) {
	r.mu.RLock()
	store := r.store
	r.mu.RUnlock()

	if store != nil {
		text, err := store.Load(name)
		if err == nil && strings.TrimSpace(text) != "" {
			out, execErr := execute(name, text, data)
			if execErr == nil {
				return out, nil
			}
			logger.Warn("custom prompt %q unusable, using built-in: %v", name, execErr)
		} else if err != nil {
			logger.Warn("load prompt %q: %v", name, err)
		}
	}

	text, ok := r.defaults[name]
	if !ok {
		return "", fmt.Errorf("unknown prompt %q", name)
	}
	return execute(name, text, data)
}

func execute(name, text string, data any) (string, error) {
	tmpl, err := template.New(name).Option("missingkey=zero").Parse(text)
	if err != nil {
		return "", fmt.Errorf("parse prompt %q: %w", name, err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render prompt %q: %w", name, err)
	}
	return strings.TrimSpace(b.String()), nil
}
