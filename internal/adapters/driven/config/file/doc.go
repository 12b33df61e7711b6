// Package file provides file-based implementations of driven port interfaces.
// These adapters persist data to the local filesystem.
//
// Adapters:
//   - ConfigStore: TOML-based configuration storage (~/.hirewire/config.toml)
//   - PromptStore: user-editable prompt templates (~/.hirewire/prompts/*.tmpl)
package file
