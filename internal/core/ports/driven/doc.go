// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - SlotStore: Named JSON blob persistence (SQLite, Redis, memory)
//   - ConfigStore: Application configuration
//   - IDGenerator: Fresh entity ids
//   - Clock: Current time for metrics
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - Generator: Text and image generation. Without it, AI features return fallback text.
//   - PromptStore: Prompt templates. Without it, built-in defaults are used.
//   - DescriptionExtractor: Reads job postings from files.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
