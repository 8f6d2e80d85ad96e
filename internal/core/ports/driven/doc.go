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
//   - SourceReader: Reads the six LaTeX source documents
//   - SourceParser: Extracts typed records from source text
//   - PageStore: Loads and persists the destination page
//   - DocumentTree / Node: Mutable view of the destination page
//   - BackupStore: Timestamped page backups and restore
//   - ProgressReporter: Numbered console progress output
//   - ConfigStore: Project configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - HistoryStore: Run history. Without it, runs are not recorded.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or normaliser package
package driven
