// Package logging provides the Logger interface the orchestrator and
// CLI use for diagnostics. No third-party structured-logging library
// appears anywhere in the retrieval pack, so the standard implementation
// wraps the stdlib log package; see DESIGN.md for the justification.
package logging
