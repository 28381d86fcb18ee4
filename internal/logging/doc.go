// Package logging provides concrete implementations of the geoms.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: human-readable lines on stderr
//   - StructuredLogger: JSON lines via zerolog, for batch ingestion runs
//   - NullLogger: discards all messages
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
