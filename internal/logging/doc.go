// Package logging assembles the slog loggers used by textclean.
//
// New and NewFromConfig build either a human-oriented console handler or a
// JSON handler, optionally teeing JSON records into a log file. Components
// derive their logger with NewComponentLogger, and batch operations attach a
// batch_id through WithBatchID so every record of one run can be correlated.
// NewNop returns a logger that discards everything, for tests and callers
// that pass no logger.
package logging
