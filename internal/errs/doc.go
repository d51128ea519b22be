// Package errs defines the error taxonomy shared by the cleaners, the cache
// layer, configuration, and the CLI.
//
// Sentinels classify failures for errors.Is; the typed errors carry the detail
// a caller needs to report them (the rejected value and the accepted set).
// Failures raised by delegated libraries are wrapped with %w and never
// translated, so their own types remain reachable through errors.As.
package errs
