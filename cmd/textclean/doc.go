// Package main hosts the textclean CLI entrypoint and command graph.
//
// The Cobra-based command tree exposes the cleaning pipeline, the advanced
// normalizer, batch processing, language detection, spell checking, cache
// maintenance, and configuration scaffolding. Configuration is loaded once per
// invocation and logs go to stderr so command output stays pipeable.
//
// Keep this package lean: new behaviour belongs in the internal packages and
// is surfaced here through dedicated commands or flags.
package main
