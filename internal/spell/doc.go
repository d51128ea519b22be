// Package spell wraps dictionary-based spell checking for Portuguese and
// English. Dictionaries are embedded word-frequency lists; corrections are the
// most frequent known words within a small Levenshtein distance, and common
// chat shorthand ("vc", "pq", "thx") is expanded before any lookup.
package spell
