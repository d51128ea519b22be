// Package language provides language code normalization and detection.
//
// Codes, ISO 639-2 forms, and English or native word forms all resolve to the
// same entry, so callers can accept "pt", "por", or "portuguese" alike.
// Detection is restricted to the configurable languages and never fails: text
// that cannot be classified reports Unknown.
package language
