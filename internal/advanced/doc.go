// Package advanced implements the configurable normalization pipeline for
// Portuguese-first text: emoji, URL and email removal, chat shorthand
// expansion, ordinal, date and currency normalization, duplicate removal,
// abbreviation expansion, and optional stemming and lemmatization.
//
// Each step is exported as a pure function. Cleaner chains them in a fixed
// order according to Options and resolves the language used by the stemmer.
package advanced
