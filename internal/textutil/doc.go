// Package textutil holds the basic text cleaning functions.
//
// Two families live here:
//   - The basic cleaner: accent and special-character removal, HTML text
//     extraction, whitespace collapsing, case conversion (snake, camel,
//     pascal, title), and CleanText, which chains them in a fixed order.
//   - The legacy v1 functions: tag stripping without separators, ASCII-only
//     normalization, letter and digit filters, and stopword removal backed by
//     built-in lists for Portuguese, English, and Spanish.
//
// Every function is pure and safe for concurrent use.
package textutil
