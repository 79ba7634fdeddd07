// Package progression implements the ordered sequence of identifiers that
// defines iteration and display order for a pile. A progression never holds
// duplicates: each id appears at most once, at its current position.
//
// Progressions are plain single-owner state. The pile that owns one guards
// every access; a progression used on its own is not safe for concurrent
// mutation.
package progression
