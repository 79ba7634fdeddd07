// Package logbook collects structured records into an identity-keyed buffer
// and flushes them as JSON lines. Records accumulate in insertion order and
// are drained to the configured writer either explicitly via Flush or
// automatically once the buffer reaches capacity.
package logbook
