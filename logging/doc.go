// Package logging provides a tiny abstraction over slog so pilekit consumers
// can depend on a minimal Logger interface while plugging in any structured
// logger. The collection core itself stays silent; the interface exists for
// the buffering and flush layers built on top of piles.
package logging
