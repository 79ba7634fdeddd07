// Package guard provides the dual-mode mutual exclusion primitive used by
// piles. A single Guard serves two kinds of callers: blocking callers that
// acquire with Lock/Unlock, and cooperative callers that acquire with
// Acquire(ctx) and may suspend until the guard is free or the context is
// done. Both paths contend for the same underlying exclusion state, so a
// blocking holder excludes a cooperative acquirer and vice versa.
package guard
