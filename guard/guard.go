package guard

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// Guard is a mutual exclusion primitive with a blocking and a context-aware
// acquisition path backed by one shared weighted semaphore. The zero value is
// not usable; construct with New.
//
// Usage from blocking code:
//
//	g.Lock()
//	defer g.Unlock()
//
// Usage from cooperative code:
//
//	if err := g.Acquire(ctx); err != nil {
//		return err
//	}
//	defer g.Unlock()
//
// A failed Acquire holds nothing, so the defer discipline above releases the
// guard on every exit path without double-release hazards.
type Guard struct {
	sem *semaphore.Weighted
}

// New creates an unlocked Guard.
func New() *Guard {
	return &Guard{sem: semaphore.NewWeighted(1)}
}

// Lock acquires the guard, blocking the calling goroutine until it is free.
func (g *Guard) Lock() {
	// Acquire with a background context cannot fail.
	_ = g.sem.Acquire(context.Background(), 1)
}

// Acquire acquires the guard, suspending until it is free or ctx is done.
// It returns ctx.Err() without holding the guard when the context wins.
func (g *Guard) Acquire(ctx context.Context) error {
	return g.sem.Acquire(ctx, 1)
}

// TryLock acquires the guard without waiting, reporting success.
func (g *Guard) TryLock() bool {
	return g.sem.TryAcquire(1)
}

// Unlock releases the guard. It must be called exactly once per successful
// Lock, Acquire or TryLock.
func (g *Guard) Unlock() {
	g.sem.Release(1)
}
