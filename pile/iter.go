package pile

import (
	"context"
	"iter"

	"github.com/hupe1980/pilekit/core"
)

// All returns a snapshot iterator over (id, item) pairs in current order.
// The snapshot is captured under the guard when iteration starts and the
// guard is released before the first yield, so mutating the pile from within
// the loop body is safe. The loop observes the pile as it was at that
// moment, not live state.
func (p *Pile[T]) All() iter.Seq2[core.ID, T] {
	return func(yield func(core.ID, T) bool) {
		ids, items := p.snapshot()
		for _, id := range ids {
			if !yield(id, items[id]) {
				return
			}
		}
	}
}

// IterContext returns a channel yielding a snapshot of the items in order.
// Acquiring the snapshot suspends until the guard is free or ctx is done.
// The channel is closed after the last item, or early when ctx is cancelled
// between yields. The producer goroutine lives until the channel is drained
// or ctx is done: a caller abandoning the channel under a non-cancellable
// context leaks it, so abandon only by cancelling.
func (p *Pile[T]) IterContext(ctx context.Context) (<-chan T, error) {
	if err := p.g.Acquire(ctx); err != nil {
		return nil, err
	}
	ids, items := p.snapshotLocked()
	p.g.Unlock()

	ch := make(chan T)
	go func() {
		defer close(ch)
		for _, id := range ids {
			select {
			case ch <- items[id]:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch, nil
}
