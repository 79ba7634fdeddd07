package pile

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/pilekit/core"
)

func TestPile_ConcurrentInclude(t *testing.T) {
	const callers = 25
	const perCaller = 40

	p := Of[*thing]()
	batches := make([][]*thing, callers)
	for i := range batches {
		batches[i] = things(perCaller)
	}

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(batch []*thing) {
			defer wg.Done()
			for _, item := range batch {
				if err := p.Include(item); err != nil {
					t.Errorf("include failed: %v", err)
				}
			}
		}(batches[i])
	}
	wg.Wait()

	require.Equal(t, callers*perCaller, p.Len())
	for _, batch := range batches {
		for _, item := range batch {
			assert.True(t, p.Contains(item.Identity()))
		}
	}
	assertCoherent(t, p)
}

func TestPile_ConcurrentMixedMutation(t *testing.T) {
	seed := things(200)
	p := Of(seed...)

	var wg sync.WaitGroup
	// Half the seed is removed while new items are included and readers spin.
	wg.Add(3)
	go func() {
		defer wg.Done()
		for _, item := range seed[:100] {
			p.Exclude(item)
		}
	}()
	go func() {
		defer wg.Done()
		for _, item := range things(100) {
			if err := p.Include(item); err != nil {
				t.Errorf("include failed: %v", err)
			}
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			_ = p.Values()
			_ = p.Len()
		}
	}()
	wg.Wait()

	assert.Equal(t, 200, p.Len())
	assertCoherent(t, p)
}

func TestPile_SnapshotIsolation(t *testing.T) {
	seed := things(1000)
	p := Of(seed...)

	count := 0
	for _, item := range p.All() {
		count++
		if count == 10 {
			// Mutating mid-iteration must not disturb the snapshot.
			p.Exclude(seed[:500]...)
		}
		_ = item
	}
	assert.Equal(t, 1000, count, "iteration must yield every item of its snapshot exactly once")
	assert.Equal(t, 500, p.Len())
}

func TestPile_SnapshotIsolationConcurrent(t *testing.T) {
	seed := things(1000)
	p := Of(seed...)

	ch, err := p.IterContext(context.Background())
	require.NoError(t, err)

	removed := make(chan struct{})
	go func() {
		p.Exclude(seed[:500]...)
		close(removed)
	}()

	seen := map[core.ID]int{}
	for item := range ch {
		seen[item.Identity()]++
	}
	<-removed

	require.Len(t, seen, 1000)
	for id, n := range seen {
		require.Equal(t, 1, n, "item %s yielded %d times", id, n)
	}
	assert.Equal(t, 500, p.Len())
}

func TestPile_IterContextCancelled(t *testing.T) {
	p := Of(things(100)...)

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := p.IterContext(ctx)
	require.NoError(t, err)

	// Consume a few items, then cancel; the channel must close promptly.
	for i := 0; i < 3; i++ {
		<-ch
	}
	cancel()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("channel did not close after cancellation")
		}
	}
}

func TestPile_ContextMirrors(t *testing.T) {
	ctx := context.Background()
	x, y := newThing("node", "x"), newThing("node", "y")
	p := Of[*thing]()

	require.NoError(t, p.IncludeContext(ctx, x, y))
	require.NoError(t, p.AppendContext(ctx, newThing("node", "z")))
	assert.Equal(t, 3, p.Len())

	got, err := p.GetContext(ctx, x.Identity())
	require.NoError(t, err)
	assert.Equal(t, x, got)

	popped, err := p.PopContext(ctx, y.Identity())
	require.NoError(t, err)
	assert.Equal(t, y, popped)

	require.NoError(t, p.InsertContext(ctx, 1, y))
	require.NoError(t, p.UpdateContext(ctx, y))

	last, err := p.PopAtContext(ctx, -1)
	require.NoError(t, err)
	require.NoError(t, p.AppendContext(ctx, last))

	rng, err := p.PopRangeContext(ctx, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, rng.Len())
	require.NoError(t, p.IncludeContext(ctx, rng.Values()...))
	assert.Equal(t, 3, p.Len())

	require.NoError(t, p.RemoveContext(ctx, y))
	require.NoError(t, p.ExcludeContext(ctx, y))
	require.NoError(t, p.ClearContext(ctx))
	assert.True(t, p.IsEmpty())
	assertCoherent(t, p)
}

func TestPile_ContextMirrorsRespectCancellation(t *testing.T) {
	p := Of(things(2)...)

	// Hold the guard so the cooperative caller must wait, then cancel it.
	p.g.Lock()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- p.IncludeContext(ctx, newThing("node", "late"))
	}()
	cancel()

	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("cancelled IncludeContext did not return")
	}
	p.g.Unlock()

	// The pile must still be usable once the blocking holder releases.
	require.NoError(t, p.Include(newThing("node", "after")))
	assert.Equal(t, 3, p.Len())
	assertCoherent(t, p)
}
