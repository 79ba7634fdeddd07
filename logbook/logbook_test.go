package logbook

import (
	"bytes"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/pilekit/core"
	"github.com/hupe1980/pilekit/logging"
)

var _ core.Tagged = (*Record)(nil)

func TestManager_BufferAndFlush(t *testing.T) {
	var buf bytes.Buffer
	m := NewManager(func(o *ManagerOptions) {
		o.Output = &buf
		o.Logger = logging.NoOpLogger{}
	})

	require.NoError(t, m.Log(NewRecord("info", "first", map[string]any{"n": 1})))
	require.NoError(t, m.Log(NewRecord("warn", "second", nil)))
	assert.Equal(t, 2, m.Len())
	assert.Empty(t, buf.String(), "nothing is written before flush")

	require.NoError(t, m.Flush())
	assert.Equal(t, 0, m.Len())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "info", first["level"])
	assert.Equal(t, "first", first["message"])
	assert.NotEmpty(t, first["id"])
	assert.NotEmpty(t, first["created_at"])
	assert.Equal(t, map[string]any{"n": float64(1)}, first["fields"])
}

func TestManager_AutoFlushAtCapacity(t *testing.T) {
	var buf bytes.Buffer
	m := NewManager(func(o *ManagerOptions) {
		o.Capacity = 3
		o.Output = &buf
		o.Logger = logging.NoOpLogger{}
	})

	require.NoError(t, m.Log(NewRecord("info", "a", nil)))
	require.NoError(t, m.Log(NewRecord("info", "b", nil)))
	assert.Empty(t, buf.String())

	require.NoError(t, m.Log(NewRecord("info", "c", nil)))
	assert.Equal(t, 0, m.Len(), "reaching capacity drains the buffer")
	assert.Len(t, strings.Split(strings.TrimSpace(buf.String()), "\n"), 3)
}

func TestManager_FlushEmptyIsNoOp(t *testing.T) {
	var buf bytes.Buffer
	m := NewManager(func(o *ManagerOptions) {
		o.Output = &buf
	})
	require.NoError(t, m.Flush())
	assert.Empty(t, buf.String())
}

func TestManager_PreservesOrder(t *testing.T) {
	var buf bytes.Buffer
	m := NewManager(func(o *ManagerOptions) {
		o.Output = &buf
		o.Logger = logging.NoOpLogger{}
	})

	want := []string{"one", "two", "three", "four"}
	for _, msg := range want {
		require.NoError(t, m.Log(NewRecord("info", msg, nil)))
	}
	require.NoError(t, m.Flush())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, len(want))
	for i, line := range lines {
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		assert.Equal(t, want[i], rec["message"])
	}
}

func TestManager_ConcurrentLogging(t *testing.T) {
	var buf bytes.Buffer
	m := NewManager(func(o *ManagerOptions) {
		o.Capacity = 10
		o.Output = &buf
		o.Logger = logging.NoOpLogger{}
	})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 5; j++ {
				assert.NoError(t, m.Log(NewRecord("info", "msg", nil)))
			}
		}()
	}
	wg.Wait()
	require.NoError(t, m.Flush())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 100, "every record is flushed exactly once")
	assert.Equal(t, 0, m.Len())
}
