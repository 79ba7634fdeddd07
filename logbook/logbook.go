package logbook

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/hupe1980/pilekit/core"
	"github.com/hupe1980/pilekit/logging"
	"github.com/hupe1980/pilekit/pile"
)

// Tag is the registered type tag for log records.
const Tag = "logbook.record"

func init() {
	core.RegisterType(Tag, "")
}

// Record is one buffered log entry.
type Record struct {
	core.Element
	Level   string
	Message string
	Fields  map[string]any
}

// TypeTag implements core.Tagged.
func (r *Record) TypeTag() string { return Tag }

// NewRecord creates a record with the given level, message and fields.
func NewRecord(level, message string, fields map[string]any) *Record {
	return &Record{Element: core.NewElement(), Level: level, Message: message, Fields: fields}
}

// MarshalJSON flattens the record into a single wire object, including the
// identity and creation time the embedded element carries.
func (r *Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID        core.ID        `json:"id"`
		CreatedAt time.Time      `json:"created_at"`
		Level     string         `json:"level"`
		Message   string         `json:"message"`
		Fields    map[string]any `json:"fields,omitempty"`
	}{
		ID:        r.Identity(),
		CreatedAt: r.CreatedAt(),
		Level:     r.Level,
		Message:   r.Message,
		Fields:    r.Fields,
	})
}

// ManagerOptions configures a Manager.
type ManagerOptions struct {
	// Capacity is the buffer size that triggers an automatic flush. Zero or
	// negative disables auto-flushing.
	Capacity int

	// Output receives flushed records as JSON lines. Defaults to io.Discard.
	Output io.Writer

	Logger logging.Logger
}

// Manager buffers records in a typed pile and drains them to Output. The
// pile keeps individual operations atomic; mu makes the buffer-then-maybe-
// flush sequence atomic so two writers cannot both trip the capacity check.
type Manager struct {
	mu      sync.Mutex
	records *pile.Pile[*Record]
	opts    ManagerOptions
}

// NewManager creates a manager.
func NewManager(optFns ...func(o *ManagerOptions)) *Manager {
	opts := ManagerOptions{
		Capacity: 100,
		Output:   io.Discard,
		Logger:   logging.NewDefaultSlogLogger(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Output == nil {
		opts.Output = io.Discard
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}
	records, err := pile.New([]*Record{}, func(o *pile.Options) {
		o.ItemTypes = []string{Tag}
		o.Strict = true
	})
	if err != nil {
		// Unreachable: an empty seed cannot fail validation.
		panic(err)
	}
	return &Manager{records: records, opts: opts}
}

// Log buffers records, flushing the whole buffer when it reaches capacity.
func (m *Manager) Log(records ...*Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.records.Include(records...); err != nil {
		return err
	}
	if m.opts.Capacity > 0 && m.records.Len() >= m.opts.Capacity {
		return m.flushLocked()
	}
	return nil
}

// Flush drains the buffer to Output as JSON lines.
func (m *Manager) Flush() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.flushLocked()
}

func (m *Manager) flushLocked() error {
	drained := m.records.Values()
	if len(drained) == 0 {
		return nil
	}
	m.records.Clear()

	enc := json.NewEncoder(m.opts.Output)
	for _, r := range drained {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode record %s: %w", r.Identity(), err)
		}
	}
	m.opts.Logger.Debug("flushed log records", "count", len(drained))
	return nil
}

// Records returns a snapshot of the buffered records in insertion order.
func (m *Manager) Records() []*Record {
	return m.records.Values()
}

// Len returns the number of buffered records.
func (m *Manager) Len() int { return m.records.Len() }
