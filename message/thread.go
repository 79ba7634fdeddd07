package message

import (
	"context"

	"github.com/hupe1980/pilekit/core"
	"github.com/hupe1980/pilekit/pile"
)

// Thread is an ordered conversational history backed by a strict
// message-typed pile. It consumes the pile purely through its public
// surface, never reaching into storage.
type Thread struct {
	msgs *pile.Pile[*Message]
}

// NewThread creates an empty thread.
func NewThread() *Thread {
	msgs, err := pile.New([]*Message{}, func(o *pile.Options) {
		o.ItemTypes = []string{Tag}
		o.Strict = true
	})
	if err != nil {
		// Unreachable: an empty seed cannot fail validation.
		panic(err)
	}
	return &Thread{msgs: msgs}
}

// Add appends messages to the history.
func (t *Thread) Add(msgs ...*Message) error {
	return t.msgs.Include(msgs...)
}

// AddContext is the suspension-capable mirror of Add.
func (t *Thread) AddContext(ctx context.Context, msgs ...*Message) error {
	return t.msgs.IncludeContext(ctx, msgs...)
}

// History returns the messages in conversational order.
func (t *Thread) History() []*Message {
	return t.msgs.Values()
}

// Get returns the message with the given id, or ErrNotFound.
func (t *Thread) Get(id core.ID) (*Message, error) {
	return t.msgs.Get(id)
}

// Last returns the most recent message, or ErrEmptyPile on an empty thread.
func (t *Thread) Last() (*Message, error) {
	// Single guarded read; index -1 only fails when the thread is empty.
	m, err := t.msgs.GetAt(-1)
	if err != nil {
		return nil, core.ErrEmptyPile
	}
	return m, nil
}

// Len returns the number of messages.
func (t *Thread) Len() int { return t.msgs.Len() }

// Clear empties the thread.
func (t *Thread) Clear() { t.msgs.Clear() }
