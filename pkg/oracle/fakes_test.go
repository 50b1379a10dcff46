package oracle_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/chainsafe/oracle-indexer/pkg/notify"
	"github.com/chainsafe/oracle-indexer/pkg/oracle"
)

// memStore is an in-memory oracle.Store. UpdateCall serializes on a single
// mutex, which stands in for the row lock.
type memStore struct {
	mu     sync.Mutex
	nextID int64
	calls  map[int64]oracle.Call
}

func newMemStore() *memStore {
	return &memStore{calls: make(map[int64]oracle.Call)}
}

func (m *memStore) Create(_ context.Context, c *oracle.Call) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	c.ID = m.nextID
	c.CreatedAt = time.Now().UTC()
	c.UpdatedAt = c.CreatedAt
	m.calls[c.ID] = *c
	return nil
}

func (m *memStore) Get(_ context.Context, id int64) (*oracle.Call, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.calls[id]
	if !ok {
		return nil, oracle.ErrCallNotFound
	}
	return &c, nil
}

func (m *memStore) UpdateCall(ctx context.Context, id int64, fn oracle.UpdateFunc) (*oracle.Call, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	current, ok := m.calls[id]
	if !ok {
		return nil, oracle.ErrCallNotFound
	}
	next := current
	if err := fn(ctx, &next); err != nil {
		if errors.Is(err, oracle.ErrSkipUpdate) {
			return &current, nil
		}
		return nil, err
	}
	next.UpdatedAt = time.Now().UTC()
	m.calls[id] = next
	return &next, nil
}

func (m *memStore) Pending(_ context.Context, now time.Time, limit int) ([]*oracle.Call, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*oracle.Call
	for _, c := range m.calls {
		if c.ProcessedAt != nil || c.FailedAt != nil || c.CallTime.After(now) {
			continue
		}
		switch c.Status {
		case oracle.StatusOpen, oracle.StatusPaused, oracle.StatusSettling:
			cp := c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// put stores c as is, bypassing the state machine.
func (m *memStore) put(c oracle.Call) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	c.ID = m.nextID
	m.calls[c.ID] = c
	return c.ID
}

type recordingPublisher struct {
	mu   sync.Mutex
	msgs []notify.Message
}

func (p *recordingPublisher) Publish(_ context.Context, msg notify.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.msgs = append(p.msgs, msg)
	return nil
}

func (p *recordingPublisher) kinds() []notify.Kind {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]notify.Kind, len(p.msgs))
	for i, m := range p.msgs {
		out[i] = m.Kind
	}
	return out
}
