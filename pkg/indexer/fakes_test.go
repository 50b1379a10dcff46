package indexer_test

import (
	"context"
	"fmt"
	"maps"
	"math/big"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stellar/go/xdr"
	"github.com/stretchr/testify/require"

	"github.com/chainsafe/oracle-indexer/pkg/eventlog"
	"github.com/chainsafe/oracle-indexer/pkg/events"
	"github.com/chainsafe/oracle-indexer/pkg/ledger"
)

const testContract = "CPLATFORM"

// memLog is an in-memory eventlog.Store. InTx restores the pre-transaction
// records and cursors when fn fails.
type memLog struct {
	txMu    sync.Mutex
	mu      sync.Mutex
	nextID  int64
	records []eventlog.Record
	cursors map[string]int64
}

func (m *memLog) Append(_ context.Context, rec *eventlog.Record) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.records {
		if r.EventID == rec.EventID {
			return false, nil
		}
	}
	m.nextID++
	cp := *rec
	cp.ID = m.nextID
	cp.IndexedAt = time.Now().UTC()
	m.records = append(m.records, cp)
	return true, nil
}

func (m *memLog) Exists(_ context.Context, eventID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.records {
		if r.EventID == eventID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memLog) MaxLedger(_ context.Context, contractID string) (int64, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var (
		maxLedger int64
		found     bool
	)
	for _, r := range m.records {
		if r.ContractID == contractID && r.Ledger > maxLedger {
			maxLedger, found = r.Ledger, true
		}
	}
	return maxLedger, found, nil
}

func (m *memLog) Cursor(_ context.Context, contractID string) (int64, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.cursors[contractID]
	return c, ok, nil
}

func (m *memLog) SetCursor(_ context.Context, contractID string, ledger int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cursors == nil {
		m.cursors = make(map[string]int64)
	}
	if cur, ok := m.cursors[contractID]; !ok || ledger > cur {
		m.cursors[contractID] = ledger
	}
	return nil
}

func (m *memLog) Count(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.records)), nil
}

func (m *memLog) Latest(context.Context) (*eventlog.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.records) == 0 {
		return nil, eventlog.ErrRecordNotFound
	}
	best := m.records[0]
	for _, r := range m.records[1:] {
		if r.Ledger > best.Ledger || (r.Ledger == best.Ledger && r.TxOrder > best.TxOrder) {
			best = r
		}
	}
	return &best, nil
}

func (m *memLog) ListByType(_ context.Context, typ events.Type, limit int) ([]*eventlog.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*eventlog.Record
	for i := range m.records {
		if m.records[i].EventType == typ {
			cp := m.records[i]
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Ledger > out[j].Ledger })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memLog) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.txMu.Lock()
	defer m.txMu.Unlock()

	m.mu.Lock()
	snapshot := append([]eventlog.Record(nil), m.records...)
	cursors := maps.Clone(m.cursors)
	nextID := m.nextID
	m.mu.Unlock()

	if err := fn(ctx); err != nil {
		m.mu.Lock()
		m.records = snapshot
		m.cursors = cursors
		m.nextID = nextID
		m.mu.Unlock()
		return err
	}
	return nil
}

func (m *memLog) eventIDs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]string, len(m.records))
	for i, r := range m.records {
		ids[i] = r.EventID
	}
	sort.Strings(ids)
	return ids
}

func encodeVal(t *testing.T, v xdr.ScVal) string {
	t.Helper()
	s, err := ledger.EncodeScVal(v)
	require.NoError(t, err)
	return s
}

// feeEvent builds an AdminParamsChanged event carrying fee basis points.
func feeEvent(t *testing.T, ledgerSeq int64, txHash string, index int, feeBP int64) ledger.Event {
	t.Helper()
	id := fmt.Sprintf("%019d-%010d", ledgerSeq, index)
	return ledger.Event{
		Type:           "contract",
		Ledger:         ledgerSeq,
		LedgerClosedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC).Add(time.Duration(ledgerSeq) * 5 * time.Second),
		ContractID:     testContract,
		ID:             id,
		PagingToken:    id,
		Topic:          []string{encodeVal(t, ledger.SymbolVal(string(events.TypeAdminParamsChanged)))},
		Value: encodeVal(t, ledger.MapVal(
			[]string{"fee_percent"},
			[]xdr.ScVal{ledger.I128Val(big.NewInt(feeBP))},
		)),
		TxHash: txHash,
	}
}

func unknownEvent(t *testing.T, ledgerSeq int64, txHash string) ledger.Event {
	t.Helper()
	id := fmt.Sprintf("%019d-%010d", ledgerSeq, 0)
	return ledger.Event{
		Type:        "contract",
		Ledger:      ledgerSeq,
		ContractID:  testContract,
		ID:          id,
		PagingToken: id,
		Topic:       []string{encodeVal(t, ledger.SymbolVal("CallCreated"))},
		Value:       encodeVal(t, ledger.SymbolVal("x")),
		TxHash:      txHash,
	}
}

func malformedEvent(t *testing.T, ledgerSeq int64, txHash string) ledger.Event {
	ev := feeEvent(t, ledgerSeq, txHash, 0, 0)
	ev.Value = encodeVal(t, ledger.SymbolVal("not a map"))
	return ev
}
