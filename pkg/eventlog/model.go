package eventlog

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/chainsafe/oracle-indexer/pkg/events"
)

// RecordDao maps to the 'event_logs' table.
type RecordDao struct {
	bun.BaseModel  `bun:"table:event_logs,alias:el"`
	ID             int64          `bun:"id,pk,autoincrement"`
	EventID        string         `bun:"event_id,unique,notnull,type:varchar(160)"`
	PagingToken    string         `bun:"paging_token,notnull,type:varchar(64)"`
	ContractID     string         `bun:"contract_id,notnull,type:varchar(56)"`
	EventType      string         `bun:"event_type,notnull,type:varchar(64)"`
	Ledger         int64          `bun:"ledger,notnull"`
	TxHash         string         `bun:"tx_hash,notnull,type:varchar(64)"`
	TxOrder        int            `bun:"tx_order,notnull,default:0"`
	Payload        map[string]any `bun:"payload,type:jsonb,notnull"`
	LedgerClosedAt time.Time      `bun:"ledger_closed_at,notnull"`
	IndexedAt      time.Time      `bun:"indexed_at,nullzero,notnull,default:current_timestamp"`
}

// CursorDao maps to the 'ledger_cursors' table: the last ledger of each
// contract whose events were fully handled.
type CursorDao struct {
	bun.BaseModel `bun:"table:ledger_cursors,alias:lc"`
	ContractID    string    `bun:"contract_id,pk,type:varchar(56)"`
	LastLedger    int64     `bun:"last_ledger,notnull"`
	UpdatedAt     time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

func toRecordDao(rec *Record) *RecordDao {
	payload := rec.Payload
	if payload == nil {
		payload = map[string]any{}
	}
	return &RecordDao{
		EventID:        rec.EventID,
		PagingToken:    rec.PagingToken,
		ContractID:     rec.ContractID,
		EventType:      rec.EventType.String(),
		Ledger:         rec.Ledger,
		TxHash:         rec.TxHash,
		TxOrder:        rec.TxOrder,
		Payload:        payload,
		LedgerClosedAt: rec.LedgerClosedAt,
	}
}

func fromRecordDao(dao *RecordDao) *Record {
	return &Record{
		ID:             dao.ID,
		EventID:        dao.EventID,
		PagingToken:    dao.PagingToken,
		ContractID:     dao.ContractID,
		EventType:      events.Type(dao.EventType),
		Ledger:         dao.Ledger,
		TxHash:         dao.TxHash,
		TxOrder:        dao.TxOrder,
		Payload:        dao.Payload,
		LedgerClosedAt: dao.LedgerClosedAt,
		IndexedAt:      dao.IndexedAt,
	}
}
