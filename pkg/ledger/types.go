package ledger

import "time"

// Event is a contract event as returned by getEvents. Topic and Value hold
// base64 XDR encoded ScVal values.
type Event struct {
	Type                     string    `json:"type"`
	Ledger                   int64     `json:"ledger"`
	LedgerClosedAt           time.Time `json:"ledgerClosedAt"`
	ContractID               string    `json:"contractId"`
	ID                       string    `json:"id"`
	PagingToken              string    `json:"pagingToken"`
	Topic                    []string  `json:"topic"`
	Value                    string    `json:"value"`
	InSuccessfulContractCall bool      `json:"inSuccessfulContractCall"`
	TxHash                   string    `json:"txHash"`
}

// EventPage is what one GetEvents call collected.
type EventPage struct {
	Events []Event
	// LatestLedger is the node's latest ledger when the scan ended.
	LatestLedger int64
	// Truncated is set when the page cap stopped the scan before the node ran
	// out of events. The last ledger in Events may then be incomplete.
	Truncated bool
}

// LatestLedger is the getLatestLedger result.
type LatestLedger struct {
	ID              string `json:"id"`
	ProtocolVersion int    `json:"protocolVersion"`
	Sequence        int64  `json:"sequence"`
}

// LedgerEntry is one getLedgerEntries result row.
type LedgerEntry struct {
	Key                   string `json:"key"`
	XDR                   string `json:"xdr"`
	LastModifiedLedgerSeq int64  `json:"lastModifiedLedgerSeq"`
	LiveUntilLedgerSeq    *int64 `json:"liveUntilLedgerSeq,omitempty"`
}

// SendResult is the sendTransaction result.
type SendResult struct {
	Status                string `json:"status"`
	Hash                  string `json:"hash"`
	LatestLedger          int64  `json:"latestLedger"`
	LatestLedgerCloseTime string `json:"latestLedgerCloseTime"`
	ErrorResultXDR        string `json:"errorResultXdr,omitempty"`
}

// SimulateHostFunctionResult carries the return value of a simulated call.
type SimulateHostFunctionResult struct {
	XDR  string   `json:"xdr"`
	Auth []string `json:"auth"`
}

// SimulateResult is the simulateTransaction result.
type SimulateResult struct {
	LatestLedger    int64                        `json:"latestLedger"`
	MinResourceFee  string                       `json:"minResourceFee,omitempty"`
	Results         []SimulateHostFunctionResult `json:"results,omitempty"`
	TransactionData string                       `json:"transactionData,omitempty"`
	Error           string                       `json:"error,omitempty"`
}

// Health is the getHealth result.
type Health struct {
	Status                string `json:"status"`
	LatestLedger          int64  `json:"latestLedger"`
	OldestLedger          int64  `json:"oldestLedger"`
	LedgerRetentionWindow int64  `json:"ledgerRetentionWindow"`
}

// Send statuses reported by sendTransaction.
const (
	SendStatusPending       = "PENDING"
	SendStatusDuplicate     = "DUPLICATE"
	SendStatusTryAgainLater = "TRY_AGAIN_LATER"
	SendStatusError         = "ERROR"
)

// HealthStatusHealthy is the status a serving node reports.
const HealthStatusHealthy = "healthy"
