// Package events turns raw ledger contract events into typed domain events.
package events

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Type is the symbolic discriminator carried in an event's first topic.
type Type string

const (
	TypeAdminParamsChanged Type = "AdminParamsChanged"
)

func (t Type) String() string { return string(t) }

// ParseType returns the Type named s, or false when s is not recognised.
func ParseType(s string) (Type, bool) {
	t := Type(s)
	if _, ok := decoders[t]; !ok {
		return "", false
	}
	return t, true
}

// KnownTypes lists every recognised discriminator.
func KnownTypes() []Type {
	return []Type{TypeAdminParamsChanged}
}

// Optional is a patch value: it tells an absent field apart from a field
// that is present with its zero value.
type Optional[T any] struct {
	value T
	set   bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it was present.
func (o Optional[T]) Get() (T, bool) { return o.value, o.set }

// IsSet reports whether the value was present.
func (o Optional[T]) IsSet() bool { return o.set }

// MarshalJSON encodes an absent value as null.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// AdminParamsChanged is emitted when the contract admin changes platform
// parameters. Every business field is optional; the contract may emit
// partial updates.
type AdminParamsChanged struct {
	FeePercent       Optional[decimal.Decimal] `json:"feePercent"`
	ContractID       Optional[string]          `json:"contractId"`
	OracleContractID Optional[string]          `json:"oracleContractId"`
	TxHash           string                    `json:"txHash"`
	Ledger           int64                     `json:"ledger"`
}

// Event is a decoded contract event ready for projection and logging.
type Event struct {
	ID             string
	PagingToken    string
	ContractID     string
	Type           Type
	Ledger         int64
	TxHash         string
	TxOrder        int
	LedgerClosedAt time.Time
	Payload        map[string]any
	// Data holds the typed event, e.g. *AdminParamsChanged.
	Data any
}
