package events

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/stellar/go/xdr"

	"github.com/chainsafe/oracle-indexer/pkg/ledger"
)

var (
	// ErrUnknownEvent marks an event whose discriminator is not recognised.
	// Callers skip it.
	ErrUnknownEvent = errors.New("unknown event")
	// ErrMalformedEvent marks a recognised event whose payload does not decode.
	ErrMalformedEvent = errors.New("malformed event")
)

type decodeFunc func(raw ledger.Event, value xdr.ScVal) (any, error)

var decoders = map[Type]decodeFunc{
	TypeAdminParamsChanged: decodeAdminParamsChanged,
}

// Decode converts raw into an Event. It returns an error wrapping
// ErrUnknownEvent when the first topic is not a known symbol and one wrapping
// ErrMalformedEvent when the payload cannot be decoded.
func Decode(raw ledger.Event) (*Event, error) {
	typ, err := discriminator(raw.Topic)
	if err != nil {
		return nil, err
	}
	if raw.Ledger <= 0 {
		return nil, fmt.Errorf("%w: %s: ledger %d is not positive", ErrMalformedEvent, typ, raw.Ledger)
	}

	value, err := ledger.DecodeScVal(raw.Value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedEvent, typ, err)
	}
	native, err := ledger.Native(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedEvent, typ, err)
	}
	payload, ok := native.(map[string]any)
	if !ok {
		payload = map[string]any{"value": native}
	}

	data, err := decoders[typ](raw, value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedEvent, typ, err)
	}

	order := eventIndex(raw.ID)
	return &Event{
		ID:             EventID(raw.TxHash, raw.ID, order),
		PagingToken:    raw.PagingToken,
		ContractID:     raw.ContractID,
		Type:           typ,
		Ledger:         raw.Ledger,
		TxHash:         raw.TxHash,
		TxOrder:        order,
		LedgerClosedAt: raw.LedgerClosedAt,
		Payload:        payload,
		Data:           data,
	}, nil
}

func discriminator(topics []string) (Type, error) {
	if len(topics) == 0 {
		return "", fmt.Errorf("%w: no topics", ErrUnknownEvent)
	}
	first, err := ledger.DecodeScVal(topics[0])
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnknownEvent, err)
	}
	sym, ok := ledger.Symbol(first)
	if !ok {
		return "", fmt.Errorf("%w: first topic is %s, not a symbol", ErrUnknownEvent, first.Type)
	}
	typ, ok := ParseType(sym)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownEvent, sym)
	}
	return typ, nil
}

// EventID derives the log identity of an event. Several events emitted by one
// transaction differ by their index.
func EventID(txHash, rpcID string, index int) string {
	if txHash == "" {
		return rpcID
	}
	return txHash + "-" + strconv.Itoa(index)
}

// eventIndex extracts the in-transaction index from an RPC event id of the
// form "<toid>-<index>".
func eventIndex(rpcID string) int {
	i := strings.LastIndexByte(rpcID, '-')
	if i < 0 {
		return 0
	}
	n, err := strconv.Atoi(rpcID[i+1:])
	if err != nil {
		return 0
	}
	return n
}

func decodeAdminParamsChanged(raw ledger.Event, value xdr.ScVal) (any, error) {
	fields, ok := ledger.MapEntries(value)
	if !ok {
		return nil, fmt.Errorf("payload is %s, not a map", value.Type)
	}

	ev := &AdminParamsChanged{TxHash: raw.TxHash, Ledger: raw.Ledger}

	if v, ok := fields["fee_percent"]; ok {
		bp, ok := ledger.Int128(v)
		if !ok {
			return nil, fmt.Errorf("fee_percent is %s, not i128", v.Type)
		}
		// basis points, 150 = 1.50%. The range is enforced where the fee is applied.
		ev.FeePercent = Some(decimal.NewFromBigInt(bp, -2))
	}

	for key, dst := range map[string]*Optional[string]{
		"contract_id":        &ev.ContractID,
		"oracle_contract_id": &ev.OracleContractID,
	} {
		v, ok := fields[key]
		if !ok {
			continue
		}
		s, err := addressOrString(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		*dst = Some(s)
	}

	return ev, nil
}

func addressOrString(v xdr.ScVal) (string, error) {
	if addr, ok := ledger.Address(v); ok {
		return addr, nil
	}
	if s, ok := v.GetStr(); ok {
		return string(s), nil
	}
	return "", fmt.Errorf("expected address, got %s", v.Type)
}
