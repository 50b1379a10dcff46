package events

import (
	"encoding/json"
	"math/big"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stellar/go/strkey"
	"github.com/stellar/go/xdr"
	"github.com/stretchr/testify/require"

	"github.com/chainsafe/oracle-indexer/pkg/ledger"
)

func contractID(t *testing.T, fill byte) string {
	t.Helper()
	raw := make([]byte, 32)
	for i := range raw {
		raw[i] = fill
	}
	id, err := strkey.Encode(strkey.VersionByteContract, raw)
	require.NoError(t, err)
	return id
}

func encode(t *testing.T, v xdr.ScVal) string {
	t.Helper()
	s, err := ledger.EncodeScVal(v)
	require.NoError(t, err)
	return s
}

func rawEvent(t *testing.T, topic xdr.ScVal, value xdr.ScVal) ledger.Event {
	t.Helper()
	return ledger.Event{
		Type:           "contract",
		Ledger:         4242,
		LedgerClosedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		ContractID:     "CPLATFORM",
		ID:             "0018218120045846528-0000000002",
		PagingToken:    "0018218120045846528-0000000002",
		Topic:          []string{encode(t, topic), encode(t, ledger.SymbolVal("fee_percent"))},
		Value:          encode(t, value),
		TxHash:         "abc123",
	}
}

func TestDecode_AdminParamsChanged_AllFields(t *testing.T) {
	platform := contractID(t, 1)
	oracle := contractID(t, 2)
	platformAddr, err := ledger.AddressVal(platform)
	require.NoError(t, err)
	oracleAddr, err := ledger.AddressVal(oracle)
	require.NoError(t, err)

	raw := rawEvent(t, ledger.SymbolVal("AdminParamsChanged"), ledger.MapVal(
		[]string{"contract_id", "fee_percent", "oracle_contract_id"},
		[]xdr.ScVal{platformAddr, ledger.I128Val(big.NewInt(150)), oracleAddr},
	))

	ev, err := Decode(raw)
	require.NoError(t, err)
	require.Equal(t, TypeAdminParamsChanged, ev.Type)
	require.Equal(t, "abc123-2", ev.ID)
	require.Equal(t, 2, ev.TxOrder)
	require.Equal(t, int64(4242), ev.Ledger)
	require.Equal(t, "150", ev.Payload["fee_percent"])

	data, ok := ev.Data.(*AdminParamsChanged)
	require.True(t, ok)

	fee, ok := data.FeePercent.Get()
	require.True(t, ok)
	require.True(t, fee.Equal(decimal.RequireFromString("1.5")), "got %s", fee)

	got, ok := data.ContractID.Get()
	require.True(t, ok)
	require.Equal(t, platform, got)

	got, ok = data.OracleContractID.Get()
	require.True(t, ok)
	require.Equal(t, oracle, got)
	require.Equal(t, "abc123", data.TxHash)
}

func TestDecode_AdminParamsChanged_PartialPatch(t *testing.T) {
	raw := rawEvent(t, ledger.SymbolVal("AdminParamsChanged"), ledger.MapVal(
		[]string{"fee_percent"},
		[]xdr.ScVal{ledger.I128Val(big.NewInt(0))},
	))

	ev, err := Decode(raw)
	require.NoError(t, err)

	data := ev.Data.(*AdminParamsChanged)
	fee, ok := data.FeePercent.Get()
	require.True(t, ok, "zero fee is present, not absent")
	require.True(t, fee.IsZero())
	require.False(t, data.ContractID.IsSet())
	require.False(t, data.OracleContractID.IsSet())

	out, err := json.Marshal(data)
	require.NoError(t, err)
	require.JSONEq(t, `{"feePercent":"0","contractId":null,"oracleContractId":null,"txHash":"abc123","ledger":4242}`, string(out))
}

func TestDecode_UnknownEvents(t *testing.T) {
	cases := map[string]ledger.Event{
		"unrecognised symbol": rawEvent(t, ledger.SymbolVal("MarketCreated"), ledger.MapVal(nil, nil)),
		"non-symbol topic":    rawEvent(t, ledger.I128Val(big.NewInt(7)), ledger.MapVal(nil, nil)),
		"no topics": func() ledger.Event {
			e := rawEvent(t, ledger.SymbolVal("AdminParamsChanged"), ledger.MapVal(nil, nil))
			e.Topic = nil
			return e
		}(),
		"undecodable topic": func() ledger.Event {
			e := rawEvent(t, ledger.SymbolVal("AdminParamsChanged"), ledger.MapVal(nil, nil))
			e.Topic = []string{"!!not-base64!!"}
			return e
		}(),
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(raw)
			require.ErrorIs(t, err, ErrUnknownEvent)
			require.NotErrorIs(t, err, ErrMalformedEvent)
		})
	}
}

func TestDecode_MalformedEvents(t *testing.T) {
	topic := ledger.SymbolVal("AdminParamsChanged")
	cases := map[string]ledger.Event{
		"payload not a map": rawEvent(t, topic, ledger.I128Val(big.NewInt(1))),
		"fee not an integer": rawEvent(t, topic, ledger.MapVal(
			[]string{"fee_percent"}, []xdr.ScVal{ledger.SymbolVal("high")},
		)),
		"contract id not an address": rawEvent(t, topic, ledger.MapVal(
			[]string{"contract_id"}, []xdr.ScVal{ledger.I128Val(big.NewInt(5))},
		)),
		"undecodable value": func() ledger.Event {
			e := rawEvent(t, topic, ledger.MapVal(nil, nil))
			e.Value = "AAAA////"
			return e
		}(),
		"non-positive ledger": func() ledger.Event {
			e := rawEvent(t, topic, ledger.MapVal(nil, nil))
			e.Ledger = 0
			return e
		}(),
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(raw)
			require.ErrorIs(t, err, ErrMalformedEvent)
		})
	}
}

func TestDecode_FeeIsNotRangeChecked(t *testing.T) {
	for bp, want := range map[int64]string{10000: "100", 10001: "100.01", -5: "-0.05"} {
		raw := rawEvent(t, ledger.SymbolVal("AdminParamsChanged"), ledger.MapVal(
			[]string{"fee_percent"}, []xdr.ScVal{ledger.I128Val(big.NewInt(bp))},
		))
		ev, err := Decode(raw)
		require.NoError(t, err)

		fee, ok := ev.Data.(*AdminParamsChanged).FeePercent.Get()
		require.True(t, ok)
		require.True(t, fee.Equal(decimal.RequireFromString(want)), "bp %d decoded as %s", bp, fee)
	}
}

func TestEventID(t *testing.T) {
	require.Equal(t, "tx-0", EventID("tx", "123-0", 0))
	require.Equal(t, "123-4", EventID("", "123-4", 4))
	require.Equal(t, 7, eventIndex("0000000001-0000000007"))
	require.Equal(t, 0, eventIndex("garbage"))
}

func TestParseType(t *testing.T) {
	typ, ok := ParseType("AdminParamsChanged")
	require.True(t, ok)
	require.Equal(t, TypeAdminParamsChanged, typ)

	_, ok = ParseType("adminparamschanged")
	require.False(t, ok)
}
