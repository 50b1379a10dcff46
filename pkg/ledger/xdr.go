package ledger

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/stellar/go/strkey"
	"github.com/stellar/go/xdr"
)

// Fee and sequence used for envelopes that are only ever simulated.
const (
	simulationFee    = 100
	simulationSeqNum = 0
)

var ErrUnsupportedValue = errors.New("unsupported ScVal")

// DecodeScVal decodes a base64 XDR ScVal.
func DecodeScVal(b64 string) (xdr.ScVal, error) {
	var v xdr.ScVal
	if err := xdr.SafeUnmarshalBase64(b64, &v); err != nil {
		return xdr.ScVal{}, fmt.Errorf("decode ScVal: %w", err)
	}
	return v, nil
}

// EncodeScVal encodes v as base64 XDR.
func EncodeScVal(v xdr.ScVal) (string, error) {
	return xdr.MarshalBase64(v)
}

// Symbol returns the symbol held by v.
func Symbol(v xdr.ScVal) (string, bool) {
	sym, ok := v.GetSym()
	if !ok {
		return "", false
	}
	return string(sym), true
}

// Int128 returns the signed 128-bit integer held by v.
func Int128(v xdr.ScVal) (*big.Int, bool) {
	parts, ok := v.GetI128()
	if !ok {
		return nil, false
	}
	hi := new(big.Int).Lsh(big.NewInt(int64(parts.Hi)), 64)
	return hi.Add(hi, new(big.Int).SetUint64(uint64(parts.Lo))), true
}

// Address returns the strkey (G... or C...) held by v.
func Address(v xdr.ScVal) (string, bool) {
	addr, ok := v.GetAddress()
	if !ok {
		return "", false
	}
	s, err := addr.String()
	if err != nil {
		return "", false
	}
	return s, true
}

// MapEntries returns v's map keyed by symbol or string key.
func MapEntries(v xdr.ScVal) (map[string]xdr.ScVal, bool) {
	m, ok := v.GetMap()
	if !ok || m == nil {
		return nil, false
	}
	out := make(map[string]xdr.ScVal, len(*m))
	for _, entry := range *m {
		key, ok := Symbol(entry.Key)
		if !ok {
			str, isStr := entry.Key.GetStr()
			if !isStr {
				continue
			}
			key = string(str)
		}
		out[key] = entry.Val
	}
	return out, true
}

// Native converts v into JSON friendly Go values. 128-bit integers become
// decimal strings so no precision is lost.
func Native(v xdr.ScVal) (any, error) {
	switch v.Type {
	case xdr.ScValTypeScvVoid:
		return nil, nil
	case xdr.ScValTypeScvBool:
		return v.MustB(), nil
	case xdr.ScValTypeScvU32:
		return uint32(v.MustU32()), nil
	case xdr.ScValTypeScvI32:
		return int32(v.MustI32()), nil
	case xdr.ScValTypeScvU64:
		return uint64(v.MustU64()), nil
	case xdr.ScValTypeScvI64:
		return int64(v.MustI64()), nil
	case xdr.ScValTypeScvI128:
		n, _ := Int128(v)
		return n.String(), nil
	case xdr.ScValTypeScvSymbol:
		return string(v.MustSym()), nil
	case xdr.ScValTypeScvString:
		return string(v.MustStr()), nil
	case xdr.ScValTypeScvAddress:
		s, ok := Address(v)
		if !ok {
			return nil, fmt.Errorf("%w: invalid address", ErrUnsupportedValue)
		}
		return s, nil
	case xdr.ScValTypeScvVec:
		vec, _ := v.GetVec()
		if vec == nil {
			return []any{}, nil
		}
		out := make([]any, 0, len(*vec))
		for _, item := range *vec {
			n, err := Native(item)
			if err != nil {
				return nil, err
			}
			out = append(out, n)
		}
		return out, nil
	case xdr.ScValTypeScvMap:
		entries, _ := MapEntries(v)
		out := make(map[string]any, len(entries))
		for k, item := range entries {
			n, err := Native(item)
			if err != nil {
				return nil, err
			}
			out[k] = n
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedValue, v.Type)
	}
}

// SymbolVal builds a symbol ScVal.
func SymbolVal(s string) xdr.ScVal {
	sym := xdr.ScSymbol(s)
	return xdr.ScVal{Type: xdr.ScValTypeScvSymbol, Sym: &sym}
}

// I128Val builds an i128 ScVal from n.
func I128Val(n *big.Int) xdr.ScVal {
	mask := new(big.Int).SetUint64(^uint64(0))
	lo := new(big.Int).And(n, mask).Uint64()
	hi := new(big.Int).Rsh(n, 64).Int64()
	parts := xdr.Int128Parts{Hi: xdr.Int64(hi), Lo: xdr.Uint64(lo)}
	return xdr.ScVal{Type: xdr.ScValTypeScvI128, I128: &parts}
}

// AddressVal builds an address ScVal from a G... account or C... contract strkey.
func AddressVal(address string) (xdr.ScVal, error) {
	addr, err := scAddress(address)
	if err != nil {
		return xdr.ScVal{}, err
	}
	return xdr.ScVal{Type: xdr.ScValTypeScvAddress, Address: &addr}, nil
}

// MapVal builds a map ScVal with symbol keys in the given order.
func MapVal(keys []string, vals []xdr.ScVal) xdr.ScVal {
	m := make(xdr.ScMap, 0, len(keys))
	for i, k := range keys {
		m = append(m, xdr.ScMapEntry{Key: SymbolVal(k), Val: vals[i]})
	}
	mp := &m
	return xdr.ScVal{Type: xdr.ScValTypeScvMap, Map: &mp}
}

func scAddress(address string) (xdr.ScAddress, error) {
	switch {
	case strings.HasPrefix(address, "C"):
		raw, err := strkey.Decode(strkey.VersionByteContract, address)
		if err != nil {
			return xdr.ScAddress{}, fmt.Errorf("decode contract id %q: %w", address, err)
		}
		var hash xdr.Hash
		copy(hash[:], raw)
		return xdr.ScAddress{Type: xdr.ScAddressTypeScAddressTypeContract, ContractId: &hash}, nil
	case strings.HasPrefix(address, "G"):
		accountID, err := xdr.AddressToAccountId(address)
		if err != nil {
			return xdr.ScAddress{}, fmt.Errorf("decode account id %q: %w", address, err)
		}
		return xdr.ScAddress{Type: xdr.ScAddressTypeScAddressTypeAccount, AccountId: &accountID}, nil
	default:
		return xdr.ScAddress{}, fmt.Errorf("unsupported address %q", address)
	}
}

// ContractDataKey builds the base64 LedgerKey of a contract data entry, for
// use with ReadLedgerEntries.
func ContractDataKey(contractID string, key xdr.ScVal, persistent bool) (string, error) {
	contract, err := scAddress(contractID)
	if err != nil {
		return "", err
	}
	durability := xdr.ContractDataDurabilityTemporary
	if persistent {
		durability = xdr.ContractDataDurabilityPersistent
	}
	lk := xdr.LedgerKey{
		Type: xdr.LedgerEntryTypeContractData,
		ContractData: &xdr.LedgerKeyContractData{
			Contract:   contract,
			Key:        key,
			Durability: durability,
		},
	}
	return xdr.MarshalBase64(lk)
}

// InvokeEnvelope builds an unsigned transaction envelope invoking fn on
// contractID. The result is only meant for SimulateTransaction; signing and
// submission happen elsewhere.
func InvokeEnvelope(sourceAccount, contractID, fn string, args ...xdr.ScVal) (string, error) {
	source, err := xdr.AddressToMuxedAccount(sourceAccount)
	if err != nil {
		return "", fmt.Errorf("decode source account: %w", err)
	}
	contract, err := scAddress(contractID)
	if err != nil {
		return "", err
	}

	op := xdr.Operation{
		Body: xdr.OperationBody{
			Type: xdr.OperationTypeInvokeHostFunction,
			InvokeHostFunctionOp: &xdr.InvokeHostFunctionOp{
				HostFunction: xdr.HostFunction{
					Type: xdr.HostFunctionTypeHostFunctionTypeInvokeContract,
					InvokeContract: &xdr.InvokeContractArgs{
						ContractAddress: contract,
						FunctionName:    xdr.ScSymbol(fn),
						Args:            xdr.ScVec(args),
					},
				},
			},
		},
	}

	env := xdr.TransactionEnvelope{
		Type: xdr.EnvelopeTypeEnvelopeTypeTx,
		V1: &xdr.TransactionV1Envelope{
			Tx: xdr.Transaction{
				SourceAccount: source,
				Fee:           simulationFee,
				SeqNum:        simulationSeqNum,
				Cond:          xdr.Preconditions{Type: xdr.PreconditionTypePrecondNone},
				Memo:          xdr.Memo{Type: xdr.MemoTypeMemoNone},
				Operations:    []xdr.Operation{op},
			},
		},
	}
	return xdr.MarshalBase64(env)
}
