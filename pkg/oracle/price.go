package oracle

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
	"github.com/stellar/go/xdr"

	"github.com/chainsafe/oracle-indexer/pkg/ledger"
)

// ErrNoPrice is returned when the oracle answers without a usable price.
var ErrNoPrice = errors.New("oracle returned no price")

// maxPrice bounds prices to what final_price numeric(20,8) stores.
var maxPrice = decimal.New(1, 12)

// Simulator runs read-only contract calls. *ledger.Gateway implements it.
type Simulator interface {
	Simulate(ctx context.Context, envelopeXDR string) (*ledger.SimulateResult, error)
}

// PriceSource returns the current price of an asset symbol.
//
//go:generate mockery --name PriceSource --output mocks --outpkg mocks --filename mock_price_source.go --with-expecter
type PriceSource interface {
	Price(ctx context.Context, asset string) (decimal.Decimal, error)
}

// PriceFetcher reads prices from the oracle contract's lastprice function.
type PriceFetcher struct {
	sim        Simulator
	contractID string
	source     string
	decimals   int32
}

// NewPriceFetcher creates a fetcher for contractID. source is any existing
// account used as the simulation envelope source; decimals is the fixed point
// scale of the returned i128.
func NewPriceFetcher(sim Simulator, contractID, source string, decimals int32) *PriceFetcher {
	return &PriceFetcher{
		sim:        sim,
		contractID: contractID,
		source:     source,
		decimals:   decimals,
	}
}

// Price simulates lastprice(Symbol(asset)).
func (p *PriceFetcher) Price(ctx context.Context, asset string) (decimal.Decimal, error) {
	env, err := ledger.InvokeEnvelope(p.source, p.contractID, "lastprice", ledger.SymbolVal(asset))
	if err != nil {
		return decimal.Zero, fmt.Errorf("build lastprice(%s): %w", asset, err)
	}

	res, err := p.sim.Simulate(ctx, env)
	if err != nil {
		return decimal.Zero, fmt.Errorf("simulate lastprice(%s): %w", asset, err)
	}
	if len(res.Results) == 0 || res.Results[0].XDR == "" {
		return decimal.Zero, fmt.Errorf("%w for %s", ErrNoPrice, asset)
	}

	val, err := ledger.DecodeScVal(res.Results[0].XDR)
	if err != nil {
		return decimal.Zero, fmt.Errorf("decode lastprice(%s): %w", asset, err)
	}
	raw, err := rawPrice(val)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w for %s: %w", ErrNoPrice, asset, err)
	}
	price := decimal.NewFromBigInt(raw, -p.decimals)
	if price.Abs().GreaterThanOrEqual(maxPrice) {
		return decimal.Zero, fmt.Errorf("%w for %s: %s does not fit numeric(20,8), check asset_decimals (%d)",
			ErrNoPrice, asset, price, p.decimals)
	}
	return price, nil
}

// rawPrice accepts a bare i128 or a PriceData style map with a price field.
func rawPrice(v xdr.ScVal) (*big.Int, error) {
	if n, ok := ledger.Int128(v); ok {
		return n, nil
	}
	if entries, ok := ledger.MapEntries(v); ok {
		if pv, ok := entries["price"]; ok {
			if n, ok := ledger.Int128(pv); ok {
				return n, nil
			}
		}
		return nil, errors.New("map without i128 price")
	}
	return nil, fmt.Errorf("unexpected value type %s", v.Type)
}
