package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/chainsafe/oracle-indexer/pkg/retry"
)

// RPC is the raw node API. Implementations report structural failures with
// retry.Permanent so the Gateway does not spend attempts on them.
//
//go:generate mockery --name RPC --output mocks --outpkg mocks --filename mock_rpc.go --with-expecter
type RPC interface {
	GetEvents(ctx context.Context, contractID string, startLedger int64) (*EventPage, error)
	GetLatestLedger(ctx context.Context) (*LatestLedger, error)
	GetLedgerEntries(ctx context.Context, keys []string) ([]LedgerEntry, error)
	SendTransaction(ctx context.Context, envelopeXDR string) (*SendResult, error)
	SimulateTransaction(ctx context.Context, envelopeXDR string) (*SimulateResult, error)
	GetHealth(ctx context.Context) (*Health, error)
}

var (
	// ErrTryAgainLater is returned when the node asks for a resubmission.
	ErrTryAgainLater = errors.New("node asked to try again later")
	// ErrTransactionRejected is returned when the node refuses a transaction.
	ErrTransactionRejected = errors.New("transaction rejected")
	// ErrSimulationFailed is returned when a simulation reports an error.
	ErrSimulationFailed = errors.New("simulation failed")
)

// Gateway is the only path to the node: every call goes through the retry
// policy, so callers never retry on their own.
type Gateway struct {
	rpc    RPC
	policy retry.Policy
}

// NewGateway wraps rpc with policy.
func NewGateway(rpc RPC, policy retry.Policy) *Gateway {
	return &Gateway{rpc: rpc, policy: policy}
}

// FetchEvents returns contract events starting at startLedger.
func (g *Gateway) FetchEvents(ctx context.Context, contractID string, startLedger int64) (*EventPage, error) {
	return retry.Do(ctx, g.policy, fmt.Sprintf("fetchEvents(%s)", contractID),
		func(ctx context.Context) (*EventPage, error) {
			return g.rpc.GetEvents(ctx, contractID, startLedger)
		})
}

// LatestLedger returns the latest ledger sequence.
func (g *Gateway) LatestLedger(ctx context.Context) (int64, error) {
	latest, err := retry.Do(ctx, g.policy, "getLatestLedger", g.rpc.GetLatestLedger)
	if err != nil {
		return 0, err
	}
	return latest.Sequence, nil
}

// ReadLedgerEntries reads ledger entries by base64 LedgerKey.
func (g *Gateway) ReadLedgerEntries(ctx context.Context, keys ...string) ([]LedgerEntry, error) {
	return retry.Do(ctx, g.policy, "readLedgerEntries",
		func(ctx context.Context) ([]LedgerEntry, error) {
			return g.rpc.GetLedgerEntries(ctx, keys)
		})
}

// SubmitTransaction submits an already signed envelope. TRY_AGAIN_LATER is
// retried, ERROR is returned immediately.
func (g *Gateway) SubmitTransaction(ctx context.Context, envelopeXDR string) (*SendResult, error) {
	return retry.Do(ctx, g.policy, "submitTransaction",
		func(ctx context.Context) (*SendResult, error) {
			res, err := g.rpc.SendTransaction(ctx, envelopeXDR)
			if err != nil {
				return nil, err
			}
			switch res.Status {
			case SendStatusTryAgainLater:
				return nil, ErrTryAgainLater
			case SendStatusError:
				return res, retry.Permanent(fmt.Errorf("%w: %s", ErrTransactionRejected, res.Hash))
			}
			return res, nil
		})
}

// Simulate runs a read-only simulation of envelopeXDR. A simulation error is
// a contract-level answer and is not retried.
func (g *Gateway) Simulate(ctx context.Context, envelopeXDR string) (*SimulateResult, error) {
	return retry.Do(ctx, g.policy, "simulateTransaction",
		func(ctx context.Context) (*SimulateResult, error) {
			res, err := g.rpc.SimulateTransaction(ctx, envelopeXDR)
			if err != nil {
				return nil, err
			}
			if res.Error != "" {
				return res, retry.Permanent(fmt.Errorf("%w: %s", ErrSimulationFailed, res.Error))
			}
			return res, nil
		})
}

// Health asks the node for its status with getHealth.
func (g *Gateway) Health(ctx context.Context) (*Health, error) {
	return retry.Do(ctx, g.policy, "getHealth", g.rpc.GetHealth)
}
