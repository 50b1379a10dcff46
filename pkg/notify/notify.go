// Package notify publishes market state changes for downstream consumers.
// Delivery is best effort: consumers that need certainty read the calls table.
package notify

import (
	"context"
	"time"
)

// Kind names a market state change.
type Kind string

const (
	KindPaused   Kind = "paused"
	KindUnpaused Kind = "unpaused"
	KindResolved Kind = "resolved"
)

// Message is the JSON body published for a state change.
type Message struct {
	Kind        Kind      `json:"kind"`
	CallID      int64     `json:"callId"`
	Status      string    `json:"status"`
	ReportCount int       `json:"reportCount"`
	FinalPrice  *string   `json:"finalPrice,omitempty"`
	Forced      bool      `json:"forced,omitempty"`
	OccurredAt  time.Time `json:"occurredAt"`
}

// Publisher sends messages.
//
//go:generate mockery --name Publisher --output mocks --outpkg mocks --filename mock_publisher.go --with-expecter
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
}

// Nop discards every message.
type Nop struct{}

func (Nop) Publish(context.Context, Message) error { return nil }
