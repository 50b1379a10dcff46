package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/chainsafe/oracle-indexer/pkg/config"
)

type conn interface {
	Publish(subject string, data []byte) error
}

// NATSPublisher publishes messages on <prefix>.<kind>.
type NATSPublisher struct {
	conn   conn
	nc     *nats.Conn
	prefix string
	logger *zap.Logger
}

// Connect dials the NATS server described by cfg.
func Connect(cfg *config.NATSConfig, logger *zap.Logger) (*NATSPublisher, error) {
	nc, err := nats.Connect(cfg.URL,
		nats.Name(cfg.Name),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			logger.Warn("NATS disconnected", zap.Error(err))
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info("NATS reconnected", zap.String("url", c.ConnectedUrl()))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}

	p := newPublisher(nc, cfg.SubjectPrefix, logger)
	p.nc = nc
	return p, nil
}

func newPublisher(c conn, prefix string, logger *zap.Logger) *NATSPublisher {
	return &NATSPublisher{
		conn:   c,
		prefix: prefix,
		logger: logger,
	}
}

// Subject returns the subject msg is published on.
func (p *NATSPublisher) Subject(kind Kind) string {
	return p.prefix + "." + string(kind)
}

func (p *NATSPublisher) Publish(_ context.Context, msg Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}
	subject := p.Subject(msg.Kind)
	if err := p.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}
	p.logger.Debug("Notification published",
		zap.String("subject", subject),
		zap.Int64("call_id", msg.CallID),
	)
	return nil
}

// Close flushes pending messages and closes the connection.
func (p *NATSPublisher) Close() error {
	if p.nc == nil {
		return nil
	}
	return p.nc.Drain()
}
