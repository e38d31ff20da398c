package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

// StateChanged is published after a merged consumption record has been persisted.
type StateChanged struct {
	EventID   string         `json:"event_id"`
	UserID    string         `json:"user_id"`
	ContentID string         `json:"content_id"`
	Record    map[string]any `json:"record"`
	Timestamp time.Time      `json:"timestamp"`
}

// Publisher publishes state change events.
type Publisher interface {
	Publish(ctx context.Context, evt StateChanged) error
	Close()
}

// NATSPublisher publishes events on a core NATS subject.
type NATSPublisher struct {
	conn    *nats.Conn
	subject string
	log     *zap.Logger
}

// New connects to NATS when cfg.NatsURL is set. Without a URL it returns a no-op publisher.
func New(cfg Config, log *zap.Logger) (Publisher, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.NatsURL == "" {
		log.Debug("NATS URL not set, state change events will not be published")
		return Noop{}, nil
	}

	wait := time.Duration(cfg.ReconnectWaitSeconds) * time.Second
	if wait <= 0 {
		wait = 2 * time.Second
	}

	nc, err := nats.Connect(cfg.NatsURL,
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(wait),
		nats.RetryOnFailedConnect(false),
	)
	if err != nil {
		return nil, fmt.Errorf("nats connect %s (max_reconnects=%d, wait=%s): %w",
			cfg.NatsURL, cfg.MaxReconnects, wait, err)
	}

	subject := cfg.Subject
	if subject == "" {
		subject = "content.state.updated"
	}

	log.Info("NATS publisher initialised", zap.String("subject", subject))
	return &NATSPublisher{conn: nc, subject: subject, log: log}, nil
}

// Publish sends evt as JSON.
func (p *NATSPublisher) Publish(_ context.Context, evt StateChanged) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}
	if err := p.conn.Publish(p.subject, data); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	p.log.Debug("State change published",
		zap.String("subject", p.subject),
		zap.String("event_id", evt.EventID),
	)
	return nil
}

// Close drains the connection.
func (p *NATSPublisher) Close() {
	if err := p.conn.Drain(); err != nil {
		p.conn.Close()
	}
}

// Noop discards every event.
type Noop struct{}

// Publish does nothing.
func (Noop) Publish(context.Context, StateChanged) error { return nil }

// Close does nothing.
func (Noop) Close() {}
