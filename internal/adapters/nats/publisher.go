package natsadapter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/samirrijal/fuelcalc/internal/core/domain"
	"github.com/samirrijal/fuelcalc/internal/pkg/metrics"
)

const (
	// EstimateStream holds every published estimate for replay.
	EstimateStream = "FUEL_ESTIMATES"
	// EstimateSubjectPrefix is followed by the estimate kind.
	EstimateSubjectPrefix = "fuel.estimate."
)

// EstimateSubject returns the subject an estimate of the given kind is published on.
func EstimateSubject(kind domain.EstimateKind) string {
	return EstimateSubjectPrefix + string(kind)
}

// Publisher implements ports.EventPublisher using NATS JetStream.
type Publisher struct {
	conn *nats.Conn
	js   nats.JetStreamContext
}

// NewPublisher connects to NATS and enables JetStream.
func NewPublisher(url string) (*Publisher, error) {
	conn, err := RawConn(url)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}

	js, err := conn.JetStream()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("jetstream: %w", err)
	}

	cfg := &nats.StreamConfig{
		Name:      EstimateStream,
		Subjects:  []string{EstimateSubjectPrefix + ">"},
		Retention: nats.LimitsPolicy,
		MaxAge:    24 * time.Hour,
		Storage:   nats.FileStorage,
	}
	if _, err := js.AddStream(cfg); err != nil {
		// Stream may already exist; try update
		if _, err := js.UpdateStream(cfg); err != nil {
			conn.Close()
			return nil, fmt.Errorf("ensure stream %s: %w", cfg.Name, err)
		}
	}

	return &Publisher{conn: conn, js: js}, nil
}

// PublishEstimate publishes the event on fuel.estimate.<kind>.
func (p *Publisher) PublishEstimate(ctx context.Context, event *domain.EstimateEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	if _, err := p.js.Publish(EstimateSubject(event.Kind), data, nats.Context(ctx)); err != nil {
		metrics.EventsPublished.WithLabelValues(string(event.Kind), "error").Inc()
		return fmt.Errorf("publish %s: %w", event.Kind, err)
	}
	metrics.EventsPublished.WithLabelValues(string(event.Kind), "ok").Inc()
	return nil
}

// Close drains and closes the connection.
func (p *Publisher) Close() {
	_ = p.conn.Drain()
}

// RawConn creates a plain NATS connection for subscribing (e.g. WebSocket relay).
func RawConn(url string) (*nats.Conn, error) {
	return nats.Connect(url,
		nats.Name("fuelcalc"),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
}
