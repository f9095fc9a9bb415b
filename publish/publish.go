// Package publish sends finished Turtle documents to a NATS subject so that
// downstream graph consumers can pick them up. The file artifact remains
// authoritative; publication is best-effort on top of it.
package publish

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

// Publisher holds a NATS connection bound to one subject.
type Publisher struct {
	nc      *nats.Conn
	subject string
}

// New connects to the NATS server at url.
func New(url, subject string) (*Publisher, error) {
	if subject == "" {
		return nil, fmt.Errorf("publish subject is required")
	}
	nc, err := nats.Connect(url, nats.Name("ecrdf"))
	if err != nil {
		return nil, fmt.Errorf("connect to nats: %w", err)
	}
	return &Publisher{nc: nc, subject: subject}, nil
}

// PublishDocument sends one complete Turtle document with a fresh message
// id header and flushes the connection.
func (p *Publisher) PublishDocument(ctx context.Context, data []byte) error {
	msg := nats.NewMsg(p.subject)
	msg.Header.Set("Nats-Msg-Id", uuid.NewString())
	msg.Data = data

	if err := p.nc.PublishMsg(msg); err != nil {
		return fmt.Errorf("publish turtle document: %w", err)
	}
	if err := p.nc.FlushWithContext(ctx); err != nil {
		return fmt.Errorf("flush nats connection: %w", err)
	}
	return nil
}

// Close drains the connection.
func (p *Publisher) Close() error {
	return p.nc.Drain()
}
