package nats

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/sathvik89/Taskease/domain/ports"
	"github.com/sathvik89/Taskease/pkg/logger"
)

// streamPublisher is the part of jetstream.JetStream the publisher uses.
type streamPublisher interface {
	Publish(ctx context.Context, subject string, payload []byte, opts ...jetstream.PublishOpt) (*jetstream.PubAck, error)
}

// DefaultPublishTimeout caps how long a request waits for a stream ack.
const DefaultPublishTimeout = 2 * time.Second

// Publisher sends task events to JetStream.
type Publisher struct {
	js      streamPublisher
	timeout time.Duration
}

var _ ports.TaskEventPublisherPort = (*Publisher)(nil)

func NewPublisher(client *Client) *Publisher {
	return &Publisher{js: client.js, timeout: DefaultPublishTimeout}
}

func (p *Publisher) PublishTaskEvent(ctx context.Context, event *ports.TaskEvent) error {
	subject, data, err := encodeEvent(event)
	if err != nil {
		return err
	}

	timeout := p.timeout
	if timeout <= 0 {
		timeout = DefaultPublishTimeout
	}
	pubCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ack, err := p.js.Publish(pubCtx, subject, data)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to publish task event",
			"subject", subject,
			"task_id", event.TaskID,
			"error", err,
		)
		return fmt.Errorf("failed to publish task event: %w", err)
	}

	logger.DebugContext(ctx, "Task event published",
		"subject", subject,
		"task_id", event.TaskID,
		"stream", ack.Stream,
		"sequence", ack.Sequence,
	)
	return nil
}

// NoopPublisher drops every event. Used when NATS is not configured.
type NoopPublisher struct{}

var _ ports.TaskEventPublisherPort = NoopPublisher{}

func (NoopPublisher) PublishTaskEvent(context.Context, *ports.TaskEvent) error {
	return nil
}
