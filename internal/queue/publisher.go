package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Publisher sends TicketPurchasedEvent messages to RabbitMQ.  Each
// publish opens its own connection; checkout volume is low and this keeps
// the publisher free of reconnect state.
type Publisher struct {
	url string
	log *zap.Logger
}

// NewPublisher returns a Publisher for the broker at url.
func NewPublisher(url string, log *zap.Logger) *Publisher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Publisher{url: url, log: log}
}

// PublishTicketPurchased publishes ev to the ticket.purchased queue as a
// persistent message.  Errors are logged and returned so the caller can
// choose to ignore them.
func (p *Publisher) PublishTicketPurchased(ctx context.Context, ev TicketPurchasedEvent) error {
	if err := p.publish(ctx, ev); err != nil {
		p.log.Warn("publish ticket event failed", zap.String("ticket_id", ev.TicketID), zap.Error(err))
		return err
	}
	return nil
}

func (p *Publisher) publish(ctx context.Context, ev TicketPurchasedEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	// idempotent; durable so messages survive broker restarts
	if _, err := ch.QueueDeclare(TicketQueueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}

	return ch.PublishWithContext(ctx,
		"",              // default exchange
		TicketQueueName, // routing key = queue name
		false,           // mandatory
		false,           // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
}
