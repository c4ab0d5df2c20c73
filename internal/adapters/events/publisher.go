// Package events publishes committed mutations to an AMQP exchange.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

// AMQPPublisher sends ChangeEvents to a durable direct exchange, routed by entity.
type AMQPPublisher struct {
	conn         *amqp091.Connection
	channel      *amqp091.Channel
	exchangeName string
	mu           sync.Mutex
}

var _ portssvc.ChangePublisher = (*AMQPPublisher)(nil)

// NewAMQPPublisher dials url and declares the exchange.
func NewAMQPPublisher(url, exchangeName string) (*AMQPPublisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchangeName, // name
		"direct",     // type
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &AMQPPublisher{conn: conn, channel: channel, exchangeName: exchangeName}, nil
}

// Publish sends one event. The routing key is the event's entity.
func (p *AMQPPublisher) Publish(ctx context.Context, event domain.ChangeEvent) error {
	msg, err := NewPublishing(event)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	p.mu.Lock()
	defer p.mu.Unlock()
	err = p.channel.PublishWithContext(
		ctx,
		p.exchangeName,       // exchange
		string(event.Entity), // routing key
		false,                // mandatory
		false,                // immediate
		msg,
	)
	if err != nil {
		return fmt.Errorf("publish change event: %w", err)
	}

	slog.DebugContext(ctx, "Published change event",
		"entity", event.Entity,
		"op", event.Op,
		"exchange", p.exchangeName)
	return nil
}

// Close releases the channel and connection.
func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// NewPublishing encodes event as a persistent JSON message.
func NewPublishing(event domain.ChangeEvent) (amqp091.Publishing, error) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	body, err := json.Marshal(event)
	if err != nil {
		return amqp091.Publishing{}, fmt.Errorf("marshal change event: %w", err)
	}
	return amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		Timestamp:    event.Timestamp,
		Type:         string(event.Entity) + "." + string(event.Op),
		Body:         body,
	}, nil
}

// NoopPublisher discards events. It is used when no broker is configured.
type NoopPublisher struct{}

var _ portssvc.ChangePublisher = NoopPublisher{}

func (NoopPublisher) Publish(context.Context, domain.ChangeEvent) error { return nil }
