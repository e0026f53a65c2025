// Package mail implements the outbound mail collaborators. Production
// dispatch enqueues messages on RabbitMQ for a delivery worker; without a
// broker the log dispatcher stands in.
package mail

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

// Message is the envelope placed on the mail queue.
type Message struct {
	Recipient string            `json:"recipient"`
	Template  string            `json:"template"`
	Data      map[string]string `json:"data"`
}

// QueueDispatcher publishes mail messages to a durable RabbitMQ queue.
// Publishes go through a circuit breaker so a dead broker fails fast, and
// are paced so a burst of recovery requests cannot flood the queue.
type QueueDispatcher struct {
	conn  *amqp.Connection
	ch    *amqp.Channel
	queue string
	cb    *gobreaker.CircuitBreaker
	pace  *rate.Limiter
}

func NewQueueDispatcher(amqpURL, queue string) (*QueueDispatcher, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "mail-publisher",
		MaxRequests: 3,
		Interval:    10 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("circuit breaker state change",
				"breaker", name, "from", from.String(), "to", to.String())
		},
	})

	return &QueueDispatcher{
		conn:  conn,
		ch:    ch,
		queue: queue,
		cb:    cb,
		pace:  rate.NewLimiter(rate.Limit(10), 20),
	}, nil
}

func (d *QueueDispatcher) Send(ctx context.Context, recipient, template string, data map[string]string) error {
	body, err := json.Marshal(Message{Recipient: recipient, Template: template, Data: data})
	if err != nil {
		return err
	}
	if err := d.pace.Wait(ctx); err != nil {
		return err
	}
	_, err = d.cb.Execute(func() (any, error) {
		return nil, d.ch.PublishWithContext(ctx,
			"",      // default exchange
			d.queue, // routing key == queue name
			false, false,
			amqp.Publishing{
				ContentType:  "application/json",
				DeliveryMode: amqp.Persistent,
				Body:         body,
			})
	})
	return err
}

func (d *QueueDispatcher) Close() error {
	if d.ch != nil {
		if err := d.ch.Close(); err != nil {
			return err
		}
	}
	if d.conn != nil {
		return d.conn.Close()
	}
	return nil
}

// LogDispatcher writes mail to the log instead of delivering it. Used in
// development when no broker is configured.
type LogDispatcher struct{}

func (LogDispatcher) Send(_ context.Context, recipient, template string, data map[string]string) error {
	slog.Info("mail dispatched", "recipient", recipient, "template", template, "data", data)
	return nil
}
