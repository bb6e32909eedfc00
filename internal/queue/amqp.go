package queue

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/goccy/go-json"
	"github.com/streadway/amqp"
)

// AMQPQueue publishes JSON events to durable RabbitMQ queues named after the
// topic. EventsTopic maps to the configured events queue.
type AMQPQueue struct {
	conn        *amqp.Connection
	ch          *amqp.Channel
	eventsQueue string

	mu       sync.Mutex
	declared map[string]bool
}

func NewAMQPQueue(url, eventsQueue string) (*AMQPQueue, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}
	return &AMQPQueue{conn: conn, ch: ch, eventsQueue: eventsQueue, declared: map[string]bool{}}, nil
}

func (q *AMQPQueue) queueName(topic string) string {
	if topic == EventsTopic && q.eventsQueue != "" {
		return q.eventsQueue
	}
	return topic
}

func (q *AMQPQueue) declare(name string) error {
	if q.declared[name] {
		return nil
	}
	_, err := q.ch.QueueDeclare(
		name,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue %q: %w", name, err)
	}
	q.declared[name] = true
	return nil
}

func (q *AMQPQueue) Publish(topic string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	name := q.queueName(topic)
	q.mu.Lock()
	defer q.mu.Unlock()
	if err := q.declare(name); err != nil {
		return err
	}
	return q.ch.Publish(
		"",
		name,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
}

// Subscribe consumes topic in the background and hands each decoded Event to
// handler. Failed deliveries are requeued once, then dropped.
func (q *AMQPQueue) Subscribe(topic string, handler func(payload any) error) error {
	name := q.queueName(topic)
	q.mu.Lock()
	err := q.declare(name)
	var msgs <-chan amqp.Delivery
	if err == nil {
		msgs, err = q.ch.Consume(
			name,
			"",
			false, // autoAck = false for reliability
			false,
			false,
			false,
			nil,
		)
	}
	q.mu.Unlock()
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	go func() {
		for d := range msgs {
			var event Event
			if err := json.Unmarshal(d.Body, &event); err != nil {
				slog.Warn("invalid event", "err", err)
				d.Ack(false)
				continue
			}

			if err := handler(event); err != nil {
				slog.Error("failed to handle event", "event", event.Type, "err", err)
				d.Nack(false, !d.Redelivered)
				continue
			}
			d.Ack(false)
		}
		slog.Info("consumer stopped", "queue", name)
	}()
	return nil
}

func (q *AMQPQueue) Close() error {
	if err := q.ch.Close(); err != nil {
		q.conn.Close()
		return err
	}
	return q.conn.Close()
}

var (
	_ Queue = (*InMemoryQueue)(nil)
	_ Queue = (*AMQPQueue)(nil)
)
