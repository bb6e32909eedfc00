package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/appdotbuilder/influencer-sponsor-connect/internal/model"
)

// EventsTopic carries every marketplace domain event.
const EventsTopic = "marketplace_events"

// Event announces a committed mutation.
type Event struct {
	Type     string    `json:"type"`
	Entity   string    `json:"entity"`
	EntityID int       `json:"entity_id"`
	At       time.Time `json:"at"`
}

func NewEvent(entity, action string, id int) Event {
	return Event{
		Type:     entity + "." + action,
		Entity:   entity,
		EntityID: id,
		At:       time.Now().UTC(),
	}
}

// Queue interface
type Queue interface {
	Publish(topic string, payload any) error
	Subscribe(topic string, handler func(payload any) error) error
}

// InMemoryQueue delivers to local subscribers on goroutines with retry.
type InMemoryQueue struct {
	mu         sync.Mutex
	handlers   map[string][]func(payload any) error
	maxRetries int
	backoff    time.Duration
}

func NewInMemoryQueue() *InMemoryQueue {
	return &InMemoryQueue{
		handlers:   make(map[string][]func(payload any) error),
		maxRetries: 3,
		backoff:    500 * time.Millisecond,
	}
}

// WithBackoff overrides the base delay between retries.
func (q *InMemoryQueue) WithBackoff(d time.Duration) *InMemoryQueue {
	q.backoff = d
	return q
}

// JobPayload wraps a message payload with retry info
type JobPayload struct {
	Payload    any
	RetryCount int
	MaxRetries int
}

// Publish sends a message to all subscribers
func (q *InMemoryQueue) Publish(topic string, payload any) error {
	q.mu.Lock()
	handlers := q.handlers[topic]
	q.mu.Unlock()

	if len(handlers) == 0 {
		return fmt.Errorf("no subscribers for topic %s", topic)
	}

	for _, handler := range handlers {
		job := JobPayload{Payload: payload, MaxRetries: q.maxRetries}
		go q.processJob(handler, job)
	}
	return nil
}

func (q *InMemoryQueue) processJob(handler func(payload any) error, job JobPayload) {
	for job.RetryCount <= job.MaxRetries {
		err := handler(job.Payload)
		if err == nil {
			slog.Debug("job processed", "payload", job.Payload)
			return
		}

		job.RetryCount++
		slog.Warn("job failed", "attempt", job.RetryCount, "max_retries", job.MaxRetries, "err", err)

		if job.RetryCount > job.MaxRetries {
			slog.Error("job permanently failed", "attempts", job.RetryCount, "payload", job.Payload)
			return
		}

		time.Sleep(time.Duration(job.RetryCount) * q.backoff)
	}
}

// Subscribe adds a handler for a topic
func (q *InMemoryQueue) Subscribe(topic string, handler func(payload any) error) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.handlers[topic] = append(q.handlers[topic], handler)
	return nil
}

// StatsRefresher recomputes the dashboard snapshot.
type StatsRefresher interface {
	Refresh(ctx context.Context) (*model.DashboardStats, error)
}

// StartStatsRefreshSubscriber recomputes dashboard stats after every domain event.
func StartStatsRefreshSubscriber(q Queue, stats StatsRefresher) error {
	return q.Subscribe(EventsTopic, func(payload any) error {
		event, ok := payload.(Event)
		if !ok {
			slog.Warn("invalid payload type, expected queue.Event", "payload", payload)
			return nil
		}

		if _, err := stats.Refresh(context.Background()); err != nil {
			slog.Error("failed to refresh dashboard stats", "event", event.Type, "err", err)
			return err
		}
		slog.Debug("dashboard stats refreshed", "event", event.Type, "entity_id", event.EntityID)
		return nil
	})
}
