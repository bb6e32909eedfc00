package service

import (
	"context"

	"github.com/appdotbuilder/influencer-sponsor-connect/internal/logger"
	"github.com/appdotbuilder/influencer-sponsor-connect/internal/queue"
)

// DefaultSearchLimit applies when a search input leaves limit unset.
const DefaultSearchLimit = 50

// publish announces a committed mutation. The write has already succeeded, so
// a failed publish is only logged.
func publish(ctx context.Context, q queue.Queue, entity, action string, id int) {
	if q == nil {
		return
	}
	event := queue.NewEvent(entity, action, id)
	if err := q.Publish(queue.EventsTopic, event); err != nil {
		logger.FromContext(ctx).Warn("failed to publish event", "event", event.Type, "entity_id", id, "err", err)
	}
}

func logFailure(ctx context.Context, msg string, err error) error {
	logger.FromContext(ctx).Error(msg, "err", err)
	return err
}

func pageDefaults(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
