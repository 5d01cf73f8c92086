package workers

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/zhiren/talenthub/internal/services"
)

const DefaultEventStream = "hr:events"

// StreamPublisher pushes HR events onto the Redis stream consumed by
// NotifyWorkerPool. It satisfies services.EventPublisher.
type StreamPublisher struct {
	Redis  *redis.Client
	Stream string
}

func NewStreamPublisher(rdb *redis.Client) *StreamPublisher {
	return &StreamPublisher{Redis: rdb, Stream: DefaultEventStream}
}

func (p *StreamPublisher) PublishBulkEvent(ctx context.Context, e services.BulkEvent) error {
	return p.Redis.XAdd(ctx, &redis.XAddArgs{
		Stream: p.Stream,
		Values: map[string]any{
			"type":          "bulk_action",
			"action":        e.Action,
			"actor_id":      e.ActorID,
			"requested":     strconv.Itoa(e.Requested),
			"updated_count": strconv.Itoa(e.UpdatedCount),
		},
	}).Err()
}
