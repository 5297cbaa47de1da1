// Package queue carries follow-up tasks from lead ingestion to the worker.
// Due tasks travel over a Redis stream with a consumer group; tasks scheduled
// for the future wait in a sorted set scored by their due time and are
// promoted onto the stream by the consumer once due.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// FollowUpTask schedules a follow-up message for a lead that was just
// contacted. NotBefore is when the follow-up becomes due.
type FollowUpTask struct {
	LeadID      int64
	Category    string
	ContactedAt time.Time
	NotBefore   time.Time
	Attempt     int
}

type Producer interface {
	Enqueue(ctx context.Context, task FollowUpTask) error
	Close() error
}

type redisProducer struct {
	client     *redis.Client
	stream     string
	delayedSet string
	logger     *slog.Logger
}

func NewRedisProducer(client *redis.Client, stream, delayedSet string, logger *slog.Logger) Producer {
	if logger == nil {
		logger = slog.Default()
	}
	return &redisProducer{
		client:     client,
		stream:     stream,
		delayedSet: delayedSet,
		logger:     logger,
	}
}

func (p *redisProducer) Enqueue(ctx context.Context, task FollowUpTask) error {
	attempt := task.Attempt
	if attempt <= 0 {
		attempt = 1
	}

	entry := delayedEntry{
		LeadID:      task.LeadID,
		Category:    task.Category,
		ContactedAt: task.ContactedAt.Unix(),
		NotBefore:   task.NotBefore.Unix(),
		Attempt:     attempt,
	}

	if task.NotBefore.After(time.Now()) {
		if err := scheduleDelayed(ctx, p.client, p.delayedSet, entry, task.NotBefore); err != nil {
			return fmt.Errorf("enqueue follow-up: %w", err)
		}
	} else {
		if err := p.client.XAdd(ctx, &redis.XAddArgs{
			Stream: p.stream,
			Values: entry.streamValues(),
		}).Err(); err != nil {
			return fmt.Errorf("enqueue follow-up: %w", err)
		}
	}

	p.logger.InfoContext(ctx, "enqueued follow-up task",
		"lead_id", task.LeadID,
		"category", task.Category,
		"not_before", task.NotBefore,
		"attempt", attempt)
	return nil
}

func (p *redisProducer) Close() error {
	return p.client.Close()
}

// delayedEntry is the JSON shape stored as a sorted-set member for tasks
// that are not due yet. The field names match the stream field names so a
// promoted entry parses the same way as a directly enqueued one.
type delayedEntry struct {
	LeadID      int64  `json:"lead_id"`
	Category    string `json:"category"`
	ContactedAt int64  `json:"contacted_at"`
	NotBefore   int64  `json:"not_before"`
	Attempt     int    `json:"attempt"`
	LastError   string `json:"last_error,omitempty"`
}

func (e delayedEntry) streamValues() map[string]any {
	values := map[string]any{
		"lead_id":      e.LeadID,
		"category":     e.Category,
		"contacted_at": e.ContactedAt,
		"not_before":   e.NotBefore,
		"attempt":      e.Attempt,
	}
	if e.LastError != "" {
		values["last_error"] = e.LastError
	}
	return values
}

func scheduleDelayed(ctx context.Context, client *redis.Client, delayedSet string, entry delayedEntry, dueAt time.Time) error {
	member, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encoding delayed task: %w", err)
	}
	if err := client.ZAdd(ctx, delayedSet, redis.Z{
		Score:  float64(dueAt.Unix()),
		Member: string(member),
	}).Err(); err != nil {
		return fmt.Errorf("zadd delayed task: %w", err)
	}
	return nil
}
