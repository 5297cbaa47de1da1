package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"leaseline.app/server/common/logger"
)

type ConsumerConfig struct {
	Stream       string        // Redis stream name
	Group        string        // Redis consumer group name
	Consumer     string        // Redis consumer name
	DLQStream    string        // Dead letter queue stream for failed messages
	DelayedSet   string        // Sorted set holding tasks that are not due yet
	BatchSize    int64         // Number of messages to process per batch
	Block        time.Duration // How long to block/poll for new messages
	MaxAttempts  int           // Maximum retry attempts before moving to DLQ
	RequeueDelay time.Duration // Delay before a requeued message becomes readable again
}

type Message struct {
	ID          string
	LeadID      int64
	Category    string
	ContactedAt time.Time
	NotBefore   time.Time
	Attempt     int
	Raw         redis.XMessage
}

// Due reports whether the follow-up is ready to send.
func (m Message) Due(now time.Time) bool {
	return !now.Before(m.NotBefore)
}

type RedisConsumer struct {
	client *redis.Client
	cfg    ConsumerConfig
}

func NewRedisConsumer(client *redis.Client, cfg ConsumerConfig) (*RedisConsumer, error) {
	consumer := &RedisConsumer{
		client: client,
		cfg:    cfg,
	}

	if err := consumer.ensureGroup(context.Background()); err != nil { //nolint:contextcheck
		return nil, err
	}

	return consumer, nil
}

func (c *RedisConsumer) ensureGroup(ctx context.Context) error {
	// Starting from "0" instead of "$" means a recreated group sees
	// everything already in the stream, so restarts don't lose tasks.
	if err := c.client.XGroupCreateMkStream(ctx, c.cfg.Stream, c.cfg.Group, "0").Err(); err != nil && err.Error() != "BUSYGROUP Consumer Group name already exists" {
		return fmt.Errorf("creating consumer group: %w", err)
	}
	return nil
}

func (c *RedisConsumer) Read(ctx context.Context) ([]Message, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		Component: "leaseline.queue.consumer",
	})

	if err := c.promoteDue(ctx, time.Now()); err != nil {
		slog.ErrorContext(ctx, "failed to promote delayed tasks", "error", err)
	}

	streams, err := c.client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    c.cfg.Group,
		Consumer: c.cfg.Consumer,
		// > = new messages not yet delivered to anyone
		Streams: []string{c.cfg.Stream, ">"},
		Count:   c.cfg.BatchSize,
		Block:   c.cfg.Block,
	}).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []Message{}, nil
		}
		return nil, fmt.Errorf("reading from stream: %w", err)
	}

	var messages []Message
	for _, stream := range streams {
		for _, msg := range stream.Messages {
			parsed, parseErr := ParseMessage(msg)
			if parseErr != nil {
				slog.ErrorContext(ctx, "failed to parse message, dropping",
					"error", parseErr,
					"raw_message_id", msg.ID,
					"stream", c.cfg.Stream)
				_ = c.Ack(ctx, Message{ID: msg.ID, Raw: msg})
				continue
			}
			messages = append(messages, parsed)
		}
	}

	if len(messages) > 0 {
		slog.DebugContext(ctx, "read messages from stream",
			"count", len(messages),
			"stream", c.cfg.Stream,
			"consumer", c.cfg.Consumer)
	}

	return messages, nil
}

// promoteDue moves delayed tasks whose due time has passed from the sorted
// set onto the stream. XAdd before ZRem: a crash in between redelivers the
// task rather than losing it, and the worker tolerates duplicates.
func (c *RedisConsumer) promoteDue(ctx context.Context, now time.Time) error {
	members, err := c.client.ZRangeByScore(ctx, c.cfg.DelayedSet, &redis.ZRangeBy{
		Min:   "-inf",
		Max:   strconv.FormatInt(now.Unix(), 10),
		Count: c.cfg.BatchSize,
	}).Result()
	if err != nil {
		return fmt.Errorf("zrangebyscore delayed set: %w", err)
	}

	for _, member := range members {
		var entry delayedEntry
		if err := json.Unmarshal([]byte(member), &entry); err != nil {
			slog.ErrorContext(ctx, "failed to decode delayed task, dropping",
				"error", err,
				"delayed_set", c.cfg.DelayedSet)
			_ = c.client.ZRem(ctx, c.cfg.DelayedSet, member).Err()
			continue
		}

		if err := c.client.XAdd(ctx, &redis.XAddArgs{
			Stream: c.cfg.Stream,
			Values: entry.streamValues(),
		}).Err(); err != nil {
			return fmt.Errorf("promoting delayed task: %w", err)
		}
		if err := c.client.ZRem(ctx, c.cfg.DelayedSet, member).Err(); err != nil {
			return fmt.Errorf("zrem promoted task: %w", err)
		}

		slog.DebugContext(ctx, "delayed task promoted",
			"lead_id", entry.LeadID,
			"stream", c.cfg.Stream)
	}

	return nil
}

func (c *RedisConsumer) Ack(ctx context.Context, msg Message) error {
	if err := c.client.XAck(ctx, c.cfg.Stream, c.cfg.Group, msg.ID).Err(); err != nil {
		return fmt.Errorf("xack (stream=%s): %w", c.cfg.Stream, err)
	}

	slog.DebugContext(ctx, "message acknowledged", "stream", c.cfg.Stream)
	return nil
}

// Requeue acks the message and schedules it again with the next attempt
// number after RequeueDelay. Used for transient delivery failures.
func (c *RedisConsumer) Requeue(ctx context.Context, msg Message, errMsg string) error {
	return c.park(ctx, msg, msg.Attempt+1, errMsg, time.Now().Add(c.cfg.RequeueDelay))
}

// Defer acks the message and parks it until its not_before time without
// consuming an attempt. Used when a follow-up reaches the stream early.
func (c *RedisConsumer) Defer(ctx context.Context, msg Message) error {
	return c.park(ctx, msg, msg.Attempt, "", msg.NotBefore)
}

func (c *RedisConsumer) park(ctx context.Context, msg Message, attempt int, errMsg string, dueAt time.Time) error {
	if attempt <= 0 {
		attempt = 1
	}

	if err := c.Ack(ctx, msg); err != nil {
		return fmt.Errorf("acking message for reschedule: %w", err)
	}

	entry := delayedEntry{
		LeadID:      msg.LeadID,
		Category:    msg.Category,
		ContactedAt: msg.ContactedAt.Unix(),
		NotBefore:   msg.NotBefore.Unix(),
		Attempt:     attempt,
		LastError:   errMsg,
	}
	if err := scheduleDelayed(ctx, c.client, c.cfg.DelayedSet, entry, dueAt); err != nil {
		return fmt.Errorf("rescheduling message: %w", err)
	}

	slog.InfoContext(ctx, "message rescheduled",
		"lead_id", msg.LeadID,
		"next_attempt", attempt,
		"due_at", dueAt,
		"reason", errMsg)
	return nil
}

func (c *RedisConsumer) SendDLQ(ctx context.Context, msg Message, errMsg string) error {
	if err := c.Ack(ctx, msg); err != nil {
		return fmt.Errorf("acking failed message for dlq: %w", err)
	}

	entry := delayedEntry{
		LeadID:      msg.LeadID,
		Category:    msg.Category,
		ContactedAt: msg.ContactedAt.Unix(),
		NotBefore:   msg.NotBefore.Unix(),
		Attempt:     msg.Attempt,
	}
	values := entry.streamValues()
	values["error"] = errMsg

	if err := c.client.XAdd(ctx, &redis.XAddArgs{
		Stream: c.cfg.DLQStream,
		Values: values,
	}).Err(); err != nil {
		return fmt.Errorf("xadd dlq (stream=%s): %w", c.cfg.DLQStream, err)
	}

	slog.ErrorContext(ctx, "message sent to DLQ",
		"lead_id", msg.LeadID,
		"final_error", errMsg,
		"dlq_stream", c.cfg.DLQStream)
	return nil
}

func (c *RedisConsumer) MaxAttempts() int {
	return c.cfg.MaxAttempts
}

func ParseMessage(msg redis.XMessage) (Message, error) {
	leadID, err := parseInt64(msg.Values, "lead_id")
	if err != nil {
		return Message{}, err
	}

	category, err := parseString(msg.Values, "category")
	if err != nil {
		return Message{}, err
	}

	contactedAt, err := parseInt64(msg.Values, "contacted_at")
	if err != nil {
		return Message{}, err
	}
	notBefore, err := parseInt64(msg.Values, "not_before")
	if err != nil {
		return Message{}, err
	}

	attempt, err := parseOptionalInt(msg.Values, "attempt")
	if err != nil {
		return Message{}, err
	}
	if attempt == 0 {
		attempt = 1
	}

	return Message{
		ID:          msg.ID,
		LeadID:      leadID,
		Category:    category,
		ContactedAt: time.Unix(contactedAt, 0),
		NotBefore:   time.Unix(notBefore, 0),
		Attempt:     attempt,
		Raw:         msg,
	}, nil
}

func parseInt64(values map[string]any, key string) (int64, error) {
	raw, ok := values[key]
	if !ok {
		return 0, fmt.Errorf("missing %s", key)
	}
	str := fmt.Sprint(raw)
	num, err := strconv.ParseInt(str, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", key, err)
	}
	return num, nil
}

func parseString(values map[string]any, key string) (string, error) {
	raw, ok := values[key]
	if !ok {
		return "", fmt.Errorf("missing %s", key)
	}
	return fmt.Sprint(raw), nil
}

func parseOptionalInt(values map[string]any, key string) (int, error) {
	raw, ok := values[key]
	if !ok {
		return 0, nil
	}
	str := fmt.Sprint(raw)
	num, err := strconv.Atoi(str)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", key, err)
	}
	return num, nil
}
