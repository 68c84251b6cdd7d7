// Package diagnostics provides the sinks that console events are fanned out
// to: the structured log and, optionally, a Redis Pub/Sub channel.
package diagnostics

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"admin_console/internal/events"
	"admin_console/platform/config"
	"admin_console/platform/logger"

	"github.com/redis/go-redis/v9"
)

// Envelope is the wire format of a published diagnostic event.
type Envelope struct {
	Event      string       `json:"event"`
	OccurredAt time.Time    `json:"occurredAt"`
	Data       events.Event `json:"data"`
}

// LogHandler writes every event to the structured log.
type LogHandler struct {
	log *logger.Logger
}

// NewLogHandler creates a log sink.
func NewLogHandler(log *logger.Logger) *LogHandler {
	return &LogHandler{log: log}
}

// Handle logs the event. Section fallbacks and failed resolutions are
// skipped: the console logs those as warnings where they happen.
func (h *LogHandler) Handle(ctx context.Context, event events.Event) error {
	switch event.(type) {
	case events.SectionFellBack, events.ResolutionFailed:
		return nil
	}
	h.log.WithContext(ctx).Info("diagnostic_event", "event", event.EventName(), "data", event)
	return nil
}

// RedisPublisher publishes every event as JSON on a Pub/Sub channel.
type RedisPublisher struct {
	client  redis.UniversalClient
	channel string
}

// NewRedisPublisher creates a Redis sink publishing on channel.
func NewRedisPublisher(client redis.UniversalClient, channel string) *RedisPublisher {
	return &RedisPublisher{client: client, channel: channel}
}

// Handle publishes the event envelope.
func (p *RedisPublisher) Handle(ctx context.Context, event events.Event) error {
	payload, err := json.Marshal(Envelope{
		Event:      event.EventName(),
		OccurredAt: event.OccurredAt(),
		Data:       event,
	})
	if err != nil {
		return fmt.Errorf("encode %s: %w", event.EventName(), err)
	}
	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("publish %s: %w", event.EventName(), err)
	}
	return nil
}

// Connect opens a Redis client from a redis:// or rediss:// URL and pings it.
func Connect(ctx context.Context, redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// Register subscribes the configured sinks to every event on bus. Nothing is
// subscribed when the Redis connection fails, so callers may retry. The
// returned close function releases the Redis connection, if any.
func Register(ctx context.Context, bus events.Bus, cfg config.DiagnosticsConfig, log *logger.Logger) (func() error, error) {
	if !cfg.IsRedisEnabled() {
		bus.Subscribe(events.AllEvents, NewLogHandler(log))
		log.Info("diagnostics redis sink disabled")
		return func() error { return nil }, nil
	}

	client, err := Connect(ctx, cfg.GetRedisURL())
	if err != nil {
		return nil, err
	}
	bus.Subscribe(events.AllEvents, NewLogHandler(log))
	bus.Subscribe(events.AllEvents, NewRedisPublisher(client, cfg.GetDiagnosticsChannel()))
	log.Info("diagnostics redis sink enabled", "channel", cfg.GetDiagnosticsChannel())
	return client.Close, nil
}
