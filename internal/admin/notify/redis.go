package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/nexusadmin/pkg/slogx"
	"github.com/redis/go-redis/v9"
)

// DefaultQueueKey is the Redis list holding pending messages.
const DefaultQueueKey = "nexusadmin:queue:emails"

// RedisDispatcher queues messages on a Redis list for a Worker to send.
type RedisDispatcher struct {
	Client *redis.Client
	Key    string
}

var _ Dispatcher = (*RedisDispatcher)(nil)

func NewRedisDispatcher(rdb *redis.Client) *RedisDispatcher {
	return &RedisDispatcher{Client: rdb, Key: DefaultQueueKey}
}

// Enqueue pushes msg onto the queue.
func (d *RedisDispatcher) Enqueue(ctx context.Context, msg Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}
	if err := d.Client.LPush(ctx, d.Key, data).Err(); err != nil {
		return fmt.Errorf("lpush message: %w", err)
	}
	return nil
}

// Dispatch enqueues msg, logging instead of returning a failure.
func (d *RedisDispatcher) Dispatch(ctx context.Context, msg Message) {
	if err := d.Enqueue(slogx.Detach(ctx), msg); err != nil {
		slogx.FromContext(ctx).Error("failed to queue email",
			slog.String("kind", msg.Kind),
			slog.String("to", msg.To),
			slog.Any("error", err),
		)
	}
}

// Worker pops queued messages and sends them.
type Worker struct {
	Client   *redis.Client
	Key      string
	Notifier Notifier
	Logger   *slog.Logger

	// PollTimeout bounds each blocking pop so Stop is noticed promptly.
	PollTimeout time.Duration

	cancel context.CancelFunc
	doneCh chan struct{}
}

// NewWorker creates a worker reading DefaultQueueKey. A nil logger falls
// back to slog.Default.
func NewWorker(rdb *redis.Client, n Notifier, logger *slog.Logger) *Worker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Worker{
		Client:      rdb,
		Key:         DefaultQueueKey,
		Notifier:    n,
		Logger:      logger,
		PollTimeout: time.Second,
	}
}

// Start launches the background loop. Call Stop to shut it down.
func (w *Worker) Start() {
	ctx, cancel := context.WithCancel(slogx.WithContext(context.Background(), w.Logger))
	w.cancel = cancel
	w.doneCh = make(chan struct{})

	go w.run(ctx)
	w.Logger.Info("email worker started", slog.String("queue", w.Key))
}

// Stop ends the loop and waits for an in-progress send to finish.
func (w *Worker) Stop() {
	if w.cancel == nil {
		return
	}
	w.cancel()
	<-w.doneCh
	w.Logger.Info("email worker stopped")
}

func (w *Worker) run(ctx context.Context) {
	defer close(w.doneCh)

	for {
		if ctx.Err() != nil {
			return
		}

		res, err := w.Client.BRPop(ctx, w.PollTimeout, w.Key).Result()
		switch {
		case errors.Is(err, redis.Nil):
			continue
		case ctx.Err() != nil:
			return
		case err != nil:
			w.Logger.Error("failed to pop email", slog.Any("error", err))
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Second):
			}
			continue
		}

		// BRPOP yields [key, value].
		var msg Message
		if err := json.Unmarshal([]byte(res[1]), &msg); err != nil {
			w.Logger.Error("dropping malformed queued email", slog.Any("error", err))
			continue
		}

		// Sends are not tied to the worker context so Stop lets them finish.
		deliver(slogx.WithContext(context.Background(), w.Logger), w.Notifier, msg)
	}
}
