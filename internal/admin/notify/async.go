package notify

import (
	"context"
	"log/slog"
	"sync"

	"github.com/aussiebroadwan/nexusadmin/internal/admin/metrics"
	"github.com/aussiebroadwan/nexusadmin/pkg/slogx"
)

// AsyncDispatcher sends each message on its own goroutine.
type AsyncDispatcher struct {
	Notifier Notifier

	wg sync.WaitGroup
}

var _ Dispatcher = (*AsyncDispatcher)(nil)

func NewAsyncDispatcher(n Notifier) *AsyncDispatcher {
	return &AsyncDispatcher{Notifier: n}
}

// Dispatch returns immediately. The send runs on a context detached from
// ctx so it survives the request that triggered it.
func (d *AsyncDispatcher) Dispatch(ctx context.Context, msg Message) {
	ctx = slogx.Detach(ctx)

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		deliver(ctx, d.Notifier, msg)
	}()
}

// Wait blocks until every dispatched message has been handled.
func (d *AsyncDispatcher) Wait() {
	d.wg.Wait()
}

func deliver(ctx context.Context, n Notifier, msg Message) {
	log := slogx.FromContext(ctx)

	if err := n.Send(ctx, msg); err != nil {
		metrics.EmailsSent.WithLabelValues(msg.Kind, "error").Inc()
		log.Error("failed to send email",
			slog.String("kind", msg.Kind),
			slog.String("to", msg.To),
			slog.Any("error", err),
		)
		return
	}

	metrics.EmailsSent.WithLabelValues(msg.Kind, "ok").Inc()
	log.Info("email sent", slog.String("kind", msg.Kind), slog.String("to", msg.To))
}
