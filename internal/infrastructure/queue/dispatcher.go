package queue

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/thevittavardhan/backend/internal/api/metrics"
	"github.com/thevittavardhan/backend/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher delivers notification email through a fixed pool of workers
// fed by a buffered channel. Delivery is best-effort and at-most-once: a
// failed send is logged and counted, never retried, and never reported to
// the request that produced it.
type Dispatcher struct {
	jobs       chan ports.Message
	mailer     ports.Mailer
	numWorkers int
	log        zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers delivery workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, mailer ports.Mailer, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	return &Dispatcher{
		jobs:       make(chan ports.Message, channelBuffer),
		mailer:     mailer,
		numWorkers: numWorkers,
		log:        log,
	}
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled;
// messages still queued at that point are dropped.
func (d *Dispatcher) Start(ctx context.Context) {
	for i := 0; i < d.numWorkers; i++ {
		go d.runWorker(ctx, i)
	}
}

// Enqueue hands a message to the workers without blocking. When the buffer
// is full the message is dropped and counted, keeping the request path
// independent of relay backpressure.
func (d *Dispatcher) Enqueue(m ports.Message) {
	select {
	case d.jobs <- m:
		metrics.NotificationQueueDepth.Set(float64(len(d.jobs)))
	default:
		metrics.NotificationsFailedTotal.WithLabelValues("queue_full").Inc()
		d.log.Warn().Str("to", m.To).Str("subject", m.Subject).Msg("notification queue full, message dropped")
	}
}

func (d *Dispatcher) runWorker(ctx context.Context, id int) {
	for {
		select {
		case <-ctx.Done():
			return
		case m, ok := <-d.jobs:
			if !ok {
				return
			}
			metrics.NotificationQueueDepth.Set(float64(len(d.jobs)))
			if err := d.mailer.Send(ctx, m); err != nil {
				metrics.NotificationsFailedTotal.WithLabelValues("send_error").Inc()
				d.log.Error().Err(err).
					Str("to", m.To).
					Str("subject", m.Subject).
					Int("worker_id", id).
					Msg("notification delivery failed")
				continue
			}
			metrics.NotificationsSentTotal.Inc()
			d.log.Info().Str("to", m.To).Str("subject", m.Subject).Msg("notification sent")
		}
	}
}
