package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/maan-homes/accounts-api/internal/api/metrics"
	"github.com/maan-homes/accounts-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
	maxAttempts    = 3
	retryDelay     = 2 * time.Second
	sendTimeout    = 30 * time.Second
)

// Dispatcher delivers emails asynchronously through a fixed set of workers,
// sharded by recipient so messages to the same address keep their order.
// A request that enqueues a message never waits for, or fails because of,
// SMTP delivery; failures are retried a bounded number of times and logged.
type Dispatcher struct {
	workers []chan ports.Email
	mailer  ports.Mailer
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, mailer ports.Mailer, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.Email, numWorkers),
		mailer:  mailer,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.Email, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands a message to the worker responsible for its recipient.
// Non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(msg ports.Email) {
	i := d.shardIndex(msg.To)
	d.workers[i] <- msg
	metrics.MailQueueDepth.WithLabelValues(strconv.Itoa(i)).Set(float64(len(d.workers[i])))
}

// shardIndex maps a recipient deterministically to a worker index.
func (d *Dispatcher) shardIndex(recipient string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(recipient))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.Email) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			d.deliver(ctx, id, msg)
			metrics.MailQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(float64(len(ch)))
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, workerID int, msg ports.Email) {
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
		err = d.mailer.Send(sendCtx, msg)
		cancel()
		if err == nil {
			metrics.EmailsTotal.WithLabelValues(msg.Template, "sent").Inc()
			return
		}

		d.log.Warn().Err(err).
			Str("template", msg.Template).
			Int("attempt", attempt).
			Int("worker_id", workerID).
			Msg("email delivery failed")

		select {
		case <-ctx.Done():
			return
		case <-time.After(retryDelay * time.Duration(attempt)):
		}
	}

	metrics.EmailsTotal.WithLabelValues(msg.Template, "failed").Inc()
	d.log.Error().Err(err).
		Str("template", msg.Template).
		Msg("email dropped after retries")
}
