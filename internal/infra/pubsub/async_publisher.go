package pubsub

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"patrol/internal/domain/constants"
	"patrol/internal/domain/service"

	"github.com/pkg/errors"
)

const asyncPublishTimeout = 15 * time.Second

var (
	errPublishQueueFull = errors.New("publish queue is full")
	errPublisherClosed  = errors.New("publisher is closed")
)

// asyncPublisher hands events to a single background sender so an upload
// request never waits on the provider. Events still queued at Close are
// flushed before the underlying publisher is closed.
type asyncPublisher struct {
	next    service.EventPublisher
	logger  *slog.Logger
	timeout time.Duration

	mu     sync.RWMutex
	closed bool
	queue  chan *service.LocationSyncEvent
	done   chan struct{}
}

func newAsyncPublisher(next service.EventPublisher, queueSize int, logger *slog.Logger) *asyncPublisher {
	if queueSize <= 0 {
		queueSize = 1
	}

	p := &asyncPublisher{
		next:    next,
		logger:  logger,
		timeout: asyncPublishTimeout,
		queue:   make(chan *service.LocationSyncEvent, queueSize),
		done:    make(chan struct{}),
	}
	go p.run()

	return p
}

func (p *asyncPublisher) PublishLocationSyncEvent(_ context.Context, event *service.LocationSyncEvent) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return errPublisherClosed
	}

	select {
	case p.queue <- event:
		return nil
	default:
		return errPublishQueueFull
	}
}

func (p *asyncPublisher) run() {
	defer close(p.done)

	for event := range p.queue {
		ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
		if err := p.next.PublishLocationSyncEvent(ctx, event); err != nil {
			p.logger.Warn("[AsyncPubSub] Failed to publish queued event",
				slog.String(constants.AttrEventID, event.EventID),
				slog.String(constants.AttrRequestID, event.RequestID),
				slog.Any("error", err),
			)
		}
		cancel()
	}
}

// Close stops accepting events, waits for the queue to drain, then closes the
// underlying publisher.
func (p *asyncPublisher) Close() error {
	return p.Shutdown(context.Background())
}

// Shutdown is Close bounded by ctx. If ctx ends first the sender may still be
// inside a publish, so the underlying publisher is left open.
func (p *asyncPublisher) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.queue)
	}
	p.mu.Unlock()

	select {
	case <-p.done:
		return p.next.Close()
	case <-ctx.Done():
		p.logger.Warn("[AsyncPubSub] Shutdown before queue drained",
			slog.Int("pending", len(p.queue)),
		)

		return errors.Wrap(ctx.Err(), "event queue not drained")
	}
}
