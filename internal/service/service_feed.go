package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-finchers/internal/logger"
	"github.com/MKhiriev/go-finchers/models"
)

// DefaultFeedBuffer is the per-subscriber event buffer.
const DefaultFeedBuffer = 16

// Feed is the in-process NoteFeed. Publishing never blocks: a subscriber
// whose buffer is full is dropped and its channel closed.
//
// Feed is also a workers.Worker; Run closes every subscriber on shutdown.
type Feed struct {
	mu     sync.Mutex
	subs   map[chan models.NoteEvent]struct{}
	buffer int
	closed bool

	logger *logger.Logger
}

// NewFeed creates a feed with the given subscriber buffer size.
func NewFeed(buffer int, logger *logger.Logger) *Feed {
	if buffer <= 0 {
		buffer = DefaultFeedBuffer
	}

	return &Feed{
		subs:   make(map[chan models.NoteEvent]struct{}),
		buffer: buffer,
		logger: logger,
	}
}

func (f *Feed) Publish(event models.NoteEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for ch := range f.subs {
		select {
		case ch <- event:
		default:
			f.logger.Warn().Str("event", event.Type).Msg("dropping slow feed subscriber")
			delete(f.subs, ch)
			close(ch)
		}
	}
}

func (f *Feed) Subscribe(ctx context.Context) (<-chan models.NoteEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil, ErrFeedClosed
	}

	ch := make(chan models.NoteEvent, f.buffer)
	f.subs[ch] = struct{}{}

	context.AfterFunc(ctx, func() { f.unsubscribe(ch) })

	return ch, nil
}

// Subscribers reports the number of live subscribers.
func (f *Feed) Subscribers() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.subs)
}

func (f *Feed) unsubscribe(ch chan models.NoteEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.subs[ch]; ok {
		delete(f.subs, ch)
		close(ch)
	}
}

// Run blocks until ctx is done, then closes the feed.
func (f *Feed) Run(ctx context.Context) error {
	<-ctx.Done()

	f.mu.Lock()
	defer f.mu.Unlock()

	f.closed = true
	for ch := range f.subs {
		delete(f.subs, ch)
		close(ch)
	}
	f.logger.Info().Msg("note feed closed")

	return nil
}
