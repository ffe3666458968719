// Package broadcast fans values out to any number of subscribers without
// letting a slow subscriber block the publisher.
package broadcast

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

type Option func(*config)

type config struct {
	queue  int
	logger zerolog.Logger
}

// WithQueueSize sets how many published values may wait for fan-out.
func WithQueueSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.queue = n
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// Broadcaster delivers every published value to every current subscriber.
// When a queue is full its oldest value is dropped in favour of the newest.
type Broadcaster[T any] struct {
	messageReceiver chan T
	done            chan struct{}
	logger          zerolog.Logger

	mu          sync.Mutex
	subscribers map[chan T]struct{}
	stopped     bool
	publishMu   sync.Mutex
}

func RunNewBroadcaster[T any](opts ...Option) *Broadcaster[T] {
	cfg := config{queue: 1, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	broadcaster := &Broadcaster[T]{
		messageReceiver: make(chan T, cfg.queue),
		done:            make(chan struct{}),
		logger:          cfg.logger,
		subscribers:     make(map[chan T]struct{}),
	}

	go broadcaster.start()

	return broadcaster
}

func (broadcaster *Broadcaster[T]) start() {
	defer close(broadcaster.done)

	for msg := range broadcaster.messageReceiver {
		broadcaster.mu.Lock()
		for s := range broadcaster.subscribers {
			pushDropOldest(s, msg)
		}
		broadcaster.mu.Unlock()
	}

	broadcaster.mu.Lock()
	for s := range broadcaster.subscribers {
		close(s)
	}
	broadcaster.subscribers = nil
	broadcaster.stopped = true
	broadcaster.mu.Unlock()

	broadcaster.logger.Debug().Msg("broadcaster stopped")
}

// pushDropOldest sends msg to ch, evicting the oldest queued value if ch is full.
func pushDropOldest[T any](ch chan T, msg T) {
	for {
		select {
		case ch <- msg:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}

// Stop closes every subscriber channel once queued values have been delivered.
func (broadcaster *Broadcaster[T]) Stop() {
	broadcaster.publishMu.Lock()
	if !broadcaster.closing() {
		close(broadcaster.messageReceiver)
	}
	broadcaster.publishMu.Unlock()
	<-broadcaster.done
}

// closing reports whether Stop already closed the receiver. Callers hold publishMu.
func (broadcaster *Broadcaster[T]) closing() bool {
	broadcaster.mu.Lock()
	defer broadcaster.mu.Unlock()
	if broadcaster.stopped {
		return true
	}
	broadcaster.stopped = true
	return false
}

// Subscribe registers a new subscriber whose channel buffers up to buffer values.
func (broadcaster *Broadcaster[T]) Subscribe(buffer int) (chan T, error) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan T, buffer)
	broadcaster.mu.Lock()
	defer broadcaster.mu.Unlock()
	if broadcaster.stopped {
		return nil, fmt.Errorf("failed to subscribe: broadcaster is stopped")
	}
	broadcaster.subscribers[ch] = struct{}{}
	return ch, nil
}

// Unsubscribe removes and closes subscriberSender.
func (broadcaster *Broadcaster[T]) Unsubscribe(subscriberSender chan T) {
	broadcaster.mu.Lock()
	defer broadcaster.mu.Unlock()
	if _, ok := broadcaster.subscribers[subscriberSender]; !ok {
		return
	}
	delete(broadcaster.subscribers, subscriberSender)
	close(subscriberSender)
}

// Publish queues msg for delivery. It never blocks on subscribers; after Stop
// it is a no-op.
func (broadcaster *Broadcaster[T]) Publish(msg T) {
	broadcaster.publishMu.Lock()
	defer broadcaster.publishMu.Unlock()

	broadcaster.mu.Lock()
	stopped := broadcaster.stopped
	broadcaster.mu.Unlock()
	if stopped {
		return
	}
	pushDropOldest(broadcaster.messageReceiver, msg)
}
