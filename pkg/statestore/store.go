package statestore

import (
	"context"
	"sync"
)

// Subscription delivers snapshots from a Store to a single observer.
// All methods are safe for concurrent use.
type Subscription[T any] struct {
	ch     chan T
	mu     sync.RWMutex
	closed bool
}

func newSubscription[T any](bufferSize int) *Subscription[T] {
	return &Subscription[T]{
		ch: make(chan T, bufferSize),
	}
}

// Updates returns the channel on which snapshots are delivered.
// The channel is closed when the subscription or the owning store closes.
func (s *Subscription[T]) Updates() <-chan T {
	return s.ch
}

// Close closes the subscription and releases resources.
// It is safe to call Close multiple times.
func (s *Subscription[T]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		close(s.ch)
		s.closed = true
	}
	return nil
}

// send delivers a snapshot without blocking.
// Returns false if the subscription is closed or its buffer is full.
func (s *Subscription[T]) send(v T) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return false
	}

	select {
	case s.ch <- v:
		return true
	default:
		return false
	}
}

// Store holds a single observable value and fans snapshots out to
// subscribers on every replacement. All methods are safe for concurrent
// use. The zero value is not usable; use New.
type Store[T any] struct {
	value      T
	subs       map[*Subscription[T]]struct{}
	bufferSize int
	closed     bool
	done       chan struct{}
	mu         sync.RWMutex
	cleanupWg  sync.WaitGroup // tracks context-cancellation cleanup goroutines
}

// Option configures a Store.
type Option func(*options)

type options struct {
	bufferSize int
}

// WithBuffer sets the per-subscriber channel buffer size.
// A minimum of 1 is enforced so the initial snapshot always fits.
func WithBuffer(n int) Option {
	return func(o *options) { o.bufferSize = n }
}

// New creates a store holding the given initial value.
func New[T any](initial T, opts ...Option) *Store[T] {
	o := &options{bufferSize: 4}
	for _, opt := range opts {
		opt(o)
	}
	return &Store[T]{
		value:      initial,
		subs:       make(map[*Subscription[T]]struct{}),
		bufferSize: max(o.bufferSize, 1),
		done:       make(chan struct{}),
	}
}

// Get returns the current value.
func (st *Store[T]) Get() T {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.value
}

// Set replaces the current value and notifies all subscribers.
// The replacement and the notifications happen under the store lock, so
// observers never see updates out of order. Subscribers whose buffers are
// full are dropped asynchronously rather than blocking the writer.
// Returns ErrClosed after Close.
func (st *Store[T]) Set(ctx context.Context, v T) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.closed {
		return ErrClosed
	}

	st.value = v

	for sub := range st.subs {
		if !sub.send(v) {
			// Slow or closed subscriber; detach it without holding up
			// the current write.
			go st.unsubscribe(sub)
		}
	}

	return nil
}

// Subscribe registers a new observer. The current value is delivered
// immediately, followed by every subsequent Set. The subscription is
// cleaned up when ctx is cancelled. Subscribing to a closed store returns
// an already-closed subscription.
func (st *Store[T]) Subscribe(ctx context.Context) *Subscription[T] {
	st.mu.Lock()
	defer st.mu.Unlock()

	sub := newSubscription[T](st.bufferSize)

	if st.closed {
		_ = sub.Close()
		return sub
	}

	// Replay the current snapshot; the buffer is at least 1 so this
	// never blocks.
	sub.send(st.value)
	st.subs[sub] = struct{}{}

	if ctx.Done() != nil {
		st.cleanupWg.Add(1)
		go func() {
			defer st.cleanupWg.Done()
			select {
			case <-ctx.Done():
				st.unsubscribe(sub)
			case <-st.done:
				// Store closed; Close already detached every subscriber.
			}
		}()
	}

	return sub
}

// Subscribers reports the number of active subscriptions.
func (st *Store[T]) Subscribers() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.subs)
}

// Close shuts down the store and closes all subscriptions.
// The last value remains readable via Get. Safe to call multiple times.
func (st *Store[T]) Close() error {
	st.mu.Lock()

	if st.closed {
		st.mu.Unlock()
		return nil
	}

	st.closed = true
	close(st.done)
	for sub := range st.subs {
		_ = sub.Close()
	}
	clear(st.subs)
	st.mu.Unlock()

	// Wait for pending cleanup goroutines so Close does not race with
	// context-cancellation unsubscribes.
	st.cleanupWg.Wait()

	return nil
}

func (st *Store[T]) unsubscribe(sub *Subscription[T]) {
	st.mu.Lock()
	defer st.mu.Unlock()

	delete(st.subs, sub)
	_ = sub.Close()
}
