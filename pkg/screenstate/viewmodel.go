package screenstate

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/dmitrymomot/screenkit/pkg/async"
	"github.com/dmitrymomot/screenkit/pkg/statestore"
)

// FetchFunc produces the screen's payload. It must return exactly one
// result per invocation and should honour ctx cancellation.
type FetchFunc[T any] func(ctx context.Context) (T, error)

// ViewModel owns the screen state and is its only writer.
// It orchestrates fetches and publishes every state change to observers.
// All methods are safe for concurrent use.
type ViewModel[T any] struct {
	fetch        FetchFunc[T]
	store        *statestore.Store[State[T]]
	log          *slog.Logger
	fetchTimeout time.Duration

	// lifetime bounds every fetch; teardown cancels it on Close so a
	// dangling completion can never mutate state after the screen is gone.
	lifetime context.Context
	teardown context.CancelFunc

	mu          sync.Mutex
	generation  uint64
	cancelFetch context.CancelFunc
	closed      bool
}

// NewViewModel creates a view model in the start state.
// Panics on a nil fetch function.
func NewViewModel[T any](fetch FetchFunc[T], opts ...Option) *ViewModel[T] {
	if fetch == nil {
		panic("screenstate: fetch function cannot be nil")
	}

	cfg := defaultOptions()
	for _, opt := range opts {
		opt(cfg)
	}

	lifetime, teardown := context.WithCancel(context.Background())

	return &ViewModel[T]{
		fetch:        fetch,
		store:        statestore.New(Start[T](), statestore.WithBuffer(cfg.buffer)),
		log:          cfg.logger,
		fetchTimeout: cfg.fetchTimeout,
		lifetime:     lifetime,
		teardown:     teardown,
	}
}

// Current returns the present screen state.
func (vm *ViewModel[T]) Current() State[T] {
	return vm.store.Get()
}

// Subscribe registers an observer. The current state is delivered
// immediately, then every subsequent change, until ctx is cancelled, the
// subscription is closed, or the view model is closed.
func (vm *ViewModel[T]) Subscribe(ctx context.Context) *statestore.Subscription[State[T]] {
	return vm.store.Subscribe(ctx)
}

// TriggerFetch moves the screen to loading synchronously and starts the
// fetch in the background. On completion the state becomes success with
// the payload or failure with the error message.
//
// Re-triggering while a fetch is in flight cancels the older fetch; its
// future resolves with ErrSuperseded and its completion is discarded, so
// the state always reflects the latest trigger. On a closed view model
// the state is untouched and the future resolves with ErrClosed.
func (vm *ViewModel[T]) TriggerFetch(ctx context.Context) *async.Future[State[T]] {
	vm.mu.Lock()
	if vm.closed {
		vm.mu.Unlock()
		return async.Completed(State[T]{}, ErrClosed)
	}

	vm.generation++
	gen := vm.generation

	// Latest trigger wins: abandon the previous in-flight fetch.
	if vm.cancelFetch != nil {
		vm.cancelFetch()
	}

	var fetchCtx context.Context
	var cancel context.CancelFunc
	if vm.fetchTimeout > 0 {
		fetchCtx, cancel = context.WithTimeout(vm.lifetime, vm.fetchTimeout)
	} else {
		fetchCtx, cancel = context.WithCancel(vm.lifetime)
	}
	vm.cancelFetch = cancel

	// Publishing loading inside the lock serializes it with any racing
	// completion, keeping the observed order trigger -> loading -> result.
	_ = vm.store.Set(ctx, Loading[T]())
	vm.mu.Unlock()

	vm.log.DebugContext(ctx, "fetch triggered", slog.Uint64("generation", gen))

	return async.Run(fetchCtx, func(fetchCtx context.Context) (State[T], error) {
		data, err := vm.fetch(fetchCtx)

		var next State[T]
		if err != nil {
			next = Failure[T](err.Error())
		} else {
			next = Success(data)
		}

		if !vm.apply(gen, next) {
			return State[T]{}, ErrSuperseded
		}
		return next, nil
	})
}

// apply publishes a fetch outcome unless the trigger that produced it has
// been superseded or the screen was torn down.
func (vm *ViewModel[T]) apply(gen uint64, next State[T]) bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	if vm.closed || gen != vm.generation {
		return false
	}
	if !CanTransition(vm.store.Get().Phase(), next.Phase()) {
		return false
	}

	_ = vm.store.Set(vm.lifetime, next)

	if vm.cancelFetch != nil {
		vm.cancelFetch()
		vm.cancelFetch = nil
	}

	vm.log.Debug("state published", slog.String("phase", next.Phase().String()))
	return true
}

// Close tears the screen down: it cancels any in-flight fetch and closes
// the state store, disconnecting all observers. The final state remains
// readable via Current. Safe to call multiple times.
func (vm *ViewModel[T]) Close() error {
	vm.mu.Lock()
	if vm.closed {
		vm.mu.Unlock()
		return nil
	}
	vm.closed = true
	if vm.cancelFetch != nil {
		vm.cancelFetch()
		vm.cancelFetch = nil
	}
	vm.mu.Unlock()

	vm.teardown()
	return vm.store.Close()
}
