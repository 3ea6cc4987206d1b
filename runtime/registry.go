package runtime

import (
	"chat-room/contract"
	"chat-room/errors"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// DefaultLease is how long a subscription stays alive without renewal.
const DefaultLease = time.Minute

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Subscribers is the observer registry of one room.
//
// Every observer holds a lease that Subscribe renews. Leases are checked
// lazily, on Subscribe and on Notify: there is no background sweep, an
// expired observer simply stays in the map until the next check.
//
// Notify is a best-effort broadcast: each live observer is served in its own
// goroutine under deliveryTimeout, and any observer whose action fails, panics
// or times out is removed. Nothing is reported to the caller.
type Subscribers struct {
	mu              sync.Mutex
	log             *slog.Logger
	clock           contract.Clock
	lease           time.Duration
	deliveryTimeout time.Duration
	observers       map[contract.Observer]time.Time // observer -> lease expiry
}

func NewSubscribers(log *slog.Logger, clock contract.Clock, lease, deliveryTimeout time.Duration) *Subscribers {
	if lease <= 0 {
		lease = DefaultLease
	}
	return &Subscribers{
		log:             log,
		clock:           clock,
		lease:           lease,
		deliveryTimeout: deliveryTimeout,
		observers:       make(map[contract.Observer]time.Time),
	}
}

// Subscribe registers observer, or pushes its expiry back if it is already known.
func (s *Subscribers) Subscribe(observer contract.Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	s.pruneLocked(now)
	s.observers[observer] = now.Add(s.lease)
}

func (s *Subscribers) Unsubscribe(observer contract.Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.observers, observer)
}

// Count returns the number of registered observers, expired ones included
// until the next lazy check.
func (s *Subscribers) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.observers)
}

// Notify runs action once per live observer and returns when every delivery
// has completed, failed or timed out.
func (s *Subscribers) Notify(ctx context.Context, action func(ctx context.Context, observer contract.Observer) error) {
	s.mu.Lock()
	s.pruneLocked(s.clock.Now())
	live := make([]contract.Observer, 0, len(s.observers))
	for observer := range s.observers {
		live = append(live, observer)
	}
	s.mu.Unlock()

	results := make([]error, len(live))
	var wg sync.WaitGroup
	for i, observer := range live {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = s.deliver(ctx, observer, action)
		}()
	}
	wg.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, err := range results {
		if err == nil {
			continue
		}
		s.log.Warn("Observer unreachable, removing it", "observer", fmt.Sprintf("%p", live[i]), "error", err)
		delete(s.observers, live[i])
	}
}

// deliver never blocks longer than deliveryTimeout, even when action ignores its context.
func (s *Subscribers) deliver(ctx context.Context, observer contract.Observer,
	action func(ctx context.Context, observer contract.Observer) error) error {
	deliveryCtx, cancel := ctx, context.CancelFunc(func() {})
	if s.deliveryTimeout > 0 {
		deliveryCtx, cancel = context.WithTimeout(ctx, s.deliveryTimeout)
	}
	defer cancel()

	done := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- fmt.Errorf("%w: %v", errors.ErrWorkerPanic, r)
			}
		}()
		done <- action(deliveryCtx, observer)
	}()

	select {
	case err := <-done:
		return err
	case <-deliveryCtx.Done():
		return deliveryCtx.Err()
	}
}

func (s *Subscribers) pruneLocked(now time.Time) {
	for observer, expiry := range s.observers {
		if expiry.Before(now) {
			s.log.Debug("Observer lease expired", "observer", fmt.Sprintf("%p", observer))
			delete(s.observers, observer)
		}
	}
}
