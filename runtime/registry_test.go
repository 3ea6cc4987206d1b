package runtime

import (
	"chat-room/contract"
	"chat-room/domain"
	"chat-room/mocks"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

var hello = domain.ChatMsg{Sender: "alice", Text: "hello"}

func sendHello(ctx context.Context, observer contract.Observer) error {
	return observer.Notification(ctx, hello)
}

func newTestSubscribers(clock contract.Clock) *Subscribers {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	return NewSubscribers(log, clock, DefaultLease, 50*time.Millisecond)
}

func TestSubscribers_Subscribe_RenewDoesNotDuplicate(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	observer := mocks.NewMockObserver(ctrl)
	subscribers := newTestSubscribers(newFakeClock())

	// Given no observer is registered
	req.Zero(subscribers.Count())

	// When the same observer subscribes twice
	subscribers.Subscribe(observer)
	subscribers.Subscribe(observer)

	// Then it is registered once
	req.Equal(1, subscribers.Count())
}

func TestSubscribers_Unsubscribe_IsIdempotent(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	observer1 := mocks.NewMockObserver(ctrl)
	observer2 := mocks.NewMockObserver(ctrl)
	subscribers := newTestSubscribers(newFakeClock())
	subscribers.Subscribe(observer1)
	subscribers.Subscribe(observer2)

	subscribers.Unsubscribe(observer1)
	subscribers.Unsubscribe(observer1)

	req.Equal(1, subscribers.Count())

	// And the removed observer is never notified
	observer2.EXPECT().Notification(gomock.Any(), hello).Return(nil).Times(1)
	subscribers.Notify(context.Background(), sendHello)
}

func TestSubscribers_Notify_ReachesEveryLiveObserver(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	subscribers := newTestSubscribers(newFakeClock())

	var observers []*mocks.MockObserver
	for range 5 {
		observer := mocks.NewMockObserver(ctrl)
		observer.EXPECT().Notification(gomock.Any(), hello).Return(nil).Times(2)
		subscribers.Subscribe(observer)
		observers = append(observers, observer)
	}

	subscribers.Notify(context.Background(), sendHello)
	subscribers.Notify(context.Background(), sendHello)

	req.Equal(len(observers), subscribers.Count())
}

func TestSubscribers_Notify_DropsExpiredObserver(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	clock := newFakeClock()
	observer := mocks.NewMockObserver(ctrl)
	subscribers := newTestSubscribers(clock)

	// Given an observer that never renews its lease
	subscribers.Subscribe(observer)

	// When the lease window has passed
	clock.Advance(DefaultLease + time.Second)

	// Then it is removed without being called
	observer.EXPECT().Notification(gomock.Any(), gomock.Any()).Times(0)
	subscribers.Notify(context.Background(), sendHello)
	req.Zero(subscribers.Count())
}

func TestSubscribers_Notify_AtExpiryInstantStillDelivers(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	clock := newFakeClock()
	observer := mocks.NewMockObserver(ctrl)
	subscribers := newTestSubscribers(clock)
	subscribers.Subscribe(observer)

	clock.Advance(DefaultLease)

	observer.EXPECT().Notification(gomock.Any(), hello).Return(nil).Times(1)
	subscribers.Notify(context.Background(), sendHello)
	req.Equal(1, subscribers.Count())
}

func TestSubscribers_Subscribe_RenewExtendsLease(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	clock := newFakeClock()
	observer := mocks.NewMockObserver(ctrl)
	subscribers := newTestSubscribers(clock)

	// Given an observer renewing before each lease ends
	subscribers.Subscribe(observer)
	clock.Advance(40 * time.Second)
	subscribers.Subscribe(observer)
	clock.Advance(40 * time.Second)

	// Then it is still notified 80 seconds after the first subscription
	observer.EXPECT().Notification(gomock.Any(), hello).Return(nil).Times(1)
	subscribers.Notify(context.Background(), sendHello)
	req.Equal(1, subscribers.Count())
}

func TestSubscribers_Subscribe_PrunesExpiredObservers(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	clock := newFakeClock()
	stale := mocks.NewMockObserver(ctrl)
	fresh := mocks.NewMockObserver(ctrl)
	subscribers := newTestSubscribers(clock)

	subscribers.Subscribe(stale)
	clock.Advance(2 * DefaultLease)
	subscribers.Subscribe(fresh)

	req.Equal(1, subscribers.Count())
}

func TestSubscribers_Notify_IsolatesFailingObserver(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	failing := mocks.NewMockObserver(ctrl)
	healthy := mocks.NewMockObserver(ctrl)
	subscribers := newTestSubscribers(newFakeClock())
	subscribers.Subscribe(failing)
	subscribers.Subscribe(healthy)

	// Given one observer is unreachable
	failing.EXPECT().Notification(gomock.Any(), hello).Return(fmt.Errorf("connection reset")).Times(1)
	healthy.EXPECT().Notification(gomock.Any(), hello).Return(nil).Times(2)

	// When two notifications are broadcast
	subscribers.Notify(context.Background(), sendHello)
	subscribers.Notify(context.Background(), sendHello)

	// Then the failing observer was tried once and removed
	req.Equal(1, subscribers.Count())
}

func TestSubscribers_Notify_RemovesSlowObserver(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	slow := mocks.NewMockObserver(ctrl)
	healthy := mocks.NewMockObserver(ctrl)
	subscribers := newTestSubscribers(newFakeClock())
	subscribers.Subscribe(slow)
	subscribers.Subscribe(healthy)

	release := make(chan struct{})
	defer close(release)
	// Given an observer that ignores its context and never answers in time
	slow.EXPECT().Notification(gomock.Any(), hello).DoAndReturn(
		func(ctx context.Context, msg domain.ChatMsg) error {
			<-release
			return nil
		}).Times(1)
	healthy.EXPECT().Notification(gomock.Any(), hello).Return(nil).Times(1)

	// When a notification is broadcast
	done := make(chan struct{})
	go func() {
		subscribers.Notify(context.Background(), sendHello)
		close(done)
	}()

	// Then Notify returns after the delivery timeout
	select {
	case <-done:
	case <-time.After(time.Second):
		req.Fail("Notify blocked on a slow observer")
	}
	// And the slow observer is gone
	req.Equal(1, subscribers.Count())
}

func TestSubscribers_Notify_RemovesPanickingObserver(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	observer := mocks.NewMockObserver(ctrl)
	subscribers := newTestSubscribers(newFakeClock())
	subscribers.Subscribe(observer)

	observer.EXPECT().Notification(gomock.Any(), hello).DoAndReturn(
		func(ctx context.Context, msg domain.ChatMsg) error {
			panic("boom")
		}).Times(1)

	subscribers.Notify(context.Background(), sendHello)

	req.Zero(subscribers.Count())
}
