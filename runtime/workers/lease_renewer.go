package workers

import (
	"chat-room/contract"
	"context"
	"log/slog"
	"time"
)

// LeaseRenewer keeps an observer subscribed to a room by renewing its lease
// every interval. The interval must stay below the room lease duration.
type LeaseRenewer struct {
	log      *slog.Logger
	room     contract.IRoom
	observer contract.Observer
	interval time.Duration
}

func NewLeaseRenewer(log *slog.Logger, room contract.IRoom, observer contract.Observer, interval time.Duration) *LeaseRenewer {
	return &LeaseRenewer{log: log, room: room, observer: observer, interval: interval}
}

// Run renews on every tick until ctx is done. The observer is expected to be
// subscribed already: the first renewal happens one interval after start.
// A failed renewal is retried on the next tick.
func (w *LeaseRenewer) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := w.room.Subscribe(ctx, w.observer); err != nil {
				w.log.Warn("Lease renewal failed", "room_id", w.room.ID(), "err", err)
			}
		}
	}
}
