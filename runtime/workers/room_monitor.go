package workers

import (
	"chat-room/contract"
	"context"
	"log/slog"
	"time"
)

// RoomMonitor periodically samples the mailbox of every room.
// Reading len and cap of a channel never blocks, so sampling does not
// compete with the rooms for their turn. A room whose mailbox has at most
// lowCapacityThreshold free slots is reported as backed up.
type RoomMonitor struct {
	log                  *slog.Logger
	rooms                contract.IRoomStats
	interval             time.Duration
	lowCapacityThreshold int
}

func NewRoomMonitor(log *slog.Logger, rooms contract.IRoomStats,
	interval time.Duration, lowCapacityThreshold int) *RoomMonitor {
	return &RoomMonitor{
		log:                  log,
		rooms:                rooms,
		interval:             interval,
		lowCapacityThreshold: lowCapacityThreshold,
	}
}

func (w *RoomMonitor) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping room monitor")
			return nil
		case <-ticker.C:
			w.sample()
		}
	}
}

func (w *RoomMonitor) sample() {
	for _, stats := range w.rooms.Stats() {
		w.log.Debug("Room usage", "room_id", stats.Room,
			"pending", stats.Pending, "capacity", stats.Capacity, "subscribers", stats.Subscribers)
		if stats.Capacity <= 0 {
			// Unbuffered mailbox
			continue
		}
		if left := stats.Capacity - stats.Pending; left <= w.lowCapacityThreshold {
			w.log.Warn("Room mailbox almost full", "room_id", stats.Room, "capacity_left", left)
		}
	}
}
