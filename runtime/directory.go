// Package runtime handles room activation, supervision, and observer fan-out.
// It orchestrates the system without containing business logic or domain rules.
package runtime

import (
	"chat-room/contract"
	"chat-room/domain"
	"chat-room/domain/room"
	"chat-room/errors"
	"chat-room/runtime/workers"
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/samber/lo"
)

// Directory activates one room actor per identifier on first access and
// keeps it alive until Stop. Each actor runs under the supervisor, so a
// panicking room restarts with its state intact.
type Directory struct {
	mu              sync.Mutex
	log             *slog.Logger
	supervisor      contract.ISupervisor
	clock           contract.Clock
	rooms           map[domain.RoomID]*workers.RoomWorker
	bufferSize      int
	lease           time.Duration
	deliveryTimeout time.Duration
	ctx             context.Context
	cancel          context.CancelFunc
}

func NewDirectory(log *slog.Logger, supervisor contract.ISupervisor, clock contract.Clock,
	bufferSize int, lease, deliveryTimeout time.Duration) *Directory {
	return &Directory{
		log:             log,
		supervisor:      supervisor,
		clock:           clock,
		rooms:           make(map[domain.RoomID]*workers.RoomWorker),
		bufferSize:      bufferSize,
		lease:           lease,
		deliveryTimeout: deliveryTimeout,
	}
}

// Start binds the lifetime of every room to ctx.
func (d *Directory) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.ctx, d.cancel = context.WithCancel(ctx)
	d.log.Info("Room directory started")
}

// Room returns the actor of roomID, activating it when needed.
func (d *Directory) Room(roomID domain.RoomID) (contract.IRoom, error) {
	if err := roomID.Validate(); err != nil {
		return nil, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.ctx == nil {
		return nil, errors.ErrDirectoryNotStarted
	}
	if d.ctx.Err() != nil {
		return nil, errors.ErrRoomStopped
	}
	if worker, ok := d.rooms[roomID]; ok {
		return worker, nil
	}

	subscribers := NewSubscribers(d.log.With("room_id", roomID), d.clock, d.lease, d.deliveryTimeout)
	worker := workers.NewRoomWorker(d.log, room.New(roomID), subscribers, d.bufferSize, d.ctx.Done())
	d.rooms[roomID] = worker
	d.supervisor.Start(d.ctx, worker)
	d.log.Info("Room activated", "room_id", roomID)
	return worker, nil
}

// Rooms lists the activated rooms, sorted.
func (d *Directory) Rooms() []domain.RoomID {
	d.mu.Lock()
	defer d.mu.Unlock()
	ids := lo.Keys(d.rooms)
	slices.Sort(ids)
	return ids
}

// Stats samples every activated room, sorted by room.
func (d *Directory) Stats() []contract.RoomStats {
	d.mu.Lock()
	rooms := lo.Values(d.rooms)
	d.mu.Unlock()
	stats := lo.Map(rooms, func(worker *workers.RoomWorker, _ int) contract.RoomStats {
		return worker.Stats()
	})
	slices.SortFunc(stats, func(a, b contract.RoomStats) int { return strings.Compare(string(a.Room), string(b.Room)) })
	return stats
}

// Stop cancels every room and waits for their workers to return.
// Room state is lost: nothing is persisted.
func (d *Directory) Stop() {
	d.mu.Lock()
	cancel := d.cancel
	d.mu.Unlock()
	if cancel == nil {
		return
	}
	d.log.Info("Requesting room directory shutdown")
	cancel()
	d.supervisor.Wait()
	d.log.Debug("All rooms stopped")
}
