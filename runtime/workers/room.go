package workers

import (
	"chat-room/contract"
	"chat-room/domain"
	"chat-room/domain/event"
	"chat-room/domain/room"
	"chat-room/errors"
	"context"
	"fmt"
	"log/slog"
)

// command is one turn of the room: fn runs on the worker goroutine.
type command struct {
	ctx  context.Context
	name string
	fn   func(ctx context.Context) error
	err  error
	done chan struct{}
}

// RoomWorker is the actor owning one room.
//
// Commands are taken from a single mailbox and executed one at a time,
// broadcast included, so two operations on the same room never interleave
// and the mutation is visible before any observer hears about it.
// Rooms do not share anything: distinct rooms run in parallel.
type RoomWorker struct {
	room        *room.Room
	subscribers contract.ISubscribers
	commands    chan *command
	quit        <-chan struct{}
	log         *slog.Logger
}

// NewRoomWorker builds the actor. quit is closed when the room must stop
// accepting commands; callers blocked on it get ErrRoomStopped.
func NewRoomWorker(log *slog.Logger, room *room.Room, subscribers contract.ISubscribers,
	bufferSize int, quit <-chan struct{}) *RoomWorker {
	return &RoomWorker{
		room:        room,
		subscribers: subscribers,
		commands:    make(chan *command, bufferSize),
		quit:        quit,
		log:         log.With("room_id", room.ID),
	}
}

func (w *RoomWorker) Name() string { return fmt.Sprintf("RoomWorker(%s)", w.room.ID) }

func (w *RoomWorker) ID() domain.RoomID { return w.room.ID }

// Stats reads the mailbox without taking a turn, so it stays cheap on a busy room.
func (w *RoomWorker) Stats() contract.RoomStats {
	return contract.RoomStats{
		Room:        w.room.ID,
		Pending:     len(w.commands),
		Capacity:    cap(w.commands),
		Subscribers: w.subscribers.Count(),
	}
}

func (w *RoomWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping worker")
			return ctx.Err()
		case cmd := <-w.commands:
			w.execute(ctx, cmd)
		}
	}
}

// execute applies cmd unless its caller already gave up.
// A panic is reported to the caller before it reaches the supervisor.
func (w *RoomWorker) execute(ctx context.Context, cmd *command) {
	defer func() {
		if r := recover(); r != nil {
			cmd.err = fmt.Errorf("%w: %s: %v", errors.ErrWorkerPanic, cmd.name, r)
			close(cmd.done)
			panic(r)
		}
	}()
	if cmd.ctx.Err() != nil {
		w.log.Debug("Command abandoned by caller", "command", cmd.name)
		cmd.err = cmd.ctx.Err()
		close(cmd.done)
		return
	}
	cmd.err = cmd.fn(ctx)
	close(cmd.done)
}

// do posts fn to the mailbox and waits for its turn to complete.
func (w *RoomWorker) do(ctx context.Context, name string, fn func(ctx context.Context) error) error {
	cmd := &command{ctx: ctx, name: name, fn: fn, done: make(chan struct{})}
	select {
	case w.commands <- cmd:
	case <-ctx.Done():
		return ctx.Err()
	case <-w.quit:
		return errors.ErrRoomStopped
	}
	select {
	case <-cmd.done:
		return cmd.err
	case <-ctx.Done():
		return ctx.Err()
	case <-w.quit:
		return errors.ErrRoomStopped
	}
}

// mutate applies fn to the room, then broadcasts whatever it recorded.
func (w *RoomWorker) mutate(ctx context.Context, name string, fn func(r *room.Room) error) error {
	return w.do(ctx, name, func(runCtx context.Context) error {
		if err := fn(w.room); err != nil {
			w.room.FlushEvents()
			return err
		}
		w.broadcast(runCtx, w.room.FlushEvents())
		return nil
	})
}

// broadcast delivers events to one snapshot of observers. Each observer gets
// the events in order and stops at its first failed delivery.
// A delivery outliving its context stops before the next event, so a late
// observer never receives the tail of an operation after a newer one.
func (w *RoomWorker) broadcast(ctx context.Context, events []event.Notification) {
	if len(events) == 0 {
		return
	}
	w.subscribers.Notify(ctx, func(ctx context.Context, observer contract.Observer) error {
		for _, evt := range events {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := Deliver(ctx, observer, evt); err != nil {
				return err
			}
		}
		return nil
	})
}

func (w *RoomWorker) GetMembers(ctx context.Context) ([]domain.AgentInfo, error) {
	var members []domain.AgentInfo
	err := w.do(ctx, "get_members", func(context.Context) error {
		members = w.room.Members()
		return nil
	})
	return members, err
}

func (w *RoomWorker) GetChannels(ctx context.Context) ([]domain.ChannelInfo, error) {
	var channels []domain.ChannelInfo
	err := w.do(ctx, "get_channels", func(context.Context) error {
		channels = w.room.Channels()
		return nil
	})
	return channels, err
}

func (w *RoomWorker) Join(ctx context.Context, agent domain.AgentInfo) error {
	return w.mutate(ctx, "join", func(r *room.Room) error { return r.Join(agent) })
}

func (w *RoomWorker) Leave(ctx context.Context, name string) error {
	return w.mutate(ctx, "leave", func(r *room.Room) error { return r.Leave(name) })
}

func (w *RoomWorker) CreateChannel(ctx context.Context, channel domain.ChannelInfo) error {
	return w.mutate(ctx, "create_channel", func(r *room.Room) error { return r.CreateChannel(channel) })
}

func (w *RoomWorker) DeleteChannel(ctx context.Context, name string) error {
	return w.mutate(ctx, "delete_channel", func(r *room.Room) error { return r.DeleteChannel(name) })
}

func (w *RoomWorker) AddAgentToChannel(ctx context.Context, channel domain.ChannelInfo, agent domain.AgentInfo) error {
	return w.mutate(ctx, "add_agent_to_channel", func(r *room.Room) error {
		return r.AddAgentToChannel(channel, agent)
	})
}

func (w *RoomWorker) RemoveAgentFromChannel(ctx context.Context, channel domain.ChannelInfo, agent domain.AgentInfo) error {
	return w.mutate(ctx, "remove_agent_from_channel", func(r *room.Room) error {
		return r.RemoveAgentFromChannel(channel, agent)
	})
}

// Subscribe creates or renews the observer lease.
func (w *RoomWorker) Subscribe(ctx context.Context, observer contract.Observer) error {
	return w.do(ctx, "subscribe", func(context.Context) error {
		w.subscribers.Subscribe(observer)
		return nil
	})
}

func (w *RoomWorker) Unsubscribe(ctx context.Context, observer contract.Observer) error {
	return w.do(ctx, "unsubscribe", func(context.Context) error {
		w.subscribers.Unsubscribe(observer)
		return nil
	})
}

// Deliver maps a room notification onto the observer surface.
func Deliver(ctx context.Context, observer contract.Observer, evt event.Notification) error {
	switch e := evt.(type) {
	case event.MessageNotified:
		return observer.Notification(ctx, e.Message)
	case event.MemberJoined:
		return observer.Join(ctx, e.Agent)
	case event.MemberLeft:
		return observer.Leave(ctx, e.Agent)
	case event.MemberAddedToChannel:
		return observer.AddMemberToChannel(ctx, e.Channel, e.Agent)
	case event.MemberRemovedFromChannel:
		return observer.RemoveMemberFromChannel(ctx, e.Channel, e.Agent)
	default:
		return fmt.Errorf("unsupported notification %T", evt)
	}
}
