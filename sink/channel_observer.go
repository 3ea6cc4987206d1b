package sink

import (
	"chat-room/domain"
	"chat-room/domain/event"
	"chat-room/errors"
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// ChannelObserver buffers room notifications for a single consumer,
// typically one client connection.
// A delivery fails once the observer is closed, or when the buffer stays
// full until the delivery context ends: the room then drops the observer.
type ChannelObserver struct {
	ID     string
	Room   domain.RoomID
	events chan event.Notification
	closed chan struct{}
	once   sync.Once
}

func NewChannelObserver(room domain.RoomID, bufferSize int) *ChannelObserver {
	return &ChannelObserver{
		ID:     uuid.NewString(),
		Room:   room,
		events: make(chan event.Notification, bufferSize),
		closed: make(chan struct{}),
	}
}

// Events is read by the owner of the observer.
func (o *ChannelObserver) Events() <-chan event.Notification { return o.events }

// Close makes every later delivery fail. Safe to call more than once.
func (o *ChannelObserver) Close() {
	o.once.Do(func() { close(o.closed) })
}

func (o *ChannelObserver) Notification(ctx context.Context, msg domain.ChatMsg) error {
	return o.push(ctx, event.MessageNotified{Room: o.Room, Message: msg})
}

func (o *ChannelObserver) Join(ctx context.Context, agent domain.AgentInfo) error {
	return o.push(ctx, event.MemberJoined{Room: o.Room, Agent: agent})
}

func (o *ChannelObserver) Leave(ctx context.Context, agent domain.AgentInfo) error {
	return o.push(ctx, event.MemberLeft{Room: o.Room, Agent: agent})
}

func (o *ChannelObserver) AddMemberToChannel(ctx context.Context, channel domain.ChannelInfo, agent domain.AgentInfo) error {
	return o.push(ctx, event.MemberAddedToChannel{Room: o.Room, Channel: channel, Agent: agent})
}

func (o *ChannelObserver) RemoveMemberFromChannel(ctx context.Context, channel domain.ChannelInfo, agent domain.AgentInfo) error {
	return o.push(ctx, event.MemberRemovedFromChannel{Room: o.Room, Channel: channel, Agent: agent})
}

func (o *ChannelObserver) push(ctx context.Context, e event.Notification) error {
	select {
	case <-o.closed:
		return errors.ErrObserverClosed
	default:
	}
	select {
	case o.events <- e:
		return nil
	case <-o.closed:
		return errors.ErrObserverClosed
	case <-ctx.Done():
		return fmt.Errorf("%w: %v", errors.ErrObserverFull, ctx.Err())
	}
}
