//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-room/domain"
	"context"
	"reflect"
	"time"
)

type ISupervisor interface {
	Start(ctx context.Context, worker Worker)
	Wait()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	if named, ok := w.(interface{ Name() string }); ok {
		return named.Name()
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Observer receives the state changes of a room.
// Returning an error means the notification could not be delivered,
// the room then forgets the observer.
// Implementations must be comparable (pointer receivers): the observer is its own subscription key.
type Observer interface {
	Notification(ctx context.Context, msg domain.ChatMsg) error
	Join(ctx context.Context, agent domain.AgentInfo) error
	Leave(ctx context.Context, agent domain.AgentInfo) error
	AddMemberToChannel(ctx context.Context, channel domain.ChannelInfo, agent domain.AgentInfo) error
	RemoveMemberFromChannel(ctx context.Context, channel domain.ChannelInfo, agent domain.AgentInfo) error
}

// ISubscribers keeps the observers of one room, each with a renewable lease.
type ISubscribers interface {
	Subscribe(observer Observer)
	Unsubscribe(observer Observer)
	Notify(ctx context.Context, action func(ctx context.Context, observer Observer) error)
	Count() int
}

// IRoom is the boundary of a room actor. Calls on one room never interleave.
type IRoom interface {
	ID() domain.RoomID
	GetMembers(ctx context.Context) ([]domain.AgentInfo, error)
	Join(ctx context.Context, agent domain.AgentInfo) error
	Leave(ctx context.Context, name string) error
	GetChannels(ctx context.Context) ([]domain.ChannelInfo, error)
	CreateChannel(ctx context.Context, channel domain.ChannelInfo) error
	DeleteChannel(ctx context.Context, name string) error
	AddAgentToChannel(ctx context.Context, channel domain.ChannelInfo, agent domain.AgentInfo) error
	RemoveAgentFromChannel(ctx context.Context, channel domain.ChannelInfo, agent domain.AgentInfo) error
	Subscribe(ctx context.Context, observer Observer) error
	Unsubscribe(ctx context.Context, observer Observer) error
}

type IDirectory interface {
	Room(roomID domain.RoomID) (IRoom, error)
	Rooms() []domain.RoomID
}

// RoomStats samples the load of one room.
type RoomStats struct {
	Room        domain.RoomID
	Pending     int
	Capacity    int
	Subscribers int
}

type IRoomStats interface {
	Stats() []RoomStats
}

type Clock interface {
	Now() time.Time
}
