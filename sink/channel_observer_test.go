package sink_test

import (
	"chat-room/domain"
	"chat-room/domain/event"
	"chat-room/errors"
	"chat-room/sink"
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestChannelObserver_BuffersNotificationsInOrder(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	room := domain.RoomID("lobby")
	alice := domain.AgentInfo{Name: "alice", IsHuman: true}
	general := domain.ChannelInfo{Name: "general"}
	observer := sink.NewChannelObserver(room, 5)

	req.NotEmpty(observer.ID)
	req.NoError(observer.Notification(ctx, domain.JoinNotice("alice")))
	req.NoError(observer.Join(ctx, alice))
	req.NoError(observer.AddMemberToChannel(ctx, general, alice))
	req.NoError(observer.RemoveMemberFromChannel(ctx, general, alice))
	req.NoError(observer.Leave(ctx, alice))

	req.Equal(event.MessageNotified{Room: room, Message: domain.JoinNotice("alice")}, <-observer.Events())
	req.Equal(event.MemberJoined{Room: room, Agent: alice}, <-observer.Events())
	req.Equal(event.MemberAddedToChannel{Room: room, Channel: general, Agent: alice}, <-observer.Events())
	req.Equal(event.MemberRemovedFromChannel{Room: room, Channel: general, Agent: alice}, <-observer.Events())
	req.Equal(event.MemberLeft{Room: room, Agent: alice}, <-observer.Events())
}

func TestChannelObserver_FullBufferFailsWhenContextEnds(t *testing.T) {
	req := require.New(t)
	observer := sink.NewChannelObserver("lobby", 1)

	// Given the buffer is full
	req.NoError(observer.Notification(context.Background(), domain.JoinNotice("alice")))

	// When another notification cannot be buffered in time
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := observer.Notification(ctx, domain.JoinNotice("bob"))

	// Then the delivery fails
	req.True(stderrors.Is(err, errors.ErrObserverFull))
}

func TestChannelObserver_ClosedRejectsDelivery(t *testing.T) {
	req := require.New(t)
	observer := sink.NewChannelObserver("lobby", 1)

	observer.Close()
	observer.Close()

	err := observer.Join(context.Background(), domain.AgentInfo{Name: "alice"})
	req.True(stderrors.Is(err, errors.ErrObserverClosed))
}
