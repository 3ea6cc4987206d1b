package e2e

import (
	"chat-room/domain"
	"chat-room/infrastructure/websocket/server"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type testRoomSuite struct {
	BaseWebsocketSuite
}

func TestRoomSuite(t *testing.T) {
	suite.Run(t, &testRoomSuite{})
}

func (s *testRoomSuite) TestMembershipFlow() {
	// A fresh room per run keeps the scenario independent from the server history
	room := "e2e-" + uuid.NewString()
	alice := s.Connect("Alice connects", room)
	watcher := s.Connect("Watcher connects", room)

	_, _ = watcher.Send(server.Frame{Type: server.FrameRenew})

	s.Run("Step 1: Join is seen by every socket", func() {
		reply, notifications := alice.Send(server.Frame{Type: server.FrameJoin,
			Agent: &domain.AgentInfo{Name: "alice", IsHuman: true}})
		s.Require().Equal(server.FrameAck, reply.Type)

		isJoin := func(f server.Frame) bool { return f.Type == server.FrameJoined }
		s.Require().Equal("alice", alice.Until(notifications, isJoin).Agent.Name)
		s.Require().Equal("alice", watcher.Until(nil, isJoin).Agent.Name)
	})

	s.Run("Step 2: Channel membership requires an existing channel", func() {
		reply, _ := alice.Send(server.Frame{Type: server.FrameCreateChannel,
			Channel: &domain.ChannelInfo{Name: "ops", Description: "on call"}})
		s.Require().Equal(server.FrameAck, reply.Type)

		reply, notifications := alice.Send(server.Frame{Type: server.FrameAddAgentToChannel,
			Channel: &domain.ChannelInfo{Name: "ops"}, Agent: &domain.AgentInfo{Name: "alice"}})
		s.Require().Equal(server.FrameAck, reply.Type)

		added := alice.Until(notifications, func(f server.Frame) bool { return f.Type == server.FrameAddMemberToChannel })
		s.Require().Equal("on call", added.Channel.Description)
	})

	s.Run("Step 3: Roster queries reply to the sender only", func() {
		reply, _ := watcher.Send(server.Frame{Type: server.FrameGetMembers})
		s.Require().Equal(server.FrameMembers, reply.Type)
		s.Require().Equal([]domain.AgentInfo{{Name: "alice", IsHuman: true}}, reply.Members)
	})

	s.Run("Step 4: Leave is seen by every socket", func() {
		reply, _ := alice.Send(server.Frame{Type: server.FrameLeave, Name: "alice"})
		s.Require().Equal(server.FrameAck, reply.Type)

		left := watcher.Until(nil, func(f server.Frame) bool { return f.Type == server.FrameLeft })
		s.Require().Equal("alice", left.Agent.Name)
	})
}
