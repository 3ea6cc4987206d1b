package event

import (
	"chat-room/domain"
)

// Notification is a room state change handed to every live observer.
type Notification interface {
	RoomID() domain.RoomID
}

type MessageNotified struct {
	Room    domain.RoomID
	Message domain.ChatMsg
}

func (e MessageNotified) RoomID() domain.RoomID { return e.Room }

type MemberJoined struct {
	Room  domain.RoomID
	Agent domain.AgentInfo
}

func (e MemberJoined) RoomID() domain.RoomID { return e.Room }

type MemberLeft struct {
	Room  domain.RoomID
	Agent domain.AgentInfo
}

func (e MemberLeft) RoomID() domain.RoomID { return e.Room }

type MemberAddedToChannel struct {
	Room    domain.RoomID
	Channel domain.ChannelInfo
	Agent   domain.AgentInfo
}

func (e MemberAddedToChannel) RoomID() domain.RoomID { return e.Room }

type MemberRemovedFromChannel struct {
	Room    domain.RoomID
	Channel domain.ChannelInfo
	Agent   domain.AgentInfo
}

func (e MemberRemovedFromChannel) RoomID() domain.RoomID { return e.Room }
