package server

import (
	"chat-room/domain"
	"chat-room/domain/event"
)

// Inbound frame types, one per room operation.
const (
	FrameJoin                   = "join"
	FrameLeave                  = "leave"
	FrameGetMembers             = "get_members"
	FrameGetChannels            = "get_channels"
	FrameCreateChannel          = "create_channel"
	FrameDeleteChannel          = "delete_channel"
	FrameAddAgentToChannel      = "add_agent_to_channel"
	FrameRemoveAgentFromChannel = "remove_agent_from_channel"
	FrameRenew                  = "renew"
)

// Outbound frame types: replies to the sender, then room notifications.
const (
	FrameAck                     = "ack"
	FrameError                   = "error"
	FrameMembers                 = "members"
	FrameChannels                = "channels"
	FrameNotification            = "notification"
	FrameJoined                  = "join"
	FrameLeft                    = "leave"
	FrameAddMemberToChannel      = "add_member_to_channel"
	FrameRemoveMemberFromChannel = "remove_member_from_channel"
)

// Frame is the JSON message exchanged on a room socket.
type Frame struct {
	Type      string               `json:"type" validate:"required,oneof=join leave get_members get_channels create_channel delete_channel add_agent_to_channel remove_agent_from_channel renew"`
	RequestID string               `json:"request_id,omitempty"`
	Agent     *domain.AgentInfo    `json:"agent,omitempty"`
	Channel   *domain.ChannelInfo  `json:"channel,omitempty"`
	Name      string               `json:"name,omitempty"`
	Message   *domain.ChatMsg      `json:"message,omitempty"`
	Members   []domain.AgentInfo   `json:"members,omitempty"`
	Channels  []domain.ChannelInfo `json:"channels,omitempty"`
	Error     string               `json:"error,omitempty"`
}

func errorFrame(requestID string, err error) Frame {
	return Frame{Type: FrameError, RequestID: requestID, Error: err.Error()}
}

// ToFrame encodes a room notification for the wire.
func ToFrame(evt event.Notification) (Frame, bool) {
	switch e := evt.(type) {
	case event.MessageNotified:
		return Frame{Type: FrameNotification, Message: &e.Message}, true
	case event.MemberJoined:
		return Frame{Type: FrameJoined, Agent: &e.Agent}, true
	case event.MemberLeft:
		return Frame{Type: FrameLeft, Agent: &e.Agent}, true
	case event.MemberAddedToChannel:
		return Frame{Type: FrameAddMemberToChannel, Channel: &e.Channel, Agent: &e.Agent}, true
	case event.MemberRemovedFromChannel:
		return Frame{Type: FrameRemoveMemberFromChannel, Channel: &e.Channel, Agent: &e.Agent}, true
	default:
		return Frame{}, false
	}
}
