// Package room holds the authoritative roster of one chat room.
// Room is not safe for concurrent use: it is owned by a single RoomWorker
// which serializes every call. Mutations never talk to observers directly,
// they record notifications in an outbox drained with FlushEvents.
package room

import (
	"chat-room/domain"
	"chat-room/domain/event"

	"github.com/samber/lo"
)

const initialCapacity = 100

type Room struct {
	ID       domain.RoomID
	members  []domain.AgentInfo
	channels []domain.ChannelInfo
	outbox   []event.Notification
}

func New(id domain.RoomID) *Room {
	return &Room{
		ID:       id,
		members:  make([]domain.AgentInfo, 0, initialCapacity),
		channels: make([]domain.ChannelInfo, 0, initialCapacity),
	}
}

// Members returns a snapshot of the members in join order.
func (r *Room) Members() []domain.AgentInfo {
	return append([]domain.AgentInfo{}, r.members...)
}

// Channels returns a snapshot of the channels in creation order.
func (r *Room) Channels() []domain.ChannelInfo {
	return lo.Map(r.channels, func(item domain.ChannelInfo, _ int) domain.ChannelInfo {
		return item.Clone()
	})
}

// Join appends agent unless a member with the same name is already present.
// A successful join records a system notice followed by a MemberJoined event.
func (r *Room) Join(agent domain.AgentInfo) error {
	if err := domain.ValidateAgent(agent); err != nil {
		return err
	}
	if _, ok := r.member(agent.Name); ok {
		return nil
	}
	r.members = append(r.members, agent)
	r.record(
		event.MessageNotified{Room: r.ID, Message: domain.JoinNotice(agent.Name)},
		event.MemberJoined{Room: r.ID, Agent: agent},
	)
	return nil
}

func (r *Room) Leave(name string) error {
	if err := domain.ValidateAgentName(name); err != nil {
		return err
	}
	agent, index, ok := lo.FindIndexOf(r.members, func(item domain.AgentInfo) bool {
		return item.Name == name
	})
	if !ok {
		return nil
	}
	r.members = append(r.members[:index], r.members[index+1:]...)
	r.record(
		event.MessageNotified{Room: r.ID, Message: domain.LeaveNotice(name)},
		event.MemberLeft{Room: r.ID, Agent: agent},
	)
	return nil
}

// CreateChannel keeps the first channel registered under a name.
// Channel changes are not broadcast.
func (r *Room) CreateChannel(channel domain.ChannelInfo) error {
	if err := domain.ValidateChannel(channel); err != nil {
		return err
	}
	if _, ok := r.channel(channel.Name); ok {
		return nil
	}
	r.channels = append(r.channels, channel.Clone())
	return nil
}

func (r *Room) DeleteChannel(name string) error {
	if err := domain.ValidateChannelName(name); err != nil {
		return err
	}
	_, index, ok := lo.FindIndexOf(r.channels, func(item domain.ChannelInfo) bool {
		return item.Name == name
	})
	if !ok {
		return nil
	}
	r.channels = append(r.channels[:index], r.channels[index+1:]...)
	return nil
}

func (r *Room) AddAgentToChannel(channel domain.ChannelInfo, agent domain.AgentInfo) error {
	storedChannel, storedAgent, ok, err := r.resolve(channel, agent)
	if err != nil || !ok {
		return err
	}
	r.record(event.MemberAddedToChannel{Room: r.ID, Channel: storedChannel, Agent: storedAgent})
	return nil
}

func (r *Room) RemoveAgentFromChannel(channel domain.ChannelInfo, agent domain.AgentInfo) error {
	storedChannel, storedAgent, ok, err := r.resolve(channel, agent)
	if err != nil || !ok {
		return err
	}
	r.record(event.MemberRemovedFromChannel{Room: r.ID, Channel: storedChannel, Agent: storedAgent})
	return nil
}

// FlushEvents returns the pending notifications in the order they were
// produced and empties the outbox.
func (r *Room) FlushEvents() []event.Notification {
	events := r.outbox
	r.outbox = nil
	return events
}

// resolve looks up the stored channel and member by name. Every missing one
// is reported with a notice, channel first, and ok is false so the caller
// stops before emitting the membership event.
func (r *Room) resolve(channel domain.ChannelInfo, agent domain.AgentInfo) (domain.ChannelInfo, domain.AgentInfo, bool, error) {
	if err := domain.ValidateChannelName(channel.Name); err != nil {
		return domain.ChannelInfo{}, domain.AgentInfo{}, false, err
	}
	if err := domain.ValidateAgentName(agent.Name); err != nil {
		return domain.ChannelInfo{}, domain.AgentInfo{}, false, err
	}
	storedChannel, channelFound := r.channel(channel.Name)
	if !channelFound {
		r.record(event.MessageNotified{Room: r.ID, Message: domain.ChannelNotFoundNotice(channel.Name)})
	}
	storedAgent, agentFound := r.member(agent.Name)
	if !agentFound {
		r.record(event.MessageNotified{Room: r.ID, Message: domain.AgentNotFoundNotice(agent.Name)})
	}
	if !channelFound || !agentFound {
		return domain.ChannelInfo{}, domain.AgentInfo{}, false, nil
	}
	return storedChannel.Clone(), storedAgent, true, nil
}

func (r *Room) member(name string) (domain.AgentInfo, bool) {
	return lo.Find(r.members, func(item domain.AgentInfo) bool {
		return item.Name == name
	})
}

func (r *Room) channel(name string) (domain.ChannelInfo, bool) {
	return lo.Find(r.channels, func(item domain.ChannelInfo) bool {
		return item.Name == name
	})
}

func (r *Room) record(events ...event.Notification) {
	r.outbox = append(r.outbox, events...)
}
