package sink

import (
	"chat-room/domain"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/gookit/color"
)

// ConsoleObserver echoes the room activity to a terminal and to the logs.
type ConsoleObserver struct {
	mu      sync.Mutex
	log     *slog.Logger
	out     io.Writer
	room    domain.RoomID
	colours bool
}

func NewConsoleObserver(log *slog.Logger, out io.Writer, room domain.RoomID, colours bool) *ConsoleObserver {
	return &ConsoleObserver{log: log, out: out, room: room, colours: colours}
}

func (o *ConsoleObserver) Notification(_ context.Context, msg domain.ChatMsg) error {
	o.log.Info("Room notification", "room_id", o.room, "sender", msg.Sender, "text", msg.Text)
	return o.printf(color.New(color.FgCyan), "%s: %s", msg.Sender, msg.Text)
}

func (o *ConsoleObserver) Join(_ context.Context, agent domain.AgentInfo) error {
	o.log.Info("Member joined", "room_id", o.room, "agent", agent.Name, "human", agent.IsHuman)
	return o.printf(color.New(color.FgGreen), "+ %s (%s)", agent.Name, describe(agent))
}

func (o *ConsoleObserver) Leave(_ context.Context, agent domain.AgentInfo) error {
	o.log.Info("Member left", "room_id", o.room, "agent", agent.Name)
	return o.printf(color.New(color.FgRed), "- %s", agent.Name)
}

func (o *ConsoleObserver) AddMemberToChannel(_ context.Context, channel domain.ChannelInfo, agent domain.AgentInfo) error {
	o.log.Info("Member added to channel", "room_id", o.room, "channel", channel.Name, "agent", agent.Name)
	return o.printf(color.New(color.FgYellow), "#%s + %s", channel.Name, agent.Name)
}

func (o *ConsoleObserver) RemoveMemberFromChannel(_ context.Context, channel domain.ChannelInfo, agent domain.AgentInfo) error {
	o.log.Info("Member removed from channel", "room_id", o.room, "channel", channel.Name, "agent", agent.Name)
	return o.printf(color.New(color.FgYellow), "#%s - %s", channel.Name, agent.Name)
}

func (o *ConsoleObserver) printf(style color.Style, format string, args ...any) error {
	line := fmt.Sprintf("[%s] ", o.room) + fmt.Sprintf(format, args...)
	if o.colours {
		line = style.Render(line)
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	_, err := fmt.Fprintln(o.out, line)
	return err
}

func describe(agent domain.AgentInfo) string {
	if agent.SelfDescription != "" {
		return agent.SelfDescription
	}
	if agent.IsHuman {
		return "human"
	}
	return "agent"
}
