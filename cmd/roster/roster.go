package main

import (
	"chat-room/domain"
	"chat-room/infrastructure/websocket/server"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gookit/color"
	"github.com/gorilla/websocket"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

type Roster struct {
	Members  []domain.AgentInfo
	Channels []domain.ChannelInfo
}

// FetchRoster opens a socket on the room, asks for members then channels and hangs up.
func FetchRoster(ctx context.Context, url string) (Roster, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return Roster{}, fmt.Errorf("dial %s: %w", url, err)
	}
	defer conn.Close()
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetReadDeadline(deadline)
		_ = conn.SetWriteDeadline(deadline)
	}

	members, err := query(conn, server.FrameGetMembers)
	if err != nil {
		return Roster{}, err
	}
	channels, err := query(conn, server.FrameGetChannels)
	if err != nil {
		return Roster{}, err
	}
	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
	return Roster{Members: members.Members, Channels: channels.Channels}, nil
}

// query sends one request and skips notifications until its reply shows up.
func query(conn *websocket.Conn, frameType string) (server.Frame, error) {
	request := server.Frame{Type: frameType, RequestID: uuid.NewString()}
	if err := conn.WriteJSON(request); err != nil {
		return server.Frame{}, fmt.Errorf("send %s: %w", frameType, err)
	}
	for {
		var reply server.Frame
		if err := conn.ReadJSON(&reply); err != nil {
			return server.Frame{}, fmt.Errorf("read %s reply: %w", frameType, err)
		}
		if reply.RequestID != request.RequestID {
			continue
		}
		if reply.Type == server.FrameError {
			return server.Frame{}, fmt.Errorf("%s refused: %s", frameType, reply.Error)
		}
		return reply, nil
	}
}

func Render(out io.Writer, room string, roster Roster, colours bool) {
	header(out, fmt.Sprintf("Members of %s (%d)", room, len(roster.Members)), colours)
	members := newTable(out, []string{"Name", "Kind", "Description"})
	for _, member := range roster.Members {
		members.Append([]string{member.Name, lo.Ternary(member.IsHuman, "human", "agent"), member.SelfDescription})
	}
	members.Render()

	header(out, fmt.Sprintf("Channels of %s (%d)", room, len(roster.Channels)), colours)
	channels := newTable(out, []string{"Name", "Description", "Members"})
	for _, channel := range roster.Channels {
		channels.Append([]string{channel.Name, channel.Description, strings.Join(channel.Members, ", ")})
	}
	channels.Render()
}

func header(out io.Writer, title string, colours bool) {
	title = fmt.Sprintf("  ====== %s ======", title)
	if colours {
		title = color.New(color.BgBlack, color.FgGreen).Render(title)
	}
	fmt.Fprintln(out, title)
}

func newTable(out io.Writer, columns []string) *tablewriter.Table {
	table := tablewriter.NewWriter(out)
	table.SetHeader(columns)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}
