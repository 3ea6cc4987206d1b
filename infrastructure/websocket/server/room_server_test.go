package server_test

import (
	"chat-room/contract"
	"chat-room/domain"
	"chat-room/infrastructure/websocket/server"
	"chat-room/mocks"
	"chat-room/runtime"
	"chat-room/runtime/workers"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func startServer(t *testing.T) *httptest.Server {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	directory := runtime.NewDirectory(log, workers.NewSupervisor(log, 0), runtime.SystemClock{},
		16, runtime.DefaultLease, time.Second)
	directory.Start(context.Background())

	roomServer := server.NewRoomServer(log, directory, 16, 50*time.Millisecond, time.Second)
	httpServer := httptest.NewServer(roomServer.Routes())
	t.Cleanup(func() {
		httpServer.Close()
		directory.Stop()
	})
	return httpServer
}

func dial(t *testing.T, httpServer *httptest.Server, room string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(httpServer.URL, "http") + "/rooms/" + room + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

// send writes a frame and waits for its reply, keeping the notifications
// read in between.
func send(t *testing.T, conn *websocket.Conn, frame server.Frame) (server.Frame, []server.Frame) {
	t.Helper()
	frame.RequestID = uuid.NewString()
	require.NoError(t, conn.WriteJSON(frame))
	var notifications []server.Frame
	for {
		reply := read(t, conn)
		if reply.RequestID == frame.RequestID {
			return reply, notifications
		}
		notifications = append(notifications, reply)
	}
}

func read(t *testing.T, conn *websocket.Conn) server.Frame {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var frame server.Frame
	require.NoError(t, conn.ReadJSON(&frame))
	return frame
}

// readN reads n notification frames, in order.
func readN(t *testing.T, conn *websocket.Conn, n int, already []server.Frame) []server.Frame {
	t.Helper()
	frames := already
	for len(frames) < n {
		frames = append(frames, read(t, conn))
	}
	return frames
}

func TestRoomServer_JoinIsBroadcastToEverySocket(t *testing.T) {
	req := require.New(t)
	httpServer := startServer(t)
	alice := dial(t, httpServer, "lobby")
	watcher := dial(t, httpServer, "lobby")

	// Given the watcher is subscribed
	reply, _ := send(t, watcher, server.Frame{Type: server.FrameRenew})
	req.Equal(server.FrameAck, reply.Type)

	// When alice joins
	reply, aliceFrames := send(t, alice, server.Frame{Type: server.FrameJoin,
		Agent: &domain.AgentInfo{Name: "alice", IsHuman: true}})
	req.Equal(server.FrameAck, reply.Type)

	// Then every socket gets the notice then the join event
	for _, frames := range [][]server.Frame{readN(t, watcher, 2, nil), readN(t, alice, 2, aliceFrames)} {
		req.Equal(server.FrameNotification, frames[0].Type)
		req.Equal("alice joins the chat room.", frames[0].Message.Text)
		req.Equal("System", frames[0].Message.Sender)
		req.Equal(server.FrameJoined, frames[1].Type)
		req.Equal("alice", frames[1].Agent.Name)
	}

	// And the roster is visible to everyone
	reply, _ = send(t, watcher, server.Frame{Type: server.FrameGetMembers})
	req.Equal(server.FrameMembers, reply.Type)
	req.Equal([]domain.AgentInfo{{Name: "alice", IsHuman: true}}, reply.Members)
}

func TestRoomServer_ChannelOperations(t *testing.T) {
	req := require.New(t)
	httpServer := startServer(t)
	conn := dial(t, httpServer, "lobby")
	var notifications []server.Frame

	reply, received := send(t, conn, server.Frame{Type: server.FrameAddAgentToChannel,
		Channel: &domain.ChannelInfo{Name: "general"}, Agent: &domain.AgentInfo{Name: "alice"}})
	req.Equal(server.FrameAck, reply.Type)
	notifications = append(notifications, received...)

	reply, received = send(t, conn, server.Frame{Type: server.FrameCreateChannel,
		Channel: &domain.ChannelInfo{Name: "general", Description: "everything"}})
	req.Equal(server.FrameAck, reply.Type)
	notifications = append(notifications, received...)

	reply, received = send(t, conn, server.Frame{Type: server.FrameGetChannels})
	req.Equal(server.FrameChannels, reply.Type)
	req.Equal([]domain.ChannelInfo{{Name: "general", Description: "everything"}}, reply.Channels)
	notifications = append(notifications, received...)

	// The not found notices reached the socket
	notices := readN(t, conn, 2, notifications)
	req.Equal("Channel 'general' not found.", notices[0].Message.Text)
	req.Equal("Agent 'alice' not found.", notices[1].Message.Text)
}

func TestRoomServer_InvalidFrames(t *testing.T) {
	req := require.New(t)
	httpServer := startServer(t)
	conn := dial(t, httpServer, "lobby")

	reply, _ := send(t, conn, server.Frame{Type: "shout"})
	req.Equal(server.FrameError, reply.Type)
	req.Contains(reply.Error, "unknown frame type")

	reply, _ = send(t, conn, server.Frame{Type: server.FrameJoin})
	req.Equal(server.FrameError, reply.Type)
	req.Contains(reply.Error, "invalid agent")

	// A frame that is not JSON gets an error without request id
	req.NoError(conn.WriteMessage(websocket.TextMessage, []byte("{not json")))
	reply = read(t, conn)
	req.Equal(server.FrameError, reply.Type)
	req.Empty(reply.RequestID)
}

func TestRoomServer_RoomsAreIsolated(t *testing.T) {
	req := require.New(t)
	httpServer := startServer(t)
	lobby := dial(t, httpServer, "lobby")
	ops := dial(t, httpServer, "ops")

	_, _ = send(t, lobby, server.Frame{Type: server.FrameJoin, Agent: &domain.AgentInfo{Name: "alice"}})

	reply, notifications := send(t, ops, server.Frame{Type: server.FrameGetMembers})
	req.Empty(reply.Members)
	req.Empty(notifications)

	resp, err := http.Get(httpServer.URL + "/rooms")
	req.NoError(err)
	defer resp.Body.Close()
	var rooms []domain.RoomID
	req.NoError(json.NewDecoder(resp.Body).Decode(&rooms))
	req.Equal([]domain.RoomID{"lobby", "ops"}, rooms)
}

func TestRoomServer_ConnectSubscribesOnce(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	directory := mocks.NewMockIDirectory(ctrl)
	room := mocks.NewMockIRoom(ctrl)
	directory.EXPECT().Room(domain.RoomID("lobby")).Return(room, nil)
	room.EXPECT().ID().Return(domain.RoomID("lobby")).AnyTimes()

	// Then the socket takes a single room turn to subscribe
	room.EXPECT().Subscribe(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	unsubscribed := make(chan struct{})
	room.EXPECT().Unsubscribe(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, contract.Observer) error {
			close(unsubscribed)
			return nil
		}).Times(1)

	httpServer := httptest.NewServer(server.NewRoomServer(log, directory, 16, time.Hour, time.Second).Routes())
	defer httpServer.Close()

	// When a client connects then hangs up
	conn := dial(t, httpServer, "lobby")
	req.NoError(conn.Close())

	select {
	case <-unsubscribed:
	case <-time.After(2 * time.Second):
		req.FailNow("Socket should be unsubscribed on close")
	}
}
