package e2e

import (
	"chat-room/infrastructure/websocket/server"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gookit/color"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"
)

type BaseWebsocketSuite struct {
	suite.Suite
	Config Config
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseWebsocketSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.ChatRoomAddr == "" {
		s.T().Skip("E2E_CHATROOM_ADDR not set")
	}
}

// Client is one socket on one room, logging the frames it exchanges.
type Client struct {
	suite *BaseWebsocketSuite
	name  string
	conn  *websocket.Conn
}

// Connect opens a socket on room and prints a colorized header for the step.
func (s *BaseWebsocketSuite) Connect(name, room string) *Client {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)

	url := fmt.Sprintf("ws://%s/rooms/%s/ws", s.Config.ChatRoomAddr, room)
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	s.Require().NoError(err, "Failed to connect to chat room at "+url)
	s.T().Cleanup(func() { _ = conn.Close() })
	return &Client{suite: s, name: name, conn: conn}
}

// Send writes frame and returns its reply with the notifications received meanwhile.
func (c *Client) Send(frame server.Frame) (server.Frame, []server.Frame) {
	frame.RequestID = uuid.NewString()
	start := time.Now()
	c.log("SEND", frame)
	c.suite.Require().NoError(c.conn.WriteJSON(frame))

	var notifications []server.Frame
	for {
		reply := c.Read()
		if reply.RequestID == frame.RequestID {
			c.suite.T().Logf("%s %s [%s] in %v", c.name, frame.Type, reply.Type, time.Since(start))
			return reply, notifications
		}
		notifications = append(notifications, reply)
	}
}

// Read waits for the next frame.
func (c *Client) Read() server.Frame {
	c.suite.Require().NoError(c.conn.SetReadDeadline(time.Now().Add(10 * time.Second)))
	var frame server.Frame
	c.suite.Require().NoError(c.conn.ReadJSON(&frame))
	c.log("RECV", frame)
	return frame
}

// Until reads frames, keeping already received ones, until one matches.
func (c *Client) Until(already []server.Frame, match func(server.Frame) bool) server.Frame {
	for _, frame := range already {
		if match(frame) {
			return frame
		}
	}
	for {
		if frame := c.Read(); match(frame) {
			return frame
		}
	}
}

func (c *Client) log(direction string, frame server.Frame) {
	if !c.suite.Config.DebugJSON {
		return
	}
	body, _ := json.MarshalIndent(frame, "", "  ")
	c.suite.T().Logf("%s %s:\n%s", c.name, direction, body)
}
