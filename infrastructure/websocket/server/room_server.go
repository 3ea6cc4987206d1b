package server

import (
	"chat-room/contract"
	"chat-room/domain"
	"chat-room/errors"
	"chat-room/runtime/workers"
	"chat-room/sink"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/websocket"
	"github.com/samber/lo"
)

var validate = validator.New()

// RoomServer exposes rooms over websockets.
// One socket is one observer of one room: it is subscribed on connect,
// renewed on a timer and on every inbound frame, unsubscribed on close.
// Inbound frames are room operations; replies go to the sending socket only.
type RoomServer struct {
	log           *slog.Logger
	directory     contract.IDirectory
	upgrader      websocket.Upgrader
	bufferSize    int
	renewInterval time.Duration
	writeTimeout  time.Duration
}

func NewRoomServer(log *slog.Logger, directory contract.IDirectory,
	bufferSize int, renewInterval, writeTimeout time.Duration) *RoomServer {
	return &RoomServer{
		log:       log,
		directory: directory,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		bufferSize:    bufferSize,
		renewInterval: renewInterval,
		writeTimeout:  writeTimeout,
	}
}

func (s *RoomServer) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /rooms", s.ListRooms)
	mux.HandleFunc("GET /rooms/{room}/ws", s.Connect)
	return mux
}

// ListRooms returns the identifiers of the activated rooms.
func (s *RoomServer) ListRooms(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s.directory.Rooms())
}

// Connect upgrades the request and serves the socket until the client leaves.
func (s *RoomServer) Connect(w http.ResponseWriter, r *http.Request) {
	roomID := domain.RoomID(r.PathValue("room"))
	room, err := s.directory.Room(roomID)
	if err != nil {
		status := http.StatusServiceUnavailable
		if stderrors.Is(err, errors.ErrInvalidRoom) {
			status = http.StatusBadRequest
		}
		http.Error(w, err.Error(), status)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Error("websocket upgrade failed", "room_id", roomID, "err", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	observer := sink.NewChannelObserver(roomID, s.bufferSize)
	defer observer.Close()
	log := s.log.With("room_id", roomID, "observer", observer.ID)

	if err := room.Subscribe(ctx, observer); err != nil {
		log.Warn("Subscription refused", "err", err)
		_ = conn.WriteJSON(errorFrame("", err))
		return
	}
	defer func() {
		unsubscribeCtx, done := context.WithTimeout(context.Background(), s.writeTimeout)
		defer done()
		if err := room.Unsubscribe(unsubscribeCtx, observer); err != nil {
			log.Debug("Unsubscribe failed", "err", err)
		}
	}()
	log.Info("Client connected")

	go func() {
		_ = workers.NewLeaseRenewer(log, room, observer, s.renewInterval).Run(ctx)
	}()

	replies := make(chan Frame, s.bufferSize)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		s.writeLoop(ctx, conn, observer, replies, log)
	}()

	s.readLoop(ctx, conn, room, observer, replies, log)
	cancel()
	<-writerDone
	log.Info("Client disconnected")
}

func (s *RoomServer) readLoop(ctx context.Context, conn *websocket.Conn, room contract.IRoom,
	observer contract.Observer, replies chan<- Frame, log *slog.Logger) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("websocket read error", "err", err)
			}
			return
		}

		var reply Frame
		var frame Frame
		if err := json.Unmarshal(data, &frame); err != nil {
			reply = errorFrame("", fmt.Errorf("malformed frame: %w", err))
		} else {
			if err := room.Subscribe(ctx, observer); err != nil {
				log.Debug("Lease renewal failed", "err", err)
			}
			reply = s.dispatch(ctx, room, frame)
		}

		select {
		case replies <- reply:
		case <-ctx.Done():
			return
		}
	}
}

// writeLoop is the only goroutine writing on conn.
// Closing the socket, on a failed write or when ctx ends, ends readLoop.
func (s *RoomServer) writeLoop(ctx context.Context, conn *websocket.Conn, observer *sink.ChannelObserver,
	replies <-chan Frame, log *slog.Logger) {
	for {
		var frame Frame
		select {
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "room closed"),
				time.Now().Add(s.writeTimeout))
			_ = conn.Close()
			return
		case reply := <-replies:
			frame = reply
		case evt := <-observer.Events():
			var ok bool
			if frame, ok = ToFrame(evt); !ok {
				log.Warn("Unsupported notification dropped", "type", fmt.Sprintf("%T", evt))
				continue
			}
		}
		if err := conn.SetWriteDeadline(time.Now().Add(s.writeTimeout)); err != nil {
			log.Warn("websocket deadline failed", "err", err)
		}
		if err := conn.WriteJSON(frame); err != nil {
			log.Warn("websocket write failed, dropping connection", "err", err)
			observer.Close()
			_ = conn.Close()
			return
		}
	}
}

// dispatch applies one inbound frame to the room and builds the reply.
func (s *RoomServer) dispatch(ctx context.Context, room contract.IRoom, frame Frame) Frame {
	if err := validate.StructPartial(frame, "Type"); err != nil {
		return errorFrame(frame.RequestID, fmt.Errorf("%w: %q", errors.ErrUnknownFrame, frame.Type))
	}

	reply := Frame{Type: FrameAck, RequestID: frame.RequestID}
	var err error
	switch frame.Type {
	case FrameJoin:
		err = room.Join(ctx, lo.FromPtr(frame.Agent))
	case FrameLeave:
		err = room.Leave(ctx, frame.Name)
	case FrameGetMembers:
		reply.Type = FrameMembers
		reply.Members, err = room.GetMembers(ctx)
	case FrameGetChannels:
		reply.Type = FrameChannels
		reply.Channels, err = room.GetChannels(ctx)
	case FrameCreateChannel:
		err = room.CreateChannel(ctx, lo.FromPtr(frame.Channel))
	case FrameDeleteChannel:
		err = room.DeleteChannel(ctx, frame.Name)
	case FrameAddAgentToChannel:
		err = room.AddAgentToChannel(ctx, lo.FromPtr(frame.Channel), lo.FromPtr(frame.Agent))
	case FrameRemoveAgentFromChannel:
		err = room.RemoveAgentFromChannel(ctx, lo.FromPtr(frame.Channel), lo.FromPtr(frame.Agent))
	case FrameRenew:
		// Every inbound frame renews the lease already.
	}
	if err != nil {
		return errorFrame(frame.RequestID, err)
	}
	return reply
}
