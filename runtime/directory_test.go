package runtime

import (
	"chat-room/contract"
	"chat-room/domain"
	"chat-room/errors"
	"chat-room/mocks"
	"chat-room/runtime/workers"
	"context"
	stderrors "errors"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestDirectory(t *testing.T) *Directory {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	directory := NewDirectory(log, workers.NewSupervisor(log, 10*time.Millisecond), SystemClock{},
		8, DefaultLease, 100*time.Millisecond)
	directory.Start(context.Background())
	t.Cleanup(directory.Stop)
	return directory
}

func TestDirectory_Room_NotStarted(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	directory := NewDirectory(log, workers.NewSupervisor(log, 0), SystemClock{}, 8, 0, 0)

	_, err := directory.Room("lobby")

	req.True(stderrors.Is(err, errors.ErrDirectoryNotStarted))
	// And stopping a directory never started is harmless
	directory.Stop()
}

func TestDirectory_Room_RejectsEmptyID(t *testing.T) {
	req := require.New(t)
	directory := newTestDirectory(t)

	_, err := directory.Room("  ")

	req.True(stderrors.Is(err, errors.ErrInvalidRoom))
	req.Empty(directory.Rooms())
}

func TestDirectory_Room_ActivatesOnce(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	supervisor := mocks.NewMockISupervisor(ctrl)
	directory := NewDirectory(log, supervisor, SystemClock{}, 8, 0, 0)
	directory.Start(context.Background())

	// Then each room is supervised exactly once
	supervisor.EXPECT().Start(gomock.Any(), gomock.Any()).Times(2)
	supervisor.EXPECT().Wait().Times(1)

	lobby1, err := directory.Room("lobby")
	req.NoError(err)
	lobby2, err := directory.Room("lobby")
	req.NoError(err)
	ops, err := directory.Room("ops")
	req.NoError(err)

	req.Same(lobby1, lobby2)
	req.NotSame(lobby1, ops)
	req.Equal(domain.RoomID("lobby"), lobby1.ID())
	req.Equal([]domain.RoomID{"lobby", "ops"}, directory.Rooms())

	directory.Stop()
}

func TestDirectory_RoomsDoNotShareState(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	directory := newTestDirectory(t)

	lobby, err := directory.Room("lobby")
	req.NoError(err)
	ops, err := directory.Room("ops")
	req.NoError(err)

	req.NoError(lobby.Join(ctx, domain.AgentInfo{Name: "alice", IsHuman: true}))
	req.NoError(ops.Join(ctx, domain.AgentInfo{Name: "ps-runner"}))

	members, err := lobby.GetMembers(ctx)
	req.NoError(err)
	req.Equal([]domain.AgentInfo{{Name: "alice", IsHuman: true}}, members)

	members, err = ops.GetMembers(ctx)
	req.NoError(err)
	req.Equal([]domain.AgentInfo{{Name: "ps-runner"}}, members)
}

func TestDirectory_Stats(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	directory := newTestDirectory(t)

	ops, err := directory.Room("ops")
	req.NoError(err)
	_, err = directory.Room("lobby")
	req.NoError(err)
	req.NoError(ops.Subscribe(ctx, mocks.NewMockObserver(gomock.NewController(t))))

	req.Equal([]contract.RoomStats{
		{Room: "lobby", Pending: 0, Capacity: 8, Subscribers: 0},
		{Room: "ops", Pending: 0, Capacity: 8, Subscribers: 1},
	}, directory.Stats())
}

func TestDirectory_Stop(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	directory := NewDirectory(log, workers.NewSupervisor(log, 0), SystemClock{}, 8, 0, 0)
	directory.Start(ctx)

	lobby, err := directory.Room("lobby")
	req.NoError(err)
	req.NoError(lobby.Join(ctx, domain.AgentInfo{Name: "alice"}))

	// When the directory stops
	directory.Stop()

	// Then the room refuses new calls
	_, err = lobby.GetMembers(ctx)
	req.True(stderrors.Is(err, errors.ErrRoomStopped))

	// And no room can be activated anymore
	_, err = directory.Room("ops")
	req.True(stderrors.Is(err, errors.ErrRoomStopped))
}
