package errors

import "fmt"

var (
	ErrWorkerPanic         = fmt.Errorf("worker panic")
	ErrInvalidAgent        = fmt.Errorf("invalid agent")
	ErrInvalidChannel      = fmt.Errorf("invalid channel")
	ErrInvalidRoom         = fmt.Errorf("invalid room identifier")
	ErrRoomStopped         = fmt.Errorf("room stopped")
	ErrDirectoryNotStarted = fmt.Errorf("room directory not started")
	ErrObserverClosed      = fmt.Errorf("observer closed")
	ErrObserverFull        = fmt.Errorf("observer buffer full")
	ErrUnknownFrame        = fmt.Errorf("unknown frame type")
	ErrInvalidBootAgent    = fmt.Errorf("boot agent must be formatted as name:description")
)
