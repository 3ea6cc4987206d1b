package domain

import (
	"chat-room/errors"
	"fmt"
	"strings"
)

// RoomID addresses one room. A room exists as soon as its id is first used.
type RoomID string

func (id RoomID) Validate() error {
	if strings.TrimSpace(string(id)) == "" {
		return fmt.Errorf("%w: %q", errors.ErrInvalidRoom, id)
	}
	return nil
}
