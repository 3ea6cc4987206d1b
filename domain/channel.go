package domain

import (
	"chat-room/errors"
	"fmt"
	"slices"
)

// ChannelInfo is a named sub-grouping of a room.
// Members and Description are descriptive; the room never rewrites them.
type ChannelInfo struct {
	Name        string   `json:"name" validate:"required"`
	Members     []string `json:"members,omitempty"`
	Description string   `json:"description,omitempty"`
}

func ValidateChannel(channel ChannelInfo) error {
	if err := validate.Struct(channel); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidChannel, err)
	}
	return nil
}

func ValidateChannelName(name string) error {
	if err := validate.Var(name, "required"); err != nil {
		return fmt.Errorf("%w: empty name", errors.ErrInvalidChannel)
	}
	return nil
}

// Clone returns a copy that shares no memory with c.
func (c ChannelInfo) Clone() ChannelInfo {
	c.Members = slices.Clone(c.Members)
	return c
}
