// Package domain contains core concepts of the chat system.
// This file defines Participant entities and related invariants.
// No runtime, network, or UI logic should be added here.
package domain

import (
	"chat-room/errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// AgentInfo identifies a room member, human or agent.
// Name is the identity key and is unique within a room.
type AgentInfo struct {
	Name            string `json:"name" validate:"required"`
	SelfDescription string `json:"self_description"`
	IsHuman         bool   `json:"is_human"`
}

func ValidateAgent(agent AgentInfo) error {
	if err := validate.Struct(agent); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidAgent, err)
	}
	return nil
}

// ValidateAgentName rejects lookups that could never match a stored member.
func ValidateAgentName(name string) error {
	if err := validate.Var(name, "required"); err != nil {
		return fmt.Errorf("%w: empty name", errors.ErrInvalidAgent)
	}
	return nil
}
