// Package domain contains core concepts of the chat system.
// This file defines ChatMsg, the payload of room notices.
package domain

import "fmt"

// SystemSender is the sender of every notice the room emits itself.
const SystemSender = "System"

// ChatMsg is an ephemeral notification payload. It is never stored.
type ChatMsg struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

func JoinNotice(name string) ChatMsg {
	return ChatMsg{Sender: SystemSender, Text: fmt.Sprintf("%s joins the chat room.", name)}
}

func LeaveNotice(name string) ChatMsg {
	return ChatMsg{Sender: SystemSender, Text: fmt.Sprintf("%s leaves the chat room.", name)}
}

func ChannelNotFoundNotice(name string) ChatMsg {
	return ChatMsg{Sender: SystemSender, Text: fmt.Sprintf("Channel '%s' not found.", name)}
}

func AgentNotFoundNotice(name string) ChatMsg {
	return ChatMsg{Sender: SystemSender, Text: fmt.Sprintf("Agent '%s' not found.", name)}
}
