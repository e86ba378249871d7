// ABOUTME: ChatMessage is one turn in the assistant conversation
// ABOUTME: The role is stored under the "type" key as user or assistant
package models

import (
	"time"
)

// Role identifies who authored a chat message
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Valid reports whether r is user or assistant
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAssistant
}

// ChatMessage is a stored chat turn
type ChatMessage struct {
	ID        string    `json:"id"`
	Role      Role      `json:"type"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// NewChatMessage creates a message stamped with now in UTC
func NewChatMessage(id string, role Role, content string, now time.Time) ChatMessage {
	return ChatMessage{
		ID:        id,
		Role:      role,
		Content:   content,
		Timestamp: now.UTC(),
	}
}

// NextRole infers the role of the next message from the conversation so far.
// An empty conversation, or one whose last message came from the assistant,
// yields user; otherwise assistant.
func NextRole(messages []ChatMessage) Role {
	if len(messages) == 0 || messages[len(messages)-1].Role == RoleAssistant {
		return RoleUser
	}
	return RoleAssistant
}
