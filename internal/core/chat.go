// ABOUTME: Chat flow pairing an explicit-role user message with a scripted reply
// ABOUTME: Used by the CLI, MCP tools, and browser bridge
package core

import (
	"context"
	"strings"

	"github.com/harper/carenotes/internal/models"
)

// Chat sends user messages through the controller and asks the responder to answer
type Chat struct {
	controller *Controller
	responder  *Responder
}

// NewChat wires controller and responder together
func NewChat(controller *Controller, responder *Responder) *Chat {
	return &Chat{controller: controller, responder: responder}
}

// Responder returns the responder used for replies
func (ch *Chat) Responder() *Responder {
	return ch.responder
}

// Send records content as a user message and schedules the assistant reply.
// It returns as soon as the user message is stored.
func (ch *Chat) Send(ctx context.Context, content string) (models.ChatMessage, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return models.ChatMessage{}, ErrEmptyMessage
	}

	msg, err := ch.controller.PostMessage(models.RoleUser, content)
	if err != nil {
		return models.ChatMessage{}, err
	}
	ch.responder.Respond(ctx, content)
	return msg, nil
}

// Exchange sends content and waits for the reply, returning the messages
// appended since the call started (the user message, then the reply if it
// was not cancelled).
func (ch *Chat) Exchange(ctx context.Context, content string) ([]models.ChatMessage, error) {
	before := len(ch.controller.ChatMessages())
	if _, err := ch.Send(ctx, content); err != nil {
		return nil, err
	}
	ch.responder.Wait()

	all := ch.controller.ChatMessages()
	if before > len(all) {
		before = len(all)
	}
	return all[before:], nil
}
