package engine

import (
	"fmt"

	"github.com/DiyaJain6/Task-Bridge/models"
	"github.com/DiyaJain6/Task-Bridge/support"
)

// SendSupportMessage stores the user's chat message, generates the bot reply
// and drops a notification for the sender. The user's message is returned.
func (e *Engine) SendSupportMessage(actorEmail, content string) (*models.ChatMessage, error) {
	actor, err := e.resolveActor(actorEmail)
	if err != nil {
		return nil, err
	}

	msg := models.ChatMessage{
		SenderID:  &actor.ID,
		Content:   content,
		Type:      "sent",
		CreatedAt: e.now(),
	}
	if err := e.messages.Record(&msg); err != nil {
		return nil, fmt.Errorf("%w: saving message: %v", ErrInternal, err)
	}

	reply := models.ChatMessage{
		ReceiverID: &actor.ID,
		Content:    support.GenerateResponse(content),
		Type:       "received",
		CreatedAt:  e.now(),
	}
	if err := e.messages.Record(&reply); err != nil {
		return nil, fmt.Errorf("%w: saving bot reply: %v", ErrInternal, err)
	}

	e.notify(actor.ID, "New Support Message", "The Support Bot has replied to your query.")
	return &msg, nil
}

// Messages returns the actor's chat history, oldest first.
func (e *Engine) Messages(actorEmail string) ([]models.ChatMessage, error) {
	actor, err := e.resolveActor(actorEmail)
	if err != nil {
		return nil, err
	}
	msgs, err := e.messages.ForUser(actor.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: listing messages: %v", ErrInternal, err)
	}
	return msgs, nil
}
