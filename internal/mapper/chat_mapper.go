package mapper

import (
	"project-collab-be/internal/entity"
	"project-collab-be/internal/model"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

func (m *ChatMapper) MessageToEntity(msg *model.ChatMessage) *entity.ChatMessage {
	if msg == nil {
		return nil
	}
	return &entity.ChatMessage{
		Id:          msg.Id,
		SenderId:    msg.SenderId,
		RecipientId: msg.RecipientId,
		Content:     msg.Content,
		Timestamp:   msg.Timestamp,
	}
}

func (m *ChatMapper) MessageToModel(msg *entity.ChatMessage) *model.ChatMessage {
	if msg == nil {
		return nil
	}
	return &model.ChatMessage{
		Id:          msg.Id,
		SenderId:    msg.SenderId,
		RecipientId: msg.RecipientId,
		Content:     msg.Content,
		Timestamp:   msg.Timestamp,
	}
}

func (m *ChatMapper) CounterToEntity(c *model.UnreadCounter) *entity.UnreadCounter {
	if c == nil {
		return nil
	}
	return &entity.UnreadCounter{
		ConversationId: c.ConversationId,
		UserId:         c.UserId,
		Count:          c.Count,
		UpdatedAt:      c.UpdatedAt,
	}
}
