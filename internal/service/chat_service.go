package service

import (
	"context"
	"time"

	"project-collab-be/internal/chat"
	"project-collab-be/internal/dto"
	"project-collab-be/internal/entity"
	"project-collab-be/internal/repository/specification"
	"project-collab-be/internal/repository/unitofwork"
	"project-collab-be/pkg/events"

	"github.com/google/uuid"
)

// IChatService is the persistence side of the chat subsystem. It backs
// the websocket gateway (as its message and unread stores) and the REST
// history endpoints.
type IChatService interface {
	chat.MessageStore
	chat.UnreadStore

	History(ctx context.Context, callerId, otherId uuid.UUID) (*dto.ConversationHistoryResponse, error)
	UnreadCount(ctx context.Context, callerId, otherId uuid.UUID) (*dto.UnreadCountResponse, error)
}

type chatService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  IPublisherService
}

func NewChatService(uowFactory unitofwork.RepositoryFactory, publisher IPublisherService) IChatService {
	return &chatService{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Append stores a message stamped with the server clock. The row is never
// updated afterwards.
func (s *chatService) Append(ctx context.Context, senderId, recipientId uuid.UUID, content string) (*entity.ChatMessage, error) {
	message := &entity.ChatMessage{
		Id:          uuid.New(),
		SenderId:    senderId,
		RecipientId: recipientId,
		Content:     content,
		Timestamp:   time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ChatMessageRepository().Create(ctx, message); err != nil {
		return nil, err
	}

	_ = s.publisher.Publish(ctx, events.New(events.TypeChatMessageStored, map[string]interface{}{
		"actorId":     senderId.String(),
		"messageId":   message.Id.String(),
		"recipientId": recipientId.String(),
	}))

	return message, nil
}

// ListConversation returns both directions of the exchange, oldest first.
func (s *chatService) ListConversation(ctx context.Context, a, b uuid.UUID) ([]*entity.ChatMessage, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.ChatMessageRepository().FindAll(ctx,
		specification.BetweenUsers{UserA: a, UserB: b},
		specification.OrderByTimestampAsc{},
	)
}

func (s *chatService) Increment(ctx context.Context, conversationId string, userId uuid.UUID) (int, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.UnreadCounterRepository().Increment(ctx, conversationId, userId)
}

func (s *chatService) Reset(ctx context.Context, conversationId string, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.UnreadCounterRepository().Reset(ctx, conversationId, userId)
}

func (s *chatService) Get(ctx context.Context, conversationId string, userId uuid.UUID) (int, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.UnreadCounterRepository().Get(ctx, conversationId, userId)
}

func (s *chatService) History(ctx context.Context, callerId, otherId uuid.UUID) (*dto.ConversationHistoryResponse, error) {
	messages, err := s.ListConversation(ctx, callerId, otherId)
	if err != nil {
		return nil, err
	}

	resp := &dto.ConversationHistoryResponse{
		ConversationId: chat.ConversationKey(callerId, otherId),
		Messages:       make([]dto.ChatMessageResponse, 0, len(messages)),
	}
	for _, m := range messages {
		resp.Messages = append(resp.Messages, dto.ChatMessageResponse{
			Id:          m.Id,
			SenderId:    m.SenderId,
			RecipientId: m.RecipientId,
			Content:     m.Content,
			Timestamp:   m.Timestamp,
		})
	}
	return resp, nil
}

func (s *chatService) UnreadCount(ctx context.Context, callerId, otherId uuid.UUID) (*dto.UnreadCountResponse, error) {
	key := chat.ConversationKey(callerId, otherId)
	count, err := s.Get(ctx, key, callerId)
	if err != nil {
		return nil, err
	}
	return &dto.UnreadCountResponse{ConversationId: key, Count: count}, nil
}
