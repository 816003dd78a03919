package contract

import (
	"context"

	"project-collab-be/internal/entity"
	"project-collab-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ChatMessageRepository interface {
	Create(ctx context.Context, message *entity.ChatMessage) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

// UnreadCounterRepository tracks per-user unread totals within a
// conversation. Increment and Reset are single-statement upserts so
// concurrent senders never lose updates.
type UnreadCounterRepository interface {
	Increment(ctx context.Context, conversationId string, userId uuid.UUID) (int, error)
	Reset(ctx context.Context, conversationId string, userId uuid.UUID) error
	Get(ctx context.Context, conversationId string, userId uuid.UUID) (int, error)
}

type ActivityRepository interface {
	Create(ctx context.Context, activity *entity.Activity) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Activity, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
