package implementation

import (
	"context"
	"errors"

	"project-collab-be/internal/model"
	"project-collab-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UnreadCounterRepositoryImpl struct {
	db *gorm.DB
}

func NewUnreadCounterRepository(db *gorm.DB) contract.UnreadCounterRepository {
	return &UnreadCounterRepositoryImpl{db: db}
}

// Increment bumps the counter atomically. The upsert keeps concurrent
// senders from losing updates to a read-modify-write race.
func (r *UnreadCounterRepositoryImpl) Increment(ctx context.Context, conversationId string, userId uuid.UUID) (int, error) {
	counter := &model.UnreadCounter{
		ConversationId: conversationId,
		UserId:         userId,
		Count:          1,
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "conversation_id"}, {Name: "user_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"count": gorm.Expr("unread_counters.count + 1"),
			}),
		}).
		Create(counter).Error
	if err != nil {
		return 0, err
	}
	return r.Get(ctx, conversationId, userId)
}

func (r *UnreadCounterRepositoryImpl) Reset(ctx context.Context, conversationId string, userId uuid.UUID) error {
	counter := &model.UnreadCounter{
		ConversationId: conversationId,
		UserId:         userId,
		Count:          0,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "conversation_id"}, {Name: "user_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"count": 0,
			}),
		}).
		Create(counter).Error
}

// Get reports zero for conversations with no counter row yet.
func (r *UnreadCounterRepositoryImpl) Get(ctx context.Context, conversationId string, userId uuid.UUID) (int, error) {
	var m model.UnreadCounter
	err := r.db.WithContext(ctx).
		Where("conversation_id = ? AND user_id = ?", conversationId, userId).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return m.Count, nil
}
