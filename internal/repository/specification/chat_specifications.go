package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BetweenUsers matches messages in either direction of a two-party
// conversation.
type BetweenUsers struct {
	UserA uuid.UUID
	UserB uuid.UUID
}

func (s BetweenUsers) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(
		"(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
		s.UserA, s.UserB, s.UserB, s.UserA,
	)
}

type OrderByTimestampAsc struct{}

func (s OrderByTimestampAsc) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("timestamp ASC")
}
