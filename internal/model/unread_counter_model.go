package model

import (
	"time"

	"github.com/google/uuid"
)

// UnreadCounter has a composite unique key so that increments and resets can
// run as a single INSERT .. ON CONFLICT upsert.
type UnreadCounter struct {
	ConversationId string    `gorm:"type:varchar(128);primaryKey"`
	UserId         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Count          int       `gorm:"not null;default:0"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (UnreadCounter) TableName() string {
	return "unread_counters"
}
