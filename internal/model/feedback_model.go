package model

import (
	"time"

	"github.com/google/uuid"
)

type Feedback struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId       uuid.UUID `gorm:"type:uuid;not null;index"`
	SubProjectId uuid.UUID `gorm:"type:uuid;not null;index"`
	Rating       string    `gorm:"type:varchar(20);not null"`
	Comment      string    `gorm:"type:text"`
	Status       string    `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (Feedback) TableName() string {
	return "feedback"
}
