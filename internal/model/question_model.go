package model

import (
	"time"

	"github.com/google/uuid"
)

type Question struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Text         string    `gorm:"type:text;not null"`
	UserId       uuid.UUID `gorm:"type:uuid;not null;index"`
	SubProjectId uuid.UUID `gorm:"type:uuid;not null;index"`
	BlobKey      string    `gorm:"type:varchar(512)"`
	AnsweredBy   *string   `gorm:"type:varchar(255)"`
	AnsweredAt   *time.Time
	AnswerText   *string   `gorm:"type:text"`
	IsBulletin   bool      `gorm:"not null;default:false;index"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (Question) TableName() string {
	return "questions"
}
