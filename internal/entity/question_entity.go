package entity

import (
	"time"

	"github.com/google/uuid"
)

type Answer struct {
	AnsweredBy string
	AnsweredAt time.Time
	Text       string
}

type Question struct {
	Id           uuid.UUID
	Text         string
	UserId       uuid.UUID
	SubProjectId uuid.UUID
	BlobKey      string // optional attachment in blob storage
	Answer       *Answer
	IsBulletin   bool
	CreatedAt    time.Time
}

func (q *Question) IsAnswered() bool {
	return q.Answer != nil && q.Answer.Text != ""
}
