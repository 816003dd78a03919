package dto

import (
	"time"

	"github.com/google/uuid"
)

type AskQuestionRequest struct {
	Text         string    `json:"text" validate:"required"`
	SubProjectId uuid.UUID `json:"subProjectId" validate:"required"`
	BlobKey      string    `json:"blobKey"`
}

type AnswerQuestionRequest struct {
	Text string `json:"text" validate:"required"`
}

type PostBulletinRequest struct {
	Text         string    `json:"text" validate:"required"`
	SubProjectId uuid.UUID `json:"subProjectId" validate:"required"`
	BlobKey      string    `json:"blobKey"`
}

type AnswerResponse struct {
	AnsweredBy string    `json:"answeredBy"`
	AnsweredAt time.Time `json:"answeredAt"`
	Text       string    `json:"text"`
}

type QuestionResponse struct {
	Id           uuid.UUID       `json:"id"`
	Text         string          `json:"text"`
	UserId       uuid.UUID       `json:"userId"`
	SubProjectId uuid.UUID       `json:"subProjectId"`
	BlobKey      string          `json:"blobKey,omitempty"`
	Answer       *AnswerResponse `json:"answer,omitempty"`
	IsBulletin   bool            `json:"isBulletin"`
	CreatedAt    time.Time       `json:"createdAt"`
}
