package dto

import (
	"time"

	"github.com/google/uuid"
)

type SubmitFeedbackRequest struct {
	SubProjectId uuid.UUID `json:"subProjectId" validate:"required"`
	Rating       string    `json:"rating" validate:"required,oneof=like dislike"`
	Comment      string    `json:"comment"`
}

type ModerateFeedbackRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

type FeedbackResponse struct {
	Id           uuid.UUID `json:"id"`
	UserId       uuid.UUID `json:"userId"`
	SubProjectId uuid.UUID `json:"subProjectId"`
	Rating       string    `json:"rating"`
	Comment      string    `json:"comment,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}
