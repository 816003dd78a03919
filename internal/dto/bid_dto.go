package dto

import (
	"time"

	"github.com/google/uuid"
)

type SubmitBidDecisionRequest struct {
	SubProjectId uuid.UUID `json:"subProjectId" validate:"required"`
	Decision     string    `json:"decision" validate:"required,oneof=bid noBid"`
	Reason       string    `json:"reason"`
}

type BidDecisionResponse struct {
	Id           uuid.UUID  `json:"id"`
	UserId       uuid.UUID  `json:"userId"`
	SubProjectId uuid.UUID  `json:"subProjectId"`
	Decision     string     `json:"decision"`
	Reason       string     `json:"reason,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
}
