package entity

import (
	"time"

	"github.com/google/uuid"
)

type FeedbackRating string

const (
	FeedbackRatingLike    FeedbackRating = "like"
	FeedbackRatingDislike FeedbackRating = "dislike"
)

type FeedbackStatus string

const (
	FeedbackStatusPending  FeedbackStatus = "pending"
	FeedbackStatusApproved FeedbackStatus = "approved"
	FeedbackStatusRejected FeedbackStatus = "rejected"
)

type Feedback struct {
	Id           uuid.UUID
	UserId       uuid.UUID
	SubProjectId uuid.UUID
	Rating       FeedbackRating
	Comment      string
	Status       FeedbackStatus
	CreatedAt    time.Time
}

// FeedbackWithCompany carries a feedback row together with the company of
// the user who submitted it.
type FeedbackWithCompany struct {
	Feedback
	Company string
}

// CompanyFeedbackStats aggregates feedback per submitting company for a project.
type CompanyFeedbackStats struct {
	Company       string  `json:"company"`
	Likes         int     `json:"likes"`
	Dislikes      int     `json:"dislikes"`
	Approved      int     `json:"approved"`
	Rejected      int     `json:"rejected"`
	ApprovalRate  float64 `json:"approvalRate"`
	RejectionRate float64 `json:"rejectionRate"`
}
