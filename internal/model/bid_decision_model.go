package model

import (
	"time"

	"github.com/google/uuid"
)

type BidDecision struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_bid_subproject_user"`
	SubProjectId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_bid_subproject_user"`
	Decision     string    `gorm:"type:varchar(20);not null"`
	Reason       string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (BidDecision) TableName() string {
	return "bid_decisions"
}
