package entity

import (
	"time"

	"github.com/google/uuid"
)

type BidChoice string

const (
	BidChoiceBid   BidChoice = "bid"
	BidChoiceNoBid BidChoice = "noBid"
)

// BidDecision records one contractor's bid/noBid choice per subproject.
// At most one row exists per (subproject, user) pair; saving again replaces
// the previous decision.
type BidDecision struct {
	Id           uuid.UUID
	UserId       uuid.UUID
	SubProjectId uuid.UUID
	Decision     BidChoice
	Reason       string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
