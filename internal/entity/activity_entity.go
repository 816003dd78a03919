package entity

import (
	"time"

	"github.com/google/uuid"
)

// Activity is a persisted audit entry produced by the domain event pipeline.
type Activity struct {
	Id        uuid.UUID
	TypeCode  string
	ActorId   uuid.UUID
	Metadata  map[string]interface{}
	CreatedAt time.Time
}
