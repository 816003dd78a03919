package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Activity struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TypeCode  string         `gorm:"type:varchar(100);not null;index"`
	ActorId   uuid.UUID      `gorm:"type:uuid;index"`
	Metadata  datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt time.Time      `gorm:"autoCreateTime;index"`
}

func (Activity) TableName() string {
	return "activities"
}
