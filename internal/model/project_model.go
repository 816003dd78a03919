package model

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string    `gorm:"type:varchar(255);not null"`
	BlobFolder   string    `gorm:"type:varchar(512);not null"`
	ProjectTerms string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (Project) TableName() string {
	return "projects"
}

type SubProject struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name       string    `gorm:"type:varchar(255);not null"`
	ProjectId  uuid.UUID `gorm:"type:uuid;not null;index"`
	BlobFolder string    `gorm:"type:varchar(512);not null"`
	IsPublic   bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (SubProject) TableName() string {
	return "sub_projects"
}

// SubProjectMember assigns a user to a subproject (access control join table).
type SubProjectMember struct {
	SubProjectId uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId       uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (SubProjectMember) TableName() string {
	return "sub_project_members"
}
