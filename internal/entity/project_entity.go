package entity

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	Id           uuid.UUID
	Name         string
	BlobFolder   string // e.g. projects/<projectId>
	ProjectTerms string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

type SubProject struct {
	Id         uuid.UUID
	Name       string
	ProjectId  uuid.UUID
	BlobFolder string // e.g. projects/<projectId>/<subProjectId>
	IsPublic   bool
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}
