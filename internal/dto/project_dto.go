package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateProjectRequest struct {
	Name         string `json:"name" validate:"required"`
	BlobFolder   string `json:"blobFolder" validate:"required"`
	ProjectTerms string `json:"projectTerms"`
}

type UpdateProjectRequest struct {
	Name         string `json:"name" validate:"omitempty,min=1"`
	ProjectTerms string `json:"projectTerms"`
}

type ProjectResponse struct {
	Id           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	BlobFolder   string    `json:"blobFolder"`
	ProjectTerms string    `json:"projectTerms,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

type CreateSubProjectRequest struct {
	Name       string    `json:"name" validate:"required"`
	ProjectId  uuid.UUID `json:"projectId" validate:"required"`
	BlobFolder string    `json:"blobFolder" validate:"required"`
	IsPublic   bool      `json:"isPublic"`
}

type UpdateSubProjectRequest struct {
	Name     string `json:"name" validate:"omitempty,min=1"`
	IsPublic *bool  `json:"isPublic"`
}

type SubProjectResponse struct {
	Id         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	ProjectId  uuid.UUID `json:"projectId"`
	BlobFolder string    `json:"blobFolder"`
	IsPublic   bool      `json:"isPublic"`
	CreatedAt  time.Time `json:"createdAt"`
}

type AssignMemberRequest struct {
	UserId uuid.UUID `json:"userId" validate:"required"`
}
