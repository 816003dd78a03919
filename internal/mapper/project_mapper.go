package mapper

import (
	"time"

	"project-collab-be/internal/entity"
	"project-collab-be/internal/model"
)

type ProjectMapper struct{}

func NewProjectMapper() *ProjectMapper {
	return &ProjectMapper{}
}

func (m *ProjectMapper) ProjectToEntity(p *model.Project) *entity.Project {
	if p == nil {
		return nil
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	return &entity.Project{
		Id:           p.Id,
		Name:         p.Name,
		BlobFolder:   p.BlobFolder,
		ProjectTerms: p.ProjectTerms,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *ProjectMapper) ProjectToModel(p *entity.Project) *model.Project {
	if p == nil {
		return nil
	}

	var updatedAt time.Time
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}

	return &model.Project{
		Id:           p.Id,
		Name:         p.Name,
		BlobFolder:   p.BlobFolder,
		ProjectTerms: p.ProjectTerms,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *ProjectMapper) SubProjectToEntity(s *model.SubProject) *entity.SubProject {
	if s == nil {
		return nil
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}

	return &entity.SubProject{
		Id:         s.Id,
		Name:       s.Name,
		ProjectId:  s.ProjectId,
		BlobFolder: s.BlobFolder,
		IsPublic:   s.IsPublic,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  updatedAt,
	}
}

func (m *ProjectMapper) SubProjectToModel(s *entity.SubProject) *model.SubProject {
	if s == nil {
		return nil
	}

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	return &model.SubProject{
		Id:         s.Id,
		Name:       s.Name,
		ProjectId:  s.ProjectId,
		BlobFolder: s.BlobFolder,
		IsPublic:   s.IsPublic,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  updatedAt,
	}
}
