package contract

import (
	"context"

	"project-collab-be/internal/entity"
	"project-collab-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ProjectRepository interface {
	Create(ctx context.Context, project *entity.Project) error
	Update(ctx context.Context, project *entity.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Project, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Project, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type SubProjectRepository interface {
	Create(ctx context.Context, subProject *entity.SubProject) error
	Update(ctx context.Context, subProject *entity.SubProject) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SubProject, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SubProject, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	AssignMember(ctx context.Context, subProjectId, userId uuid.UUID) error
	RemoveMember(ctx context.Context, subProjectId, userId uuid.UUID) error
	IsMember(ctx context.Context, subProjectId, userId uuid.UUID) (bool, error)
	MemberIDs(ctx context.Context, subProjectId uuid.UUID) ([]uuid.UUID, error)
}
