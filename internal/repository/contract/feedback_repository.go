package contract

import (
	"context"

	"project-collab-be/internal/entity"
	"project-collab-be/internal/repository/specification"

	"github.com/google/uuid"
)

type FeedbackRepository interface {
	Create(ctx context.Context, feedback *entity.Feedback) error
	Update(ctx context.Context, feedback *entity.Feedback) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Feedback, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Feedback, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// FindByProject joins feedback rows with the submitting user's company
	// across every subproject of the given project.
	FindByProject(ctx context.Context, projectId uuid.UUID) ([]*entity.FeedbackWithCompany, error)
}

type BidDecisionRepository interface {
	// Upsert inserts the decision or overwrites an existing one for the
	// same user and subproject.
	Upsert(ctx context.Context, decision *entity.BidDecision) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.BidDecision, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.BidDecision, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
