package unitofwork

import (
	"context"

	"project-collab-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ProjectRepository() contract.ProjectRepository
	SubProjectRepository() contract.SubProjectRepository
	QuestionRepository() contract.QuestionRepository
	FeedbackRepository() contract.FeedbackRepository
	BidDecisionRepository() contract.BidDecisionRepository
	ChatMessageRepository() contract.ChatMessageRepository
	UnreadCounterRepository() contract.UnreadCounterRepository
	ActivityRepository() contract.ActivityRepository
}
