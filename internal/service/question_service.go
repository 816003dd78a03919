package service

import (
	"context"
	"errors"
	"time"

	"project-collab-be/internal/dto"
	"project-collab-be/internal/entity"
	"project-collab-be/internal/pkg/token"
	"project-collab-be/internal/repository/specification"
	"project-collab-be/internal/repository/unitofwork"
	"project-collab-be/pkg/events"

	"github.com/google/uuid"
)

var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrAlreadyAnswered  = errors.New("question already answered")
)

type IQuestionService interface {
	Ask(ctx context.Context, caller *token.Identity, req *dto.AskQuestionRequest) (*dto.QuestionResponse, error)
	Answer(ctx context.Context, questionId uuid.UUID, caller *token.Identity, req *dto.AnswerQuestionRequest) (*dto.QuestionResponse, error)
	PostBulletin(ctx context.Context, caller *token.Identity, req *dto.PostBulletinRequest) (*dto.QuestionResponse, error)
	ListQuestions(ctx context.Context, subProjectId uuid.UUID, unansweredOnly bool) ([]dto.QuestionResponse, error)
	ListBulletins(ctx context.Context, subProjectId uuid.UUID) ([]dto.QuestionResponse, error)
	Delete(ctx context.Context, questionId uuid.UUID) error
}

type questionService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  IPublisherService
}

func NewQuestionService(uowFactory unitofwork.RepositoryFactory, publisher IPublisherService) IQuestionService {
	return &questionService{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

func (s *questionService) Ask(ctx context.Context, caller *token.Identity, req *dto.AskQuestionRequest) (*dto.QuestionResponse, error) {
	question := &entity.Question{
		Id:           uuid.New(),
		Text:         req.Text,
		UserId:       caller.UserID,
		SubProjectId: req.SubProjectId,
		BlobKey:      req.BlobKey,
		CreatedAt:    time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.QuestionRepository().Create(ctx, question); err != nil {
		return nil, err
	}

	_ = s.publisher.Publish(ctx, events.New(events.TypeQuestionAsked, map[string]interface{}{
		"actorId":      caller.UserID.String(),
		"questionId":   question.Id.String(),
		"subProjectId": req.SubProjectId.String(),
	}))

	resp := questionToResponse(question)
	return &resp, nil
}

// Answer attaches the admin's reply. A question holds at most one answer;
// answering twice is rejected.
func (s *questionService) Answer(ctx context.Context, questionId uuid.UUID, caller *token.Identity, req *dto.AnswerQuestionRequest) (*dto.QuestionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	question, err := uow.QuestionRepository().FindOne(ctx, specification.ByID{ID: questionId})
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, ErrQuestionNotFound
	}
	if question.IsAnswered() {
		return nil, ErrAlreadyAnswered
	}

	question.Answer = &entity.Answer{
		AnsweredBy: caller.Username,
		AnsweredAt: time.Now(),
		Text:       req.Text,
	}

	if err := uow.QuestionRepository().Update(ctx, question); err != nil {
		return nil, err
	}

	resp := questionToResponse(question)
	return &resp, nil
}

// PostBulletin publishes an admin announcement into the subproject's Q&A
// stream. Bulletins never carry answers.
func (s *questionService) PostBulletin(ctx context.Context, caller *token.Identity, req *dto.PostBulletinRequest) (*dto.QuestionResponse, error) {
	bulletin := &entity.Question{
		Id:           uuid.New(),
		Text:         req.Text,
		UserId:       caller.UserID,
		SubProjectId: req.SubProjectId,
		BlobKey:      req.BlobKey,
		IsBulletin:   true,
		CreatedAt:    time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.QuestionRepository().Create(ctx, bulletin); err != nil {
		return nil, err
	}

	resp := questionToResponse(bulletin)
	return &resp, nil
}

func (s *questionService) ListQuestions(ctx context.Context, subProjectId uuid.UUID, unansweredOnly bool) ([]dto.QuestionResponse, error) {
	specs := []specification.Specification{
		specification.BySubProjectID{SubProjectID: subProjectId},
		specification.QuestionsOnly{},
	}
	if unansweredOnly {
		specs = append(specs, specification.Unanswered{})
	}
	return s.list(ctx, specs)
}

func (s *questionService) ListBulletins(ctx context.Context, subProjectId uuid.UUID) ([]dto.QuestionResponse, error) {
	return s.list(ctx, []specification.Specification{
		specification.BySubProjectID{SubProjectID: subProjectId},
		specification.BulletinsOnly{},
	})
}

func (s *questionService) Delete(ctx context.Context, questionId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.QuestionRepository().Delete(ctx, questionId)
}

func (s *questionService) list(ctx context.Context, specs []specification.Specification) ([]dto.QuestionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	questions, err := uow.QuestionRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := make([]dto.QuestionResponse, 0, len(questions))
	for _, q := range questions {
		result = append(result, questionToResponse(q))
	}
	return result, nil
}

func questionToResponse(q *entity.Question) dto.QuestionResponse {
	resp := dto.QuestionResponse{
		Id:           q.Id,
		Text:         q.Text,
		UserId:       q.UserId,
		SubProjectId: q.SubProjectId,
		BlobKey:      q.BlobKey,
		IsBulletin:   q.IsBulletin,
		CreatedAt:    q.CreatedAt,
	}
	if q.Answer != nil {
		resp.Answer = &dto.AnswerResponse{
			AnsweredBy: q.Answer.AnsweredBy,
			AnsweredAt: q.Answer.AnsweredAt,
			Text:       q.Answer.Text,
		}
	}
	return resp
}
