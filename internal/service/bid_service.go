package service

import (
	"context"
	"time"

	"project-collab-be/internal/dto"
	"project-collab-be/internal/entity"
	"project-collab-be/internal/pkg/token"
	"project-collab-be/internal/repository/specification"
	"project-collab-be/internal/repository/unitofwork"
	"project-collab-be/pkg/events"

	"github.com/google/uuid"
)

type IBidService interface {
	SubmitDecision(ctx context.Context, caller *token.Identity, req *dto.SubmitBidDecisionRequest) (*dto.BidDecisionResponse, error)
	MyDecision(ctx context.Context, callerId, subProjectId uuid.UUID) (*dto.BidDecisionResponse, error)
	ListForSubProject(ctx context.Context, subProjectId uuid.UUID) ([]dto.BidDecisionResponse, error)
}

type bidService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  IPublisherService
}

func NewBidService(uowFactory unitofwork.RepositoryFactory, publisher IPublisherService) IBidService {
	return &bidService{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// SubmitDecision records the caller's bid/no-bid choice. Submitting again
// for the same subproject overwrites the previous decision.
func (s *bidService) SubmitDecision(ctx context.Context, caller *token.Identity, req *dto.SubmitBidDecisionRequest) (*dto.BidDecisionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	subProject, err := uow.SubProjectRepository().FindOne(ctx, specification.ByID{ID: req.SubProjectId})
	if err != nil {
		return nil, err
	}
	if subProject == nil {
		return nil, ErrSubProjectNotFound
	}

	now := time.Now()
	decision := &entity.BidDecision{
		Id:           uuid.New(),
		UserId:       caller.UserID,
		SubProjectId: req.SubProjectId,
		Decision:     entity.BidChoice(req.Decision),
		Reason:       req.Reason,
		CreatedAt:    now,
		UpdatedAt:    &now,
	}
	if err := uow.BidDecisionRepository().Upsert(ctx, decision); err != nil {
		return nil, err
	}

	_ = s.publisher.Publish(ctx, events.New(events.TypeBidDecided, map[string]interface{}{
		"actorId":      caller.UserID.String(),
		"subProjectId": req.SubProjectId.String(),
		"decision":     req.Decision,
	}))

	resp := bidToResponse(decision)
	return &resp, nil
}

func (s *bidService) MyDecision(ctx context.Context, callerId, subProjectId uuid.UUID) (*dto.BidDecisionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	decision, err := uow.BidDecisionRepository().FindOne(ctx,
		specification.OwnedBy{UserID: callerId},
		specification.BySubProjectID{SubProjectID: subProjectId},
	)
	if err != nil {
		return nil, err
	}
	if decision == nil {
		return nil, nil
	}
	resp := bidToResponse(decision)
	return &resp, nil
}

func (s *bidService) ListForSubProject(ctx context.Context, subProjectId uuid.UUID) ([]dto.BidDecisionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	decisions, err := uow.BidDecisionRepository().FindAll(ctx, specification.BySubProjectID{SubProjectID: subProjectId})
	if err != nil {
		return nil, err
	}

	result := make([]dto.BidDecisionResponse, 0, len(decisions))
	for _, d := range decisions {
		result = append(result, bidToResponse(d))
	}
	return result, nil
}

func bidToResponse(d *entity.BidDecision) dto.BidDecisionResponse {
	return dto.BidDecisionResponse{
		Id:           d.Id,
		UserId:       d.UserId,
		SubProjectId: d.SubProjectId,
		Decision:     string(d.Decision),
		Reason:       d.Reason,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}
