package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"project-collab-be/internal/dto"
	"project-collab-be/internal/entity"
	"project-collab-be/internal/pkg/logger"
	"project-collab-be/internal/pkg/mailer"
	"project-collab-be/internal/pkg/token"
	"project-collab-be/internal/repository/specification"
	"project-collab-be/internal/repository/unitofwork"
	"project-collab-be/pkg/events"

	"github.com/google/uuid"
)

var ErrFeedbackNotFound = errors.New("feedback not found")

type IFeedbackService interface {
	Submit(ctx context.Context, caller *token.Identity, req *dto.SubmitFeedbackRequest) (*dto.FeedbackResponse, error)
	Moderate(ctx context.Context, feedbackId uuid.UUID, req *dto.ModerateFeedbackRequest) (*dto.FeedbackResponse, error)
	ListForSubProject(ctx context.Context, subProjectId uuid.UUID) ([]dto.FeedbackResponse, error)
	ProjectStats(ctx context.Context, projectId uuid.UUID) ([]entity.CompanyFeedbackStats, error)
}

type feedbackService struct {
	uowFactory   unitofwork.RepositoryFactory
	emailService mailer.IEmailService
	publisher    IPublisherService
	logger       logger.ILogger
}

func NewFeedbackService(
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	publisher IPublisherService,
	log logger.ILogger,
) IFeedbackService {
	return &feedbackService{
		uowFactory:   uowFactory,
		emailService: emailService,
		publisher:    publisher,
		logger:       log,
	}
}

func (s *feedbackService) Submit(ctx context.Context, caller *token.Identity, req *dto.SubmitFeedbackRequest) (*dto.FeedbackResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	subProject, err := uow.SubProjectRepository().FindOne(ctx, specification.ByID{ID: req.SubProjectId})
	if err != nil {
		return nil, err
	}
	if subProject == nil {
		return nil, ErrSubProjectNotFound
	}

	feedback := &entity.Feedback{
		Id:           uuid.New(),
		UserId:       caller.UserID,
		SubProjectId: req.SubProjectId,
		Rating:       entity.FeedbackRating(req.Rating),
		Comment:      req.Comment,
		Status:       entity.FeedbackStatusPending,
		CreatedAt:    time.Now(),
	}
	if err := uow.FeedbackRepository().Create(ctx, feedback); err != nil {
		return nil, err
	}

	_ = s.publisher.Publish(ctx, events.New(events.TypeFeedbackCreated, map[string]interface{}{
		"actorId":      caller.UserID.String(),
		"feedbackId":   feedback.Id.String(),
		"subProjectId": req.SubProjectId.String(),
		"rating":       req.Rating,
	}))

	go s.alertAdmins(subProject.Name, caller.Company, req.Rating)

	resp := feedbackToResponse(feedback)
	return &resp, nil
}

// alertAdmins mails every admin about the new submission. Runs detached
// from the request; failures are logged, never surfaced.
func (s *feedbackService) alertAdmins(subProjectName, company, rating string) {
	ctx := context.Background()
	uow := s.uowFactory.NewUnitOfWork(ctx)

	admins, err := uow.UserRepository().FindAll(ctx, specification.ByField{Column: "role", Value: string(entity.UserRoleAdmin)})
	if err != nil {
		s.logger.Error("FeedbackService", "Failed to load admins for alert", map[string]interface{}{"error": err.Error()})
		return
	}

	for _, admin := range admins {
		if err := s.emailService.SendFeedbackAlert(admin.Email, subProjectName, company, rating); err != nil {
			s.logger.Warn("FeedbackService", "Feedback alert mail failed", map[string]interface{}{
				"to":    admin.Email,
				"error": err.Error(),
			})
		}
	}
}

func (s *feedbackService) Moderate(ctx context.Context, feedbackId uuid.UUID, req *dto.ModerateFeedbackRequest) (*dto.FeedbackResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	feedback, err := uow.FeedbackRepository().FindOne(ctx, specification.ByID{ID: feedbackId})
	if err != nil {
		return nil, err
	}
	if feedback == nil {
		return nil, ErrFeedbackNotFound
	}

	feedback.Status = entity.FeedbackStatus(req.Status)
	if err := uow.FeedbackRepository().Update(ctx, feedback); err != nil {
		return nil, err
	}

	resp := feedbackToResponse(feedback)
	return &resp, nil
}

func (s *feedbackService) ListForSubProject(ctx context.Context, subProjectId uuid.UUID) ([]dto.FeedbackResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	feedbacks, err := uow.FeedbackRepository().FindAll(ctx, specification.BySubProjectID{SubProjectID: subProjectId})
	if err != nil {
		return nil, err
	}

	result := make([]dto.FeedbackResponse, 0, len(feedbacks))
	for _, f := range feedbacks {
		result = append(result, feedbackToResponse(f))
	}
	return result, nil
}

// ProjectStats rolls feedback up per submitting company across the whole
// project. Approval and rejection rates are relative to moderated
// feedback only.
func (s *feedbackService) ProjectStats(ctx context.Context, projectId uuid.UUID) ([]entity.CompanyFeedbackStats, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	rows, err := uow.FeedbackRepository().FindByProject(ctx, projectId)
	if err != nil {
		return nil, err
	}

	byCompany := make(map[string]*entity.CompanyFeedbackStats)
	for _, row := range rows {
		stats, ok := byCompany[row.Company]
		if !ok {
			stats = &entity.CompanyFeedbackStats{Company: row.Company}
			byCompany[row.Company] = stats
		}
		if row.Rating == entity.FeedbackRatingLike {
			stats.Likes++
		} else {
			stats.Dislikes++
		}
		switch row.Status {
		case entity.FeedbackStatusApproved:
			stats.Approved++
		case entity.FeedbackStatusRejected:
			stats.Rejected++
		}
	}

	result := make([]entity.CompanyFeedbackStats, 0, len(byCompany))
	for _, stats := range byCompany {
		if decided := stats.Approved + stats.Rejected; decided > 0 {
			stats.ApprovalRate = float64(stats.Approved) / float64(decided)
			stats.RejectionRate = float64(stats.Rejected) / float64(decided)
		}
		result = append(result, *stats)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Company < result[j].Company })
	return result, nil
}

func feedbackToResponse(f *entity.Feedback) dto.FeedbackResponse {
	return dto.FeedbackResponse{
		Id:           f.Id,
		UserId:       f.UserId,
		SubProjectId: f.SubProjectId,
		Rating:       string(f.Rating),
		Comment:      f.Comment,
		Status:       string(f.Status),
		CreatedAt:    f.CreatedAt,
	}
}
