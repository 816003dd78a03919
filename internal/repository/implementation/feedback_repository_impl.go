package implementation

import (
	"context"
	"errors"
	"time"

	"project-collab-be/internal/entity"
	"project-collab-be/internal/mapper"
	"project-collab-be/internal/model"
	"project-collab-be/internal/repository/contract"
	"project-collab-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FeedbackRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FeedbackMapper
}

func NewFeedbackRepository(db *gorm.DB) contract.FeedbackRepository {
	return &FeedbackRepositoryImpl{
		db:     db,
		mapper: mapper.NewFeedbackMapper(),
	}
}

func (r *FeedbackRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *FeedbackRepositoryImpl) Create(ctx context.Context, feedback *entity.Feedback) error {
	m := r.mapper.ToModel(feedback)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*feedback = *r.mapper.ToEntity(m)
	return nil
}

func (r *FeedbackRepositoryImpl) Update(ctx context.Context, feedback *entity.Feedback) error {
	m := r.mapper.ToModel(feedback)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*feedback = *r.mapper.ToEntity(m)
	return nil
}

func (r *FeedbackRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Feedback, error) {
	var m model.Feedback
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *FeedbackRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Feedback, error) {
	var models []*model.Feedback
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	feedbacks := make([]*entity.Feedback, 0, len(models))
	for _, m := range models {
		feedbacks = append(feedbacks, r.mapper.ToEntity(m))
	}
	return feedbacks, nil
}

func (r *FeedbackRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Feedback{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *FeedbackRepositoryImpl) FindByProject(ctx context.Context, projectId uuid.UUID) ([]*entity.FeedbackWithCompany, error) {
	type row struct {
		Id           uuid.UUID
		UserId       uuid.UUID
		SubProjectId uuid.UUID
		Rating       string
		Comment      string
		Status       string
		CreatedAt    time.Time
		Company      string
	}

	var rows []row
	err := r.db.WithContext(ctx).
		Table("feedback").
		Select("feedback.*, users.company AS company").
		Joins("JOIN sub_projects ON sub_projects.id = feedback.sub_project_id").
		Joins("JOIN users ON users.id = feedback.user_id").
		Where("sub_projects.project_id = ?", projectId).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]*entity.FeedbackWithCompany, 0, len(rows))
	for _, rw := range rows {
		result = append(result, &entity.FeedbackWithCompany{
			Feedback: entity.Feedback{
				Id:           rw.Id,
				UserId:       rw.UserId,
				SubProjectId: rw.SubProjectId,
				Rating:       entity.FeedbackRating(rw.Rating),
				Comment:      rw.Comment,
				Status:       entity.FeedbackStatus(rw.Status),
				CreatedAt:    rw.CreatedAt,
			},
			Company: rw.Company,
		})
	}
	return result, nil
}

type BidDecisionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.BidMapper
}

func NewBidDecisionRepository(db *gorm.DB) contract.BidDecisionRepository {
	return &BidDecisionRepositoryImpl{
		db:     db,
		mapper: mapper.NewBidMapper(),
	}
}

func (r *BidDecisionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *BidDecisionRepositoryImpl) Upsert(ctx context.Context, decision *entity.BidDecision) error {
	m := r.mapper.ToModel(decision)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "sub_project_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"decision", "reason", "updated_at"}),
		}).
		Create(m).Error
	if err != nil {
		return err
	}
	*decision = *r.mapper.ToEntity(m)
	return nil
}

func (r *BidDecisionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.BidDecision, error) {
	var m model.BidDecision
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *BidDecisionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.BidDecision, error) {
	var models []*model.BidDecision
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	decisions := make([]*entity.BidDecision, 0, len(models))
	for _, m := range models {
		decisions = append(decisions, r.mapper.ToEntity(m))
	}
	return decisions, nil
}

func (r *BidDecisionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.BidDecision{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
