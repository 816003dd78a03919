package implementation

import (
	"context"
	"errors"

	"project-collab-be/internal/entity"
	"project-collab-be/internal/mapper"
	"project-collab-be/internal/model"
	"project-collab-be/internal/repository/contract"
	"project-collab-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProjectRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProjectMapper
}

func NewProjectRepository(db *gorm.DB) contract.ProjectRepository {
	return &ProjectRepositoryImpl{
		db:     db,
		mapper: mapper.NewProjectMapper(),
	}
}

func (r *ProjectRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ProjectRepositoryImpl) Create(ctx context.Context, project *entity.Project) error {
	m := r.mapper.ProjectToModel(project)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*project = *r.mapper.ProjectToEntity(m)
	return nil
}

func (r *ProjectRepositoryImpl) Update(ctx context.Context, project *entity.Project) error {
	m := r.mapper.ProjectToModel(project)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*project = *r.mapper.ProjectToEntity(m)
	return nil
}

func (r *ProjectRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Project{}, id).Error
}

func (r *ProjectRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Project, error) {
	var m model.Project
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ProjectToEntity(&m), nil
}

func (r *ProjectRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Project, error) {
	var models []*model.Project
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	projects := make([]*entity.Project, 0, len(models))
	for _, m := range models {
		projects = append(projects, r.mapper.ProjectToEntity(m))
	}
	return projects, nil
}

func (r *ProjectRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Project{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

type SubProjectRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProjectMapper
}

func NewSubProjectRepository(db *gorm.DB) contract.SubProjectRepository {
	return &SubProjectRepositoryImpl{
		db:     db,
		mapper: mapper.NewProjectMapper(),
	}
}

func (r *SubProjectRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SubProjectRepositoryImpl) Create(ctx context.Context, subProject *entity.SubProject) error {
	m := r.mapper.SubProjectToModel(subProject)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*subProject = *r.mapper.SubProjectToEntity(m)
	return nil
}

func (r *SubProjectRepositoryImpl) Update(ctx context.Context, subProject *entity.SubProject) error {
	m := r.mapper.SubProjectToModel(subProject)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*subProject = *r.mapper.SubProjectToEntity(m)
	return nil
}

func (r *SubProjectRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("sub_project_id = ?", id).Delete(&model.SubProjectMember{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.SubProject{}, id).Error
	})
}

func (r *SubProjectRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SubProject, error) {
	var m model.SubProject
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.SubProjectToEntity(&m), nil
}

func (r *SubProjectRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SubProject, error) {
	var models []*model.SubProject
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	subProjects := make([]*entity.SubProject, 0, len(models))
	for _, m := range models {
		subProjects = append(subProjects, r.mapper.SubProjectToEntity(m))
	}
	return subProjects, nil
}

func (r *SubProjectRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.SubProject{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *SubProjectRepositoryImpl) AssignMember(ctx context.Context, subProjectId, userId uuid.UUID) error {
	member := &model.SubProjectMember{SubProjectId: subProjectId, UserId: userId}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(member).Error
}

func (r *SubProjectRepositoryImpl) RemoveMember(ctx context.Context, subProjectId, userId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("sub_project_id = ? AND user_id = ?", subProjectId, userId).
		Delete(&model.SubProjectMember{}).Error
}

func (r *SubProjectRepositoryImpl) IsMember(ctx context.Context, subProjectId, userId uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.SubProjectMember{}).
		Where("sub_project_id = ? AND user_id = ?", subProjectId, userId).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *SubProjectRepositoryImpl) MemberIDs(ctx context.Context, subProjectId uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&model.SubProjectMember{}).
		Where("sub_project_id = ?", subProjectId).
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
