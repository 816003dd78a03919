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

	"github.com/google/uuid"
)

var (
	ErrProjectNotFound    = errors.New("project not found")
	ErrSubProjectNotFound = errors.New("subproject not found")
	ErrNotSubProjectMember = errors.New("not a member of this subproject")
)

type IProjectService interface {
	CreateProject(ctx context.Context, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	UpdateProject(ctx context.Context, id uuid.UUID, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error)
	DeleteProject(ctx context.Context, id uuid.UUID) error
	GetProject(ctx context.Context, id uuid.UUID) (*dto.ProjectResponse, error)
	ListProjects(ctx context.Context) ([]dto.ProjectResponse, error)

	CreateSubProject(ctx context.Context, req *dto.CreateSubProjectRequest) (*dto.SubProjectResponse, error)
	UpdateSubProject(ctx context.Context, id uuid.UUID, req *dto.UpdateSubProjectRequest) (*dto.SubProjectResponse, error)
	DeleteSubProject(ctx context.Context, id uuid.UUID) error
	ListSubProjects(ctx context.Context, projectId uuid.UUID, caller *token.Identity) ([]dto.SubProjectResponse, error)

	AssignMember(ctx context.Context, subProjectId, userId uuid.UUID) error
	RemoveMember(ctx context.Context, subProjectId, userId uuid.UUID) error
	EnsureAccess(ctx context.Context, subProjectId uuid.UUID, caller *token.Identity) (*entity.SubProject, error)
}

type projectService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewProjectService(uowFactory unitofwork.RepositoryFactory) IProjectService {
	return &projectService{uowFactory: uowFactory}
}

func (s *projectService) CreateProject(ctx context.Context, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	project := &entity.Project{
		Id:           uuid.New(),
		Name:         req.Name,
		BlobFolder:   req.BlobFolder,
		ProjectTerms: req.ProjectTerms,
		CreatedAt:    time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ProjectRepository().Create(ctx, project); err != nil {
		return nil, err
	}

	resp := projectToResponse(project)
	return &resp, nil
}

func (s *projectService) UpdateProject(ctx context.Context, id uuid.UUID, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	project, err := uow.ProjectRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}

	if req.Name != "" {
		project.Name = req.Name
	}
	if req.ProjectTerms != "" {
		project.ProjectTerms = req.ProjectTerms
	}

	if err := uow.ProjectRepository().Update(ctx, project); err != nil {
		return nil, err
	}

	resp := projectToResponse(project)
	return &resp, nil
}

// DeleteProject removes the project and its subprojects in one
// transaction.
func (s *projectService) DeleteProject(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	subProjects, err := uow.SubProjectRepository().FindAll(ctx, specification.ByProjectID{ProjectID: id})
	if err != nil {
		return err
	}
	for _, sp := range subProjects {
		if err := uow.SubProjectRepository().Delete(ctx, sp.Id); err != nil {
			return err
		}
	}

	if err := uow.ProjectRepository().Delete(ctx, id); err != nil {
		return err
	}
	return uow.Commit()
}

func (s *projectService) GetProject(ctx context.Context, id uuid.UUID) (*dto.ProjectResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	project, err := uow.ProjectRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}
	resp := projectToResponse(project)
	return &resp, nil
}

func (s *projectService) ListProjects(ctx context.Context) ([]dto.ProjectResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	projects, err := uow.ProjectRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		result = append(result, projectToResponse(p))
	}
	return result, nil
}

func (s *projectService) CreateSubProject(ctx context.Context, req *dto.CreateSubProjectRequest) (*dto.SubProjectResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	parent, err := uow.ProjectRepository().FindOne(ctx, specification.ByID{ID: req.ProjectId})
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, ErrProjectNotFound
	}

	subProject := &entity.SubProject{
		Id:         uuid.New(),
		Name:       req.Name,
		ProjectId:  req.ProjectId,
		BlobFolder: req.BlobFolder,
		IsPublic:   req.IsPublic,
		CreatedAt:  time.Now(),
	}
	if err := uow.SubProjectRepository().Create(ctx, subProject); err != nil {
		return nil, err
	}

	resp := subProjectToResponse(subProject)
	return &resp, nil
}

func (s *projectService) UpdateSubProject(ctx context.Context, id uuid.UUID, req *dto.UpdateSubProjectRequest) (*dto.SubProjectResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	subProject, err := uow.SubProjectRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if subProject == nil {
		return nil, ErrSubProjectNotFound
	}

	if req.Name != "" {
		subProject.Name = req.Name
	}
	if req.IsPublic != nil {
		subProject.IsPublic = *req.IsPublic
	}

	if err := uow.SubProjectRepository().Update(ctx, subProject); err != nil {
		return nil, err
	}

	resp := subProjectToResponse(subProject)
	return &resp, nil
}

func (s *projectService) DeleteSubProject(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.SubProjectRepository().Delete(ctx, id)
}

// ListSubProjects returns every subproject of the project for admins, and
// only public or assigned ones for everyone else.
func (s *projectService) ListSubProjects(ctx context.Context, projectId uuid.UUID, caller *token.Identity) ([]dto.SubProjectResponse, error) {
	specs := []specification.Specification{specification.ByProjectID{ProjectID: projectId}}
	if !entity.UserRole(caller.Role).IsAdmin() {
		specs = append(specs, specification.VisibleToMember{UserID: caller.UserID})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	subProjects, err := uow.SubProjectRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := make([]dto.SubProjectResponse, 0, len(subProjects))
	for _, sp := range subProjects {
		result = append(result, subProjectToResponse(sp))
	}
	return result, nil
}

func (s *projectService) AssignMember(ctx context.Context, subProjectId, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	subProject, err := uow.SubProjectRepository().FindOne(ctx, specification.ByID{ID: subProjectId})
	if err != nil {
		return err
	}
	if subProject == nil {
		return ErrSubProjectNotFound
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	return uow.SubProjectRepository().AssignMember(ctx, subProjectId, userId)
}

func (s *projectService) RemoveMember(ctx context.Context, subProjectId, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.SubProjectRepository().RemoveMember(ctx, subProjectId, userId)
}

// EnsureAccess loads the subproject and verifies the caller may read it:
// admins always, others when the subproject is public or they are
// assigned.
func (s *projectService) EnsureAccess(ctx context.Context, subProjectId uuid.UUID, caller *token.Identity) (*entity.SubProject, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	subProject, err := uow.SubProjectRepository().FindOne(ctx, specification.ByID{ID: subProjectId})
	if err != nil {
		return nil, err
	}
	if subProject == nil {
		return nil, ErrSubProjectNotFound
	}

	if entity.UserRole(caller.Role).IsAdmin() || subProject.IsPublic {
		return subProject, nil
	}

	member, err := uow.SubProjectRepository().IsMember(ctx, subProjectId, caller.UserID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, ErrNotSubProjectMember
	}
	return subProject, nil
}

func projectToResponse(p *entity.Project) dto.ProjectResponse {
	return dto.ProjectResponse{
		Id:           p.Id,
		Name:         p.Name,
		BlobFolder:   p.BlobFolder,
		ProjectTerms: p.ProjectTerms,
		CreatedAt:    p.CreatedAt,
	}
}

func subProjectToResponse(sp *entity.SubProject) dto.SubProjectResponse {
	return dto.SubProjectResponse{
		Id:         sp.Id,
		Name:       sp.Name,
		ProjectId:  sp.ProjectId,
		BlobFolder: sp.BlobFolder,
		IsPublic:   sp.IsPublic,
		CreatedAt:  sp.CreatedAt,
	}
}
