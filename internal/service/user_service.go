package service

import (
	"context"
	"errors"

	"project-collab-be/internal/dto"
	"project-collab-be/internal/entity"
	"project-collab-be/internal/repository/memory"
	"project-collab-be/internal/repository/specification"
	"project-collab-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

var ErrUserNotFound = errors.New("user not found")

type IUserService interface {
	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	DeleteUser(ctx context.Context, userId uuid.UUID) error
	FilterUsers(ctx context.Context, req *dto.FilterUsersRequest) ([]dto.ProfileResponse, error)
	Contacts(ctx context.Context, userId uuid.UUID) ([]dto.ContactResponse, error)
	ResolveContact(ctx context.Context, userId uuid.UUID) (*entity.User, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *memory.ContactCache
}

func NewUserService(uowFactory unitofwork.RepositoryFactory, cache *memory.ContactCache) IUserService {
	return &userService{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

func (s *userService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error) {
	user, err := s.ResolveContact(ctx, userId)
	if err != nil {
		return nil, err
	}
	resp := ProfileToResponse(user)
	return &resp, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.Company != "" {
		user.Company = req.Company
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.Title != "" {
		user.Title = req.Title
	}
	if req.CompanyAddress != "" {
		user.CompanyAddress = req.CompanyAddress
	}
	if req.City != "" {
		user.City = req.City
	}
	if req.State != "" {
		user.State = req.State
	}
	if req.Zipcode != "" {
		user.Zipcode = req.Zipcode
	}
	if req.Trade != "" {
		user.Trade = req.Trade
	}

	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, err
	}
	s.cache.Invalidate(userId)

	resp := ProfileToResponse(user)
	return &resp, nil
}

func (s *userService) DeleteUser(ctx context.Context, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err := uow.UserRepository().Delete(ctx, userId); err != nil {
		return err
	}
	s.cache.Invalidate(userId)
	return nil
}

// FilterUsers queries the directory by a fixed set of profile columns.
// Only whitelisted filters ever reach the query, so callers cannot probe
// arbitrary columns.
func (s *userService) FilterUsers(ctx context.Context, req *dto.FilterUsersRequest) ([]dto.ProfileResponse, error) {
	specs := make([]specification.Specification, 0, 4)
	if req.Company != "" {
		specs = append(specs, specification.ByField{Column: "company", Value: req.Company})
	}
	if req.Trade != "" {
		specs = append(specs, specification.ByField{Column: "trade", Value: req.Trade})
	}
	if req.State != "" {
		specs = append(specs, specification.ByField{Column: "state", Value: req.State})
	}
	if req.City != "" {
		specs = append(specs, specification.ByField{Column: "city", Value: req.City})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	users, err := uow.UserRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := make([]dto.ProfileResponse, 0, len(users))
	for _, user := range users {
		result = append(result, ProfileToResponse(user))
	}
	return result, nil
}

// Contacts lists everyone the caller can chat with, which is every other
// registered user.
func (s *userService) Contacts(ctx context.Context, userId uuid.UUID) ([]dto.ContactResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	users, err := uow.UserRepository().FindAll(ctx, specification.ExcludingUser{UserID: userId})
	if err != nil {
		return nil, err
	}

	contacts := make([]dto.ContactResponse, 0, len(users))
	for _, user := range users {
		s.cache.Set(user)
		contacts = append(contacts, dto.ContactResponse{
			Id:       user.Id,
			Username: user.Username(),
			Company:  user.Company,
			Title:    user.Title,
		})
	}
	return contacts, nil
}

// ResolveContact fetches a user profile through the in-memory cache.
func (s *userService) ResolveContact(ctx context.Context, userId uuid.UUID) (*entity.User, error) {
	if user, ok := s.cache.Get(userId); ok {
		return user, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	s.cache.Set(user)
	return user, nil
}
