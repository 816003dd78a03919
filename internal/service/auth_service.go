package service

import (
	"context"
	"errors"
	"time"

	"project-collab-be/internal/dto"
	"project-collab-be/internal/entity"
	"project-collab-be/internal/pkg/token"
	"project-collab-be/internal/repository/implementation"
	"project-collab-be/internal/repository/specification"
	"project-collab-be/internal/repository/unitofwork"
	"project-collab-be/pkg/events"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	verifier   token.Verifier
	publisher  IPublisherService
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, verifier token.Verifier, publisher IPublisherService) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		verifier:   verifier,
		publisher:  publisher,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if !req.TermsAccepted {
		return nil, errors.New("terms must be accepted")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, implementation.ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Id:             uuid.New(),
		Email:          req.Email,
		PasswordHash:   string(hash),
		Role:           entity.UserRoleUser,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Company:        req.Company,
		Phone:          req.Phone,
		Title:          req.Title,
		CompanyAddress: req.CompanyAddress,
		City:           req.City,
		State:          req.State,
		Zipcode:        req.Zipcode,
		Trade:          req.Trade,
		TermsAccepted:  req.TermsAccepted,
		Signature:      req.Signature,
		CreatedAt:      time.Now(),
	}

	// The unique index backs this up under concurrent registration.
	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	_ = s.publisher.Publish(ctx, events.New(events.TypeUserRegistered, map[string]interface{}{
		"actorId": user.Id.String(),
		"email":   user.Email,
		"company": user.Company,
	}))

	return s.authResponse(user)
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.authResponse(user)
}

func (s *authService) authResponse(user *entity.User) (*dto.AuthResponse, error) {
	accessToken, err := s.verifier.Issue(token.Identity{
		UserID:   user.Id,
		Email:    user.Email,
		Username: user.Username(),
		Role:     string(user.Role),
		Company:  user.Company,
	})
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken: accessToken,
		User:        ProfileToResponse(user),
	}, nil
}

// ProfileToResponse shapes a user entity for API output. Shared by auth
// and user services.
func ProfileToResponse(user *entity.User) dto.ProfileResponse {
	return dto.ProfileResponse{
		Id:             user.Id,
		Email:          user.Email,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		Role:           string(user.Role),
		Company:        user.Company,
		Phone:          user.Phone,
		Title:          user.Title,
		CompanyAddress: user.CompanyAddress,
		City:           user.City,
		State:          user.State,
		Zipcode:        user.Zipcode,
		Trade:          user.Trade,
		CreatedAt:      user.CreatedAt,
	}
}
