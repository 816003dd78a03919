package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"project-collab-be/internal/dto"
	"project-collab-be/internal/pkg/logger"
	"project-collab-be/internal/pkg/mailer"
	"project-collab-be/internal/pkg/token"
	"project-collab-be/pkg/blob"

	"github.com/google/uuid"
)

const presignTTL = 15 * time.Minute

var ErrInvalidFileKey = errors.New("file key outside subproject folder")

type IFileService interface {
	List(ctx context.Context, caller *token.Identity, subProjectId uuid.UUID) ([]dto.FileObjectResponse, error)
	Upload(ctx context.Context, caller *token.Identity, subProjectId uuid.UUID, filename, contentType string, data []byte) (*dto.FileObjectResponse, error)
	Presign(ctx context.Context, caller *token.Identity, subProjectId uuid.UUID, key string) (*dto.PresignResponse, error)
	Delete(ctx context.Context, caller *token.Identity, subProjectId uuid.UUID, key string) error
	Share(ctx context.Context, caller *token.Identity, req *dto.ShareFilesRequest) error
}

type fileService struct {
	store     blob.Store
	projects  IProjectService
	mailer    mailer.IEmailService
	clientURL string
	logger    logger.ILogger
}

func NewFileService(
	store blob.Store,
	projects IProjectService,
	emailService mailer.IEmailService,
	clientURL string,
	log logger.ILogger,
) IFileService {
	return &fileService{
		store:     store,
		projects:  projects,
		mailer:    emailService,
		clientURL: clientURL,
		logger:    log,
	}
}

func (s *fileService) List(ctx context.Context, caller *token.Identity, subProjectId uuid.UUID) ([]dto.FileObjectResponse, error) {
	subProject, err := s.projects.EnsureAccess(ctx, subProjectId, caller)
	if err != nil {
		return nil, err
	}

	objects, err := s.store.List(ctx, subProject.BlobFolder+"/")
	if err != nil {
		return nil, err
	}

	result := make([]dto.FileObjectResponse, 0, len(objects))
	for _, obj := range objects {
		result = append(result, dto.FileObjectResponse{
			Key:          obj.Key,
			Size:         obj.Size,
			LastModified: obj.LastModified.Format(time.RFC3339),
		})
	}
	return result, nil
}

func (s *fileService) Upload(ctx context.Context, caller *token.Identity, subProjectId uuid.UUID, filename, contentType string, data []byte) (*dto.FileObjectResponse, error) {
	subProject, err := s.projects.EnsureAccess(ctx, subProjectId, caller)
	if err != nil {
		return nil, err
	}

	key := path.Join(subProject.BlobFolder, path.Base(filename))
	if err := s.store.Upload(ctx, key, contentType, data); err != nil {
		return nil, err
	}

	s.logger.Info("FileService", "File uploaded", map[string]interface{}{
		"key":     key,
		"user_id": caller.UserID,
	})
	return &dto.FileObjectResponse{
		Key:          key,
		Size:         int64(len(data)),
		LastModified: time.Now().Format(time.RFC3339),
	}, nil
}

func (s *fileService) Presign(ctx context.Context, caller *token.Identity, subProjectId uuid.UUID, key string) (*dto.PresignResponse, error) {
	subProject, err := s.projects.EnsureAccess(ctx, subProjectId, caller)
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(key, subProject.BlobFolder+"/") {
		return nil, ErrInvalidFileKey
	}

	url, err := s.store.PresignDownload(ctx, key, presignTTL)
	if err != nil {
		return nil, err
	}
	return &dto.PresignResponse{
		URL:       url,
		ExpiresIn: int(presignTTL.Seconds()),
	}, nil
}

func (s *fileService) Delete(ctx context.Context, caller *token.Identity, subProjectId uuid.UUID, key string) error {
	subProject, err := s.projects.EnsureAccess(ctx, subProjectId, caller)
	if err != nil {
		return err
	}
	if !strings.HasPrefix(key, subProject.BlobFolder+"/") {
		return ErrInvalidFileKey
	}
	return s.store.Delete(ctx, key)
}

// Share mails a link to a file listing. The recipients do not need an
// account; the link lands on the client app which handles the rest.
func (s *fileService) Share(ctx context.Context, caller *token.Identity, req *dto.ShareFilesRequest) error {
	shareURL := fmt.Sprintf("%s/files?prefix=%s", strings.TrimRight(s.clientURL, "/"), req.Prefix)
	if err := s.mailer.SendShareLink(req.Emails, shareURL, req.Subject, req.Message); err != nil {
		s.logger.Error("FileService", "Share mail failed", map[string]interface{}{
			"sender": caller.UserID,
			"error":  err.Error(),
		})
		return err
	}
	return nil
}
