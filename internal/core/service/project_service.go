package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/mikan-studio/portfolio-api/internal/api/metrics"
	"github.com/mikan-studio/portfolio-api/internal/core/domain"
	"github.com/mikan-studio/portfolio-api/internal/core/ports"
)

// imagePrefix is the blob-store prefix for project images.
const imagePrefix = "projects"

// BlobCleanup is the interface the service uses to schedule best-effort
// deletion of orphaned blobs.
type BlobCleanup interface {
	Enqueue(url string)
}

// ProjectService implements CRUD over showcases including image upload.
type ProjectService struct {
	repo    ports.ProjectRepository
	blobs   ports.BlobStore
	cleanup BlobCleanup
	logger  zerolog.Logger
}

func NewProjectService(repo ports.ProjectRepository, blobs ports.BlobStore, cleanup BlobCleanup, logger zerolog.Logger) *ProjectService {
	return &ProjectService{repo: repo, blobs: blobs, cleanup: cleanup, logger: logger}
}

func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.repo.FindAll(ctx)
}

func (s *ProjectService) Create(ctx context.Context, input ports.CreateProjectInput) (*domain.Project, error) {
	now := time.Now().UTC()
	project, err := s.repo.Create(ctx, &domain.Project{
		Name:        input.Name,
		Description: input.Description,
		Images:      s.uploadImages(ctx, input.Images),
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("project_id", project.ID).Int("images", len(project.Images)).Msg("project created")
	return project, nil
}

func (s *ProjectService) Update(ctx context.Context, id string, input ports.UpdateProjectInput) (*domain.Project, error) {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		project.Name = input.Name
	}
	if input.Description != "" {
		project.Description = input.Description
	}
	project.Images = append(project.Images, s.uploadImages(ctx, input.Images)...)
	project.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, project); err != nil {
		return nil, err
	}

	s.logger.Info().Str("project_id", project.ID).Msg("project updated")
	return project, nil
}

// Delete removes the document and schedules the image blobs for background
// deletion; blob failures never surface to the caller.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	for _, url := range project.Images {
		s.cleanup.Enqueue(url)
	}

	s.logger.Info().Str("project_id", id).Int("images", len(project.Images)).Msg("project deleted")
	return nil
}

// uploadImages stores each image, skipping individual failures so one bad
// file does not reject the whole submission.
func (s *ProjectService) uploadImages(ctx context.Context, files []ports.FileInput) []string {
	urls := make([]string, 0, len(files))
	for _, f := range files {
		url, err := s.blobs.Upload(ctx, imagePrefix, f.Filename, f.ContentType, f.Reader, f.Size)
		if err != nil {
			s.logger.Error().Err(err).Str("filename", f.Filename).Msg("image upload failed")
			continue
		}
		metrics.BlobUploadsTotal.WithLabelValues(imagePrefix).Inc()
		urls = append(urls, url)
	}
	return urls
}
