package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/mikan-studio/portfolio-api/internal/core/domain"
	"github.com/mikan-studio/portfolio-api/internal/core/ports"
)

// CareerService implements CRUD over job postings.
type CareerService struct {
	repo   ports.CareerRepository
	logger zerolog.Logger
}

func NewCareerService(repo ports.CareerRepository, logger zerolog.Logger) *CareerService {
	return &CareerService{repo: repo, logger: logger}
}

func (s *CareerService) List(ctx context.Context) ([]domain.Career, error) {
	return s.repo.FindAll(ctx)
}

func (s *CareerService) Create(ctx context.Context, input ports.CareerInput) (*domain.Career, error) {
	now := time.Now().UTC()
	career, err := s.repo.Create(ctx, &domain.Career{
		Title:       input.Title,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("career_id", career.ID).Str("title", career.Title).Msg("career created")
	return career, nil
}

func (s *CareerService) Update(ctx context.Context, id string, input ports.CareerInput) (*domain.Career, error) {
	career, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	career.Title = input.Title
	career.Description = input.Description
	career.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, career); err != nil {
		return nil, err
	}

	s.logger.Info().Str("career_id", career.ID).Msg("career updated")
	return career, nil
}

func (s *CareerService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("career_id", id).Msg("career deleted")
	return nil
}
