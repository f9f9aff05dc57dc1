package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mikan-studio/portfolio-api/internal/api/metrics"
	"github.com/mikan-studio/portfolio-api/internal/core/ports"
)

// resumePrefix is the blob-store prefix for uploaded resumes.
const resumePrefix = "resumes"

// ApplicationService processes job applications: the resume is uploaded to
// the blob store, then the admin address is notified with the applicant
// details and the resume URL. Both calls are synchronous and single
// attempt; either failure surfaces to the caller.
type ApplicationService struct {
	blobs    ports.BlobStore
	notifier ports.Notifier
	logger   zerolog.Logger
}

func NewApplicationService(blobs ports.BlobStore, notifier ports.Notifier, logger zerolog.Logger) *ApplicationService {
	return &ApplicationService{blobs: blobs, notifier: notifier, logger: logger}
}

func (s *ApplicationService) Apply(ctx context.Context, input ports.ApplicationInput) error {
	url, err := s.blobs.Upload(ctx, resumePrefix, input.Resume.Filename, input.Resume.ContentType, input.Resume.Reader, input.Resume.Size)
	if err != nil {
		s.logger.Error().Err(err).Str("applicant", input.Email).Msg("resume upload failed")
		metrics.ApplicationsTotal.WithLabelValues("upload_failed").Inc()
		return err
	}
	metrics.BlobUploadsTotal.WithLabelValues(resumePrefix).Inc()

	if err := s.notifier.ApplicationReceived(ctx, input, url); err != nil {
		s.logger.Error().Err(err).Str("applicant", input.Email).Msg("application notification failed")
		metrics.ApplicationsTotal.WithLabelValues("notify_failed").Inc()
		return err
	}

	s.logger.Info().
		Str("applicant", input.Email).
		Str("job_title", input.JobTitle).
		Msg("application submitted")
	metrics.ApplicationsTotal.WithLabelValues("ok").Inc()

	return nil
}
