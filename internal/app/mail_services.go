package app

import (
	"context"
	"fmt"
	"time"

	"github.com/wesrioswart/nervecontract/internal/domain/mail"
	"github.com/wesrioswart/nervecontract/internal/domain/projects"
	"github.com/wesrioswart/nervecontract/internal/eventbus"
	"github.com/wesrioswart/nervecontract/internal/pkg/logger"

	"github.com/google/uuid"
)

// emailIntakeService implements the EmailIntakeService interface for recording
// classified inbound correspondence
type emailIntakeService struct {
	emailRepo   mail.EmailRepository
	projectRepo projects.ProjectRepository
	bus         *eventbus.Bus
	logger      logger.Logger
}

// NewEmailIntakeService creates a new instance of EmailIntakeService
func NewEmailIntakeService(
	emailRepo mail.EmailRepository,
	projectRepo projects.ProjectRepository,
	bus *eventbus.Bus,
	logger logger.Logger,
) (mail.EmailIntakeService, error) {
	return &emailIntakeService{
		emailRepo:   emailRepo,
		projectRepo: projectRepo,
		bus:         bus,
		logger:      logger,
	}, nil
}

// Record stores a classified email and publishes an email.classified event
// once the email is persisted. Emails may arrive unlinked to any project.
func (s *emailIntakeService) Record(ctx context.Context, email *mail.InboundEmail) (*mail.InboundEmail, error) {
	if email.ProjectID != nil {
		if _, err := s.projectRepo.GetByID(ctx, *email.ProjectID); err != nil {
			return nil, fmt.Errorf("failed to get project: %w", err)
		}
	}

	if email.ID == "" {
		email.ID = uuid.NewString()
	}
	if email.ReceivedAt.IsZero() {
		email.ReceivedAt = time.Now()
	}
	now := time.Now()
	email.ProcessedAt = &now

	if err := s.emailRepo.Create(ctx, email); err != nil {
		return nil, fmt.Errorf("failed to record inbound email: %w", err)
	}

	s.logger.Info("Recorded inbound email ", email.ID, " classified as ", email.Classification)
	s.bus.Emit(ctx, eventbus.EventEmailClassified, eventbus.EmailClassifiedPayload{Email: email})

	return email, nil
}

// List retrieves inbound emails considering a query filter when set
func (s *emailIntakeService) List(ctx context.Context, query *mail.EmailQuery) ([]*mail.InboundEmail, error) {
	if query == nil {
		query = mail.NewEmailQuery()
	}

	list, err := s.emailRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list inbound emails: %w", err)
	}
	return list, nil
}

// GetByID retrieves an inbound email by its unique ID
func (s *emailIntakeService) GetByID(ctx context.Context, emailID string) (*mail.InboundEmail, error) {
	email, err := s.emailRepo.GetByID(ctx, emailID)
	if err != nil {
		return nil, fmt.Errorf("failed to get inbound email: %w", err)
	}
	return email, nil
}
