package app

import (
	"context"
	"fmt"
	"time"

	"github.com/wesrioswart/nervecontract/internal/domain/notices"
	"github.com/wesrioswart/nervecontract/internal/domain/projects"
	"github.com/wesrioswart/nervecontract/internal/eventbus"
	"github.com/wesrioswart/nervecontract/internal/pkg/logger"

	"github.com/google/uuid"
)

// earlyWarningService implements the EarlyWarningService interface for
// managing early warning notices
type earlyWarningService struct {
	warningRepo notices.EarlyWarningRepository
	projectRepo projects.ProjectRepository
	bus         *eventbus.Bus
	logger      logger.Logger
}

// NewEarlyWarningService creates a new instance of EarlyWarningService
func NewEarlyWarningService(
	warningRepo notices.EarlyWarningRepository,
	projectRepo projects.ProjectRepository,
	bus *eventbus.Bus,
	logger logger.Logger,
) (notices.EarlyWarningService, error) {
	return &earlyWarningService{
		warningRepo: warningRepo,
		projectRepo: projectRepo,
		bus:         bus,
		logger:      logger,
	}, nil
}

// Raise registers a new early warning against a project. The reference is
// assigned sequentially per project (EW-001, EW-002, ...) and an
// early_warning.raised event is published after the notice is stored.
func (s *earlyWarningService) Raise(ctx context.Context, warning *notices.EarlyWarning) (*notices.EarlyWarning, error) {
	if _, err := s.projectRepo.GetByID(ctx, warning.ProjectID); err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	sequence, err := s.warningRepo.NextSequence(ctx, warning.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to determine next reference: %w", err)
	}

	if warning.ID == "" {
		warning.ID = uuid.NewString()
	}
	warning.Reference = fmt.Sprintf("EW-%03d", sequence)
	if warning.Status == "" {
		warning.Status = notices.EarlyWarningStatusOpen
	}
	if warning.RaisedAt.IsZero() {
		warning.RaisedAt = time.Now()
	}

	if err := s.warningRepo.Create(ctx, warning); err != nil {
		return nil, fmt.Errorf("failed to create early warning: %w", err)
	}

	s.logger.Info("Raised early warning ", warning.Reference, " on project ", warning.ProjectID)
	s.bus.Emit(ctx, eventbus.EventEarlyWarningRaised, eventbus.EarlyWarningRaisedPayload{Warning: warning})

	return warning, nil
}

// List retrieves early warnings considering a query filter when set
func (s *earlyWarningService) List(ctx context.Context, query *notices.NoticeQuery) ([]*notices.EarlyWarning, error) {
	if query == nil {
		query = notices.NewNoticeQuery()
	}

	list, err := s.warningRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list early warnings: %w", err)
	}
	return list, nil
}

// GetByID retrieves an early warning by its unique ID
func (s *earlyWarningService) GetByID(ctx context.Context, warningID string) (*notices.EarlyWarning, error) {
	warning, err := s.warningRepo.GetByID(ctx, warningID)
	if err != nil {
		return nil, fmt.Errorf("failed to get early warning: %w", err)
	}
	return warning, nil
}

// UpdateByID updates an existing early warning. The reference is immutable.
func (s *earlyWarningService) UpdateByID(ctx context.Context, warning *notices.EarlyWarning) error {
	existing, err := s.warningRepo.GetByID(ctx, warning.ID)
	if err != nil {
		return fmt.Errorf("failed to get early warning: %w", err)
	}
	warning.Reference = existing.Reference

	if err := s.warningRepo.UpdateByID(ctx, warning); err != nil {
		return fmt.Errorf("failed to update early warning: %w", err)
	}
	return nil
}

// DeleteByID deletes an early warning by ID
func (s *earlyWarningService) DeleteByID(ctx context.Context, warningID string) error {
	if err := s.warningRepo.DeleteByID(ctx, warningID); err != nil {
		return fmt.Errorf("failed to delete early warning: %w", err)
	}
	return nil
}

// compensationEventService implements the CompensationEventService interface
// for managing compensation event notices
type compensationEventService struct {
	eventRepo   notices.CompensationEventRepository
	projectRepo projects.ProjectRepository
	bus         *eventbus.Bus
	logger      logger.Logger
}

// NewCompensationEventService creates a new instance of CompensationEventService
func NewCompensationEventService(
	eventRepo notices.CompensationEventRepository,
	projectRepo projects.ProjectRepository,
	bus *eventbus.Bus,
	logger logger.Logger,
) (notices.CompensationEventService, error) {
	return &compensationEventService{
		eventRepo:   eventRepo,
		projectRepo: projectRepo,
		bus:         bus,
		logger:      logger,
	}, nil
}

// Raise registers a new compensation event against a project. The reference is
// assigned sequentially per project (CE-001, CE-002, ...) and a
// compensation_event.raised event is published after the notice is stored.
func (s *compensationEventService) Raise(ctx context.Context, event *notices.CompensationEvent) (*notices.CompensationEvent, error) {
	if _, err := s.projectRepo.GetByID(ctx, event.ProjectID); err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	sequence, err := s.eventRepo.NextSequence(ctx, event.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to determine next reference: %w", err)
	}

	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	event.Reference = fmt.Sprintf("CE-%03d", sequence)
	if event.Status == "" {
		event.Status = notices.CompensationEventStatusNotified
	}
	if event.RaisedAt.IsZero() {
		event.RaisedAt = time.Now()
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create compensation event: %w", err)
	}

	s.logger.Info("Raised compensation event ", event.Reference, " on project ", event.ProjectID)
	s.bus.Emit(ctx, eventbus.EventCompensationEventRaised, eventbus.CompensationEventRaisedPayload{Event: event})

	return event, nil
}

// List retrieves compensation events considering a query filter when set
func (s *compensationEventService) List(ctx context.Context, query *notices.NoticeQuery) ([]*notices.CompensationEvent, error) {
	if query == nil {
		query = notices.NewNoticeQuery()
	}

	list, err := s.eventRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list compensation events: %w", err)
	}
	return list, nil
}

// GetByID retrieves a compensation event by its unique ID
func (s *compensationEventService) GetByID(ctx context.Context, eventID string) (*notices.CompensationEvent, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get compensation event: %w", err)
	}
	return event, nil
}

// UpdateByID updates an existing compensation event. The reference is immutable.
func (s *compensationEventService) UpdateByID(ctx context.Context, event *notices.CompensationEvent) error {
	existing, err := s.eventRepo.GetByID(ctx, event.ID)
	if err != nil {
		return fmt.Errorf("failed to get compensation event: %w", err)
	}
	event.Reference = existing.Reference

	if err := s.eventRepo.UpdateByID(ctx, event); err != nil {
		return fmt.Errorf("failed to update compensation event: %w", err)
	}
	return nil
}

// DeleteByID deletes a compensation event by ID
func (s *compensationEventService) DeleteByID(ctx context.Context, eventID string) error {
	if err := s.eventRepo.DeleteByID(ctx, eventID); err != nil {
		return fmt.Errorf("failed to delete compensation event: %w", err)
	}
	return nil
}
