package service

import (
	"context"
	"time"

	"capi-onboarding-backend/internal/catalog"
	"capi-onboarding-backend/internal/database/models"
	apperrors "capi-onboarding-backend/internal/errors"
	"capi-onboarding-backend/internal/logger"
	"capi-onboarding-backend/internal/metrics"
	"capi-onboarding-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// ProgressService records step and checklist item completion and propagates
// status changes up to the platform instance and the client.
type ProgressService struct {
	store     *repository.Store
	catalog   *catalog.Catalog
	validator *validator.Validate
	now       func() time.Time
}

// NewProgressService creates a new progress service
func NewProgressService(store *repository.Store, cat *catalog.Catalog, validator *validator.Validate) *ProgressService {
	return &ProgressService{
		store:     store,
		catalog:   cat,
		validator: validator,
		now:       time.Now,
	}
}

// WithClock replaces the time source, for tests
func (s *ProgressService) WithClock(now func() time.Time) *ProgressService {
	s.now = now
	return s
}

type stepRef struct {
	ClientID string `json:"clientId" validate:"required"`
	Platform string `json:"platform" validate:"required"`
	StepID   string `json:"stepId" validate:"required"`
}

// resolveStep validates the address of a step and returns its catalog entry
func (s *ProgressService) resolveStep(clientID, platform, stepID string) (catalog.Step, error) {
	if err := validateStruct(s.validator, &stepRef{ClientID: clientID, Platform: platform, StepID: stepID}); err != nil {
		return catalog.Step{}, err
	}
	step, ok := s.catalog.Step(stepID)
	if !ok {
		return catalog.Step{}, apperrors.ErrStepNotFound
	}
	if !step.AcceptsPlatform(platform) {
		return catalog.Step{}, apperrors.NewValidationError("platform", scopeMessage(step))
	}
	if step.Scope == catalog.ScopeEach {
		if _, known := s.catalog.Platform(platform); !known {
			return catalog.Step{}, apperrors.NewValidationError("platform", "unknown platform '"+platform+"'")
		}
	}
	return step, nil
}

func scopeMessage(step catalog.Step) string {
	switch step.Scope {
	case catalog.ScopeCore:
		return "core steps are recorded under platform 'core'"
	case catalog.ScopePlatform:
		return "step belongs to platform '" + step.Platform + "'"
	default:
		return "shared steps are recorded per platform, not under 'core'"
	}
}

func (s *ProgressService) resolveItem(clientID, platform, stepID string, itemIndex int) error {
	step, err := s.resolveStep(clientID, platform, stepID)
	if err != nil {
		return err
	}
	if itemIndex < 0 {
		return apperrors.NewValidationError("itemIndex", "must be a non-negative integer")
	}
	if itemIndex >= len(step.Checklist) {
		return apperrors.ErrChecklistItemNotFound
	}
	return nil
}

// MarkStepComplete records the step as completed and ratchets the platform
// instance and the client from not_started to in_progress. Repeating the call
// refreshes completedAt without adding a row.
func (s *ProgressService) MarkStepComplete(ctx context.Context, clientID, platform, stepID, completedBy string) (*models.StepProgress, error) {
	if _, err := s.resolveStep(clientID, platform, stepID); err != nil {
		return nil, err
	}
	client, err := s.store.Clients.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	progress := &models.StepProgress{
		ClientID:    clientID,
		Platform:    platform,
		StepID:      stepID,
		Status:      models.StatusCompleted,
		CompletedAt: s.now().UTC(),
		CompletedBy: completedBy,
	}
	if err := s.store.StepProgress.Upsert(ctx, progress); err != nil {
		return nil, apperrors.NewPersistenceError("upsert step progress", err)
	}
	metrics.ProgressChanged("step", "mark")

	s.propagate(ctx, client, platform, stepID)
	return progress, nil
}

// UnmarkStep deletes the step row and reports whether it existed.
// Ancestor statuses are left untouched.
func (s *ProgressService) UnmarkStep(ctx context.Context, clientID, platform, stepID string) (bool, error) {
	if err := validateStruct(s.validator, &stepRef{ClientID: clientID, Platform: platform, StepID: stepID}); err != nil {
		return false, err
	}
	deleted, err := s.store.StepProgress.Delete(ctx, models.StepKey{ClientID: clientID, Platform: platform, StepID: stepID})
	if err != nil {
		return false, apperrors.NewPersistenceError("delete step progress", err)
	}
	if deleted {
		metrics.ProgressChanged("step", "unmark")
	}
	return deleted, nil
}

// MarkChecklistItemComplete records one checklist item as completed. It does
// not complete the step and does not propagate.
func (s *ProgressService) MarkChecklistItemComplete(ctx context.Context, clientID, platform, stepID string, itemIndex int, completedBy string) (*models.ChecklistProgress, error) {
	if err := s.resolveItem(clientID, platform, stepID, itemIndex); err != nil {
		return nil, err
	}
	if _, err := s.store.Clients.GetByID(ctx, clientID); err != nil {
		return nil, err
	}

	progress := &models.ChecklistProgress{
		ClientID:    clientID,
		Platform:    platform,
		StepID:      stepID,
		ItemIndex:   itemIndex,
		Status:      models.StatusCompleted,
		CompletedAt: s.now().UTC(),
		CompletedBy: completedBy,
	}
	if err := s.store.ChecklistProgress.Upsert(ctx, progress); err != nil {
		return nil, apperrors.NewPersistenceError("upsert checklist progress", err)
	}
	metrics.ProgressChanged("item", "mark")
	return progress, nil
}

// UnmarkChecklistItem deletes the item row and reports whether it existed
func (s *ProgressService) UnmarkChecklistItem(ctx context.Context, clientID, platform, stepID string, itemIndex int) (bool, error) {
	if err := validateStruct(s.validator, &stepRef{ClientID: clientID, Platform: platform, StepID: stepID}); err != nil {
		return false, err
	}
	if itemIndex < 0 {
		return false, apperrors.NewValidationError("itemIndex", "must be a non-negative integer")
	}
	key := models.ItemKey{
		StepKey:   models.StepKey{ClientID: clientID, Platform: platform, StepID: stepID},
		ItemIndex: itemIndex,
	}
	deleted, err := s.store.ChecklistProgress.Delete(ctx, key)
	if err != nil {
		return false, apperrors.NewPersistenceError("delete checklist progress", err)
	}
	if deleted {
		metrics.ProgressChanged("item", "unmark")
	}
	return deleted, nil
}

// GetClientProgress returns every completed step of a client
func (s *ProgressService) GetClientProgress(ctx context.Context, clientID string) ([]models.StepProgress, error) {
	if clientID == "" {
		return nil, apperrors.NewValidationError("clientId", "is required")
	}
	rows, err := s.store.StepProgress.GetByClientID(ctx, clientID)
	if err != nil {
		return nil, apperrors.NewPersistenceError("list step progress", err)
	}
	return nonNil(rows), nil
}

// GetPlatformProgress returns the completed steps recorded under one platform
func (s *ProgressService) GetPlatformProgress(ctx context.Context, clientID, platform string) ([]models.StepProgress, error) {
	if clientID == "" || platform == "" {
		return nil, apperrors.NewValidationError("", "clientId and platform are required")
	}
	rows, err := s.store.StepProgress.GetByPlatform(ctx, clientID, platform)
	if err != nil {
		return nil, apperrors.NewPersistenceError("list step progress", err)
	}
	return nonNil(rows), nil
}

// GetChecklistProgress returns the completed items of a step ordered by index
func (s *ProgressService) GetChecklistProgress(ctx context.Context, clientID, platform, stepID string) ([]models.ChecklistProgress, error) {
	if err := validateStruct(s.validator, &stepRef{ClientID: clientID, Platform: platform, StepID: stepID}); err != nil {
		return nil, err
	}
	rows, err := s.store.ChecklistProgress.GetByStep(ctx, models.StepKey{ClientID: clientID, Platform: platform, StepID: stepID})
	if err != nil {
		return nil, apperrors.NewPersistenceError("list checklist progress", err)
	}
	return nonNil(rows), nil
}

// CountPlatformCompletion returns how many of the client's platforms are completed
func (s *ProgressService) CountPlatformCompletion(ctx context.Context, clientID string) (models.PlatformCounts, error) {
	counts, err := s.CountAllPlatformCompletion(ctx)
	if err != nil {
		return models.PlatformCounts{}, err
	}
	return counts[clientID], nil
}

// CountAllPlatformCompletion returns platform totals for every client in one read
func (s *ProgressService) CountAllPlatformCompletion(ctx context.Context) (map[string]models.PlatformCounts, error) {
	counts, err := s.store.Platforms.CountByClient(ctx)
	if err != nil {
		return nil, apperrors.NewPersistenceError("count platforms", err)
	}
	return counts, nil
}

// propagate moves not_started ancestors of a completed step to in_progress.
// A core step fans out to every platform instance of the client. Every move is
// conditional on the row still being not_started, so a status written
// concurrently is never downgraded. Failures never reach the caller.
func (s *ProgressService) propagate(ctx context.Context, client *models.Client, platform, stepID string) {
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"client_id": client.ID,
		"platform":  platform,
		"step_id":   stepID,
	})

	for _, target := range s.propagationTargets(ctx, log, client.ID, platform) {
		moved, err := s.store.Platforms.AdvanceStatus(ctx, client.ID, target, models.StatusNotStarted, models.StatusInProgress)
		if err != nil {
			metrics.PropagationFailed("platform")
			log.WithError(err).WithField("target_platform", target).Warn("Failed to move platform to in_progress")
			continue
		}
		if moved {
			log.WithField("target_platform", target).Debug("Platform moved to in_progress")
		}
	}

	if client.Status != models.StatusNotStarted {
		return
	}
	moved, err := s.store.Clients.AdvanceStatus(ctx, client.ID, models.StatusNotStarted, models.StatusInProgress)
	if err != nil {
		metrics.PropagationFailed("client")
		log.WithError(err).Warn("Failed to move client to in_progress")
		return
	}
	if moved {
		client.Status = models.StatusInProgress
	}
}

// propagationTargets lists the platform instances a step may advance. For a
// platform step that is the platform itself; AdvanceStatus ignores it when
// the client never attached it.
func (s *ProgressService) propagationTargets(ctx context.Context, log *logger.Logger, clientID, platform string) []string {
	if platform != catalog.CorePlatform {
		return []string{platform}
	}
	instances, err := s.store.Platforms.GetByClientID(ctx, clientID)
	if err != nil {
		metrics.PropagationFailed("platform")
		log.WithError(err).Warn("Failed to list platforms for propagation")
		return nil
	}
	var targets []string
	for _, p := range instances {
		if p.Status == models.StatusNotStarted {
			targets = append(targets, p.Platform)
		}
	}
	return targets
}

func nonNil[T any](rows []T) []T {
	if rows == nil {
		return []T{}
	}
	return rows
}
