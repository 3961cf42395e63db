package reconciler

import (
	"context"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prospectops/zone-assignment-service/internal/domain"
	"github.com/prospectops/zone-assignment-service/internal/infrastructure/metrics"
	"github.com/prospectops/zone-assignment-service/internal/usecase"
)

// Scheduler re-derives active-link state from the assignment records
// and the current time. The two passes run on independent cadences and
// share nothing but the store; every link flip is predicate-guarded at
// the data layer, so running a pass concurrently with itself or with
// the synchronous write path is safe.
type Scheduler struct {
	assignmentRepo domain.AssignmentRepository
	linkRepo       domain.ActiveLinkRepository
	resolver       usecase.AssigneeResolver
	clock          clockwork.Clock
	metrics        *metrics.AssignmentMetrics
	logger         *slog.Logger

	activateInterval   time.Duration
	deactivateInterval time.Duration
	assigneeTypes      []domain.AssigneeType
}

type SchedulerConfig struct {
	ActivateInterval   time.Duration
	DeactivateInterval time.Duration
	// AssigneeTypes restricts the activation pass to a subset of
	// assignee types so tenants can be split across scheduler
	// instances. Empty means all types.
	AssigneeTypes []domain.AssigneeType
}

func NewScheduler(
	assignmentRepo domain.AssignmentRepository,
	linkRepo domain.ActiveLinkRepository,
	resolver usecase.AssigneeResolver,
	clock clockwork.Clock,
	assignmentMetrics *metrics.AssignmentMetrics,
	logger *slog.Logger,
	cfg SchedulerConfig) *Scheduler {

	return &Scheduler{
		assignmentRepo:     assignmentRepo,
		linkRepo:           linkRepo,
		resolver:           resolver,
		clock:              clock,
		metrics:            assignmentMetrics,
		logger:             logger,
		activateInterval:   cfg.ActivateInterval,
		deactivateInterval: cfg.DeactivateInterval,
		assigneeTypes:      cfg.AssigneeTypes,
	}
}

// StartActivateLoop blocks until ctx is done.
func (s *Scheduler) StartActivateLoop(ctx context.Context) {
	ticker := time.NewTicker(s.activateInterval)
	defer ticker.Stop()

	s.logger.Info("starting activation loop", "interval", s.activateInterval)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("stopping activation loop")
			return
		case <-ticker.C:
			s.ForceActivate(ctx)
		}
	}
}

// StartDeactivateLoop blocks until ctx is done.
func (s *Scheduler) StartDeactivateLoop(ctx context.Context) {
	ticker := time.NewTicker(s.deactivateInterval)
	defer ticker.Stop()

	s.logger.Info("starting deactivation loop", "interval", s.deactivateInterval)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("stopping deactivation loop")
			return
		case <-ticker.C:
			s.ForceDeactivate(ctx)
		}
	}
}

// ForceActivate runs one activation pass synchronously. Background
// passes have no caller to report to, so failures are logged, never
// propagated.
func (s *Scheduler) ForceActivate(ctx context.Context) {
	if _, err := s.RunActivatePass(ctx); err != nil {
		s.logger.Error("activation pass failed", "error", err.Error())
	}
}

// ForceDeactivate runs one deactivation pass synchronously.
func (s *Scheduler) ForceDeactivate(ctx context.Context) {
	if _, err := s.RunDeactivatePass(ctx); err != nil {
		s.logger.Error("deactivation pass failed", "error", err.Error())
	}
}

// RunActivatePass flips to active every link of every record whose
// window currently applies. A record that resolves to an empty set is a
// no-op; a record that fails to resolve is logged and skipped without
// aborting the rest of the pass.
func (s *Scheduler) RunActivatePass(ctx context.Context) (int, error) {
	started := time.Now()
	defer func() {
		s.metrics.RecordPassDuration("activate", time.Since(started).Seconds())
	}()

	now := s.clock.Now()
	records, err := s.assignmentRepo.FindStartedAssignments(now, s.assigneeTypes)
	if err != nil {
		return 0, err
	}

	activated := 0
	for _, record := range records {
		if ctx.Err() != nil {
			return activated, ctx.Err()
		}

		commercialIDs, err := s.resolver.Resolve(record.AssigneeType, record.AssigneeID)
		if err != nil {
			s.metrics.RecordPassError("activate")
			s.logger.Error("failed to resolve assignee",
				"assignment_id", record.ID,
				"assignee_type", record.AssigneeType,
				"assignee_id", record.AssigneeID,
				"error", err.Error())
			continue
		}

		for _, commercialID := range commercialIDs {
			flipped, err := s.linkRepo.ActivateLink(record.ZoneID, commercialID, record.AssignedByName)
			if err != nil {
				s.metrics.RecordPassError("activate")
				s.logger.Error("failed to activate link",
					"assignment_id", record.ID,
					"zone_id", record.ZoneID,
					"commercial_id", commercialID,
					"error", err.Error())
				continue
			}
			if flipped {
				activated++
				s.metrics.RecordLinkActivated("reconciler")
			}
		}
	}

	s.logger.Info("activation pass finished",
		"assignments", len(records),
		"links_activated", activated)
	return activated, nil
}

// RunDeactivatePass retires every active link of every record whose
// window has elapsed, regardless of when it started.
func (s *Scheduler) RunDeactivatePass(ctx context.Context) (int, error) {
	started := time.Now()
	defer func() {
		s.metrics.RecordPassDuration("deactivate", time.Since(started).Seconds())
	}()

	now := s.clock.Now()
	records, err := s.assignmentRepo.FindExpiredAssignments(now)
	if err != nil {
		return 0, err
	}

	deactivated := 0
	for _, record := range records {
		if ctx.Err() != nil {
			return deactivated, ctx.Err()
		}

		commercialIDs, err := s.resolver.Resolve(record.AssigneeType, record.AssigneeID)
		if err != nil {
			s.metrics.RecordPassError("deactivate")
			s.logger.Error("failed to resolve assignee",
				"assignment_id", record.ID,
				"assignee_type", record.AssigneeType,
				"assignee_id", record.AssigneeID,
				"error", err.Error())
			continue
		}

		for _, commercialID := range commercialIDs {
			flipped, err := s.linkRepo.DeactivateLink(record.ZoneID, commercialID, now)
			if err != nil {
				s.metrics.RecordPassError("deactivate")
				s.logger.Error("failed to deactivate link",
					"assignment_id", record.ID,
					"zone_id", record.ZoneID,
					"commercial_id", commercialID,
					"error", err.Error())
				continue
			}
			if flipped {
				deactivated++
				s.metrics.RecordLinkDeactivated("reconciler")
			}
		}
	}

	s.logger.Info("deactivation pass finished",
		"assignments", len(records),
		"links_deactivated", deactivated)
	return deactivated, nil
}
