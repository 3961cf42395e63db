package usecase

import (
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	nanoid "github.com/jaevor/go-nanoid"
	"github.com/jonboulle/clockwork"
	"github.com/prospectops/zone-assignment-service/internal/domain"
	"github.com/prospectops/zone-assignment-service/internal/infrastructure/kafka"
	"github.com/prospectops/zone-assignment-service/internal/infrastructure/metrics"
	assignmentdto "github.com/prospectops/zone-assignment-service/internal/usecase/dto/assignment"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const maxDurationDays = 730

type AssignmentUsecase interface {
	AssignZone(input *assignmentdto.AssignZoneInput) (*assignmentdto.AssignmentOutput, error)
	StopAssignment(input *assignmentdto.StopAssignmentInput) (*assignmentdto.AssignmentOutput, error)
	ListAssignments(actingManagerID string) (*assignmentdto.AssignmentListOutput, error)
	GetZoneHistory(zoneID string) ([]*assignmentdto.AssignmentOutput, error)
}

// AssignmentPolicy mirrors the assignment section of the config.
type AssignmentPolicy struct {
	ExclusiveLinks      bool
	DefaultDurationDays int
}

type DefaultAssignmentUsecase struct {
	assignmentRepo domain.AssignmentRepository
	zoneRepo       domain.ZoneRepository
	directoryRepo  domain.DirectoryRepository
	resolver       AssigneeResolver
	access         AccessUsecase
	publisher      domain.PublisherPort
	metrics        *metrics.AssignmentMetrics
	clock          clockwork.Clock
	policy         AssignmentPolicy
	eventTopic     string
}

func NewDefaultAssignmentUsecase(
	assignmentRepo domain.AssignmentRepository,
	zoneRepo domain.ZoneRepository,
	directoryRepo domain.DirectoryRepository,
	resolver AssigneeResolver,
	access AccessUsecase,
	publisher domain.PublisherPort,
	assignmentMetrics *metrics.AssignmentMetrics,
	clock clockwork.Clock,
	policy AssignmentPolicy,
	eventTopic string) *DefaultAssignmentUsecase {

	return &DefaultAssignmentUsecase{
		assignmentRepo: assignmentRepo,
		zoneRepo:       zoneRepo,
		directoryRepo:  directoryRepo,
		resolver:       resolver,
		access:         access,
		publisher:      publisher,
		metrics:        assignmentMetrics,
		clock:          clock,
		policy:         policy,
		eventTopic:     eventTopic,
	}
}

// AssignZone validates fully before touching the store, then persists
// the record, the link rows and the zone projection in one transaction.
// An immediate start produces active links synchronously; a future
// start leaves them inactive for the activation pass to flip.
func (uc *DefaultAssignmentUsecase) AssignZone(input *assignmentdto.AssignZoneInput) (*assignmentdto.AssignmentOutput, error) {
	assigneeType := domain.AssigneeType(input.AssigneeType)
	if !assigneeType.Valid() {
		uc.metrics.RecordError("assign", "validation")
		return nil, status.Error(codes.InvalidArgument, "unknown assignee type")
	}

	zone, err := uc.zoneRepo.GetZoneByID(input.ZoneID)
	if err != nil {
		if errors.Is(err, domain.ErrZoneNotFound) {
			uc.metrics.RecordError("assign", "not_found")
			return nil, status.Error(codes.NotFound, "zone not found")
		}
		return nil, status.Error(codes.Internal, err.Error())
	}

	now := uc.clock.Now()
	startAt := now
	if input.StartDate != nil {
		startAt = *input.StartDate
	}
	durationDays := uc.policy.DefaultDurationDays
	if input.DurationDays != nil {
		durationDays = *input.DurationDays
	}
	if err := validateWindow(now, startAt, durationDays); err != nil {
		uc.metrics.RecordError("assign", "validation")
		return nil, err
	}
	endAt := startAt.AddDate(0, 0, durationDays)

	if input.ActingManagerID != "" {
		if err := uc.checkManagerScope(input.ActingManagerID, zone.ID, assigneeType, input.AssigneeID); err != nil {
			uc.metrics.RecordError("assign", "forbidden")
			return nil, err
		}
	}

	if err := uc.checkAssigneeExists(assigneeType, input.AssigneeID); err != nil {
		uc.metrics.RecordError("assign", "not_found")
		return nil, err
	}

	commercialIDs, err := uc.resolver.Resolve(assigneeType, input.AssigneeID)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	isImmediate := !startAt.After(now)

	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	record := &domain.ZoneAssignment{
		ID:             idGenerator(),
		ZoneID:         zone.ID,
		AssigneeType:   assigneeType,
		AssigneeID:     input.AssigneeID,
		AssignedByID:   input.ActorID,
		AssignedByName: input.ActorName,
		StartAt:        startAt,
		EndAt:          endAt,
		CreatedAt:      now,
	}

	links := make([]*domain.ZoneCommercial, len(commercialIDs))
	for i, commercialID := range commercialIDs {
		links[i] = &domain.ZoneCommercial{
			ZoneID:       zone.ID,
			CommercialID: commercialID,
			AssignedBy:   input.ActorName,
			IsActive:     isImmediate,
		}
	}

	write := &domain.AssignmentWrite{
		Record:     record,
		Links:      links,
		Projection: domain.ZoneProjectionFor(assigneeType, input.AssigneeID),
	}
	if isImmediate {
		write.ReplaceCommercialIDs = commercialIDs
		write.ZoneScoped = !uc.policy.ExclusiveLinks
	}

	if err := uc.assignmentRepo.CreateAssignment(write); err != nil {
		uc.metrics.RecordError("assign", "store")
		return nil, status.Error(codes.Internal, err.Error())
	}

	uc.metrics.RecordAssignmentCreated(string(assigneeType))
	for range commercialIDs {
		if isImmediate {
			uc.metrics.RecordLinkActivated("writer")
		}
	}
	uc.publishEvent(kafka.EventAssignmentCreated, record, commercialIDs)

	return assignmentdto.ToAssignmentOutput(record, now), nil
}

// StopAssignment moves the record's end to now and retires the zone's
// links for the record's resolved commercials. Stopping a record whose
// window already elapsed is a conflict, not a no-op; stopping one that
// has not started yet collapses its window to the stop instant.
func (uc *DefaultAssignmentUsecase) StopAssignment(input *assignmentdto.StopAssignmentInput) (*assignmentdto.AssignmentOutput, error) {
	record, err := uc.assignmentRepo.GetAssignmentByID(input.AssignmentID)
	if err != nil {
		if errors.Is(err, domain.ErrAssignmentNotFound) {
			uc.metrics.RecordError("stop", "not_found")
			return nil, status.Error(codes.NotFound, "assignment not found")
		}
		return nil, status.Error(codes.Internal, err.Error())
	}

	if input.ActingManagerID != "" {
		allowed, err := uc.access.CanManagerAct(input.ActingManagerID, record)
		if err != nil {
			return nil, status.Error(codes.Internal, err.Error())
		}
		if !allowed {
			uc.metrics.RecordError("stop", "forbidden")
			return nil, status.Error(codes.PermissionDenied, "assignment is outside of manager scope")
		}
	}

	now := uc.clock.Now()
	if !record.EndAt.After(now) {
		uc.metrics.RecordError("stop", "conflict")
		return nil, status.Error(codes.FailedPrecondition, domain.ErrAssignmentCompleted.Error())
	}

	commercialIDs, err := uc.resolver.Resolve(record.AssigneeType, record.AssigneeID)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	clearTeamPointer := record.AssigneeType == domain.AssigneeTeam
	if err := uc.assignmentRepo.StopAssignment(record.ID, record.ZoneID, now, commercialIDs, clearTeamPointer); err != nil {
		uc.metrics.RecordError("stop", "store")
		return nil, status.Error(codes.Internal, err.Error())
	}
	record.EndAt = now
	if record.StartAt.After(now) {
		record.StartAt = now
	}

	uc.metrics.RecordAssignmentStopped(string(record.AssigneeType))
	uc.publishEvent(kafka.EventAssignmentStopped, record, commercialIDs)

	return assignmentdto.ToAssignmentOutput(record, now), nil
}

// ListAssignments classifies every visible record against now. An empty
// actingManagerID means the admin scope: all records are visible.
func (uc *DefaultAssignmentUsecase) ListAssignments(actingManagerID string) (*assignmentdto.AssignmentListOutput, error) {
	records, err := uc.assignmentRepo.GetAssignments()
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	now := uc.clock.Now()
	output := &assignmentdto.AssignmentListOutput{
		Active:  make([]*assignmentdto.AssignmentOutput, 0),
		Future:  make([]*assignmentdto.AssignmentOutput, 0),
		Expired: make([]*assignmentdto.AssignmentOutput, 0),
	}

	for _, record := range records {
		if actingManagerID != "" {
			allowed, err := uc.access.CanManagerAct(actingManagerID, record)
			if err != nil {
				return nil, status.Error(codes.Internal, err.Error())
			}
			if !allowed {
				continue
			}
		}

		out := assignmentdto.ToAssignmentOutput(record, now)
		switch record.StatusAt(now) {
		case domain.AssignmentActive:
			output.Active = append(output.Active, out)
			output.Summary.Active++
		case domain.AssignmentFuture:
			output.Future = append(output.Future, out)
			output.Summary.Future++
		case domain.AssignmentExpired:
			output.Expired = append(output.Expired, out)
			output.Summary.Expired++
		}
		output.Summary.Total++
	}

	return output, nil
}

func (uc *DefaultAssignmentUsecase) GetZoneHistory(zoneID string) ([]*assignmentdto.AssignmentOutput, error) {
	if _, err := uc.zoneRepo.GetZoneByID(zoneID); err != nil {
		if errors.Is(err, domain.ErrZoneNotFound) {
			return nil, status.Error(codes.NotFound, "zone not found")
		}
		return nil, status.Error(codes.Internal, err.Error())
	}

	records, err := uc.assignmentRepo.GetAssignmentsByZoneID(zoneID)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	now := uc.clock.Now()
	history := make([]*assignmentdto.AssignmentOutput, len(records))
	for i, record := range records {
		history[i] = assignmentdto.ToAssignmentOutput(record, now)
	}
	return history, nil
}

// checkManagerScope enforces the manager-facing rules: no
// manager-to-manager assignments, no self-assignment, and both the zone
// and the assignee must be governed by the acting manager.
func (uc *DefaultAssignmentUsecase) checkManagerScope(managerID, zoneID string, assigneeType domain.AssigneeType, assigneeID string) error {
	if assigneeType == domain.AssigneeManager {
		return status.Error(codes.PermissionDenied, "managers cannot assign zones to managers")
	}
	if assigneeID == managerID {
		return status.Error(codes.PermissionDenied, "managers cannot assign zones to themselves")
	}

	ownsZone, err := uc.access.OwnsZone(managerID, zoneID)
	if err != nil {
		return status.Error(codes.Internal, err.Error())
	}
	if !ownsZone {
		return status.Error(codes.PermissionDenied, "zone is outside of manager scope")
	}

	var ownsAssignee bool
	switch assigneeType {
	case domain.AssigneeTeam:
		ownsAssignee, err = uc.access.OwnsTeam(managerID, assigneeID)
	case domain.AssigneeCommercial:
		ownsAssignee, err = uc.access.OwnsCommercial(managerID, assigneeID)
	}
	if err != nil {
		return status.Error(codes.Internal, err.Error())
	}
	if !ownsAssignee {
		return status.Error(codes.PermissionDenied, "assignee is outside of manager scope")
	}
	return nil
}

func (uc *DefaultAssignmentUsecase) checkAssigneeExists(assigneeType domain.AssigneeType, assigneeID string) error {
	var err error
	switch assigneeType {
	case domain.AssigneeManager:
		_, err = uc.directoryRepo.GetManagerByID(assigneeID)
	case domain.AssigneeTeam:
		_, err = uc.directoryRepo.GetTeamByID(assigneeID)
	case domain.AssigneeCommercial:
		_, err = uc.directoryRepo.GetCommercialByID(assigneeID)
	}
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrManagerNotFound) ||
		errors.Is(err, domain.ErrTeamNotFound) ||
		errors.Is(err, domain.ErrCommercialNotFound) {
		return status.Error(codes.NotFound, err.Error())
	}
	return status.Error(codes.Internal, err.Error())
}

// validateWindow keeps assignments inside the allowed band: start within
// [-1y, +2y] of now, duration in (0, 730] days, end no later than +2y.
func validateWindow(now, startAt time.Time, durationDays int) error {
	minStart := now.AddDate(-1, 0, 0)
	maxEnd := now.AddDate(2, 0, 0)

	if startAt.Before(minStart) {
		return status.Error(codes.InvalidArgument, "start date cannot be more than one year in the past")
	}
	if startAt.After(maxEnd) {
		return status.Error(codes.InvalidArgument, "start date cannot be more than two years ahead")
	}
	if durationDays <= 0 || durationDays > maxDurationDays {
		return status.Error(codes.InvalidArgument, "duration must be between 1 and 730 days")
	}
	if startAt.AddDate(0, 0, durationDays).After(maxEnd) {
		return status.Error(codes.InvalidArgument, "assignment cannot end more than two years ahead")
	}
	return nil
}

// publishEvent is best effort: a broker outage must not fail a write
// that already committed.
func (uc *DefaultAssignmentUsecase) publishEvent(eventType string, record *domain.ZoneAssignment, commercialIDs []string) {
	if uc.publisher == nil {
		return
	}

	event := kafka.AssignmentEvent{
		EventType:     eventType,
		AssignmentID:  record.ID,
		ZoneID:        record.ZoneID,
		AssigneeType:  string(record.AssigneeType),
		AssigneeID:    record.AssigneeID,
		CommercialIDs: commercialIDs,
		StartAt:       record.StartAt,
		EndAt:         record.EndAt,
	}
	value, err := json.Marshal(event)
	if err != nil {
		slog.Error("failed to marshal assignment event", "assignment_id", record.ID, "error", err.Error())
		return
	}
	if err := uc.publisher.Publish(uc.eventTopic, domain.Message{Key: []byte(record.ZoneID), Value: value}); err != nil {
		slog.Error("failed to publish assignment event", "assignment_id", record.ID, "error", err.Error())
	}
}
