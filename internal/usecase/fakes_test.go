package usecase

import (
	"fmt"
	"time"

	"github.com/prospectops/zone-assignment-service/internal/domain"
	"github.com/prospectops/zone-assignment-service/internal/infrastructure/metrics"
)

// promauto registers against the default registry, so the whole test
// binary shares one metrics instance.
var testMetrics = metrics.NewAssignmentMetrics()

func linkKey(zoneID, commercialID string) string {
	return zoneID + "/" + commercialID
}

type fakeDirectoryRepo struct {
	managers    map[string]*domain.Manager
	teams       map[string]*domain.Team
	commercials map[string]*domain.Commercial
}

func newFakeDirectoryRepo() *fakeDirectoryRepo {
	return &fakeDirectoryRepo{
		managers:    make(map[string]*domain.Manager),
		teams:       make(map[string]*domain.Team),
		commercials: make(map[string]*domain.Commercial),
	}
}

func (r *fakeDirectoryRepo) addManager(id string) {
	r.managers[id] = &domain.Manager{ID: id, FullName: "Manager " + id}
}

func (r *fakeDirectoryRepo) addTeam(id, managerID string) {
	r.teams[id] = &domain.Team{ID: id, Name: "Team " + id, ManagerID: managerID}
}

func (r *fakeDirectoryRepo) addCommercial(id string, managerID, teamID *string) {
	r.commercials[id] = &domain.Commercial{ID: id, FullName: "Commercial " + id, ManagerID: managerID, TeamID: teamID}
}

func (r *fakeDirectoryRepo) GetManagerByID(managerID string) (*domain.Manager, error) {
	manager, ok := r.managers[managerID]
	if !ok {
		return nil, domain.ErrManagerNotFound
	}
	return manager, nil
}

func (r *fakeDirectoryRepo) GetTeamByID(teamID string) (*domain.Team, error) {
	team, ok := r.teams[teamID]
	if !ok {
		return nil, domain.ErrTeamNotFound
	}
	return team, nil
}

func (r *fakeDirectoryRepo) GetCommercialByID(commercialID string) (*domain.Commercial, error) {
	commercial, ok := r.commercials[commercialID]
	if !ok {
		return nil, domain.ErrCommercialNotFound
	}
	return commercial, nil
}

func (r *fakeDirectoryRepo) GetTeamsByManagerID(managerID string) ([]*domain.Team, error) {
	teams := make([]*domain.Team, 0)
	for _, team := range r.teams {
		if team.ManagerID != managerID {
			continue
		}
		loaded := &domain.Team{ID: team.ID, Name: team.Name, ManagerID: team.ManagerID}
		members, err := r.GetCommercialsByTeamID(team.ID)
		if err != nil {
			return nil, err
		}
		loaded.Commercials = members
		teams = append(teams, loaded)
	}
	return teams, nil
}

func (r *fakeDirectoryRepo) GetCommercialsByTeamID(teamID string) ([]*domain.Commercial, error) {
	commercials := make([]*domain.Commercial, 0)
	for _, commercial := range r.commercials {
		if commercial.TeamID != nil && *commercial.TeamID == teamID {
			commercials = append(commercials, commercial)
		}
	}
	return commercials, nil
}

func (r *fakeDirectoryRepo) GetDirectCommercialsByManagerID(managerID string) ([]*domain.Commercial, error) {
	commercials := make([]*domain.Commercial, 0)
	for _, commercial := range r.commercials {
		if commercial.TeamID == nil && commercial.ManagerID != nil && *commercial.ManagerID == managerID {
			commercials = append(commercials, commercial)
		}
	}
	return commercials, nil
}

type fakeZoneRepo struct {
	zones map[string]*domain.Zone
}

func newFakeZoneRepo() *fakeZoneRepo {
	return &fakeZoneRepo{zones: make(map[string]*domain.Zone)}
}

func (r *fakeZoneRepo) CreateZone(zone *domain.Zone) error {
	r.zones[zone.ID] = zone
	return nil
}

func (r *fakeZoneRepo) UpdateZoneName(zoneID, name string) error {
	zone, ok := r.zones[zoneID]
	if !ok {
		return domain.ErrZoneNotFound
	}
	zone.Name = name
	return nil
}

func (r *fakeZoneRepo) GetZoneByID(zoneID string) (*domain.Zone, error) {
	zone, ok := r.zones[zoneID]
	if !ok {
		return nil, domain.ErrZoneNotFound
	}
	return zone, nil
}

func (r *fakeZoneRepo) GetZones() ([]*domain.Zone, error) {
	zones := make([]*domain.Zone, 0, len(r.zones))
	for _, zone := range r.zones {
		zones = append(zones, zone)
	}
	return zones, nil
}

// fakeAssignmentRepo mirrors the transactional write semantics of the
// real repository against in-memory maps so usecase tests can observe
// both the record and its link rows.
type fakeAssignmentRepo struct {
	records map[string]*domain.ZoneAssignment
	links   map[string]*domain.ZoneCommercial
	zones   *fakeZoneRepo

	failCreate error
}

func newFakeAssignmentRepo(zones *fakeZoneRepo) *fakeAssignmentRepo {
	return &fakeAssignmentRepo{
		records: make(map[string]*domain.ZoneAssignment),
		links:   make(map[string]*domain.ZoneCommercial),
		zones:   zones,
	}
}

func (r *fakeAssignmentRepo) CreateAssignment(write *domain.AssignmentWrite) error {
	if r.failCreate != nil {
		return r.failCreate
	}

	replaced := make(map[string]bool, len(write.ReplaceCommercialIDs))
	for _, commercialID := range write.ReplaceCommercialIDs {
		replaced[commercialID] = true
	}
	for key, link := range r.links {
		if !replaced[link.CommercialID] {
			continue
		}
		if write.ZoneScoped && link.ZoneID != write.Record.ZoneID {
			continue
		}
		delete(r.links, key)
	}

	for _, link := range write.Links {
		stored := *link
		stored.ID = fmt.Sprintf("link-%s-%s", link.ZoneID, link.CommercialID)
		r.links[linkKey(link.ZoneID, link.CommercialID)] = &stored
	}

	if write.Projection != nil && r.zones != nil {
		if zone, ok := r.zones.zones[write.Record.ZoneID]; ok {
			zone.AssignmentType = write.Projection.AssignmentType
			zone.ManagerID = write.Projection.ManagerID
			zone.TeamID = write.Projection.TeamID
			zone.CommercialID = write.Projection.CommercialID
		}
	}

	stored := *write.Record
	r.records[stored.ID] = &stored
	return nil
}

func (r *fakeAssignmentRepo) GetAssignmentByID(assignmentID string) (*domain.ZoneAssignment, error) {
	record, ok := r.records[assignmentID]
	if !ok {
		return nil, domain.ErrAssignmentNotFound
	}
	return record, nil
}

func (r *fakeAssignmentRepo) GetAssignments() ([]*domain.ZoneAssignment, error) {
	records := make([]*domain.ZoneAssignment, 0, len(r.records))
	for _, record := range r.records {
		records = append(records, record)
	}
	return records, nil
}

func (r *fakeAssignmentRepo) GetAssignmentsByZoneID(zoneID string) ([]*domain.ZoneAssignment, error) {
	records := make([]*domain.ZoneAssignment, 0)
	for _, record := range r.records {
		if record.ZoneID == zoneID {
			records = append(records, record)
		}
	}
	return records, nil
}

func (r *fakeAssignmentRepo) StopAssignment(assignmentID, zoneID string, endedAt time.Time, commercialIDs []string, clearTeamPointer bool) error {
	record, ok := r.records[assignmentID]
	if !ok {
		return domain.ErrAssignmentNotFound
	}
	record.EndAt = endedAt
	if record.StartAt.After(endedAt) {
		record.StartAt = endedAt
	}

	for _, commercialID := range commercialIDs {
		link, ok := r.links[linkKey(zoneID, commercialID)]
		if !ok || !link.IsActive {
			continue
		}
		link.IsActive = false
		ended := endedAt
		link.EndedAt = &ended
	}

	if clearTeamPointer && r.zones != nil {
		if zone, ok := r.zones.zones[zoneID]; ok {
			zone.TeamID = nil
		}
	}
	return nil
}

func (r *fakeAssignmentRepo) FindStartedAssignments(now time.Time, assigneeTypes []domain.AssigneeType) ([]*domain.ZoneAssignment, error) {
	wanted := make(map[domain.AssigneeType]bool, len(assigneeTypes))
	for _, assigneeType := range assigneeTypes {
		wanted[assigneeType] = true
	}

	records := make([]*domain.ZoneAssignment, 0)
	for _, record := range r.records {
		if record.StartAt.After(now) || !record.EndAt.After(now) {
			continue
		}
		if len(wanted) > 0 && !wanted[record.AssigneeType] {
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

func (r *fakeAssignmentRepo) FindExpiredAssignments(now time.Time) ([]*domain.ZoneAssignment, error) {
	records := make([]*domain.ZoneAssignment, 0)
	for _, record := range r.records {
		if !record.EndAt.After(now) {
			records = append(records, record)
		}
	}
	return records, nil
}

type publishedMessage struct {
	Topic string
	Msgs  []domain.Message
}

type fakePublisher struct {
	published []publishedMessage
}

func (p *fakePublisher) Publish(topic string, msgs ...domain.Message) error {
	p.published = append(p.published, publishedMessage{Topic: topic, Msgs: msgs})
	return nil
}
