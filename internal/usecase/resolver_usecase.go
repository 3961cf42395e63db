package usecase

import (
	"github.com/prospectops/zone-assignment-service/internal/domain"
)

// AssigneeResolver expands an (assignee type, assignee id) pair into the
// concrete commercial set it denotes. The writer, the reconciler and the
// scope guard all resolve through this single implementation so "who is
// affected" never diverges from "who may act".
type AssigneeResolver interface {
	Resolve(assigneeType domain.AssigneeType, assigneeID string) ([]string, error)
}

type DefaultAssigneeResolver struct {
	directoryRepo domain.DirectoryRepository
}

func NewDefaultAssigneeResolver(directoryRepo domain.DirectoryRepository) *DefaultAssigneeResolver {
	return &DefaultAssigneeResolver{directoryRepo: directoryRepo}
}

// Resolve never fails on an unknown type: callers treat the empty set
// as "nothing to activate". MANAGER expands over the manager's teams
// and their direct-report commercials with no team, matching the scope
// guard's ownership traversal.
func (r *DefaultAssigneeResolver) Resolve(assigneeType domain.AssigneeType, assigneeID string) ([]string, error) {
	switch assigneeType {
	case domain.AssigneeCommercial:
		return []string{assigneeID}, nil

	case domain.AssigneeTeam:
		commercials, err := r.directoryRepo.GetCommercialsByTeamID(assigneeID)
		if err != nil {
			return nil, err
		}
		ids := make([]string, len(commercials))
		for i, commercial := range commercials {
			ids[i] = commercial.ID
		}
		return ids, nil

	case domain.AssigneeManager:
		teams, err := r.directoryRepo.GetTeamsByManagerID(assigneeID)
		if err != nil {
			return nil, err
		}
		direct, err := r.directoryRepo.GetDirectCommercialsByManagerID(assigneeID)
		if err != nil {
			return nil, err
		}

		seen := make(map[string]bool)
		ids := make([]string, 0)
		for _, team := range teams {
			for _, commercial := range team.Commercials {
				if !seen[commercial.ID] {
					seen[commercial.ID] = true
					ids = append(ids, commercial.ID)
				}
			}
		}
		for _, commercial := range direct {
			if !seen[commercial.ID] {
				seen[commercial.ID] = true
				ids = append(ids, commercial.ID)
			}
		}
		return ids, nil
	}

	return []string{}, nil
}
