package domain

// The organizational hierarchy (manager → team → commercial) is owned
// by an external collaborator; this service only reads it. A commercial
// may report to a team, or directly to a manager with no team.

type Manager struct {
	ID       string
	FullName string
}

type Team struct {
	ID          string
	Name        string
	ManagerID   string
	Commercials []*Commercial
}

type Commercial struct {
	ID       string
	FullName string
	ManagerID *string
	TeamID    *string
}

type DirectoryRepository interface {
	GetManagerByID(managerID string) (*Manager, error)
	GetTeamByID(teamID string) (*Team, error)
	GetCommercialByID(commercialID string) (*Commercial, error)
	GetTeamsByManagerID(managerID string) ([]*Team, error)
	GetCommercialsByTeamID(teamID string) ([]*Commercial, error)
	GetDirectCommercialsByManagerID(managerID string) ([]*Commercial, error)
}
