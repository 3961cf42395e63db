package domain

import "errors"

var (
	ErrZoneNotFound        = errors.New("zone not found")
	ErrAssignmentNotFound  = errors.New("assignment not found")
	ErrManagerNotFound     = errors.New("manager not found")
	ErrTeamNotFound        = errors.New("team not found")
	ErrCommercialNotFound  = errors.New("commercial not found")
	ErrAssignmentCompleted = errors.New("assignment already completed")
)
