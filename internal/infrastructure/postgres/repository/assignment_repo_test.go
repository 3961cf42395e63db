package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prospectops/zone-assignment-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAssignmentRewritesZoneProjection(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDefaultAssignmentRepository(db)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	write := &domain.AssignmentWrite{
		Record: &domain.ZoneAssignment{
			ID:           "rec-1",
			ZoneID:       "zone-1",
			AssigneeType: domain.AssigneeTeam,
			AssigneeID:   "team-1",
			StartAt:      now,
			EndAt:        now.AddDate(0, 0, 30),
			CreatedAt:    now,
		},
		Links: []*domain.ZoneCommercial{
			{ZoneID: "zone-1", CommercialID: "com-1", IsActive: true},
		},
		Projection: domain.ZoneProjectionFor(domain.AssigneeTeam, "team-1"),
	}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "zone_commercials"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	// every projection pointer is written; a stale manager_id or
	// commercial_id from an earlier record must not survive
	mock.ExpectExec(`UPDATE "zones" SET "assignment_type"=\$1,"commercial_id"=\$2,"manager_id"=\$3,"team_id"=\$4`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "zone_assignments"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.CreateAssignment(write))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStopAssignmentClampsStart(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDefaultAssignmentRepository(db)

	mock.ExpectBegin()
	// a future record's start is pulled back so the window stays ordered
	mock.ExpectExec(`UPDATE "zone_assignments" SET "end_at"=\$1,"start_at"=LEAST\(start_at, \$2\)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "zone_commercials"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.StopAssignment("rec-1", "zone-1", time.Now(), []string{"com-1"}, false)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
