package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airline-ops/seatcrew/internal/domain"
	"airline-ops/seatcrew/internal/models/gorm"
)

func TestSaveCrew_SecondSaveOverwrites(t *testing.T) {
	db := setupTestDB(t)
	seedFlight(t, db, "AB1234", twoByTwo)
	svc := NewCrewService(db, newTestMetrics())
	ctx := context.Background()

	first, err := svc.SaveCrew(ctx, "AB1234", []int64{1, 2}, []int64{10, 11})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, first.PilotIDs)

	second, err := svc.SaveCrew(ctx, "AB1234", []int64{3}, []int64{12, 13, 14})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, []int64{3}, second.PilotIDs)
	assert.Equal(t, []int64{12, 13, 14}, second.CabinCrewIDs)

	stored, err := svc.GetCrew(ctx, "AB1234")
	require.NoError(t, err)
	assert.Equal(t, []int64{3}, stored.PilotIDs)
	assert.Equal(t, []int64{12, 13, 14}, stored.CabinCrewIDs)

	var rows int64
	require.NoError(t, db.Model(&gorm.CrewAssignment{}).Count(&rows).Error)
	assert.Equal(t, int64(1), rows)
}

func TestSaveCrew_Validation(t *testing.T) {
	svc := NewCrewService(nil, nil)
	ctx := context.Background()

	_, err := svc.SaveCrew(ctx, "AB1234", nil, []int64{1})
	assert.True(t, domain.IsValidation(err))
	assert.EqualError(t, err, "pilot_ids must not be empty")

	_, err = svc.SaveCrew(ctx, "AB1234", []int64{1}, []int64{})
	assert.EqualError(t, err, "cabin_crew_ids must not be empty")

	_, err = svc.SaveCrew(ctx, "AB1234", []int64{1, -2}, []int64{5})
	assert.EqualError(t, err, "pilot_ids[1] must be a positive id")
}

func TestSaveCrew_UnknownFlight(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCrewService(db, nil)

	_, err := svc.SaveCrew(context.Background(), "ZZ0000", []int64{1}, []int64{2})
	assert.True(t, domain.IsNotFound(err))
}

func TestGetCrew_NoRosterYet(t *testing.T) {
	db := setupTestDB(t)
	seedFlight(t, db, "AB1234", twoByTwo)

	_, err := NewCrewService(db, nil).GetCrew(context.Background(), "AB1234")
	assert.True(t, domain.IsNotFound(err))
	assert.EqualError(t, err, "Crew assignment not found")
}
