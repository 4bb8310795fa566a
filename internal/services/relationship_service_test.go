package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airline-ops/seatcrew/internal/domain"
)

func TestAffiliatedSeating_Lifecycle(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRelationshipService(db)
	ctx := context.Background()

	// passengers need not be on the flight
	created, err := svc.CreateAffiliated(ctx, "ab1234", 7, 8)
	require.NoError(t, err)
	assert.Equal(t, "AB1234", created.FlightNumber)

	listed, err := svc.ListAffiliated(ctx, "AB1234")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, int64(8), listed[0].AffiliatedPassengerID)

	require.NoError(t, svc.DeleteAffiliated(ctx, created.ID))
	err = svc.DeleteAffiliated(ctx, created.ID)
	assert.True(t, domain.IsNotFound(err))

	listed, err = svc.ListAffiliated(ctx, "AB1234")
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestInfantParent_Lifecycle(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRelationshipService(db)
	ctx := context.Background()

	created, err := svc.CreateInfantParent(ctx, "AB1234", 21, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(21), created.InfantPassengerID)

	listed, err := svc.ListInfantParent(ctx, "AB1234")
	require.NoError(t, err)
	require.Len(t, listed, 1)

	require.NoError(t, svc.DeleteInfantParent(ctx, created.ID))
	assert.True(t, domain.IsNotFound(svc.DeleteInfantParent(ctx, created.ID)))
}

func TestRelationships_Validation(t *testing.T) {
	svc := NewRelationshipService(nil)
	ctx := context.Background()

	_, err := svc.CreateAffiliated(ctx, "AB1234", 0, 8)
	assert.EqualError(t, err, "main_passenger_id is required")

	_, err = svc.CreateInfantParent(ctx, "AB1234", 21, 0)
	assert.EqualError(t, err, "parent_passenger_id is required")

	assert.True(t, domain.IsValidation(svc.DeleteAffiliated(ctx, 0)))
}

func TestRelationships_StorageFailureIsInternal(t *testing.T) {
	db := setupTestDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = NewRelationshipService(db).CreateAffiliated(context.Background(), "AB1234", 1, 2)
	assert.True(t, domain.IsInternal(err))
	assert.Contains(t, err.Error(), "failed to create affiliated seating")
}
