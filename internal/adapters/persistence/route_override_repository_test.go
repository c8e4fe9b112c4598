package persistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasmendis/supplyline/internal/adapters/persistence"
	"github.com/lucasmendis/supplyline/internal/domain/logistics"
	"github.com/lucasmendis/supplyline/internal/domain/shared"
	"github.com/lucasmendis/supplyline/internal/infrastructure/database"
)

func TestRouteOverrideRepository_SetAndFind(t *testing.T) {
	// Arrange
	db, err := database.NewTestConnection()
	require.NoError(t, err)
	repo := persistence.NewGormRouteOverrideRepository(db)

	facilityID := shared.NewEntityID()
	targetID := shared.NewEntityID()

	// Act
	err = repo.Set(context.Background(), logistics.RouteOverride{
		FacilityID: facilityID,
		Side:       logistics.RouteSideInput,
		TargetID:   targetID,
	})

	// Assert
	require.NoError(t, err)
	overrides, err := repo.FindByFacility(context.Background(), facilityID)
	require.NoError(t, err)
	require.Len(t, overrides, 1)
	assert.Equal(t, logistics.RouteSideInput, overrides[0].Side)
	assert.True(t, overrides[0].TargetID.Equals(targetID))
}

func TestRouteOverrideRepository_SetReplacesExisting(t *testing.T) {
	// Arrange
	db, err := database.NewTestConnection()
	require.NoError(t, err)
	repo := persistence.NewGormRouteOverrideRepository(db)

	facilityID := shared.NewEntityID()
	firstTarget := shared.NewEntityID()
	secondTarget := shared.NewEntityID()

	require.NoError(t, repo.Set(context.Background(), logistics.RouteOverride{
		FacilityID: facilityID,
		Side:       logistics.RouteSideOutput,
		TargetID:   firstTarget,
	}))

	// Act - same facility and side, new target
	err = repo.Set(context.Background(), logistics.RouteOverride{
		FacilityID: facilityID,
		Side:       logistics.RouteSideOutput,
		TargetID:   secondTarget,
	})

	// Assert - one row per side, latest target wins
	require.NoError(t, err)
	overrides, err := repo.FindByFacility(context.Background(), facilityID)
	require.NoError(t, err)
	require.Len(t, overrides, 1)
	assert.True(t, overrides[0].TargetID.Equals(secondTarget))
}

func TestRouteOverrideRepository_BothSides(t *testing.T) {
	// Arrange
	db, err := database.NewTestConnection()
	require.NoError(t, err)
	repo := persistence.NewGormRouteOverrideRepository(db)

	facilityID := shared.NewEntityID()

	// Act
	require.NoError(t, repo.Set(context.Background(), logistics.RouteOverride{
		FacilityID: facilityID,
		Side:       logistics.RouteSideInput,
		TargetID:   shared.NewEntityID(),
	}))
	require.NoError(t, repo.Set(context.Background(), logistics.RouteOverride{
		FacilityID: facilityID,
		Side:       logistics.RouteSideOutput,
		TargetID:   shared.NewEntityID(),
	}))

	// Assert
	overrides, err := repo.FindByFacility(context.Background(), facilityID)
	require.NoError(t, err)
	assert.Len(t, overrides, 2)
}

func TestRouteOverrideRepository_Clear(t *testing.T) {
	// Arrange
	db, err := database.NewTestConnection()
	require.NoError(t, err)
	repo := persistence.NewGormRouteOverrideRepository(db)

	facilityID := shared.NewEntityID()
	require.NoError(t, repo.Set(context.Background(), logistics.RouteOverride{
		FacilityID: facilityID,
		Side:       logistics.RouteSideInput,
		TargetID:   shared.NewEntityID(),
	}))

	// Act
	err = repo.Clear(context.Background(), facilityID, logistics.RouteSideInput)

	// Assert
	require.NoError(t, err)
	overrides, err := repo.FindByFacility(context.Background(), facilityID)
	require.NoError(t, err)
	assert.Empty(t, overrides)
}

func TestRouteOverrideRepository_ClearMissingIsNoError(t *testing.T) {
	// Arrange
	db, err := database.NewTestConnection()
	require.NoError(t, err)
	repo := persistence.NewGormRouteOverrideRepository(db)

	// Act
	err = repo.Clear(context.Background(), shared.NewEntityID(), logistics.RouteSideOutput)

	// Assert
	assert.NoError(t, err)
}
