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

func TestFacilityRepository_SaveAndFind(t *testing.T) {
	// Arrange
	db, err := database.NewTestConnection()
	require.NoError(t, err)
	repo := persistence.NewGormFacilityRepository(db)

	sawmill, err := logistics.NewProductionFacility(
		"sawmill",
		shared.NewGridPosition(4, 2),
		logistics.Footprint{Width: 2, Height: 2},
		"planks",
		[]logistics.Resource{"wood", "resin"},
	)
	require.NoError(t, err)

	// Act - Save
	err = repo.Save(context.Background(), sawmill)

	// Assert
	require.NoError(t, err)

	// Act - FindByID
	found, err := repo.FindByID(context.Background(), sawmill.ID())

	// Assert
	require.NoError(t, err)
	assert.True(t, found.ID().Equals(sawmill.ID()))
	assert.Equal(t, "sawmill", found.Name())
	assert.Equal(t, logistics.FacilityProduction, found.Kind())
	assert.Equal(t, shared.NewGridPosition(4, 2), found.Position())
	assert.Equal(t, logistics.Footprint{Width: 2, Height: 2}, found.Footprint())

	output, ok := found.ProducedResource()
	require.True(t, ok)
	assert.Equal(t, logistics.Resource("planks"), output)
	// Need order matters: the first entry drives sourcing
	assert.Equal(t, []logistics.Resource{"wood", "resin"}, found.RequiredResources())
}

func TestFacilityRepository_SaveStockpile(t *testing.T) {
	// Arrange
	db, err := database.NewTestConnection()
	require.NoError(t, err)
	repo := persistence.NewGormFacilityRepository(db)

	depot, err := logistics.NewStockpile("depot", shared.NewGridPosition(3, 9), logistics.SingleCell)
	require.NoError(t, err)

	// Act
	err = repo.Save(context.Background(), depot)
	require.NoError(t, err)
	found, err := repo.FindByID(context.Background(), depot.ID())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, logistics.FacilityStockpile, found.Kind())
	assert.Empty(t, found.RequiredResources())
	_, ok := found.ProducedResource()
	assert.False(t, ok)
}

func TestFacilityRepository_ListAll(t *testing.T) {
	// Arrange
	db, err := database.NewTestConnection()
	require.NoError(t, err)
	repo := persistence.NewGormFacilityRepository(db)

	hut, err := logistics.NewProductionFacility("forester-hut", shared.NewGridPosition(8, 6), logistics.SingleCell, "wood", nil)
	require.NoError(t, err)
	depot, err := logistics.NewStockpile("depot", shared.NewGridPosition(3, 9), logistics.SingleCell)
	require.NoError(t, err)

	require.NoError(t, repo.Save(context.Background(), hut))
	require.NoError(t, repo.Save(context.Background(), depot))

	// Act
	facilities, err := repo.ListAll(context.Background())

	// Assert
	require.NoError(t, err)
	require.Len(t, facilities, 2)
}

func TestFacilityRepository_Delete(t *testing.T) {
	// Arrange
	db, err := database.NewTestConnection()
	require.NoError(t, err)
	repo := persistence.NewGormFacilityRepository(db)

	depot, err := logistics.NewStockpile("depot", shared.NewGridPosition(0, 0), logistics.SingleCell)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), depot))

	// Act
	err = repo.Delete(context.Background(), depot.ID())

	// Assert
	require.NoError(t, err)
	_, err = repo.FindByID(context.Background(), depot.ID())
	assert.Error(t, err)
}

func TestFacilityRepository_NotFound(t *testing.T) {
	// Arrange
	db, err := database.NewTestConnection()
	require.NoError(t, err)
	repo := persistence.NewGormFacilityRepository(db)

	// Act
	_, err = repo.FindByID(context.Background(), shared.NewEntityID())

	// Assert
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "facility not found")
}
