package world_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasmendis/supplyline/internal/adapters/world"
	"github.com/lucasmendis/supplyline/internal/domain/logistics"
	"github.com/lucasmendis/supplyline/internal/domain/shared"
)

func at(x, y int) shared.GridPosition {
	return shared.NewGridPosition(x, y)
}

// placedStub is a minimal logistics.Placed implementation
type placedStub struct {
	position shared.GridPosition
	width    int
	height   int
}

func (p placedStub) Position() shared.GridPosition {
	return p.position
}

func (p placedStub) Footprint() logistics.Footprint {
	return logistics.Footprint{Width: p.width, Height: p.height}
}

func TestRoadNetwork_ConnectAndSnapshot(t *testing.T) {
	// Arrange
	roads := world.NewRoadNetwork()

	// Act
	roads.Connect(at(0, 0), at(1, 0))

	// Assert
	snapshot := roads.CurrentSnapshot()
	assert.Equal(t, 2, snapshot.NodeCount())
	assert.True(t, snapshot.HasNode(at(0, 0)))
	assert.ElementsMatch(t, []shared.GridPosition{at(1, 0)}, snapshot.NeighborsOf(at(0, 0)))
	assert.ElementsMatch(t, []shared.GridPosition{at(0, 0)}, snapshot.NeighborsOf(at(1, 0)))
}

func TestRoadNetwork_LayPath(t *testing.T) {
	// Arrange
	roads := world.NewRoadNetwork()

	// Act
	roads.LayPath(at(0, 0), at(1, 0), at(2, 0))

	// Assert
	snapshot := roads.CurrentSnapshot()
	assert.Equal(t, 3, snapshot.NodeCount())
	assert.ElementsMatch(t, []shared.GridPosition{at(0, 0), at(2, 0)}, snapshot.NeighborsOf(at(1, 0)))
}

func TestRoadNetwork_SelfEdgeIgnored(t *testing.T) {
	// Arrange
	roads := world.NewRoadNetwork()

	// Act
	roads.Connect(at(0, 0), at(0, 0))

	// Assert
	assert.Equal(t, 0, roads.NodeCount())
}

func TestRoadNetwork_DisconnectPrunesOrphanNodes(t *testing.T) {
	// Arrange
	roads := world.NewRoadNetwork()
	roads.LayPath(at(0, 0), at(1, 0), at(2, 0))

	// Act
	roads.Disconnect(at(1, 0), at(2, 0))

	// Assert - (2,0) had no other edge and disappears
	snapshot := roads.CurrentSnapshot()
	assert.False(t, snapshot.HasNode(at(2, 0)))
	assert.True(t, snapshot.HasNode(at(1, 0)))
	assert.Equal(t, 2, snapshot.NodeCount())
}

func TestRoadNetwork_SnapshotIsImmutable(t *testing.T) {
	// Arrange
	roads := world.NewRoadNetwork()
	roads.Connect(at(0, 0), at(1, 0))
	before := roads.CurrentSnapshot()

	// Act - mutate after taking the snapshot
	roads.Connect(at(1, 0), at(2, 0))

	// Assert - the old view is unchanged, the new one reflects the change
	assert.False(t, before.HasNode(at(2, 0)))
	after := roads.CurrentSnapshot()
	assert.True(t, after.HasNode(at(2, 0)))
}

func TestRoadNetwork_SnapshotReusedUntilChange(t *testing.T) {
	// Arrange
	roads := world.NewRoadNetwork()
	roads.Connect(at(0, 0), at(1, 0))

	// Act
	first := roads.CurrentSnapshot()
	second := roads.CurrentSnapshot()

	// Assert - no rebuild without a topology change
	assert.Same(t, first, second)
}

func TestGridTranslator_OccupiedCells(t *testing.T) {
	// Arrange
	translator := world.NewGridTranslator()
	facility := placedStub{position: at(3, 4), width: 2, height: 2}

	// Act
	cells := translator.OccupiedCells(facility)

	// Assert
	assert.ElementsMatch(t, []shared.GridPosition{
		at(3, 4), at(4, 4), at(3, 5), at(4, 5),
	}, cells)
}

func TestGridTranslator_SingleCell(t *testing.T) {
	// Arrange
	translator := world.NewGridTranslator()
	facility := placedStub{position: at(7, 7), width: 1, height: 1}

	// Act
	cells := translator.OccupiedCells(facility)

	// Assert
	require.Len(t, cells, 1)
	assert.Equal(t, at(7, 7), cells[0])
}
