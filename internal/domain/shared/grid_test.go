package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lucasmendis/supplyline/internal/domain/shared"
)

func TestGridPosition_DistanceTo(t *testing.T) {
	// Arrange
	origin := shared.NewGridPosition(0, 0)

	// Act & Assert
	assert.Equal(t, 5.0, origin.DistanceTo(shared.NewGridPosition(3, 4)))
	assert.Equal(t, 0.0, origin.DistanceTo(origin))
	assert.Equal(t, 5.0, shared.NewGridPosition(3, 4).DistanceTo(origin))
}

func TestGridPosition_Offset(t *testing.T) {
	// Arrange
	position := shared.NewGridPosition(2, 3)

	// Act
	shifted := position.Offset(-1, 4)

	// Assert
	assert.Equal(t, shared.NewGridPosition(1, 7), shifted)
	assert.Equal(t, shared.NewGridPosition(2, 3), position)
}

func TestGridPosition_OrthogonalNeighbors(t *testing.T) {
	// Arrange
	position := shared.NewGridPosition(5, 5)

	// Act
	neighbors := position.OrthogonalNeighbors()

	// Assert
	assert.ElementsMatch(t, []shared.GridPosition{
		shared.NewGridPosition(4, 5),
		shared.NewGridPosition(6, 5),
		shared.NewGridPosition(5, 4),
		shared.NewGridPosition(5, 6),
	}, neighbors[:])
}

func TestNearestPosition_PicksClosest(t *testing.T) {
	// Arrange
	from := shared.NewGridPosition(0, 0)
	targets := []shared.GridPosition{
		shared.NewGridPosition(10, 10),
		shared.NewGridPosition(1, 1),
		shared.NewGridPosition(5, 0),
	}

	// Act
	index := shared.NearestPosition(from, targets)

	// Assert
	assert.Equal(t, 1, index)
}

func TestNearestPosition_TieKeepsFirst(t *testing.T) {
	// Arrange
	from := shared.NewGridPosition(0, 0)
	targets := []shared.GridPosition{
		shared.NewGridPosition(3, 0),
		shared.NewGridPosition(0, 3),
	}

	// Act
	index := shared.NearestPosition(from, targets)

	// Assert
	assert.Equal(t, 0, index)
}

func TestNearestPosition_EmptyList(t *testing.T) {
	// Act
	index := shared.NearestPosition(shared.NewGridPosition(0, 0), nil)

	// Assert
	assert.Equal(t, -1, index)
}
