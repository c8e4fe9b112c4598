package shared

import (
	"fmt"
	"math"
)

// GridPosition is an immutable integer coordinate on the world grid.
// It is the addressing unit for both entity placement and road graph nodes.
type GridPosition struct {
	X int
	Y int
}

// NewGridPosition creates a grid position
func NewGridPosition(x, y int) GridPosition {
	return GridPosition{X: x, Y: y}
}

// DistanceTo calculates the Euclidean (straight-line) distance to another position
func (p GridPosition) DistanceTo(other GridPosition) float64 {
	dx := float64(other.X - p.X)
	dy := float64(other.Y - p.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Offset returns the position shifted by (dx, dy)
func (p GridPosition) Offset(dx, dy int) GridPosition {
	return GridPosition{X: p.X + dx, Y: p.Y + dy}
}

// OrthogonalNeighbors returns the four geometrically adjacent positions
func (p GridPosition) OrthogonalNeighbors() [4]GridPosition {
	return [4]GridPosition{
		{X: p.X + 1, Y: p.Y},
		{X: p.X - 1, Y: p.Y},
		{X: p.X, Y: p.Y + 1},
		{X: p.X, Y: p.Y - 1},
	}
}

func (p GridPosition) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// NearestPosition returns the index of the target nearest to from by straight-line
// distance. Ties keep the first encountered. Returns -1 for an empty list.
func NearestPosition(from GridPosition, targets []GridPosition) int {
	if len(targets) == 0 {
		return -1
	}

	nearest := 0
	minDistance := from.DistanceTo(targets[0])

	for i, target := range targets[1:] {
		distance := from.DistanceTo(target)
		if distance < minDistance {
			minDistance = distance
			nearest = i + 1
		}
	}

	return nearest
}
