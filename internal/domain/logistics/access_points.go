package logistics

import (
	"github.com/lucasmendis/supplyline/internal/domain/shared"
)

// FindAccessPoints returns the graph nodes that act as an entity's doors onto
// the road network: nodes graph-adjacent to an occupied cell that is itself a
// node, plus nodes sitting orthogonally next to any occupied cell. Cells
// inside the footprint are never access points.
//
// An empty result is a legitimate "no road access" outcome, not an error.
func FindAccessPoints(occupied []shared.GridPosition, graph RoadGraphSnapshot) []shared.GridPosition {
	if graph == nil || len(occupied) == 0 {
		return nil
	}

	footprint := make(map[shared.GridPosition]struct{}, len(occupied))
	for _, cell := range occupied {
		footprint[cell] = struct{}{}
	}

	seen := make(map[shared.GridPosition]struct{})
	var points []shared.GridPosition

	add := func(node shared.GridPosition) {
		if _, inside := footprint[node]; inside {
			return
		}
		if _, dup := seen[node]; dup {
			return
		}
		seen[node] = struct{}{}
		points = append(points, node)
	}

	for _, cell := range occupied {
		// Adjacency as the graph defines it, when the cell is on the network.
		if graph.HasNode(cell) {
			for _, neighbor := range graph.NeighborsOf(cell) {
				add(neighbor)
			}
		}
		// Road nodes bordering the footprint geometrically.
		for _, neighbor := range cell.OrthogonalNeighbors() {
			if graph.HasNode(neighbor) {
				add(neighbor)
			}
		}
	}

	return points
}
