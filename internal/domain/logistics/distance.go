package logistics

import (
	"github.com/lucasmendis/supplyline/internal/domain/shared"
)

// DistanceTable maps reachable graph nodes to hop-distance from the nearest
// origin. Derived per resolution call and discarded after use.
type DistanceTable map[shared.GridPosition]int

// MultiSourceDistances runs a breadth-first expansion from all origins
// simultaneously, assigning distance 0 to every origin and the shortest
// hop-count from the nearest origin to every node reachable within
// maxDistance. Nodes beyond the cap or unreachable are absent from the
// result. Each node is visited at most once, so cost is linear in edges.
//
// Origins not present in the graph are skipped. An empty origin set or a nil
// graph yields an empty table.
func MultiSourceDistances(origins []shared.GridPosition, maxDistance int, graph RoadGraphSnapshot) DistanceTable {
	distances := make(DistanceTable)
	if graph == nil || len(origins) == 0 || maxDistance < 0 {
		return distances
	}

	var frontier []shared.GridPosition
	for _, origin := range origins {
		if !graph.HasNode(origin) {
			continue
		}
		if _, visited := distances[origin]; visited {
			continue
		}
		distances[origin] = 0
		frontier = append(frontier, origin)
	}

	for depth := 1; depth <= maxDistance && len(frontier) > 0; depth++ {
		var next []shared.GridPosition
		for _, node := range frontier {
			for _, neighbor := range graph.NeighborsOf(node) {
				if _, visited := distances[neighbor]; visited {
					continue
				}
				distances[neighbor] = depth
				next = append(next, neighbor)
			}
		}
		frontier = next
	}

	return distances
}

// MinDistanceTo returns the smallest recorded distance among the given nodes
// and whether any of them is reachable
func (t DistanceTable) MinDistanceTo(nodes []shared.GridPosition) (int, bool) {
	best := 0
	found := false
	for _, node := range nodes {
		if d, ok := t[node]; ok {
			if !found || d < best {
				best = d
				found = true
			}
		}
	}
	return best, found
}
