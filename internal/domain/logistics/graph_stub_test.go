package logistics_test

import (
	"github.com/lucasmendis/supplyline/internal/domain/logistics"
	"github.com/lucasmendis/supplyline/internal/domain/shared"
)

// stubGraph is a minimal in-test road graph
type stubGraph struct {
	adjacency map[shared.GridPosition][]shared.GridPosition
}

var _ logistics.RoadGraphSnapshot = (*stubGraph)(nil)

func newStubGraph() *stubGraph {
	return &stubGraph{adjacency: make(map[shared.GridPosition][]shared.GridPosition)}
}

func (g *stubGraph) connect(a, b shared.GridPosition) {
	g.adjacency[a] = append(g.adjacency[a], b)
	g.adjacency[b] = append(g.adjacency[b], a)
}

func (g *stubGraph) path(cells ...shared.GridPosition) {
	for i := 1; i < len(cells); i++ {
		g.connect(cells[i-1], cells[i])
	}
}

func (g *stubGraph) NeighborsOf(node shared.GridPosition) []shared.GridPosition {
	return g.adjacency[node]
}

func (g *stubGraph) HasNode(node shared.GridPosition) bool {
	_, ok := g.adjacency[node]
	return ok
}

func (g *stubGraph) NodeCount() int {
	return len(g.adjacency)
}

func at(x, y int) shared.GridPosition {
	return shared.NewGridPosition(x, y)
}
