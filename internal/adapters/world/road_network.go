// Package world implements the external world collaborators the logistics
// core consumes: the mutable road network with its read-only snapshots, and
// the grid position translator.
package world

import (
	"github.com/lucasmendis/supplyline/internal/domain/logistics"
	"github.com/lucasmendis/supplyline/internal/domain/shared"
)

// RoadNetwork owns the mutable road adjacency and rebuilds an immutable
// snapshot whenever topology changed. The logistics core only ever sees
// snapshots, fetched fresh per resolution call, so structural changes never
// leak into a search in progress.
type RoadNetwork struct {
	adjacency map[shared.GridPosition]map[shared.GridPosition]struct{}
	snapshot  *roadSnapshot
	dirty     bool
}

// Compile-time interface check
var _ logistics.GraphProvider = (*RoadNetwork)(nil)

// NewRoadNetwork creates an empty road network
func NewRoadNetwork() *RoadNetwork {
	return &RoadNetwork{
		adjacency: make(map[shared.GridPosition]map[shared.GridPosition]struct{}),
		dirty:     true,
	}
}

// Connect adds an undirected road edge between two nodes, creating the nodes
// as needed. Connecting a node to itself is a no-op.
func (n *RoadNetwork) Connect(a, b shared.GridPosition) {
	if a == b {
		return
	}
	n.addEdge(a, b)
	n.addEdge(b, a)
	n.dirty = true
}

// LayPath connects consecutive cells into a road, the way a drag-placed road
// segment would
func (n *RoadNetwork) LayPath(cells ...shared.GridPosition) {
	for i := 1; i < len(cells); i++ {
		n.Connect(cells[i-1], cells[i])
	}
}

// Disconnect removes the edge between two nodes. Nodes left without any edge
// are removed from the network.
func (n *RoadNetwork) Disconnect(a, b shared.GridPosition) {
	n.removeEdge(a, b)
	n.removeEdge(b, a)
	n.dirty = true
}

// NodeCount returns the number of road nodes currently in the network
func (n *RoadNetwork) NodeCount() int {
	return len(n.adjacency)
}

// CurrentSnapshot implements logistics.GraphProvider. The snapshot is rebuilt
// lazily after mutations and shared until the next change.
func (n *RoadNetwork) CurrentSnapshot() logistics.RoadGraphSnapshot {
	if n.dirty || n.snapshot == nil {
		n.snapshot = n.buildSnapshot()
		n.dirty = false
	}
	return n.snapshot
}

func (n *RoadNetwork) addEdge(from, to shared.GridPosition) {
	neighbors, ok := n.adjacency[from]
	if !ok {
		neighbors = make(map[shared.GridPosition]struct{})
		n.adjacency[from] = neighbors
	}
	neighbors[to] = struct{}{}
}

func (n *RoadNetwork) removeEdge(from, to shared.GridPosition) {
	neighbors, ok := n.adjacency[from]
	if !ok {
		return
	}
	delete(neighbors, to)
	if len(neighbors) == 0 {
		delete(n.adjacency, from)
	}
}

func (n *RoadNetwork) buildSnapshot() *roadSnapshot {
	nodes := make(map[shared.GridPosition][]shared.GridPosition, len(n.adjacency))
	for node, neighbors := range n.adjacency {
		list := make([]shared.GridPosition, 0, len(neighbors))
		for neighbor := range neighbors {
			list = append(list, neighbor)
		}
		nodes[node] = list
	}
	return &roadSnapshot{nodes: nodes}
}

// roadSnapshot is an immutable adjacency view handed to the logistics core
type roadSnapshot struct {
	nodes map[shared.GridPosition][]shared.GridPosition
}

func (s *roadSnapshot) NeighborsOf(node shared.GridPosition) []shared.GridPosition {
	return s.nodes[node]
}

func (s *roadSnapshot) HasNode(node shared.GridPosition) bool {
	_, ok := s.nodes[node]
	return ok
}

func (s *roadSnapshot) NodeCount() int {
	return len(s.nodes)
}
