package world

import (
	"github.com/lucasmendis/supplyline/internal/domain/logistics"
	"github.com/lucasmendis/supplyline/internal/domain/shared"
)

// GridTranslator converts an entity's placement into the cells it occupies on
// the road-addressable grid. The root position is the entity's lowest corner;
// the footprint extends toward positive X and Y.
type GridTranslator struct{}

// Compile-time interface check
var _ logistics.PositionTranslator = (*GridTranslator)(nil)

// NewGridTranslator creates a grid translator
func NewGridTranslator() *GridTranslator {
	return &GridTranslator{}
}

// OccupiedCells implements logistics.PositionTranslator
func (t *GridTranslator) OccupiedCells(entity logistics.Placed) []shared.GridPosition {
	root := entity.Position()
	footprint := entity.Footprint()

	cells := make([]shared.GridPosition, 0, footprint.Width*footprint.Height)
	for dx := 0; dx < footprint.Width; dx++ {
		for dy := 0; dy < footprint.Height; dy++ {
			cells = append(cells, root.Offset(dx, dy))
		}
	}
	return cells
}
