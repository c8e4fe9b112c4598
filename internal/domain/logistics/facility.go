package logistics

import (
	"github.com/lucasmendis/supplyline/internal/domain/shared"
)

// FacilityKind distinguishes the facility variants in the simulation
type FacilityKind int

const (
	// FacilityProduction consumes required inputs and produces one output type
	FacilityProduction FacilityKind = iota
	// FacilityStockpile buffers goods; accepts and supplies any resource type
	FacilityStockpile
)

func (k FacilityKind) String() string {
	switch k {
	case FacilityProduction:
		return "production"
	case FacilityStockpile:
		return "stockpile"
	default:
		return "unknown"
	}
}

// Footprint is the rectangular cell extent of a placed entity
type Footprint struct {
	Width  int
	Height int
}

// SingleCell is the footprint of an entity occupying exactly one cell
var SingleCell = Footprint{Width: 1, Height: 1}

// Facility is a simulated entity that consumes and/or produces resources.
// Its position is immutable once placed.
type Facility struct {
	id        shared.EntityID
	name      string
	kind      FacilityKind
	position  shared.GridPosition
	footprint Footprint
	needs     []Resource
	produces  Resource // empty if the facility produces nothing
}

// NewProductionFacility creates a production facility. produces may be empty
// for facilities that only consume; needs may be empty for facilities that
// only produce.
func NewProductionFacility(name string, position shared.GridPosition, footprint Footprint, produces Resource, needs []Resource) (*Facility, error) {
	if name == "" {
		return nil, shared.NewValidationError("name", "cannot be empty")
	}
	if footprint.Width < 1 || footprint.Height < 1 {
		return nil, shared.NewValidationError("footprint", "must span at least one cell")
	}

	return &Facility{
		id:        shared.NewEntityID(),
		name:      name,
		kind:      FacilityProduction,
		position:  position,
		footprint: footprint,
		needs:     append([]Resource(nil), needs...),
		produces:  produces,
	}, nil
}

// NewStockpile creates a stockpile facility. Stockpiles accept and supply any
// resource type and declare no needs of their own.
func NewStockpile(name string, position shared.GridPosition, footprint Footprint) (*Facility, error) {
	if name == "" {
		return nil, shared.NewValidationError("name", "cannot be empty")
	}
	if footprint.Width < 1 || footprint.Height < 1 {
		return nil, shared.NewValidationError("footprint", "must span at least one cell")
	}

	return &Facility{
		id:        shared.NewEntityID(),
		name:      name,
		kind:      FacilityStockpile,
		position:  position,
		footprint: footprint,
	}, nil
}

// RestoreFacility reconstructs a facility with a known identity (world-save load path)
func RestoreFacility(id shared.EntityID, name string, kind FacilityKind, position shared.GridPosition, footprint Footprint, produces Resource, needs []Resource) *Facility {
	return &Facility{
		id:        id,
		name:      name,
		kind:      kind,
		position:  position,
		footprint: footprint,
		needs:     append([]Resource(nil), needs...),
		produces:  produces,
	}
}

func (f *Facility) ID() shared.EntityID          { return f.id }
func (f *Facility) Name() string                 { return f.name }
func (f *Facility) Kind() FacilityKind           { return f.kind }
func (f *Facility) Position() shared.GridPosition { return f.position }
func (f *Facility) Footprint() Footprint         { return f.footprint }

// RequiredResources implements NeedsQuery
func (f *Facility) RequiredResources() []Resource {
	return append([]Resource(nil), f.needs...)
}

// PrimaryNeed returns the first required resource type. Routing sources only
// the first entry of a multi-need list; the rest are a known limitation.
func (f *Facility) PrimaryNeed() (Resource, bool) {
	if len(f.needs) == 0 {
		return "", false
	}
	return f.needs[0], true
}

// ProducedResource implements NeedsQuery
func (f *Facility) ProducedResource() (Resource, bool) {
	if f.kind == FacilityProduction && f.produces != "" {
		return f.produces, true
	}
	return "", false
}

// IsProvider reports whether the facility exposes the provider capability
func (f *Facility) IsProvider() bool {
	if f.kind == FacilityStockpile {
		return true
	}
	return f.produces != ""
}

// ProviderKind implements ProviderCapability
func (f *Facility) ProviderKind() ProviderKind {
	if f.kind == FacilityStockpile {
		return ProviderStockpile
	}
	return ProviderProducer
}

// Provides implements ProviderCapability. Stockpiles match any type; a
// producer matches only its declared output type.
func (f *Facility) Provides(resource Resource) bool {
	if f.kind == FacilityStockpile {
		return true
	}
	return f.produces != "" && f.produces == resource
}

// IsReceiver reports whether the facility exposes the receiver capability
func (f *Facility) IsReceiver() bool {
	return f.kind == FacilityStockpile
}

// ReceiverKind implements ReceiverCapability
func (f *Facility) ReceiverKind() ReceiverKind {
	if f.kind == FacilityStockpile {
		return ReceiverStockpile
	}
	return ReceiverOther
}

// Compile-time capability checks
var (
	_ ProviderCapability = (*Facility)(nil)
	_ ReceiverCapability = (*Facility)(nil)
	_ NeedsQuery         = (*Facility)(nil)
)
