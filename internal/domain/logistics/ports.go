package logistics

import (
	"context"

	"github.com/lucasmendis/supplyline/internal/domain/shared"
)

// Resource identifies a resource type moved through the supply chain
type Resource string

// ProviderKind distinguishes the closed set of provider variants
type ProviderKind int

const (
	// ProviderProducer supplies one specific resource type as surplus output
	ProviderProducer ProviderKind = iota
	// ProviderStockpile supplies any resource type (warehouse buffer)
	ProviderStockpile
)

// ReceiverKind distinguishes the closed set of receiver variants
type ReceiverKind int

const (
	// ReceiverStockpile accepts any resource type
	ReceiverStockpile ReceiverKind = iota
	// ReceiverOther is a sink that is not a stockpile
	ReceiverOther
)

// Placed describes an entity occupying cells on the world grid
type Placed interface {
	Position() shared.GridPosition
	Footprint() Footprint
}

// ProviderCapability is exposed by any entity that goods can be pulled from.
// Implemented by heterogeneous entity kinds; the kind tag replaces runtime
// type probing.
type ProviderCapability interface {
	Placed
	ID() shared.EntityID
	Name() string
	ProviderKind() ProviderKind

	// Provides reports whether this provider can supply the given resource.
	// Stockpiles are type-agnostic; producers match only their output type.
	Provides(resource Resource) bool
}

// ReceiverCapability is exposed by any entity that goods can be pushed to
type ReceiverCapability interface {
	Placed
	ID() shared.EntityID
	Name() string
	ReceiverKind() ReceiverKind
}

// CandidateRegistry enumerates the current provider and receiver population.
// Owned and mutated externally; the core only reads it. Lookups by ID are how
// weak route references are re-validated: a destroyed entity is simply absent.
type CandidateRegistry interface {
	Providers() []ProviderCapability

	// ProvidersOf returns providers able to supply the resource: producers of
	// that exact type plus all stockpiles, in registration order.
	ProvidersOf(resource Resource) []ProviderCapability

	Receivers() []ReceiverCapability

	ProviderByID(id shared.EntityID) (ProviderCapability, bool)
	ReceiverByID(id shared.EntityID) (ReceiverCapability, bool)
}

// RoadGraphSnapshot is a read-only view of the road network adjacency at a
// point in time. Owned by the external road subsystem.
type RoadGraphSnapshot interface {
	// NeighborsOf returns the nodes adjacent to the given node
	NeighborsOf(node shared.GridPosition) []shared.GridPosition

	// HasNode reports whether a graph node exists at the position
	HasNode(node shared.GridPosition) bool

	// NodeCount returns the number of nodes in the snapshot
	NodeCount() int
}

// GraphProvider hands out the current road graph snapshot. The resolver
// re-fetches on every refresh and never caches across calls, so structural
// road changes are always picked up. May return nil before any road exists.
type GraphProvider interface {
	CurrentSnapshot() RoadGraphSnapshot
}

// PositionTranslator converts an entity's placement into graph-addressable
// occupied cells. Owned by the external grid/coordinate system.
type PositionTranslator interface {
	OccupiedCells(entity Placed) []shared.GridPosition
}

// NeedsQuery exposes a facility's resource requirements
type NeedsQuery interface {
	// RequiredResources returns the ordered list of required input types.
	// Empty means the facility needs no input.
	RequiredResources() []Resource

	// ProducedResource returns the produced output type, if any
	ProducedResource() (Resource, bool)
}

// ProductionConsumer is notified when a facility's access to its logistics
// endpoints may have changed, so it can re-evaluate its own readiness
type ProductionConsumer interface {
	LogisticsChanged(facilityID shared.EntityID)
}

// RouteEventPublisher publishes route configuration changes to interested
// consumers. Notification is pull-based: subscribers re-read the resolved
// endpoints themselves.
type RouteEventPublisher interface {
	PublishRoutesChanged(event RoutesChangedEvent)
}

// FacilityRepository defines the persistence interface the external
// world-save system implements for facilities
type FacilityRepository interface {
	Save(ctx context.Context, facility *Facility) error
	FindByID(ctx context.Context, id shared.EntityID) (*Facility, error)
	ListAll(ctx context.Context) ([]*Facility, error)
	Delete(ctx context.Context, id shared.EntityID) error
}

// RouteOverrideRepository persists manual endpoint bindings across saves
type RouteOverrideRepository interface {
	Set(ctx context.Context, override RouteOverride) error
	Clear(ctx context.Context, facilityID shared.EntityID, side RouteSide) error
	FindByFacility(ctx context.Context, facilityID shared.EntityID) ([]RouteOverride, error)
}
