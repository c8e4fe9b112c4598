package logistics

import (
	"github.com/lucasmendis/supplyline/internal/domain/shared"
)

// RouteSide identifies which endpoint of a route an operation targets
type RouteSide string

const (
	RouteSideInput  RouteSide = "input"
	RouteSideOutput RouteSide = "output"
)

// Route is a facility's resolved pair of logistics endpoints. It holds
// identities, not owning references: the referenced entity may be destroyed
// externally, in which case the next registry lookup treats it as absent.
// Names are kept alongside for diagnostic display only.
type Route struct {
	SourceID        *shared.EntityID
	SourceName      string
	DestinationID   *shared.EntityID
	DestinationName string
}

// HasSource reports whether an input endpoint is resolved
func (r Route) HasSource() bool {
	return r.SourceID != nil
}

// HasDestination reports whether an output endpoint is resolved
func (r Route) HasDestination() bool {
	return r.DestinationID != nil
}

// RouteOverride is a persisted manual endpoint binding
type RouteOverride struct {
	FacilityID shared.EntityID
	Side       RouteSide
	TargetID   shared.EntityID
}
