package routing

import (
	"log"

	"github.com/lucasmendis/supplyline/internal/domain/logistics"
	"github.com/lucasmendis/supplyline/internal/domain/shared"
)

// DefaultMaxSearchRadius bounds the breadth-first expansion. Generous on
// purpose: it only exists to cap cost on degenerate graphs, and should exceed
// the largest plausible road network diameter.
const DefaultMaxSearchRadius = 512

// ResolverOptions tune the endpoint search policy
type ResolverOptions struct {
	// PreferDirectSupply makes input resolution try type-matching producers
	// before falling back to stockpiles
	PreferDirectSupply bool

	// MaxSearchRadius caps road-distance expansion in hops. Zero means
	// DefaultMaxSearchRadius.
	MaxSearchRadius int
}

func (o ResolverOptions) searchRadius() int {
	if o.MaxSearchRadius > 0 {
		return o.MaxSearchRadius
	}
	return DefaultMaxSearchRadius
}

// RouteResolver owns one facility's resolved logistics endpoints and applies
// the priority policy: explicit override, then direct producer by road
// distance, then stockpile, then straight-line fallback when network data is
// unavailable.
//
// All collaborators are read-only from the resolver's perspective and may be
// momentarily empty or stale (e.g. before infrastructure is built); the
// resolver degrades to unresolved endpoints instead of failing.
type RouteResolver struct {
	facility   *logistics.Facility
	registry   logistics.CandidateRegistry
	graphs     logistics.GraphProvider
	translator logistics.PositionTranslator
	events     logistics.RouteEventPublisher
	opts       ResolverOptions

	route          logistics.Route
	inputOverride  *shared.EntityID
	outputOverride *shared.EntityID
}

// NewRouteResolver creates a resolver for one facility. graphs, translator
// and events may be nil; missing infrastructure triggers straight-line
// fallback rather than failure.
func NewRouteResolver(
	facility *logistics.Facility,
	registry logistics.CandidateRegistry,
	graphs logistics.GraphProvider,
	translator logistics.PositionTranslator,
	events logistics.RouteEventPublisher,
	opts ResolverOptions,
) *RouteResolver {
	return &RouteResolver{
		facility:   facility,
		registry:   registry,
		graphs:     graphs,
		translator: translator,
		events:     events,
		opts:       opts,
	}
}

// Facility returns the facility this resolver belongs to
func (r *RouteResolver) Facility() *logistics.Facility {
	return r.facility
}

// Route returns the currently resolved endpoints for diagnostic display
func (r *RouteResolver) Route() logistics.Route {
	return r.route
}

// SetOutputOverride records a manual destination binding honored on the next
// Refresh. Nil clears the override and restores automatic search.
func (r *RouteResolver) SetOutputOverride(target *shared.EntityID) {
	r.outputOverride = cloneID(target)
}

// SetInputOverride records a manual source binding honored on the next
// Refresh. Nil clears the override and restores automatic search.
func (r *RouteResolver) SetInputOverride(target *shared.EntityID) {
	r.inputOverride = cloneID(target)
}

// IsConfigured reports whether the facility is ready for logistics: a
// destination is resolved, and a source too when the facility declares input
// needs
func (r *RouteResolver) IsConfigured() bool {
	if !r.route.HasDestination() {
		return false
	}
	if _, hasNeed := r.facility.PrimaryNeed(); !hasNeed {
		return true
	}
	return r.route.HasSource()
}

// HasOutput reports whether a destination endpoint is resolved
func (r *RouteResolver) HasOutput() bool {
	return r.route.HasDestination()
}

// HasInput reports whether a source endpoint is resolved
func (r *RouteResolver) HasInput() bool {
	return r.route.HasSource()
}

// Refresh recomputes both endpoints from scratch against the current world
// state. Idempotent and never fails: the worst case leaves endpoints absent
// until the retry scheduler or a map change tries again. Always publishes a
// routes-changed notification when an event publisher is wired.
func (r *RouteResolver) Refresh() {
	r.resolveOutput()
	r.resolveInput()

	if r.events != nil {
		r.events.PublishRoutesChanged(logistics.RoutesChangedEvent{
			FacilityID: r.facility.ID(),
			Configured: r.IsConfigured(),
			Route:      r.route,
		})
	}
}

// resolveOutput binds the destination: override first, otherwise the nearest
// stockpile receiver by straight-line distance.
func (r *RouteResolver) resolveOutput() {
	if r.outputOverride != nil {
		target, ok := r.registry.ReceiverByID(*r.outputOverride)
		if !ok || target.ID().Equals(r.facility.ID()) {
			// Misconfigured override stays visible: no silent fallback.
			log.Printf("Warning: %v", logistics.NewConfigurationError(r.facility.ID(), logistics.RouteSideOutput, *r.outputOverride))
			r.clearDestination()
			return
		}
		r.bindDestination(target)
		return
	}

	if best := r.nearestStockpileReceiver(); best != nil {
		r.bindDestination(best)
		return
	}
	r.clearDestination()
}

// resolveInput binds the source for the facility's first required resource:
// override, then road-ranked producers when direct supply is preferred, with
// straight-line search over all matching providers as the degraded fallback.
// With direct supply disabled, only stockpiles are considered.
func (r *RouteResolver) resolveInput() {
	need, hasNeed := r.facility.PrimaryNeed()
	if !hasNeed {
		r.clearSource()
		return
	}

	if r.inputOverride != nil {
		target, ok := r.registry.ProviderByID(*r.inputOverride)
		if !ok {
			log.Printf("Warning: %v", logistics.NewConfigurationError(r.facility.ID(), logistics.RouteSideInput, *r.inputOverride))
			r.clearSource()
			return
		}
		r.bindSource(target)
		return
	}

	if r.opts.PreferDirectSupply {
		if producer := r.bestProducerByRoad(need); producer != nil {
			r.bindSource(producer)
			return
		}
		// Degraded mode: without usable road data, producers and stockpiles
		// compete on straight-line distance alone.
		if provider := r.nearestMatchingProvider(need); provider != nil {
			r.bindSource(provider)
			return
		}
		r.clearSource()
		return
	}

	if stockpile := r.nearestStockpileProvider(need); stockpile != nil {
		r.bindSource(stockpile)
		return
	}
	r.clearSource()
}

// bestProducerByRoad selects among type-matching producers by road
// hop-distance from the facility's access points, excluding the facility
// itself (ties: first encountered). Returns nil when the graph or translator
// is unavailable, the facility has no road access, or no producer is
// reachable within the search radius.
func (r *RouteResolver) bestProducerByRoad(need logistics.Resource) logistics.ProviderCapability {
	graph := r.currentGraph()
	if graph == nil || r.translator == nil || graph.NodeCount() == 0 {
		return nil
	}

	origins := logistics.FindAccessPoints(r.translator.OccupiedCells(r.facility), graph)
	if len(origins) == 0 {
		return nil
	}
	table := logistics.MultiSourceDistances(origins, r.opts.searchRadius(), graph)

	var best logistics.ProviderCapability
	bestDistance := 0
	for _, candidate := range r.registry.ProvidersOf(need) {
		if candidate.ProviderKind() != logistics.ProviderProducer {
			continue
		}
		if candidate.ID().Equals(r.facility.ID()) {
			continue
		}
		if !candidate.Provides(need) {
			continue
		}
		points := logistics.FindAccessPoints(r.translator.OccupiedCells(candidate), graph)
		distance, reachable := table.MinDistanceTo(points)
		if !reachable {
			continue
		}
		if best == nil || distance < bestDistance {
			best = candidate
			bestDistance = distance
		}
	}
	return best
}

// nearestMatchingProvider finds the straight-line nearest provider able to
// supply the resource, producers and stockpiles alike, excluding the facility
// itself
func (r *RouteResolver) nearestMatchingProvider(need logistics.Resource) logistics.ProviderCapability {
	var candidates []logistics.ProviderCapability
	for _, candidate := range r.registry.ProvidersOf(need) {
		if candidate.ID().Equals(r.facility.ID()) {
			continue
		}
		if !candidate.Provides(need) {
			continue
		}
		candidates = append(candidates, candidate)
	}
	return nearestByStraightLine(r.facility.Position(), candidates)
}

// nearestStockpileProvider finds the straight-line nearest stockpile that can
// supply the resource, excluding the facility itself
func (r *RouteResolver) nearestStockpileProvider(need logistics.Resource) logistics.ProviderCapability {
	var stockpiles []logistics.ProviderCapability
	for _, candidate := range r.registry.ProvidersOf(need) {
		if candidate.ProviderKind() != logistics.ProviderStockpile {
			continue
		}
		if candidate.ID().Equals(r.facility.ID()) {
			continue
		}
		stockpiles = append(stockpiles, candidate)
	}
	return nearestByStraightLine(r.facility.Position(), stockpiles)
}

// nearestStockpileReceiver finds the straight-line nearest stockpile sink,
// excluding the facility itself
func (r *RouteResolver) nearestStockpileReceiver() logistics.ReceiverCapability {
	var best logistics.ReceiverCapability
	bestDistance := 0.0
	for _, candidate := range r.registry.Receivers() {
		if candidate.ReceiverKind() != logistics.ReceiverStockpile {
			continue
		}
		if candidate.ID().Equals(r.facility.ID()) {
			continue
		}
		distance := r.facility.Position().DistanceTo(candidate.Position())
		if best == nil || distance < bestDistance {
			best = candidate
			bestDistance = distance
		}
	}
	return best
}

func (r *RouteResolver) currentGraph() logistics.RoadGraphSnapshot {
	if r.graphs == nil {
		return nil
	}
	return r.graphs.CurrentSnapshot()
}

func (r *RouteResolver) bindSource(provider logistics.ProviderCapability) {
	id := provider.ID()
	r.route.SourceID = &id
	r.route.SourceName = provider.Name()
}

func (r *RouteResolver) clearSource() {
	r.route.SourceID = nil
	r.route.SourceName = ""
}

func (r *RouteResolver) bindDestination(receiver logistics.ReceiverCapability) {
	id := receiver.ID()
	r.route.DestinationID = &id
	r.route.DestinationName = receiver.Name()
}

func (r *RouteResolver) clearDestination() {
	r.route.DestinationID = nil
	r.route.DestinationName = ""
}

// nearestByStraightLine picks the provider closest to from by Euclidean
// distance; ties keep the first encountered
func nearestByStraightLine(from shared.GridPosition, candidates []logistics.ProviderCapability) logistics.ProviderCapability {
	var best logistics.ProviderCapability
	bestDistance := 0.0
	for _, candidate := range candidates {
		distance := from.DistanceTo(candidate.Position())
		if best == nil || distance < bestDistance {
			best = candidate
			bestDistance = distance
		}
	}
	return best
}

func cloneID(id *shared.EntityID) *shared.EntityID {
	if id == nil {
		return nil
	}
	copied := *id
	return &copied
}
