package routing

import (
	"context"
	"time"

	"github.com/lucasmendis/supplyline/internal/domain/logistics"
	"github.com/lucasmendis/supplyline/internal/domain/shared"
)

// Simulation drives route resolution for a population of facilities, one
// cooperative step at a time. Each step advances every facility's retry
// scheduler with the step's elapsed simulated time; no parallelism is
// assumed, matching the frame-driven model of the surrounding game loop.
type Simulation struct {
	registry      logistics.CandidateRegistry
	graphs        logistics.GraphProvider
	translator    logistics.PositionTranslator
	events        logistics.RouteEventPublisher
	opts          ResolverOptions
	retryInterval time.Duration

	entries []*simulationEntry
	byID    map[string]*simulationEntry
}

type simulationEntry struct {
	resolver  *RouteResolver
	scheduler *ReResolutionScheduler
}

// NewSimulation creates the step driver. graphs, translator and events may be
// nil; retryInterval <= 0 means DefaultRetryInterval.
func NewSimulation(
	registry logistics.CandidateRegistry,
	graphs logistics.GraphProvider,
	translator logistics.PositionTranslator,
	events logistics.RouteEventPublisher,
	opts ResolverOptions,
	retryInterval time.Duration,
) *Simulation {
	return &Simulation{
		registry:      registry,
		graphs:        graphs,
		translator:    translator,
		events:        events,
		opts:          opts,
		retryInterval: retryInterval,
		byID:          make(map[string]*simulationEntry),
	}
}

// AddFacility wires a resolver and retry scheduler for a newly constructed
// facility and performs the initial resolution attempt. consumer may be nil.
func (s *Simulation) AddFacility(facility *logistics.Facility, consumer logistics.ProductionConsumer) *RouteResolver {
	resolver := NewRouteResolver(facility, s.registry, s.graphs, s.translator, s.events, s.opts)
	entry := &simulationEntry{
		resolver:  resolver,
		scheduler: NewReResolutionScheduler(resolver, consumer, s.retryInterval),
	}
	s.entries = append(s.entries, entry)
	s.byID[facility.ID().String()] = entry

	resolver.Refresh()
	return resolver
}

// RemoveFacility drops a destroyed facility from the step loop. Routes held
// by other facilities pointing at it resolve to absent on their next refresh.
func (s *Simulation) RemoveFacility(id shared.EntityID) {
	key := id.String()
	entry, ok := s.byID[key]
	if !ok {
		return
	}
	delete(s.byID, key)
	for i, e := range s.entries {
		if e == entry {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			break
		}
	}
}

// ResolverFor returns the resolver owned by a facility
func (s *Simulation) ResolverFor(id shared.EntityID) (*RouteResolver, bool) {
	entry, ok := s.byID[id.String()]
	if !ok {
		return nil, false
	}
	return entry.resolver, true
}

// Step advances all retry schedulers by one frame's elapsed simulated time
func (s *Simulation) Step(delta time.Duration) {
	for _, entry := range s.entries {
		entry.scheduler.Advance(delta)
	}
}

// Run paces the step loop against a clock until the context is cancelled.
// Each tick sleeps one step interval and advances the schedulers by the time
// that actually passed, so a mock clock drives the loop deterministically in
// tests. stepInterval <= 0 falls back to a 100ms frame.
func (s *Simulation) Run(ctx context.Context, clock shared.Clock, stepInterval time.Duration) {
	if stepInterval <= 0 {
		stepInterval = 100 * time.Millisecond
	}

	last := clock.Now()
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		clock.Sleep(stepInterval)
		now := clock.Now()
		s.Step(now.Sub(last))
		last = now
	}
}

// MapChanged force-refreshes every facility's routes, bypassing timer state.
// Called by the external world when roads or buildings changed.
func (s *Simulation) MapChanged() {
	for _, entry := range s.entries {
		entry.resolver.Refresh()
	}
}

// FacilityCount returns the number of facilities in the step loop
func (s *Simulation) FacilityCount() int {
	return len(s.entries)
}

// Resolvers returns all resolvers in insertion order, for diagnostic display
func (s *Simulation) Resolvers() []*RouteResolver {
	resolvers := make([]*RouteResolver, 0, len(s.entries))
	for _, entry := range s.entries {
		resolvers = append(resolvers, entry.resolver)
	}
	return resolvers
}
