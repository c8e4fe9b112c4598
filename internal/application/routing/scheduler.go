package routing

import (
	"time"

	"github.com/lucasmendis/supplyline/internal/domain/logistics"
)

// DefaultRetryInterval is how much simulated time passes between resolution
// retries while a facility remains unconfigured. Infrastructure changes are
// user-paced, so there is no backoff.
const DefaultRetryInterval = 2 * time.Second

// ReResolutionScheduler retries a facility's route resolution on a fixed
// interval while it is unconfigured. It accumulates elapsed simulation time
// across steps; once the facility is configured the scheduler goes inert.
// Manual Refresh calls on the resolver are independent of the timer state.
type ReResolutionScheduler struct {
	resolver *RouteResolver
	consumer logistics.ProductionConsumer
	interval time.Duration
	elapsed  time.Duration
}

// NewReResolutionScheduler creates a retry scheduler for one facility's
// resolver. consumer may be nil; interval <= 0 means DefaultRetryInterval.
func NewReResolutionScheduler(resolver *RouteResolver, consumer logistics.ProductionConsumer, interval time.Duration) *ReResolutionScheduler {
	if interval <= 0 {
		interval = DefaultRetryInterval
	}
	return &ReResolutionScheduler{
		resolver: resolver,
		consumer: consumer,
		interval: interval,
	}
}

// Advance accounts one simulation step's elapsed time. When the facility is
// unconfigured and the accumulated time exceeds the retry interval, it resets
// the accumulator, refreshes the resolver and notifies the production
// consumer that its logistics endpoints may have changed.
func (s *ReResolutionScheduler) Advance(delta time.Duration) {
	if s.resolver.IsConfigured() {
		return
	}

	s.elapsed += delta
	if s.elapsed < s.interval {
		return
	}
	s.elapsed = 0

	s.resolver.Refresh()
	if s.consumer != nil {
		s.consumer.LogisticsChanged(s.resolver.Facility().ID())
	}
}

// Interval returns the configured retry interval
func (s *ReResolutionScheduler) Interval() time.Duration {
	return s.interval
}
