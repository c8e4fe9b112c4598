package logistics

import (
	"github.com/lucasmendis/supplyline/internal/domain/shared"
)

// RoutesChangedEvent is published after every refresh, whether triggered
// manually or by the retry scheduler. Consumers re-read the resolved
// endpoints themselves.
type RoutesChangedEvent struct {
	FacilityID shared.EntityID
	Configured bool
	Route      Route
}
