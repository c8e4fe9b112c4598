package logistics

import (
	"fmt"

	"github.com/lucasmendis/supplyline/internal/domain/shared"
)

// ConfigurationError reports a manual override target that does not expose
// the required capability (or no longer exists). The affected side is forced
// absent rather than silently falling back to automatic search, so the
// misconfiguration stays visible.
type ConfigurationError struct {
	*shared.DomainError
	FacilityID shared.EntityID
	Side       RouteSide
	TargetID   shared.EntityID
}

func NewConfigurationError(facilityID shared.EntityID, side RouteSide, targetID shared.EntityID) *ConfigurationError {
	return &ConfigurationError{
		DomainError: shared.NewDomainError(fmt.Sprintf(
			"%s override for facility %s points at %s, which lacks the required capability",
			side, facilityID, targetID,
		)),
		FacilityID: facilityID,
		Side:       side,
		TargetID:   targetID,
	}
}
