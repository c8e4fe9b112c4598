package persistence

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lucasmendis/supplyline/internal/domain/logistics"
	"github.com/lucasmendis/supplyline/internal/domain/shared"
)

// GormRouteOverrideRepository implements logistics.RouteOverrideRepository
// using GORM. Manual endpoint bindings survive across world saves; automatic
// resolution results deliberately do not.
type GormRouteOverrideRepository struct {
	db *gorm.DB
}

// Compile-time interface check
var _ logistics.RouteOverrideRepository = (*GormRouteOverrideRepository)(nil)

// NewGormRouteOverrideRepository creates a new GORM route override repository
func NewGormRouteOverrideRepository(db *gorm.DB) *GormRouteOverrideRepository {
	return &GormRouteOverrideRepository{db: db}
}

// Set stores or replaces the override for one facility side
func (r *GormRouteOverrideRepository) Set(ctx context.Context, override logistics.RouteOverride) error {
	model := RouteOverrideModel{
		FacilityID: override.FacilityID.String(),
		Side:       string(override.Side),
		TargetID:   override.TargetID.String(),
		UpdatedAt:  time.Now().UTC(),
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "facility_id"}, {Name: "side"}},
			DoUpdates: clause.AssignmentColumns([]string{"target_id", "updated_at"}),
		}).
		Create(&model).Error
	if err != nil {
		return fmt.Errorf("failed to set %s override for facility %s: %w", override.Side, override.FacilityID, err)
	}
	return nil
}

// Clear removes the override for one facility side. Clearing a side without
// an override is not an error.
func (r *GormRouteOverrideRepository) Clear(ctx context.Context, facilityID shared.EntityID, side logistics.RouteSide) error {
	result := r.db.WithContext(ctx).
		Where("facility_id = ? AND side = ?", facilityID.String(), string(side)).
		Delete(&RouteOverrideModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to clear %s override for facility %s: %w", side, facilityID, result.Error)
	}
	return nil
}

// FindByFacility returns the overrides recorded for a facility
func (r *GormRouteOverrideRepository) FindByFacility(ctx context.Context, facilityID shared.EntityID) ([]logistics.RouteOverride, error) {
	var models []RouteOverrideModel
	result := r.db.WithContext(ctx).Where("facility_id = ?", facilityID.String()).Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find overrides for facility %s: %w", facilityID, result.Error)
	}

	overrides := make([]logistics.RouteOverride, 0, len(models))
	for _, model := range models {
		override, err := modelToOverride(&model)
		if err != nil {
			return nil, err
		}
		overrides = append(overrides, override)
	}
	return overrides, nil
}

func modelToOverride(model *RouteOverrideModel) (logistics.RouteOverride, error) {
	facilityID, err := shared.ParseEntityID(model.FacilityID)
	if err != nil {
		return logistics.RouteOverride{}, err
	}
	targetID, err := shared.ParseEntityID(model.TargetID)
	if err != nil {
		return logistics.RouteOverride{}, err
	}
	return logistics.RouteOverride{
		FacilityID: facilityID,
		Side:       logistics.RouteSide(model.Side),
		TargetID:   targetID,
	}, nil
}
