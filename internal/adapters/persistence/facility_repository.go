package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"github.com/lucasmendis/supplyline/internal/domain/logistics"
	"github.com/lucasmendis/supplyline/internal/domain/shared"
)

// GormFacilityRepository implements logistics.FacilityRepository using GORM
type GormFacilityRepository struct {
	db *gorm.DB
}

// Compile-time interface check
var _ logistics.FacilityRepository = (*GormFacilityRepository)(nil)

// NewGormFacilityRepository creates a new GORM facility repository
func NewGormFacilityRepository(db *gorm.DB) *GormFacilityRepository {
	return &GormFacilityRepository{db: db}
}

// Save persists a facility (insert or update)
func (r *GormFacilityRepository) Save(ctx context.Context, facility *logistics.Facility) error {
	model, err := facilityToModel(facility)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to save facility %s: %w", facility.ID(), err)
	}
	return nil
}

// FindByID retrieves a facility by identity
func (r *GormFacilityRepository) FindByID(ctx context.Context, id shared.EntityID) (*logistics.Facility, error) {
	var model FacilityModel
	result := r.db.WithContext(ctx).Where("id = ?", id.String()).First(&model)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("facility not found: %s", id)
		}
		return nil, fmt.Errorf("failed to find facility: %w", result.Error)
	}
	return modelToFacility(&model)
}

// ListAll retrieves every persisted facility in creation order
func (r *GormFacilityRepository) ListAll(ctx context.Context) ([]*logistics.Facility, error) {
	var models []FacilityModel
	result := r.db.WithContext(ctx).Order("created_at").Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list facilities: %w", result.Error)
	}

	facilities := make([]*logistics.Facility, 0, len(models))
	for _, model := range models {
		facility, err := modelToFacility(&model)
		if err != nil {
			return nil, fmt.Errorf("failed to convert facility %s: %w", model.ID, err)
		}
		facilities = append(facilities, facility)
	}
	return facilities, nil
}

// Delete removes a facility
func (r *GormFacilityRepository) Delete(ctx context.Context, id shared.EntityID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id.String()).Delete(&FacilityModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete facility %s: %w", id, result.Error)
	}
	return nil
}

func facilityToModel(facility *logistics.Facility) (*FacilityModel, error) {
	needs := facility.RequiredResources()
	needsJSON, err := json.Marshal(needs)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal needs: %w", err)
	}

	produces := ""
	if output, ok := facility.ProducedResource(); ok {
		produces = string(output)
	}

	position := facility.Position()
	footprint := facility.Footprint()
	return &FacilityModel{
		ID:       facility.ID().String(),
		Name:     facility.Name(),
		Kind:     facility.Kind().String(),
		X:        position.X,
		Y:        position.Y,
		Width:    footprint.Width,
		Height:   footprint.Height,
		Produces: produces,
		Needs:    string(needsJSON),
	}, nil
}

func modelToFacility(model *FacilityModel) (*logistics.Facility, error) {
	id, err := shared.ParseEntityID(model.ID)
	if err != nil {
		return nil, err
	}

	kind, err := parseFacilityKind(model.Kind)
	if err != nil {
		return nil, err
	}

	var needs []logistics.Resource
	if model.Needs != "" {
		if err := json.Unmarshal([]byte(model.Needs), &needs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal needs: %w", err)
		}
	}

	return logistics.RestoreFacility(
		id,
		model.Name,
		kind,
		shared.NewGridPosition(model.X, model.Y),
		logistics.Footprint{Width: model.Width, Height: model.Height},
		logistics.Resource(model.Produces),
		needs,
	), nil
}

func parseFacilityKind(kind string) (logistics.FacilityKind, error) {
	switch kind {
	case "production":
		return logistics.FacilityProduction, nil
	case "stockpile":
		return logistics.FacilityStockpile, nil
	default:
		return 0, fmt.Errorf("unknown facility kind: %q", kind)
	}
}
