package persistence

import (
	"time"
)

// FacilityModel represents the facilities table
type FacilityModel struct {
	ID        string    `gorm:"column:id;primaryKey;not null"`
	Name      string    `gorm:"column:name;not null"`
	Kind      string    `gorm:"column:kind;not null"`
	X         int       `gorm:"column:x;not null"`
	Y         int       `gorm:"column:y;not null"`
	Width     int       `gorm:"column:width;not null;default:1"`
	Height    int       `gorm:"column:height;not null;default:1"`
	Produces  string    `gorm:"column:produces"`
	Needs     string    `gorm:"column:needs;type:text"` // JSON array as text
	CreatedAt time.Time `gorm:"column:created_at;not null"`
}

func (FacilityModel) TableName() string {
	return "facilities"
}

// RouteOverrideModel represents the route_overrides table. One row per
// facility per side; automatic resolution has no row.
type RouteOverrideModel struct {
	FacilityID string    `gorm:"column:facility_id;primaryKey;not null"`
	Side       string    `gorm:"column:side;primaryKey;not null"`
	TargetID   string    `gorm:"column:target_id;not null"`
	UpdatedAt  time.Time `gorm:"column:updated_at;not null"`
}

func (RouteOverrideModel) TableName() string {
	return "route_overrides"
}
