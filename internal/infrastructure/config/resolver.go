package config

import "time"

// ResolverConfig holds route resolution policy configuration
type ResolverConfig struct {
	// Retry interval for unconfigured facilities (simulated time)
	RetryInterval time.Duration `mapstructure:"retry_interval" validate:"required"`

	// Maximum road-distance expansion, in hops
	MaxSearchRadius int `mapstructure:"max_search_radius" validate:"required,min=1"`

	// Prefer direct producers over stockpiles for input sourcing
	PreferDirectSupply bool `mapstructure:"prefer_direct_supply"`
}

// SimulationConfig holds step loop configuration
type SimulationConfig struct {
	// Simulated time that passes per step
	StepInterval time.Duration `mapstructure:"step_interval" validate:"required"`
}
