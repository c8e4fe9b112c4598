package config

import "time"

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	// Database type: sqlite or postgres
	Type string `mapstructure:"type" validate:"required,oneof=sqlite postgres"`

	// Full connection URL (postgres; takes precedence over individual fields)
	URL string `mapstructure:"url"`

	// Individual connection fields (postgres)
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"ssl_mode"`

	// File path (sqlite; ":memory:" for an in-memory save)
	Path string `mapstructure:"path"`

	// Connection pool settings (postgres only)
	Pool PoolConfig `mapstructure:"pool"`
}

// PoolConfig holds connection pool configuration
type PoolConfig struct {
	MaxOpen     int           `mapstructure:"max_open" validate:"min=0"`
	MaxIdle     int           `mapstructure:"max_idle" validate:"min=0"`
	MaxLifetime time.Duration `mapstructure:"max_lifetime"`
}
