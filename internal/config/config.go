package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	App     AppConfig     `mapstructure:"app"     validate:"required"`
	Planner PlannerConfig `mapstructure:"planner" validate:"required"`
}

// AppConfig contains process-wide settings.
type AppConfig struct {
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// PlannerConfig contains the defaults the CLI feeds into the planning core.
type PlannerConfig struct {
	// AvailableTimeMinutes is the owner's default daily time budget.
	AvailableTimeMinutes int `mapstructure:"available_time_minutes" validate:"required,gt=0"`

	// PlanningDate pins the planning date as YYYY-MM-DD. Empty means the
	// process start date, resolved at the CLI boundary; the core always
	// receives the date as an explicit argument.
	PlanningDate string `mapstructure:"planning_date" validate:"omitempty,datetime=2006-01-02"`
}

// ResolvePlanningDate returns the configured planning date, or the given
// fallback when none is configured. The config is validated at load time,
// so a non-empty date always parses.
func (c PlannerConfig) ResolvePlanningDate(fallback time.Time) time.Time {
	if c.PlanningDate == "" {
		return fallback
	}
	date, err := time.Parse("2006-01-02", c.PlanningDate)
	if err != nil {
		return fallback
	}
	return date
}
