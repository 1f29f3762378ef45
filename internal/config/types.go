package config

import (
	"time"

	"github.com/lightworkai/kycmon/internal/health"
)

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .kycmon.yaml configuration file.
type Config struct {
	Version        int                 `yaml:"version" mapstructure:"version"`
	Dashboard      DashboardConfig     `yaml:"dashboard" mapstructure:"dashboard"`
	TargetPassRate float64             `yaml:"target_pass_rate" mapstructure:"target_pass_rate"`
	DataFile       string              `yaml:"data_file" mapstructure:"data_file"`
	FetchTimeout   time.Duration       `yaml:"fetch_timeout" mapstructure:"fetch_timeout"`
	Teams          []health.TeamOption `yaml:"teams" mapstructure:"teams"`
	Theme          ThemeConfig         `yaml:"theme" mapstructure:"theme"`
	Output         OutputConfig        `yaml:"output" mapstructure:"output"`
}

// DashboardConfig holds the selection the dashboard opens with.
type DashboardConfig struct {
	// Team is the initially selected team id; must appear in Teams.
	Team string `yaml:"team" mapstructure:"team"`

	// DateRange is one of last-8-weeks, last-4-weeks, last-month.
	DateRange string `yaml:"date_range" mapstructure:"date_range"`

	// Tab is one of usage, issues, health.
	Tab string `yaml:"tab" mapstructure:"tab"`
}

// ThemeConfig overrides palette entries. Values are "#rrggbb" hex strings or
// ANSI color numbers; empty keeps the built-in color.
type ThemeConfig struct {
	Accent    string `yaml:"accent" mapstructure:"accent"`
	Bar       string `yaml:"bar" mapstructure:"bar"`
	BarEmpty  string `yaml:"bar_empty" mapstructure:"bar_empty"`
	Critical  string `yaml:"critical" mapstructure:"critical"`
	Warning   string `yaml:"warning" mapstructure:"warning"`
	Healthy   string `yaml:"healthy" mapstructure:"healthy"`
	Improving string `yaml:"improving" mapstructure:"improving"`
	Neutral   string `yaml:"neutral" mapstructure:"neutral"`
}

// OutputConfig controls terminal output formatting.
type OutputConfig struct {
	// Color mode: "auto", "always", or "never".
	// "auto" disables color when output is piped.
	Color string `yaml:"color" mapstructure:"color"`
}

// Tab names accepted by dashboard.tab.
var Tabs = []string{"usage", "issues", "health"}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Dashboard: DashboardConfig{
			Team:      string(health.DefaultTeam),
			DateRange: string(health.DefaultDateRange),
			Tab:       "health",
		},
		TargetPassRate: health.DefaultTargetPassRate,
		FetchTimeout:   5 * time.Second,
		Teams:          health.DefaultTeams(),
		Output: OutputConfig{
			Color: "auto",
		},
	}
}

// TeamLabel returns the configured label for id, or id itself when unknown.
func (c *Config) TeamLabel(id string) string {
	for _, t := range c.Teams {
		if string(t.ID) == id {
			return t.Label
		}
	}
	return id
}
