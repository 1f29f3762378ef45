package config

import (
	"fmt"
	"regexp"
	"slices"

	"github.com/lightworkai/kycmon/internal/errors"
	"github.com/lightworkai/kycmon/internal/health"
)

// teamIDPattern matches lowercase, dash separated identifiers.
var teamIDPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// colorPattern matches "#rgb", "#rrggbb" or an ANSI color number (0-255).
var colorPattern = regexp.MustCompile(`^(#[0-9a-fA-F]{3}|#[0-9a-fA-F]{6}|[0-9]{1,3})$`)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but kycmon only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade kycmon or lower the 'version' field.")
	}

	if err := validateTeams(cfg.Teams); err != nil {
		return errors.New(errors.ErrConfig, err.Error(), "Check the 'teams' section in your .kycmon.yaml.")
	}

	if err := validateDashboard(cfg.Dashboard, cfg.Teams); err != nil {
		return errors.New(errors.ErrConfig, err.Error(), "Check the 'dashboard' section in your .kycmon.yaml.")
	}

	if cfg.TargetPassRate < 0 || cfg.TargetPassRate > 100 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("target_pass_rate %g is out of range", cfg.TargetPassRate),
			"Use a percentage between 0 and 100.")
	}

	if cfg.FetchTimeout <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("fetch_timeout must be positive, got %s", cfg.FetchTimeout),
			"Try something like 'fetch_timeout: 5s'.")
	}

	if err := validateTheme(cfg.Theme); err != nil {
		return errors.New(errors.ErrConfig, err.Error(), "Use hex colors like '#1fa9f4' or ANSI numbers like '39'.")
	}

	if err := validateOutput(cfg.Output); err != nil {
		return errors.New(errors.ErrConfig, err.Error(), "Check the 'output' section in your .kycmon.yaml.")
	}

	return nil
}

func validateTeams(teams []health.TeamOption) error {
	seen := make(map[health.Team]bool, len(teams))
	for i, t := range teams {
		if t.ID == "" {
			return fmt.Errorf("teams[%d] is missing an id", i)
		}
		if !teamIDPattern.MatchString(string(t.ID)) {
			return fmt.Errorf("team id '%s' should be lowercase letters, digits and dashes", t.ID)
		}
		if seen[t.ID] {
			return fmt.Errorf("team '%s' is listed more than once", t.ID)
		}
		seen[t.ID] = true
	}
	return nil
}

func validateDashboard(d DashboardConfig, teams []health.TeamOption) error {
	if d.DateRange != "" && !health.DateRange(d.DateRange).Valid() {
		return fmt.Errorf("dashboard.date_range '%s' isn't valid - use 'last-8-weeks', 'last-4-weeks', or 'last-month'", d.DateRange)
	}

	if d.Tab != "" && !slices.Contains(Tabs, d.Tab) {
		return fmt.Errorf("dashboard.tab '%s' isn't valid - use 'usage', 'issues', or 'health'", d.Tab)
	}

	if d.Team != "" {
		found := false
		for _, t := range teams {
			if string(t.ID) == d.Team {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("dashboard.team '%s' isn't one of the configured teams", d.Team)
		}
	}

	return nil
}

func validateTheme(theme ThemeConfig) error {
	entries := []struct {
		key   string
		value string
	}{
		{"accent", theme.Accent},
		{"bar", theme.Bar},
		{"bar_empty", theme.BarEmpty},
		{"critical", theme.Critical},
		{"warning", theme.Warning},
		{"healthy", theme.Healthy},
		{"improving", theme.Improving},
		{"neutral", theme.Neutral},
	}
	for _, e := range entries {
		if e.value != "" && !colorPattern.MatchString(e.value) {
			return fmt.Errorf("theme.%s '%s' isn't a color", e.key, e.value)
		}
	}
	return nil
}

// validateOutput checks output configuration values.
func validateOutput(out OutputConfig) error {
	validColors := map[string]bool{"auto": true, "always": true, "never": true, "": true}
	if !validColors[out.Color] {
		return fmt.Errorf("output.color '%s' isn't valid - use 'auto', 'always', or 'never'", out.Color)
	}
	return nil
}
