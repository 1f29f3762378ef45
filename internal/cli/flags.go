package cli

import (
	"fmt"
	"strings"

	"github.com/lightworkai/kycmon/internal/config"
	"github.com/lightworkai/kycmon/internal/dashboard"
	"github.com/lightworkai/kycmon/internal/errors"
	"github.com/lightworkai/kycmon/internal/health"
	"github.com/lightworkai/kycmon/internal/util"
	"github.com/spf13/cobra"
)

// SelectionFlags holds the team/date-range/data flags shared by dashboard
// and snapshot.
type SelectionFlags struct {
	Team      string
	DateRange string
	DataFile  string
}

// AddSelectionFlags registers --team, --range and --data on a command.
func AddSelectionFlags(cmd *cobra.Command, flags *SelectionFlags) {
	cmd.Flags().StringVar(&flags.Team, "team", "", "team to show (default from config)")
	cmd.Flags().StringVar(&flags.DateRange, "range", "", "date range: last-8-weeks, last-4-weeks or last-month")
	cmd.Flags().StringVar(&flags.DataFile, "data", "", "YAML dataset file to read instead of the built-in sample")
}

// ResolveSelection merges config defaults with flag overrides and checks the
// result against the configured teams.
func ResolveSelection(cfg *config.Config, flags SelectionFlags, tab string) (dashboard.Selection, error) {
	sel := dashboard.DefaultSelection()
	if len(cfg.Teams) > 0 {
		sel.Team = cfg.Teams[0].ID
	}

	team := firstNonEmpty(flags.Team, cfg.Dashboard.Team)
	if team != "" {
		if !hasTeam(cfg.Teams, health.Team(team)) {
			return sel, errors.New(errors.ErrConfig,
				fmt.Sprintf("Unknown team '%s'", team),
				choiceHint(team, teamIDs(cfg.Teams)))
		}
		sel = sel.SetTeam(health.Team(team))
	}

	if r := firstNonEmpty(flags.DateRange, cfg.Dashboard.DateRange); r != "" {
		dr := health.DateRange(r)
		if !dr.Valid() {
			return sel, errors.New(errors.ErrConfig,
				fmt.Sprintf("Unknown date range '%s'", r),
				choiceHint(r, dateRangeNames()))
		}
		sel = sel.SetDateRange(dr)
	}

	if t := firstNonEmpty(tab, cfg.Dashboard.Tab); t != "" {
		parsed, ok := dashboard.ParseTab(t)
		if !ok {
			return sel, errors.New(errors.ErrConfig,
				fmt.Sprintf("Unknown tab '%s'", t),
				choiceHint(t, config.Tabs))
		}
		sel = sel.SetTab(parsed)
	}

	return sel, nil
}

// choiceHint lists the valid choices, leading with the closest ones to got.
func choiceHint(got string, choices []string) string {
	hint := "Pick one of: " + util.JoinOrNone(choices)
	if similar := util.SuggestSimilar(got, choices, 2); len(similar) > 0 {
		hint = fmt.Sprintf("Did you mean %s? %s", strings.Join(similar, " or "), hint)
	}
	return hint
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func hasTeam(teams []health.TeamOption, id health.Team) bool {
	for _, t := range teams {
		if t.ID == id {
			return true
		}
	}
	return false
}

func teamIDs(teams []health.TeamOption) []string {
	ids := make([]string, len(teams))
	for i, t := range teams {
		ids[i] = string(t.ID)
	}
	return ids
}

func dateRangeNames() []string {
	ranges := health.DateRanges()
	names := make([]string, len(ranges))
	for i, r := range ranges {
		names[i] = string(r)
	}
	return names
}
