package dashboard

import (
	"github.com/lightworkai/kycmon/internal/health"
)

// Tab is the header tab selected in the dashboard.
type Tab string

const (
	TabUsage  Tab = "usage"
	TabIssues Tab = "issues"
	TabHealth Tab = "health"
)

// DefaultTab is the tab selected on startup.
const DefaultTab = TabHealth

// Tabs returns every tab in header order.
func Tabs() []Tab {
	return []Tab{TabUsage, TabIssues, TabHealth}
}

// Label returns the text shown in the header for the tab.
func (t Tab) Label() string {
	switch t {
	case TabUsage:
		return "Usage"
	case TabIssues:
		return "Issues"
	case TabHealth:
		return "Health"
	default:
		return string(t)
	}
}

// ParseTab converts a tab name into a Tab.
func ParseTab(s string) (Tab, bool) {
	for _, t := range Tabs() {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// Selection is the dashboard's local UI state. Setters return an updated
// copy and only touch their own field.
type Selection struct {
	Team      health.Team
	DateRange health.DateRange
	Tab       Tab
}

// DefaultSelection returns the selection the dashboard starts with.
func DefaultSelection() Selection {
	return Selection{
		Team:      health.DefaultTeam,
		DateRange: health.DefaultDateRange,
		Tab:       DefaultTab,
	}
}

// SetTeam selects a team.
func (s Selection) SetTeam(team health.Team) Selection {
	s.Team = team
	return s
}

// SetDateRange selects a date range.
func (s Selection) SetDateRange(r health.DateRange) Selection {
	s.DateRange = r
	return s
}

// SetTab selects a tab.
func (s Selection) SetTab(t Tab) Selection {
	s.Tab = t
	return s
}

// NextTeam selects the team after the current one in teams, wrapping around.
func (s Selection) NextTeam(teams []health.TeamOption) Selection {
	return s.SetTeam(cycle(teamIDs(teams), s.Team, 1))
}

// PrevTeam selects the team before the current one in teams, wrapping around.
func (s Selection) PrevTeam(teams []health.TeamOption) Selection {
	return s.SetTeam(cycle(teamIDs(teams), s.Team, -1))
}

// NextDateRange selects the following date range, wrapping around.
func (s Selection) NextDateRange() Selection {
	return s.SetDateRange(cycle(health.DateRanges(), s.DateRange, 1))
}

// PrevDateRange selects the preceding date range, wrapping around.
func (s Selection) PrevDateRange() Selection {
	return s.SetDateRange(cycle(health.DateRanges(), s.DateRange, -1))
}

// NextTab selects the tab to the right, wrapping around.
func (s Selection) NextTab() Selection {
	return s.SetTab(cycle(Tabs(), s.Tab, 1))
}

// PrevTab selects the tab to the left, wrapping around.
func (s Selection) PrevTab() Selection {
	return s.SetTab(cycle(Tabs(), s.Tab, -1))
}

func teamIDs(teams []health.TeamOption) []health.Team {
	ids := make([]health.Team, len(teams))
	for i, t := range teams {
		ids[i] = t.ID
	}
	return ids
}

// cycle steps through items from cur. An unknown cur lands on the first item
// going forward and the last going back. An empty list keeps cur.
func cycle[T comparable](items []T, cur T, step int) T {
	if len(items) == 0 {
		return cur
	}
	idx := -1
	for i, it := range items {
		if it == cur {
			idx = i
			break
		}
	}
	if idx < 0 {
		if step < 0 {
			return items[len(items)-1]
		}
		return items[0]
	}
	n := len(items)
	return items[((idx+step)%n+n)%n]
}
