package health

// Status is the health classification of a sub-check.
type Status string

const (
	StatusCritical  Status = "critical"
	StatusWarning   Status = "warning"
	StatusHealthy   Status = "healthy"
	StatusImproving Status = "improving"
)

// Team identifies the team whose view is selected.
type Team string

const (
	TeamKYCVerification Team = "kyc-verification"
	TeamDocument        Team = "document-team"
	TeamFace            Team = "face-team"
)

// DefaultTeam is the team selected on startup.
const DefaultTeam = TeamKYCVerification

// TeamOption pairs a team identifier with its display label.
type TeamOption struct {
	ID    Team   `json:"id" yaml:"id" mapstructure:"id"`
	Label string `json:"label" yaml:"label" mapstructure:"label"`
}

// DefaultTeams returns the known teams in selector order.
func DefaultTeams() []TeamOption {
	return []TeamOption{
		{ID: TeamKYCVerification, Label: "KYC Verification"},
		{ID: TeamDocument, Label: "Document Team"},
		{ID: TeamFace, Label: "Face Team"},
	}
}

// DateRange is the reporting window selected in the header.
type DateRange string

const (
	RangeLast8Weeks DateRange = "last-8-weeks"
	RangeLast4Weeks DateRange = "last-4-weeks"
	RangeLastMonth  DateRange = "last-month"
)

// DefaultDateRange is the date range selected on startup.
const DefaultDateRange = RangeLast8Weeks

// DateRanges returns every date range in selector order.
func DateRanges() []DateRange {
	return []DateRange{RangeLast8Weeks, RangeLast4Weeks, RangeLastMonth}
}

// Label returns the human-readable label for the date range.
func (r DateRange) Label() string {
	switch r {
	case RangeLast8Weeks:
		return "Last 8 weeks"
	case RangeLast4Weeks:
		return "Last 4 weeks"
	case RangeLastMonth:
		return "Last month"
	default:
		return string(r)
	}
}

// Valid reports whether r is one of the known date ranges.
func (r DateRange) Valid() bool {
	for _, known := range DateRanges() {
		if r == known {
			return true
		}
	}
	return false
}

// PassRatePoint is one point of the pass-rate trend.
type PassRatePoint struct {
	Week     string  `json:"week" yaml:"week"`
	PassRate float64 `json:"pass_rate" yaml:"pass_rate"`
}

// AlertCountPoint is the number of alerts triggered on a date.
type AlertCountPoint struct {
	Date   string `json:"date" yaml:"date"`
	Alerts int    `json:"alerts" yaml:"alerts"`
}

// CheckHealthRow is one verification sub-check.
// Bars holds pass/fail indicators; nothing enforces its length or that
// Status agrees with the sign of Difference.
type CheckHealthRow struct {
	Check      string  `json:"check" yaml:"check"`
	Project    string  `json:"project" yaml:"project"`
	Last8w     float64 `json:"last_8w" yaml:"last_8w"`
	Last7d     float64 `json:"last_7d" yaml:"last_7d"`
	Difference float64 `json:"difference" yaml:"difference"`
	Status     Status  `json:"status" yaml:"status"`
	Bars       []int   `json:"bars" yaml:"bars"`
}

// TransactionRow is the success-rate record of a key API endpoint.
type TransactionRow struct {
	Transaction string  `json:"transaction" yaml:"transaction"`
	Project     string  `json:"project" yaml:"project"`
	Last8w      float64 `json:"last_8w" yaml:"last_8w"`
	Last7d      float64 `json:"last_7d" yaml:"last_7d"`
	Change      string  `json:"change" yaml:"change"`
	Bars8w      []int   `json:"bars_8w" yaml:"bars_8w"`
	Bars7d      []int   `json:"bars_7d" yaml:"bars_7d"`
}

// AlertRuleRow counts how often a monitoring rule fired.
type AlertRuleRow struct {
	Rule       string  `json:"rule" yaml:"rule"`
	Project    string  `json:"project" yaml:"project"`
	Last8wAvg  float64 `json:"last_8w_avg" yaml:"last_8w_avg"`
	ThisWeek   int     `json:"this_week" yaml:"this_week"`
	Difference string  `json:"difference" yaml:"difference"`
}

// Snapshot is everything the dashboard renders for one team and date range.
type Snapshot struct {
	Team         Team              `json:"team" yaml:"team"`
	DateRange    DateRange         `json:"date_range" yaml:"date_range"`
	PassRate     []PassRatePoint   `json:"pass_rate" yaml:"pass_rate"`
	Alerts       []AlertCountPoint `json:"alerts" yaml:"alerts"`
	Checks       []CheckHealthRow  `json:"checks" yaml:"checks"`
	Transactions []TransactionRow  `json:"transactions" yaml:"transactions"`
	AlertRules   []AlertRuleRow    `json:"alert_rules" yaml:"alert_rules"`
}

// Clone returns a deep copy of s.
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}

	out := &Snapshot{
		Team:       s.Team,
		DateRange:  s.DateRange,
		PassRate:   append([]PassRatePoint(nil), s.PassRate...),
		Alerts:     append([]AlertCountPoint(nil), s.Alerts...),
		AlertRules: append([]AlertRuleRow(nil), s.AlertRules...),
	}

	if s.Checks != nil {
		out.Checks = make([]CheckHealthRow, len(s.Checks))
		for i, row := range s.Checks {
			row.Bars = cloneBars(row.Bars)
			out.Checks[i] = row
		}
	}

	if s.Transactions != nil {
		out.Transactions = make([]TransactionRow, len(s.Transactions))
		for i, row := range s.Transactions {
			row.Bars8w = cloneBars(row.Bars8w)
			row.Bars7d = cloneBars(row.Bars7d)
			out.Transactions[i] = row
		}
	}

	return out
}

func cloneBars(bars []int) []int {
	if bars == nil {
		return nil
	}
	return append([]int(nil), bars...)
}

// PassRates returns the pass-rate values in series order.
func (s *Snapshot) PassRates() []float64 {
	values := make([]float64, len(s.PassRate))
	for i, p := range s.PassRate {
		values[i] = p.PassRate
	}
	return values
}

// AlertCounts returns the alert counts in series order.
func (s *Snapshot) AlertCounts() []float64 {
	values := make([]float64, len(s.Alerts))
	for i, p := range s.Alerts {
		values[i] = float64(p.Alerts)
	}
	return values
}
