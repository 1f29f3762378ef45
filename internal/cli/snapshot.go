package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/lightworkai/kycmon/internal/config"
	"github.com/lightworkai/kycmon/internal/dashboard"
	"github.com/lightworkai/kycmon/internal/errors"
	"github.com/lightworkai/kycmon/internal/health"
	"github.com/lightworkai/kycmon/internal/logger"
	"github.com/lightworkai/kycmon/internal/ui"
	"github.com/lightworkai/kycmon/internal/util"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by --format.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// sparklineWidth caps how many trailing points a sparkline shows.
const sparklineWidth = 24

// SnapshotFlags holds the snapshot command's flags.
type SnapshotFlags struct {
	SelectionFlags
	Format   string
	AllTeams bool
	Export   string
}

var snapshotFlags SnapshotFlags

// snapshotCmd prints the current snapshot
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print the monitoring snapshot",
	Long: `Fetch the monitoring snapshot and print it as text, JSON or YAML.

JSON output is wrapped in a {success, data, error} envelope. --all-teams
fetches every configured team concurrently and prints them in config order.
--export writes the snapshot in the dataset file format, which --data can
read back.

Examples:
  kycmon snapshot
  kycmon snapshot --team face-team --format json
  kycmon snapshot --all-teams --format yaml
  kycmon snapshot --export ./snapshot.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSnapshot(cmd, &snapshotFlags)
	},
}

func init() {
	AddSelectionFlags(snapshotCmd, &snapshotFlags.SelectionFlags)
	snapshotCmd.Flags().StringVarP(&snapshotFlags.Format, "format", "f", FormatText, "output format: text, json or yaml")
	snapshotCmd.Flags().BoolVar(&snapshotFlags.AllTeams, "all-teams", false, "fetch every configured team")
	snapshotCmd.Flags().StringVar(&snapshotFlags.Export, "export", "", "also write the snapshot as a dataset file")
	rootCmd.AddCommand(snapshotCmd)
}

// SnapshotReport is one team's snapshot with its header figures.
type SnapshotReport struct {
	Team           health.Team      `json:"team" yaml:"team"`
	TeamLabel      string           `json:"team_label" yaml:"team_label"`
	DateRange      health.DateRange `json:"date_range" yaml:"date_range"`
	TargetPassRate float64          `json:"target_pass_rate" yaml:"target_pass_rate"`
	Summary        health.Summary   `json:"summary" yaml:"summary"`
	Snapshot       *health.Snapshot `json:"snapshot" yaml:"snapshot"`
}

func runSnapshot(cmd *cobra.Command, flags *SnapshotFlags) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return snapshotWithConfig(cmd.Context(), cmd.OutOrStdout(), cfg, *flags)
}

// snapshotWithConfig does the work of the snapshot command against a loaded config.
// With --format json every failure is also written as an error envelope.
func snapshotWithConfig(ctx context.Context, out io.Writer, cfg *config.Config, flags SnapshotFlags) error {
	if err := validateFormat(flags.Format); err != nil {
		return err
	}

	reports, err := prepareReports(ctx, cfg, flags)
	if err != nil {
		if flags.Format == FormatJSON {
			_ = WriteJSONFromError(out, err)
		}
		return err
	}

	return writeReports(out, flags.Format, reports, flags.AllTeams)
}

// prepareReports resolves the selection, fetches every requested team and
// runs the export, if any.
func prepareReports(ctx context.Context, cfg *config.Config, flags SnapshotFlags) ([]SnapshotReport, error) {
	if flags.AllTeams && flags.Export != "" {
		return nil, errors.New(errors.ErrConfig,
			"--export works with a single team",
			"Drop --all-teams or export each team with --team")
	}

	sel, err := ResolveSelection(cfg, flags.SelectionFlags, "")
	if err != nil {
		return nil, err
	}

	teams := []health.Team{sel.Team}
	if flags.AllTeams {
		teams = make([]health.Team, len(cfg.Teams))
		for i, t := range cfg.Teams {
			teams[i] = t.ID
		}
	}

	log := logger.NewEnvLogger("[snapshot]")
	provider := newProvider(cfg, flags.DataFile, log)

	reports, err := collectReports(ctx, provider, cfg, teams, sel.DateRange)
	if err != nil {
		return nil, err
	}

	if flags.Export != "" {
		if err := exportSnapshot(flags.Export, reports[0].Snapshot); err != nil {
			return nil, err
		}
		log.Debug("exported snapshot to %s", flags.Export)
	}

	return reports, nil
}

func validateFormat(format string) error {
	switch format {
	case FormatText, FormatJSON, FormatYAML:
		return nil
	}
	return errors.New(errors.ErrConfig,
		fmt.Sprintf("Unknown format '%s'", format),
		"Use --format text, json or yaml")
}

// collectReports fetches one snapshot per team concurrently. Reports come
// back in the order of teams.
func collectReports(ctx context.Context, provider health.Provider, cfg *config.Config, teams []health.Team, dateRange health.DateRange) ([]SnapshotReport, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	reports := make([]SnapshotReport, len(teams))
	eg, egCtx := errgroup.WithContext(ctx)

	for i, team := range teams {
		eg.Go(func() error {
			fetchCtx, cancel := context.WithTimeout(egCtx, fetchTimeout(cfg))
			defer cancel()

			snap, err := provider.FetchHealthSnapshot(fetchCtx, team, dateRange)
			if err != nil {
				return fetchError(err)
			}
			reports[i] = SnapshotReport{
				Team:           team,
				TeamLabel:      cfg.TeamLabel(string(team)),
				DateRange:      dateRange,
				TargetPassRate: cfg.TargetPassRate,
				Summary:        health.Summarize(snap, cfg.TargetPassRate),
				Snapshot:       snap,
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func fetchTimeout(cfg *config.Config) time.Duration {
	if cfg.FetchTimeout > 0 {
		return cfg.FetchTimeout
	}
	return dashboard.DefaultFetchTimeout
}

// exportSnapshot writes s to path in the dataset file format.
func exportSnapshot(path string, s *health.Snapshot) error {
	path = config.ExpandTilde(config.Expand(path))
	f, err := os.Create(path)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrOutput,
			"Couldn't create export file: "+path,
			"Check that the directory exists and is writable")
	}
	defer f.Close()

	if err := health.EncodeSnapshot(f, s); err != nil {
		return errors.WrapWithCode(err, errors.ErrOutput,
			"Couldn't write export file: "+path,
			"Check free disk space and permissions")
	}
	return nil
}

// writeReports prints reports in format. A single report is written as an
// object, several as a list.
func writeReports(w io.Writer, format string, reports []SnapshotReport, asList bool) error {
	var data interface{} = reports
	if !asList && len(reports) == 1 {
		data = reports[0]
	}

	var err error
	switch format {
	case FormatJSON:
		err = WriteJSONSuccess(w, data)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(data); err == nil {
			err = enc.Close()
		}
	default:
		for i, r := range reports {
			if i > 0 {
				if _, err = fmt.Fprintln(w); err != nil {
					break
				}
			}
			if _, err = io.WriteString(w, RenderReportText(r)); err != nil {
				break
			}
		}
	}

	if err != nil {
		return errors.WrapWithCode(err, errors.ErrOutput,
			"Couldn't write the snapshot",
			"Check that the output is still open")
	}
	return nil
}

// RenderReportText renders a report as the plain-text snapshot.
func RenderReportText(r SnapshotReport) string {
	var b strings.Builder
	s := r.Snapshot
	sum := r.Summary

	b.WriteString(ui.RenderHeader(ui.HeaderInfo{
		Title:    "KYC Monitoring Snapshot",
		Subtitle: r.TeamLabel + " · " + r.DateRange.Label(),
	}))
	b.WriteString("\n")

	passRate := "no data"
	if len(s.PassRate) > 0 {
		passRate = fmt.Sprintf("%.1f%% latest · %.1f%% mean · %d of %d below %g%% target",
			sum.PassRateLatest, sum.PassRateMean, sum.PointsBelowTarget, len(s.PassRate), r.TargetPassRate)
	}
	writeSeriesLine(&b, "Pass rate", ui.RenderSparkline(s.PassRates(), sparklineWidth, ui.ColorInfo), passRate)

	alerts := "no data"
	if len(s.Alerts) > 0 {
		alerts = fmt.Sprintf("%d %s · peak %d",
			sum.AlertsTotal, util.Pluralize(sum.AlertsTotal, "alert", "alerts"), sum.AlertsPeak)
	}
	writeSeriesLine(&b, "Alerts", ui.RenderSparkline(s.AlertCounts(), sparklineWidth, ui.ColorWarning), alerts)

	checkStatus := string(health.StatusHealthy)
	if sum.CriticalChecks > 0 {
		checkStatus = string(health.StatusCritical)
	}
	checks := fmt.Sprintf("%s %d critical %s", ui.StatusSymbol(checkStatus),
		sum.CriticalChecks, util.Pluralize(sum.CriticalChecks, "check", "checks"))
	writeSeriesLine(&b, "Checks", "", lipgloss.NewStyle().Foreground(ui.StatusColor(checkStatus)).Render(checks))

	writeTable(&b, "Check Health", checkTableRows(s.Checks),
		"Status", "Check", "Project", "Last 8w", "Last 7d", "Difference")
	writeTable(&b, "Key Transactions", transactionTableRows(s.Transactions),
		"Transaction", "Project", "Last 8w", "Last 7d", "Change")
	writeTable(&b, "Alert Rules", alertRuleTableRows(s.AlertRules),
		"Rule", "Project", "8w Avg", "This Week", "Difference")

	return b.String()
}

func writeSeriesLine(b *strings.Builder, label, spark, detail string) {
	b.WriteString(ui.PadRight(label, 11))
	if spark != "" {
		b.WriteString(spark)
		b.WriteString("  ")
	}
	b.WriteString(detail)
	b.WriteString("\n")
}

func writeTable(b *strings.Builder, title string, rows [][]string, headers ...string) {
	b.WriteString("\n")
	b.WriteString(title)
	b.WriteString("\n")
	if len(rows) == 0 {
		b.WriteString("  " + util.JoinOrNone(nil) + "\n")
		return
	}
	b.WriteString(ui.RenderSimpleTable(ui.FitColumns(headers, rows), rows))
	b.WriteString("\n")
}

func checkTableRows(checks []health.CheckHealthRow) [][]string {
	rows := make([][]string, len(checks))
	for i, c := range checks {
		rows[i] = []string{
			ui.StatusSymbol(string(c.Status)) + " " + string(c.Status),
			c.Check,
			c.Project,
			percent(c.Last8w),
			percent(c.Last7d),
			dashboard.DifferenceText(c.Difference),
		}
	}
	return rows
}

func transactionTableRows(txs []health.TransactionRow) [][]string {
	rows := make([][]string, len(txs))
	for i, t := range txs {
		rows[i] = []string{
			t.Transaction,
			t.Project,
			percent(t.Last8w),
			percent(t.Last7d),
			t.Change,
		}
	}
	return rows
}

func alertRuleTableRows(rules []health.AlertRuleRow) [][]string {
	rows := make([][]string, len(rules))
	for i, r := range rules {
		rows[i] = []string{
			r.Rule,
			r.Project,
			strconv.FormatFloat(r.Last8wAvg, 'f', -1, 64),
			strconv.Itoa(r.ThisWeek),
			r.Difference,
		}
	}
	return rows
}

func percent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}
