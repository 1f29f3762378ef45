package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/lightworkai/kycmon/internal/config"
	"github.com/lightworkai/kycmon/internal/dashboard"
	"github.com/lightworkai/kycmon/internal/errors"
	"github.com/lightworkai/kycmon/internal/health"
	"github.com/lightworkai/kycmon/internal/logger"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// debugLogFile receives log output while the dashboard owns the screen.
const debugLogFile = "kycmon-debug.log"

// DashboardFlags holds the dashboard command's flags.
type DashboardFlags struct {
	SelectionFlags
	Tab  string
	Pick bool
}

var dashboardFlags DashboardFlags

// stdoutIsTerminal is swapped out in tests.
var stdoutIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// dashboardCmd starts the interactive dashboard
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Interactive KYC monitoring dashboard",
	Long: `Open the KYC monitoring dashboard: pass-rate trend, triggered alerts,
per-check health, key transactions and alert rules.

When stdout is not a terminal the dashboard is rendered once at 120 columns
and printed.

Keyboard shortcuts:
  tab / shift+tab  Next / previous tab
  1 2 3            Usage / Issues / Health
  t / T            Next / previous team
  d / D            Next / previous date range
  r                Refresh
  up/k, down/j     Scroll
  ?                Help
  q / Ctrl+C       Quit

Examples:
  kycmon dashboard
  kycmon dashboard --team face-team --range last-month
  kycmon dashboard --pick
  kycmon dashboard --data ./snapshot.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard(cmd, &dashboardFlags)
	},
}

func init() {
	addDashboardFlags(dashboardCmd, &dashboardFlags)
	rootCmd.AddCommand(dashboardCmd)
}

func addDashboardFlags(cmd *cobra.Command, flags *DashboardFlags) {
	AddSelectionFlags(cmd, &flags.SelectionFlags)
	cmd.Flags().StringVar(&flags.Tab, "tab", "", "initial tab: usage, issues or health")
	cmd.Flags().BoolVar(&flags.Pick, "pick", false, "choose team and date range interactively before opening")
}

// runDashboard loads config and either runs the TUI or prints a static render.
func runDashboard(cmd *cobra.Command, flags *DashboardFlags) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	sel, err := ResolveSelection(cfg, flags.SelectionFlags, flags.Tab)
	if err != nil {
		return err
	}

	interactive := stdoutIsTerminal()
	if flags.Pick {
		if !interactive {
			return errors.New(errors.ErrConfig,
				"--pick needs an interactive terminal",
				"Pass --team and --range instead")
		}
		sel, err = pickSelection(sel, cfg.Teams)
		if err != nil {
			return err
		}
	}

	log := logger.NewEnvLogger("[dashboard]")
	model := newDashboardModel(cfg, flags.DataFile, sel, log)

	if !interactive {
		return printStaticDashboard(cmd, model)
	}

	if logger.DebugEnabled() {
		f, err := tea.LogToFile(debugLogFile, "kycmon")
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrOutput,
				"Couldn't open the debug log",
				"Unset "+logger.DebugEnvVar+" or run from a writable directory")
		}
		defer f.Close()
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// newDashboardModel wires config, provider and selection into a model.
func newDashboardModel(cfg *config.Config, dataFlag string, sel dashboard.Selection, log logger.Logger) dashboard.Model {
	return dashboard.NewModel(newProvider(cfg, dataFlag, log),
		dashboard.WithSelection(sel),
		dashboard.WithTeams(cfg.Teams),
		dashboard.WithTheme(dashboard.NewTheme(dashboard.PaletteFromConfig(cfg.Theme))),
		dashboard.WithTargetPassRate(cfg.TargetPassRate),
		dashboard.WithFetchTimeout(cfg.FetchTimeout),
		dashboard.WithLogger(log),
	)
}

// printStaticDashboard fetches once and prints a single frame.
func printStaticDashboard(cmd *cobra.Command, model dashboard.Model) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	model, err := model.Prefetch(ctx)
	if err != nil {
		return fetchError(err)
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), model.StaticView(dashboard.StaticWidth)); err != nil {
		return errors.WrapWithCode(err, errors.ErrOutput,
			"Couldn't write the dashboard",
			"Check that the output is still open")
	}
	return nil
}

// pickSelection asks for team and date range, starting from sel.
func pickSelection(sel dashboard.Selection, teams []health.TeamOption) (dashboard.Selection, error) {
	team := string(sel.Team)
	dateRange := string(sel.DateRange)

	teamOptions := make([]huh.Option[string], len(teams))
	for i, t := range teams {
		teamOptions[i] = huh.NewOption(t.Label, string(t.ID))
	}
	rangeOptions := make([]huh.Option[string], 0, len(health.DateRanges()))
	for _, r := range health.DateRanges() {
		rangeOptions = append(rangeOptions, huh.NewOption(r.Label(), string(r)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Team").
				Options(teamOptions...).
				Value(&team),
			huh.NewSelect[string]().
				Title("Date range").
				Options(rangeOptions...).
				Value(&dateRange),
		),
	)

	if err := form.Run(); err != nil {
		return sel, errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't get your selection",
			"Try again or pass --team and --range")
	}

	return sel.SetTeam(health.Team(team)).SetDateRange(health.DateRange(dateRange)), nil
}

// fetchError gives provider failures a DATA code unless they already carry one.
func fetchError(err error) error {
	if errors.IsCode(err, errors.ErrData) {
		return err
	}
	if stderrors.Is(err, context.DeadlineExceeded) {
		return errors.WrapWithCode(err, errors.ErrData,
			"Timed out fetching the snapshot",
			"Raise fetch_timeout in the config file")
	}
	return errors.WrapWithCode(err, errors.ErrData,
		"Couldn't fetch the snapshot",
		"Run with "+logger.DebugEnvVar+"=1 for details")
}
