package cli

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/lightworkai/kycmon/internal/config"
	"github.com/lightworkai/kycmon/internal/logger"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

// Global flags
var (
	cfgFile string
	noColor bool
)

// rootCmd runs the dashboard when no subcommand is given.
var rootCmd = &cobra.Command{
	Use:   "kycmon",
	Short: "KYC verification monitoring in the terminal",
	Long: `kycmon shows pass rates, triggered alerts and per-check health for
KYC verification, either as an interactive dashboard or as a printed
snapshot.

Examples:
  kycmon
  kycmon dashboard --team document-team --tab issues
  kycmon snapshot --format json`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard(cmd, &dashboardFlags)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./.kycmon.yaml, then ~/.config/kycmon/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	// The bare command accepts the dashboard's flags too.
	addDashboardFlags(rootCmd, &dashboardFlags)
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig loads the config named by --config or found on disk, and
// applies its color mode.
func loadConfig() (*config.Config, error) {
	cfg, path, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return nil, err
	}
	if path != "" {
		logger.Default().Debug("loaded config from %s", path)
	}

	if profile, ok := colorProfile(cfg.Output.Color, noColor); ok {
		lipgloss.SetColorProfile(profile)
	}
	return cfg, nil
}

// colorProfile maps the color mode to a forced lipgloss profile. The bool is
// false when the terminal's own profile should be kept.
func colorProfile(mode string, disabled bool) (termenv.Profile, bool) {
	if disabled {
		return termenv.Ascii, true
	}
	switch mode {
	case "never":
		return termenv.Ascii, true
	case "always":
		return termenv.TrueColor, true
	default:
		return 0, false
	}
}
