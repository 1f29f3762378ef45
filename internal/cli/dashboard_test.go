package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/lightworkai/kycmon/internal/config"
	"github.com/lightworkai/kycmon/internal/dashboard"
	"github.com/lightworkai/kycmon/internal/errors"
	"github.com/lightworkai/kycmon/internal/health"
	"github.com/lightworkai/kycmon/internal/logger"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withConfigFile points --config at a temp file holding content.
func withConfigFile(t *testing.T, content string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	original := cfgFile
	t.Cleanup(func() { cfgFile = original })
	cfgFile = path
}

func withoutTerminal(t *testing.T) {
	t.Helper()
	original := stdoutIsTerminal
	t.Cleanup(func() { stdoutIsTerminal = original })
	stdoutIsTerminal = func() bool { return false }
}

func newOutputCmd(buf *bytes.Buffer) *cobra.Command {
	cmd := &cobra.Command{Use: "dashboard"}
	cmd.SetOut(buf)
	cmd.SetContext(context.Background())
	return cmd
}

func TestRunDashboard_StaticRenderWithoutTerminal(t *testing.T) {
	withoutTerminal(t)
	withConfigFile(t, "version: 1\ndashboard:\n  team: face-team\n  date_range: last-month\n")

	var buf bytes.Buffer
	require.NoError(t, runDashboard(newOutputCmd(&buf), &DashboardFlags{}))

	out := buf.String()
	assert.Contains(t, out, "Team: Face Team ▾")
	assert.Contains(t, out, "Date Range: Last month ▾")
	assert.Contains(t, out, "Monthly KYC Pass Rate Decline")
	assert.Contains(t, out, "Pass Rate Health")
}

func TestRunDashboard_FlagsOverrideConfig(t *testing.T) {
	withoutTerminal(t)
	withConfigFile(t, "version: 1\ndashboard:\n  team: face-team\n")

	var buf bytes.Buffer
	flags := &DashboardFlags{SelectionFlags: SelectionFlags{Team: "document-team"}}
	require.NoError(t, runDashboard(newOutputCmd(&buf), flags))

	assert.Contains(t, buf.String(), "Team: Document Team ▾")
}

func TestRunDashboard_PickNeedsTerminal(t *testing.T) {
	withoutTerminal(t)
	withConfigFile(t, "version: 1\n")

	var buf bytes.Buffer
	err := runDashboard(newOutputCmd(&buf), &DashboardFlags{Pick: true})
	require.Error(t, err)

	assert.True(t, errors.IsCode(err, errors.ErrConfig))
	assert.Contains(t, err.Error(), "--pick needs an interactive terminal")
	assert.Empty(t, buf.String())
}

func TestRunDashboard_InvalidConfig(t *testing.T) {
	withoutTerminal(t)
	withConfigFile(t, "version: 1\ntarget_pass_rate: 140\n")

	var buf bytes.Buffer
	err := runDashboard(newOutputCmd(&buf), &DashboardFlags{})
	require.Error(t, err)

	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestRunDashboard_MissingDataFile(t *testing.T) {
	withoutTerminal(t)
	withConfigFile(t, "version: 1\n")

	var buf bytes.Buffer
	flags := &DashboardFlags{SelectionFlags: SelectionFlags{DataFile: filepath.Join(t.TempDir(), "gone.yaml")}}
	err := runDashboard(newOutputCmd(&buf), flags)
	require.Error(t, err)

	assert.True(t, errors.IsCode(err, errors.ErrData))
	assert.Contains(t, err.Error(), "Dataset file not found")
}

func TestNewDashboardModel_UsesConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Teams = []health.TeamOption{{ID: "payments", Label: "Payments"}}
	sel := dashboard.DefaultSelection().SetTeam("payments").SetTab(dashboard.TabUsage)

	m := newDashboardModel(cfg, "", sel, logger.Noop())
	m, err := m.Prefetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, sel, m.Selection())
	require.NotNil(t, m.Snapshot())
	assert.Equal(t, health.Team("payments"), m.Snapshot().Team)
	assert.Contains(t, m.StaticView(dashboard.StaticWidth), "Team: Payments ▾")
}

func TestFetchError(t *testing.T) {
	structured := errors.New(errors.ErrData, "Invalid dataset file: x", "")
	assert.Same(t, structured, fetchError(structured), "structured errors pass through")

	annotated := fmt.Errorf("team payments: %w", structured)
	assert.Same(t, annotated, fetchError(annotated), "DATA errors pass through fmt wrapping")

	other := errors.New(errors.ErrOutput, "Couldn't write", "")
	assert.True(t, errors.IsCode(fetchError(other), errors.ErrData), "provider failures are DATA errors")

	timeout := fetchError(context.DeadlineExceeded)
	assert.True(t, errors.IsCode(timeout, errors.ErrData))
	assert.Contains(t, timeout.Error(), "Timed out fetching the snapshot")

	wrapped := fetchError(fmt.Errorf("fetch: %w", context.DeadlineExceeded))
	assert.Contains(t, wrapped.Error(), "Timed out fetching the snapshot")

	plain := fetchError(fmt.Errorf("connection refused"))
	assert.True(t, errors.IsCode(plain, errors.ErrData))
	assert.Contains(t, plain.Error(), "Couldn't fetch the snapshot")
	assert.Contains(t, plain.Error(), "connection refused")
}
