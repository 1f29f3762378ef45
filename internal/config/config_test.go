package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lightworkai/kycmon/internal/errors"
	"github.com/lightworkai/kycmon/internal/health"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, CurrentConfigVersion, cfg.Version)
	assert.Equal(t, "kyc-verification", cfg.Dashboard.Team)
	assert.Equal(t, "last-8-weeks", cfg.Dashboard.DateRange)
	assert.Equal(t, "health", cfg.Dashboard.Tab)
	assert.Equal(t, 85.0, cfg.TargetPassRate)
	assert.Equal(t, 5*time.Second, cfg.FetchTimeout)
	assert.Empty(t, cfg.DataFile)
	assert.Equal(t, health.DefaultTeams(), cfg.Teams)
	assert.Equal(t, "auto", cfg.Output.Color)
	assert.Equal(t, ThemeConfig{}, cfg.Theme)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, ".kycmon.yaml")

	content := `
version: 1
dashboard:
  team: face-team
  date_range: last-4-weeks
  tab: issues
target_pass_rate: 90
data_file: data/snapshot.yaml
fetch_timeout: 750ms
theme:
  accent: "#ff00ff"
output:
  color: never
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "face-team", cfg.Dashboard.Team)
	assert.Equal(t, "last-4-weeks", cfg.Dashboard.DateRange)
	assert.Equal(t, "issues", cfg.Dashboard.Tab)
	assert.Equal(t, 90.0, cfg.TargetPassRate)
	assert.Equal(t, 750*time.Millisecond, cfg.FetchTimeout)
	assert.Equal(t, filepath.Join(dir, "data", "snapshot.yaml"), cfg.DataFile)
	assert.Equal(t, "#ff00ff", cfg.Theme.Accent)
	assert.Empty(t, cfg.Theme.Bar)
	assert.Equal(t, "never", cfg.Output.Color)

	// Teams were not set, so the defaults apply.
	assert.Equal(t, health.DefaultTeams(), cfg.Teams)
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, ".kycmon.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("version: 1\ntarget_pass_rate: 80\n"), 0644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, 80.0, cfg.TargetPassRate)
	assert.Equal(t, "kyc-verification", cfg.Dashboard.Team)
	assert.Equal(t, "health", cfg.Dashboard.Tab)
	assert.Equal(t, 5*time.Second, cfg.FetchTimeout)
	assert.Equal(t, "auto", cfg.Output.Color)
}

func TestLoad_TeamsReplaceDefaults(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, ".kycmon.yaml")

	content := `
version: 1
dashboard:
  team: risk-team
teams:
  - id: risk-team
    label: Risk Team
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	require.Len(t, cfg.Teams, 1)
	assert.Equal(t, health.Team("risk-team"), cfg.Teams[0].ID)
	assert.Equal(t, "Risk Team", cfg.Teams[0].Label)
	assert.Equal(t, "Risk Team", cfg.TeamLabel("risk-team"))
	assert.NoError(t, Validate(cfg))
}

func TestLoadOrDefault_TeamsWithoutDefaultTeam(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, ".kycmon.yaml")

	content := `
teams:
  - id: risk-team
    label: Risk Team
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	cfg, path, err := LoadOrDefault(configPath)
	require.NoError(t, err)
	assert.Equal(t, configPath, path)
	require.Len(t, cfg.Teams, 1)
	assert.Equal(t, health.Team("risk-team"), cfg.Teams[0].ID)
	assert.Empty(t, cfg.Dashboard.Team)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, ".kycmon.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("dashboard: [unclosed\n"), 0644))

	_, err := Load(configPath)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestFind_Explicit(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("version: 1\n"), 0644))

	found, err := Find(configPath)
	require.NoError(t, err)
	assert.Equal(t, configPath, found)

	_, err = Find(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Specified config file not found")
}

func TestFind_CurrentDirectory(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", t.TempDir())
	configPath := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(configPath, []byte("version: 1\n"), 0644))
	t.Chdir(dir)

	found, err := Find("")
	require.NoError(t, err)
	assert.Equal(t, configPath, found)
}

func TestFind_ParentStopsAtGitRoot(t *testing.T) {
	root := t.TempDir()
	t.Setenv("HOME", t.TempDir())

	// Config above the git root is never reached.
	require.NoError(t, os.WriteFile(filepath.Join(root, ConfigFileName), []byte("version: 1\n"), 0644))

	repo := filepath.Join(root, "repo")
	sub := filepath.Join(repo, "pkg", "deep")
	require.NoError(t, os.MkdirAll(sub, 0755))
	require.NoError(t, os.Mkdir(filepath.Join(repo, ".git"), 0755))

	t.Chdir(sub)
	found, err := Find("")
	require.NoError(t, err)
	assert.Empty(t, found)

	// A config at the git root is found from a subdirectory.
	repoConfig := filepath.Join(repo, ConfigFileName)
	require.NoError(t, os.WriteFile(repoConfig, []byte("version: 1\n"), 0644))

	found, err = Find("")
	require.NoError(t, err)
	assert.Equal(t, repoConfig, found)
}

func TestFind_GlobalConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	globalDir := filepath.Join(home, GlobalConfigDir)
	require.NoError(t, os.MkdirAll(globalDir, 0755))
	globalPath := filepath.Join(globalDir, GlobalConfigFile)
	require.NoError(t, os.WriteFile(globalPath, []byte("version: 1\n"), 0644))

	work := filepath.Join(home, "work")
	require.NoError(t, os.Mkdir(work, 0755))
	require.NoError(t, os.Mkdir(filepath.Join(work, ".git"), 0755))
	t.Chdir(work)

	found, err := Find("")
	require.NoError(t, err)
	assert.Equal(t, globalPath, found)
}

func TestLoadOrDefault(t *testing.T) {
	t.Run("no config returns defaults", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		work := filepath.Join(home, "work")
		require.NoError(t, os.MkdirAll(filepath.Join(work, ".git"), 0755))
		t.Chdir(work)

		cfg, path, err := LoadOrDefault("")
		require.NoError(t, err)
		assert.Empty(t, path)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("invalid config is rejected", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(configPath, []byte("version: 1\ndashboard:\n  tab: billing\n"), 0644))

		_, path, err := LoadOrDefault(configPath)
		require.Error(t, err)
		assert.Equal(t, configPath, path)
		assert.True(t, errors.IsCode(err, errors.ErrConfig))
	})
}

func TestTeamLabel_Unknown(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "Document Team", cfg.TeamLabel("document-team"))
	assert.Equal(t, "mystery", cfg.TeamLabel("mystery"))
}
