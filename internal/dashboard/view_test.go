package dashboard

import (
	"context"
	"testing"

	"github.com/lightworkai/kycmon/internal/health"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCheckTable_NegativeDifferenceIsRed(t *testing.T) {
	theme := DefaultTheme()
	out := renderCheckTable([]health.CheckHealthRow{{
		Check:      "image_integrity_result",
		Project:    "document-verification",
		Last8w:     74.2,
		Last7d:     61.7,
		Difference: -12.5,
		Status:     health.StatusHealthy,
		Bars:       []int{1, 0},
	}}, 0, theme)

	assert.Contains(t, out, "-12.5% ↓")
	assert.Contains(t, out, fgSeq(theme.Palette.Critical))
	assert.Contains(t, out, "74.2%")
	assert.Contains(t, out, "61.7%")
	assert.Contains(t, out, "image_integrity_result")
	assert.Contains(t, out, "document-verification")
	for _, h := range checkHeaders {
		assert.Contains(t, out, h)
	}
}

func TestRenderCheckTable_StatusDot(t *testing.T) {
	theme := DefaultTheme()
	out := renderCheckTable([]health.CheckHealthRow{{
		Check:  "liveness_result",
		Status: health.StatusImproving,
	}}, 0, theme)

	assert.Contains(t, out, fgSeq(theme.Palette.Improving))
	assert.Contains(t, out, "0%")
}

func TestRenderTransactionTable_BetterIsGreen(t *testing.T) {
	theme := DefaultTheme()
	out := renderTransactionTable([]health.TransactionRow{{
		Transaction: "/api/v1/kyc/verify",
		Project:     "kyc-api",
		Last8w:      97.1,
		Last7d:      98.3,
		Change:      "1.2% better",
		Bars8w:      []int{1, 1},
		Bars7d:      []int{0, 1},
	}}, 0, theme)

	assert.Contains(t, out, "1.2% better")
	assert.Contains(t, out, fgSeq(theme.Palette.Healthy))
	assert.NotContains(t, out, fgSeq(theme.Palette.Critical))
	assert.Contains(t, out, "/api/v1/kyc/verify")
	for _, h := range transactionHeaders {
		assert.Contains(t, out, h)
	}
}

func TestRenderAlertRuleTable_DifferenceAlwaysRed(t *testing.T) {
	theme := DefaultTheme()
	out := renderAlertRuleTable([]health.AlertRuleRow{{
		Rule:       "Pass rate below 80%",
		Project:    "kyc-api",
		Last8wAvg:  1.5,
		ThisWeek:   3,
		Difference: "+100%",
	}}, 0, theme)

	assert.Contains(t, out, "+100%")
	assert.Contains(t, out, fgSeq(theme.Palette.Critical))
	assert.Contains(t, out, "1.5")
	for _, h := range alertRuleHeaders {
		assert.Contains(t, out, h)
	}
}

func TestStaticView(t *testing.T) {
	m, err := NewModel(health.NewStaticProvider(nil)).Prefetch(context.Background())
	require.NoError(t, err)

	wide := m.StaticView(StaticWidth)
	for _, want := range []string{
		"KYC Verification", "Monitoring",
		"Projects", "Performance", "Stats", "Settings",
		"LightWork AI", "Usage", "Issues", "Health",
		"Team: KYC Verification", "Date Range: Last 8 weeks",
		passRateTitle, checksTitle, endpointsTitle, alertsTitle,
		"Alerts Triggered", "image_integrity_result",
	} {
		assert.Contains(t, wide, want)
	}

	narrow := m.StaticView(80)
	assert.NotContains(t, narrow, "Performance")
	assert.Contains(t, narrow, passRateTitle)
}

func TestRender_DoesNotMutateSnapshot(t *testing.T) {
	m := loaded(t, &fakeProvider{})
	before := m.Snapshot().Clone()

	_ = m.View()
	_ = m.StaticView(StaticWidth)
	_ = m.StaticView(60)

	assert.Equal(t, before, m.Snapshot())
}

func TestSummaryLine(t *testing.T) {
	m, err := NewModel(health.NewStaticProvider(nil)).Prefetch(context.Background())
	require.NoError(t, err)

	line := m.summaryLine()
	assert.Contains(t, line, "pass rate 58.7% latest, 77.6% mean")
	assert.Contains(t, line, "5 of 6 below 85% target")
	assert.Contains(t, line, "39 alerts (peak 11)")
	assert.Contains(t, line, "1 critical check")
}

func TestTeamLabel(t *testing.T) {
	m := NewModel(&fakeProvider{})
	assert.Equal(t, "Face Team", m.teamLabel(health.TeamFace))
	assert.Equal(t, "unknown-team", m.teamLabel("unknown-team"))
}
