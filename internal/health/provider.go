package health

import (
	"context"

	"github.com/lightworkai/kycmon/internal/logger"
)

// Provider supplies monitoring snapshots scoped to a team and date range.
type Provider interface {
	FetchHealthSnapshot(ctx context.Context, team Team, dateRange DateRange) (*Snapshot, error)
}

// StaticProvider serves the built-in sample dataset. Team and date range are
// recorded on the returned snapshot but do not change its contents.
type StaticProvider struct {
	log logger.Logger
}

// NewStaticProvider creates a provider over the built-in dataset.
// A nil logger discards messages.
func NewStaticProvider(log logger.Logger) *StaticProvider {
	if log == nil {
		log = logger.Noop()
	}
	return &StaticProvider{log: log}
}

// FetchHealthSnapshot returns a fresh copy of the sample dataset.
func (p *StaticProvider) FetchHealthSnapshot(ctx context.Context, team Team, dateRange DateRange) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.log.Debug("serving built-in snapshot for team=%s range=%s", team, dateRange)

	snap := sampleSnapshot.Clone()
	snap.Team = team
	snap.DateRange = dateRange
	return snap, nil
}
