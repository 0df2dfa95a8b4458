// Package reconcilejob runs the periodic reconciliation sweep.
package reconcilejob

import (
	"context"
	"time"

	"github.com/jasonlvhit/gocron"
	"github.com/rs/zerolog"

	"github.com/muhindakevin/backend-sub002/internal/domain"
)

// Reconciler provides the sweep the job schedules.
type Reconciler interface {
	ReconcileAll(ctx context.Context) ([]domain.DriftReport, error)
}

// Job schedules full reconciliation sweeps at a fixed interval.
type Job struct {
	service  Reconciler
	interval time.Duration
	logger   zerolog.Logger
}

// New returns a reconciliation job.
func New(service Reconciler, interval time.Duration, logger zerolog.Logger) *Job {
	return &Job{
		service:  service,
		interval: interval,
		logger:   logger,
	}
}

// Process blocks and runs the sweep every interval. Intended to run in
// its own goroutine.
func (j *Job) Process() {
	s := gocron.NewScheduler()
	_ = s.Every(uint64(j.interval.Seconds())).Seconds().Do(j.Sweep)
	<-s.Start()
}

// Sweep reconciles all accounts once and logs the outcome. Each run is
// independent; failed accounts are not retried here.
func (j *Job) Sweep() {
	ctx := j.logger.WithContext(context.Background())

	reports, err := j.service.ReconcileAll(ctx)
	if err != nil {
		j.logger.Error().Err(err).Msg("reconciliation sweep failed")
		return
	}

	drifted := 0

	for _, report := range reports {
		if report.HasDrift() {
			drifted++
		}
	}

	j.logger.Info().
		Int("accounts", len(reports)).
		Int("drifted", drifted).
		Msg("reconciliation sweep finished")
}
