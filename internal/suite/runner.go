package suite

import (
	"log/slog"

	"github.com/jonboulle/clockwork"
)

// Suite is a named group of checks.
type Suite struct {
	Name string
	Run  func(rec *Recorder)
}

// Runner executes suites in order and stamps the run with its clock.
type Runner struct {
	clock  clockwork.Clock
	suites []Suite
	logger *slog.Logger
}

// NewRunner creates a Runner. A nil clock uses real time.
func NewRunner(clock clockwork.Clock, logger *slog.Logger, suites ...Suite) *Runner {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Runner{clock: clock, suites: suites, logger: logger}
}

// Run executes every suite and returns the aggregated results.
func (r *Runner) Run(obs Observer) Results {
	rec := NewRecorder(obs)
	start := r.clock.Now()

	for _, s := range r.suites {
		before := rec.results.Total
		rec.Begin(s.Name)
		s.Run(rec)
		r.logger.Debug("suite finished", "suite", s.Name, "checks", rec.results.Total-before)
	}

	results := rec.Results()
	results.StartedAt = start.UTC()
	results.Duration = r.clock.Since(start)
	return results
}
