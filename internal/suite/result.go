package suite

import (
	"fmt"
	"time"
)

// Result is the outcome of one named check.
type Result struct {
	Name    string `json:"name"`
	Passed  bool   `json:"passed"`
	Details string `json:"details,omitempty"`
}

// Results aggregates every check from a run. Total always equals Pass+Fail
// and len(Details).
type Results struct {
	Pass      int           `json:"pass"`
	Fail      int           `json:"fail"`
	Total     int           `json:"total"`
	Details   []Result      `json:"details"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration_ns"`
}

// PassRate returns the percentage of passing checks, or 0 when nothing ran.
func (r Results) PassRate() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Pass) / float64(r.Total) * 100
}

// Failed returns the failing results in run order.
func (r Results) Failed() []Result {
	var out []Result
	for _, d := range r.Details {
		if !d.Passed {
			out = append(out, d)
		}
	}
	return out
}

// Observer receives progress while suites run.
type Observer interface {
	SuiteStarted(name string)
	ResultRecorded(r Result)
}

// Recorder accumulates results and forwards each one to an optional observer.
type Recorder struct {
	results  Results
	observer Observer
}

// NewRecorder creates a Recorder. obs may be nil.
func NewRecorder(obs Observer) *Recorder {
	return &Recorder{
		results:  Results{Details: []Result{}},
		observer: obs,
	}
}

// Begin announces a new suite.
func (r *Recorder) Begin(suite string) {
	if r.observer != nil {
		r.observer.SuiteStarted(suite)
	}
}

// Add records one result.
func (r *Recorder) Add(name string, passed bool, details string) {
	r.results.Total++
	if passed {
		r.results.Pass++
	} else {
		r.results.Fail++
	}
	res := Result{Name: name, Passed: passed, Details: details}
	r.results.Details = append(r.results.Details, res)
	if r.observer != nil {
		r.observer.ResultRecorded(res)
	}
}

// Check runs fn and records its outcome. A panic inside fn is recorded as a
// failure instead of aborting the run.
func (r *Recorder) Check(name string, fn func() (bool, string)) {
	passed, details := func() (ok bool, msg string) {
		defer func() {
			if p := recover(); p != nil {
				ok, msg = false, fmt.Sprintf("panic: %v", p)
			}
		}()
		return fn()
	}()
	r.Add(name, passed, details)
}

// Results returns a copy of everything recorded so far.
func (r *Recorder) Results() Results {
	out := r.results
	out.Details = append([]Result(nil), r.results.Details...)
	return out
}
