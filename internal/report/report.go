// Package report renders suite results as a terminal report or a JSON
// document and maps them to a process exit code.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/couchcryptid/severe-weather-dashboard/internal/suite"
)

const ruleWidth = 60

// Reporter receives progress and prints the final summary.
type Reporter interface {
	suite.Observer
	Start()
	MissingTestPage(path string)
	Summary(results suite.Results) error
}

// ExitCode returns 0 when at least one check ran and none failed, 1 otherwise.
func ExitCode(results suite.Results) int {
	if results.Total == 0 || results.Fail > 0 {
		return 1
	}
	return 0
}

// New returns the reporter for the given format ("text" or "json").
func New(format string, w io.Writer, mode ColorMode) (Reporter, error) {
	switch strings.ToLower(format) {
	case "", "text":
		return NewTextReporter(w, mode), nil
	case "json":
		return NewJSONReporter(w), nil
	default:
		return nil, fmt.Errorf("unknown report format %q (want text or json)", format)
	}
}

// TextReporter prints live progress lines followed by a summary block.
type TextReporter struct {
	w      io.Writer
	styles palette
}

// NewTextReporter creates a TextReporter writing to w.
func NewTextReporter(w io.Writer, mode ColorMode) *TextReporter {
	return &TextReporter{w: w, styles: newPalette(newRenderer(w, mode))}
}

func (t *TextReporter) Start() {
	t.printf("%s\n\n", t.styles.banner.Render("Starting automated test suite..."))
}

func (t *TextReporter) MissingTestPage(path string) {
	t.printf("%s\n", t.styles.note.Render("Note: Test file not found: "+path))
	t.printf("%s\n\n", t.styles.note.Render("Tests will still run (they test logic, not files)"))
}

func (t *TextReporter) SuiteStarted(name string) {
	t.printf("\n%s\n", t.styles.suite.Render("Testing "+name+"..."))
}

func (t *TextReporter) ResultRecorded(r suite.Result) {
	t.printf("  %s %s\n", t.mark(r.Passed), r.Name)
	if r.Details != "" {
		t.printf("    %s\n", r.Details)
	}
}

func (t *TextReporter) Summary(results suite.Results) error {
	rule := t.styles.bold.Render(strings.Repeat("=", ruleWidth))
	t.printf("\n%s\n%s\n%s\n\n", rule, t.styles.bold.Render("Test Results Summary"), rule)

	t.printf("Total Tests: %d\n", results.Total)
	t.printf("%s\n", t.styles.pass.Render(fmt.Sprintf("Passed: %d", results.Pass)))
	t.printf("%s\n", t.styles.fail.Render(fmt.Sprintf("Failed: %d", results.Fail)))
	t.printf("Pass Rate: %.1f%%\n\n", results.PassRate())

	if failed := results.Failed(); len(failed) > 0 {
		t.printf("%s\n", t.styles.errBold.Render("Failed Tests:"))
		for _, f := range failed {
			t.printf("  %s %s\n", t.mark(false), f.Name)
			if f.Details != "" {
				t.printf("    %s\n", f.Details)
			}
		}
		t.printf("\n")
	}

	switch {
	case results.Total == 0:
		t.printf("%s\n\n", t.styles.errBold.Render("✗ No tests were run"))
	case results.Fail == 0:
		t.printf("%s\n\n", t.styles.okBold.Render("✓ All tests passed!"))
	default:
		t.printf("%s\n\n", t.styles.errBold.Render("✗ Some tests failed"))
	}
	return nil
}

func (t *TextReporter) mark(passed bool) string {
	if passed {
		return t.styles.pass.Render("✓")
	}
	return t.styles.fail.Render("✗")
}

func (t *TextReporter) printf(format string, args ...any) {
	fmt.Fprintf(t.w, format, args...) //nolint:errcheck // terminal output is best effort
}

// JSONReporter stays silent during the run and writes one document at the
// end.
type JSONReporter struct {
	w     io.Writer
	notes []string
}

// NewJSONReporter creates a JSONReporter writing to w.
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{w: w}
}

// jsonDocument is the machine-readable report.
type jsonDocument struct {
	suite.Results
	PassRate float64  `json:"pass_rate"`
	Success  bool     `json:"success"`
	Notes    []string `json:"notes,omitempty"`
}

func (j *JSONReporter) Start()                      {}
func (j *JSONReporter) SuiteStarted(string)         {}
func (j *JSONReporter) ResultRecorded(suite.Result) {}

func (j *JSONReporter) MissingTestPage(path string) {
	j.notes = append(j.notes, "test file not found: "+path)
}

func (j *JSONReporter) Summary(results suite.Results) error {
	enc := json.NewEncoder(j.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(jsonDocument{
		Results:  results,
		PassRate: results.PassRate(),
		Success:  ExitCode(results) == 0,
		Notes:    j.notes,
	}); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}
