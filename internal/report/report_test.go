package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/couchcryptid/severe-weather-dashboard/internal/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recorded(results ...suite.Result) suite.Results {
	rec := suite.NewRecorder(nil)
	for _, r := range results {
		rec.Add(r.Name, r.Passed, r.Details)
	}
	return rec.Results()
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name    string
		results suite.Results
		want    int
	}{
		{"all pass", recorded(suite.Result{Name: "a", Passed: true}), 0},
		{"one failure", recorded(suite.Result{Name: "a", Passed: true}, suite.Result{Name: "b"}), 1},
		{"nothing ran", recorded(), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.results))
		})
	}
}

func TestParseColorMode(t *testing.T) {
	for _, in := range []string{"auto", "ALWAYS", " never "} {
		_, err := ParseColorMode(in)
		require.NoError(t, err, in)
	}
	_, err := ParseColorMode("sometimes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sometimes")
}

func TestTextReporter_ProgressLines(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextReporter(&buf, ColorNever)

	r.Start()
	r.SuiteStarted("Threat Level Calculation")
	r.ResultRecorded(suite.Result{Name: "Enhanced risk → CAUTION", Passed: true, Details: "Result: CAUTION"})
	r.ResultRecorded(suite.Result{Name: "No threats → SAFE", Passed: false})

	assert.Equal(t,
		"Starting automated test suite...\n\n"+
			"\nTesting Threat Level Calculation...\n"+
			"  ✓ Enhanced risk → CAUTION\n"+
			"    Result: CAUTION\n"+
			"  ✗ No threats → SAFE\n",
		buf.String())
}

func TestTextReporter_SummaryAllPassed(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextReporter(&buf, ColorNever)

	require.NoError(t, r.Summary(recorded(
		suite.Result{Name: "a", Passed: true},
		suite.Result{Name: "b", Passed: true},
	)))

	rule := strings.Repeat("=", 60)
	assert.Equal(t,
		"\n"+rule+"\nTest Results Summary\n"+rule+"\n\n"+
			"Total Tests: 2\nPassed: 2\nFailed: 0\nPass Rate: 100.0%\n\n"+
			"✓ All tests passed!\n\n",
		buf.String())
}

func TestTextReporter_SummaryListsFailures(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextReporter(&buf, ColorNever)

	require.NoError(t, r.Summary(recorded(
		suite.Result{Name: "DN 2 maps to TSTM", Passed: true},
		suite.Result{Name: "DN 3 maps to MRGL", Passed: true},
		suite.Result{Name: "Slight risk → MONITOR", Details: "Expected MONITOR, got SAFE"},
	)))

	out := buf.String()
	assert.Contains(t, out, "Total Tests: 3\n")
	assert.Contains(t, out, "Failed: 1\n")
	assert.Contains(t, out, "Pass Rate: 66.7%\n")
	assert.Contains(t, out, "Failed Tests:\n  ✗ Slight risk → MONITOR\n    Expected MONITOR, got SAFE\n\n")
	assert.True(t, strings.HasSuffix(out, "✗ Some tests failed\n\n"))
	assert.NotContains(t, out, "All tests passed")
}

func TestTextReporter_SummaryNothingRan(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTextReporter(&buf, ColorNever).Summary(recorded()))

	assert.Contains(t, buf.String(), "Pass Rate: 0.0%")
	assert.Contains(t, buf.String(), "✗ No tests were run")
}

func TestTextReporter_MissingTestPage(t *testing.T) {
	var buf bytes.Buffer
	NewTextReporter(&buf, ColorNever).MissingTestPage("test-dashboard.html")

	assert.Equal(t,
		"Note: Test file not found: test-dashboard.html\n"+
			"Tests will still run (they test logic, not files)\n\n",
		buf.String())
}

func TestTextReporter_ColorModes(t *testing.T) {
	var always, auto bytes.Buffer
	NewTextReporter(&always, ColorAlways).ResultRecorded(suite.Result{Name: "x", Passed: true})
	NewTextReporter(&auto, ColorAuto).ResultRecorded(suite.Result{Name: "x", Passed: true})

	assert.Contains(t, always.String(), "\x1b[")
	assert.NotContains(t, auto.String(), "\x1b[", "buffers are not terminals")
}

func TestJSONReporter_Summary(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONReporter(&buf)

	r.Start()
	r.MissingTestPage("test-dashboard.html")
	r.SuiteStarted("ignored")
	results := recorded(
		suite.Result{Name: "ok", Passed: true},
		suite.Result{Name: "bad", Details: "Expected warning, got none"},
	)
	results.Duration = 2 * time.Millisecond
	require.NoError(t, r.Summary(results))

	var doc struct {
		Pass     int            `json:"pass"`
		Fail     int            `json:"fail"`
		Total    int            `json:"total"`
		Details  []suite.Result `json:"details"`
		Duration int64          `json:"duration_ns"`
		PassRate float64        `json:"pass_rate"`
		Success  bool           `json:"success"`
		Notes    []string       `json:"notes"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, 1, doc.Pass)
	assert.Equal(t, 1, doc.Fail)
	assert.Equal(t, 2, doc.Total)
	require.Len(t, doc.Details, 2)
	assert.Equal(t, "Expected warning, got none", doc.Details[1].Details)
	assert.Equal(t, int64(2*time.Millisecond), doc.Duration)
	assert.InDelta(t, 50.0, doc.PassRate, 0.0001)
	assert.False(t, doc.Success)
	assert.Equal(t, []string{"test file not found: test-dashboard.html"}, doc.Notes)
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer

	r, err := New("json", &buf, ColorNever)
	require.NoError(t, err)
	assert.IsType(t, &JSONReporter{}, r)

	r, err = New("", &buf, ColorNever)
	require.NoError(t, err)
	assert.IsType(t, &TextReporter{}, r)

	_, err = New("xml", &buf, ColorNever)
	require.Error(t, err)
}
