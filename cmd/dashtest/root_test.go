package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/couchcryptid/severe-weather-dashboard/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDashtest_AllPassWithMissingPage(t *testing.T) {
	page := filepath.Join(t.TempDir(), "test-dashboard.html")

	out, err := execute(t, "--color", "never", "--test-page", page)
	require.NoError(t, err)

	assert.Contains(t, out, "Note: Test file not found: "+page)
	assert.Contains(t, out, "Testing SPC Risk Level Mapping...")
	assert.Contains(t, out, "Testing Error Handling...")
	assert.Contains(t, out, "Total Tests: 45")
	assert.Contains(t, out, "✓ All tests passed!")
}

func TestDashtest_PresentPageHasNoNote(t *testing.T) {
	page := filepath.Join(t.TempDir(), "test-dashboard.html")
	require.NoError(t, os.WriteFile(page, []byte("<html></html>"), 0o600))

	out, err := execute(t, "--color", "never", "--test-page", page)
	require.NoError(t, err)
	assert.NotContains(t, out, "Note:")
}

func TestDashtest_FailingScenarioReturnsError(t *testing.T) {
	out, err := execute(t, "--color", "never",
		"--test-page", filepath.Join(t.TempDir(), "missing.html"),
		"--scenarios", filepath.Join("testdata", "failing.yaml"))

	require.ErrorIs(t, err, errChecksFailed)
	assert.Contains(t, out, "Testing Deliberate regression...")
	assert.Contains(t, out, "Failed: 1")
	assert.Contains(t, out, "✗ Some tests failed")
}

func TestDashtest_JSONFormat(t *testing.T) {
	out, err := execute(t, "--format", "json", "--test-page", filepath.Join(t.TempDir(), "missing.html"))
	require.NoError(t, err)

	var doc struct {
		Total   int      `json:"total"`
		Fail    int      `json:"fail"`
		Success bool     `json:"success"`
		Notes   []string `json:"notes"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, 45, doc.Total)
	assert.Zero(t, doc.Fail)
	assert.True(t, doc.Success)
	assert.Len(t, doc.Notes, 1)
}

func TestDashtest_InvalidFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"color", []string{"--color", "rainbow"}, "invalid color mode"},
		{"format", []string{"--format", "xml"}, "unknown report format"},
		{"scenario file", []string{"--scenarios", "testdata/absent.yaml"}, "read scenario file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.NotErrorIs(t, err, errChecksFailed)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDashtest_TestPageDefault(t *testing.T) {
	t.Run("unset", func(t *testing.T) {
		t.Setenv("TEST_PAGE", "")
		flag := newRootCmd().Flags().Lookup("test-page")
		require.NotNil(t, flag)
		assert.Equal(t, config.DefaultTestPage, flag.DefValue)
	})

	t.Run("from env", func(t *testing.T) {
		page := filepath.Join(t.TempDir(), "dash.html")
		t.Setenv("TEST_PAGE", page)
		assert.Equal(t, page, newRootCmd().Flags().Lookup("test-page").DefValue)
	})
}
