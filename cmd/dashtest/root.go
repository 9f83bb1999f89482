package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/couchcryptid/severe-weather-dashboard/internal/config"
	"github.com/couchcryptid/severe-weather-dashboard/internal/observability"
	"github.com/couchcryptid/severe-weather-dashboard/internal/report"
	"github.com/couchcryptid/severe-weather-dashboard/internal/suite"
	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
)

// errChecksFailed signals a completed run with failures; the report has
// already been printed.
var errChecksFailed = errors.New("one or more checks failed")

type options struct {
	testPage  string
	format    string
	color     string
	scenarios []string
	logLevel  string
}

func newRootCmd() *cobra.Command {
	opts := options{}
	cmd := &cobra.Command{
		Use:   "dashtest",
		Short: "Check the dashboard's alert classification rules",
		Long: `Run the built-in classification suites (SPC risk mapping, threat levels,
alert filtering, winter weather detection, error handling) plus any YAML
scenario files, then print a summary.

A missing test page is reported as a note; the logic checks still run.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDashtest(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.testPage, "test-page", sharedcfg.EnvOrDefault("TEST_PAGE", config.DefaultTestPage), "dashboard test page expected alongside the checks")
	flags.StringVarP(&opts.format, "format", "f", "text", "report format: text or json")
	flags.StringVar(&opts.color, "color", string(report.ColorAuto), "colorize output: auto, always, or never")
	flags.StringArrayVarP(&opts.scenarios, "scenarios", "s", nil, "YAML scenario file to run as an extra suite (repeatable)")
	flags.StringVar(&opts.logLevel, "log-level", sharedcfg.EnvOrDefault("LOG_LEVEL", "warn"), "diagnostic log level written to stderr")

	return cmd
}

func runDashtest(stdout, stderr io.Writer, opts options) error {
	mode, err := report.ParseColorMode(opts.color)
	if err != nil {
		return err
	}
	reporter, err := report.New(opts.format, stdout, mode)
	if err != nil {
		return err
	}

	suites := suite.BuiltIn()
	for _, path := range opts.scenarios {
		s, err := suite.LoadScenarioFile(path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		suites = append(suites, s)
	}

	if _, err := os.Stat(opts.testPage); err != nil {
		reporter.MissingTestPage(opts.testPage)
	}

	logger := observability.NewLoggerTo(stderr, opts.logLevel, "text")
	reporter.Start()
	results := suite.NewRunner(clockwork.NewRealClock(), logger, suites...).Run(reporter)
	logger.Debug("run complete", "total", results.Total, "failed", results.Fail, "duration", results.Duration)

	if err := reporter.Summary(results); err != nil {
		return err
	}
	if report.ExitCode(results) != 0 {
		return errChecksFailed
	}
	return nil
}
