// Command genmock turns an NWS active-alerts GeoJSON download into snapshot
// and dashboard event fixtures. It runs the real classification rules so the
// fixtures match what the classifier publishes.
//
// Usage:
//
//	curl -s https://api.weather.gov/alerts/active?area=OK > ok_alerts.json
//	go run ./cmd/genmock \
//	  -alerts ok_alerts.json -zone OKZ025 -dn 5 \
//	  -snapshot-out internal/pipeline/testdata/okz025_snapshot.json \
//	  -event-out internal/pipeline/testdata/okz025_event.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/couchcryptid/severe-weather-dashboard/internal/domain"
	"github.com/jonboulle/clockwork"
)

// fixtureTime stamps ProcessedAt so regenerated fixtures diff cleanly.
var fixtureTime = time.Date(2024, time.April, 27, 6, 0, 0, 0, time.UTC)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	alertsPath := flag.String("alerts", "", "NWS alerts GeoJSON file")
	zone := flag.String("zone", "", "forecast zone the snapshot describes")
	dn := flag.Int("dn", 0, "SPC outlook DN covering the zone (0 for none)")
	snapshotOut := flag.String("snapshot-out", "", "output path for the snapshot fixture")
	eventOut := flag.String("event-out", "", "output path for the dashboard event fixture")
	flag.Parse()

	if *alertsPath == "" || *zone == "" || *snapshotOut == "" || *eventOut == "" {
		flag.Usage()
		return fmt.Errorf("missing required flags: -alerts, -zone, -snapshot-out, -event-out")
	}

	domain.SetClock(clockwork.NewFakeClockAt(fixtureTime))
	defer domain.SetClock(nil)

	data, err := os.ReadFile(*alertsPath)
	if err != nil {
		return fmt.Errorf("read alerts: %w", err)
	}

	snapshot, err := buildSnapshot(data, *zone, domain.RiskCode(*dn))
	if err != nil {
		return err
	}
	log.Printf("%s: %d alerts", snapshot.Zone, len(snapshot.Alerts))

	if err := writeJSON(*snapshotOut, snapshot); err != nil {
		return fmt.Errorf("writing snapshot fixture: %w", err)
	}
	log.Printf("wrote snapshot fixture: %s", *snapshotOut)

	assessment := domain.Assess(snapshot)
	if err := writeJSON(*eventOut, domain.NewDashboardEvent(snapshot.Zone, assessment)); err != nil {
		return fmt.Errorf("writing event fixture: %w", err)
	}
	log.Printf("wrote event fixture: %s", *eventOut)

	printStats(os.Stdout, snapshot, assessment)
	return nil
}

func buildSnapshot(data []byte, zone string, dn domain.RiskCode) (domain.AlertSnapshot, error) {
	alerts, err := domain.DecodeAlertCollection(data)
	if err != nil {
		return domain.AlertSnapshot{}, err
	}
	return domain.AlertSnapshot{Zone: zone, RiskCode: dn, Alerts: alerts}, nil
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o600)
}

// statsResult holds per-snapshot counts for printStats.
type statsResult struct {
	eventCounts    map[string]int
	severityCounts map[string]int
	winterTiers    map[domain.WinterStatus]int
	missingProps   int
}

func collectStats(alerts []domain.AlertRecord) statsResult {
	s := statsResult{
		eventCounts:    map[string]int{},
		severityCounts: map[string]int{},
		winterTiers:    map[domain.WinterStatus]int{},
	}
	for _, a := range alerts {
		if a.Properties == nil {
			s.missingProps++
			continue
		}
		s.eventCounts[a.Event()]++
		s.severityCounts[strings.ToLower(a.Severity())]++
		s.winterTiers[domain.ClassifyWinterEvent(a.Event())]++
	}
	return s
}

type eventCount struct {
	event string
	count int
}

func printStats(w io.Writer, snapshot domain.AlertSnapshot, a domain.Assessment) {
	stats := collectStats(snapshot.Alerts)

	fmt.Fprintln(w, "\n=== Stats for updating test assertions ===")
	fmt.Fprintf(w, "Zone: %s\n", snapshot.Zone)
	fmt.Fprintf(w, "Total alerts: %d (without properties: %d)\n", len(snapshot.Alerts), stats.missingProps)
	fmt.Fprintf(w, "By severity: extreme=%d, severe=%d, moderate=%d, minor=%d, unknown=%d\n",
		stats.severityCounts["extreme"], stats.severityCounts["severe"],
		stats.severityCounts["moderate"], stats.severityCounts["minor"],
		stats.severityCounts["unknown"])
	fmt.Fprintf(w, "Actionable: %d\n", len(a.Actionable))
	fmt.Fprintf(w, "Warnings: %d\n", a.WarningCount)
	fmt.Fprintf(w, "Winter tiers: warning=%d, advisory=%d\n",
		stats.winterTiers[domain.WinterWarning], stats.winterTiers[domain.WinterAdvisory])
	fmt.Fprintf(w, "Risk label: %s\n", a.RiskLabel)
	fmt.Fprintf(w, "Threat level: %s\n", a.ThreatLevel)
	fmt.Fprintf(w, "Winter status: %s\n", a.WinterStatus)

	printEventBreakdown(w, stats)
}

func printEventBreakdown(w io.Writer, stats statsResult) {
	ec := make([]eventCount, 0, len(stats.eventCounts))
	for e, c := range stats.eventCounts {
		ec = append(ec, eventCount{e, c})
	}
	sort.Slice(ec, func(i, j int) bool {
		if ec[i].count != ec[j].count {
			return ec[i].count > ec[j].count
		}
		return ec[i].event < ec[j].event
	})

	fmt.Fprintf(w, "\nEvents (%d):\n", len(ec))
	for _, e := range ec {
		fmt.Fprintf(w, "  %s=%d\n", e.event, e.count)
	}
}
