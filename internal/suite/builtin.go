package suite

import (
	"fmt"

	"github.com/couchcryptid/severe-weather-dashboard/internal/domain"
)

// BuiltIn returns the standard suites in run order.
func BuiltIn() []Suite {
	return []Suite{
		{Name: "SPC Risk Level Mapping", Run: riskMappingSuite},
		{Name: "Threat Level Calculation", Run: threatLevelSuite},
		{Name: "Alert Processing", Run: alertProcessingSuite},
		{Name: "Winter Weather Detection", Run: winterWeatherSuite},
		{Name: "Error Handling", Run: errorHandlingSuite},
	}
}

func riskMappingSuite(rec *Recorder) {
	cases := []struct {
		dn       domain.RiskCode
		expected domain.RiskLabel
	}{
		{2, domain.RiskTSTM},
		{3, domain.RiskMRGL},
		{4, domain.RiskSLGT},
		{5, domain.RiskENH},
		{6, domain.RiskMDT},
		{8, domain.RiskHIGH},
	}
	for _, tc := range cases {
		label, _ := domain.MapRiskCodeToLabel(tc.dn)
		passed := label == tc.expected
		var details string
		if !passed {
			details = fmt.Sprintf("Expected %s, got %s", tc.expected, label)
		}
		rec.Add(fmt.Sprintf("DN %d maps to %s", tc.dn, tc.expected), passed, details)
	}

	_, ok := domain.MapRiskCodeToLabel(999)
	rec.Add("Invalid DN returns no label", !ok, "Invalid DN values should return no label")
}

func threatLevelSuite(rec *Recorder) {
	cases := []struct {
		name     string
		warnings bool
		risk     domain.RiskLabel
		expected domain.ThreatLevel
	}{
		{"Warnings override SPC risk", true, domain.RiskHIGH, domain.ThreatWarning},
		{"Enhanced risk → CAUTION", false, domain.RiskENH, domain.ThreatCaution},
		{"Moderate risk → CAUTION", false, domain.RiskMDT, domain.ThreatCaution},
		{"High risk → CAUTION", false, domain.RiskHIGH, domain.ThreatCaution},
		{"Marginal risk → MONITOR", false, domain.RiskMRGL, domain.ThreatMonitor},
		{"Slight risk → MONITOR", false, domain.RiskSLGT, domain.ThreatMonitor},
		{"No threats → SAFE", false, domain.RiskNone, domain.ThreatSafe},
	}
	for _, tc := range cases {
		passed, details := expectThreat(tc.warnings, tc.risk, tc.expected)
		rec.Add(tc.name, passed, details)
	}
}

func expectThreat(warnings bool, risk domain.RiskLabel, expected domain.ThreatLevel) (bool, string) {
	got := domain.ComputeThreatLevel(warnings, risk)
	if got != expected {
		return false, fmt.Sprintf("Expected %s, got %s", expected, got)
	}
	return true, fmt.Sprintf("Result: %s", got)
}

// alertFixture mixes one of each actionable kind with a non-actionable
// statement.
func alertFixture() []domain.AlertRecord {
	return []domain.AlertRecord{
		domain.NewAlert("Severe Thunderstorm Warning", "Severe"),
		domain.NewAlert("Tornado Watch", "Moderate"),
		domain.NewAlert("Flood Advisory", "Minor"),
		domain.NewAlert("Information Statement", "Unknown"),
	}
}

func alertProcessingSuite(rec *Recorder) {
	alerts := alertFixture()

	filtered := domain.FilterActionableAlerts(alerts)
	rec.Add("Alert filtering (warnings/watches/advisories only)",
		len(filtered) == 3,
		fmt.Sprintf("Filtered %d alerts (expected 3, excluding Information Statement)", len(filtered)))

	warnings := domain.CountWarnings(alerts)
	rec.Add("Warning detection",
		warnings == 1 && domain.IsWarningEvent(alerts[0].Event()),
		fmt.Sprintf("Correctly identified %d warning(s)", warnings))

	rec.Check("No alerts handling", func() (bool, string) {
		empty := domain.FilterActionableAlerts(nil)
		return empty != nil && len(empty) == 0 && domain.CountWarnings(empty) == 0,
			"Empty alert list yields no actionable alerts"
	})
}

func winterWeatherSuite(rec *Recorder) {
	detection := []struct {
		event    string
		expected bool
	}{
		{"Winter Weather Advisory", true},
		{"Freezing Rain Advisory", true},
		{"Lake Effect Snow Advisory", true},
		{"Winter Weather Statement", true},
		{"Winter Storm Warning", true},
		{"Winter Weather Warning", true},
		{"Ice Storm Warning", true},
		{"Blizzard Warning", true},
		{"Snow Squall Warning", true},
		{"Extreme Cold Warning", true},
		{"Lake Effect Snow Warning", true},
		{"Freezing Rain Warning", true},
		{"Severe Thunderstorm Warning", false},
		{"Tornado Watch", false},
	}
	for _, tc := range detection {
		got := domain.IsWinterWeatherAlert(tc.event)
		var details string
		if got != tc.expected {
			details = fmt.Sprintf("Expected %t, got %t", tc.expected, got)
		}
		rec.Add(fmt.Sprintf("Winter alert: %q", tc.event), got == tc.expected, details)
	}

	status := []struct {
		name     string
		alerts   []domain.AlertRecord
		expected domain.WinterStatus
	}{
		{"Winter Storm Warning detection", single("Winter Storm Warning", "Severe"), domain.WinterWarning},
		{"Winter Weather Advisory detection", single("Winter Weather Advisory", "Minor"), domain.WinterAdvisory},
		{"Blizzard Warning detection", single("Blizzard Warning", "Severe"), domain.WinterWarning},
		{"Snow Squall Warning detection", single("Snow Squall Warning", "Severe"), domain.WinterWarning},
		{"Extreme Cold Warning detection", single("Extreme Cold Warning", "Severe"), domain.WinterWarning},
		{"Winter Weather Statement detection", single("Winter Weather Statement", "Minor"), domain.WinterAdvisory},
		{"Non-winter alerts ignored", single("Severe Thunderstorm Warning", "Severe"), domain.WinterNone},
		{
			"Warning dominates a preceding advisory",
			[]domain.AlertRecord{
				domain.NewAlert("Winter Weather Advisory", "Minor"),
				domain.NewAlert("Ice Storm Warning", "Severe"),
			},
			domain.WinterWarning,
		},
		{
			"Warning dominates a following advisory",
			[]domain.AlertRecord{
				domain.NewAlert("Ice Storm Warning", "Severe"),
				domain.NewAlert("Winter Weather Advisory", "Minor"),
			},
			domain.WinterWarning,
		},
		{"Event matching ignores case", single("bLiZzArD wArNiNg", "Severe"), domain.WinterWarning},
	}
	for _, tc := range status {
		passed, details := expectWinter(tc.alerts, tc.expected)
		rec.Add(tc.name, passed, details)
	}
}

func single(event, severity string) []domain.AlertRecord {
	return []domain.AlertRecord{domain.NewAlert(event, severity)}
}

func expectWinter(alerts []domain.AlertRecord, expected domain.WinterStatus) (bool, string) {
	got := domain.DetectWinterWeather(alerts)
	if got != expected {
		return false, fmt.Sprintf("Expected %s, got %s", expected, got)
	}
	return true, ""
}

func errorHandlingSuite(rec *Recorder) {
	rec.Check("Missing/empty data handling", func() (bool, string) {
		alerts, err := domain.DecodeAlertCollection([]byte(`{"features":[]}`))
		return err == nil && len(alerts) == 0, "Empty features array should be handled gracefully"
	})

	rec.Check("Invalid JSON structure handling", func() (bool, string) {
		alerts, err := domain.DecodeAlertCollection([]byte(`{"wrong":"structure"}`))
		return err == nil && len(alerts) == 0, "Missing expected properties should be handled gracefully"
	})

	rec.Check("API error response handling", func() (bool, string) {
		alerts, err := domain.DecodeAlertCollection([]byte(
			`{"type":"https://api.weather.gov/problems/UnexpectedProblem","title":"Unexpected Problem","status":500,"detail":"An unexpected problem has occurred."}`))
		if err != nil {
			return false, fmt.Sprintf("unexpected error: %v", err)
		}
		return len(alerts) == 0, fmt.Sprintf("Problem response (status 500) should yield no alerts, got %d", len(alerts))
	})

	rec.Check("Malformed alert records degrade to defaults", func() (bool, string) {
		alerts, err := domain.DecodeAlertCollection([]byte(
			`{"features":[null,42,"text",{"properties":"x"},{"properties":{"event":7,"severity":null}}]}`))
		if err != nil {
			return false, fmt.Sprintf("unexpected error: %v", err)
		}
		winter := domain.DetectWinterWeather(alerts)
		actionable := domain.FilterActionableAlerts(alerts)
		ok := len(alerts) == 5 && winter == domain.WinterNone && len(actionable) == 0
		return ok, fmt.Sprintf("Decoded %d records, winter status %s, %d actionable", len(alerts), winter, len(actionable))
	})
}
