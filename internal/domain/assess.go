package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Assessment is the combined result of every classification rule for one
// snapshot.
type Assessment struct {
	RiskLabel    RiskLabel
	ThreatLevel  ThreatLevel
	WinterStatus WinterStatus
	Actionable   []AlertRecord
	WarningCount int
}

// Assess runs the classification rules over a snapshot. Active warnings are
// actionable alerts that are warnings proper; watches and advisories never
// escalate to WARNING on their own.
func Assess(s AlertSnapshot) Assessment {
	label, _ := MapRiskCodeToLabel(s.RiskCode)
	actionable := FilterActionableAlerts(s.Alerts)
	warnings := CountWarnings(actionable)

	return Assessment{
		RiskLabel:    label,
		ThreatLevel:  ComputeThreatLevel(warnings > 0, label),
		WinterStatus: DetectWinterWeather(s.Alerts),
		Actionable:   actionable,
		WarningCount: warnings,
	}
}

// ParseAlertSnapshot decodes a snapshot message. Alert features and spc_dn
// decode leniently; only invalid JSON is an error.
func ParseAlertSnapshot(data []byte) (AlertSnapshot, error) {
	var doc struct {
		Zone     string          `json:"zone"`
		RiskCode RiskCode        `json:"spc_dn"`
		Features json.RawMessage `json:"features"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return AlertSnapshot{}, fmt.Errorf("parse alert snapshot: %w", err)
	}
	return AlertSnapshot{
		Zone:     doc.Zone,
		RiskCode: doc.RiskCode,
		Alerts:   decodeFeatures(doc.Features),
	}, nil
}

// NewDashboardEvent converts an assessment into the published dashboard
// shape, stamping ProcessedAt from the package clock.
func NewDashboardEvent(zone string, a Assessment) DashboardEvent {
	alerts := make([]ActionableAlert, 0, len(a.Actionable))
	for _, rec := range a.Actionable {
		var headline string
		if rec.Properties != nil {
			headline = string(rec.Properties.Headline)
		}
		alerts = append(alerts, ActionableAlert{
			Event:    rec.Event(),
			Severity: rec.Severity(),
			Headline: headline,
			Warning:  IsWarningEvent(rec.Event()),
		})
	}

	return DashboardEvent{
		Zone:         zone,
		RiskLabel:    a.RiskLabel,
		ThreatLevel:  a.ThreatLevel,
		WinterStatus: a.WinterStatus,
		WarningCount: a.WarningCount,
		Alerts:       alerts,
		ProcessedAt:  clock.Now().UTC(),
	}
}

// SerializeDashboardEvent marshals a dashboard event into an OutputEvent keyed
// by zone.
func SerializeDashboardEvent(e DashboardEvent) (OutputEvent, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return OutputEvent{}, fmt.Errorf("serialize dashboard event: %w", err)
	}
	return OutputEvent{
		Key:   []byte(e.Zone),
		Value: data,
		Headers: map[string]string{
			"threat_level":  string(e.ThreatLevel),
			"winter_status": string(e.WinterStatus),
			"processed_at":  e.ProcessedAt.Format(time.RFC3339),
		},
	}, nil
}
