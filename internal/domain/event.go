package domain

import (
	"context"
	"time"
)

// AlertSnapshot is the message the upstream collector publishes for one
// forecast zone: the zone's active NWS alerts plus the SPC outlook DN
// covering it. A zero RiskCode means no outlook polygon.
type AlertSnapshot struct {
	Zone     string        `json:"zone"`
	RiskCode RiskCode      `json:"spc_dn,omitempty"`
	Alerts   []AlertRecord `json:"features"`
}

// RawEvent represents an unprocessed message from the source topic.
type RawEvent struct {
	Key       []byte
	Value     []byte
	Headers   map[string]string
	Topic     string
	Partition int
	Offset    int64
	Timestamp time.Time
	Commit    func(ctx context.Context) error
}

// ActionableAlert is the trimmed alert shape the dashboard displays.
type ActionableAlert struct {
	Event    string `json:"event"`
	Severity string `json:"severity"`
	Headline string `json:"headline,omitempty"`
	Warning  bool   `json:"warning"`
}

// DashboardEvent is the assessed state of one zone, destined for the sink topic.
type DashboardEvent struct {
	Zone         string            `json:"zone"`
	RiskLabel    RiskLabel         `json:"risk_label,omitempty"`
	ThreatLevel  ThreatLevel       `json:"threat_level"`
	WinterStatus WinterStatus      `json:"winter_status"`
	WarningCount int               `json:"warning_count"`
	Alerts       []ActionableAlert `json:"alerts"`
	ProcessedAt  time.Time         `json:"processed_at"`
}

// OutputEvent is the serialized form destined for the sink topic.
type OutputEvent struct {
	Key     []byte
	Value   []byte
	Headers map[string]string
}
