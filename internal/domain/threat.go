package domain

// ThreatLevel is the dashboard-facing urgency category.
type ThreatLevel string

const (
	ThreatWarning ThreatLevel = "WARNING"
	ThreatCaution ThreatLevel = "CAUTION"
	ThreatMonitor ThreatLevel = "MONITOR"
	ThreatSafe    ThreatLevel = "SAFE"
)

// ComputeThreatLevel derives the threat level from live warnings and the
// forecast risk label. Live warnings always win; forecast risk only matters
// when none are active. Pass RiskNone when no label is available.
func ComputeThreatLevel(hasActiveWarnings bool, label RiskLabel) ThreatLevel {
	if hasActiveWarnings {
		return ThreatWarning
	}
	switch label {
	case RiskENH, RiskMDT, RiskHIGH:
		return ThreatCaution
	case RiskMRGL, RiskSLGT:
		return ThreatMonitor
	default:
		return ThreatSafe
	}
}
