package domain

import "strings"

var (
	actionableKeywords   = []string{"warning", "watch", "advisory"}
	actionableSeverities = map[string]bool{"severe": true, "moderate": true, "minor": true}
)

// FilterActionableAlerts keeps alerts whose event names a warning, watch, or
// advisory and whose severity is severe, moderate, or minor. Input order is
// preserved and duplicates are kept. The input slice is not modified.
func FilterActionableAlerts(alerts []AlertRecord) []AlertRecord {
	out := make([]AlertRecord, 0, len(alerts))
	for _, a := range alerts {
		if isActionable(a) {
			out = append(out, a)
		}
	}
	return out
}

func isActionable(a AlertRecord) bool {
	event := strings.ToLower(a.Event())
	if !containsAny(event, actionableKeywords...) {
		return false
	}
	return actionableSeverities[strings.ToLower(a.Severity())]
}

// IsWarningEvent reports whether an event name is a warning proper: it
// contains "warning" but neither "watch" nor "advisory".
func IsWarningEvent(event string) bool {
	e := strings.ToLower(event)
	return strings.Contains(e, "warning") && !containsAny(e, "watch", "advisory")
}

// CountWarnings counts alerts whose event is a warning proper.
func CountWarnings(alerts []AlertRecord) int {
	n := 0
	for _, a := range alerts {
		if IsWarningEvent(a.Event()) {
			n++
		}
	}
	return n
}

func containsAny(s string, substrs ...string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
