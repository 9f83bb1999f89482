package domain

import "strings"

// WinterStatus summarizes winter weather signals across a set of alerts.
type WinterStatus string

const (
	WinterWarning  WinterStatus = "warning"
	WinterAdvisory WinterStatus = "advisory"
	WinterNone     WinterStatus = "none"
)

// winterSynonyms lists lowercase NWS event phrases treated as winter weather.
var winterSynonyms = [...]string{
	// Advisories and statements
	"winter weather advisory",
	"freezing rain advisory",
	"snow advisory",
	"wind chill advisory",
	"frost advisory",
	"lake effect snow advisory",
	"winter weather statement",
	// Warnings
	"winter storm warning",
	"winter weather warning",
	"ice storm warning",
	"blizzard warning",
	"wind chill warning",
	"freeze warning",
	"freezing rain warning",
	"snow squall warning",
	"lake effect snow warning",
	"extreme cold warning",
	"hard freeze warning",
	// Watches
	"winter storm watch",
	"ice storm watch",
	"blizzard watch",
	"wind chill watch",
	"extreme cold watch",
	"freeze watch",
	"freezing rain watch",
	"lake effect snow watch",
}

// WinterSynonyms returns a copy of the winter weather phrase list in order.
func WinterSynonyms() []string {
	out := make([]string, len(winterSynonyms))
	copy(out, winterSynonyms[:])
	return out
}

// IsWinterWeatherAlert reports whether an event name contains any winter
// weather phrase, ignoring case. Empty names are never winter weather.
func IsWinterWeatherAlert(event string) bool {
	if event == "" {
		return false
	}
	e := strings.ToLower(event)
	for _, phrase := range winterSynonyms {
		if strings.Contains(e, phrase) {
			return true
		}
	}
	return false
}

// ClassifyWinterEvent returns the tier of a single event name: WinterWarning
// for a warning proper, WinterAdvisory for advisories, statements and
// watches, WinterNone for anything that is not winter weather.
func ClassifyWinterEvent(event string) WinterStatus {
	if !IsWinterWeatherAlert(event) {
		return WinterNone
	}
	e := strings.ToLower(event)
	demoted := containsAny(e, "watch", "advisory", "statement")
	switch {
	case strings.Contains(e, "warning") && !demoted:
		return WinterWarning
	case demoted:
		return WinterAdvisory
	default:
		return WinterNone
	}
}

// DetectWinterWeather scans alerts for winter weather. Any warning-tier event
// yields WinterWarning regardless of position; otherwise any advisory-tier
// event yields WinterAdvisory. Records without properties are skipped.
func DetectWinterWeather(alerts []AlertRecord) WinterStatus {
	if len(alerts) == 0 {
		return WinterNone
	}

	var hasWarning, hasAdvisory bool
	for _, a := range alerts {
		if a.Properties == nil {
			continue
		}
		switch ClassifyWinterEvent(a.Event()) {
		case WinterWarning:
			hasWarning = true
		case WinterAdvisory:
			hasAdvisory = true
		}
	}

	switch {
	case hasWarning:
		return WinterWarning
	case hasAdvisory:
		return WinterAdvisory
	default:
		return WinterNone
	}
}
