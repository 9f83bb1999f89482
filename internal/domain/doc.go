// Package domain holds the weather-alert classification rules shared by the
// severe weather dashboard and its test harness.
//
// # Data Sources
//
// Alert records follow the National Weather Service (NWS) active alerts feed,
// a GeoJSON FeatureCollection served by https://api.weather.gov/alerts/active.
// Only two properties matter for classification:
//
//	"event"     free text, e.g. "Severe Thunderstorm Warning", "Tornado Watch"
//	"severity"  CAP severity, usually Extreme, Severe, Moderate, Minor, Unknown
//
// Neither field is validated. Missing or non-string values decode to "".
//
// Forecast risk comes from the NOAA Storm Prediction Center (SPC) convective
// outlook. Outlook polygons carry a DN value that encodes the categorical risk:
//
//	2 TSTM  general thunderstorms
//	3 MRGL  marginal
//	4 SLGT  slight
//	5 ENH   enhanced
//	6 MDT   moderate
//	8 HIGH  high
//
// DN 1 and 7 are unused by SPC and have no label.
//
// # Classification Rules
//
// Threat level (first match wins):
//
//	active warnings present        WARNING
//	risk ENH, MDT, HIGH            CAUTION
//	risk MRGL, SLGT                MONITOR
//	anything else                  SAFE
//
// Actionable alerts: event contains "warning", "watch", or "advisory" and
// severity is exactly severe, moderate, or minor (case-insensitive).
//
// Winter weather: an event is winter weather if it contains one of the phrases
// returned by [WinterSynonyms]. A winter event is warning-tier when it
// contains "warning" and none of "watch", "advisory", "statement";
// otherwise it is advisory-tier when it contains any of those three.
// Across a list of alerts, warning-tier beats advisory-tier.
//
// # Failure Policy
//
// Every rule is a total function. Unknown codes, missing fields, and malformed
// records degrade to the "no signal" value (absent label, SAFE, none) rather
// than returning an error.
package domain
