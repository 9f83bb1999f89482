// Package suite checks the dashboard classification rules against named
// scenarios and collects pass/fail results.
//
// The built-in suites cover SPC risk mapping, threat levels, alert
// filtering, winter weather detection, and malformed-input handling.
// Additional scenarios can be supplied as YAML files; see LoadScenarioFile.
package suite
