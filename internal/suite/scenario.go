package suite

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/couchcryptid/severe-weather-dashboard/internal/domain"
	"gopkg.in/yaml.v3"
)

// Scenario kinds accepted in scenario files.
const (
	KindRisk   = "risk"
	KindThreat = "threat"
	KindFilter = "filter"
	KindWinter = "winter"
)

// ScenarioFile is the YAML document layout:
//
//	name: Plains outbreak
//	scenarios:
//	  - kind: risk
//	    dn: 7
//	    expect: ""
//	  - kind: threat
//	    risk: ENH
//	    expect: CAUTION
//	  - kind: filter
//	    alerts:
//	      - {event: Tornado Warning, severity: Extreme}
//	    expect: "0"
//	  - kind: winter
//	    event: Blizzard Warning
//	    expect: "true"
type ScenarioFile struct {
	Name      string     `yaml:"name"`
	Scenarios []Scenario `yaml:"scenarios"`
}

// Scenario is one expectation against a classification rule. Expect is
// compared as text: a risk label ("" for none), a threat level, an
// actionable count, a winter status, or "true"/"false" when a winter
// scenario names a single Event.
type Scenario struct {
	Name     string          `yaml:"name"`
	Kind     string          `yaml:"kind"`
	DN       int             `yaml:"dn"`
	Warnings bool            `yaml:"warnings"`
	Risk     string          `yaml:"risk"`
	Event    string          `yaml:"event"`
	Alerts   []ScenarioAlert `yaml:"alerts"`
	Expect   string          `yaml:"expect"`
}

// ScenarioAlert is the YAML form of an alert record.
type ScenarioAlert struct {
	Event    string `yaml:"event"`
	Severity string `yaml:"severity"`
}

// LoadScenarioFile reads a YAML scenario file and returns it as a suite.
// The suite is named after the file's name field, falling back to the
// file's base name.
func LoadScenarioFile(path string) (Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Suite{}, fmt.Errorf("read scenario file: %w", err)
	}
	return ParseScenarios(data, strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
}

// ParseScenarios decodes a scenario document. Unknown kinds, unknown risk
// labels, and winter scenarios naming both an event and alerts are rejected
// up front so a typo never turns into a silent pass.
func ParseScenarios(data []byte, fallbackName string) (Suite, error) {
	var file ScenarioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Suite{}, fmt.Errorf("parse scenario file: %w", err)
	}
	if len(file.Scenarios) == 0 {
		return Suite{}, errors.New("scenario file has no scenarios")
	}

	for i := range file.Scenarios {
		sc := &file.Scenarios[i]
		sc.Kind = strings.ToLower(strings.TrimSpace(sc.Kind))
		if err := sc.validate(); err != nil {
			return Suite{}, fmt.Errorf("scenario %d: %w", i+1, err)
		}
		if sc.Name == "" {
			sc.Name = fmt.Sprintf("%s scenario %d", sc.Kind, i+1)
		}
	}

	name := file.Name
	if name == "" {
		name = fallbackName
	}
	scenarios := file.Scenarios
	return Suite{
		Name: name,
		Run: func(rec *Recorder) {
			for _, sc := range scenarios {
				rec.Check(sc.Name, sc.evaluate)
			}
		},
	}, nil
}

func (s Scenario) validate() error {
	switch s.Kind {
	case KindRisk, KindFilter:
	case KindThreat:
		if strings.TrimSpace(s.Risk) != "" {
			if _, ok := domain.ParseRiskLabel(s.Risk); !ok {
				return fmt.Errorf("unknown risk label %q", s.Risk)
			}
		}
	case KindWinter:
		if s.Event != "" && len(s.Alerts) > 0 {
			return errors.New("winter scenario sets both event and alerts")
		}
	default:
		return fmt.Errorf("unknown kind %q", s.Kind)
	}
	return nil
}

func (s Scenario) evaluate() (bool, string) {
	var got string
	switch s.Kind {
	case KindRisk:
		label, _ := domain.MapRiskCodeToLabel(domain.RiskCode(s.DN))
		got = string(label)
	case KindThreat:
		label, _ := domain.ParseRiskLabel(s.Risk)
		got = string(domain.ComputeThreatLevel(s.Warnings, label))
	case KindFilter:
		got = strconv.Itoa(len(domain.FilterActionableAlerts(s.records())))
	case KindWinter:
		if s.Event != "" {
			got = strconv.FormatBool(domain.IsWinterWeatherAlert(s.Event))
		} else {
			got = string(domain.DetectWinterWeather(s.records()))
		}
	}

	want := strings.TrimSpace(s.Expect)
	if !strings.EqualFold(got, want) {
		return false, fmt.Sprintf("Expected %q, got %q", want, got)
	}
	return true, ""
}

func (s Scenario) records() []domain.AlertRecord {
	out := make([]domain.AlertRecord, len(s.Alerts))
	for i, a := range s.Alerts {
		out[i] = domain.NewAlert(a.Event, a.Severity)
	}
	return out
}
