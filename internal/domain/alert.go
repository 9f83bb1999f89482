package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// AlertRecord is a single feature from an NWS alerts FeatureCollection.
// Properties is nil when the feature is missing or malformed.
type AlertRecord struct {
	ID         string           `json:"id,omitempty"`
	Properties *AlertProperties `json:"properties"`
}

// AlertProperties carries the alert fields classification reads.
type AlertProperties struct {
	Event    FlexString `json:"event"`
	Severity FlexString `json:"severity"`
	Headline FlexString `json:"headline,omitempty"`
	AreaDesc FlexString `json:"areaDesc,omitempty"`
}

// Event returns the event name, or "" when properties are missing.
func (a AlertRecord) Event() string {
	if a.Properties == nil {
		return ""
	}
	return string(a.Properties.Event)
}

// Severity returns the CAP severity, or "" when properties are missing.
func (a AlertRecord) Severity() string {
	if a.Properties == nil {
		return ""
	}
	return string(a.Properties.Severity)
}

// NewAlert builds a record with the given event and severity.
func NewAlert(event, severity string) AlertRecord {
	return AlertRecord{Properties: &AlertProperties{
		Event:    FlexString(event),
		Severity: FlexString(severity),
	}}
}

// UnmarshalJSON never fails on shape: anything that is not an object becomes
// an empty record, and non-object properties become nil.
func (a *AlertRecord) UnmarshalJSON(data []byte) error {
	*a = AlertRecord{}
	if !isJSONObject(data) {
		return nil
	}

	var raw struct {
		ID         FlexString      `json:"id"`
		Properties json.RawMessage `json:"properties"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil //nolint:nilerr // malformed features degrade to an empty record
	}
	a.ID = string(raw.ID)

	if !isJSONObject(raw.Properties) {
		return nil
	}
	var props AlertProperties
	if err := json.Unmarshal(raw.Properties, &props); err != nil {
		return nil //nolint:nilerr // FlexString fields cannot fail; keep nil properties otherwise
	}
	a.Properties = &props
	return nil
}

// FlexString decodes JSON strings as-is and any other JSON value as "".
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexString(s)
		return nil
	}
	*f = ""
	return nil
}

// DecodeAlertCollection parses an NWS alerts document. It fails only on
// invalid JSON or a non-object document; a missing or non-array "features"
// member yields no alerts.
func DecodeAlertCollection(data []byte) ([]AlertRecord, error) {
	var doc struct {
		Features json.RawMessage `json:"features"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode alert collection: %w", err)
	}
	return decodeFeatures(doc.Features), nil
}

func decodeFeatures(raw json.RawMessage) []AlertRecord {
	if !isJSONArray(raw) {
		return []AlertRecord{}
	}
	var alerts []AlertRecord
	if err := json.Unmarshal(raw, &alerts); err != nil {
		return []AlertRecord{}
	}
	return alerts
}

func isJSONObject(data []byte) bool {
	data = bytes.TrimSpace(data)
	return len(data) > 0 && data[0] == '{'
}

func isJSONArray(data []byte) bool {
	data = bytes.TrimSpace(data)
	return len(data) > 0 && data[0] == '['
}
