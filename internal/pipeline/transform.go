package pipeline

import (
	"context"
	"log/slog"

	"github.com/couchcryptid/severe-weather-dashboard/internal/domain"
)

// AlertTransformer implements Transformer by running the dashboard
// classification rules over each snapshot.
type AlertTransformer struct {
	logger *slog.Logger
}

// NewTransformer creates an AlertTransformer.
func NewTransformer(logger *slog.Logger) *AlertTransformer {
	return &AlertTransformer{logger: logger}
}

func (t *AlertTransformer) Transform(_ context.Context, raw domain.RawEvent) (domain.OutputEvent, error) {
	snapshot, err := domain.ParseAlertSnapshot(raw.Value)
	if err != nil {
		return domain.OutputEvent{}, err
	}
	if snapshot.Zone == "" {
		snapshot.Zone = string(raw.Key)
	}

	assessment := domain.Assess(snapshot)
	event := domain.NewDashboardEvent(snapshot.Zone, assessment)

	t.logger.Debug("snapshot assessed",
		"zone", event.Zone,
		"alerts", len(snapshot.Alerts),
		"actionable", len(event.Alerts),
		"threat_level", event.ThreatLevel,
		"winter_status", event.WinterStatus,
	)

	return domain.SerializeDashboardEvent(event)
}
