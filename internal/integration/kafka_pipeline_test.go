//go:build integration

package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/couchcryptid/severe-weather-dashboard/internal/adapter/kafka"
	"github.com/couchcryptid/severe-weather-dashboard/internal/config"
	"github.com/couchcryptid/severe-weather-dashboard/internal/domain"
	"github.com/couchcryptid/severe-weather-dashboard/internal/observability"
	"github.com/couchcryptid/severe-weather-dashboard/internal/pipeline"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSourceTopic = "test-alert-snapshots"
	testSinkTopic   = "test-dashboard-assessments"
)

// assessedMessage holds a dashboard event read back from the sink topic.
type assessedMessage struct {
	Event   domain.DashboardEvent
	Key     string
	Headers map[string]string
}

func readAssessed(ctx context.Context, t *testing.T, consumer *kafkago.Reader) assessedMessage {
	t.Helper()
	readCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	msg, err := consumer.ReadMessage(readCtx)
	require.NoError(t, err, "read from sink topic")

	headers := make(map[string]string, len(msg.Headers))
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	var event domain.DashboardEvent
	require.NoError(t, json.Unmarshal(msg.Value, &event), "unmarshal sink message")

	return assessedMessage{Event: event, Key: string(msg.Key), Headers: headers}
}

// loadSnapshots reads the shared pipeline fixture, one raw message per zone.
func loadSnapshots(t *testing.T) []json.RawMessage {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "pipeline", "testdata", "snapshots.json"))
	require.NoError(t, err)

	var snapshots []json.RawMessage
	require.NoError(t, json.Unmarshal(data, &snapshots))
	return snapshots
}

func testConfig(broker, group string) *config.Config {
	return &config.Config{
		KafkaBrokers:       []string{broker},
		KafkaSourceTopic:   testSourceTopic,
		KafkaSinkTopic:     testSinkTopic,
		KafkaGroupID:       fmt.Sprintf("%s-%d", group, time.Now().UnixNano()),
		BatchFlushInterval: 2 * time.Second,
	}
}

func sinkConsumer(t *testing.T, broker string) *kafkago.Reader {
	t.Helper()
	consumer := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     []string{broker},
		Topic:       testSinkTopic,
		GroupID:     fmt.Sprintf("test-sink-%d", time.Now().UnixNano()),
		StartOffset: kafkago.FirstOffset,
	})
	t.Cleanup(func() { _ = consumer.Close() })
	return consumer
}

func publish(ctx context.Context, t *testing.T, broker string, msgs ...kafkago.Message) {
	t.Helper()
	producer := &kafkago.Writer{Addr: kafkago.TCP(broker), Topic: testSourceTopic}
	t.Cleanup(func() { _ = producer.Close() })
	require.NoError(t, producer.WriteMessages(ctx, msgs...))
}

// TestKafkaReaderWriter round-trips one snapshot through the adapters.
func TestKafkaReaderWriter(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	broker := startKafka(ctx, t)
	createTopic(t, broker, testSourceTopic)
	createTopic(t, broker, testSinkTopic)
	cfg := testConfig(broker, "test-reader")

	payload := loadSnapshots(t)[0]
	publish(ctx, t, broker, kafkago.Message{Key: []byte("OKZ025"), Value: payload})

	reader := kafka.NewReader(cfg, discardLogger())
	t.Cleanup(func() { _ = reader.Close() })

	batch, err := reader.ExtractBatch(ctx, 1)
	require.NoError(t, err)
	require.Len(t, batch, 1)

	raw := batch[0]
	assert.Equal(t, []byte("OKZ025"), raw.Key)
	assert.JSONEq(t, string(payload), string(raw.Value))
	assert.Equal(t, testSourceTopic, raw.Topic)
	require.NotNil(t, raw.Commit, "commit callback should be set")
	require.NoError(t, raw.Commit(ctx))

	out, err := pipeline.NewTransformer(discardLogger()).Transform(ctx, raw)
	require.NoError(t, err)

	writer := kafka.NewWriter(cfg, discardLogger())
	t.Cleanup(func() { _ = writer.Close() })
	require.NoError(t, writer.LoadBatch(ctx, []domain.OutputEvent{out}))

	am := readAssessed(ctx, t, sinkConsumer(t, broker))
	assert.Equal(t, "OKZ025", am.Key)
	assert.Equal(t, "WARNING", am.Headers["threat_level"])
	assert.Equal(t, "none", am.Headers["winter_status"])
	_, err = time.Parse(time.RFC3339, am.Headers["processed_at"])
	assert.NoError(t, err, "processed_at should be valid RFC3339")

	assert.Equal(t, domain.RiskMDT, am.Event.RiskLabel)
	assert.Equal(t, 1, am.Event.WarningCount)
	assert.Len(t, am.Event.Alerts, 2)
}

// TestPipelineEndToEnd runs every fixture zone through Reader, Transformer,
// and Writer against a real broker.
func TestPipelineEndToEnd(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	broker := startKafka(ctx, t)
	createTopic(t, broker, testSourceTopic)
	createTopic(t, broker, testSinkTopic)
	cfg := testConfig(broker, "test-pipeline")

	snapshots := loadSnapshots(t)
	msgs := make([]kafkago.Message, 0, len(snapshots))
	for _, s := range snapshots {
		msgs = append(msgs, kafkago.Message{Value: s})
	}
	publish(ctx, t, broker, msgs...)

	reader := kafka.NewReader(cfg, discardLogger())
	t.Cleanup(func() { _ = reader.Close() })
	writer := kafka.NewWriter(cfg, discardLogger())
	t.Cleanup(func() { _ = writer.Close() })

	metrics := observability.NewMetricsForTesting()
	p := pipeline.New(reader, pipeline.NewTransformer(discardLogger()), writer, discardLogger(), metrics, 50)

	pipelineCtx, pipelineCancel := context.WithCancel(ctx)
	errCh := make(chan error, 1)
	go func() { errCh <- p.Run(pipelineCtx) }()

	consumer := sinkConsumer(t, broker)
	byZone := make(map[string]assessedMessage, len(snapshots))
	for len(byZone) < len(snapshots) {
		am := readAssessed(ctx, t, consumer)
		byZone[am.Key] = am
	}

	pipelineCancel()
	require.NoError(t, <-errCh)
	require.NoError(t, p.CheckReadiness(ctx))

	assert.Equal(t, domain.ThreatWarning, byZone["OKZ025"].Event.ThreatLevel)
	assert.Equal(t, domain.ThreatCaution, byZone["TXZ119"].Event.ThreatLevel)
	assert.Equal(t, domain.ThreatMonitor, byZone["KSZ083"].Event.ThreatLevel)
	assert.Equal(t, domain.WinterWarning, byZone["MNZ060"].Event.WinterStatus)
	assert.Equal(t, domain.WinterAdvisory, byZone["WIZ066"].Event.WinterStatus)
	assert.Equal(t, domain.RiskNone, byZone["FLZ063"].Event.RiskLabel)

	for zone, am := range byZone {
		assert.Equal(t, string(am.Event.ThreatLevel), am.Headers["threat_level"], zone)
		assert.Equal(t, string(am.Event.WinterStatus), am.Headers["winter_status"], zone)
	}
}

// TestPipelineSkipsUndecodableSnapshot verifies a poison message is skipped
// and later snapshots still flow.
func TestPipelineSkipsUndecodableSnapshot(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	broker := startKafka(ctx, t)
	createTopic(t, broker, testSourceTopic)
	createTopic(t, broker, testSinkTopic)
	cfg := testConfig(broker, "test-poison")

	publish(ctx, t, broker,
		kafkago.Message{Key: []byte("bad"), Value: []byte("not-json{{{")},
		kafkago.Message{Key: []byte("KSZ083"), Value: []byte(`{"zone":"KSZ083","spc_dn":3,"features":[]}`)},
	)

	reader := kafka.NewReader(cfg, discardLogger())
	t.Cleanup(func() { _ = reader.Close() })
	writer := kafka.NewWriter(cfg, discardLogger())
	t.Cleanup(func() { _ = writer.Close() })

	p := pipeline.New(reader, pipeline.NewTransformer(discardLogger()), writer, discardLogger(),
		observability.NewMetricsForTesting(), 50)

	pipelineCtx, pipelineCancel := context.WithCancel(ctx)
	errCh := make(chan error, 1)
	go func() { errCh <- p.Run(pipelineCtx) }()

	consumer := sinkConsumer(t, broker)
	am := readAssessed(ctx, t, consumer)
	assert.Equal(t, "KSZ083", am.Key)
	assert.Equal(t, domain.ThreatMonitor, am.Event.ThreatLevel)

	readCtx, readCancel := context.WithTimeout(ctx, 5*time.Second)
	_, err := consumer.ReadMessage(readCtx)
	readCancel()
	assert.Error(t, err, "expected no second message on sink topic")

	pipelineCancel()
	require.NoError(t, <-errCh)
}
