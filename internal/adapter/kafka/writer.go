package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/couchcryptid/neo-impact-mapper/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
)

// Writer publishes impact visualizations to a Kafka topic, one message per
// visualization. It implements pipeline.OverlayPublisher.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured sink topic.
func NewWriter(brokers []string, topic string, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// PublishOverlays serializes and publishes the visualizations in a single
// WriteMessages call for efficiency.
func (w *Writer) PublishOverlays(ctx context.Context, vizs []domain.ImpactVisualization) error {
	if len(vizs) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(vizs))
	for i := range vizs {
		msg, err := serializeToMessage(vizs[i])
		if err != nil {
			return err
		}
		msgs[i] = msg
	}
	return w.writer.WriteMessages(ctx, msgs...)
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals an ImpactVisualization into a Kafka message
// keyed by object name.
func serializeToMessage(viz domain.ImpactVisualization) (kafkago.Message, error) {
	data, err := json.Marshal(viz)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize visualization: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(viz.Site.NEO.Name),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "rank", Value: []byte(strconv.Itoa(viz.Site.Rank))},
			{Key: "hazardous", Value: []byte(strconv.FormatBool(viz.Site.NEO.Hazardous))},
			{Key: "generated_at", Value: []byte(viz.GeneratedAt.Format(time.RFC3339))},
		},
	}, nil
}
