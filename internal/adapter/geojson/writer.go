package geojson

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/couchcryptid/neo-impact-mapper/internal/domain"
)

// Writer persists the overlay FeatureCollection to a boundary file for the
// render collaborator. It implements pipeline.OverlayPublisher.
type Writer struct {
	path   string
	logger *slog.Logger
}

// NewWriter creates a file-backed overlay sink.
func NewWriter(path string, logger *slog.Logger) *Writer {
	return &Writer{path: path, logger: logger}
}

// PublishOverlays writes the visualizations as one GeoJSON
// FeatureCollection, replacing any previous file.
func (w *Writer) PublishOverlays(_ context.Context, vizs []domain.ImpactVisualization) error {
	fc := FeatureCollection(vizs)

	data, err := fc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("encode overlays: %w", err)
	}
	if err := os.WriteFile(w.path, data, 0o644); err != nil {
		return fmt.Errorf("write overlays: %w", err)
	}

	w.logger.Info("overlay file written", "path", w.path, "features", len(fc.Features))
	return nil
}
