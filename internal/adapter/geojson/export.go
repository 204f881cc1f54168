package geojson

import (
	"github.com/couchcryptid/neo-impact-mapper/internal/domain"
	geojsongo "github.com/paulmach/go.geojson"
)

// FeatureCollection encodes overlay descriptors as GeoJSON point features
// for the render collaborator. Circle overlays carry simplestyle stroke and
// fill properties plus their radius in meters; markers carry a
// marker-color. Feature order follows the input, so the rank-ordered,
// five-per-site overlay sequence is preserved.
func FeatureCollection(vizs []domain.ImpactVisualization) *geojsongo.FeatureCollection {
	fc := geojsongo.NewFeatureCollection()

	for _, viz := range vizs {
		for _, overlay := range viz.Overlays {
			fc.AddFeature(feature(viz.Site, overlay))
		}
	}
	return fc
}

func feature(site domain.ImpactSite, overlay domain.OverlaySpec) *geojsongo.Feature {
	// GeoJSON positions are [lon, lat].
	f := geojsongo.NewPointFeature([]float64{overlay.Center.Lon, overlay.Center.Lat})

	f.SetProperty("shape", string(overlay.Shape))
	f.SetProperty("tooltip", overlay.Tooltip)
	f.SetProperty("neo_name", site.NEO.Name)
	f.SetProperty("rank", site.Rank)

	switch overlay.Shape {
	case domain.ShapeCircle:
		f.SetProperty("radius_meters", overlay.RadiusMeters)
		if overlay.Style != nil {
			f.SetProperty("stroke", overlay.Style.Stroke)
			f.SetProperty("fill", overlay.Style.Fill)
			f.SetProperty("fill-opacity", overlay.Style.FillOpacity)
		}
	case domain.ShapeMarker:
		f.SetProperty("marker-color", overlay.MarkerColor)
	}

	if overlay.PopupHTML != "" {
		f.SetProperty("popup_html", overlay.PopupHTML)
	}
	return f
}
