package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSite(hazardous bool) ImpactSite {
	neo := NearEarthObject{
		Name:           "(2025 AB1)",
		DiameterKM:     0.5,
		VelocityKMPS:   17,
		MissDistanceKM: 7480213.6,
		Hazardous:      hazardous,
	}
	return ImpactSite{
		Rank:     0,
		NEO:      neo,
		Effects:  DefaultPhysicsParams().Effects(neo.DiameterKM, neo.VelocityKMPS),
		Location: Geo{Lat: 40.7128, Lon: -74.0060},
	}
}

func TestBuildOverlays_FiveDescriptorsInFixedOrder(t *testing.T) {
	site := testSite(false)

	overlays := BuildOverlays(site, DefaultPalette())

	require.Len(t, overlays, 5)
	assert.Equal(t, ShapeCircle, overlays[0].Shape)
	assert.Equal(t, ShapeCircle, overlays[1].Shape)
	assert.Equal(t, ShapeCircle, overlays[2].Shape)
	assert.Equal(t, ShapeCircle, overlays[3].Shape)
	assert.Equal(t, ShapeMarker, overlays[4].Shape)

	for i, o := range overlays {
		assert.Equal(t, site.Location, o.Center, "overlay %d center", i)
	}
}

func TestBuildOverlays_RadiiAndStyles(t *testing.T) {
	site := testSite(false)
	palette := DefaultPalette()

	overlays := BuildOverlays(site, palette)

	// Crater circle radius is half the crater diameter in meters; damage
	// rings convert their km radius directly.
	assert.InDelta(t, site.Effects.CraterDiameterKM*500, overlays[0].RadiusMeters, 1e-9)
	assert.InDelta(t, site.Effects.SevereDamageRadiusKM*1000, overlays[1].RadiusMeters, 1e-9)
	assert.InDelta(t, site.Effects.ModerateDamageRadiusKM*1000, overlays[2].RadiusMeters, 1e-9)
	assert.InDelta(t, site.Effects.LightDamageRadiusKM*1000, overlays[3].RadiusMeters, 1e-9)

	require.NotNil(t, overlays[0].Style)
	assert.Equal(t, palette.Crater, *overlays[0].Style)
	assert.Equal(t, palette.Severe, *overlays[1].Style)
	assert.Equal(t, palette.Moderate, *overlays[2].Style)
	assert.Equal(t, palette.Light, *overlays[3].Style)
	assert.Nil(t, overlays[4].Style)
	assert.Zero(t, overlays[4].RadiusMeters)
}

func TestBuildOverlays_Tooltips(t *testing.T) {
	overlays := BuildOverlays(testSite(false), DefaultPalette())

	assert.Equal(t, "(2025 AB1) - Crater", overlays[0].Tooltip)
	assert.Equal(t, "Severe Damage Zone", overlays[1].Tooltip)
	assert.Equal(t, "Moderate Damage Zone", overlays[2].Tooltip)
	assert.Equal(t, "Light Damage Zone", overlays[3].Tooltip)
	assert.Equal(t, "(2025 AB1)", overlays[4].Tooltip)
}

func TestBuildOverlays_MarkerColorTracksHazardFlag(t *testing.T) {
	palette := DefaultPalette()

	safe := BuildOverlays(testSite(false), palette)
	assert.Equal(t, palette.SafeMarker, safe[4].MarkerColor)

	hazardous := BuildOverlays(testSite(true), palette)
	assert.Equal(t, palette.HazardousMarker, hazardous[4].MarkerColor)
}

func TestBuildOverlays_PopupSharedByCraterAndMarker(t *testing.T) {
	overlays := BuildOverlays(testSite(true), DefaultPalette())

	popup := overlays[0].PopupHTML
	require.NotEmpty(t, popup)
	assert.Equal(t, popup, overlays[4].PopupHTML)
	assert.Empty(t, overlays[1].PopupHTML)
	assert.Empty(t, overlays[2].PopupHTML)
	assert.Empty(t, overlays[3].PopupHTML)

	assert.Contains(t, popup, "<h4>(2025 AB1)</h4>")
	assert.Contains(t, popup, "<b>Diameter:</b> 0.500 km")
	assert.Contains(t, popup, "<b>Velocity:</b> 17.00 km/s")
	assert.Contains(t, popup, "<b>Miss Distance:</b> 7,480,214 km")
	assert.Contains(t, popup, "<b>Hazardous:</b> Yes")
	assert.Contains(t, popup, "<b>Impact Energy:</b> 5651.0 megatons TNT")
	assert.Contains(t, popup, "<b>Crater Diameter:</b> 10.00 km")
	assert.Contains(t, popup, "<b>Severe Damage:</b> 38.1 km radius")
}

func TestGroupThousands(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{7480213.6, "7,480,214"},
		{123456789, "123,456,789"},
		{-1234567, "-1,234,567"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, groupThousands(tt.value), "value %g", tt.value)
	}
}

func TestDefaultPalette(t *testing.T) {
	p := DefaultPalette()

	assert.Equal(t, Style{Stroke: "darkred", Fill: "red", FillOpacity: 0.7}, p.Crater)
	assert.Equal(t, Style{Stroke: "orangered", Fill: "orange", FillOpacity: 0.4}, p.Severe)
	assert.Equal(t, Style{Stroke: "yellow", Fill: "yellow", FillOpacity: 0.2}, p.Moderate)
	assert.Equal(t, Style{Stroke: "lightblue", Fill: "lightblue", FillOpacity: 0.1}, p.Light)
	assert.Equal(t, "red", p.HazardousMarker)
	assert.Equal(t, "blue", p.SafeMarker)
}
