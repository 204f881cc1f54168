package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// OverlayShape identifies the kind of map overlay a descriptor produces.
type OverlayShape string

const (
	ShapeCircle OverlayShape = "circle"
	ShapeMarker OverlayShape = "marker"
)

// Style holds the stroke and fill appearance of a circle overlay.
type Style struct {
	Stroke      string  `json:"stroke"`
	Fill        string  `json:"fill"`
	FillOpacity float64 `json:"fill_opacity"`
}

// Palette fixes the appearance of each overlay tier and the marker icon
// colors for hazardous and non-hazardous objects.
type Palette struct {
	Crater          Style
	Severe          Style
	Moderate        Style
	Light           Style
	HazardousMarker string
	SafeMarker      string
}

// DefaultPalette returns the fixed style set: dark-red/red crater at 0.7
// opacity, orange-red/orange severe at 0.4, yellow moderate at 0.2,
// light-blue light at 0.1, red markers for hazardous objects and blue
// otherwise.
func DefaultPalette() Palette {
	return Palette{
		Crater:          Style{Stroke: "darkred", Fill: "red", FillOpacity: 0.7},
		Severe:          Style{Stroke: "orangered", Fill: "orange", FillOpacity: 0.4},
		Moderate:        Style{Stroke: "yellow", Fill: "yellow", FillOpacity: 0.2},
		Light:           Style{Stroke: "lightblue", Fill: "lightblue", FillOpacity: 0.1},
		HazardousMarker: "red",
		SafeMarker:      "blue",
	}
}

// OverlaySpec is a rendering-agnostic overlay descriptor consumed by an
// external map renderer. Circles carry a radius and style; markers carry an
// icon color. Write-once: not mutated after construction.
type OverlaySpec struct {
	Shape        OverlayShape `json:"shape"`
	Center       Geo          `json:"center"`
	RadiusMeters float64      `json:"radius_meters,omitempty"`
	Style        *Style       `json:"style,omitempty"`
	MarkerColor  string       `json:"marker_color,omitempty"`
	Tooltip      string       `json:"tooltip"`
	PopupHTML    string       `json:"popup_html,omitempty"`
}

// BuildOverlays produces the five overlay descriptors for one impact site,
// in fixed draw order: crater circle, severe-damage circle, moderate-damage
// circle, light-damage circle, center marker. The crater circle and the
// marker carry the full popup. Effects and location must already be
// computed; this performs only unit conversion and string formatting.
func BuildOverlays(site ImpactSite, palette Palette) []OverlaySpec {
	popup := formatPopup(site.NEO, site.Effects)

	markerColor := palette.SafeMarker
	if site.NEO.Hazardous {
		markerColor = palette.HazardousMarker
	}

	return []OverlaySpec{
		{
			Shape:  ShapeCircle,
			Center: site.Location,
			// Crater radius: half the crater diameter, km to meters.
			RadiusMeters: site.Effects.CraterDiameterKM * 500,
			Style:        styleOf(palette.Crater),
			Tooltip:      site.NEO.Name + " - Crater",
			PopupHTML:    popup,
		},
		{
			Shape:        ShapeCircle,
			Center:       site.Location,
			RadiusMeters: site.Effects.SevereDamageRadiusKM * 1000,
			Style:        styleOf(palette.Severe),
			Tooltip:      "Severe Damage Zone",
		},
		{
			Shape:        ShapeCircle,
			Center:       site.Location,
			RadiusMeters: site.Effects.ModerateDamageRadiusKM * 1000,
			Style:        styleOf(palette.Moderate),
			Tooltip:      "Moderate Damage Zone",
		},
		{
			Shape:        ShapeCircle,
			Center:       site.Location,
			RadiusMeters: site.Effects.LightDamageRadiusKM * 1000,
			Style:        styleOf(palette.Light),
			Tooltip:      "Light Damage Zone",
		},
		{
			Shape:       ShapeMarker,
			Center:      site.Location,
			MarkerColor: markerColor,
			Tooltip:     site.NEO.Name,
			PopupHTML:   popup,
		},
	}
}

func styleOf(s Style) *Style {
	return &s
}

// formatPopup renders the fixed-layout popup block shared by the crater
// circle and the marker.
func formatPopup(neo NearEarthObject, fx ImpactEffects) string {
	var b strings.Builder
	b.WriteString(`<div style="width: 300px;">` + "\n")
	fmt.Fprintf(&b, "<h4>%s</h4>\n", neo.Name)
	fmt.Fprintf(&b, "<b>Diameter:</b> %.3f km<br>\n", neo.DiameterKM)
	fmt.Fprintf(&b, "<b>Velocity:</b> %.2f km/s<br>\n", neo.VelocityKMPS)
	fmt.Fprintf(&b, "<b>Miss Distance:</b> %s km<br>\n", groupThousands(neo.MissDistanceKM))
	fmt.Fprintf(&b, "<b>Hazardous:</b> %s<br>\n", yesNo(neo.Hazardous))
	b.WriteString("<hr>\n<h5>Hypothetical Impact Effects:</h5>\n")
	fmt.Fprintf(&b, "<b>Impact Energy:</b> %.1f megatons TNT<br>\n", fx.EnergyMegatons)
	fmt.Fprintf(&b, "<b>Crater Diameter:</b> %.2f km<br>\n", fx.CraterDiameterKM)
	fmt.Fprintf(&b, "<b>Severe Damage:</b> %.1f km radius<br>\n", fx.SevereDamageRadiusKM)
	fmt.Fprintf(&b, "<b>Moderate Damage:</b> %.1f km radius<br>\n", fx.ModerateDamageRadiusKM)
	fmt.Fprintf(&b, "<b>Light Damage:</b> %.1f km radius\n", fx.LightDamageRadiusKM)
	b.WriteString("</div>")
	return b.String()
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// groupThousands formats a value with no decimal places and comma-grouped
// thousands, e.g. 7480213.6 -> "7,480,214".
func groupThousands(v float64) string {
	s := strconv.FormatFloat(v, 'f', 0, 64)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var groups []string
	for len(s) > 3 {
		groups = append([]string{s[len(s)-3:]}, groups...)
		s = s[:len(s)-3]
	}
	groups = append([]string{s}, groups...)

	out := strings.Join(groups, ",")
	if neg {
		out = "-" + out
	}
	return out
}
