package domain

import "time"

// RawFeed mirrors the NeoWs /feed response: a total element count plus
// object records bucketed by close-approach date.
type RawFeed struct {
	ElementCount     int                       `json:"element_count"`
	NearEarthObjects map[string][]RawNEORecord `json:"near_earth_objects"`
}

// RawNEORecord is one unvalidated object record from the feed. Fields that
// must be distinguishable from their zero value when absent are pointers.
type RawNEORecord struct {
	Name              string                `json:"name"`
	Hazardous         *bool                 `json:"is_potentially_hazardous_asteroid"`
	EstimatedDiameter *RawEstimatedDiameter `json:"estimated_diameter"`
	CloseApproachData []RawCloseApproach    `json:"close_approach_data"`
}

// RawEstimatedDiameter nests the per-unit diameter ranges; only the
// kilometers range is consumed.
type RawEstimatedDiameter struct {
	Kilometers *RawDiameterRange `json:"kilometers"`
}

// RawDiameterRange is an estimated min/max diameter pair.
type RawDiameterRange struct {
	Min *float64 `json:"estimated_diameter_min"`
	Max *float64 `json:"estimated_diameter_max"`
}

// RawCloseApproach is one close-approach event. Velocity and miss distance
// are string-encoded numerics in the source feed.
type RawCloseApproach struct {
	RelativeVelocity *RawRelativeVelocity `json:"relative_velocity"`
	MissDistance     *RawMissDistance     `json:"miss_distance"`
}

type RawRelativeVelocity struct {
	KilometersPerSecond *string `json:"kilometers_per_second"`
}

type RawMissDistance struct {
	Kilometers *string `json:"kilometers"`
}

// NearEarthObject is the validated domain representation of one observed
// object. Constructed once by [NormalizeRecord] and immutable thereafter.
type NearEarthObject struct {
	Name           string  `json:"name"`
	DiameterKM     float64 `json:"diameter_km"`
	VelocityKMPS   float64 `json:"velocity_kmps"`
	MissDistanceKM float64 `json:"miss_distance_km"`
	Hazardous      bool    `json:"hazardous"`
}

// Geo represents a WGS-84 latitude/longitude coordinate pair.
type Geo struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// ImpactSite places a ranked object at a display location together with its
// computed impact effects. Rank 0 is the largest selected object.
type ImpactSite struct {
	Rank     int             `json:"rank"`
	NEO      NearEarthObject `json:"neo"`
	Effects  ImpactEffects   `json:"effects"`
	Location Geo             `json:"location"`
}

// ImpactVisualization couples an impact site with its overlay descriptors.
// This is the unit delivered to overlay sinks; it is write-once and is not
// mutated after construction.
type ImpactVisualization struct {
	Site        ImpactSite    `json:"site"`
	Overlays    []OverlaySpec `json:"overlays"`
	GeneratedAt time.Time     `json:"generated_at"`
}
