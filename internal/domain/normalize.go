package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// MissingFieldError reports a required key that is absent from a raw record.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field %q", e.Field)
}

// ValidationError reports a field that is present but unusable: a
// non-positive physical quantity or an unparsable string-encoded numeric.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid field %q: %s", e.Field, e.Reason)
}

// FlattenFeed collects every dated bucket of a feed into one sequence.
// Map iteration makes the order across dates unspecified; callers must not
// rely on it — only the post-ranking order is a contract.
func FlattenFeed(feed RawFeed) []RawNEORecord {
	var records []RawNEORecord
	for _, bucket := range feed.NearEarthObjects {
		records = append(records, bucket...)
	}
	return records
}

// NormalizeRecord validates one raw feed record and constructs the
// immutable NearEarthObject entity. It returns a *MissingFieldError when a
// required key is absent and a *ValidationError when a value is malformed
// or physically degenerate (non-positive diameter or velocity).
func NormalizeRecord(raw RawNEORecord) (NearEarthObject, error) {
	if strings.TrimSpace(raw.Name) == "" {
		return NearEarthObject{}, &MissingFieldError{Field: "name"}
	}
	if raw.Hazardous == nil {
		return NearEarthObject{}, &MissingFieldError{Field: "is_potentially_hazardous_asteroid"}
	}
	if raw.EstimatedDiameter == nil || raw.EstimatedDiameter.Kilometers == nil || raw.EstimatedDiameter.Kilometers.Max == nil {
		return NearEarthObject{}, &MissingFieldError{Field: "estimated_diameter.kilometers.estimated_diameter_max"}
	}
	if len(raw.CloseApproachData) == 0 {
		return NearEarthObject{}, &MissingFieldError{Field: "close_approach_data"}
	}

	approach := raw.CloseApproachData[0]
	if approach.RelativeVelocity == nil || approach.RelativeVelocity.KilometersPerSecond == nil {
		return NearEarthObject{}, &MissingFieldError{Field: "close_approach_data[0].relative_velocity.kilometers_per_second"}
	}
	if approach.MissDistance == nil || approach.MissDistance.Kilometers == nil {
		return NearEarthObject{}, &MissingFieldError{Field: "close_approach_data[0].miss_distance.kilometers"}
	}

	velocity, err := parseEncodedFloat("close_approach_data[0].relative_velocity.kilometers_per_second", *approach.RelativeVelocity.KilometersPerSecond)
	if err != nil {
		return NearEarthObject{}, err
	}
	missDistance, err := parseEncodedFloat("close_approach_data[0].miss_distance.kilometers", *approach.MissDistance.Kilometers)
	if err != nil {
		return NearEarthObject{}, err
	}

	diameter := *raw.EstimatedDiameter.Kilometers.Max
	if diameter <= 0 {
		return NearEarthObject{}, &ValidationError{Field: "estimated_diameter.kilometers.estimated_diameter_max", Reason: "must be positive"}
	}
	if velocity <= 0 {
		return NearEarthObject{}, &ValidationError{Field: "close_approach_data[0].relative_velocity.kilometers_per_second", Reason: "must be positive"}
	}

	return NearEarthObject{
		Name:           raw.Name,
		DiameterKM:     diameter,
		VelocityKMPS:   velocity,
		MissDistanceKM: missDistance,
		Hazardous:      *raw.Hazardous,
	}, nil
}

// parseEncodedFloat parses a NeoWs string-encoded numeric. The key was
// present, so a parse failure is a validation error rather than a missing
// field.
func parseEncodedFloat(field, value string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, &ValidationError{Field: field, Reason: fmt.Sprintf("not a number: %q", value)}
	}
	return v, nil
}
