// Package domain models near-Earth object (NEO) close-approach data and the
// simplified impact-effect heuristics built on top of it.
//
// # Data Source
//
// Observations come from the NASA NeoWs feed endpoint
// (https://api.nasa.gov/neo/rest/v1/feed), which returns objects bucketed by
// close-approach date. Buckets are flattened into one sequence before
// ranking; the iteration order across dates is unspecified and immaterial —
// only the post-ranking order is a contract.
//
// # NeoWs Conventions
//
// Diameter:
//
//	estimated_diameter.kilometers.estimated_diameter_max, a JSON number.
//	The maximum of the estimated range is used as the object's diameter.
//
// Velocity and miss distance:
//
//	close_approach_data[0].relative_velocity.kilometers_per_second and
//	close_approach_data[0].miss_distance.kilometers are string-encoded
//	numerics ("17.1182"), a NeoWs quirk. Only the first close-approach
//	entry of an object is considered.
//
// Hazard flag:
//
//	is_potentially_hazardous_asteroid marks objects the source catalog
//	classifies as potentially hazardous (PHA).
//
// # Impact Model
//
// The impact effects are a deliberately simplified heuristic, not a
// scientific model: crater diameter follows a reduced Collins-style scaling
// law, energy assumes a 2500 kg/m³ sphere, and the three damage radii apply
// fixed multipliers to energy_megatons^0.33. The constants are fixed design
// parameters carried in [PhysicsParams]; see [DefaultPhysicsParams].
package domain
