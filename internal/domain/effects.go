package domain

import (
	"fmt"
	"math"
)

// PhysicsParams holds the fixed constants of the simplified impact model.
// They are injected at pipeline construction so tests can substitute
// fixtures, but they are design parameters, not runtime tunables.
type PhysicsParams struct {
	// DensityKGM3 is the assumed bulk density of the impactor.
	DensityKGM3 float64
	// CraterScale and CraterVelocityExp drive the reduced Collins-style
	// crater law: diameter_km * CraterScale * (v / ReferenceVelocityKMPS)^exp.
	CraterScale           float64
	CraterVelocityExp     float64
	ReferenceVelocityKMPS float64
	// JoulesPerMegaton converts kinetic energy to megatons of TNT.
	JoulesPerMegaton float64
	// BlastRadiusExp and the three scale factors map energy in megatons to
	// concentric damage radii in kilometers: Mt^exp * scale.
	BlastRadiusExp      float64
	SevereRadiusScale   float64
	ModerateRadiusScale float64
	LightRadiusScale    float64
}

// DefaultPhysicsParams returns the canonical constant set: density
// 2500 kg/m³, crater scale 20 at a 17 km/s reference velocity with exponent
// 0.43, 4.184e15 J/Mt, and damage-radius multipliers 2.2/5.5/15 on Mt^0.33.
func DefaultPhysicsParams() PhysicsParams {
	return PhysicsParams{
		DensityKGM3:           2500,
		CraterScale:           20,
		CraterVelocityExp:     0.43,
		ReferenceVelocityKMPS: 17,
		JoulesPerMegaton:      4.184e15,
		BlastRadiusExp:        0.33,
		SevereRadiusScale:     2.2,
		ModerateRadiusScale:   5.5,
		LightRadiusScale:      15,
	}
}

// ImpactEffects is the derived set of hypothetical ground-impact estimates
// for one object. A pure value: computed fresh per object, never cached.
type ImpactEffects struct {
	CraterDiameterKM       float64 `json:"crater_diameter_km"`
	EnergyMegatons         float64 `json:"energy_megatons"`
	SevereDamageRadiusKM   float64 `json:"severe_damage_radius_km"`
	ModerateDamageRadiusKM float64 `json:"moderate_damage_radius_km"`
	LightDamageRadiusKM    float64 `json:"light_damage_radius_km"`
}

// Effects computes crater size, energy release, and damage radii from an
// object's diameter and close-approach velocity. Inputs must be validated
// non-negative values (the normalizer's job); negative inputs panic. Zero
// inputs are well-defined and yield all-zero effects.
func (p PhysicsParams) Effects(diameterKM, velocityKMPS float64) ImpactEffects {
	if diameterKM < 0 || velocityKMPS < 0 {
		panic(fmt.Sprintf("impact effects: negative input (diameter=%g km, velocity=%g km/s)", diameterKM, velocityKMPS))
	}

	crater := diameterKM * p.CraterScale * math.Pow(velocityKMPS/p.ReferenceVelocityKMPS, p.CraterVelocityExp)

	// Sphere of radius diameter/2, in meters.
	radiusM := diameterKM * 1000 / 2
	massKG := (4.0 / 3.0) * math.Pi * math.Pow(radiusM, 3) * p.DensityKGM3
	energyJoules := 0.5 * massKG * math.Pow(velocityKMPS*1000, 2)
	energyMegatons := energyJoules / p.JoulesPerMegaton

	blast := math.Pow(energyMegatons, p.BlastRadiusExp)

	return ImpactEffects{
		CraterDiameterKM:       crater,
		EnergyMegatons:         energyMegatons,
		SevereDamageRadiusKM:   blast * p.SevereRadiusScale,
		ModerateDamageRadiusKM: blast * p.ModerateRadiusScale,
		LightDamageRadiusKM:    blast * p.LightRadiusScale,
	}
}
