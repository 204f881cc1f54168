package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertRelative asserts a value is within relative tolerance of expected.
func assertRelative(t *testing.T, expected, actual, tolerance float64) {
	t.Helper()
	require.NotZero(t, expected)
	assert.InEpsilon(t, expected, actual, tolerance)
}

func TestEffects_ReferenceScenario(t *testing.T) {
	// 0.5 km object at exactly the reference velocity: the crater term's
	// velocity ratio is 1, so crater = 0.5 * 20 = 10 km. Mass is a 250 m
	// radius sphere at 2500 kg/m³ ≈ 1.636e11 kg, giving ≈ 2.364e19 J
	// ≈ 5651 Mt and a severe radius of 5651^0.33 * 2.2 ≈ 38.07 km.
	fx := DefaultPhysicsParams().Effects(0.5, 17)

	assert.InDelta(t, 10.0, fx.CraterDiameterKM, 1e-9)
	assertRelative(t, 5651.0, fx.EnergyMegatons, 1e-3)
	assertRelative(t, 38.07, fx.SevereDamageRadiusKM, 1e-3)

	// Moderate and light radii share the blast term, so their ratios to the
	// severe radius are exactly 5.5/2.2 and 15/2.2.
	assert.InDelta(t, fx.SevereDamageRadiusKM*5.5/2.2, fx.ModerateDamageRadiusKM, 1e-9)
	assert.InDelta(t, fx.SevereDamageRadiusKM*15/2.2, fx.LightDamageRadiusKM, 1e-9)
}

func TestEffects_ZeroDiameterIsAllZero(t *testing.T) {
	fx := DefaultPhysicsParams().Effects(0, 25)

	assert.Zero(t, fx.CraterDiameterKM)
	assert.Zero(t, fx.EnergyMegatons)
	assert.Zero(t, fx.SevereDamageRadiusKM)
	assert.Zero(t, fx.ModerateDamageRadiusKM)
	assert.Zero(t, fx.LightDamageRadiusKM)
}

func TestEffects_ZeroVelocityIsAllZero(t *testing.T) {
	fx := DefaultPhysicsParams().Effects(0.5, 0)

	assert.Zero(t, fx.CraterDiameterKM)
	assert.Zero(t, fx.EnergyMegatons)
	assert.Zero(t, fx.LightDamageRadiusKM)
}

func TestEffects_MonotonicInVelocity(t *testing.T) {
	p := DefaultPhysicsParams()

	base := p.Effects(0.3, 12)
	faster := p.Effects(0.3, 24)

	assert.Greater(t, faster.EnergyMegatons, base.EnergyMegatons)
	assert.Greater(t, faster.CraterDiameterKM, base.CraterDiameterKM)
	assert.Greater(t, faster.SevereDamageRadiusKM, base.SevereDamageRadiusKM)
}

func TestEffects_EnergyScalesWithDiameterCubed(t *testing.T) {
	p := DefaultPhysicsParams()

	base := p.Effects(0.2, 20)
	doubled := p.Effects(0.4, 20)

	// Mass scales with the cube of diameter, so doubling diameter at fixed
	// velocity multiplies energy by exactly 8.
	assertRelative(t, base.EnergyMegatons*8, doubled.EnergyMegatons, 1e-9)
}

func TestEffects_NegativeInputPanics(t *testing.T) {
	p := DefaultPhysicsParams()

	assert.Panics(t, func() { p.Effects(-0.1, 17) })
	assert.Panics(t, func() { p.Effects(0.1, -17) })
}

func TestDefaultPhysicsParams(t *testing.T) {
	p := DefaultPhysicsParams()

	assert.Equal(t, 2500.0, p.DensityKGM3)
	assert.Equal(t, 20.0, p.CraterScale)
	assert.Equal(t, 0.43, p.CraterVelocityExp)
	assert.Equal(t, 17.0, p.ReferenceVelocityKMPS)
	assert.Equal(t, 4.184e15, p.JoulesPerMegaton)
	assert.Equal(t, 0.33, p.BlastRadiusExp)
	assert.Equal(t, 2.2, p.SevereRadiusScale)
	assert.Equal(t, 5.5, p.ModerateRadiusScale)
	assert.Equal(t, 15.0, p.LightRadiusScale)
}
