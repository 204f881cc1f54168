package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func neoSized(name string, diameterKM float64) NearEarthObject {
	return NearEarthObject{Name: name, DiameterKM: diameterKM, VelocityKMPS: 15}
}

func TestRankBySize_SelectsLargestFirst(t *testing.T) {
	neos := []NearEarthObject{
		neoSized("small", 0.02),
		neoSized("large", 1.4),
		neoSized("medium", 0.3),
	}

	ranked := RankBySize(neos, 10)

	require.Len(t, ranked, 3)
	assert.Equal(t, "large", ranked[0].Name)
	assert.Equal(t, "medium", ranked[1].Name)
	assert.Equal(t, "small", ranked[2].Name)
}

func TestRankBySize_OutputLengthIsMinOfTopNAndInput(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		topN     int
		expected int
	}{
		{"fewer than topN", 3, 10, 3},
		{"exactly topN", 10, 10, 10},
		{"more than topN", 25, 10, 10},
		{"empty input", 0, 10, 0},
		{"zero topN", 5, 0, 0},
		{"negative topN", 5, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			neos := make([]NearEarthObject, tt.input)
			for i := range neos {
				neos[i] = neoSized("x", float64(i))
			}
			assert.Len(t, RankBySize(neos, tt.topN), tt.expected)
		})
	}
}

func TestRankBySize_NonIncreasingDiameters(t *testing.T) {
	neos := []NearEarthObject{
		neoSized("a", 0.4), neoSized("b", 1.1), neoSized("c", 0.4),
		neoSized("d", 0.05), neoSized("e", 2.3), neoSized("f", 0.4),
	}

	ranked := RankBySize(neos, 10)
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].DiameterKM, ranked[i].DiameterKM)
	}
}

func TestRankBySize_StableForEqualDiameters(t *testing.T) {
	neos := []NearEarthObject{
		neoSized("first", 0.4),
		neoSized("second", 0.4),
		neoSized("bigger", 0.9),
		neoSized("third", 0.4),
	}

	ranked := RankBySize(neos, 10)

	require.Len(t, ranked, 4)
	assert.Equal(t, "bigger", ranked[0].Name)
	assert.Equal(t, []string{"first", "second", "third"},
		[]string{ranked[1].Name, ranked[2].Name, ranked[3].Name})
}

func TestRankBySize_DoesNotMutateInput(t *testing.T) {
	neos := []NearEarthObject{neoSized("a", 0.1), neoSized("b", 0.5)}

	_ = RankBySize(neos, 1)

	assert.Equal(t, "a", neos[0].Name)
	assert.Equal(t, "b", neos[1].Name)
}
