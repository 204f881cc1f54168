package domain

// DefaultTopN is how many of the largest objects are visualized per cycle.
const DefaultTopN = 10

// ModelConfig bundles the fixed model parameters injected into the pipeline
// at construction: physics constants, display sites, style palette, and the
// top-N cutoff. Defaults match the documented design; tests inject fixtures.
type ModelConfig struct {
	Physics PhysicsParams
	Sites   SiteList
	Palette Palette
	TopN    int
}

// DefaultModelConfig returns the canonical model configuration.
func DefaultModelConfig() ModelConfig {
	return ModelConfig{
		Physics: DefaultPhysicsParams(),
		Sites:   DefaultSites(),
		Palette: DefaultPalette(),
		TopN:    DefaultTopN,
	}
}
