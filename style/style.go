// Package style defines the curated print styles: which texture variants a
// style favors, how eagerly it stacks extra layers, and how those layers are
// blended. Recipes are immutable values; one is selected per print job.
package style

import (
	"math/rand"
	"sort"

	"github.com/kioskworks/artprint/gen"
)

// BlendMode names a layer-merge operation.
type BlendMode string

const (
	Screen   BlendMode = "screen"
	Multiply BlendMode = "multiply"
	Add      BlendMode = "add"
)

// Recipe is a named parameter bundle consumed by the compositor.
type Recipe struct {
	Name string

	// Variant weights for the base layer and for extra layers.
	Base map[gen.Variant]float64
	Alt  map[gen.Variant]float64

	// LayerProb is the chance of stacking extra layers at all;
	// LayersMin/Max bound how many.
	LayerProb            float64
	LayersMin, LayersMax int

	Modes                map[BlendMode]float64
	OpacityLo, OpacityHi float64
	PlasmaOversample     float64
}

var registry = map[string]Recipe{
	"distinctive": {
		Name: "distinctive",
		Base: map[gen.Variant]float64{gen.Plasma: 0.18, gen.Lines: 0.18, gen.Strokes: 0.16, gen.Noise: 0.14, gen.Life: 0.12, gen.Halftone: 0.12, gen.Shapes: 0.06, gen.Burst: 0.03, gen.Maze: 0.01},
		Alt:  map[gen.Variant]float64{gen.Plasma: 0.14, gen.Lines: 0.20, gen.Strokes: 0.18, gen.Noise: 0.14, gen.Life: 0.12, gen.Halftone: 0.16, gen.Shapes: 0.04, gen.Burst: 0.02, gen.Maze: 0.00},
		LayerProb: 0.75, LayersMin: 2, LayersMax: 3,
		Modes:     map[BlendMode]float64{Screen: 0.5, Multiply: 0.35, Add: 0.15},
		OpacityLo: 0.42, OpacityHi: 0.78,
		PlasmaOversample: 3.0,
	},
	"graphic": {
		Name: "graphic",
		Base: map[gen.Variant]float64{gen.Plasma: 0.10, gen.Lines: 0.24, gen.Strokes: 0.20, gen.Noise: 0.16, gen.Halftone: 0.16, gen.Life: 0.06, gen.Shapes: 0.05, gen.Burst: 0.02, gen.Maze: 0.01},
		Alt:  map[gen.Variant]float64{gen.Plasma: 0.08, gen.Lines: 0.28, gen.Strokes: 0.22, gen.Noise: 0.16, gen.Halftone: 0.18, gen.Life: 0.04, gen.Shapes: 0.03, gen.Burst: 0.01, gen.Maze: 0.00},
		LayerProb: 0.8, LayersMin: 2, LayersMax: 3,
		Modes:     map[BlendMode]float64{Screen: 0.35, Multiply: 0.50, Add: 0.15},
		OpacityLo: 0.40, OpacityHi: 0.72,
		PlasmaOversample: 2.6,
	},
	"cloudy": {
		Name: "cloudy",
		Base: map[gen.Variant]float64{gen.Plasma: 0.30, gen.Lines: 0.10, gen.Strokes: 0.10, gen.Noise: 0.14, gen.Life: 0.12, gen.Halftone: 0.12, gen.Shapes: 0.04, gen.Burst: 0.06, gen.Maze: 0.02},
		Alt:  map[gen.Variant]float64{gen.Plasma: 0.20, gen.Lines: 0.12, gen.Strokes: 0.12, gen.Noise: 0.18, gen.Life: 0.14, gen.Halftone: 0.16, gen.Shapes: 0.03, gen.Burst: 0.04, gen.Maze: 0.01},
		LayerProb: 0.7, LayersMin: 2, LayersMax: 3,
		Modes:     map[BlendMode]float64{Screen: 0.6, Multiply: 0.25, Add: 0.15},
		OpacityLo: 0.38, OpacityHi: 0.70,
		PlasmaOversample: 3.4,
	},
	"structured": {
		Name: "structured",
		Base: map[gen.Variant]float64{gen.Plasma: 0.12, gen.Lines: 0.20, gen.Strokes: 0.12, gen.Noise: 0.12, gen.Life: 0.08, gen.Halftone: 0.14, gen.Shapes: 0.06, gen.Burst: 0.06, gen.Maze: 0.10},
		Alt:  map[gen.Variant]float64{gen.Plasma: 0.10, gen.Lines: 0.22, gen.Strokes: 0.14, gen.Noise: 0.12, gen.Life: 0.08, gen.Halftone: 0.18, gen.Shapes: 0.05, gen.Burst: 0.06, gen.Maze: 0.05},
		LayerProb: 0.75, LayersMin: 2, LayersMax: 3,
		Modes:     map[BlendMode]float64{Screen: 0.45, Multiply: 0.40, Add: 0.15},
		OpacityLo: 0.40, OpacityHi: 0.74,
		PlasmaOversample: 2.8,
	},
	"minimal": {
		Name: "minimal",
		Base: map[gen.Variant]float64{gen.Plasma: 0.12, gen.Lines: 0.18, gen.Strokes: 0.16, gen.Noise: 0.18, gen.Life: 0.10, gen.Halftone: 0.16, gen.Shapes: 0.04, gen.Burst: 0.04, gen.Maze: 0.02},
		Alt:  map[gen.Variant]float64{gen.Plasma: 0.10, gen.Lines: 0.20, gen.Strokes: 0.18, gen.Noise: 0.18, gen.Life: 0.10, gen.Halftone: 0.18, gen.Shapes: 0.03, gen.Burst: 0.02, gen.Maze: 0.01},
		LayerProb: 0.6, LayersMin: 1, LayersMax: 2,
		Modes:     map[BlendMode]float64{Screen: 0.5, Multiply: 0.35, Add: 0.15},
		OpacityLo: 0.36, OpacityHi: 0.62,
		PlasmaOversample: 2.4,
	},
}

// Names returns the registered style names in stable order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the recipe for name, if registered.
func Lookup(name string) (Recipe, bool) {
	r, ok := registry[name]
	return r, ok
}

// Choose resolves a requested style name. An empty or unknown name is not an
// error; it falls back to a random registered style.
func Choose(name string, rng *rand.Rand) Recipe {
	if r, ok := registry[name]; ok {
		return r
	}
	names := Names()
	return registry[names[rng.Intn(len(names))]]
}
