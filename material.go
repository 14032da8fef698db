package acoustics

import (
	"fmt"
	"sort"
)

// AbsorptionVector holds the fraction of sound energy absorbed in each
// frequency band, nominally in [0, 1] per band.
type AbsorptionVector [NumBands]float64

// Material pairs a library name with its measured absorption spectrum.
type Material struct {
	Name       string
	Absorption AbsorptionVector
}

// Names of the built-in material presets.
const (
	// MaterialTransparent absorbs all energy in every band, modeling the
	// absence of a wall. It is the default for every unassigned wall.
	MaterialTransparent = "transparent"

	// MaterialUniform absorbs half the energy in every band. Useful as a
	// neutral test material.
	MaterialUniform = "uniform"

	MaterialAcousticCeilingTiles   = "acoustic-ceiling-tiles"
	MaterialBrickBare              = "brick-bare"
	MaterialBrickPainted           = "brick-painted"
	MaterialConcreteBlockCoarse    = "concrete-block-coarse"
	MaterialConcreteBlockPainted   = "concrete-block-painted"
	MaterialCurtainHeavy           = "curtain-heavy"
	MaterialFiberGlassInsulation   = "fiber-glass-insulation"
	MaterialGlassThin              = "glass-thin"
	MaterialGlassThick             = "glass-thick"
	MaterialGrass                  = "grass"
	MaterialLinoleumOnConcrete     = "linoleum-on-concrete"
	MaterialMarble                 = "marble"
	MaterialMetal                  = "metal"
	MaterialParquetOnConcrete      = "parquet-on-concrete"
	MaterialPlasterRough           = "plaster-rough"
	MaterialPlasterSmooth          = "plaster-smooth"
	MaterialPlywoodPanel           = "plywood-panel"
	MaterialPolishedConcreteOrTile = "polished-concrete-or-tile"
	MaterialSheetRock              = "sheet-rock"
	MaterialWaterOrIceSurface      = "water-or-ice-surface"
	MaterialWoodCeiling            = "wood-ceiling"
	MaterialWoodPanel              = "wood-panel"
)

// DefaultMaterial is the material substituted for every wall that is
// unassigned or whose requested material cannot be resolved.
const DefaultMaterial = MaterialTransparent

// Per-band absorption coefficients for the built-in presets. Measured
// values for real materials; bands run 31.25 Hz to 8 kHz.
var builtinMaterials = map[string]AbsorptionVector{
	MaterialTransparent:          {1.000, 1.000, 1.000, 1.000, 1.000, 1.000, 1.000, 1.000, 1.000},
	MaterialUniform:              {0.500, 0.500, 0.500, 0.500, 0.500, 0.500, 0.500, 0.500, 0.500},
	MaterialAcousticCeilingTiles: {0.672, 0.675, 0.700, 0.660, 0.720, 0.920, 0.920, 0.940, 0.940},
	MaterialBrickBare:            {0.030, 0.030, 0.030, 0.030, 0.030, 0.040, 0.050, 0.070, 0.140},
	MaterialBrickPainted:         {0.006, 0.007, 0.010, 0.010, 0.020, 0.020, 0.020, 0.030, 0.060},
	MaterialConcreteBlockCoarse:  {0.360, 0.360, 0.360, 0.360, 0.390, 0.440, 0.310, 0.290, 0.250},
	MaterialConcreteBlockPainted: {0.092, 0.090, 0.100, 0.050, 0.060, 0.070, 0.090, 0.080, 0.160},
	MaterialCurtainHeavy:         {0.073, 0.106, 0.140, 0.350, 0.550, 0.720, 0.700, 0.650, 0.650},
	MaterialFiberGlassInsulation: {0.193, 0.220, 0.220, 0.820, 0.990, 0.990, 0.990, 0.990, 0.990},
	MaterialGlassThin:            {0.180, 0.169, 0.180, 0.060, 0.040, 0.030, 0.020, 0.020, 0.020},
	MaterialGlassThick:           {0.350, 0.350, 0.350, 0.250, 0.180, 0.120, 0.070, 0.040, 0.040},
	MaterialGrass:                {0.050, 0.050, 0.150, 0.250, 0.400, 0.550, 0.600, 0.600, 0.600},
	MaterialLinoleumOnConcrete:   {0.020, 0.020, 0.020, 0.030, 0.030, 0.030, 0.030, 0.020, 0.020},
	MaterialMarble:               {0.010, 0.010, 0.010, 0.010, 0.010, 0.010, 0.020, 0.020, 0.020},
	MaterialMetal:                {0.030, 0.035, 0.040, 0.040, 0.050, 0.050, 0.050, 0.070, 0.090},
	MaterialParquetOnConcrete:    {0.028, 0.030, 0.040, 0.040, 0.070, 0.060, 0.060, 0.070, 0.070},
	MaterialPlasterRough:         {0.017, 0.018, 0.020, 0.030, 0.040, 0.050, 0.040, 0.030, 0.030},
	MaterialPlasterSmooth:        {0.011, 0.012, 0.013, 0.015, 0.020, 0.030, 0.040, 0.050, 0.050},
	MaterialPlywoodPanel:         {0.400, 0.340, 0.280, 0.220, 0.170, 0.090, 0.100, 0.110, 0.110},
	MaterialPolishedConcreteOrTile: {
		0.008, 0.008, 0.010, 0.010, 0.015, 0.020, 0.020, 0.020, 0.020},
	MaterialSheetRock:         {0.290, 0.279, 0.290, 0.100, 0.050, 0.040, 0.070, 0.090, 0.090},
	MaterialWaterOrIceSurface: {0.006, 0.006, 0.008, 0.008, 0.013, 0.015, 0.020, 0.025, 0.030},
	MaterialWoodCeiling:       {0.150, 0.147, 0.150, 0.110, 0.100, 0.070, 0.060, 0.070, 0.070},
	MaterialWoodPanel:         {0.280, 0.280, 0.280, 0.220, 0.170, 0.090, 0.100, 0.110, 0.110},
}

// Library is an immutable named table of absorption vectors. It is built
// once and never mutated, so it is safe for unrestricted concurrent reads.
type Library struct {
	materials map[string]AbsorptionVector
	names     []string
}

// NewLibrary builds a library from the given materials. Later duplicates
// of a name replace earlier ones.
func NewLibrary(materials []Material) *Library {
	table := make(map[string]AbsorptionVector, len(materials))
	for _, m := range materials {
		table[m.Name] = m.Absorption
	}
	return newLibrary(table)
}

func newLibrary(table map[string]AbsorptionVector) *Library {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return &Library{materials: table, names: names}
}

// builtinLibrary is the process-wide preset table shared by all profilers
// that do not supply their own library.
var builtinLibrary = newLibrary(builtinMaterials)

// BuiltinLibrary returns the library of built-in material presets.
func BuiltinLibrary() *Library {
	return builtinLibrary
}

// Lookup returns the absorption vector for the named material and whether
// the name is present. Names are matched exactly.
func (l *Library) Lookup(name string) (AbsorptionVector, bool) {
	v, ok := l.materials[name]
	return v, ok
}

// Material is like [Library.Lookup] but returns [ErrUnknownMaterial] for
// absent names, for callers that want strict resolution.
func (l *Library) Material(name string) (Material, error) {
	v, ok := l.materials[name]
	if !ok {
		return Material{}, fmt.Errorf("%w: %q", ErrUnknownMaterial, name)
	}
	return Material{Name: name, Absorption: v}, nil
}

// Names returns all material names in sorted order. The returned slice is
// a copy and may be modified by the caller.
func (l *Library) Names() []string {
	names := make([]string, len(l.names))
	copy(names, l.names)
	return names
}

// Len returns the number of materials in the library.
func (l *Library) Len() int {
	return len(l.materials)
}
