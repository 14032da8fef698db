package acoustics

import (
	"fmt"
)

// Profiler computes room acoustic profiles. It is immutable after
// construction and safe for unrestricted concurrent use.
type Profiler struct {
	cfg  Config
	lib  *Library
	sink Sink

	// defaultAbsorption is the vector substituted for unassigned walls
	// and failed lookups, resolved once at construction.
	defaultAbsorption AbsorptionVector
}

// New creates a profiler with the specified configuration. The config is
// copied; later changes to it do not affect the profiler.
func New(config *Config) (*Profiler, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	lib := config.Library
	if lib == nil {
		lib = BuiltinLibrary()
	}

	def, ok := lib.Lookup(DefaultMaterial)
	if !ok {
		return nil, fmt.Errorf("%w: library has no %q default", ErrInvalidConfig, DefaultMaterial)
	}

	sink := config.Diagnostics
	if sink == nil {
		sink = nopSink{}
	}

	return &Profiler{
		cfg:               *config,
		lib:               lib,
		sink:              sink,
		defaultAbsorption: def,
	}, nil
}

// Config returns a copy of the profiler's effective configuration.
func (p *Profiler) Config() Config {
	return p.cfg
}

// ResolveCoefficients merges a wall material assignment against the
// library and defaults, producing a coefficient set with all six walls
// populated. It never fails: unknown material names and unassigned walls
// keep the default material and emit a diagnostic. A nil assignment
// yields the all-default set without diagnostics.
//
// The Walls alias, when set, is applied to the four side walls on an
// internal copy; the caller's assignment is never mutated.
func (p *Profiler) ResolveCoefficients(assignment *Assignment) CoefficientSet {
	set := make(CoefficientSet, numWalls)
	for _, w := range walls {
		set[w] = p.defaultAbsorption
	}

	if assignment == nil {
		return set
	}

	expanded := assignment.expand()
	for _, w := range walls {
		name := expanded.material(w)
		if name == "" {
			p.sink.Emit(Event{Wall: w, Resolved: DefaultMaterial, Reason: ReasonUnassignedWall})
			continue
		}

		vec, ok := p.lib.Lookup(name)
		if !ok {
			p.sink.Emit(Event{Wall: w, Requested: name, Resolved: DefaultMaterial, Reason: ReasonUnknownMaterial})
			continue
		}

		set[w] = vec
	}

	return set
}

// SanitizeCoefficients fills any wall missing from a partially-built set
// with the default material vector. It emits no diagnostics, never mutates
// its input, and is idempotent. A nil set yields the all-default set.
func (p *Profiler) SanitizeCoefficients(set CoefficientSet) CoefficientSet {
	out := make(CoefficientSet, numWalls)
	for _, w := range walls {
		if v, ok := set[w]; ok {
			out[w] = v
		} else {
			out[w] = p.defaultAbsorption
		}
	}
	return out
}

// SanitizeDimensions replaces a nil dimensions pointer with the zero-sized
// room. Present values pass through unchanged.
func (p *Profiler) SanitizeDimensions(dims *Dimensions) Dimensions {
	if dims == nil {
		return Dimensions{}
	}
	return *dims
}
