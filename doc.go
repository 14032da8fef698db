// Package acoustics computes the acoustic profile of a rectangular room
// for spatial-audio rendering in pure Go.
//
// Given room dimensions and a per-wall material assignment, the package
// produces the three quantities a reflection/reverberation renderer needs:
// per-wall frequency-band absorption coefficients, a single early-reflection
// coefficient per wall, and a per-band reverberation decay time (RT60).
//
// # Features
//
//   - Built-in library of measured absorption spectra for common building
//     materials (brick, glass, concrete, curtains, wood, water, ...)
//   - Layered material resolution: per-wall overrides, a "walls" alias for
//     all four side walls, and transparent defaults for everything else
//   - Dual-equation RT60 estimation: Sabine for live rooms, Eyring for
//     dead rooms, selected per frequency band
//   - Structured diagnostics for every fallback decision via an injectable
//     sink, so embedding systems can route or suppress them
//   - Pure Go, no CGO, no global mutable state
//
// # Quick Start
//
// For one-shot computation with default configuration:
//
//	profile, err := acoustics.ComputeProfile(
//	    &acoustics.Dimensions{Width: 4, Height: 3, Depth: 5},
//	    &acoustics.Assignment{
//	        Walls:   acoustics.MaterialBrickBare,
//	        Floor:   acoustics.MaterialParquetOnConcrete,
//	        Ceiling: acoustics.MaterialWoodCeiling,
//	    },
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(profile.Decay) // 9-band RT60 in seconds
//
// For a reusable profiler with custom configuration:
//
//	config := acoustics.DefaultConfig()
//	config.SpeedOfSound = 346.1 // 25°C air
//	config.Diagnostics = acoustics.SinkFunc(func(e acoustics.Event) {
//	    log.Printf("acoustics: %s", e)
//	})
//	p, err := acoustics.New(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	coeffs := p.ResolveCoefficients(&acoustics.Assignment{Walls: "curtain-heavy"})
//	reflections := p.ReflectionCoefficients(coeffs)
//	decay, err := p.RT60(&acoustics.Dimensions{Width: 4, Height: 3, Depth: 5}, coeffs, 0)
//
// # Physics Model
//
// Absorption is modeled in nine octave-like bands centered at 31.25 Hz
// through 8 kHz. Early-reflection coefficients reduce each wall's spectrum
// to one number by averaging absorption over a mid-frequency window
// (500 Hz - 2 kHz by default) and converting to amplitude reflectance with
// r = sqrt(1 - a).
//
// RT60 uses the Sabine equation while the surface-averaged absorption of a
// band is at most 0.5:
//
//	RT60 = k*V / (A + 4*m*V)        k = 24*ln(10) / c
//
// where V is room volume, A the absorption area, m the per-band air
// absorption coefficient, and c the speed of sound. Above 0.5 mean
// absorption Sabine diverges from measurement, so the Eyring form is used
// instead:
//
//	RT60 = k*V / (-S*ln(1 - a) + 4*m*V)
//
// with S the total surface area and a the mean absorption. Rooms whose
// volume falls below [Config.MinVolume] produce an all-zero profile rather
// than a division by a vanishing absorption area.
//
// # Failure Semantics
//
// Resolution never fails: unknown material names and unassigned walls fall
// back to the transparent default and emit a structured [Event]. The only
// hard errors are invalid configuration at construction time and
// non-finite or negative room dimensions, which are rejected rather than
// propagated into the physics as NaN.
//
// # Thread Safety
//
// A [Profiler] is immutable after construction and safe for unrestricted
// concurrent use. All operations are pure transforms: inputs are never
// mutated, and the same [Assignment] value may be shared across concurrent
// calls.
package acoustics
