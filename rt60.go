package acoustics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// RT60 estimates the per-band reverberation decay time of a room in
// seconds. A nil dims is treated as a zero-sized room and a partial or
// nil coefficient set is sanitized with defaults. speedOfSound overrides
// the configured speed of sound when positive; pass 0 to use the default.
//
// Rooms whose volume falls below [Config.MinVolume] yield an all-zero
// profile. Each band uses the Sabine equation while its surface-averaged
// absorption is at most 0.5 and the Eyring equation above that, both with
// the 4·m·V air absorption term.
//
// Non-finite or negative dimensions are rejected with
// [ErrInvalidDimension] rather than propagated into the estimate.
func (p *Profiler) RT60(dims *Dimensions, set CoefficientSet, speedOfSound float64) (RT60Profile, error) {
	d := p.SanitizeDimensions(dims)
	if err := d.validate(); err != nil {
		return RT60Profile{}, err
	}

	c := p.cfg.SpeedOfSound
	if speedOfSound != 0 {
		if !(speedOfSound > 0) || math.IsInf(speedOfSound, 0) {
			return RT60Profile{}, fmt.Errorf("%w: speed of sound must be positive and finite", ErrInvalidConfig)
		}
		c = speedOfSound
	}

	var rt60 RT60Profile

	volume := d.Volume()
	if volume < p.cfg.MinVolume {
		return rt60, nil
	}

	set = p.SanitizeCoefficients(set)

	// Surface areas of the three pairs of opposing walls.
	leftRight := d.Width * d.Height
	floorCeiling := d.Width * d.Depth
	frontBack := d.Depth * d.Height
	totalArea := 2 * (leftRight + floorCeiling + frontBack)

	// Per-band absorption area A[i] = sum over walls of coeff*area.
	var absorptionArea AbsorptionVector
	for _, pair := range [...]struct {
		a, b Wall
		area float64
	}{
		{WallLeft, WallRight, leftRight},
		{WallFloor, WallCeiling, floorCeiling},
		{WallFront, WallBack, frontBack},
	} {
		va := set[pair.a]
		vb := set[pair.b]
		floats.AddScaled(absorptionArea[:], pair.area, va[:])
		floats.AddScaled(absorptionArea[:], pair.area, vb[:])
	}

	k := decayConstantNumerator * math.Ln10 / c

	for i := range rt60 {
		meanAbsorption := absorptionArea[i] / totalArea
		airTerm := 4 * p.cfg.AirAbsorption[i] * volume

		if meanAbsorption <= sabineEyringCrossover {
			rt60[i] = k * volume / (absorptionArea[i] + airTerm)
		} else {
			rt60[i] = k * volume / (-totalArea*math.Log(1-meanAbsorption) + airTerm)
		}
	}

	return rt60, nil
}
