package acoustics

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// ReflectionCoefficients reduces each wall's absorption spectrum to a
// single early-reflection coefficient in [0, 1]. Absorption is averaged
// over the configured mid-frequency window and converted to amplitude
// reflectance with r = sqrt(1 - a), so a fully absorptive wall reflects
// nothing (0) and a fully reflective wall reflects everything (1).
//
// The input passes through [Profiler.SanitizeCoefficients] first, so
// partial or nil sets are valid.
func (p *Profiler) ReflectionCoefficients(set CoefficientSet) ReflectionSet {
	set = p.SanitizeCoefficients(set)

	start := p.cfg.ReflectionBandStart
	count := p.cfg.ReflectionBandCount

	out := make(ReflectionSet, numWalls)
	for _, w := range walls {
		v := set[w]
		mean := floats.Sum(v[start:start+count]) / float64(count)
		out[w] = math.Sqrt(math.Max(0, 1-mean))
	}
	return out
}
