package acoustics

// defaultProfiler backs the package-level one-shot functions. The default
// config is valid by construction.
var defaultProfiler = func() *Profiler {
	p, err := New(DefaultConfig())
	if err != nil {
		panic(err)
	}
	return p
}()

// ResolveCoefficients is a one-shot [Profiler.ResolveCoefficients] using
// the default configuration. Diagnostics are suppressed; construct a
// [Profiler] with a [Sink] to observe fallback decisions.
func ResolveCoefficients(assignment *Assignment) CoefficientSet {
	return defaultProfiler.ResolveCoefficients(assignment)
}

// SanitizeCoefficients is a one-shot [Profiler.SanitizeCoefficients]
// using the default configuration.
func SanitizeCoefficients(set CoefficientSet) CoefficientSet {
	return defaultProfiler.SanitizeCoefficients(set)
}

// SanitizeDimensions is a one-shot [Profiler.SanitizeDimensions] using
// the default configuration.
func SanitizeDimensions(dims *Dimensions) Dimensions {
	return defaultProfiler.SanitizeDimensions(dims)
}

// ReflectionCoefficients is a one-shot [Profiler.ReflectionCoefficients]
// using the default configuration.
func ReflectionCoefficients(set CoefficientSet) ReflectionSet {
	return defaultProfiler.ReflectionCoefficients(set)
}

// RT60 is a one-shot [Profiler.RT60] using the default configuration.
func RT60(dims *Dimensions, set CoefficientSet) (RT60Profile, error) {
	return defaultProfiler.RT60(dims, set, 0)
}

// Profile bundles the three outputs a renderer consumes.
type Profile struct {
	// Coefficients is the fully populated per-wall absorption set.
	Coefficients CoefficientSet

	// Reflections holds the early-reflection coefficient per wall.
	Reflections ReflectionSet

	// Decay is the per-band RT60 estimate in seconds.
	Decay RT60Profile
}

// Profile computes the full acoustic profile of a room in one call:
// resolved coefficients, early-reflection coefficients, and the RT60
// estimate.
func (p *Profiler) Profile(dims *Dimensions, assignment *Assignment) (Profile, error) {
	coeffs := p.ResolveCoefficients(assignment)

	decay, err := p.RT60(dims, coeffs, 0)
	if err != nil {
		return Profile{}, err
	}

	return Profile{
		Coefficients: coeffs,
		Reflections:  p.ReflectionCoefficients(coeffs),
		Decay:        decay,
	}, nil
}

// ComputeProfile is a one-shot [Profiler.Profile] using the default
// configuration.
func ComputeProfile(dims *Dimensions, assignment *Assignment) (Profile, error) {
	return defaultProfiler.Profile(dims, assignment)
}
