package acoustics

// Frequency band layout
const (
	// NumBands is the number of octave-like frequency bands in every
	// absorption vector and RT60 profile.
	NumBands = 9
)

// BandCenterFrequencies lists the center frequency of each band in Hz,
// in band index order.
var BandCenterFrequencies = [NumBands]float64{
	31.25, 62.5, 125, 250, 500, 1000, 2000, 4000, 8000,
}

// Early-reflection averaging window defaults
const (
	// DefaultReflectionBandStart is the first band of the mid-frequency
	// window used to characterize early reflections (500 Hz).
	DefaultReflectionBandStart = 4

	// DefaultReflectionBandCount is the number of bands in the window
	// (500 Hz, 1 kHz, 2 kHz).
	DefaultReflectionBandCount = 3
)

// RT60 estimation defaults
const (
	// DefaultSpeedOfSound is the speed of sound in dry air at 20°C, in m/s.
	DefaultSpeedOfSound = 343.0

	// DefaultMinVolume is the volume threshold in m³ below which a room is
	// treated as degenerate and yields a zero RT60 profile.
	DefaultMinVolume = 1e-4

	// sabineEyringCrossover is the mean absorption (inclusive) up to which
	// the Sabine equation is used; above it the Eyring form applies.
	sabineEyringCrossover = 0.5

	// decayConstantNumerator is the numerator of the acoustic decay
	// constant k = 24*ln(10)/c.
	decayConstantNumerator = 24.0
)

// DefaultAirAbsorption is the per-band atmospheric absorption coefficient
// table (energy loss per meter of propagation) used by RT60 estimation
// unless overridden in [Config].
var DefaultAirAbsorption = AbsorptionVector{
	0.0006, 0.0006, 0.0007, 0.0008, 0.0010, 0.0015, 0.0026, 0.0060, 0.0207,
}
