package acoustics

import (
	"errors"
	"fmt"
	"math"
)

// Common errors returned by the package.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid acoustics configuration")

	// ErrInvalidDimension indicates a negative or non-finite room dimension.
	ErrInvalidDimension = errors.New("invalid room dimension")

	// ErrUnknownMaterial indicates a material name absent from the library.
	ErrUnknownMaterial = errors.New("unknown material")
)

// Config holds the configuration surface of a [Profiler]. All fields have
// documented defaults; see [DefaultConfig].
type Config struct {
	// ReflectionBandStart is the first band of the contiguous window over
	// which absorption is averaged when computing early-reflection
	// coefficients.
	ReflectionBandStart int

	// ReflectionBandCount is the number of bands in the averaging window.
	// The window must fit inside the NumBands band layout.
	ReflectionBandCount int

	// SpeedOfSound is the default speed of sound in m/s used by RT60
	// estimation when a call does not supply its own value.
	SpeedOfSound float64

	// AirAbsorption is the per-band atmospheric absorption table applied
	// in both the Sabine and Eyring branches.
	AirAbsorption AbsorptionVector

	// MinVolume is the room volume in m³ below which RT60 estimation
	// returns an all-zero profile instead of dividing by a vanishing
	// absorption area.
	MinVolume float64

	// Library resolves material names. Nil selects [BuiltinLibrary].
	Library *Library

	// Diagnostics receives a structured event for every fallback decision
	// made during coefficient resolution. Nil suppresses diagnostics.
	Diagnostics Sink
}

// DefaultConfig returns the reference configuration: the 500 Hz - 2 kHz
// reflection window, 343 m/s speed of sound, the built-in air absorption
// table, and no diagnostics.
func DefaultConfig() *Config {
	return &Config{
		ReflectionBandStart: DefaultReflectionBandStart,
		ReflectionBandCount: DefaultReflectionBandCount,
		SpeedOfSound:        DefaultSpeedOfSound,
		AirAbsorption:       DefaultAirAbsorption,
		MinVolume:           DefaultMinVolume,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.ReflectionBandStart < 0 || c.ReflectionBandStart >= NumBands {
		return fmt.Errorf("%w: reflection band start must be in [0, %d)", ErrInvalidConfig, NumBands)
	}

	if c.ReflectionBandCount < 1 {
		return fmt.Errorf("%w: reflection band count must be at least 1", ErrInvalidConfig)
	}

	if c.ReflectionBandStart+c.ReflectionBandCount > NumBands {
		return fmt.Errorf("%w: reflection window exceeds band layout (start %d + count %d > %d)",
			ErrInvalidConfig, c.ReflectionBandStart, c.ReflectionBandCount, NumBands)
	}

	if !(c.SpeedOfSound > 0) || math.IsInf(c.SpeedOfSound, 0) {
		return fmt.Errorf("%w: speed of sound must be positive and finite", ErrInvalidConfig)
	}

	if !(c.MinVolume > 0) || math.IsInf(c.MinVolume, 0) {
		return fmt.Errorf("%w: minimum volume must be positive and finite", ErrInvalidConfig)
	}

	for i, m := range c.AirAbsorption {
		if math.IsNaN(m) || math.IsInf(m, 0) || m < 0 {
			return fmt.Errorf("%w: air absorption for band %d must be non-negative and finite", ErrInvalidConfig, i)
		}
	}

	return nil
}
