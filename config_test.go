package acoustics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	p, err := New(DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, DefaultSpeedOfSound, p.Config().SpeedOfSound)
}

func TestConfigValidate(t *testing.T) {
	mutate := func(f func(*Config)) *Config {
		c := DefaultConfig()
		f(c)
		return c
	}

	cases := map[string]*Config{
		"negative band start": mutate(func(c *Config) { c.ReflectionBandStart = -1 }),
		"band start past end": mutate(func(c *Config) { c.ReflectionBandStart = NumBands }),
		"zero band count":     mutate(func(c *Config) { c.ReflectionBandCount = 0 }),
		"window overflow":     mutate(func(c *Config) { c.ReflectionBandStart, c.ReflectionBandCount = 7, 3 }),
		"zero speed":          mutate(func(c *Config) { c.SpeedOfSound = 0 }),
		"negative speed":      mutate(func(c *Config) { c.SpeedOfSound = -343 }),
		"infinite speed":      mutate(func(c *Config) { c.SpeedOfSound = math.Inf(1) }),
		"NaN speed":           mutate(func(c *Config) { c.SpeedOfSound = math.NaN() }),
		"zero min volume":     mutate(func(c *Config) { c.MinVolume = 0 }),
		"negative air term":   mutate(func(c *Config) { c.AirAbsorption[3] = -0.001 }),
		"non-finite air term": mutate(func(c *Config) { c.AirAbsorption[8] = math.NaN() }),
	}

	for name, config := range cases {
		t.Run(name, func(t *testing.T) {
			err := config.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)

			_, err = New(config)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestNewNilConfig(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNewRequiresDefaultMaterial(t *testing.T) {
	config := DefaultConfig()
	config.Library = NewLibrary([]Material{
		{Name: "felt", Absorption: AbsorptionVector{0.3, 0.3, 0.3, 0.3, 0.3, 0.3, 0.3, 0.3, 0.3}},
	})

	_, err := New(config)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNewCopiesConfig(t *testing.T) {
	config := DefaultConfig()
	p, err := New(config)
	require.NoError(t, err)

	config.SpeedOfSound = 1
	assert.Equal(t, DefaultSpeedOfSound, p.Config().SpeedOfSound)
}

func TestCustomLibrary(t *testing.T) {
	config := DefaultConfig()
	config.Library = NewLibrary([]Material{
		{Name: MaterialTransparent, Absorption: AbsorptionVector{1, 1, 1, 1, 1, 1, 1, 1, 1}},
		{Name: "felt", Absorption: AbsorptionVector{0.3, 0.3, 0.3, 0.3, 0.3, 0.3, 0.3, 0.3, 0.3}},
	})

	p, err := New(config)
	require.NoError(t, err)

	set := p.ResolveCoefficients(&Assignment{Walls: "felt"})
	assert.Equal(t, 0.3, set[WallLeft][0])

	// Built-in names are not visible through a custom library.
	set = p.ResolveCoefficients(&Assignment{Walls: MaterialBrickBare})
	assert.Equal(t, 1.0, set[WallLeft][0])
}
