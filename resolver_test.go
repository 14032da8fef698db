package acoustics

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProfiler(t *testing.T, sink Sink) *Profiler {
	t.Helper()
	config := DefaultConfig()
	config.Diagnostics = sink
	p, err := New(config)
	require.NoError(t, err)
	return p
}

func mustLookup(t *testing.T, name string) AbsorptionVector {
	t.Helper()
	v, ok := BuiltinLibrary().Lookup(name)
	require.True(t, ok)
	return v
}

func TestResolveNilAssignment(t *testing.T) {
	collector := &Collector{}
	p := newTestProfiler(t, collector)

	set := p.ResolveCoefficients(nil)

	require.Len(t, set, 6)
	transparent := mustLookup(t, MaterialTransparent)
	for _, w := range Walls() {
		assert.Equal(t, transparent, set[w], "wall %s", w)
	}

	// Absent assignment is the default assignment, not six fallbacks.
	assert.Empty(t, collector.Events())
}

func TestResolveWallsAlias(t *testing.T) {
	collector := &Collector{}
	p := newTestProfiler(t, collector)

	set := p.ResolveCoefficients(&Assignment{Walls: MaterialBrickBare})

	brick := mustLookup(t, MaterialBrickBare)
	transparent := mustLookup(t, MaterialTransparent)

	for _, w := range []Wall{WallLeft, WallRight, WallFront, WallBack} {
		assert.Equal(t, brick, set[w], "side wall %s", w)
	}
	assert.Equal(t, transparent, set[WallCeiling])
	assert.Equal(t, transparent, set[WallFloor])

	// Ceiling and floor are unassigned and reported as such.
	events := collector.Events()
	require.Len(t, events, 2)
	for _, e := range events {
		assert.Equal(t, ReasonUnassignedWall, e.Reason)
		assert.False(t, e.Wall.IsSide())
		assert.Equal(t, DefaultMaterial, e.Resolved)
	}
}

func TestResolveAliasOverridesSideWalls(t *testing.T) {
	p := newTestProfiler(t, nil)

	set := p.ResolveCoefficients(&Assignment{
		Left:    MaterialMarble,
		Ceiling: MaterialMarble,
		Walls:   MaterialCurtainHeavy,
	})

	curtain := mustLookup(t, MaterialCurtainHeavy)
	marble := mustLookup(t, MaterialMarble)

	// The alias wins over the individually assigned left wall but never
	// touches the ceiling.
	assert.Equal(t, curtain, set[WallLeft])
	assert.Equal(t, marble, set[WallCeiling])
}

func TestResolveUnknownMaterial(t *testing.T) {
	collector := &Collector{}
	p := newTestProfiler(t, collector)

	set := p.ResolveCoefficients(&Assignment{
		Floor:   "velvet",
		Ceiling: MaterialWoodCeiling,
		Walls:   MaterialBrickBare,
	})

	assert.Equal(t, mustLookup(t, MaterialTransparent), set[WallFloor])
	assert.Equal(t, mustLookup(t, MaterialWoodCeiling), set[WallCeiling])

	var unknown []Event
	for _, e := range collector.Events() {
		if e.Reason == ReasonUnknownMaterial {
			unknown = append(unknown, e)
		}
	}
	require.Len(t, unknown, 1)
	assert.Equal(t, WallFloor, unknown[0].Wall)
	assert.Equal(t, "velvet", unknown[0].Requested)
	assert.Equal(t, DefaultMaterial, unknown[0].Resolved)
}

func TestResolveDoesNotMutateAssignment(t *testing.T) {
	p := newTestProfiler(t, nil)

	assignment := Assignment{
		Left:  MaterialMarble,
		Walls: MaterialBrickBare,
	}
	original := assignment

	_ = p.ResolveCoefficients(&assignment)

	assert.Equal(t, original, assignment)
}

func TestResolveAlwaysCompletes(t *testing.T) {
	p := newTestProfiler(t, nil)

	// Every wall bogus: result still has all six walls, all defaulted.
	set := p.ResolveCoefficients(&Assignment{
		Left: "a", Right: "b", Front: "c", Back: "d", Ceiling: "e", Floor: "f",
	})

	require.Len(t, set, 6)
	transparent := mustLookup(t, MaterialTransparent)
	for _, w := range Walls() {
		assert.Equal(t, transparent, set[w], "wall %s", w)
	}
}

func TestSanitizeCoefficients(t *testing.T) {
	p := newTestProfiler(t, nil)

	brick := mustLookup(t, MaterialBrickBare)
	transparent := mustLookup(t, MaterialTransparent)

	partial := CoefficientSet{WallLeft: brick}
	full := p.SanitizeCoefficients(partial)

	require.Len(t, full, 6)
	assert.Equal(t, brick, full[WallLeft])
	for _, w := range []Wall{WallRight, WallFront, WallBack, WallCeiling, WallFloor} {
		assert.Equal(t, transparent, full[w], "wall %s", w)
	}

	// Input is untouched.
	assert.Len(t, partial, 1)

	// Idempotent: sanitizing twice equals sanitizing once.
	assert.Equal(t, full, p.SanitizeCoefficients(full))

	// Nil set yields the all-default set.
	assert.Equal(t, p.SanitizeCoefficients(nil), p.ResolveCoefficients(nil))
}

func TestSanitizeDimensions(t *testing.T) {
	p := newTestProfiler(t, nil)

	assert.Equal(t, Dimensions{}, p.SanitizeDimensions(nil))

	d := Dimensions{Width: 4, Height: 3, Depth: 5}
	assert.Equal(t, d, p.SanitizeDimensions(&d))
}

// TestResolveConcurrent shares one profiler and one assignment across
// goroutines; the alias expansion must never write through to the shared
// value.
func TestResolveConcurrent(t *testing.T) {
	p := newTestProfiler(t, &Collector{})
	assignment := &Assignment{Walls: MaterialBrickBare, Floor: MaterialParquetOnConcrete}

	brick := mustLookup(t, MaterialBrickBare)
	parquet := mustLookup(t, MaterialParquetOnConcrete)

	const goroutines = 16
	const iterations = 100

	var wg sync.WaitGroup
	errs := make(chan string, goroutines)
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func() {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				set := p.ResolveCoefficients(assignment)
				if set[WallLeft] != brick || set[WallFloor] != parquet {
					errs <- "unexpected resolution under concurrency"
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for msg := range errs {
		t.Error(msg)
	}
	assert.Equal(t, MaterialBrickBare, assignment.Walls)
	assert.Empty(t, assignment.Left)
}
