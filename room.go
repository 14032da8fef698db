package acoustics

import (
	"fmt"
	"math"
)

// Wall identifies one of the six surfaces of a rectangular room.
type Wall int

const (
	WallLeft Wall = iota
	WallRight
	WallFront
	WallBack
	WallCeiling
	WallFloor

	numWalls = 6
)

// walls is the canonical iteration order for all per-wall operations.
var walls = [numWalls]Wall{
	WallLeft, WallRight, WallFront, WallBack, WallCeiling, WallFloor,
}

// Walls returns all six walls in canonical order.
func Walls() []Wall {
	w := walls
	return w[:]
}

// String returns the lowercase wall name.
func (w Wall) String() string {
	switch w {
	case WallLeft:
		return "left"
	case WallRight:
		return "right"
	case WallFront:
		return "front"
	case WallBack:
		return "back"
	case WallCeiling:
		return "ceiling"
	case WallFloor:
		return "floor"
	default:
		return fmt.Sprintf("wall(%d)", int(w))
	}
}

// IsSide reports whether w is one of the four vertical side walls covered
// by the [Assignment.Walls] alias.
func (w Wall) IsSide() bool {
	switch w {
	case WallLeft, WallRight, WallFront, WallBack:
		return true
	default:
		return false
	}
}

// Axis identifies one dimension of a rectangular room.
type Axis int

const (
	AxisWidth Axis = iota
	AxisHeight
	AxisDepth
)

// String returns the lowercase axis name.
func (a Axis) String() string {
	switch a {
	case AxisWidth:
		return "width"
	case AxisHeight:
		return "height"
	case AxisDepth:
		return "depth"
	default:
		return fmt.Sprintf("axis(%d)", int(a))
	}
}

// Dimensions describes a rectangular room in meters. The zero value is a
// degenerate room with no volume.
type Dimensions struct {
	Width  float64
	Height float64
	Depth  float64
}

// Volume returns the room volume in m³.
func (d Dimensions) Volume() float64 {
	return d.Width * d.Height * d.Depth
}

// Get returns the extent along the given axis.
func (d Dimensions) Get(a Axis) float64 {
	switch a {
	case AxisWidth:
		return d.Width
	case AxisHeight:
		return d.Height
	case AxisDepth:
		return d.Depth
	default:
		return 0
	}
}

// validate rejects non-finite or negative extents.
func (d Dimensions) validate() error {
	for _, a := range []Axis{AxisWidth, AxisHeight, AxisDepth} {
		v := d.Get(a)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidDimension, a)
		}
		if v < 0 {
			return fmt.Errorf("%w: %s is negative (%v)", ErrInvalidDimension, a, v)
		}
	}
	return nil
}

// Assignment maps walls to material names. Fields left empty keep the
// default material. Assignment has value semantics: resolution never
// mutates it, and the same value may be shared across concurrent calls.
type Assignment struct {
	Left    string
	Right   string
	Front   string
	Back    string
	Ceiling string
	Floor   string

	// Walls assigns one material to all four side walls (left, right,
	// front, back), overriding any individual side wall fields. It never
	// affects the ceiling or floor.
	Walls string
}

// expand returns a copy with the Walls alias applied to the four side
// walls. The receiver is left untouched.
func (a Assignment) expand() Assignment {
	if a.Walls != "" {
		a.Left = a.Walls
		a.Right = a.Walls
		a.Front = a.Walls
		a.Back = a.Walls
	}
	return a
}

// material returns the material name assigned to w, or "" when the wall is
// unassigned. Call expand first so the Walls alias is already applied.
func (a Assignment) material(w Wall) string {
	switch w {
	case WallLeft:
		return a.Left
	case WallRight:
		return a.Right
	case WallFront:
		return a.Front
	case WallBack:
		return a.Back
	case WallCeiling:
		return a.Ceiling
	case WallFloor:
		return a.Floor
	default:
		return ""
	}
}

// CoefficientSet maps each wall to its 9-band absorption vector. Sets
// returned by [Profiler.ResolveCoefficients] and
// [Profiler.SanitizeCoefficients] always contain all six walls.
type CoefficientSet map[Wall]AbsorptionVector

// ReflectionSet maps each wall to its early-reflection coefficient in [0, 1].
type ReflectionSet map[Wall]float64

// RT60Profile holds the reverberation decay time in seconds for each
// frequency band, in band index order.
type RT60Profile [NumBands]float64
