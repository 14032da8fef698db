// Command roomprofile computes the acoustic profile of a rectangular room.
//
// Usage:
//
//	roomprofile -width 4 -height 3 -depth 5 -walls brick-bare -floor parquet-on-concrete
//	roomprofile -width 4 -height 3 -depth 5 -walls curtain-heavy -preview tail.wav
//	roomprofile -list-materials
//
// The profile table lists the early-reflection coefficient per wall and
// the RT60 estimate per frequency band. With -preview, an audible decay
// tail following the RT60 profile is written as a 16-bit WAV file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	acoustics "github.com/tphakala/go-room-acoustics"
	"github.com/tphakala/go-room-acoustics/internal/render"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	width := flag.Float64("width", 4, "Room width in meters")
	height := flag.Float64("height", 3, "Room height in meters")
	depth := flag.Float64("depth", 5, "Room depth in meters")

	wallsMat := flag.String("walls", "", "Material for all four side walls")
	left := flag.String("left", "", "Material for the left wall")
	right := flag.String("right", "", "Material for the right wall")
	front := flag.String("front", "", "Material for the front wall")
	back := flag.String("back", "", "Material for the back wall")
	ceiling := flag.String("ceiling", "", "Material for the ceiling")
	floor := flag.String("floor", "", "Material for the floor")

	speed := flag.Float64("speed", 0, "Speed of sound in m/s (0 = default)")
	preview := flag.String("preview", "", "Write an audible decay preview to this WAV file")
	listMaterials := flag.Bool("list-materials", false, "List available materials and exit")
	verbose := flag.Bool("v", false, "Report fallback decisions (unknown materials, unassigned walls)")
	flag.Parse()

	if *listMaterials {
		for _, name := range acoustics.BuiltinLibrary().Names() {
			fmt.Println(name)
		}
		return nil
	}

	config := acoustics.DefaultConfig()
	if *verbose {
		config.Diagnostics = acoustics.SinkFunc(func(e acoustics.Event) {
			fmt.Fprintf(os.Stderr, "roomprofile: %s\n", e)
		})
	}

	profiler, err := acoustics.New(config)
	if err != nil {
		return err
	}

	dims := &acoustics.Dimensions{Width: *width, Height: *height, Depth: *depth}
	assignment := &acoustics.Assignment{
		Left:    *left,
		Right:   *right,
		Front:   *front,
		Back:    *back,
		Ceiling: *ceiling,
		Floor:   *floor,
		Walls:   *wallsMat,
	}

	coeffs := profiler.ResolveCoefficients(assignment)
	reflections := profiler.ReflectionCoefficients(coeffs)
	decay, err := profiler.RT60(dims, coeffs, *speed)
	if err != nil {
		return err
	}

	fmt.Printf("Room %.2fm x %.2fm x %.2fm (%.2f m³)\n\n", *width, *height, *depth, dims.Volume())

	fmt.Println("Early reflection coefficients:")
	for _, w := range acoustics.Walls() {
		fmt.Printf("  %-8s %.4f\n", w, reflections[w])
	}

	fmt.Println("\nRT60 per band:")
	for i, t60 := range decay {
		fmt.Printf("  %7.2f Hz  %6.3f s\n", acoustics.BandCenterFrequencies[i], t60)
	}

	if *preview != "" {
		tail, err := render.DecayTail(decay[:], acoustics.BandCenterFrequencies[:], render.DefaultSampleRate)
		if err != nil {
			return err
		}
		if tail == nil {
			return fmt.Errorf("room has no reverberation to preview")
		}
		if err := render.WriteWAV(*preview, tail, render.DefaultSampleRate); err != nil {
			return err
		}
		fmt.Printf("\nWrote %.2fs decay preview to %s\n",
			float64(len(tail))/render.DefaultSampleRate, *preview)
	}

	return nil
}
