// Package render turns a reverberation decay profile into an audible
// preview signal and writes it as a WAV file.
//
// The preview is a mix of decaying sinusoids, one per frequency band at
// its center frequency, each fading at the rate its RT60 prescribes. It
// gives a quick audible impression of how live or dead a room is without
// running a full reverberation renderer.
package render

import (
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/tphakala/simd/f64"
)

const (
	// DefaultSampleRate is the sample rate used by the preview tooling.
	DefaultSampleRate = 48000

	// bitDepth is the PCM bit depth of written previews.
	bitDepth = 16

	// decayToAmplitudeRate converts an RT60 into the exponential
	// amplitude decay rate: exp(-t*rate/RT60) reaches -60 dB at t = RT60.
	decayToAmplitudeRate = 3 * math.Ln10

	// peakTarget is the normalization peak of the mixed preview,
	// leaving ~1 dB of headroom below full scale.
	peakTarget = 0.9

	// tailPadding extends the preview past the longest decay, in seconds.
	tailPadding = 0.25

	// maxInt16 is the full-scale value for 16-bit PCM.
	maxInt16 = 32767

	// pcmFormat is the WAV audio format tag for linear PCM.
	pcmFormat = 1

	monoChannels = 1
)

// DecayTail synthesizes a mono preview of a decay profile: one decaying
// sinusoid per band, mixed and peak-normalized. Bands with a zero decay
// time contribute silence. An all-zero profile yields a nil signal.
func DecayTail(rt60, bandFreqs []float64, sampleRate int) ([]float64, error) {
	if len(rt60) != len(bandFreqs) {
		return nil, fmt.Errorf("render: %d decay times for %d bands", len(rt60), len(bandFreqs))
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("render: sample rate must be positive, got %d", sampleRate)
	}

	var longest float64
	for _, t60 := range rt60 {
		longest = math.Max(longest, t60)
	}
	if longest <= 0 {
		return nil, nil
	}

	out := make([]float64, int(float64(sampleRate)*(longest+tailPadding)))
	for b, t60 := range rt60 {
		if t60 <= 0 {
			continue
		}

		omega := 2 * math.Pi * bandFreqs[b] / float64(sampleRate)
		rate := decayToAmplitudeRate / (t60 * float64(sampleRate))
		for i := range out {
			out[i] += math.Exp(-float64(i)*rate) * math.Sin(omega*float64(i))
		}
	}

	var peak float64
	for _, v := range out {
		peak = math.Max(peak, math.Abs(v))
	}
	if peak > 0 {
		f64.Scale(out, out, peakTarget/peak)
	}

	return out, nil
}

// WriteWAV writes mono samples in [-1, 1] to path as 16-bit PCM.
func WriteWAV(path string, samples []float64, sampleRate int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	enc := wav.NewEncoder(f, sampleRate, bitDepth, monoChannels, pcmFormat)

	data := make([]int, len(samples))
	for i, s := range samples {
		if s > 1 {
			s = 1
		} else if s < -1 {
			s = -1
		}
		data[i] = int(s * maxInt16)
	}

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: monoChannels,
			SampleRate:  sampleRate,
		},
		Data:           data,
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		_ = f.Close()
		return fmt.Errorf("render: failed to write samples: %w", err)
	}

	// Encoder close updates the WAV header sizes.
	if err := enc.Close(); err != nil {
		_ = f.Close()
		return fmt.Errorf("render: failed to finalize WAV: %w", err)
	}

	return f.Close()
}
