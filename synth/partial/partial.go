// Package partial maintains the harmonic partial records of an additive stack.
//
// A Partial is a value: updates return a fresh record with a freshly sampled
// curve and never touch the original, so older snapshots that still reference
// it stay valid.
package partial

import (
	"fmt"

	"github.com/cwbudde/algo-additive/synth/wave"
)

// Partial is one harmonic component with its sampled display curve.
type Partial struct {
	// Frequency in Hz. For the k-th harmonic (1-based) this is
	// fundamental * k, except transiently inside Retune.
	Frequency float64
	// Amplitude, conventionally in [0, 1]. Not clamped.
	Amplitude float64
	// Data is the sampled sine segment for (Frequency, Amplitude),
	// always len == Generator sample count and never stale.
	Data []float64
}

// New creates a partial with its curve sampled from g.
func New(g *wave.Generator, freqHz, amplitude float64) (Partial, error) {
	data, err := g.Curve(freqHz, amplitude)
	if err != nil {
		return Partial{}, err
	}
	return Partial{Frequency: freqHz, Amplitude: amplitude, Data: data}, nil
}

// WithAmplitude returns a copy of p with the new amplitude and a resampled
// curve at p's current frequency.
func (p Partial) WithAmplitude(g *wave.Generator, amplitude float64) (Partial, error) {
	data, err := g.Curve(p.Frequency, amplitude)
	if err != nil {
		return Partial{}, err
	}
	p.Amplitude = amplitude
	p.Data = data
	return p, nil
}

// WithFrequency returns a copy of p with the new frequency and a resampled
// curve at p's current amplitude.
func (p Partial) WithFrequency(g *wave.Generator, freqHz float64) (Partial, error) {
	data, err := g.Curve(freqHz, p.Amplitude)
	if err != nil {
		return Partial{}, err
	}
	p.Frequency = freqHz
	p.Data = data
	return p, nil
}

// Retune returns a new slice where partial i is retuned to
// fundamental*(i+1), keeping each partial's amplitude and the slice order.
func Retune(g *wave.Generator, partials []Partial, fundamental float64) ([]Partial, error) {
	if fundamental <= 0 {
		return nil, fmt.Errorf("retune fundamental must be > 0: %f", fundamental)
	}
	out := make([]Partial, len(partials))
	for i, p := range partials {
		np, err := p.WithFrequency(g, fundamental*float64(i+1))
		if err != nil {
			return nil, fmt.Errorf("retune partial %d: %w", i, err)
		}
		out[i] = np
	}
	return out, nil
}

// HarmonicSeries builds the n-partial harmonic stack of fundamental.
// amplitudes assigns per-harmonic amplitudes by index; missing entries
// default to 0.
func HarmonicSeries(g *wave.Generator, fundamental float64, n int, amplitudes []float64) ([]Partial, error) {
	if fundamental <= 0 {
		return nil, fmt.Errorf("harmonic series fundamental must be > 0: %f", fundamental)
	}
	if n <= 0 {
		return nil, fmt.Errorf("harmonic series size must be > 0: %d", n)
	}
	out := make([]Partial, n)
	for i := range out {
		amp := 0.0
		if i < len(amplitudes) {
			amp = amplitudes[i]
		}
		p, err := New(g, fundamental*float64(i+1), amp)
		if err != nil {
			return nil, fmt.Errorf("harmonic series partial %d: %w", i, err)
		}
		out[i] = p
	}
	return out, nil
}

// Curves collects each partial's sampled curve in order, sharing the
// underlying slices.
func Curves(partials []Partial) [][]float64 {
	out := make([][]float64, len(partials))
	for i := range partials {
		out[i] = partials[i].Data
	}
	return out
}
