// Package wave samples fixed-length sine segments for partial visualization.
//
// The sampler renders a fixed number of samples at the configured rate, so the
// visible window spans samples/sampleRate seconds. It is not a single-period
// loop generator.
package wave

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-additive/synth/core"
)

// Generator samples deterministic waveforms from a shared configuration.
type Generator struct {
	cfg core.Config
}

// NewGenerator creates a configured waveform generator.
func NewGenerator(opts ...core.Option) *Generator {
	return &Generator{cfg: core.ApplyOptions(opts...)}
}

// Config returns the generator configuration.
func (g *Generator) Config() core.Config {
	return g.cfg
}

// Sine generates a sine wave segment at the configured sample rate.
// Sample i equals amplitude * sin(2*pi*freqHz*i/sampleRate).
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	return Sine(freqHz, amplitude, samples, g.cfg.SampleRate)
}

// Curve generates the sampled curve for one partial: a sine segment of the
// configured window length.
func (g *Generator) Curve(freqHz, amplitude float64) ([]float64, error) {
	return Sine(freqHz, amplitude, g.cfg.SampleCount, g.cfg.SampleRate)
}

// Sine generates a sine wave segment without a shared configuration.
// Pure and deterministic: identical inputs always yield identical output.
func Sine(freqHz, amplitude float64, samples int, sampleRate float64) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("sine samples must be > 0: %d", samples)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sine sample rate must be > 0: %f", sampleRate)
	}
	if freqHz <= 0 {
		return nil, fmt.Errorf("sine frequency must be > 0: %f", freqHz)
	}
	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}
