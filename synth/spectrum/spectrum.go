package spectrum

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-additive/synth/core"
	"github.com/cwbudde/algo-vecmath"
)

// MinDB is the silence floor reported for empty bins.
const MinDB = -130.0

// Analyzer computes single-sided magnitude spectra of sampled curves.
type Analyzer struct {
	cfg        core.Config
	fftSize    int
	plan       *algofft.Plan[complex128]
	window     []float64
	windowNorm float64

	input  []complex128
	output []complex128
}

// NewAnalyzer creates an analyzer for curves of the configured sample count.
func NewAnalyzer(opts ...core.Option) (*Analyzer, error) {
	cfg := core.ApplyOptions(opts...)
	fftSize := nextPowerOf2(cfg.SampleCount)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("spectrum: fft plan: %w", err)
	}

	win := hann(cfg.SampleCount)
	norm := 0.0
	for _, w := range win {
		norm += w
	}

	return &Analyzer{
		cfg:        cfg,
		fftSize:    fftSize,
		plan:       plan,
		window:     win,
		windowNorm: norm,
		input:      make([]complex128, fftSize),
		output:     make([]complex128, fftSize),
	}, nil
}

// FFTSize returns the zero-padded transform size.
func (a *Analyzer) FFTSize() int {
	return a.fftSize
}

// BinHz returns the frequency spacing of adjacent spectrum bins.
func (a *Analyzer) BinHz() float64 {
	return a.cfg.SampleRate / float64(a.fftSize)
}

// Magnitudes returns the single-sided amplitude spectrum of curve,
// fftSize/2+1 bins normalized so a full-scale sine peaks near its amplitude.
func (a *Analyzer) Magnitudes(curve []float64) ([]float64, error) {
	if len(curve) != a.cfg.SampleCount {
		return nil, fmt.Errorf("spectrum curve length mismatch: %d != %d", len(curve), a.cfg.SampleCount)
	}

	for i := range a.input {
		a.input[i] = 0
	}
	for i, s := range curve {
		a.input[i] = complex(s*a.window[i], 0)
	}

	if err := a.plan.Forward(a.output, a.input); err != nil {
		return nil, fmt.Errorf("spectrum: fft: %w", err)
	}

	bins := a.fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := 0; k < bins; k++ {
		re[k] = real(a.output[k])
		im[k] = imag(a.output[k])
	}

	out := make([]float64, bins)
	vecmath.Magnitude(out, re, im)

	norm := math.Max(a.windowNorm, 1e-12)
	for k := range out {
		out[k] /= norm
		if k > 0 && k < bins-1 {
			out[k] *= 2
		}
	}
	return out, nil
}

// MagnitudesDB returns the amplitude spectrum in dBFS, floored at MinDB.
func (a *Analyzer) MagnitudesDB(curve []float64) ([]float64, error) {
	mags, err := a.Magnitudes(curve)
	if err != nil {
		return nil, err
	}
	for k, m := range mags {
		db := core.LinearToDB(m)
		if db < MinDB || math.IsInf(db, -1) {
			db = MinDB
		}
		mags[k] = db
	}
	return mags, nil
}

// LevelsDB interpolates the dB spectrum of curve at the given frequencies,
// clamped to [0, Nyquist].
func (a *Analyzer) LevelsDB(curve []float64, freqs []float64) ([]float64, error) {
	db, err := a.MagnitudesDB(curve)
	if err != nil {
		return nil, err
	}

	nyquist := a.cfg.SampleRate * 0.5
	binHz := a.BinHz()
	lastBin := len(db) - 1

	out := make([]float64, len(freqs))
	for i, f := range freqs {
		f = core.Clamp(f, 0, nyquist)
		bin := f / binHz
		if bin <= 0 {
			out[i] = db[0]
			continue
		}
		if bin >= float64(lastBin) {
			out[i] = db[lastBin]
			continue
		}
		base := int(bin)
		frac := bin - float64(base)
		out[i] = db[base] + frac*(db[base+1]-db[base])
	}
	return out, nil
}

func hann(n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = 1
		return out
	}
	for i := range out {
		out[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
	}
	return out
}

func nextPowerOf2(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}
	return size
}
