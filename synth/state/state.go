// Package state owns the additive-synth snapshot and its transition rules.
//
// A State is an immutable snapshot: every transition produces a brand-new
// value and leaves the input untouched, so collaborators may retain old
// snapshots (history, undo, rendering in flight) without aliasing hazards.
// Untouched partials share their curve slices across snapshots.
package state

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-additive/synth/core"
	"github.com/cwbudde/algo-additive/synth/mix"
	"github.com/cwbudde/algo-additive/synth/partial"
	"github.com/cwbudde/algo-additive/synth/wave"
)

// Default initial parameters: middle C at half gain.
const (
	DefaultFundamentalHz = 261.63
	DefaultMasterGain    = 0.5
)

// ErrPartialIndex reports a ChangeAmplitude index outside the partial list.
var ErrPartialIndex = errors.New("state: partial index out of range")

// State is one immutable snapshot of the synth.
type State struct {
	// Playing reports whether sound output is active.
	Playing bool
	// MasterGain in [0, 1], multiplies the combined curve.
	MasterGain float64
	// FundamentalFrequency in Hz; partial i is tuned to its (i+1)-th multiple.
	FundamentalFrequency float64
	// Partials in harmonic order: index 0 is the fundamental.
	Partials []partial.Partial
	// TotalCurve is the gain-scaled pointwise sum of all partial curves,
	// recomputed atomically with every transition that can affect it.
	TotalCurve []float64
}

// Reducer computes state transitions. It carries no mutable state of its own,
// only the sampling configuration shared by all transitions.
type Reducer struct {
	gen *wave.Generator
}

// NewReducer creates a reducer with the given sampling configuration.
func NewReducer(opts ...core.Option) *Reducer {
	return &Reducer{gen: wave.NewGenerator(opts...)}
}

// Config returns the reducer's sampling configuration.
func (r *Reducer) Config() core.Config {
	return r.gen.Config()
}

// InitialState builds the seed snapshot: not playing, half master gain,
// middle C fundamental, harmonic 1 at full amplitude and all others silent,
// every curve precomputed.
func (r *Reducer) InitialState() (State, error) {
	cfg := r.gen.Config()
	partials, err := partial.HarmonicSeries(r.gen, DefaultFundamentalHz, cfg.Harmonics, []float64{1})
	if err != nil {
		return State{}, fmt.Errorf("initial state: %w", err)
	}
	total, err := mix.Combine(partial.Curves(partials), DefaultMasterGain)
	if err != nil {
		return State{}, fmt.Errorf("initial state: %w", err)
	}
	return State{
		Playing:              false,
		MasterGain:           DefaultMasterGain,
		FundamentalFrequency: DefaultFundamentalHz,
		Partials:             partials,
		TotalCurve:           total,
	}, nil
}

// Reduce applies one mutation to st and returns the successor snapshot.
// Unrecognized and nil mutations return st unchanged.
func (r *Reducer) Reduce(st State, m Mutation) (State, error) {
	switch m := m.(type) {
	case Start:
		st.Playing = true
		return st, nil
	case Stop:
		st.Playing = false
		return st, nil
	case ChangeAmplitude:
		return r.changeAmplitude(st, m.PartialIndex, m.Amplitude)
	case ChangeFundamentalFrequency:
		return r.changeFundamental(st, m.FrequencyHz)
	case ChangeMasterGain:
		return r.changeMasterGain(st, m.Gain)
	default:
		return st, nil
	}
}

func (r *Reducer) changeAmplitude(st State, index int, amplitude float64) (State, error) {
	if index < 0 || index >= len(st.Partials) {
		return State{}, fmt.Errorf("%w: %d not in [0, %d)", ErrPartialIndex, index, len(st.Partials))
	}

	np, err := st.Partials[index].WithAmplitude(r.gen, amplitude)
	if err != nil {
		return State{}, fmt.Errorf("change amplitude: %w", err)
	}

	partials := make([]partial.Partial, len(st.Partials))
	copy(partials, st.Partials)
	partials[index] = np

	return r.recombined(st, partials, st.MasterGain, st.FundamentalFrequency)
}

func (r *Reducer) changeFundamental(st State, freqHz float64) (State, error) {
	partials, err := partial.Retune(r.gen, st.Partials, freqHz)
	if err != nil {
		return State{}, fmt.Errorf("change fundamental: %w", err)
	}
	return r.recombined(st, partials, st.MasterGain, freqHz)
}

func (r *Reducer) changeMasterGain(st State, gain float64) (State, error) {
	return r.recombined(st, st.Partials, gain, st.FundamentalFrequency)
}

// recombined rebuilds TotalCurve over the full partial list. The full rescan
// on every transition keeps floating-point summation order identical across
// all mutation kinds.
func (r *Reducer) recombined(st State, partials []partial.Partial, gain, fundamental float64) (State, error) {
	total, err := mix.Combine(partial.Curves(partials), gain)
	if err != nil {
		return State{}, fmt.Errorf("recombine: %w", err)
	}
	st.Partials = partials
	st.MasterGain = gain
	st.FundamentalFrequency = fundamental
	st.TotalCurve = total
	return st, nil
}
