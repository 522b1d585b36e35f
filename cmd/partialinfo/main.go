// Command partialinfo prints the partial table of an additive synth state.
//
// Usage:
//
//	partialinfo [flags]
//
// It seeds the default state, applies the requested mutations, and prints
// each partial's frequency, amplitude, and curve peak, followed by the
// combined-curve summary and optionally the per-harmonic spectrum levels.
//
// Examples:
//
//	partialinfo
//	partialinfo -freq 440 -gain 0.2
//	partialinfo -amps 1,0.5,0.33 -spectrum
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-additive/synth/core"
	"github.com/cwbudde/algo-additive/synth/mix"
	"github.com/cwbudde/algo-additive/synth/spectrum"
	"github.com/cwbudde/algo-additive/synth/state"
)

func main() {
	freq := flag.Float64("freq", state.DefaultFundamentalHz, "fundamental frequency in Hz")
	gain := flag.Float64("gain", state.DefaultMasterGain, "master gain applied to the combined curve")
	amps := flag.String("amps", "", "comma-separated per-harmonic amplitudes, first harmonic first")
	showSpectrum := flag.Bool("spectrum", false, "print per-harmonic spectrum levels of the combined curve")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: partialinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the partial table of an additive synth state.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  partialinfo -freq 440 -gain 0.2\n")
		fmt.Fprintf(os.Stderr, "  partialinfo -amps 1,0.5,0.33 -spectrum\n")
	}
	flag.Parse()

	st, err := buildState(*freq, *gain, *amps)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	printPartials(st)
	printSummary(st)

	if *showSpectrum {
		if err := printSpectrum(st); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}

func buildState(freq, gain float64, amps string) (state.State, error) {
	r := state.NewReducer()
	st, err := r.InitialState()
	if err != nil {
		return state.State{}, err
	}

	muts := []state.Mutation{
		state.ChangeFundamentalFrequency{FrequencyHz: freq},
		state.ChangeMasterGain{Gain: gain},
	}
	ampValues, err := parseAmps(amps)
	if err != nil {
		return state.State{}, err
	}
	for i, a := range ampValues {
		muts = append(muts, state.ChangeAmplitude{PartialIndex: i, Amplitude: a})
	}

	for _, m := range muts {
		st, err = r.Reduce(st, m)
		if err != nil {
			return state.State{}, err
		}
	}
	return st, nil
}

func parseAmps(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid amplitude %q: %w", p, err)
		}
		out[i] = v
	}
	return out, nil
}

func printPartials(st state.State) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Harmonic\tFrequency [Hz]\tAmplitude\tCurve Peak\n")
	fmt.Fprintf(tw, "--------\t--------------\t---------\t----------\n")
	for i, p := range st.Partials {
		fmt.Fprintf(tw, "%d\t%.2f\t%.3f\t%.4f\n", i+1, p.Frequency, p.Amplitude, mix.Peak(p.Data))
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printSummary(st state.State) {
	peak := mix.Peak(st.TotalCurve)
	fmt.Printf("\nfundamental: %.2f Hz  master gain: %.3f  playing: %v\n",
		st.FundamentalFrequency, st.MasterGain, st.Playing)
	fmt.Printf("combined curve: %d samples, peak %.4f (%.1f dBFS)\n",
		len(st.TotalCurve), peak, core.LinearToDB(peak))
}

func printSpectrum(st state.State) error {
	an, err := spectrum.NewAnalyzer()
	if err != nil {
		return err
	}

	freqs := make([]float64, len(st.Partials))
	for i, p := range st.Partials {
		freqs[i] = p.Frequency
	}
	levels, err := an.LevelsDB(st.TotalCurve, freqs)
	if err != nil {
		return err
	}

	fmt.Printf("\n")
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Harmonic\tFrequency [Hz]\tLevel [dBFS]\n")
	fmt.Fprintf(tw, "--------\t--------------\t------------\n")
	for i := range freqs {
		fmt.Fprintf(tw, "%d\t%.2f\t%.1f\n", i+1, freqs[i], levels[i])
	}
	return tw.Flush()
}
