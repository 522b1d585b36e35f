package partial

import (
	"testing"

	"github.com/cwbudde/algo-additive/internal/testutil"
	"github.com/cwbudde/algo-additive/synth/core"
	"github.com/cwbudde/algo-additive/synth/wave"
)

func testGenerator() *wave.Generator {
	return wave.NewGenerator(core.WithSampleRate(8000), core.WithSampleCount(80))
}

func TestNewSamplesCurve(t *testing.T) {
	g := testGenerator()
	p, err := New(g, 200, 0.5)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	want := testutil.ReferenceSine(200, 0.5, 80, 8000)
	testutil.RequireSliceNearlyEqual(t, p.Data, want, 0)
}

func TestWithAmplitudeResamples(t *testing.T) {
	g := testGenerator()
	p, err := New(g, 200, 0.5)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	np, err := p.WithAmplitude(g, 0.25)
	if err != nil {
		t.Fatalf("WithAmplitude() error = %v", err)
	}
	if np.Frequency != 200 || np.Amplitude != 0.25 {
		t.Fatalf("got (%v, %v), want (200, 0.25)", np.Frequency, np.Amplitude)
	}
	want := testutil.ReferenceSine(200, 0.25, 80, 8000)
	testutil.RequireSliceNearlyEqual(t, np.Data, want, 0)

	// The original record is untouched.
	if p.Amplitude != 0.5 {
		t.Fatalf("original amplitude changed to %v", p.Amplitude)
	}
	wantOld := testutil.ReferenceSine(200, 0.5, 80, 8000)
	testutil.RequireSliceNearlyEqual(t, p.Data, wantOld, 0)
}

func TestWithFrequencyResamples(t *testing.T) {
	g := testGenerator()
	p, err := New(g, 200, 0.5)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	np, err := p.WithFrequency(g, 400)
	if err != nil {
		t.Fatalf("WithFrequency() error = %v", err)
	}
	if np.Frequency != 400 || np.Amplitude != 0.5 {
		t.Fatalf("got (%v, %v), want (400, 0.5)", np.Frequency, np.Amplitude)
	}
	want := testutil.ReferenceSine(400, 0.5, 80, 8000)
	testutil.RequireSliceNearlyEqual(t, np.Data, want, 0)
}

func TestRetune(t *testing.T) {
	g := testGenerator()
	partials, err := HarmonicSeries(g, 100, 4, []float64{1, 0.5, 0, 0.25})
	if err != nil {
		t.Fatalf("HarmonicSeries() error = %v", err)
	}

	retuned, err := Retune(g, partials, 150)
	if err != nil {
		t.Fatalf("Retune() error = %v", err)
	}
	if len(retuned) != 4 {
		t.Fatalf("len = %d, want 4", len(retuned))
	}
	wantAmps := []float64{1, 0.5, 0, 0.25}
	for i, p := range retuned {
		wantFreq := 150 * float64(i+1)
		if p.Frequency != wantFreq {
			t.Fatalf("partial %d frequency = %v, want %v", i, p.Frequency, wantFreq)
		}
		if p.Amplitude != wantAmps[i] {
			t.Fatalf("partial %d amplitude = %v, want %v", i, p.Amplitude, wantAmps[i])
		}
		want := testutil.ReferenceSine(wantFreq, wantAmps[i], 80, 8000)
		testutil.RequireSliceNearlyEqual(t, p.Data, want, 0)
	}

	// The input slice and its records are untouched.
	for i, p := range partials {
		if p.Frequency != 100*float64(i+1) {
			t.Fatalf("original partial %d frequency changed to %v", i, p.Frequency)
		}
	}
}

func TestRetuneInvalidFundamental(t *testing.T) {
	g := testGenerator()
	partials, err := HarmonicSeries(g, 100, 2, nil)
	if err != nil {
		t.Fatalf("HarmonicSeries() error = %v", err)
	}
	if _, err := Retune(g, partials, 0); err == nil {
		t.Fatalf("Retune(0) expected error")
	}
}

func TestHarmonicSeriesDefaultsMissingAmplitudes(t *testing.T) {
	g := testGenerator()
	partials, err := HarmonicSeries(g, 100, 3, []float64{1})
	if err != nil {
		t.Fatalf("HarmonicSeries() error = %v", err)
	}
	if partials[0].Amplitude != 1 || partials[1].Amplitude != 0 || partials[2].Amplitude != 0 {
		t.Fatalf("amplitudes = %v %v %v, want 1 0 0",
			partials[0].Amplitude, partials[1].Amplitude, partials[2].Amplitude)
	}
}

func TestCurvesSharesBacking(t *testing.T) {
	g := testGenerator()
	partials, err := HarmonicSeries(g, 100, 3, []float64{1, 1, 1})
	if err != nil {
		t.Fatalf("HarmonicSeries() error = %v", err)
	}
	curves := Curves(partials)
	if len(curves) != 3 {
		t.Fatalf("len = %d, want 3", len(curves))
	}
	for i := range curves {
		testutil.RequireSameBacking(t, curves[i], partials[i].Data)
	}
}
