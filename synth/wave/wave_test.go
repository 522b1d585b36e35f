package wave

import (
	"testing"

	"github.com/cwbudde/algo-additive/internal/testutil"
	"github.com/cwbudde/algo-additive/synth/core"
)

func TestSineMatchesDefinition(t *testing.T) {
	got, err := Sine(261.63, 0.5, 650, 44100)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}
	want := testutil.ReferenceSine(261.63, 0.5, 650, 44100)
	testutil.RequireSliceNearlyEqual(t, got, want, 0)
	testutil.RequireFinite(t, got)
}

func TestSineDeterministic(t *testing.T) {
	a, err := Sine(440, 1, 128, 44100)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}
	b, err := Sine(440, 1, 128, 44100)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs across identical calls: %v != %v", i, a[i], b[i])
		}
	}
}

func TestSineStartsAtZero(t *testing.T) {
	s, err := Sine(1000, 1, 16, 48000)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}
	if s[0] != 0 {
		t.Fatalf("sample 0 = %v, want 0", s[0])
	}
}

func TestSineZeroAmplitude(t *testing.T) {
	s, err := Sine(440, 0, 64, 44100)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}
	for i, v := range s {
		if v != 0 {
			t.Fatalf("sample %d = %v, want 0", i, v)
		}
	}
}

func TestSineInvalidParameters(t *testing.T) {
	tests := []struct {
		name       string
		freqHz     float64
		samples    int
		sampleRate float64
	}{
		{"zero samples", 440, 0, 44100},
		{"negative samples", 440, -1, 44100},
		{"zero sample rate", 440, 64, 0},
		{"negative sample rate", 440, 64, -44100},
		{"zero frequency", 0, 64, 44100},
		{"negative frequency", -440, 64, 44100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Sine(tt.freqHz, 1, tt.samples, tt.sampleRate); err == nil {
				t.Fatalf("Sine(%v, 1, %d, %v) expected error", tt.freqHz, tt.samples, tt.sampleRate)
			}
		})
	}
}

func TestGeneratorCurveUsesConfig(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(48000), core.WithSampleCount(100))
	got, err := g.Curve(500, 0.25)
	if err != nil {
		t.Fatalf("Curve() error = %v", err)
	}
	if len(got) != 100 {
		t.Fatalf("len = %d, want 100", len(got))
	}
	want := testutil.ReferenceSine(500, 0.25, 100, 48000)
	testutil.RequireSliceNearlyEqual(t, got, want, 0)
}

func TestGeneratorDefaults(t *testing.T) {
	g := NewGenerator()
	cfg := g.Config()
	if cfg.SampleRate != 44100 || cfg.SampleCount != 650 || cfg.Harmonics != 13 {
		t.Fatalf("unexpected default config: %+v", cfg)
	}
}
