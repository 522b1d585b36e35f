package core

// Config defines the shared synthesis settings.
type Config struct {
	SampleRate float64
	// SampleCount is the length of every sampled curve, i.e. the
	// visualization window is SampleCount/SampleRate seconds long.
	SampleCount int
	// Harmonics is the fixed number of partials in a harmonic stack.
	Harmonics int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the stock additive-synth settings: CD-rate sampling,
// a 650-sample display window, and 13 harmonics.
func DefaultConfig() Config {
	return Config{
		SampleRate:  44100,
		SampleCount: 650,
		Harmonics:   13,
	}
}

// WithSampleRate sets the sampling rate in Hz.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *Config) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithSampleCount sets the per-curve sample count.
func WithSampleCount(samples int) Option {
	return func(cfg *Config) {
		if samples > 0 {
			cfg.SampleCount = samples
		}
	}
}

// WithHarmonics sets the number of partials in a harmonic stack.
func WithHarmonics(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.Harmonics = n
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
