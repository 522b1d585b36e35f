package state

// Mutation is a closed set of state transition requests. Each transition is
// keyed by the concrete mutation type; anything outside the set (including a
// nil Mutation) is an identity transition.
type Mutation interface {
	mutation()
}

// Start switches sound output on. Curves are not recomputed.
type Start struct{}

// Stop switches sound output off. Curves are not recomputed.
type Stop struct{}

// ChangeAmplitude sets the amplitude of one partial and resamples its curve.
type ChangeAmplitude struct {
	PartialIndex int
	Amplitude    float64
}

// ChangeFundamentalFrequency sets the base frequency and retunes every
// partial to its harmonic multiple.
type ChangeFundamentalFrequency struct {
	FrequencyHz float64
}

// ChangeMasterGain sets the gain applied to the combined curve.
type ChangeMasterGain struct {
	Gain float64
}

func (Start) mutation()                      {}
func (Stop) mutation()                       {}
func (ChangeAmplitude) mutation()            {}
func (ChangeFundamentalFrequency) mutation() {}
func (ChangeMasterGain) mutation()           {}
