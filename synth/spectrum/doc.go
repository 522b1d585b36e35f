// Package spectrum renders magnitude spectra of combined synth curves.
//
// The analyzer exists for display collaborators that plot the harmonic
// content next to the time-domain curves. It windows the fixed-length curve,
// zero-pads to a power-of-two FFT size, and reports single-sided magnitudes.
package spectrum
