// Package analyze computes frequency-domain characteristics of sampled
// transient-electromagnetic waveforms.
//
// An [Analyzer] owns an immutable time/frequency sampling grid fixed at
// construction and derives magnitude spectra, dominant frequencies, ranked
// spectral peaks, threshold bandwidths, and time-domain statistics from
// waveforms sampled on that grid. All operations are pure functions of their
// inputs plus the grid; the same Analyzer can be reused across any number of
// waveforms.
package analyze
