// Package manager orchestrates waveform generation, spectral analysis, and
// report writing for single waveforms, multi-width sweeps, and cross-shape
// comparison runs.
package manager
