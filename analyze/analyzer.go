package analyze

import (
	"fmt"
	"sort"
)

const (
	defaultTMax     = 1.0
	defaultNSamples = 100000
)

// Config holds the sampling-grid parameters of an Analyzer.
type Config struct {
	// TMax is the total duration of the time grid in seconds.
	TMax float64
	// NSamples is the number of evenly spaced samples on [0, TMax].
	NSamples int
}

// DefaultConfig returns the default grid: 1 second, 100000 samples.
func DefaultConfig() Config {
	return Config{
		TMax:     defaultTMax,
		NSamples: defaultNSamples,
	}
}

// Analyzer computes spectral and statistical features of waveforms sampled
// on a fixed grid. The grid is immutable after construction; build a new
// Analyzer to analyze waveforms on a different grid.
type Analyzer struct {
	cfg   Config
	dt    float64
	times []float64
	// freq holds the first NSamples/2 DFT bin frequencies, bin 0 being DC.
	freq []float64
	// freqPositive is freq without the DC bin.
	freqPositive []float64
}

// New creates an Analyzer and precomputes its time and frequency grids.
func New(cfg Config) (*Analyzer, error) {
	if cfg.TMax <= 0 {
		return nil, fmt.Errorf("analyze: t_max must be > 0: %f", cfg.TMax)
	}
	if cfg.NSamples < 2 {
		return nil, fmt.Errorf("analyze: sample count must be >= 2: %d", cfg.NSamples)
	}

	n := cfg.NSamples
	dt := cfg.TMax / float64(n-1)

	times := make([]float64, n)
	for i := range times {
		times[i] = float64(i) * dt
	}
	times[n-1] = cfg.TMax

	// Positive half of the standard DFT bin layout: bin k sits at k/(n*dt).
	binHz := 1 / (float64(n) * dt)
	freq := make([]float64, n/2)
	for k := range freq {
		freq[k] = float64(k) * binHz
	}

	return &Analyzer{
		cfg:          cfg,
		dt:           dt,
		times:        times,
		freq:         freq,
		freqPositive: freq[1:],
	}, nil
}

// Config returns the grid parameters the Analyzer was built with.
func (a *Analyzer) Config() Config { return a.cfg }

// Dt returns the spacing between consecutive time samples in seconds.
func (a *Analyzer) Dt() float64 { return a.dt }

// BinWidth returns the frequency spacing between DFT bins in Hz.
func (a *Analyzer) BinWidth() float64 { return 1 / (float64(a.cfg.NSamples) * a.dt) }

// Times returns a copy of the time grid.
func (a *Analyzer) Times() []float64 {
	return append([]float64(nil), a.times...)
}

// Frequencies returns a copy of the frequency grid, including the DC bin.
func (a *Analyzer) Frequencies() []float64 {
	return append([]float64(nil), a.freq...)
}

// PositiveFrequencies returns a copy of the frequency grid without the DC bin.
func (a *Analyzer) PositiveFrequencies() []float64 {
	return append([]float64(nil), a.freqPositive...)
}

// positiveRange returns the half-open index range [lo, hi) into freqPositive
// covering frequencies >= minFreq and, when maxFreq > 0, < maxFreq. The lower
// index is clamped to at least 1 so the bin adjacent to DC is never selected.
func (a *Analyzer) positiveRange(minFreq, maxFreq float64) (lo, hi int) {
	lo = sort.SearchFloat64s(a.freqPositive, minFreq)
	if lo < 1 {
		lo = 1
	}
	hi = len(a.freqPositive)
	if maxFreq > 0 {
		hi = sort.SearchFloat64s(a.freqPositive, maxFreq)
	}
	return lo, hi
}
