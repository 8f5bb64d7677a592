package analyze

import "sort"

const (
	defaultPeakCount  = 3
	defaultPeakHeight = 0.1
	defaultMinFreq    = 1.0
)

// PeakConfig holds multi-peak detection parameters.
type PeakConfig struct {
	// Count limits how many peaks are returned, strongest first.
	Count int
	// MinFreq and MaxFreq restrict the search range in Hz. A MaxFreq <= 0
	// leaves the range unbounded above.
	MinFreq float64
	MaxFreq float64
	// Height is the minimum peak magnitude as a fraction of the spectrum
	// maximum, since detection runs on the normalized spectrum.
	Height float64
}

// DefaultPeakConfig returns the standard detection parameters: up to 3 peaks
// at or above 10% of the spectrum maximum, searched from 1 Hz upward.
func DefaultPeakConfig() PeakConfig {
	return PeakConfig{
		Count:   defaultPeakCount,
		MinFreq: defaultMinFreq,
		Height:  defaultPeakHeight,
	}
}

func normalizePeakConfig(cfg PeakConfig) PeakConfig {
	if cfg.Count <= 0 {
		cfg.Count = defaultPeakCount
	}
	if cfg.Height < 0 {
		cfg.Height = 0
	}
	return cfg
}

// Peaks detects local spectral maxima of wave within the configured frequency
// range and returns their frequencies and normalized magnitudes as parallel
// slices ranked by descending magnitude, at most cfg.Count entries long.
//
// A peak is an index whose magnitude is strictly greater than both immediate
// neighbors inside the restricted range; the first and last index of the
// range never qualify. Both slices are empty when the range is empty or no
// local maximum reaches cfg.Height.
func (a *Analyzer) Peaks(wave []float64, cfg PeakConfig) (freqs, magnitudes []float64, err error) {
	cfg = normalizePeakConfig(cfg)

	mag, err := a.Spectrum(wave, true)
	if err != nil {
		return nil, nil, err
	}

	lo, hi := a.positiveRange(cfg.MinFreq, cfg.MaxFreq)
	if lo >= hi {
		return nil, nil, nil
	}

	// freqPositive[i] corresponds to spectrum bin i+1.
	var peakIdx []int
	for i := lo + 1; i < hi-1; i++ {
		v := mag[i+1]
		if v > mag[i] && v > mag[i+2] && v >= cfg.Height {
			peakIdx = append(peakIdx, i)
		}
	}
	if len(peakIdx) == 0 {
		return nil, nil, nil
	}

	sort.SliceStable(peakIdx, func(p, q int) bool {
		return mag[peakIdx[p]+1] > mag[peakIdx[q]+1]
	})
	if len(peakIdx) > cfg.Count {
		peakIdx = peakIdx[:cfg.Count]
	}

	freqs = make([]float64, len(peakIdx))
	magnitudes = make([]float64, len(peakIdx))
	for j, i := range peakIdx {
		freqs[j] = a.freqPositive[i]
		magnitudes[j] = mag[i+1]
	}

	return freqs, magnitudes, nil
}
