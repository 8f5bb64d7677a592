package analyze

// Band describes the frequency span over which a normalized spectrum stays at
// or above a threshold. The zero value is the "no qualifying bin" sentinel.
type Band struct {
	Low   float64 `json:"low"`
	High  float64 `json:"high"`
	Width float64 `json:"width"`
}

// Bandwidth measures the span between the lowest and highest positive
// frequency bins whose normalized magnitude is at least threshold.
//
// The span runs between the extreme qualifying bins regardless of whether
// every bin in between also qualifies, so a split passband reports the full
// outer extent. The zero-value Band is returned when no bin reaches the
// threshold.
func (a *Analyzer) Bandwidth(wave []float64, threshold float64) (Band, error) {
	mag, err := a.Spectrum(wave, true)
	if err != nil {
		return Band{}, err
	}

	first, last := -1, -1
	for i := range a.freqPositive {
		if mag[i+1] >= threshold {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first < 0 {
		return Band{}, nil
	}

	low := a.freqPositive[first]
	high := a.freqPositive[last]

	return Band{Low: low, High: high, Width: high - low}, nil
}
