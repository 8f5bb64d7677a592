package analyze

// DominantFrequency locates the strongest spectral component of wave within
// [minFreq, maxFreq). A maxFreq <= 0 leaves the search unbounded above. The
// magnitude is taken from the raw (un-normalized) spectrum.
//
// When the frequency restriction leaves no candidate bins, the sentinel
// (0, 0) is returned with a nil error: an empty search range is a "no signal"
// answer, not a failure. Ties resolve to the lowest qualifying frequency.
func (a *Analyzer) DominantFrequency(wave []float64, minFreq, maxFreq float64) (freq, magnitude float64, err error) {
	mag, err := a.Spectrum(wave, false)
	if err != nil {
		return 0, 0, err
	}

	lo, hi := a.positiveRange(minFreq, maxFreq)
	if lo >= hi {
		return 0, 0, nil
	}

	// freqPositive[i] corresponds to spectrum bin i+1.
	best := lo
	for i := lo + 1; i < hi; i++ {
		if mag[i+1] > mag[best+1] {
			best = i
		}
	}

	return a.freqPositive[best], mag[best+1], nil
}
