package analyze

import (
	"testing"
)

// twoTone builds a wave with an on-bin tone at binA (amplitude 1) and a
// second on-bin tone at binB with the given relative amplitude.
func twoTone(a *Analyzer, binA, binB int, relB float64) []float64 {
	strong := sineOnBin(a, binA, 1)
	weak := sineOnBin(a, binB, relB)
	wave := make([]float64, len(strong))
	for i := range wave {
		wave[i] = strong[i] + weak[i]
	}
	return wave
}

func TestPeaksTwoTones(t *testing.T) {
	a := mustAnalyzer(t, Config{TMax: 1, NSamples: 10000})
	wave := twoTone(a, 100, 200, 0.5)

	freqs, mags, err := a.Peaks(wave, DefaultPeakConfig())
	if err != nil {
		t.Fatalf("Peaks() error = %v", err)
	}
	if len(freqs) != 2 || len(mags) != 2 {
		t.Fatalf("got %d peaks, want 2", len(freqs))
	}

	if !almostEqual(freqs[0], 100*a.BinWidth(), tolerance) {
		t.Fatalf("strongest peak at %v Hz, want %v", freqs[0], 100*a.BinWidth())
	}
	if !almostEqual(freqs[1], 200*a.BinWidth(), tolerance) {
		t.Fatalf("second peak at %v Hz, want %v", freqs[1], 200*a.BinWidth())
	}
	if !almostEqual(mags[0], 1, 1e-6) {
		t.Fatalf("strongest magnitude = %v, want ~1 (normalized)", mags[0])
	}
	if !almostEqual(mags[1], 0.5, 1e-6) {
		t.Fatalf("second magnitude = %v, want ~0.5", mags[1])
	}
}

func TestPeaksDescendingOrder(t *testing.T) {
	a := mustAnalyzer(t, Config{TMax: 1, NSamples: 10000})

	wave := sineOnBin(a, 50, 0.3)
	for _, tone := range []struct {
		bin int
		amp float64
	}{{120, 1}, {260, 0.7}} {
		add := sineOnBin(a, tone.bin, tone.amp)
		for i := range wave {
			wave[i] += add[i]
		}
	}

	_, mags, err := a.Peaks(wave, PeakConfig{Count: 5, MinFreq: 1, Height: 0.1})
	if err != nil {
		t.Fatalf("Peaks() error = %v", err)
	}
	if len(mags) != 3 {
		t.Fatalf("got %d peaks, want 3", len(mags))
	}
	for i := 1; i < len(mags); i++ {
		if mags[i] >= mags[i-1] {
			t.Fatalf("magnitudes not strictly descending: %v", mags)
		}
	}
}

func TestPeaksHeightFilter(t *testing.T) {
	a := mustAnalyzer(t, Config{TMax: 1, NSamples: 10000})
	wave := twoTone(a, 100, 200, 0.5)

	freqs, _, err := a.Peaks(wave, PeakConfig{Count: 3, MinFreq: 1, Height: 0.6})
	if err != nil {
		t.Fatalf("Peaks() error = %v", err)
	}
	if len(freqs) != 1 {
		t.Fatalf("got %d peaks above height 0.6, want 1", len(freqs))
	}
	if !almostEqual(freqs[0], 100*a.BinWidth(), tolerance) {
		t.Fatalf("surviving peak at %v Hz, want %v", freqs[0], 100*a.BinWidth())
	}
}

func TestPeaksCountLimit(t *testing.T) {
	a := mustAnalyzer(t, Config{TMax: 1, NSamples: 10000})

	wave := make([]float64, a.Config().NSamples)
	for _, bin := range []int{60, 120, 180, 240, 300} {
		add := sineOnBin(a, bin, 1)
		for i := range wave {
			wave[i] += add[i]
		}
	}

	freqs, _, err := a.Peaks(wave, PeakConfig{Count: 2, MinFreq: 1, Height: 0.1})
	if err != nil {
		t.Fatalf("Peaks() error = %v", err)
	}
	if len(freqs) > 2 {
		t.Fatalf("got %d peaks, want at most 2", len(freqs))
	}
}

func TestPeaksEmptyRange(t *testing.T) {
	a := mustAnalyzer(t, Config{TMax: 1, NSamples: 100})
	wave := sineOnBin(a, 10, 1)

	freqs, mags, err := a.Peaks(wave, PeakConfig{Count: 3, MinFreq: 1000, Height: 0.1})
	if err != nil {
		t.Fatalf("Peaks() error = %v", err)
	}
	if len(freqs) != 0 || len(mags) != 0 {
		t.Fatalf("empty range returned %d peaks, want none", len(freqs))
	}
}

func TestPeaksNoneAboveHeight(t *testing.T) {
	a := mustAnalyzer(t, Config{TMax: 1, NSamples: 1000})

	freqs, mags, err := a.Peaks(make([]float64, 1000), DefaultPeakConfig())
	if err != nil {
		t.Fatalf("Peaks() error = %v", err)
	}
	if len(freqs) != 0 || len(mags) != 0 {
		t.Fatalf("zero wave returned %d peaks, want none", len(freqs))
	}
}

func TestNormalizePeakConfig(t *testing.T) {
	cfg := normalizePeakConfig(PeakConfig{Count: 0, Height: -1})
	if cfg.Count != defaultPeakCount {
		t.Fatalf("Count = %d, want %d", cfg.Count, defaultPeakCount)
	}
	if cfg.Height != 0 {
		t.Fatalf("Height = %v, want 0", cfg.Height)
	}
}
