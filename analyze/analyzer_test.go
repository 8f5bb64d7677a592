package analyze

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func mustAnalyzer(t *testing.T, cfg Config) *Analyzer {
	t.Helper()
	a, err := New(cfg)
	if err != nil {
		t.Fatalf("New(%+v) error = %v", cfg, err)
	}
	return a
}

// sineOnBin builds a sinusoid whose frequency sits exactly on DFT bin k, so
// its spectral energy concentrates in a single bin.
func sineOnBin(a *Analyzer, bin int, amplitude float64) []float64 {
	f := float64(bin) * a.BinWidth()
	wave := make([]float64, a.Config().NSamples)
	for i := range wave {
		wave[i] = amplitude * math.Sin(2*math.Pi*f*float64(i)*a.Dt())
	}
	return wave
}

func TestNewValidation(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
	}{
		{"zero duration", Config{TMax: 0, NSamples: 100}},
		{"negative duration", Config{TMax: -1, NSamples: 100}},
		{"one sample", Config{TMax: 1, NSamples: 1}},
		{"zero samples", Config{TMax: 1, NSamples: 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.cfg); err == nil {
				t.Fatalf("New(%+v) expected error, got nil", tc.cfg)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.TMax != 1.0 {
		t.Fatalf("TMax = %v, want 1.0", cfg.TMax)
	}
	if cfg.NSamples != 100000 {
		t.Fatalf("NSamples = %v, want 100000", cfg.NSamples)
	}
}

func TestGridConstruction(t *testing.T) {
	const (
		tMax = 2.0
		n    = 1000
	)
	a := mustAnalyzer(t, Config{TMax: tMax, NSamples: n})

	wantDt := tMax / float64(n-1)
	if !almostEqual(a.Dt(), wantDt, tolerance) {
		t.Fatalf("Dt = %v, want %v", a.Dt(), wantDt)
	}

	times := a.Times()
	if len(times) != n {
		t.Fatalf("len(times) = %d, want %d", len(times), n)
	}
	if times[0] != 0 {
		t.Fatalf("times[0] = %v, want 0", times[0])
	}
	if times[n-1] != tMax {
		t.Fatalf("times[%d] = %v, want %v", n-1, times[n-1], tMax)
	}
	if !almostEqual(times[1]-times[0], wantDt, tolerance) {
		t.Fatalf("spacing = %v, want %v", times[1]-times[0], wantDt)
	}

	freq := a.Frequencies()
	if len(freq) != n/2 {
		t.Fatalf("len(freq) = %d, want %d", len(freq), n/2)
	}
	if freq[0] != 0 {
		t.Fatalf("freq[0] = %v, want 0 (DC)", freq[0])
	}

	wantBin := 1 / (float64(n) * wantDt)
	if !almostEqual(a.BinWidth(), wantBin, tolerance) {
		t.Fatalf("BinWidth = %v, want %v", a.BinWidth(), wantBin)
	}
	if !almostEqual(freq[1], wantBin, tolerance) {
		t.Fatalf("freq[1] = %v, want %v", freq[1], wantBin)
	}

	pos := a.PositiveFrequencies()
	if len(pos) != len(freq)-1 {
		t.Fatalf("len(freqPositive) = %d, want %d", len(pos), len(freq)-1)
	}
	for i, f := range pos {
		if f <= 0 {
			t.Fatalf("freqPositive[%d] = %v, want > 0", i, f)
		}
		if i > 0 && pos[i] <= pos[i-1] {
			t.Fatalf("freqPositive not ascending at %d: %v <= %v", i, pos[i], pos[i-1])
		}
	}
}

func TestGridCopiesAreIndependent(t *testing.T) {
	a := mustAnalyzer(t, Config{TMax: 1, NSamples: 100})

	times := a.Times()
	times[0] = 42

	if a.Times()[0] != 0 {
		t.Fatalf("mutating a returned grid copy changed the analyzer state")
	}
}

func TestOddSampleCountGrid(t *testing.T) {
	a := mustAnalyzer(t, Config{TMax: 1, NSamples: 101})

	if len(a.Frequencies()) != 50 {
		t.Fatalf("len(freq) = %d, want 50", len(a.Frequencies()))
	}
	if len(a.PositiveFrequencies()) != 49 {
		t.Fatalf("len(freqPositive) = %d, want 49", len(a.PositiveFrequencies()))
	}
}
