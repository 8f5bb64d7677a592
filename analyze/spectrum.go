package analyze

import (
	"fmt"

	vecmath "github.com/cwbudde/algo-vecmath"
	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/floats"
)

// Spectrum computes the magnitude spectrum of wave over the positive-frequency
// half of the grid.
//
// The returned slice holds one non-negative magnitude per entry of
// [Analyzer.Frequencies] (length NSamples/2). Raw magnitudes are |X[k]|
// scaled by 1/NSamples. With normalize set, the result is additionally
// divided by its maximum so values fall in [0, 1]; an all-zero spectrum is
// returned unchanged to avoid division by zero.
//
// The wave length must match the grid's sample count exactly, since the bin
// mapping assumes full alignment.
func (a *Analyzer) Spectrum(wave []float64, normalize bool) ([]float64, error) {
	if len(wave) != a.cfg.NSamples {
		return nil, fmt.Errorf("analyze: wave length %d does not match grid sample count %d",
			len(wave), a.cfg.NSamples)
	}

	bins := fft.FFTReal(wave)

	n := len(a.freq)
	re := make([]float64, n)
	im := make([]float64, n)
	for i := range n {
		re[i] = real(bins[i])
		im[i] = imag(bins[i])
	}

	mag := make([]float64, n)
	vecmath.Magnitude(mag, re, im)
	vecmath.ScaleBlock(mag, mag, 1/float64(a.cfg.NSamples))

	if normalize {
		if m := floats.Max(mag); m > 0 {
			vecmath.ScaleBlock(mag, mag, 1/m)
		}
	}

	return mag, nil
}
