package analyze

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var errEmptyWave = errors.New("analyze: wave must not be empty")

// Stats holds time-domain statistics of a sampled waveform.
type Stats struct {
	Mean       float64 `json:"mean"`
	Std        float64 `json:"std"` // population standard deviation
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
	PeakToPeak float64 `json:"peak_to_peak"`
	RMS        float64 `json:"rms"`
	Energy     float64 `json:"energy"`
}

// Energy approximates the signal energy of wave as the Riemann sum of squared
// amplitudes times the grid's sample spacing.
func (a *Analyzer) Energy(wave []float64) (float64, error) {
	if len(wave) == 0 {
		return 0, errEmptyWave
	}
	return floats.Dot(wave, wave) * a.dt, nil
}

// Statistics computes the time-domain statistics of wave.
func (a *Analyzer) Statistics(wave []float64) (Stats, error) {
	if len(wave) == 0 {
		return Stats{}, errEmptyWave
	}

	minVal := floats.Min(wave)
	maxVal := floats.Max(wave)
	sumSq := floats.Dot(wave, wave)

	return Stats{
		Mean:       stat.Mean(wave, nil),
		Std:        stat.PopStdDev(wave, nil),
		Min:        minVal,
		Max:        maxVal,
		PeakToPeak: maxVal - minVal,
		RMS:        math.Sqrt(sumSq / float64(len(wave))),
		Energy:     sumSq * a.dt,
	}, nil
}
