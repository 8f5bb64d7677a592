package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// ExportCSV writes the time-domain series to <base>_time.csv and the
// frequency-domain series to <base>_freq.csv, returning both paths. The
// frequency series is truncated to the shorter of freq and spectrum so the
// columns stay aligned.
func (w *Writer) ExportCSV(base string, t, wave, freq, spectrum []float64) (timePath, freqPath string, err error) {
	if len(t) != len(wave) {
		return "", "", fmt.Errorf("report: time/amplitude length mismatch: %d != %d", len(t), len(wave))
	}
	if err := w.ensureDir(); err != nil {
		return "", "", err
	}

	timePath = filepath.Join(w.dir, base+"_time.csv")
	if err := writeSeries(timePath, "Time (s)", "Amplitude", t, wave); err != nil {
		return "", "", err
	}

	n := min(len(freq), len(spectrum))
	freqPath = filepath.Join(w.dir, base+"_freq.csv")
	if err := writeSeries(freqPath, "Frequency (Hz)", "Amplitude", freq[:n], spectrum[:n]); err != nil {
		return "", "", err
	}

	return timePath, freqPath, nil
}

// ExportSpectra writes several spectra against a shared frequency axis into a
// single CSV with one column per label. All spectra are truncated to the
// shortest series.
func (w *Writer) ExportSpectra(filename string, freq []float64, spectra [][]float64, labels []string) (string, error) {
	if len(spectra) == 0 || len(spectra) != len(labels) {
		return "", fmt.Errorf("report: spectra/label count mismatch: %d != %d", len(spectra), len(labels))
	}
	if err := w.ensureDir(); err != nil {
		return "", err
	}

	n := len(freq)
	for _, s := range spectra {
		n = min(n, len(s))
	}

	path := filepath.Join(w.dir, filename)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("report: create csv: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	header := append([]string{"Frequency (Hz)"}, labels...)
	if err := cw.Write(header); err != nil {
		return "", fmt.Errorf("report: write csv header: %w", err)
	}

	row := make([]string, len(header))
	for i := range n {
		row[0] = formatFloat(freq[i])
		for j, s := range spectra {
			row[j+1] = formatFloat(s[i])
		}
		if err := cw.Write(row); err != nil {
			return "", fmt.Errorf("report: write csv row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", fmt.Errorf("report: flush csv: %w", err)
	}
	return path, nil
}

func writeSeries(path, xLabel, yLabel string, x, y []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: create csv: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write([]string{xLabel, yLabel}); err != nil {
		return fmt.Errorf("report: write csv header: %w", err)
	}
	for i := range x {
		if err := cw.Write([]string{formatFloat(x[i]), formatFloat(y[i])}); err != nil {
			return fmt.Errorf("report: write csv row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("report: flush csv: %w", err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
