package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/XueJingru/tem-waveform-analysis/analyze"
)

// Result aggregates the analysis outputs for a single waveform.
type Result struct {
	Name  string  `json:"name"`
	Width float64 `json:"width"` // pulse width in seconds

	DominantFreq float64 `json:"dominant_freq"` // Hz
	DominantMag  float64 `json:"dominant_magnitude"`

	Band          analyze.Band `json:"bandwidth"`
	BandThreshold float64      `json:"bandwidth_threshold"`

	PeakFreqs []float64 `json:"peak_frequencies"`
	PeakMags  []float64 `json:"peak_magnitudes"`

	Stats analyze.Stats `json:"stats"`
}

// Writer persists analysis artifacts into a results directory, which is
// created on first use.
type Writer struct {
	dir string
}

// NewWriter creates a Writer rooted at dir.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Dir returns the results directory path.
func (w *Writer) Dir() string { return w.dir }

func (w *Writer) ensureDir() error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("report: create results dir: %w", err)
	}
	return nil
}

// WriteText renders res as a plain-text analysis report and returns the path
// of the written file.
func (w *Writer) WriteText(res Result, filename string) (string, error) {
	if err := w.ensureDir(); err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Waveform Analysis Report\n")
	fmt.Fprintf(&b, "%s\n\n", strings.Repeat("=", 50))

	fmt.Fprintf(&b, "Waveform: %s\n", res.Name)
	fmt.Fprintf(&b, "Width: %.2f ms\n\n", res.Width*1e3)

	fmt.Fprintf(&b, "Time-domain statistics:\n")
	fmt.Fprintf(&b, "  Mean:         %.6f\n", res.Stats.Mean)
	fmt.Fprintf(&b, "  Std:          %.6f\n", res.Stats.Std)
	fmt.Fprintf(&b, "  Min:          %.6f\n", res.Stats.Min)
	fmt.Fprintf(&b, "  Max:          %.6f\n", res.Stats.Max)
	fmt.Fprintf(&b, "  Peak-to-peak: %.6f\n", res.Stats.PeakToPeak)
	fmt.Fprintf(&b, "  RMS:          %.6f\n", res.Stats.RMS)
	fmt.Fprintf(&b, "  Energy:       %.6f\n\n", res.Stats.Energy)

	fmt.Fprintf(&b, "Frequency-domain analysis:\n")
	fmt.Fprintf(&b, "  Dominant frequency: %.2f Hz\n", res.DominantFreq)
	fmt.Fprintf(&b, "  Dominant magnitude: %.6f\n", res.DominantMag)
	fmt.Fprintf(&b, "  Bandwidth (threshold %.2f):\n", res.BandThreshold)
	fmt.Fprintf(&b, "    Low:   %.2f Hz\n", res.Band.Low)
	fmt.Fprintf(&b, "    High:  %.2f Hz\n", res.Band.High)
	fmt.Fprintf(&b, "    Width: %.2f Hz\n\n", res.Band.Width)

	if len(res.PeakFreqs) > 0 {
		fmt.Fprintf(&b, "Peak analysis:\n")
		for i, f := range res.PeakFreqs {
			fmt.Fprintf(&b, "  Peak %d: %.2f Hz (magnitude %.6f)\n", i+1, f, res.PeakMags[i])
		}
		fmt.Fprintf(&b, "\n")
	}

	fmt.Fprintf(&b, "Generated: %s\n", time.Now().Format("2006-01-02 15:04:05"))

	path := filepath.Join(w.dir, filename)
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("report: write text report: %w", err)
	}
	return path, nil
}

// WriteJSON serializes res as indented JSON and returns the path of the
// written file.
func (w *Writer) WriteJSON(res Result, filename string) (string, error) {
	if err := w.ensureDir(); err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return "", fmt.Errorf("report: marshal result: %w", err)
	}
	data = append(data, '\n')

	path := filepath.Join(w.dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("report: write json report: %w", err)
	}
	return path, nil
}
