package manager

import (
	"fmt"
	"strings"

	"github.com/schollz/progressbar/v3"

	"github.com/XueJingru/tem-waveform-analysis/analyze"
	"github.com/XueJingru/tem-waveform-analysis/report"
	"github.com/XueJingru/tem-waveform-analysis/waveform"
)

// Config holds orchestration parameters shared by all analysis runs.
type Config struct {
	// WaveWidths are the pulse widths analyzed by multi-width sweeps, in
	// seconds.
	WaveWidths []float64
	// CompareWidths are the pulse widths used for cross-shape comparison
	// during a comprehensive run.
	CompareWidths []float64

	// TimeDelay and PulseRatio configure the waveform generator.
	TimeDelay  float64
	PulseRatio float64

	// TMax and NSamples configure the analyzer grid.
	TMax     float64
	NSamples int

	// ResultsDir receives reports and CSV exports.
	ResultsDir string

	// BandwidthThreshold is the normalized-magnitude threshold recorded with
	// every bandwidth figure.
	BandwidthThreshold float64
	// MinFreq bounds the dominant-frequency and peak searches from below.
	MinFreq float64
	// PeakCount limits how many spectral peaks are reported per waveform.
	PeakCount int
	// PeakHeight is the minimum normalized peak magnitude.
	PeakHeight float64

	// DisplayPoints and DisplaySpan control the exported time-domain series:
	// DisplayPoints samples over [0, DisplaySpan*width].
	DisplayPoints int
	DisplaySpan   float64

	// Progress enables a progress bar during comprehensive runs.
	Progress bool
}

// DefaultConfig returns the standard sweep configuration.
func DefaultConfig() Config {
	peaks := analyze.DefaultPeakConfig()
	return Config{
		WaveWidths:         []float64{0.6e-3, 1e-3, 2.5e-3, 5e-3, 10e-3, 20e-3},
		CompareWidths:      []float64{1e-3, 5e-3, 20e-3},
		TimeDelay:          1e-5,
		PulseRatio:         0.5,
		TMax:               1.0,
		NSamples:           100000,
		ResultsDir:         "waveform_results",
		BandwidthThreshold: 0.8,
		MinFreq:            peaks.MinFreq,
		PeakCount:          peaks.Count,
		PeakHeight:         peaks.Height,
		DisplayPoints:      10000,
		DisplaySpan:        3,
	}
}

// Manager wires one analyzer grid, one generator, and one report writer.
type Manager struct {
	cfg Config
	gen *waveform.Generator
	an  *analyze.Analyzer
	rep *report.Writer
}

// New creates a Manager, validating the grid configuration.
func New(cfg Config) (*Manager, error) {
	an, err := analyze.New(analyze.Config{TMax: cfg.TMax, NSamples: cfg.NSamples})
	if err != nil {
		return nil, err
	}

	gen := waveform.NewGenerator(
		waveform.WithTimeDelay(cfg.TimeDelay),
		waveform.WithPulseRatio(cfg.PulseRatio),
	)

	return &Manager{
		cfg: cfg,
		gen: gen,
		an:  an,
		rep: report.NewWriter(cfg.ResultsDir),
	}, nil
}

// Generator returns the manager's waveform generator.
func (m *Manager) Generator() *waveform.Generator { return m.gen }

// Analyzer returns the manager's spectral analyzer.
func (m *Manager) Analyzer() *analyze.Analyzer { return m.an }

// AnalyzeWaveform generates shape at the given width on the full grid, runs
// the complete analysis chain, and writes the text report, the JSON report,
// and, when exportData is set, the CSV series.
func (m *Manager) AnalyzeWaveform(shape waveform.Shape, width float64, name string, exportData bool) (report.Result, error) {
	wave, err := shape(m.an.Times(), width)
	if err != nil {
		return report.Result{}, fmt.Errorf("manager: generate %s: %w", name, err)
	}

	res, err := m.analyzeWave(wave, width, name)
	if err != nil {
		return report.Result{}, err
	}

	base := fileBase(name, width)
	if _, err := m.rep.WriteText(res, base+"_report.txt"); err != nil {
		return report.Result{}, err
	}
	if _, err := m.rep.WriteJSON(res, base+"_report.json"); err != nil {
		return report.Result{}, err
	}

	if exportData {
		if err := m.exportSeries(shape, wave, width, base); err != nil {
			return report.Result{}, err
		}
	}

	return res, nil
}

func (m *Manager) analyzeWave(wave []float64, width float64, name string) (report.Result, error) {
	domFreq, domMag, err := m.an.DominantFrequency(wave, m.cfg.MinFreq, 0)
	if err != nil {
		return report.Result{}, fmt.Errorf("manager: dominant frequency of %s: %w", name, err)
	}

	band, err := m.an.Bandwidth(wave, m.cfg.BandwidthThreshold)
	if err != nil {
		return report.Result{}, fmt.Errorf("manager: bandwidth of %s: %w", name, err)
	}

	peakFreqs, peakMags, err := m.an.Peaks(wave, analyze.PeakConfig{
		Count:   m.cfg.PeakCount,
		MinFreq: m.cfg.MinFreq,
		Height:  m.cfg.PeakHeight,
	})
	if err != nil {
		return report.Result{}, fmt.Errorf("manager: peaks of %s: %w", name, err)
	}

	stats, err := m.an.Statistics(wave)
	if err != nil {
		return report.Result{}, fmt.Errorf("manager: statistics of %s: %w", name, err)
	}

	return report.Result{
		Name:          name,
		Width:         width,
		DominantFreq:  domFreq,
		DominantMag:   domMag,
		Band:          band,
		BandThreshold: m.cfg.BandwidthThreshold,
		PeakFreqs:     peakFreqs,
		PeakMags:      peakMags,
		Stats:         stats,
	}, nil
}

// exportSeries writes the display-resolution time series and the
// positive-frequency spectrum of the analyzed waveform as CSV.
func (m *Manager) exportSeries(shape waveform.Shape, wave []float64, width float64, base string) error {
	spectrum, err := m.an.Spectrum(wave, true)
	if err != nil {
		return fmt.Errorf("manager: spectrum for export: %w", err)
	}

	tDisplay, err := waveform.Linspace(0, m.cfg.DisplaySpan*width, m.cfg.DisplayPoints)
	if err != nil {
		return fmt.Errorf("manager: display grid: %w", err)
	}
	waveDisplay, err := shape(tDisplay, width)
	if err != nil {
		return fmt.Errorf("manager: display waveform: %w", err)
	}

	// Spectrum bin i+1 belongs to PositiveFrequencies()[i].
	if _, _, err := m.rep.ExportCSV(base, tDisplay, waveDisplay, m.an.PositiveFrequencies(), spectrum[1:]); err != nil {
		return err
	}
	return nil
}

// AnalyzeWidths analyzes shape at every configured wave width.
func (m *Manager) AnalyzeWidths(shape waveform.Shape, name string) ([]report.Result, error) {
	results := make([]report.Result, 0, len(m.cfg.WaveWidths))
	for _, width := range m.cfg.WaveWidths {
		res, err := m.AnalyzeWaveform(shape, width, name, true)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

// Compare analyzes every given shape at a shared width and writes a combined
// spectrum CSV for side-by-side comparison.
func (m *Manager) Compare(shapes []waveform.ShapeInfo, width float64) ([]report.Result, error) {
	if len(shapes) == 0 {
		return nil, fmt.Errorf("manager: compare needs at least one shape")
	}

	results := make([]report.Result, 0, len(shapes))
	spectra := make([][]float64, 0, len(shapes))
	labels := make([]string, 0, len(shapes))

	for _, s := range shapes {
		res, err := m.AnalyzeWaveform(s.Fn, width, s.Name, false)
		if err != nil {
			return nil, err
		}
		results = append(results, res)

		wave, err := s.Fn(m.an.Times(), width)
		if err != nil {
			return nil, fmt.Errorf("manager: generate %s: %w", s.Name, err)
		}
		spectrum, err := m.an.Spectrum(wave, true)
		if err != nil {
			return nil, fmt.Errorf("manager: spectrum of %s: %w", s.Name, err)
		}
		spectra = append(spectra, spectrum[1:])
		labels = append(labels, s.Name)
	}

	filename := fmt.Sprintf("spectrum_comparison_%.1fms.csv", width*1e3)
	if _, err := m.rep.ExportSpectra(filename, m.an.PositiveFrequencies(), spectra, labels); err != nil {
		return nil, err
	}

	return results, nil
}

// Comprehensive analyzes every built-in shape at every configured width,
// then runs cross-shape comparisons at the configured comparison widths.
func (m *Manager) Comprehensive() error {
	shapes := m.gen.Builtins()

	var bar *progressbar.ProgressBar
	if m.cfg.Progress {
		bar = progressbar.NewOptions(len(shapes)*len(m.cfg.WaveWidths),
			progressbar.OptionSetDescription("analyzing waveforms"),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWidth(50),
		)
	}

	for _, s := range shapes {
		for _, width := range m.cfg.WaveWidths {
			if _, err := m.AnalyzeWaveform(s.Fn, width, s.Name, true); err != nil {
				return err
			}
			if bar != nil {
				_ = bar.Add(1)
			}
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}

	for _, width := range m.cfg.CompareWidths {
		if _, err := m.Compare(shapes, width); err != nil {
			return err
		}
	}

	return nil
}

// fileBase builds the artifact name prefix for a waveform at a width.
func fileBase(name string, width float64) string {
	return fmt.Sprintf("%s_%.1fms", strings.ReplaceAll(name, " ", "_"), width*1e3)
}
