// Command temwave analyzes parametric TEM transmitter waveforms: it generates
// the built-in pulse shapes, computes their spectra and time-domain
// statistics, and writes text reports, JSON reports, and CSV data into a
// results directory.
//
// Usage:
//
//	temwave comprehensive
//	temwave single --wave-type half_sine --width 0.005
//	temwave compare --width 0.005
package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/XueJingru/tem-waveform-analysis/manager"
)

var cfg = manager.DefaultConfig()

var rootCmd = &cobra.Command{
	Use:           "temwave",
	Short:         "Analyze TEM transmitter waveforms in the time and frequency domain",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var comprehensiveCmd = &cobra.Command{
	Use:   "comprehensive",
	Short: "Analyze every built-in waveform at every configured width",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := manager.New(cfg)
		if err != nil {
			return err
		}
		if err := m.Comprehensive(); err != nil {
			return err
		}
		fmt.Printf("Analysis complete. Results written to %s.\n", cfg.ResultsDir)
		return nil
	},
}

var (
	waveType string
	width    float64
)

var singleCmd = &cobra.Command{
	Use:   "single",
	Short: "Analyze a single waveform at one width",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := manager.New(cfg)
		if err != nil {
			return err
		}

		shape, ok := m.Generator().ByKey(waveType)
		if !ok {
			return fmt.Errorf("unknown wave type %q (available: %s)", waveType, waveTypeList(m))
		}

		res, err := m.AnalyzeWaveform(shape.Fn, width, shape.Name, true)
		if err != nil {
			return err
		}

		fmt.Printf("%s (width %.1f ms)\n", shape.Name, width*1e3)
		fmt.Printf("  Dominant frequency: %.2f Hz\n", res.DominantFreq)
		fmt.Printf("  Bandwidth: %.2f Hz (%.2f - %.2f Hz at threshold %.2f)\n",
			res.Band.Width, res.Band.Low, res.Band.High, res.BandThreshold)
		fmt.Printf("  Energy: %.6f\n", res.Stats.Energy)
		fmt.Printf("Results written to %s.\n", cfg.ResultsDir)
		return nil
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare all built-in waveforms at a shared width",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := manager.New(cfg)
		if err != nil {
			return err
		}
		if _, err := m.Compare(m.Generator().Builtins(), width); err != nil {
			return err
		}
		fmt.Printf("Comparison complete. Results written to %s.\n", cfg.ResultsDir)
		return nil
	},
}

func waveTypeList(m *manager.Manager) string {
	var keys []string
	for _, s := range m.Generator().Builtins() {
		keys = append(keys, s.Key)
	}
	sort.Strings(keys)
	return strings.Join(keys, ", ")
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.ResultsDir, "results-dir", cfg.ResultsDir, "directory for reports and CSV exports")
	pf.Float64Var(&cfg.TMax, "t-max", cfg.TMax, "grid duration in seconds")
	pf.IntVar(&cfg.NSamples, "samples", cfg.NSamples, "grid sample count")
	pf.Float64Var(&cfg.TimeDelay, "time-delay", cfg.TimeDelay, "ramp duration in seconds")
	pf.BoolVar(&cfg.Progress, "progress", true, "show a progress bar during comprehensive runs")

	singleCmd.Flags().StringVar(&waveType, "wave-type", "half_sine", "waveform to analyze")
	singleCmd.Flags().Float64Var(&width, "width", 5e-3, "pulse width in seconds")
	compareCmd.Flags().Float64Var(&width, "width", 5e-3, "pulse width in seconds")

	rootCmd.AddCommand(comprehensiveCmd, singleCmd, compareCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
