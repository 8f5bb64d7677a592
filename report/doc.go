// Package report renders waveform analysis results as plain-text reports,
// JSON documents, and CSV data exports inside a results directory.
package report
