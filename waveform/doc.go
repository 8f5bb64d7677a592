// Package waveform generates parametric time-domain transmitter waveforms
// used in transient electromagnetic sounding.
//
// All shapes are pure closed-form maps from a time grid and a pulse width to
// an amplitude vector. The generator holds only the shared ramp and duty
// parameters; it performs no analysis and no I/O.
package waveform
