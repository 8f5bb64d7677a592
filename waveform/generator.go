package waveform

import (
	"fmt"
	"math"
)

const (
	defaultTimeDelay  = 1e-5
	defaultPulseRatio = 0.5
)

// Shape is a waveform function mapping a time grid and a pulse width to an
// amplitude vector of the same length.
type Shape func(t []float64, width float64) ([]float64, error)

// Generator creates deterministic TEM waveforms from a shared configuration.
type Generator struct {
	timeDelay  float64 // ramp duration in seconds
	pulseRatio float64 // plateau duration as a fraction of width
}

// Option configures a Generator.
type Option func(*Generator)

// WithTimeDelay sets the ramp duration used by the ramped pulse shapes.
func WithTimeDelay(d float64) Option {
	return func(g *Generator) {
		if d > 0 {
			g.timeDelay = d
		}
	}
}

// WithPulseRatio sets the plateau duration of the differential pulse as a
// fraction of the pulse width.
func WithPulseRatio(r float64) Option {
	return func(g *Generator) {
		if r > 0 {
			g.pulseRatio = r
		}
	}
}

// NewGenerator creates a configured waveform generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		timeDelay:  defaultTimeDelay,
		pulseRatio: defaultPulseRatio,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// TimeDelay returns the configured ramp duration in seconds.
func (g *Generator) TimeDelay() float64 { return g.timeDelay }

// PulseRatio returns the configured plateau fraction.
func (g *Generator) PulseRatio() float64 { return g.pulseRatio }

func checkShapeArgs(t []float64, width float64) error {
	if len(t) == 0 {
		return fmt.Errorf("waveform: time grid must not be empty")
	}
	if width <= 0 {
		return fmt.Errorf("waveform: width must be > 0: %f", width)
	}
	return nil
}

// HalfSine generates a positive half-sine pulse: sin(pi*t/width) on
// [0, width], zero elsewhere.
func (g *Generator) HalfSine(t []float64, width float64) ([]float64, error) {
	if err := checkShapeArgs(t, width); err != nil {
		return nil, err
	}
	out := make([]float64, len(t))
	for i, ti := range t {
		if ti >= 0 && ti <= width {
			out[i] = math.Sin(math.Pi * ti / width)
		}
	}
	return out, nil
}

// Square generates a unit rectangular pulse on [0, width].
func (g *Generator) Square(t []float64, width float64) ([]float64, error) {
	if err := checkShapeArgs(t, width); err != nil {
		return nil, err
	}
	out := make([]float64, len(t))
	for i, ti := range t {
		if ti >= 0 && ti <= width {
			out[i] = 1
		}
	}
	return out, nil
}

// Triangle generates a symmetric triangular pulse rising to 1 at width/2 and
// falling back to 0 at width.
func (g *Generator) Triangle(t []float64, width float64) ([]float64, error) {
	if err := checkShapeArgs(t, width); err != nil {
		return nil, err
	}
	out := make([]float64, len(t))
	for i, ti := range t {
		switch {
		case ti >= 0 && ti <= width/2:
			out[i] = 2 * ti / width
		case ti > width/2 && ti <= width:
			out[i] = 2 - 2*ti/width
		}
	}
	return out, nil
}

// GaussianPulse generates a Gaussian pulse centered at width/2 with a
// standard deviation of width/6, so the half width spans about three sigma.
func (g *Generator) GaussianPulse(t []float64, width float64) ([]float64, error) {
	if err := checkShapeArgs(t, width); err != nil {
		return nil, err
	}
	center := width / 2
	sigma := width / 6
	out := make([]float64, len(t))
	for i, ti := range t {
		d := ti - center
		out[i] = math.Exp(-(d * d) / (2 * sigma * sigma))
	}
	return out, nil
}

// DifferentialPulse generates a bipolar pulse: a ramp up to a positive
// plateau, a ramp through zero to a negative plateau, and a ramp back to
// zero. Ramps last the configured time delay (the middle one twice that) and
// each plateau lasts width times the configured pulse ratio.
func (g *Generator) DifferentialPulse(t []float64, width float64) ([]float64, error) {
	if err := checkShapeArgs(t, width); err != nil {
		return nil, err
	}

	delay := g.timeDelay
	plateau := width * g.pulseRatio

	t1 := 0.0
	t2 := t1 + delay
	t3 := t2 + plateau
	t4 := t3 + 2*delay
	t5 := t4 + plateau
	t6 := t5 + delay

	out := make([]float64, len(t))
	for i, ti := range t {
		switch {
		case ti >= t1 && ti < t2:
			out[i] = (ti - t1) / delay
		case ti >= t2 && ti < t3:
			out[i] = 1
		case ti >= t3 && ti < t4:
			out[i] = 1 - (ti-t3)/delay
		case ti >= t4 && ti < t5:
			out[i] = -1
		case ti >= t5 && ti < t6:
			out[i] = -(t6 - ti) / delay
		}
	}
	return out, nil
}

// Trapezoid generates a trapezoidal pulse ramping 0 to 1 over the configured
// time delay, holding 1, and ramping back to 0 over the final time delay of
// the pulse. The width must leave room for both ramps.
func (g *Generator) Trapezoid(t []float64, width float64) ([]float64, error) {
	if err := checkShapeArgs(t, width); err != nil {
		return nil, err
	}
	if width < 2*g.timeDelay {
		return nil, fmt.Errorf("waveform: trapezoid width must be >= twice the time delay: %f < %f",
			width, 2*g.timeDelay)
	}

	rampEnd := g.timeDelay
	fallStart := width - g.timeDelay

	out := make([]float64, len(t))
	for i, ti := range t {
		switch {
		case ti >= 0 && ti < rampEnd:
			out[i] = ti / g.timeDelay
		case ti >= rampEnd && ti <= fallStart:
			out[i] = 1
		case ti > fallStart && ti <= width:
			out[i] = (width - ti) / g.timeDelay
		}
	}
	return out, nil
}

// StepOff generates a step-off waveform: unit amplitude until the off time
// (width), zero afterwards.
func (g *Generator) StepOff(t []float64, width float64) ([]float64, error) {
	if err := checkShapeArgs(t, width); err != nil {
		return nil, err
	}
	out := make([]float64, len(t))
	for i, ti := range t {
		if ti >= 0 && ti < width {
			out[i] = 1
		}
	}
	return out, nil
}

// Custom evaluates a user-supplied amplitude function sample by sample.
func (g *Generator) Custom(t []float64, width float64, fn func(t, width float64) float64) ([]float64, error) {
	if err := checkShapeArgs(t, width); err != nil {
		return nil, err
	}
	if fn == nil {
		return nil, fmt.Errorf("waveform: custom function must not be nil")
	}
	out := make([]float64, len(t))
	for i, ti := range t {
		out[i] = fn(ti, width)
	}
	return out, nil
}

// Linspace returns n evenly spaced values from start to stop inclusive.
func Linspace(start, stop float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("waveform: linspace needs at least 2 points: %d", n)
	}
	step := (stop - start) / float64(n-1)
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out, nil
}
