package waveform

// ShapeInfo pairs a built-in waveform with its CLI key and display name.
type ShapeInfo struct {
	Key  string
	Name string
	Fn   Shape
}

// Builtins lists all built-in waveform shapes in presentation order.
func (g *Generator) Builtins() []ShapeInfo {
	return []ShapeInfo{
		{Key: "half_sine", Name: "Half-Sine Wave", Fn: g.HalfSine},
		{Key: "differential", Name: "Differential Pulse", Fn: g.DifferentialPulse},
		{Key: "square", Name: "Square Wave", Fn: g.Square},
		{Key: "triangle", Name: "Triangle Wave", Fn: g.Triangle},
		{Key: "gaussian", Name: "Gaussian Pulse", Fn: g.GaussianPulse},
		{Key: "trapezoid", Name: "Trapezoid Wave", Fn: g.Trapezoid},
		{Key: "step_off", Name: "Step-Off Wave", Fn: g.StepOff},
	}
}

// ByKey looks up a built-in shape by its CLI key.
func (g *Generator) ByKey(key string) (ShapeInfo, bool) {
	for _, s := range g.Builtins() {
		if s.Key == key {
			return s, true
		}
	}
	return ShapeInfo{}, false
}
