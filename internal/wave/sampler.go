package wave

const (
	// PhaseStep scales curve index and offset into sample time.
	PhaseStep = 314
	// Samples is the number of points per curve.
	Samples = 4
)

// Point is a sampled curve position relative to the canvas centre.
type Point struct {
	X, Y float64
}

// Oscillator holds everything the sampler needs to place one curve's points.
type Oscillator struct {
	XAmplitude  float64
	YAmplitude  float64
	XMultiplier float64
	YMultiplier float64
	Omega       float64
	Harmonics   []int
	Offset      float64
}

// SampleTimes returns the x and y sample times for point i of curve batch.
func (o Oscillator) SampleTimes(batch, i int) (tx, ty float64) {
	phase := float64(i+batch) + o.Offset
	return PhaseStep * o.XMultiplier * phase, PhaseStep * o.YMultiplier * phase
}

// Curve samples the points of curve batch: sine series on x, cosine on y.
func (o Oscillator) Curve(batch int) []Point {
	pts := make([]Point, Samples)
	for i := range pts {
		tx, ty := o.SampleTimes(batch, i)
		pts[i] = Point{
			X: Sum(o.XAmplitude, o.Omega, tx, o.Harmonics, Sin),
			Y: Sum(o.YAmplitude, o.Omega, ty, o.Harmonics, Cos),
		}
	}
	return pts
}
