package shape

import "github.com/iburimskiy/squarewave-background/internal/wave"

// Linear joins the points with straight segments.
func Linear(pts []wave.Point) Path {
	if len(pts) == 0 {
		return nil
	}
	p := make(Path, 0, len(pts))
	p = append(p, Segment{Op: MoveTo, Pts: []wave.Point{pts[0]}})
	for _, pt := range pts[1:] {
		p = append(p, Segment{Op: LineTo, Pts: []wave.Point{pt}})
	}
	return p
}

// BasisOpen fits an open uniform cubic B-spline through pts. The path starts
// at the B-spline point of the first three samples, so it does not touch the
// first or last sample. Fewer than three points draw nothing, exactly three
// produce a closed single point.
func BasisOpen(pts []wave.Point) Path {
	if len(pts) < 3 {
		return nil
	}
	p0, p1, p2 := pts[0], pts[1], pts[2]
	p := Path{{Op: MoveTo, Pts: []wave.Point{{
		X: (p0.X + 4*p1.X + p2.X) / 6,
		Y: (p0.Y + 4*p1.Y + p2.Y) / 6,
	}}}}
	if len(pts) == 3 {
		return append(p, Segment{Op: Close})
	}
	for k := 3; k < len(pts); k++ {
		a, b, c := pts[k-2], pts[k-1], pts[k]
		p = append(p, Segment{Op: CubicTo, Pts: []wave.Point{
			{X: (2*a.X + b.X) / 3, Y: (2*a.Y + b.Y) / 3},
			{X: (a.X + 2*b.X) / 3, Y: (a.Y + 2*b.Y) / 3},
			{X: (a.X + 4*b.X + c.X) / 6, Y: (a.Y + 4*b.Y + c.Y) / 6},
		}})
	}
	return p
}

// Draw picks the drawer: straight joins when linear is set, otherwise the
// open basis spline.
func Draw(pts []wave.Point, linear bool) Path {
	if linear {
		return Linear(pts)
	}
	return BasisOpen(pts)
}
