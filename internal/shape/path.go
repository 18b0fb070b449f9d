// Package shape turns sampled curve points into drawable path segments.
package shape

import (
	"strconv"
	"strings"

	"github.com/iburimskiy/squarewave-background/internal/wave"
)

// Op is a path command.
type Op int

const (
	MoveTo Op = iota
	LineTo
	CubicTo
	Close
)

// Segment is one path command. Pts holds 1 point for MoveTo/LineTo,
// 3 for CubicTo (two controls then the end point) and none for Close.
type Segment struct {
	Op  Op
	Pts []wave.Point
}

// Path is an ordered list of segments.
type Path []Segment

// Sink receives path commands. It is satisfied by backends that build their
// own path objects (gg contexts, ebiten vector paths).
type Sink interface {
	MoveTo(x, y float32)
	LineTo(x, y float32)
	CubicTo(x1, y1, x2, y2, x3, y3 float32)
	Close()
}

// Replay feeds every segment into s.
func (p Path) Replay(s Sink) {
	for _, seg := range p {
		switch seg.Op {
		case MoveTo:
			s.MoveTo(float32(seg.Pts[0].X), float32(seg.Pts[0].Y))
		case LineTo:
			s.LineTo(float32(seg.Pts[0].X), float32(seg.Pts[0].Y))
		case CubicTo:
			s.CubicTo(
				float32(seg.Pts[0].X), float32(seg.Pts[0].Y),
				float32(seg.Pts[1].X), float32(seg.Pts[1].Y),
				float32(seg.Pts[2].X), float32(seg.Pts[2].Y),
			)
		case Close:
			s.Close()
		}
	}
}

// Data renders the path in SVG path-data form, e.g. "M1,2C3,4,5,6,7,8".
// An empty path renders as "".
func (p Path) Data() string {
	var b strings.Builder
	for _, seg := range p {
		switch seg.Op {
		case MoveTo:
			b.WriteByte('M')
		case LineTo:
			b.WriteByte('L')
		case CubicTo:
			b.WriteByte('C')
		case Close:
			b.WriteByte('Z')
			continue
		}
		for i, pt := range seg.Pts {
			if i > 0 {
				b.WriteByte(',')
			}
			writeNum(&b, pt.X)
			b.WriteByte(',')
			writeNum(&b, pt.Y)
		}
	}
	return b.String()
}

func writeNum(b *strings.Builder, v float64) {
	if v == 0 {
		v = 0 // drop the sign of -0
	}
	b.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
}
