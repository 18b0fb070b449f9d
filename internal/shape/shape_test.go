package shape_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/squarewave-background/internal/shape"
	"github.com/iburimskiy/squarewave-background/internal/wave"
)

var square = []wave.Point{{X: 0, Y: 0}, {X: 6, Y: 0}, {X: 6, Y: 6}, {X: 0, Y: 6}}

func TestLinear_Data(t *testing.T) {
	got := shape.Linear(square).Data()
	assert.Equal(t, "M0,0L6,0L6,6L0,6", got)
}

func TestData_NegativeZero(t *testing.T) {
	negZero := math.Copysign(0, -1)
	tests := []struct {
		name string
		pts  []wave.Point
		want string
	}{
		{"x", []wave.Point{{X: negZero, Y: 1}}, "M0,1"},
		{"y", []wave.Point{{X: 1, Y: negZero}}, "M1,0"},
		{"both", []wave.Point{{X: negZero, Y: negZero}, {X: -2, Y: negZero}}, "M0,0L-2,0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shape.Linear(tt.pts).Data())
		})
	}
}

func TestLinear_Empty(t *testing.T) {
	assert.Nil(t, shape.Linear(nil))
	assert.Equal(t, "", shape.Linear(nil).Data())
}

// TestBasisOpen_FourPoints checks the start point and the single cubic:
// M (p0+4p1+p2)/6, C (2p1+p2)/3, (p1+2p2)/3, (p1+4p2+p3)/6.
func TestBasisOpen_FourPoints(t *testing.T) {
	p := shape.BasisOpen(square)
	require.Len(t, p, 2)
	assert.Equal(t, shape.MoveTo, p[0].Op)
	assert.Equal(t, shape.CubicTo, p[1].Op)
	assert.Equal(t, "M5,1C6,2,6,4,5,5", p.Data())
}

func TestBasisOpen_Degenerate(t *testing.T) {
	cases := []struct {
		name string
		pts  []wave.Point
		want string
	}{
		{"Empty", nil, ""},
		{"One", square[:1], ""},
		{"Two", square[:2], ""},
		{"Three", square[:3], "M5,1Z"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, shape.BasisOpen(tc.pts).Data())
		})
	}
}

func TestBasisOpen_LongerRun(t *testing.T) {
	pts := append(append([]wave.Point{}, square...), wave.Point{X: 0, Y: 0})
	p := shape.BasisOpen(pts)
	require.Len(t, p, 3)
	assert.Equal(t, shape.CubicTo, p[2].Op)
}

func TestDraw_Toggle(t *testing.T) {
	assert.Equal(t, shape.Linear(square).Data(), shape.Draw(square, true).Data())
	assert.Equal(t, shape.BasisOpen(square).Data(), shape.Draw(square, false).Data())
}

type recorder struct{ ops []string }

func (r *recorder) MoveTo(x, y float32)              { r.ops = append(r.ops, "M") }
func (r *recorder) LineTo(x, y float32)              { r.ops = append(r.ops, "L") }
func (r *recorder) CubicTo(_, _, _, _, _, _ float32) { r.ops = append(r.ops, "C") }
func (r *recorder) Close()                           { r.ops = append(r.ops, "Z") }

func TestReplay(t *testing.T) {
	var r recorder
	shape.BasisOpen(square[:3]).Replay(&r)
	assert.Equal(t, []string{"M", "Z"}, r.ops)

	r = recorder{}
	shape.Linear(square).Replay(&r)
	assert.Equal(t, []string{"M", "L", "L", "L"}, r.ops)
}
