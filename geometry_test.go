package segdisplay

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Binary-exact dimensions keep mirrored coordinates comparable with ==.
const (
	testWidth     = 30.0
	testHeight    = 50.0
	testThickness = 5.0
	testSpacing   = 1.0
)

func mirrorX(poly []Point) []Point {
	out := make([]Point, len(poly))
	for i, p := range poly {
		out[i] = Point{X: -p.X, Y: p.Y}
	}
	return out
}

func mirrorY(poly []Point) []Point {
	out := make([]Point, len(poly))
	for i, p := range poly {
		out[i] = Point{X: p.X, Y: -p.Y}
	}
	return out
}

func TestGeometryShapes(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			polys := k.Geometry(testWidth, testHeight, testThickness, testSpacing, 0)
			require.Len(t, polys, k.SegmentCount())

			for i, poly := range polys {
				assert.GreaterOrEqual(t, len(poly), 4, "segment %d", i)
				assert.LessOrEqual(t, len(poly), 6, "segment %d", i)
				for _, p := range poly {
					assert.False(t, math.IsNaN(p.X) || math.IsNaN(p.Y), "segment %d has NaN", i)
					assert.LessOrEqual(t, math.Abs(p.X), testWidth/2, "segment %d x", i)
					assert.LessOrEqual(t, math.Abs(p.Y), testHeight/2, "segment %d y", i)
				}
			}
		})
	}
}

func TestSevenSegmentSymmetry(t *testing.T) {
	polys := SevenSegment.Geometry(testWidth, testHeight, testThickness, testSpacing, 0)
	const a, b, c, d, e, f = 0, 1, 2, 3, 4, 5

	assert.ElementsMatch(t, polys[d], mirrorY(polys[a]), "D mirrors A")
	assert.ElementsMatch(t, polys[f], mirrorX(polys[b]), "F mirrors B")
	assert.ElementsMatch(t, polys[e], mirrorX(polys[c]), "E mirrors C")
	assert.ElementsMatch(t, polys[c], mirrorY(polys[b]), "C mirrors B")
}

func TestSixteenSegmentSymmetry(t *testing.T) {
	polys := SixteenSegment.Geometry(testWidth, testHeight, testThickness, testSpacing, 0)
	pairs := []struct {
		name        string
		left, right int
	}{
		{"A", 0, 1},
		{"D", 5, 4},
		{"G", 8, 9},
		{"H/J", 10, 12},
		{"M/K", 15, 13},
	}
	for _, p := range pairs {
		assert.ElementsMatch(t, polys[p.right], mirrorX(polys[p.left]), p.name)
	}

	// I and L are centred verticals.
	assert.ElementsMatch(t, polys[11], mirrorX(polys[11]))
	assert.ElementsMatch(t, polys[14], mirrorY(polys[11]))
}

func TestNineSegmentDiagonalsMeetAtCentre(t *testing.T) {
	polys := NineSegment.Geometry(testWidth, testHeight, testThickness, testSpacing, 0)
	h, i := polys[7], polys[8]
	qt := testThickness / 4

	require.Len(t, h, 4)
	require.Len(t, i, 4)
	// Bottom end of H and top end of I are centred on x = 0.
	assert.InDelta(t, qt, h[2].X, 1e-9)
	assert.InDelta(t, -qt, h[3].X, 1e-9)
	assert.InDelta(t, -qt, i[0].X, 1e-9)
	assert.InDelta(t, qt, i[1].X, 1e-9)
	// H runs from the upper right, I towards the lower left.
	assert.Greater(t, h[0].X, 0.0)
	assert.Less(t, i[3].X, 0.0)
	assert.Less(t, h[2].Y, i[0].Y)
}

func TestGeometryMedianMovesMiddleBar(t *testing.T) {
	const median = -4.0
	polys := SevenSegment.Geometry(testWidth, testHeight, testThickness, testSpacing, median)
	g := polys[6]

	var sum float64
	for _, p := range g {
		sum += p.Y
	}
	assert.InDelta(t, median, sum/float64(len(g)), 1e-9)

	// Upper verticals end above the midline, lower ones start below it.
	assert.Less(t, polys[1][3].Y, median)
	assert.Greater(t, polys[2][0].Y, median)
}

func TestGeometryInvalidKindPanics(t *testing.T) {
	assert.Panics(t, func() { Kind(42).Geometry(testWidth, testHeight, testThickness, testSpacing, 0) })
	assert.Panics(t, func() { Kind(42).SegmentCount() })
}

func BenchmarkGeometry(b *testing.B) {
	for _, k := range Kinds() {
		b.Run(k.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = k.Geometry(testWidth, testHeight, testThickness, testSpacing, 0)
			}
		})
	}
}

// separated reports whether two convex polygons have disjoint interiors.
// Touching edges count as separated.
func separated(p, q []Point) bool {
	const eps = 1e-9
	axes := []Point{{X: 1}, {Y: 1}}
	for _, poly := range [][]Point{p, q} {
		for i, a := range poly {
			d := poly[(i+1)%len(poly)].Sub(a)
			if n := math.Hypot(d.X, d.Y); n > eps {
				axes = append(axes, Point{X: -d.Y / n, Y: d.X / n})
			}
		}
	}
	project := func(poly []Point, axis Point) (float64, float64) {
		lo, hi := math.Inf(1), math.Inf(-1)
		for _, pt := range poly {
			v := pt.X*axis.X + pt.Y*axis.Y
			lo, hi = min(lo, v), max(hi, v)
		}
		return lo, hi
	}
	for _, axis := range axes {
		p0, p1 := project(p, axis)
		q0, q1 := project(q, axis)
		if p1 <= q0+eps || q1 <= p0+eps {
			return true
		}
	}
	return false
}

// convex reports whether poly turns the same way at every non-degenerate
// vertex.
func convex(poly []Point) bool {
	sign := 0.0
	for i := range poly {
		a, b, c := poly[i], poly[(i+1)%len(poly)], poly[(i+2)%len(poly)]
		cross := (b.X-a.X)*(c.Y-b.Y) - (b.Y-a.Y)*(c.X-b.X)
		if math.Abs(cross) < 1e-9 {
			continue
		}
		if sign == 0 {
			sign = cross
		} else if sign*cross < 0 {
			return false
		}
	}
	return true
}

type geometryCase struct {
	name   string
	width  float64
	height float64
	thick  float64
	space  float64
	median float64
}

func geometryCases() []geometryCase {
	const h = 48.0
	var cases []geometryCase
	for _, p := range MetricsPresets() {
		r := p.Metrics().Resolve(h)
		cases = append(cases, geometryCase{p.String(), r.DigitWidth, h, r.SegmentThickness, r.SegmentSpacing, r.DigitMedian})
	}
	for _, t := range []float64{0.05, 0.1, 0.15, 0.2} {
		for _, s := range []float64{0, 0.01, 0.03} {
			for _, m := range []float64{-0.1, 0, 0.1} {
				cases = append(cases, geometryCase{
					name:   fmt.Sprintf("t=%v s=%v m=%v", t, s, m),
					width:  0.6 * h,
					height: h,
					thick:  t * h,
					space:  s * h,
					median: m * h / 2,
				})
			}
		}
	}
	return cases
}

func TestGeometrySegmentsDoNotOverlap(t *testing.T) {
	for _, k := range Kinds() {
		for _, c := range geometryCases() {
			t.Run(k.String()+"/"+c.name, func(t *testing.T) {
				polys := k.Geometry(c.width, c.height, c.thick, c.space, c.median)
				for i, p := range polys {
					assert.True(t, convex(p), "segment %d is not convex: %v", i, p)
				}
				for i := range polys {
					for j := i + 1; j < len(polys); j++ {
						assert.True(t, separated(polys[i], polys[j]),
							"segments %d and %d overlap: %v %v", i, j, polys[i], polys[j])
					}
				}
			})
		}
	}
}

func TestGeometryDiagonalDirections(t *testing.T) {
	// falling runs from upper left to lower right.
	diagonals := map[Kind]map[int]bool{
		NineSegment:    {7: false, 8: false},
		SixteenSegment: {10: true, 12: false, 13: true, 15: false},
	}
	for k, segs := range diagonals {
		for _, c := range geometryCases() {
			polys := k.Geometry(c.width, c.height, c.thick, c.space, c.median)
			for seg, falling := range segs {
				p := polys[seg]
				require.Len(t, p, 4)
				top := (p[0].X + p[1].X) / 2
				bottom := (p[2].X + p[3].X) / 2
				if falling {
					assert.LessOrEqual(t, top, bottom+1e-9, "%v/%s segment %d", k, c.name, seg)
				} else {
					assert.GreaterOrEqual(t, top, bottom-1e-9, "%v/%s segment %d", k, c.name, seg)
				}
			}
		}
	}
}

func TestSixteenSegmentTightDiagonals(t *testing.T) {
	// Knight rider proportions leave no room beside the centre verticals.
	r := MetricsKnightRider.Metrics().Resolve(48)
	polys := SixteenSegment.Geometry(r.DigitWidth, r.DigitHeight, r.SegmentThickness, r.SegmentSpacing, r.DigitMedian)

	h, i := polys[10], polys[11]
	assert.True(t, separated(h, i), "H must stay out of the centre vertical")
	for _, p := range h {
		assert.LessOrEqual(t, p.X, -r.SegmentThickness/2+1e-9)
	}
}
