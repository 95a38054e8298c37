package pen

// CubicBez is a cubic Bézier segment given by its two endpoints and two
// absolute control points.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (cb CubicBez) IsNaN() bool {
	return cb.P0.IsNaN() || cb.P1.IsNaN() || cb.P2.IsNaN() || cb.P3.IsNaN()
}

// Eval evaluates the curve at parameter t ∈ [0, 1] using the cubic
// Bernstein form (1-t)³p0 + 3(1-t)²t·p1 + 3(1-t)t²·p2 + t³p3.
func (cb CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(cb.P0).Mul(mt * mt * mt)
	b := Vec2(cb.P1).Mul(mt * mt * 3.0)
	c := Vec2(cb.P2).Mul(mt * 3.0)
	d := Vec2(cb.P3)
	v := a.Add(b.Add(c.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// SubdivideAt splits the cubic at parameter t using de Casteljau's
// algorithm. The two returned cubics together trace exactly the same curve
// as the original: the left one covers [0, t], the right one [t, 1], and
// they meet at Eval(t).
func (cb CubicBez) SubdivideAt(t float64) (CubicBez, CubicBez) {
	a := cb.P0.Lerp(cb.P1, t)
	b := cb.P1.Lerp(cb.P2, t)
	c := cb.P2.Lerp(cb.P3, t)
	aa := a.Lerp(b, t)
	bb := b.Lerp(c, t)
	m := aa.Lerp(bb, t)
	return CubicBez{cb.P0, a, aa, m}, CubicBez{m, bb, c, cb.P3}
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (cb CubicBez) Subdivide() (CubicBez, CubicBez) {
	pm := cb.Eval(0.5)
	return CubicBez{
			cb.P0,
			cb.P0.Midpoint(cb.P1),
			Point(Vec2(cb.P0).Add(Vec2(cb.P1).Mul(2.0)).Add(Vec2(cb.P2)).Mul(0.25)),
			pm,
		},
		CubicBez{
			pm,
			Point(Vec2(cb.P1).Add(Vec2(cb.P2).Mul(2.0)).Add(Vec2(cb.P3)).Mul(0.25)),
			cb.P2.Midpoint(cb.P3),
			cb.P3,
		}
}

func (cb CubicBez) Start() Point {
	return cb.P0
}

func (cb CubicBez) End() Point {
	return cb.P3
}

// CubicBezierPoint evaluates the cubic Bézier defined by the endpoints p0,
// p3 and the control points c1, c2 at parameter t.
func CubicBezierPoint(p0, c1, c2, p3 Point, t float64) Point {
	return CubicBez{p0, c1, c2, p3}.Eval(t)
}
