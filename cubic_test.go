package pen

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCubicBezEval(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(0, 50), Pt(50, 50), Pt(50, 0)}

	diff(t, Pt(0, 0), c.Eval(0))
	diff(t, Pt(50, 0), c.Eval(1))
	// By symmetry the midpoint sits halfway in x, at 3/4 of the control
	// height in y.
	diff(t, Pt(25, 37.5), c.Eval(0.5), cmpopts.EquateApprox(0, 1e-12))
}

func TestCubicBezSubdivideAtMatchesEval(t *testing.T) {
	c := CubicBez{Pt(0, -10), Pt(10, 20), Pt(20, -20), Pt(30, 10)}

	const n = 20
	for i := 0; i <= n; i++ {
		ts := float64(i) / float64(n)
		left, right := c.SubdivideAt(ts)
		m := c.Eval(ts)
		diff(t, m, left.P3, cmpopts.EquateApprox(0, 1e-12))
		diff(t, m, right.P0, cmpopts.EquateApprox(0, 1e-12))
		diff(t, c.P0, left.P0)
		diff(t, c.P3, right.P3)
	}
}

func TestCubicBezSubdivideAtPreservesShape(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(0, 50), Pt(50, 50), Pt(50, 0)}

	const n = 50
	for _, ts := range []float64{0.1, 0.25, 0.5, 2.0 / 3.0, 0.9} {
		left, right := c.SubdivideAt(ts)
		for i := 0; i <= n; i++ {
			u := float64(i) / float64(n)
			want := c.Eval(u)
			// Remap u onto the sub-curve parameter ranges [0, ts] and
			// [ts, 1].
			var got Point
			if u <= ts {
				got = left.Eval(u / ts)
			} else {
				got = right.Eval((u - ts) / (1 - ts))
			}
			if d := want.Distance(got); d > 1e-9 {
				t.Errorf("t=%g u=%g: split curve deviates by %g", ts, u, d)
			}
		}
	}
}

func TestCubicBezSubdivideAtHalfMatchesSubdivide(t *testing.T) {
	c := CubicBez{Pt(0, -10), Pt(10, 20), Pt(20, -20), Pt(30, 10)}
	wantL, wantR := c.Subdivide()
	gotL, gotR := c.SubdivideAt(0.5)
	diff(t, wantL, gotL, cmpopts.EquateApprox(0, 1e-12))
	diff(t, wantR, gotR, cmpopts.EquateApprox(0, 1e-12))
}

func TestCubicBezSubdivideAtEndpoints(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(0, 50), Pt(50, 50), Pt(50, 0)}

	left, right := c.SubdivideAt(0)
	diff(t, c.P0, left.P3)
	diff(t, c, right, cmpopts.EquateApprox(0, 1e-12))

	left, right = c.SubdivideAt(1)
	diff(t, c, left, cmpopts.EquateApprox(0, 1e-12))
	diff(t, c.P3, right.P0)
}

func TestCubicBezierPoint(t *testing.T) {
	p0, c1, c2, p3 := Pt(0, 0), Pt(0, 50), Pt(50, 50), Pt(50, 0)
	got := CubicBezierPoint(p0, c1, c2, p3, 0.25)
	diff(t, CubicBez{p0, c1, c2, p3}.Eval(0.25), got)
}
