package pen

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(-10, 0), Pt(0, 0).Translate(Vec(-10, 0)))
	diff(t, Vec(3, 4), Pt(5, 6).Sub(Pt(2, 2)))
	diff(t, Pt(5, 5), Pt(0, 0).Lerp(Pt(10, 10), 0.5))
	diff(t, Pt(5, 5), Pt(0, 0).Midpoint(Pt(10, 10)))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
	if d := p3.DistanceSquared(p4); d != 25 {
		t.Errorf("got squared distance %v, want 25", d)
	}
}

func TestVec2Arithmetic(t *testing.T) {
	diff(t, Vec(4, 6), Vec(1, 2).Add(Vec(3, 4)))
	diff(t, Vec(-2, -2), Vec(1, 2).Sub(Vec(3, 4)))
	diff(t, Vec(2, 4), Vec(1, 2).Mul(2))
	diff(t, Vec(1, 2), Vec(2, 4).Div(2))
	diff(t, Vec(-1, -2), Vec(1, 2).Negate())
}

func TestVec2Hypot(t *testing.T) {
	v := Vec(3, 4)
	if got := v.Hypot(); got != 5 {
		t.Errorf("got %v, want 5", got)
	}
	if got := v.Hypot2(); got != 25 {
		t.Errorf("got %v, want 25", got)
	}
}

func TestVec2Normalize(t *testing.T) {
	v := Vec(0, -7).Normalize()
	diff(t, Vec(0, -1), v)
	if got := Vec(0, 0).Normalize(); !got.IsNaN() {
		t.Errorf("normalizing the zero vector should yield NaN, got %v", got)
	}
}

func TestVec2Angle(t *testing.T) {
	if got := Vec(1, 0).Angle(); got != 0 {
		t.Errorf("got %v, want 0", got)
	}
	if got := Vec(0, 1).Angle(); math.Abs(got-math.Pi/2) > 1e-15 {
		t.Errorf("got %v, want π/2", got)
	}
}
