package pen

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestAbsoluteHandlePosition(t *testing.T) {
	a := &AnchorPoint{
		Position:  Pt(10, 10),
		HandleOut: &Handle{Position: Vec(5, -5), Visible: true},
	}

	got, ok := AbsoluteHandlePosition(a, true)
	if !ok {
		t.Fatal("expected visible out handle")
	}
	diff(t, Pt(15, 5), got)

	if _, ok := AbsoluteHandlePosition(a, false); ok {
		t.Error("expected no in handle")
	}

	a.HandleOut.Visible = false
	if _, ok := AbsoluteHandlePosition(a, true); ok {
		t.Error("expected invisible handle to report absent")
	}
}

func TestUpdateHandleMirrored(t *testing.T) {
	a := &AnchorPoint{Position: Pt(100, 100), Mirror: Mirrored}

	UpdateHandle(a, true, Pt(130, 80))

	diff(t, Vec(30, -20), a.HandleOut.Position)
	// Exact negation, both angle and length locked.
	diff(t, a.HandleOut.Position.Negate(), a.HandleIn.Position)
	if !a.HandleIn.Visible || !a.HandleOut.Visible {
		t.Error("both handles must be visible after update")
	}
}

func TestUpdateHandleAngleLocked(t *testing.T) {
	a := &AnchorPoint{
		Position: Pt(0, 0),
		HandleIn: &Handle{Position: Vec(-7, 0), Visible: true},
		Mirror:   AngleLocked,
	}

	UpdateHandle(a, true, Pt(10, 10))

	diff(t, Vec(10, 10), a.HandleOut.Position)
	// Angle is the negation of the moved direction, length is preserved.
	if got, want := a.HandleIn.Position.Hypot(), 7.0; math.Abs(got-want) > 1e-12 {
		t.Errorf("got length %g, want %g", got, want)
	}
	wantAngle := a.HandleOut.Position.Negate().Angle()
	if got := a.HandleIn.Position.Angle(); math.Abs(got-wantAngle) > 1e-12 {
		t.Errorf("got angle %g, want %g", got, wantAngle)
	}
}

func TestUpdateHandleAngleLockedSynthesizes(t *testing.T) {
	a := &AnchorPoint{Position: Pt(0, 0), Mirror: AngleLocked}

	UpdateHandle(a, false, Pt(3, 4))

	if a.HandleOut == nil || !a.HandleOut.Visible {
		t.Fatal("expected synthesized out handle")
	}
	// First propagation uses the moved handle's length.
	diff(t, Vec(-3, -4), a.HandleOut.Position)
}

func TestUpdateHandleIndependent(t *testing.T) {
	in := &Handle{Position: Vec(-1, -2), Visible: true}
	a := &AnchorPoint{Position: Pt(0, 0), HandleIn: in, Mirror: Independent}

	UpdateHandle(a, true, Pt(50, 0))

	diff(t, Vec(50, 0), a.HandleOut.Position)
	// The other handle is left untouched.
	diff(t, Vec(-1, -2), a.HandleIn.Position)
	if a.HandleIn != in {
		t.Error("in handle must not be replaced")
	}
}

func TestDefaultHandles(t *testing.T) {
	a := &AnchorPoint{Position: Pt(50, 50), Mirror: Independent}

	DefaultHandles(a, Pt(0, 0), Pt(100, 0), 10)

	diff(t, Vec(-10, 0), a.HandleIn.Position, cmpopts.EquateApprox(0, 1e-12))
	diff(t, Vec(10, 0), a.HandleOut.Position, cmpopts.EquateApprox(0, 1e-12))
	if a.Mirror != Mirrored {
		t.Errorf("got mode %v, want Mirrored", a.Mirror)
	}
	if !a.HandleIn.Visible || !a.HandleOut.Visible {
		t.Error("default handles must be visible")
	}
}

func TestDefaultHandlesZeroTangent(t *testing.T) {
	a := &AnchorPoint{Position: Pt(5, 5)}

	// Coincident neighbors leave the tangent undefined; the deterministic
	// fallback is the unit x axis.
	DefaultHandles(a, Pt(1, 1), Pt(1, 1), 4)

	diff(t, Vec(-4, 0), a.HandleIn.Position)
	diff(t, Vec(4, 0), a.HandleOut.Position)
}
