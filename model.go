package pen

import "fmt"

// MirrorMode is the constraint relating an anchor's two handles.
type MirrorMode int

const (
	// Mirrored locks both angle and length: the two handles are exact
	// negations of each other.
	Mirrored MirrorMode = iota
	// AngleLocked locks the angle only: the handles stay collinear, but
	// each keeps its own length.
	AngleLocked
	// Independent leaves the handles unconstrained.
	Independent
)

func (m MirrorMode) String() string {
	switch m {
	case Mirrored:
		return "Mirrored"
	case AngleLocked:
		return "AngleLocked"
	case Independent:
		return "Independent"
	default:
		return fmt.Sprintf("MirrorMode(%d)", int(m))
	}
}

// Handle is a control point offset governing the curvature of the segment
// adjacent to an anchor. Position is relative to the owning anchor, not
// absolute. A handle with Visible == false contributes no curvature; its
// segment side degenerates to a straight line, and its Position is
// irrelevant.
type Handle struct {
	Position Vec2
	Visible  bool
}

// AnchorPoint is a fixed vertex on a path with optional incoming and
// outgoing curvature handles. HandleIn influences the incoming segment
// (from the previous anchor), HandleOut the outgoing one (to the next).
//
// Anchor identity is unique within the owning path for the path's
// lifetime; ids are never reused.
type AnchorPoint struct {
	ID        string
	Position  Point
	HandleIn  *Handle
	HandleOut *Handle
	Mirror    MirrorMode
	Selected  bool
}

// PathStyle is the style metadata carried alongside a path's geometry.
type PathStyle struct {
	Stroke      string
	StrokeWidth float64
	Fill        string
}

// VectorPath is an ordered sequence of anchor points, optionally closed.
// Order is significant: segment i connects Anchors[i] to Anchors[i+1], and
// a closed path has an implicit final segment from the last anchor back to
// the first. A path with fewer than 2 anchors can never be closed.
//
// VectorPaths are owned and mutated exclusively by a [PathManager]; all
// other components receive them by reference for reading.
type VectorPath struct {
	ID       string
	Anchors  []*AnchorPoint
	Closed   bool
	Style    PathStyle
	Selected bool
}

// SegmentKind discriminates the two segment shapes.
type SegmentKind int

const (
	// LineSegment is a straight segment; neither adjacent handle is
	// visible.
	LineSegment SegmentKind = iota + 1
	// CubicSegment is a cubic Bézier; at least one adjacent handle is
	// visible.
	CubicSegment
)

// Segment is the derived view of the curve connecting two consecutive
// anchors. Segments are recomputed on demand from anchor points; they are
// never authoritative state.
//
// For a CubicSegment, C1 is the absolute position of Start's out handle
// and C2 the absolute position of End's in handle. A side whose handle is
// absent or invisible degenerates to its anchor's position, which leaves
// the traced curve unchanged.
type Segment struct {
	Kind  SegmentKind
	Start *AnchorPoint
	End   *AnchorPoint
	C1    Point
	C2    Point
}

// Cubic returns the segment in cubic Bézier form. For a line segment the
// control points coincide with the endpoints, which traces the same
// straight line.
func (seg Segment) Cubic() CubicBez {
	if seg.Kind == LineSegment {
		return CubicBez{seg.Start.Position, seg.Start.Position, seg.End.Position, seg.End.Position}
	}
	return CubicBez{seg.Start.Position, seg.C1, seg.C2, seg.End.Position}
}

// Eval evaluates the segment at parameter t ∈ [0, 1].
func (seg Segment) Eval(t float64) Point {
	if seg.Kind == LineSegment {
		return seg.Start.Position.Lerp(seg.End.Position, t)
	}
	return seg.Cubic().Eval(t)
}
