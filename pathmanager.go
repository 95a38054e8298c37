package pen

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"
)

// PathManager owns the collection of vector paths. It is the sole mutator:
// collaborators hold paths by reference for reading and route every
// mutation through the manager. The zero value is not usable; call
// [NewPathManager].
type PathManager struct {
	paths []*VectorPath
	index map[string]*VectorPath
}

func NewPathManager() *PathManager {
	return &PathManager{
		index: make(map[string]*VectorPath),
	}
}

// CreatePath inserts a new empty, open path into the collection and
// returns it.
func (pm *PathManager) CreatePath() *VectorPath {
	p := &VectorPath{ID: uuid.NewString()}
	pm.paths = append(pm.paths, p)
	pm.index[p.ID] = p
	Logger().Debug("path created", slog.String("path", p.ID))
	return p
}

// RemovePath removes the path with the given id from the collection. It is
// a no-op if no such path exists.
func (pm *PathManager) RemovePath(id string) {
	p, ok := pm.index[id]
	if !ok {
		return
	}
	delete(pm.index, id)
	pm.paths = slices.DeleteFunc(pm.paths, func(q *VectorPath) bool { return q == p })
	Logger().Debug("path removed", slog.String("path", id))
}

// Path returns the path with the given id.
func (pm *PathManager) Path(id string) (*VectorPath, bool) {
	p, ok := pm.index[id]
	return p, ok
}

// Paths returns all paths in insertion order.
func (pm *PathManager) Paths() []*VectorPath {
	return slices.Clone(pm.paths)
}

func newAnchor(pos Point) *AnchorPoint {
	return &AnchorPoint{
		ID:       uuid.NewString(),
		Position: pos,
		Mirror:   Mirrored,
	}
}

// AddAnchorPoint appends an anchor at the given absolute position.
// handleIn and handleOut are optional relative handle vectors; a non-nil
// vector is stored as a visible handle. The anchor's mirror mode defaults
// to Mirrored.
func (pm *PathManager) AddAnchorPoint(path *VectorPath, pos Point, handleIn, handleOut *Vec2) *AnchorPoint {
	a := newAnchor(pos)
	if handleIn != nil {
		a.HandleIn = &Handle{Position: *handleIn, Visible: true}
	}
	if handleOut != nil {
		a.HandleOut = &Handle{Position: *handleOut, Visible: true}
	}
	path.Anchors = append(path.Anchors, a)
	Logger().Debug("anchor added",
		slog.String("path", path.ID),
		slog.String("anchor", a.ID),
		slog.Int("count", len(path.Anchors)))
	return a
}

// InsertAnchorPoint inserts a bare anchor (no handles) at the given index.
// It fails with [ErrInvalidIndex] if index is outside [0, len(Anchors)].
func (pm *PathManager) InsertAnchorPoint(path *VectorPath, index int, pos Point) (*AnchorPoint, error) {
	if index < 0 || index > len(path.Anchors) {
		return nil, fmt.Errorf("%w: insert at %d with %d anchors", ErrInvalidIndex, index, len(path.Anchors))
	}
	a := newAnchor(pos)
	path.Anchors = slices.Insert(path.Anchors, index, a)
	Logger().Debug("anchor inserted",
		slog.String("path", path.ID),
		slog.String("anchor", a.ID),
		slog.Int("index", index))
	return a, nil
}

// RemoveAnchorPoint removes the anchor at the given index. It fails with
// [ErrInvalidIndex] if index is outside [0, len(Anchors)). Removing from a
// closed path that would be left with fewer than two anchors reopens the
// path: a path with 0 or 1 anchors can never be closed.
func (pm *PathManager) RemoveAnchorPoint(path *VectorPath, index int) error {
	if index < 0 || index >= len(path.Anchors) {
		return fmt.Errorf("%w: remove at %d with %d anchors", ErrInvalidIndex, index, len(path.Anchors))
	}
	path.Anchors = slices.Delete(path.Anchors, index, index+1)
	if path.Closed && len(path.Anchors) < 2 {
		path.Closed = false
	}
	return nil
}

// MovePoint moves an anchor to a new absolute position. Handles are
// relative vectors, so they travel with the anchor.
func (pm *PathManager) MovePoint(anchor *AnchorPoint, pos Point) {
	anchor.Position = pos
}

// ClosePath marks the path as closed, adding the implicit segment from the
// last anchor back to the first. It fails with [ErrInvalidOperation] if
// the path has fewer than three anchors: closing such a path would produce
// degenerate geometry.
func (pm *PathManager) ClosePath(path *VectorPath) error {
	if len(path.Anchors) < 3 {
		return fmt.Errorf("%w: cannot close path with %d anchors", ErrInvalidOperation, len(path.Anchors))
	}
	path.Closed = true
	return nil
}

// OpenPath reopens a closed path, removing the implicit closing segment.
func (pm *PathManager) OpenPath(path *VectorPath) {
	path.Closed = false
}

// SelectPath sets the path's selection flag.
func (pm *PathManager) SelectPath(path *VectorPath, selected bool) {
	path.Selected = selected
}

// SelectAnchor sets the anchor's selection flag.
func (pm *PathManager) SelectAnchor(anchor *AnchorPoint, selected bool) {
	anchor.Selected = selected
}

// ClearSelection clears the selection flags of all paths and anchors.
func (pm *PathManager) ClearSelection() {
	for _, p := range pm.paths {
		p.Selected = false
		for _, a := range p.Anchors {
			a.Selected = false
		}
	}
}

func segmentBetween(start, end *AnchorPoint) Segment {
	c1, ok1 := AbsoluteHandlePosition(start, true)
	c2, ok2 := AbsoluteHandlePosition(end, false)
	if !ok1 && !ok2 {
		return Segment{Kind: LineSegment, Start: start, End: end}
	}
	// A missing control point degenerates to its anchor position, which
	// traces the same curve.
	if !ok1 {
		c1 = start.Position
	}
	if !ok2 {
		c2 = end.Position
	}
	return Segment{Kind: CubicSegment, Start: start, End: end, C1: c1, C2: c2}
}

func segmentsOf(path *VectorPath) []Segment {
	if len(path.Anchors) < 2 {
		return nil
	}
	n := len(path.Anchors) - 1
	if path.Closed {
		n++
	}
	segs := make([]Segment, 0, n)
	for i := 0; i < len(path.Anchors)-1; i++ {
		segs = append(segs, segmentBetween(path.Anchors[i], path.Anchors[i+1]))
	}
	if path.Closed {
		segs = append(segs, segmentBetween(path.Anchors[len(path.Anchors)-1], path.Anchors[0]))
	}
	return segs
}

// Segments derives the path's segments: one per consecutive anchor pair,
// plus the closing segment if the path is closed. Paths with fewer than
// two anchors have no segments.
func (pm *PathManager) Segments(path *VectorPath) []Segment {
	return segmentsOf(path)
}

// SegmentAt returns the segment with the given index. It fails with
// [ErrInvalidOperation] if the index is beyond the derived segment count.
func (pm *PathManager) SegmentAt(path *VectorPath, index int) (Segment, error) {
	segs := pm.Segments(path)
	if index < 0 || index >= len(segs) {
		return Segment{}, fmt.Errorf("%w: segment %d of %d", ErrInvalidOperation, index, len(segs))
	}
	return segs[index], nil
}

// Handle length used for the synthesized pass-through handles when a point
// is inserted into a line segment, as a fraction of the segment length.
const lineInsertHandleFraction = 0.25

// InsertPointOnSegment inserts a new anchor on the segment with the given
// index, at curve parameter t ∈ [0, 1].
//
// For a cubic segment the curve is split exactly with de Casteljau: the
// adjacent anchors' facing handles are rewritten in place to the new
// control points, and the new anchor receives the interior control points
// as its handles, both visible, with mirror mode Independent (the split
// handles are generally asymmetric and must not be forced into a mirrored
// relationship).
//
// For a line segment the new anchor receives default pass-through handles
// via [DefaultHandles]; these are collinear with the line, so the traced
// shape is unchanged.
//
// t = 0 and t = 1 are permitted and degenerate to inserting at an existing
// anchor's position. A new anchor is still allocated, and the resulting
// zero-length neighboring segment is accepted; points are never silently
// merged.
//
// It fails with [ErrInvalidOperation] if the segment index is beyond the
// derived segment count.
func (pm *PathManager) InsertPointOnSegment(path *VectorPath, index int, t float64) (*AnchorPoint, error) {
	seg, err := pm.SegmentAt(path, index)
	if err != nil {
		return nil, err
	}

	a := newAnchor(seg.Eval(t))
	switch seg.Kind {
	case LineSegment:
		length := seg.Start.Position.Distance(seg.End.Position) * lineInsertHandleFraction
		DefaultHandles(a, seg.Start.Position, seg.End.Position, length)
	case CubicSegment:
		left, right := seg.Cubic().SubdivideAt(t)
		a.Position = left.P3
		a.HandleIn = &Handle{Position: left.P2.Sub(a.Position), Visible: true}
		a.HandleOut = &Handle{Position: right.P1.Sub(a.Position), Visible: true}
		a.Mirror = Independent
		seg.Start.HandleOut = &Handle{Position: left.P1.Sub(seg.Start.Position), Visible: true}
		seg.End.HandleIn = &Handle{Position: right.P2.Sub(seg.End.Position), Visible: true}
	}
	// Segment index i starts at anchor i, including the closing segment,
	// for which the insertion position len(Anchors) appends.
	path.Anchors = slices.Insert(path.Anchors, index+1, a)
	Logger().Debug("point inserted on segment",
		slog.String("path", path.ID),
		slog.String("anchor", a.ID),
		slog.Int("segment", index),
		slog.Float64("t", t))
	return a, nil
}
