package pen

// The handle manager: keeps the two handles of an anchor mutually
// consistent under the anchor's mirror mode and computes absolute handle
// coordinates. Mirroring is a closed three-mode constraint, implemented as
// a direct switch rather than a pluggable strategy.

// AbsoluteHandlePosition returns the absolute position of the anchor's out
// (isOut == true) or in handle. The second return value is false when the
// requested handle does not exist or is not visible. The function is pure.
func AbsoluteHandlePosition(anchor *AnchorPoint, isOut bool) (Point, bool) {
	h := anchor.HandleIn
	if isOut {
		h = anchor.HandleOut
	}
	if h == nil || !h.Visible {
		return Point{}, false
	}
	return anchor.Position.Translate(h.Position), true
}

// UpdateHandle moves one handle of the anchor to the absolute cursor
// position and propagates the change to the opposite handle according to
// the anchor's mirror mode:
//
//   - Mirrored: the opposite handle becomes the exact negation of the
//     moved vector, locking both angle and length.
//   - AngleLocked: the opposite handle's direction is recomputed as the
//     negation of the moved direction, but its length is preserved from
//     before the update.
//   - Independent: the opposite handle is left untouched.
//
// Under Mirrored and AngleLocked, an opposite handle that does not yet
// exist is synthesized with the negated direction and the moved handle's
// length.
func UpdateHandle(anchor *AnchorPoint, isOut bool, cursor Point) {
	rel := cursor.Sub(anchor.Position)

	moved, other := anchor.HandleIn, anchor.HandleOut
	if isOut {
		moved, other = other, moved
	}
	if moved == nil {
		moved = &Handle{}
		if isOut {
			anchor.HandleOut = moved
		} else {
			anchor.HandleIn = moved
		}
	}
	moved.Position = rel
	moved.Visible = true

	switch anchor.Mirror {
	case Mirrored:
		if other == nil {
			other = &Handle{}
			setOpposite(anchor, isOut, other)
		}
		other.Position = rel.Negate()
		other.Visible = true
	case AngleLocked:
		if other == nil {
			other = &Handle{}
			other.Position = rel.Negate()
			setOpposite(anchor, isOut, other)
		} else {
			length := other.Position.Hypot()
			dir := rel.Negate()
			if h := dir.Hypot(); h != 0 {
				other.Position = dir.Mul(length / h)
			}
		}
		other.Visible = true
	case Independent:
		// Nothing to propagate.
	}
}

func setOpposite(anchor *AnchorPoint, movedIsOut bool, h *Handle) {
	if movedIsOut {
		anchor.HandleIn = h
	} else {
		anchor.HandleOut = h
	}
}

// DefaultHandles gives the anchor a smooth pass-through handle pair when it
// is inserted between two known neighbor positions. The tangent is the
// normalized vector from prev to next; the in handle points against it and
// the out handle along it, both of the given length and visible, with the
// mirror mode reset to Mirrored.
//
// A zero-length prev→next vector leaves the tangent undefined; the
// deterministic fallback is the unit vector along the x axis.
func DefaultHandles(anchor *AnchorPoint, prev, next Point, length float64) {
	tangent := next.Sub(prev)
	if tangent.Hypot2() == 0 {
		tangent = Vec(1, 0)
	} else {
		tangent = tangent.Normalize()
	}
	anchor.HandleIn = &Handle{Position: tangent.Mul(-length), Visible: true}
	anchor.HandleOut = &Handle{Position: tangent.Mul(length), Visible: true}
	anchor.Mirror = Mirrored
}
