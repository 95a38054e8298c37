// Package pen implements a vector-path editing engine: an in-memory
// collection of multi-segment Bézier/line paths together with the mutation,
// constraint, and codec machinery an interactive pen tool needs.
//
// # Model
//
// A [VectorPath] is an ordered sequence of [AnchorPoint] values, optionally
// closed. Each anchor carries up to two [Handle] values, control point
// offsets relative to the anchor, whose mutual relationship is constrained
// by the anchor's [MirrorMode]. The line or cubic Bézier connecting two
// consecutive anchors is a [Segment]. Segments are derived on demand from
// the anchors and are never stored; see [PathManager.Segments].
//
// All paths are owned by a [PathManager], which is the sole mutator.
// Renderers and gesture controllers hold paths by reference for reading and
// call back into the manager for every mutation.
//
// # Curve math
//
// [CubicBez] provides exact Bernstein evaluation and de Casteljau
// subdivision. Inserting a point into a cubic segment
// ([PathManager.InsertPointOnSegment]) splits the curve exactly: the two
// resulting cubics trace the identical original curve.
//
// # Text codec
//
// Paths convert to and from the compact path mini-language
// (M/L/H/V/C/S/Z, absolute and relative) via [ParsePathData] and
// [PathData]. Serialization always emits absolute M/L/C/Z commands;
// parsing the serialized form of a path reproduces geometrically
// equivalent segments.
//
// # Concurrency
//
// The engine is single-threaded and synchronous. Every operation runs to
// completion before returning; nothing blocks, retries, or performs I/O.
// The package provides no locking: it is intended to run within a single
// logical thread of control, such as one UI interaction loop. Callers that
// mutate from multiple goroutines must serialize access themselves;
// unsynchronized concurrent mutation is undefined behavior.
package pen
