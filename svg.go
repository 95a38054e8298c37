package pen

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// The path mini-language codec. Parsing supports the M/m, L/l, H/h, V/v,
// C/c, S/s, and Z/z commands with absolute and relative coordinates and
// implicit command repetition. Serialization is the semantic inverse and
// always emits absolute, explicit M/L/C/Z commands.

func isNumberStart(b byte) bool {
	return b >= '0' && b <= '9' || b == '.' || b == '-' || b == '+'
}

func skipCommaWhitespace(d string, i int) int {
	for i < len(d) && (d[i] == ' ' || d[i] == ',' || d[i] == '\n' || d[i] == '\r' || d[i] == '\t') {
		i++
	}
	return i
}

// scanNumber parses a float at d[i:], returning the value and the position
// after it.
func scanNumber(d string, i int) (float64, int, bool) {
	j := i
	if j < len(d) && (d[j] == '-' || d[j] == '+') {
		j++
	}
	for j < len(d) && (d[j] >= '0' && d[j] <= '9' || d[j] == '.') {
		j++
	}
	if j < len(d) && (d[j] == 'e' || d[j] == 'E') {
		j++
		if j < len(d) && (d[j] == '-' || d[j] == '+') {
			j++
		}
		for j < len(d) && d[j] >= '0' && d[j] <= '9' {
			j++
		}
	}
	num, err := strconv.ParseFloat(d[i:j], 64)
	if err != nil {
		return 0, i, false
	}
	return num, j, true
}

// argCounts maps each supported (uppercased) command to the number of
// coordinates it consumes.
var argCounts = map[byte]int{
	'M': 2,
	'L': 2,
	'H': 1,
	'V': 1,
	'C': 6,
	'S': 4,
	'Z': 0,
}

// ParsePathData parses a path mini-language string into a detached
// VectorPath. The path is not added to any collection; see
// [PathManager.ImportPath] for the committing variant.
//
// The parse is atomic: on any failure the returned error wraps
// [ErrMalformedPathData], identifies the offending token and its position,
// and no path is produced. A single path is described by a single subpath;
// a second moveto is a parse failure.
func ParsePathData(d string) (*VectorPath, error) {
	path := &VectorPath{ID: uuid.NewString()}

	// cur is the current point, prevCtrl the second control point of the
	// previous cubic (absolute), for smooth-cubic reflection.
	var cur, prevCtrl Point
	prevCubic := false
	started := false
	var f [6]float64

	last := func() *AnchorPoint {
		return path.Anchors[len(path.Anchors)-1]
	}
	appendAnchor := func(pos Point) *AnchorPoint {
		a := &AnchorPoint{ID: uuid.NewString(), Position: pos, Mirror: Independent}
		path.Anchors = append(path.Anchors, a)
		return a
	}

	i := skipCommaWhitespace(d, 0)
	var cmd byte
	for i < len(d) {
		cmdPos := i
		if isNumberStart(d[i]) {
			// Implicit repetition of the previous command. Extra
			// coordinate pairs after a moveto are linetos.
			switch cmd {
			case 'M':
				cmd = 'L'
			case 'm':
				cmd = 'l'
			case 0, 'Z', 'z':
				return nil, parseErrorf(i, string(d[i]), "expected command")
			}
		} else {
			cmd = d[i]
			i++
		}

		upper := cmd
		relative := false
		if 'a' <= cmd && cmd <= 'z' {
			upper = cmd - 'a' + 'A'
			relative = true
		}
		n, ok := argCounts[upper]
		if !ok {
			return nil, parseErrorf(cmdPos, string(cmd), "unknown command")
		}
		if !started && upper != 'M' {
			return nil, parseErrorf(cmdPos, string(cmd), "path must start with a moveto")
		}
		if path.Closed {
			return nil, parseErrorf(cmdPos, string(cmd), "command after closepath")
		}
		for j := 0; j < n; j++ {
			i = skipCommaWhitespace(d, i)
			num, next, ok := scanNumber(d, i)
			if !ok {
				tok := ""
				if i < len(d) {
					tok = string(d[i])
				}
				return nil, parseErrorf(i, tok, "command %q expects %d numbers, got %d", cmd, n, j)
			}
			f[j] = num
			i = next
		}

		switch upper {
		case 'M':
			if started {
				return nil, parseErrorf(cmdPos, string(cmd), "unexpected second moveto")
			}
			p := Pt(f[0], f[1])
			if relative {
				p = p.Translate(Vec2(cur))
			}
			appendAnchor(p)
			cur = p
			started = true
			prevCubic = false
		case 'L':
			p := Pt(f[0], f[1])
			if relative {
				p = p.Translate(Vec2(cur))
			}
			appendAnchor(p)
			cur = p
			prevCubic = false
		case 'H':
			p := Pt(f[0], cur.Y)
			if relative {
				p.X += cur.X
			}
			appendAnchor(p)
			cur = p
			prevCubic = false
		case 'V':
			p := Pt(cur.X, f[0])
			if relative {
				p.Y += cur.Y
			}
			appendAnchor(p)
			cur = p
			prevCubic = false
		case 'C', 'S':
			var c1, c2, p Point
			if upper == 'C' {
				c1 = Pt(f[0], f[1])
				c2 = Pt(f[2], f[3])
				p = Pt(f[4], f[5])
				if relative {
					c1 = c1.Translate(Vec2(cur))
					c2 = c2.Translate(Vec2(cur))
					p = p.Translate(Vec2(cur))
				}
			} else {
				// Smooth cubic: the first control point reflects the
				// previous cubic's second control point through the
				// current point, or is the current point itself if the
				// previous segment was not a cubic.
				c1 = cur
				if prevCubic {
					c1 = cur.Translate(cur.Sub(prevCtrl))
				}
				c2 = Pt(f[0], f[1])
				p = Pt(f[2], f[3])
				if relative {
					c2 = c2.Translate(Vec2(cur))
					p = p.Translate(Vec2(cur))
				}
			}
			start := last()
			start.HandleOut = &Handle{Position: c1.Sub(start.Position), Visible: true}
			end := appendAnchor(p)
			end.HandleIn = &Handle{Position: c2.Sub(p), Visible: true}
			cur = p
			prevCtrl = c2
			prevCubic = true
		case 'Z':
			// When the trailing point coincides with the start, the final
			// anchor is the start: its incoming handle moves to the first
			// anchor and the duplicate is dropped. Otherwise Z implies a
			// closing straight segment back to the start.
			if len(path.Anchors) > 1 && last().Position == path.Anchors[0].Position {
				path.Anchors[0].HandleIn = last().HandleIn
				path.Anchors = path.Anchors[:len(path.Anchors)-1]
			}
			if len(path.Anchors) < 2 {
				return nil, parseErrorf(cmdPos, string(cmd), "closepath with %d anchors", len(path.Anchors))
			}
			path.Closed = true
			cur = path.Anchors[0].Position
			prevCubic = false
		}
		i = skipCommaWhitespace(d, i)
	}

	if !started {
		return nil, parseErrorf(0, "", "empty path data")
	}
	return path, nil
}

// PathDataOptions specifies optional settings for [PathData] and
// [WritePathData].
type PathDataOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent
	// any given coordinate.
	MaxPrecision int
}

// PathData serializes the path to a path mini-language string.
//
// The output walks the derived segments: M for the first anchor, L for
// line segments, C for cubic segments, Z if the path is closed. All
// coordinates are absolute; smooth shorthands are never emitted. Parsing
// the output reproduces geometrically equivalent segments, though not
// necessarily the original textual form.
func PathData(path *VectorPath, opts PathDataOptions) string {
	sb := &strings.Builder{}
	WritePathData(sb, path, opts)
	return sb.String()
}

// WritePathData serializes the path like [PathData], writing to w.
func WritePathData(w io.Writer, path *VectorPath, opts PathDataOptions) error {
	if len(path.Anchors) == 0 {
		return nil
	}
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		maxPrec := opts.MaxPrecision
		if maxPrec <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
		s := strconv.FormatFloat(n, 'f', maxPrec, 64)
		return strings.TrimRight(s, "0")
	}

	first := path.Anchors[0].Position
	writef("M%s,%s", format(first.X), format(first.Y))
	for _, seg := range segmentsOf(path) {
		switch seg.Kind {
		case LineSegment:
			// The closing line segment is implied by Z.
			if seg.End != path.Anchors[0] {
				writef(" L%s,%s", format(seg.End.Position.X), format(seg.End.Position.Y))
			}
		case CubicSegment:
			writef(" C%s,%s %s,%s %s,%s",
				format(seg.C1.X), format(seg.C1.Y),
				format(seg.C2.X), format(seg.C2.Y),
				format(seg.End.Position.X), format(seg.End.Position.Y))
		}
	}
	if path.Closed {
		writef(" Z")
	}
	return err
}

// ImportedPath pairs a path mini-language string with its style metadata,
// as extracted from a host document.
type ImportedPath struct {
	Data  string
	Style PathStyle
}

// ImportPath parses a single path mini-language string, applies the style,
// and adds the resulting path to the collection. On failure the error
// wraps [ErrMalformedPathData] and the collection is unchanged.
func (pm *PathManager) ImportPath(d string, style PathStyle) (*VectorPath, error) {
	path, err := ParsePathData(d)
	if err != nil {
		return nil, err
	}
	path.Style = style
	pm.paths = append(pm.paths, path)
	pm.index[path.ID] = path
	Logger().Debug("path imported",
		slog.String("path", path.ID),
		slog.Int("anchors", len(path.Anchors)),
		slog.Bool("closed", path.Closed))
	return path, nil
}

// ImportPaths imports a sequence of (data, style) pairs, as produced by a
// multi-path document. The import is atomic across the whole sequence: if
// any string fails to parse, no path is added.
func (pm *PathManager) ImportPaths(items []ImportedPath) ([]*VectorPath, error) {
	paths := make([]*VectorPath, 0, len(items))
	for _, item := range items {
		path, err := ParsePathData(item.Data)
		if err != nil {
			return nil, err
		}
		path.Style = item.Style
		paths = append(paths, path)
	}
	for _, path := range paths {
		pm.paths = append(pm.paths, path)
		pm.index[path.ID] = path
		Logger().Debug("path imported",
			slog.String("path", path.ID),
			slog.Int("anchors", len(path.Anchors)),
			slog.Bool("closed", path.Closed))
	}
	return paths, nil
}

// ExportPath serializes one path to its mini-language string at full
// precision.
func (pm *PathManager) ExportPath(path *VectorPath) string {
	return PathData(path, PathDataOptions{})
}
