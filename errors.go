package pen

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidIndex reports an insertion or removal index outside the
	// valid range. The operation does not mutate anything.
	ErrInvalidIndex = errors.New("index out of range")

	// ErrMalformedPathData reports path mini-language input that cannot be
	// parsed. No partial path is committed.
	ErrMalformedPathData = errors.New("malformed path data")

	// ErrInvalidOperation reports an operation that is not applicable to
	// the current state, such as closing a path with fewer than three
	// anchor points.
	ErrInvalidOperation = errors.New("invalid operation")
)

// ParseError describes a path mini-language parse failure. It wraps
// [ErrMalformedPathData] and identifies the offending token and its byte
// position in the input.
type ParseError struct {
	Pos   int
	Token string
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: %s at position %d (%q)", ErrMalformedPathData, e.Msg, e.Pos, e.Token)
}

func (e *ParseError) Unwrap() error {
	return ErrMalformedPathData
}

func parseErrorf(pos int, token string, format string, args ...any) error {
	return &ParseError{Pos: pos, Token: token, Msg: fmt.Sprintf(format, args...)}
}
