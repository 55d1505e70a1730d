package positions

import (
	"errors"
	"fmt"
)

var (
	// ErrParse indicates an input record does not decode to exactly three integers.
	ErrParse = errors.New("positions: record is not three integers")

	// ErrCoordRange indicates a coordinate outside [-MaxCoord, MaxCoord].
	ErrCoordRange = errors.New("positions: coordinate out of range")
)

// Separator delimits the coordinates inside a record.
const Separator = ","

// MaxCoord is the largest coordinate magnitude accepted.
// Per-axis differences stay within 2·MaxCoord, and 3·(2·MaxCoord)² = 12·MaxCoord² <= math.MaxInt64,
// so Dist2 is exact for any two points in range. MaxCoord+1 breaks that bound.
const MaxCoord = 876_706_528

// Point is an immutable 3-D integer position.
type Point struct {
	X, Y, Z int64
}

// String renders p as "x,y,z", the same form it was parsed from.
func (p Point) String() string {
	return fmt.Sprintf("%d,%d,%d", p.X, p.Y, p.Z)
}

// InRange reports whether every coordinate of p lies within [-MaxCoord, MaxCoord].
func (p Point) InRange() bool {
	return inRange(p.X) && inRange(p.Y) && inRange(p.Z)
}

func inRange(c int64) bool {
	return c >= -MaxCoord && c <= MaxCoord
}

// Dist2 returns the squared Euclidean distance between p and q.
// The result is exact when both points are InRange; Parse rejects anything else.
func (p Point) Dist2(q Point) int64 {
	dx, dy, dz := p.X-q.X, p.Y-q.Y, p.Z-q.Z

	return dx*dx + dy*dy + dz*dz
}

// ParseError reports the record that failed to decode.
// It matches ErrParse under errors.Is.
type ParseError struct {
	Line int    // 1-based record number
	Text string // raw record
	Err  error  // underlying tokenizer error, or nil on a wrong field count
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v: line %d %q: %v", ErrParse, e.Line, e.Text, e.Err)
	}

	return fmt.Sprintf("%v: line %d %q", ErrParse, e.Line, e.Text)
}

// Is reports whether target is ErrParse.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// Unwrap exposes the tokenizer error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
