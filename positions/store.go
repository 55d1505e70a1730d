package positions

import (
	"fmt"

	"github.com/katalvlaran/aoc2025/puzzle"
)

// Store holds parsed points in input order. Point id i is the i-th record.
type Store struct {
	points []Point
}

// Parse decodes records into a Store, one point per record, preserving order.
// The first record that is not exactly three integers, or that has a coordinate
// outside [-MaxCoord, MaxCoord], aborts parsing with a *ParseError.
// Range failures also match ErrCoordRange.
//
// Complexity: O(N) time and memory.
func Parse(records []string) (*Store, error) {
	points := make([]Point, 0, len(records))
	for i, rec := range records {
		vals, err := puzzle.Ints(rec, Separator)
		if err != nil {
			return nil, &ParseError{Line: i + 1, Text: rec, Err: err}
		}
		if len(vals) != 3 {
			return nil, &ParseError{Line: i + 1, Text: rec}
		}
		p := Point{X: vals[0], Y: vals[1], Z: vals[2]}
		if !p.InRange() {
			return nil, &ParseError{Line: i + 1, Text: rec, Err: fmt.Errorf("%w: |c| > %d", ErrCoordRange, MaxCoord)}
		}
		points = append(points, p)
	}

	return &Store{points: points}, nil
}

// FromPoints builds a Store over a copy of pts; ids follow slice order.
// Coordinates are not range-checked here; see Store.Validate.
func FromPoints(pts ...Point) *Store {
	cp := make([]Point, len(pts))
	copy(cp, pts)

	return &Store{points: cp}
}

// Len returns the number of points.
func (s *Store) Len() int {
	return len(s.points)
}

// At returns the point with identity id. It panics if id is out of range.
func (s *Store) At(id int) Point {
	return s.points[id]
}

// X returns the x-coordinate of point id.
func (s *Store) X(id int) int64 {
	return s.points[id].X
}

// Points returns a copy of all points in identity order.
func (s *Store) Points() []Point {
	cp := make([]Point, len(s.points))
	copy(cp, s.points)

	return cp
}

// Validate reports the first point outside [-MaxCoord, MaxCoord] as an error wrapping ErrCoordRange.
// Stores built by Parse always pass.
func (s *Store) Validate() error {
	for id, p := range s.points {
		if !p.InRange() {
			return fmt.Errorf("%w: point %d (%v), |c| > %d", ErrCoordRange, id, p, MaxCoord)
		}
	}

	return nil
}
