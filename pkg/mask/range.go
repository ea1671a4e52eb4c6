package mask

import (
	"fmt"
	"strconv"
	"strings"
)

// Shape identifies how Range bounds are interpreted.
type Shape uint8

const (
	// ShapeBounded is the half-open range lo..<hi.
	ShapeBounded Shape = iota
	// ShapeClosed is the closed range lo...hi.
	ShapeClosed
	// ShapeFrom is the open-ended range lo...
	ShapeFrom
	// ShapeThrough is the range ...hi, including hi.
	ShapeThrough
	// ShapeUpTo is the range ..<hi, excluding hi.
	ShapeUpTo
)

// Range is a span of rune offsets. Unused bounds are ignored: From only reads
// Lo, Through and UpTo only read Hi.
type Range struct {
	Shape Shape
	Lo    int
	Hi    int
}

// Bounded is the half-open range lo..<hi.
func Bounded(lo, hi int) Range {
	return Range{Shape: ShapeBounded, Lo: lo, Hi: hi}
}

// Closed is the range lo...hi, including both bounds.
func Closed(lo, hi int) Range {
	return Range{Shape: ShapeClosed, Lo: lo, Hi: hi}
}

// From covers lo through the end of the input.
func From(lo int) Range {
	return Range{Shape: ShapeFrom, Lo: lo}
}

// Through covers the start of the input through hi, inclusive.
func Through(hi int) Range {
	return Range{Shape: ShapeThrough, Hi: hi}
}

// UpTo covers the start of the input up to hi, exclusive.
func UpTo(hi int) Range {
	return Range{Shape: ShapeUpTo, Hi: hi}
}

// Span resolves r against an input of n runes and returns the half-open
// interval [start, end) it covers.
func (r Range) Span(n int) (start, end int, err error) {
	switch r.Shape {
	case ShapeBounded:
		if r.Lo < 0 || r.Hi < r.Lo {
			return 0, 0, fmt.Errorf("%w: %s", ErrInvalidRange, r)
		}
		if r.Hi > n {
			return 0, 0, fmt.Errorf("%w: %s exceeds length %d", ErrOutOfBounds, r, n)
		}
		return r.Lo, r.Hi, nil
	case ShapeClosed:
		if r.Lo < 0 || r.Hi < r.Lo {
			return 0, 0, fmt.Errorf("%w: %s", ErrInvalidRange, r)
		}
		if r.Hi >= n {
			return 0, 0, fmt.Errorf("%w: %s exceeds length %d", ErrOutOfBounds, r, n)
		}
		return r.Lo, r.Hi + 1, nil
	case ShapeFrom:
		if r.Lo < 0 {
			return 0, 0, fmt.Errorf("%w: %s", ErrInvalidRange, r)
		}
		if r.Lo >= n {
			return 0, 0, fmt.Errorf("%w: %s exceeds length %d", ErrOutOfBounds, r, n)
		}
		return r.Lo, n, nil
	case ShapeThrough:
		if r.Hi < 0 {
			return 0, 0, fmt.Errorf("%w: %s", ErrInvalidRange, r)
		}
		if r.Hi >= n {
			return 0, 0, fmt.Errorf("%w: %s exceeds length %d", ErrOutOfBounds, r, n)
		}
		return 0, r.Hi + 1, nil
	case ShapeUpTo:
		if r.Hi < 0 {
			return 0, 0, fmt.Errorf("%w: %s", ErrInvalidRange, r)
		}
		if r.Hi > n {
			return 0, 0, fmt.Errorf("%w: %s exceeds length %d", ErrOutOfBounds, r, n)
		}
		return 0, r.Hi, nil
	default:
		return 0, 0, fmt.Errorf("%w: unknown shape %d", ErrInvalidRange, r.Shape)
	}
}

// String renders r in range notation, e.g. "5..<7" or "...2".
func (r Range) String() string {
	switch r.Shape {
	case ShapeBounded:
		return fmt.Sprintf("%d..<%d", r.Lo, r.Hi)
	case ShapeClosed:
		return fmt.Sprintf("%d...%d", r.Lo, r.Hi)
	case ShapeFrom:
		return fmt.Sprintf("%d...", r.Lo)
	case ShapeThrough:
		return fmt.Sprintf("...%d", r.Hi)
	case ShapeUpTo:
		return fmt.Sprintf("..<%d", r.Hi)
	default:
		return fmt.Sprintf("range(%d)", r.Shape)
	}
}

// ParseRange reads the notation produced by Range.String.
func ParseRange(s string) (Range, error) {
	s = strings.TrimSpace(s)

	switch {
	case strings.HasPrefix(s, "..<"):
		hi, err := parseBound(s, s[3:])
		return UpTo(hi), err
	case strings.HasPrefix(s, "..."):
		hi, err := parseBound(s, s[3:])
		return Through(hi), err
	case strings.HasSuffix(s, "..."):
		lo, err := parseBound(s, s[:len(s)-3])
		return From(lo), err
	}

	if lo, hi, ok := strings.Cut(s, "..<"); ok {
		l, err := parseBound(s, lo)
		if err != nil {
			return Range{}, err
		}
		h, err := parseBound(s, hi)
		return Bounded(l, h), err
	}
	if lo, hi, ok := strings.Cut(s, "..."); ok {
		l, err := parseBound(s, lo)
		if err != nil {
			return Range{}, err
		}
		h, err := parseBound(s, hi)
		return Closed(l, h), err
	}

	return Range{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
}

func parseBound(notation, bound string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(bound))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNotation, notation)
	}
	return n, nil
}
