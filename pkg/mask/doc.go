// Package mask replaces a span of a string's characters with a mask rune.
//
// A Range describes the span in one of five shapes, matching the usual range
// notations:
//
//	Bounded(5, 7)  5..<7   runes 5 and 6
//	Closed(5, 6)   5...6   runes 5 and 6
//	From(5)        5...    rune 5 to the end
//	Through(2)     ...2    runes 0, 1 and 2
//	UpTo(2)        ..<2    runes 0 and 1
//
// Offsets count runes, not bytes. Unlike most helpers in strkit, Mask is
// fail-explicit: a range that does not fit the input returns ErrOutOfBounds
// (or ErrInvalidRange for negative or reversed bounds) instead of being
// clamped, because silently masking a different span would corrupt text the
// caller shows to users.
//
//	masked, err := mask.Mask("abcdefg", mask.Bounded(5, 7), '*')
//	// masked == "abcde**"
//
// The shape-specific checks differ on purpose: Closed and Through reject an
// upper bound equal to the length because that bound is inclusive, while
// Bounded and UpTo accept it because theirs is exclusive.
//
// MaskEdges, MaskTail, MaskEmail and MaskCreditCard are ready-made maskers for
// common personal data, built on Mask.
package mask
