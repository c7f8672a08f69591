package script

import "strconv"

// NumberKind identifies what ExtractNumber found in a fragment.
type NumberKind int

const (
	// NumberAbsent means the fragment contained no digits at all.
	NumberAbsent NumberKind = iota
	// NumberInt means the fragment reduced to an integer literal.
	NumberInt
	// NumberFloat means the fragment contained a decimal point.
	NumberFloat
)

// Number is the result of extracting a numeric literal from a noisy
// string fragment. Absence is distinct from zero: a fragment with no
// digits yields an absent Number, not 0.
type Number struct {
	Kind  NumberKind
	Int   int
	Float float64
}

// AbsentNumber is the no-value Number.
var AbsentNumber = Number{Kind: NumberAbsent}

// IntNumber returns an integer Number.
func IntNumber(v int) Number {
	return Number{Kind: NumberInt, Int: v}
}

// FloatNumber returns a floating point Number.
func FloatNumber(v float64) Number {
	return Number{Kind: NumberFloat, Float: v}
}

// IsAbsent returns true if no numeric value was found.
func (n Number) IsAbsent() bool {
	return n.Kind == NumberAbsent
}

// IntValue returns the number as an int. Floats truncate toward zero.
// Absent numbers return the given fallback.
func (n Number) IntValue(fallback int) int {
	switch n.Kind {
	case NumberInt:
		return n.Int
	case NumberFloat:
		return int(n.Float)
	default:
		return fallback
	}
}

// ExtractNumber pulls a single numeric literal out of an arbitrary string.
//
// Characters are scanned left to right. Digits accumulate. The first '.'
// switches the result from integer to float and is kept; every '.' after
// that is dropped while digits continue to accumulate. All other
// characters are discarded. If no digit is ever seen the result is
// absent.
//
//	ExtractNumber("12abc.5.6") // 12.56 (float)
//	ExtractNumber("007")       // 7 (int)
//	ExtractNumber("3.")        // 3.0 (float)
//	ExtractNumber("abc")       // absent
func ExtractNumber(s string) Number {
	var buf []rune
	kind := NumberInt
	sawDigit := false

	for _, r := range s {
		switch {
		case r == '.' && kind == NumberInt:
			buf = append(buf, r)
			kind = NumberFloat
		case r >= '0' && r <= '9':
			buf = append(buf, r)
			sawDigit = true
		}
	}

	if !sawDigit {
		return AbsentNumber
	}

	if kind == NumberInt {
		v, err := strconv.Atoi(string(buf))
		if err != nil {
			return AbsentNumber
		}
		return IntNumber(v)
	}

	v, err := strconv.ParseFloat(string(buf), 64)
	if err != nil {
		return AbsentNumber
	}
	return FloatNumber(v)
}
