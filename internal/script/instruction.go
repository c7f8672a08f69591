package script

import "strings"

// Kind identifies the instruction variant a source line parsed to.
type Kind int

const (
	// KindEmpty is a blank or unrecognized line. Contributes nothing.
	KindEmpty Kind = iota
	// KindComment is a line whose first character is '#'. Contributes nothing.
	KindComment
	// KindPrint types a literal value.
	KindPrint
	// KindPress presses a key or chord, optionally repeated.
	KindPress
	// KindPause blocks for a number of seconds.
	KindPause
	// KindInput types a value looked up from the bound data record.
	KindInput
)

// String returns the keyword for the kind.
func (k Kind) String() string {
	switch k {
	case KindPrint:
		return "print"
	case KindPress:
		return "press"
	case KindPause:
		return "pause"
	case KindInput:
		return "input"
	case KindComment:
		return "comment"
	default:
		return "empty"
	}
}

// Instruction is one parsed source line. Exactly one variant's fields are
// meaningful, selected by Kind; no-op variants carry nothing.
type Instruction struct {
	Kind Kind

	// Text is the literal value for print instructions.
	Text string

	// Field is the record field name for input instructions.
	Field string

	// Keys holds the key names for press instructions: a single name, or
	// an ordered chord of names.
	Keys []string

	// Width is the optional slot width for print and input.
	Width Number

	// Repeat is the optional press count.
	Repeat Number

	// Seconds is the optional pause duration.
	Seconds Number
}

// IsNoop returns true for instructions that contribute no executable
// action (comments, blank lines, anything unrecognized).
func (in Instruction) IsNoop() bool {
	return in.Kind == KindEmpty || in.Kind == KindComment
}

// IsChord returns true if the instruction presses more than one key at once.
func (in Instruction) IsChord() bool {
	return in.Kind == KindPress && len(in.Keys) > 1
}

// String renders the instruction roughly in source form, for logs and
// dry-run output.
func (in Instruction) String() string {
	switch in.Kind {
	case KindPrint:
		return "print " + in.Text
	case KindPress:
		return "press " + strings.Join(in.Keys, " + ")
	case KindPause:
		return "pause"
	case KindInput:
		return "input " + in.Field
	case KindComment:
		return "#"
	default:
		return ""
	}
}
