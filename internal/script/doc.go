// Package script parses the keyscript macro language into instructions.
//
// A keyscript procedure is a plain text file, one instruction per line.
// Lines are classified by a fixed-width, case-insensitive keyword prefix:
//
//	print <value>[, <width>]
//	press <key>[ + <key> ...][, <count>]
//	pause[(<seconds>)]
//	input <fieldName>[, <width>]
//	# comment text
//
// Classification is positional: only the first 5 characters of the trimmed,
// lowercased line are consulted, and a line must be longer than 5 characters
// to match a keyword at all. A bare "print" with nothing after it is an
// empty line, not a print. Comment and blank lines parse to no-op
// instructions so that each source line maps to exactly one Instruction.
//
// # Values and quoting
//
// A value that begins with a quote character (' or ") has every occurrence
// of that character removed from the whole value. One layer of enclosing
// parentheses is stripped from the text after the keyword. Numeric
// attributes (widths, counts, durations) go through ExtractNumber, which
// tolerates sloppy human input: it keeps the digits, keeps the first
// decimal point, and discards everything else.
//
// # Chords
//
// A press line containing the literal " + " separator names a chord of
// keys to be pressed together:
//
//	press ctrl + shift + esc, 2
package script
