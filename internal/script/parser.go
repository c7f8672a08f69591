package script

import (
	"strings"

	"github.com/dshills/keyscript/internal/config"
)

// keywordLen is the fixed width of every instruction keyword. A line must
// be longer than this to match a keyword at all; a bare keyword with no
// argument is an empty line.
const keywordLen = 5

// chordSep separates key names in a multi-key press.
const chordSep = " + "

// Parser turns raw source lines into instructions.
type Parser struct {
	opts config.Options
}

// NewParser creates a parser using the given options for defaults.
func NewParser(opts config.Options) *Parser {
	return &Parser{opts: opts.Normalize()}
}

// ParseLine parses one raw source line into an Instruction. Every line
// produces exactly one instruction; lines that match nothing produce a
// no-op rather than an error.
func (p *Parser) ParseLine(line string) Instruction {
	trimmed := strings.TrimSpace(line)
	runes := []rune(trimmed)
	if len(runes) <= keywordLen {
		return Instruction{Kind: KindEmpty}
	}

	keyword := strings.ToLower(string(runes[:keywordLen]))
	rest := strings.TrimSpace(string(runes[keywordLen:]))

	switch keyword {
	case "print":
		return p.parsePrint(rest)
	case "press":
		// Chord detection looks at the whole pre-parse line, so a
		// separator hidden inside quotes still splits.
		return p.parsePress(rest, strings.Contains(line, chordSep))
	case "pause":
		return p.parsePause(rest)
	case "input":
		return p.parseInput(rest)
	}

	if runes[0] == '#' {
		return Instruction{Kind: KindComment}
	}
	return Instruction{Kind: KindEmpty}
}

func (p *Parser) parsePrint(rest string) Instruction {
	action, attr := splitActionAttribute(rest)
	return Instruction{
		Kind:  KindPrint,
		Text:  stripQuotes(action),
		Width: ExtractNumber(attr),
	}
}

func (p *Parser) parseInput(rest string) Instruction {
	action, attr := splitActionAttribute(rest)
	return Instruction{
		Kind:  KindInput,
		Field: stripQuotes(action),
		Width: ExtractNumber(attr),
	}
}

func (p *Parser) parsePress(rest string, chord bool) Instruction {
	action, attr := splitActionAttribute(rest)
	action = stripQuotes(action)

	keys := []string{action}
	if chord {
		keys = strings.Split(action, chordSep)
	}

	return Instruction{
		Kind:   KindPress,
		Keys:   keys,
		Repeat: ExtractNumber(attr),
	}
}

func (p *Parser) parsePause(rest string) Instruction {
	rest = strings.TrimSpace(stripParens(rest))
	if rest == "" {
		return Instruction{Kind: KindPause, Seconds: IntNumber(p.opts.PauseSeconds)}
	}
	return Instruction{Kind: KindPause, Seconds: ExtractNumber(rest)}
}

// splitActionAttribute strips one layer of parentheses, then splits the
// remainder on ',' into the action and its optional attribute. Anything
// past a second comma is discarded.
func splitActionAttribute(rest string) (action, attribute string) {
	parts := strings.Split(stripParens(rest), ",")
	action = parts[0]
	if len(parts) > 1 {
		attribute = parts[1]
	}
	return action, attribute
}

// stripParens removes a single leading '(' and a single trailing ')'
// from the trimmed string. Each side is handled independently, so an
// unbalanced paren is still stripped.
func stripParens(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "(") {
		s = s[1:]
	}
	if strings.HasSuffix(s, ")") {
		s = s[:len(s)-1]
	}
	return s
}

// stripQuotes removes every occurrence of the leading quote character
// when the value starts with ' or '"'. Quotes are purged from the whole
// value, not just the ends: `"a"b"` becomes `ab`.
func stripQuotes(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return trimmed
	}
	switch trimmed[0] {
	case '"', '\'':
		return strings.ReplaceAll(trimmed, string(trimmed[0]), "")
	}
	return trimmed
}
