package script

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dshills/keyscript/internal/config"
)

// Loader turns procedure sources into instruction sequences.
type Loader struct {
	parser *Parser
}

// NewLoader creates a loader that parses with the given options.
func NewLoader(opts config.Options) *Loader {
	return &Loader{parser: NewParser(opts)}
}

// FromInstructions passes an already-built instruction sequence through
// unchanged.
func (l *Loader) FromInstructions(instrs []Instruction) []Instruction {
	return instrs
}

// FromText parses procedure text, one instruction per line. No-op lines
// are retained, so the result has exactly one entry per source line.
func (l *Loader) FromText(text string) []Instruction {
	lines := strings.Split(text, "\n")
	instrs := make([]Instruction, 0, len(lines))
	for _, line := range lines {
		instrs = append(instrs, l.parser.ParseLine(line))
	}
	return instrs
}

// FromReader reads the stream fully and parses it as procedure text.
func (l *Loader) FromReader(r io.Reader) ([]Instruction, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading procedure: %w", err)
	}
	return l.FromText(string(data)), nil
}

// FromFile reads a procedure file fully and parses it as text.
func (l *Loader) FromFile(path string) ([]Instruction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening procedure file: %w", err)
	}
	defer f.Close()

	return l.FromReader(f)
}
