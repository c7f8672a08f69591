package proc

import (
	"github.com/dshills/keyscript/internal/command"
	"github.com/dshills/keyscript/internal/script"
	"github.com/dshills/keyscript/internal/table"
)

// ProcedureSet is the flat, ordered action list for one run. It is
// built fresh per run and handed straight to the executor.
type ProcedureSet []command.Command

// Describe returns one line per action, in execution order.
func (ps ProcedureSet) Describe() []string {
	lines := make([]string, 0, len(ps))
	for _, cmd := range ps {
		lines = append(lines, cmd.Describe())
	}
	return lines
}

// Build cross-products instructions against the data table's records.
// A nil table expands to a single unbound pass. Comment and blank
// instructions are skipped; everything else is resolved against the
// current record in source order.
func Build(instrs []script.Instruction, tbl *table.Table, resolver *command.Resolver) ProcedureSet {
	if tbl == nil {
		return buildPass(nil, instrs, nil, resolver)
	}

	var set ProcedureSet
	for _, key := range tbl.Keys() {
		set = buildPass(set, instrs, tbl.Record(key), resolver)
	}
	return set
}

func buildPass(set ProcedureSet, instrs []script.Instruction, rec *table.Record, resolver *command.Resolver) ProcedureSet {
	for _, in := range instrs {
		if in.IsNoop() {
			continue
		}
		set = append(set, resolver.Resolve(in, rec))
	}
	return set
}
