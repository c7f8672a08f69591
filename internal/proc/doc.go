// Package proc expands parsed procedures into flat action lists and
// runs them.
//
// Expansion is record-major: with a data table of N records, the whole
// instruction sequence is resolved once per record, in stored record
// order, producing N back-to-back copies of the procedure each bound to
// its own record. Without a table the procedure is resolved exactly
// once with no bound record. No-op instructions survive parsing but are
// dropped here, so the action count is always
//
//	(records, or 1 if none) x (non-no-op instructions)
//
// Execution is strictly sequential and synchronous. There is no
// skipping, no retry, and no rollback; the first failing injection call
// aborts the run.
package proc
