package confparse

// Options is a bitset of per-statement cardinality/scoping rules.
type Options uint32

const (
	// OptNone: the statement is optional and may appear at most once.
	OptNone Options = 0
	// OptMust: the statement is required; its absence before the
	// section ends raises Required.
	OptMust Options = 1 << 0
	// OptMulti: the statement may appear more than once; what a repeat
	// does is up to its adapter (field adapters overwrite in place,
	// Record appends a fresh record per occurrence).
	OptMulti Options = 1 << 1
	// OptStart: an occurrence of this statement, once at least one
	// statement has already executed in this section, closes the
	// section and hands control back to the enclosing one.
	OptStart Options = 1 << 2
)

// Adapter is the callable bound to a grammar statement. tokenStart is
// the byte offset at which the matched command token began; dest is the
// caller's target value for this section.
type Adapter[T any] func(ctx *Context, tokenStart int, dest *T) Kind

// Statement is one entry in a grammar table: a cardinality/scoping
// Options bitset, the command name it matches (empty means "match any
// token"), and the Adapter invoked when it matches.
type Statement[T any] struct {
	Options   Options
	MatchName string
	Parse     Adapter[T]
}
