package postgres

import (
	"fmt"
	"strings"
)

// condBuilder accumulates conjunctive predicates with strictly positional
// parameters. Caller input only ever travels through the argument list, never
// through query text.
type condBuilder struct {
	conds []string
	args  []any
}

// add appends one predicate. expr must contain a single %d verb marking the
// positional parameter, e.g. "price >= $%d".
func (b *condBuilder) add(expr string, arg any) {
	b.args = append(b.args, arg)
	b.conds = append(b.conds, fmt.Sprintf(expr, len(b.args)))
}

// clause renders the accumulated predicates as a WHERE clause, or nothing
// when no predicate was added. The same clause serves both the filtered query
// and its count twin.
func (b *condBuilder) clause() string {
	if len(b.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.conds, " AND ")
}

// page appends LIMIT/OFFSET parameters. Call after taking a snapshot of the
// arguments when a count query shares the builder.
func (b *condBuilder) page(limit, offset int) string {
	b.args = append(b.args, limit)
	limitPos := len(b.args)
	b.args = append(b.args, offset)
	return fmt.Sprintf(" LIMIT $%d OFFSET $%d", limitPos, len(b.args))
}

// arguments returns the parameter list in positional order.
func (b *condBuilder) arguments() []any {
	return b.args
}
