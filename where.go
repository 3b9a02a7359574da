package assembler

import (
	"github.com/samber/lo"

	"github.com/maxshaw/assembler/qb"
)

// AndWhere adds a condition joined with AND.
//
// In prepared mode a value is bound under the placeholder written in the condition:
//
//	b.AndWhere("c.category_id = :category_id", 10)
//
// In literal mode the condition is the column and the clause renders as "column = value":
//
//	b.ExecuteMode().AndWhere("c.category_id", 10) // c.category_id = 10
//
// A nil or missing value adds the condition verbatim in both modes.
func (b *Builder) AndWhere(condition string, value ...any) *Builder {
	if len(value) == 0 || value[0] == nil {
		b.where = append(b.where, whereEntry{cond: condition})
		return b
	}

	key := condition
	if b.mode == Prepared {
		k, ok := qb.BindKey(condition)
		if !ok {
			return b.fail("AndWhere", condition, ErrMissingPlaceholder)
		}
		key = k
	}

	b.where = append(b.where, whereEntry{cond: condition, key: key, bound: true})
	b.bind(key, value[0])
	return b
}

// In adds "condition IN (...)". The fragment is rendered now, from the current mode.
// In prepared mode with bind names, values[i] is bound to bindNames[i]. Otherwise every
// value is written as quoted text, numbers included.
//
// SECURITY: the quoted list is not escaped.
func (b *Builder) In(condition string, values []any, bindNames ...string) *Builder {
	if b.mode == Prepared && len(bindNames) > 0 {
		if len(bindNames) != len(values) {
			return b.fail("In", condition, ErrBindCount)
		}

		b.in = append(b.in, condition+" IN "+qb.Parenthesize(qb.Placeholders(bindNames)))
		for i, name := range bindNames {
			b.bind(name, values[i])
		}
		return b
	}

	list := lo.Map(values, func(v any, _ int) qb.Value { return qb.Of(v) })
	b.in = append(b.in, condition+" IN "+qb.Parenthesize(qb.QuotedList(list)))
	return b
}

func (b *Builder) renderWhere(s strategy) string {
	return qb.And(append(s.where(b), b.in...)...)
}
