package assembler

import (
	"strings"

	"github.com/samber/lo"

	"github.com/maxshaw/assembler/qb"
)

// Delete starts a DELETE. tables lists the aliases to delete from in a multi table
// delete; the FROM target is set with From.
func (b *Builder) Delete(tables ...string) *Builder {
	b.kind = KindDelete
	b.deleteTable = tables
	return b
}

// Call starts a stored procedure call whose arguments are the params, in order.
// In prepared mode the prefix is written before each placeholder, "pdt_:nom"; the
// bind keys stay unprefixed.
func (b *Builder) Call(procedure string) *Builder {
	b.kind = KindCall
	b.table = procedure
	return b
}

func (b *Builder) renderDelete(sb *strings.Builder) {
	if len(b.deleteTable) > 0 {
		sb.WriteString(" ")
		sb.WriteString(strings.Join(b.deleteTable, ", "))
	}

	sb.WriteString(" FROM ")
	sb.WriteString(b.table)
}

func (b *Builder) renderCall(sb *strings.Builder, s strategy) {
	sb.WriteString(" ")
	sb.WriteString(b.table)
	sb.WriteString(" ")
	sb.WriteString(qb.Parenthesize(strings.Join(lo.Map(b.params.Pairs(), func(p qb.Pair, _ int) string {
		if b.mode == Prepared {
			return b.column(s.value(p.Key, p.Val))
		}
		return s.value(p.Key, p.Val)
	}), ", ")))
}
