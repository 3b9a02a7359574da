package assembler

import (
	"strings"

	"github.com/samber/lo"

	"github.com/maxshaw/assembler/qb"
)

// InsertInto starts an INSERT. Columns and values come from SetParams.
func (b *Builder) InsertInto(table string) *Builder {
	b.kind = KindInsert
	b.table = table
	return b
}

func (b *Builder) renderInsert(sb *strings.Builder, s strategy) {
	pairs := b.params.Pairs()

	sb.WriteString(qb.Parenthesize(strings.Join(lo.Map(pairs, func(p qb.Pair, _ int) string {
		return b.column(p.Key)
	}), ", ")))

	sb.WriteString(" VALUES ")

	sb.WriteString(qb.Parenthesize(strings.Join(lo.Map(pairs, func(p qb.Pair, _ int) string {
		return s.value(p.Key, p.Val)
	}), ", ")))
}
