package assembler

import (
	"strings"

	"github.com/samber/lo"

	"github.com/maxshaw/assembler/qb"
)

// Update starts an UPDATE of table, which may carry an alias ("product p").
func (b *Builder) Update(table string) *Builder {
	b.kind = KindUpdate
	b.table = table
	return b
}

func (b *Builder) renderUpdate(sb *strings.Builder, s strategy) {
	sb.WriteString(strings.Join(lo.Map(b.params.Pairs(), func(p qb.Pair, _ int) string {
		return b.column(p.Key) + " = " + s.value(p.Key, p.Val)
	}), ", "))
}
