package assembler

import (
	"strings"

	"github.com/samber/lo"

	"github.com/maxshaw/assembler/qb"
)

// Select starts a SELECT unless another statement was already started, and appends
// fields qualified with alias when alias is not empty. Without fields it selects *,
// but only while no field has been selected yet.
func (b *Builder) Select(alias string, fields ...string) *Builder {
	if b.kind == KindNone {
		b.kind = KindSelect
	}

	if len(fields) == 0 {
		if len(b.fields) == 0 {
			b.fields = []string{wildcard}
		}
		return b
	}

	b.fields = append(b.fields, lo.Map(fields, func(f string, _ int) string {
		return qb.Qualify(alias, f)
	})...)
	return b
}

// SelectAs selects prefixed columns under their short name:
//
//	SelectAs("pdi", "pdi_", "id_ville") // pdi.pdi_id_ville as id_ville
func (b *Builder) SelectAs(alias, prefix string, fields ...string) *Builder {
	return b.Select(alias, lo.Map(fields, func(f string, _ int) string {
		return prefix + f + " as " + f
	})...)
}

// From sets the table of a SELECT or DELETE. The alias may also be given inside table.
func (b *Builder) From(table string, alias ...string) *Builder {
	if len(alias) > 0 && alias[0] != "" {
		table += " " + alias[0]
	}
	b.table = table
	return b
}

func (b *Builder) InnerJoin(table, condition string) *Builder {
	return b.join("INNER JOIN", table, condition)
}

func (b *Builder) LeftJoin(table, condition string) *Builder {
	return b.join("LEFT JOIN", table, condition)
}

func (b *Builder) join(typ, table, condition string) *Builder {
	var sb strings.Builder

	sb.WriteString(typ)
	sb.WriteString(" ")
	sb.WriteString(table)
	sb.WriteString(" ON ")
	sb.WriteString(condition)

	b.joins = append(b.joins, sb.String())
	return b
}

// OrderBy appends "f1, f2 direction" to the ORDER BY clause. direction is free text.
func (b *Builder) OrderBy(direction string, fields ...string) *Builder {
	raw := strings.Join(fields, ", ") + " " + direction

	if b.order == "" {
		b.order = raw
	} else {
		b.order += ", " + raw
	}
	return b
}

// GroupBy replaces the GROUP BY clause.
func (b *Builder) GroupBy(fields ...string) *Builder {
	b.group = strings.Join(fields, ", ")
	return b
}

func (b *Builder) renderSelect(sb *strings.Builder) {
	fields := b.fields
	if len(fields) == 0 {
		fields = []string{wildcard}
	}

	sb.WriteString(" ")
	sb.WriteString(strings.Join(fields, ", "))
	sb.WriteString(" FROM ")
	sb.WriteString(b.table)
}

func (b *Builder) renderGrouping(sb *strings.Builder) {
	if b.group != "" {
		sb.WriteString(" GROUP BY ")
		sb.WriteString(b.group)
	}

	if b.order != "" {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(b.order)
	}
}
