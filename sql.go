package assembler

import "strings"

// ToSQL renders the statement. It has no side effect and may be called any number of
// times. The error is non nil when an input was rejected, see Err.
//
// Sections are written in a fixed order: keyword, target, joins, VALUES or SET, WHERE,
// then GROUP BY and ORDER BY for a SELECT. A CALL stops after its argument list and is
// not terminated by a separator.
func (b *Builder) ToSQL() (string, error) {
	if err := b.Err(); err != nil {
		return "", err
	}

	if b.kind == KindNone {
		return separator, nil
	}

	s := b.mode.strategy()

	var sb strings.Builder
	sb.WriteString(keywords[b.kind])

	switch b.kind {
	case KindCall:
		b.renderCall(&sb, s)
		return sb.String(), nil

	case KindSelect:
		b.renderSelect(&sb)

	case KindDelete:
		b.renderDelete(&sb)

	default:
		sb.WriteString(" ")
		sb.WriteString(b.table)
	}

	if b.kind != KindInsert && len(b.joins) > 0 {
		sb.WriteString(" ")
		sb.WriteString(strings.Join(b.joins, " "))
	}

	switch b.kind {
	case KindInsert:
		sb.WriteString(" ")
		b.renderInsert(&sb, s)

	case KindUpdate:
		sb.WriteString(" SET ")
		b.renderUpdate(&sb, s)
	}

	if b.kind != KindInsert {
		if cond := b.renderWhere(s); cond != "" {
			sb.WriteString(" WHERE ")
			sb.WriteString(cond)
		}
	}

	if b.kind == KindSelect {
		b.renderGrouping(&sb)
	}

	sb.WriteString(separator)

	return sb.String(), nil
}

// String renders the statement, or an empty string when an input was rejected.
func (b *Builder) String() string {
	sq, err := b.ToSQL()
	if err != nil {
		return ""
	}
	return sq
}
