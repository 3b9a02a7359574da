package assembler

import (
	"github.com/samber/lo"

	"github.com/maxshaw/assembler/qb"
)

type Mode uint8

const (
	Prepared Mode = iota
	Literal
)

func (m Mode) String() string {
	if m == Literal {
		return "literal"
	}
	return "prepared"
}

// strategy renders the value bearing fragments of a statement for one mode.
// ToSQL resolves it once and hands it to every clause renderer.
type strategy interface {
	value(key string, v qb.Value) string
	where(b *Builder) []string
}

func (m Mode) strategy() strategy {
	if m == Literal {
		return literalStrategy{}
	}
	return preparedStrategy{}
}

type preparedStrategy struct{}

func (preparedStrategy) value(key string, _ qb.Value) string {
	return qb.Placeholder(key)
}

func (preparedStrategy) where(b *Builder) []string {
	return lo.Map(b.where, func(w whereEntry, _ int) string { return w.cond })
}

type literalStrategy struct{}

func (literalStrategy) value(_ string, v qb.Value) string {
	return v.Literal()
}

// where rebuilds bound conditions as "key = literal" from the bind map, so a key bound
// twice renders once, at its first position, with the last value.
func (literalStrategy) where(b *Builder) []string {
	seen := make(map[string]bool, len(b.where))
	out := make([]string, 0, len(b.where))

	for _, w := range b.where {
		if !w.bound {
			out = append(out, w.cond)
			continue
		}

		if seen[w.key] {
			continue
		}
		seen[w.key] = true

		v, _ := b.binds.Get(w.key)
		out = append(out, w.key+" = "+v.Literal())
	}

	return out
}
