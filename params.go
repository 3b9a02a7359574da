package assembler

import (
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/maxshaw/assembler/qb"
)

// SetParams merges column values used by INSERT, UPDATE and CALL. Keys are column
// names without the prefix; a key set twice keeps its first position.
//
//	b.InsertInto("produit").SetParams(qb.KV("produit_nom", "nom"), qb.KV("produit_prix", 1.78))
func (b *Builder) SetParams(pairs ...qb.Pair) *Builder {
	for _, p := range pairs {
		b.params.Set(p.Key, p.Val)
	}
	return b
}

// MergeParams merges an ordered map, e.g. one built from a decoded form.
func (b *Builder) MergeParams(params *qb.Map) *Builder {
	return b.SetParams(params.Pairs()...)
}

// SetParamsMap merges a plain map. Go maps are unordered so keys are added sorted.
func (b *Builder) SetParamsMap(params map[string]any) *Builder {
	keys := lo.Keys(params)
	slices.Sort(keys)

	for _, k := range keys {
		b.params.Set(k, params[k])
	}
	return b
}

// SetPrefix sets the string prepended to every params column of INSERT and UPDATE.
// Placeholders and bind keys stay unprefixed.
func (b *Builder) SetPrefix(prefix string) *Builder {
	b.prefix = prefix
	return b
}

// SetDefaultParamsValue replaces empty text params whose key contains one of
// the substrings:
//
//	// {"id_personne": 147, "id_ville": "", "annee": ""}
//	b.SetDefaultParamsValue(0, "id_") // {"id_personne": 147, "id_ville": 0, "annee": ""}
func (b *Builder) SetDefaultParamsValue(replace any, substrings ...string) *Builder {
	for _, p := range b.params.Pairs() {
		if p.Val.Kind() != qb.KindText || p.Val.String() != "" {
			continue
		}

		if lo.ContainsBy(substrings, func(s string) bool { return strings.Contains(p.Key, s) }) {
			b.params.Set(p.Key, replace)
		}
	}
	return b
}

// Params returns a copy of the params.
func (b *Builder) Params() *qb.Map {
	return b.params.Copy()
}

// BindParams returns the values to bind to a prepared statement: the params followed by
// the values bound by AndWhere and In. A bound key equal to a params key replaces its value.
func (b *Builder) BindParams() *qb.Map {
	if b.binds == nil {
		return b.params.Copy()
	}
	return b.params.Merge(b.binds)
}
