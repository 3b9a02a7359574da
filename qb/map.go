package qb

import (
	"github.com/samber/lo"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

type Pair struct {
	Key string
	Val Value
}

func KV(key string, val any) Pair {
	return Pair{Key: key, Val: Of(val)}
}

// Map is an insertion ordered map of bind values. Setting an existing key replaces the
// value and keeps the key at its original position. Read methods accept a nil *Map.
type Map struct {
	om *orderedmap.OrderedMap[string, Value]
}

func NewMap(pairs ...Pair) *Map {
	m := &Map{om: orderedmap.New[string, Value]()}
	for _, p := range pairs {
		m.om.Set(p.Key, p.Val)
	}
	return m
}

func (m *Map) Set(key string, val any) *Map {
	m.om.Set(key, Of(val))
	return m
}

func (m *Map) Get(key string) (Value, bool) {
	if m == nil {
		return Value{}, false
	}
	return m.om.Get(key)
}

func (m *Map) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return m.om.Len()
}

func (m *Map) Pairs() []Pair {
	if m == nil {
		return nil
	}

	pairs := make([]Pair, 0, m.om.Len())
	for p := m.om.Oldest(); p != nil; p = p.Next() {
		pairs = append(pairs, Pair{Key: p.Key, Val: p.Value})
	}
	return pairs
}

func (m *Map) Keys() []string {
	return lo.Map(m.Pairs(), func(p Pair, _ int) string { return p.Key })
}

func (m *Map) Values() []Value {
	return lo.Map(m.Pairs(), func(p Pair, _ int) Value { return p.Val })
}

func (m *Map) Copy() *Map {
	return NewMap(m.Pairs()...)
}

// Merge returns a new map holding m followed by other. Keys of other already present in m
// overwrite the value in place.
func (m *Map) Merge(other *Map) *Map {
	out := m.Copy()
	for _, p := range other.Pairs() {
		out.om.Set(p.Key, p.Val)
	}
	return out
}

// ToMap drops the ordering and the tags.
func (m *Map) ToMap() map[string]any {
	out := make(map[string]any, m.Len())
	for _, p := range m.Pairs() {
		out[p.Key] = p.Val.Any()
	}
	return out
}
