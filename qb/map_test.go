package qb_test

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/maxshaw/assembler/qb"
)

func TestMapKeepsInsertionOrder(t *testing.T) {
	m := qb.NewMap(qb.KV("nom", "dupont"), qb.KV("prenom", "jean")).
		Set("age", 42).
		Set("nom", "martin")

	assert.DeepEqual(t, []string{"nom", "prenom", "age"}, m.Keys())
	assert.Equal(t, 3, m.Len())

	v, ok := m.Get("nom")
	assert.Assert(t, ok)
	assert.Equal(t, "martin", v.Any())

	assert.Assert(t, m.Has("age"))
	assert.Assert(t, !m.Has("ville"))
}

func TestMapValues(t *testing.T) {
	m := qb.NewMap(qb.KV("a", 1), qb.KV("b", "x"))

	assert.DeepEqual(t, []string{"1", "'x'"}, literals(m.Values()))
}

func TestMapMerge(t *testing.T) {
	params := qb.NewMap(qb.KV("nom", "dupont"), qb.KV("id", 1))
	binds := qb.NewMap(qb.KV("ville", "Lyon"), qb.KV("id", 7))

	merged := params.Merge(binds)

	assert.DeepEqual(t, []string{"nom", "id", "ville"}, merged.Keys())
	assert.DeepEqual(t, map[string]any{"nom": "dupont", "id": 7, "ville": "Lyon"}, merged.ToMap())

	assert.DeepEqual(t, map[string]any{"nom": "dupont", "id": 1}, params.ToMap())
	assert.DeepEqual(t, []string{"ville", "id"}, binds.Keys())
}

func TestMapCopy(t *testing.T) {
	m := qb.NewMap(qb.KV("a", 1))
	c := m.Copy().Set("b", 2)

	assert.Equal(t, 1, m.Len())
	assert.Equal(t, 2, c.Len())
}

func TestNilMap(t *testing.T) {
	var m *qb.Map

	_, ok := m.Get("a")
	assert.Assert(t, !ok)
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, 0, len(m.Pairs()))
	assert.Equal(t, 0, len(m.ToMap()))
	assert.Equal(t, 0, m.Copy().Len())

	merged := m.Merge(qb.NewMap(qb.KV("a", 1)))
	assert.DeepEqual(t, []string{"a"}, merged.Keys())
}

func literals(values []qb.Value) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, v.Literal())
	}
	return out
}
