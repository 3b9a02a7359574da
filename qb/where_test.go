package qb_test

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/maxshaw/assembler/qb"
)

func TestBindKey(t *testing.T) {
	cases := []struct {
		condition string
		key       string
		ok        bool
	}{
		{condition: "c.category_id = :category_id", key: "category_id", ok: true},
		{condition: "(prix > :min AND prix < 100)", key: "min", ok: true},
		{condition: "id=:id1", key: "id1", ok: true},
		{condition: "nom = :nom_é", key: "nom_é", ok: true},
		{condition: "x::int = :id", key: "id", ok: true},
		{condition: "a::text", key: "", ok: false},
		{condition: "product_id", key: "", ok: false},
		{condition: "category_id = :", key: "", ok: false},
		{condition: "a = : b", key: "", ok: false},
	}

	for _, c := range cases {
		t.Run(c.condition, func(t *testing.T) {
			key, ok := qb.BindKey(c.condition)
			assert.Equal(t, c.ok, ok)
			assert.Equal(t, c.key, key)
		})
	}
}

func TestAnd(t *testing.T) {
	assert.Equal(t, "", qb.And())
	assert.Equal(t, "a = 1", qb.And("a = 1"))
	assert.Equal(t, "a = 1 AND b = 2", qb.And("a = 1", "", "b = 2"))
}

func TestQuotedList(t *testing.T) {
	assert.Equal(t, "'1','18'", qb.QuotedList([]qb.Value{qb.Of(1), qb.Of(18)}))
	assert.Equal(t, "'O'Hara'", qb.QuotedList([]qb.Value{qb.Text("O'Hara")}))
	assert.Equal(t, "''", qb.QuotedList(nil))
	assert.Equal(t, "'1','','x'", qb.QuotedList([]qb.Value{qb.Of(true), qb.Of(false), qb.Of("x")}))
	assert.Equal(t, "''", qb.QuotedList([]qb.Value{qb.Null()}))
}

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, ":id", qb.Placeholder("id"))
	assert.Equal(t, ":val1,:val2", qb.Placeholders([]string{"val1", "val2"}))
	assert.Equal(t, "", qb.Placeholders(nil))
}

func TestQualify(t *testing.T) {
	assert.Equal(t, "p.nom", qb.Qualify("p", "nom"))
	assert.Equal(t, "nom", qb.Qualify("", "nom"))
	assert.Equal(t, "(:a,:b)", qb.Parenthesize(qb.Placeholders([]string{"a", "b"})))
}
