package assembler_test

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/maxshaw/assembler"
	"github.com/maxshaw/assembler/qb"
)

func product() []qb.Pair {
	return []qb.Pair{
		qb.KV("name", "produit"),
		qb.KV("price", 2.0),
		qb.KV("desc", "description"),
	}
}

func TestUpdate(t *testing.T) {
	b := assembler.New().
		ExecuteMode().
		Update("product").
		AndWhere("id", 10).
		SetParams(product()...)

	assert.Equal(t,
		"UPDATE product SET name = 'produit', price = 2, desc = 'description' WHERE id = 10;",
		mustSQL(t, b),
	)
}

func TestUpdateWithPrefix(t *testing.T) {
	b := assembler.New().
		ExecuteMode().
		Update("product").
		AndWhere("pdt_id", 10).
		SetPrefix("pdt_").
		SetParams(product()...)

	assert.Equal(t,
		"UPDATE product SET pdt_name = 'produit', pdt_price = 2, pdt_desc = 'description' WHERE pdt_id = 10;",
		mustSQL(t, b),
	)
}

func TestPreparedUpdate(t *testing.T) {
	b := assembler.New().
		Update("product").
		AndWhere("id = :id", 10).
		SetParams(product()...)

	assert.Equal(t,
		"UPDATE product SET name = :name, price = :price, desc = :desc WHERE id = :id;",
		mustSQL(t, b),
	)

	binds := b.BindParams()
	assert.DeepEqual(t, []string{"name", "price", "desc", "id"}, binds.Keys())
	assert.DeepEqual(t, map[string]any{
		"name":  "produit",
		"price": 2.0,
		"desc":  "description",
		"id":    10,
	}, binds.ToMap())
}

func TestPreparedUpdateWithPrefix(t *testing.T) {
	b := assembler.New().
		Update("product").
		SetPrefix("pdt_").
		AndWhere("pdt_id = :id", 10).
		SetParams(product()...)

	assert.Equal(t,
		"UPDATE product SET pdt_name = :name, pdt_price = :price, pdt_desc = :desc WHERE pdt_id = :id;",
		mustSQL(t, b),
	)
	assert.DeepEqual(t, []string{"name", "price", "desc", "id"}, b.BindParams().Keys())
}

func TestUpdateWithMultiplesConditions(t *testing.T) {
	b := assembler.New().
		ExecuteMode().
		Update("product").
		SetParams(product()...).
		AndWhere("id", 10).
		AndWhere("name", "produit")

	assert.Equal(t,
		"UPDATE product SET name = 'produit', price = 2, desc = 'description' WHERE id = 10 AND name = 'produit';",
		mustSQL(t, b),
	)
}

func TestPreparedUpdateWithMultiplesConditions(t *testing.T) {
	b := assembler.New().
		Update("product").
		SetParams(product()...).
		AndWhere("id = :id", 10).
		AndWhere("product = :nom_produit", "produit10")

	assert.Equal(t,
		"UPDATE product SET name = :name, price = :price, desc = :desc WHERE id = :id AND product = :nom_produit;",
		mustSQL(t, b),
	)

	binds := b.BindParams()
	assert.DeepEqual(t, []string{"name", "price", "desc", "id", "nom_produit"}, binds.Keys())

	v, ok := binds.Get("nom_produit")
	assert.Assert(t, ok)
	assert.Equal(t, "produit10", v.Any())
}

func TestUpdateWithJoins(t *testing.T) {
	cases := []struct {
		name string
		b    *assembler.Builder
		want string
	}{
		{
			name: "inner join",
			b: assembler.New().
				Update("product p").
				SetParams(qb.KV("desc", "description")).
				AndWhere("c.category_nom = :category_nom", "masque").
				AndWhere("p.product_nom = :nom_produit", "jouet").
				InnerJoin("category c", "c.category_id = p.product_id"),
			want: "UPDATE product p INNER JOIN category c ON c.category_id = p.product_id SET desc = :desc WHERE c.category_nom = :category_nom AND p.product_nom = :nom_produit;",
		},
		{
			name: "left join",
			b: assembler.New().
				Update("product p").
				SetParams(qb.KV("desc", "description")).
				AndWhere("c.category_nom = :category_nom", "masque").
				AndWhere("p.product_nom = :nom_produit", "jouet").
				LeftJoin("category c", "c.category_id = p.product_id"),
			want: "UPDATE product p LEFT JOIN category c ON c.category_id = p.product_id SET desc = :desc WHERE c.category_nom = :category_nom AND p.product_nom = :nom_produit;",
		},
		{
			name: "multiple inner joins",
			b: assembler.New().
				Update("product p").
				SetParams(qb.KV("desc", "description")).
				AndWhere("c.category_nom = :category_nom", "masque").
				InnerJoin("category c", "c.category_id = p.product_id").
				AndWhere("p.product_nom = :nom_produit", "jouet").
				InnerJoin("producteur pr", "pr.producteur_id = p.producteur_id"),
			want: "UPDATE product p INNER JOIN category c ON c.category_id = p.product_id INNER JOIN producteur pr ON pr.producteur_id = p.producteur_id SET desc = :desc WHERE c.category_nom = :category_nom AND p.product_nom = :nom_produit;",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, mustSQL(t, c.b))
		})
	}
}
