package plan

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/maxshaw/assembler"
	"github.com/maxshaw/assembler/qb"
)

// Plan describes one statement in YAML:
//
//	statement: select
//	table: product
//	alias: p
//	fields:
//	  - names: ["*"]
//	joins:
//	  - kind: inner
//	    table: category c
//	    condition: c.category_id = p.category_id
//	where:
//	  - condition: c.category_id = :category_id
//	    value: 10
type Plan struct {
	Statement string    `yaml:"statement"`
	Mode      string    `yaml:"mode"`
	Table     string    `yaml:"table"`
	Alias     string    `yaml:"alias"`
	Fields    []Fields  `yaml:"fields"`
	Delete    []string  `yaml:"delete"`
	Joins     []Join    `yaml:"joins"`
	Where     []Where   `yaml:"where"`
	In        []In      `yaml:"in"`
	OrderBy   []Order   `yaml:"order_by"`
	GroupBy   []string  `yaml:"group_by"`
	Prefix    string    `yaml:"prefix"`
	Params    yaml.Node `yaml:"params"`
	Defaults  []Default `yaml:"defaults"`
	Format    []Format  `yaml:"format"`
}

type Fields struct {
	Alias  string   `yaml:"alias"`
	Prefix string   `yaml:"prefix"` // selects "<prefix><name> as <name>"
	Names  []string `yaml:"names"`
}

type Join struct {
	Kind      string `yaml:"kind"` // inner or left
	Table     string `yaml:"table"`
	Condition string `yaml:"condition"`
}

type Where struct {
	Condition string `yaml:"condition"`
	Value     any    `yaml:"value"`
}

type In struct {
	Condition string   `yaml:"condition"`
	Values    []any    `yaml:"values"`
	Binds     []string `yaml:"binds"`
}

type Order struct {
	Direction string   `yaml:"direction"`
	Fields    []string `yaml:"fields"`
}

type Default struct {
	Replace any      `yaml:"replace"`
	Match   []string `yaml:"match"`
}

type Format struct {
	Formatter string   `yaml:"formatter"`
	Keys      []string `yaml:"keys"`
}

func Load(path string) (*Plan, error) {
	in, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(in)
}

func Parse(in []byte) (*Plan, error) {
	var p Plan
	if err := yaml.Unmarshal(in, &p); err != nil {
		return nil, err
	}

	if err := p.Validation(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *Plan) Validation() error {
	switch p.Statement {
	case "select", "insert", "update", "delete", "call":
	default:
		return fmt.Errorf("the statement \"%s\" not supported", p.Statement)
	}

	switch p.Mode {
	case "", "prepared", "literal":
	default:
		return fmt.Errorf("the mode \"%s\" not supported", p.Mode)
	}

	if p.Table == "" {
		return errors.New("table cannot be empty")
	}

	for _, j := range p.Joins {
		if j.Kind != "inner" && j.Kind != "left" {
			return fmt.Errorf("the join kind \"%s\" not supported", j.Kind)
		}
	}

	if p.Params.Kind != 0 && p.Params.Kind != yaml.MappingNode {
		return errors.New("params must be a mapping")
	}

	return nil
}

// Apply configures b from the plan and returns the builder errors.
func (p *Plan) Apply(b *assembler.Builder) error {
	if p.Mode == "literal" {
		b.ExecuteMode()
	} else {
		b.PreparedMode()
	}

	target := p.Table
	if p.Alias != "" {
		target += " " + p.Alias
	}

	switch p.Statement {
	case "select":
		if len(p.Fields) == 0 {
			b.Select("")
		}
		for _, f := range p.Fields {
			if f.Prefix != "" {
				b.SelectAs(f.Alias, f.Prefix, f.Names...)
			} else {
				b.Select(f.Alias, f.Names...)
			}
		}
		b.From(target)
	case "insert":
		b.InsertInto(p.Table)
	case "update":
		b.Update(target)
	case "delete":
		b.Delete(p.Delete...).From(target)
	case "call":
		b.Call(p.Table)
	}

	for _, j := range p.Joins {
		if j.Kind == "left" {
			b.LeftJoin(j.Table, j.Condition)
		} else {
			b.InnerJoin(j.Table, j.Condition)
		}
	}

	for _, w := range p.Where {
		b.AndWhere(w.Condition, w.Value)
	}

	for _, in := range p.In {
		b.In(in.Condition, in.Values, in.Binds...)
	}

	for _, o := range p.OrderBy {
		b.OrderBy(o.Direction, o.Fields...)
	}

	if len(p.GroupBy) > 0 {
		b.GroupBy(p.GroupBy...)
	}

	if p.Prefix != "" {
		b.SetPrefix(p.Prefix)
	}

	params, err := p.params()
	if err != nil {
		return err
	}
	b.MergeParams(params)

	for _, d := range p.Defaults {
		b.SetDefaultParamsValue(d.Replace, d.Match...)
	}

	for _, f := range p.Format {
		b.FormatParams(f.Formatter, f.Keys...)
	}

	return b.Err()
}

// params decodes the params mapping node pair by pair to keep the file order.
func (p *Plan) params() (*qb.Map, error) {
	m := qb.NewMap()
	if p.Params.Kind != yaml.MappingNode {
		return m, nil
	}

	for i := 0; i+1 < len(p.Params.Content); i += 2 {
		var val any
		if err := p.Params.Content[i+1].Decode(&val); err != nil {
			return nil, err
		}
		m.Set(p.Params.Content[i].Value, val)
	}
	return m, nil
}
