package qb

import (
	"strings"

	"github.com/samber/lo"
)

func Placeholder(name string) string {
	return ":" + name
}

// Placeholders renders names as a compact IN list: ":a,:b".
func Placeholders(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return ":" + strings.Join(names, ",:")
}

// QuotedList renders every value as quoted text, whatever its kind: 'a','1','2'.
// Booleans are written as '1' and '', NULL as ''.
//
// SECURITY: embedded quotes are not escaped.
func QuotedList(values []Value) string {
	return "'" + strings.Join(lo.Map(values, func(v Value, _ int) string { return v.token() }), "','") + "'"
}

func Parenthesize(s string) string {
	return "(" + s + ")"
}

// Qualify prefixes field with "alias." when alias is set.
func Qualify(alias, field string) string {
	if alias == "" {
		return field
	}
	return alias + "." + field
}
