package qb

import (
	"strings"
	"unicode"
)

// BindKey extracts the placeholder name following the first ':' of a condition.
// "c.id = :category_id" yields "category_id". "::" casts are skipped, so
// "x::int = :id" yields "id". The name stops at the first rune that is not a letter,
// a digit or '_'. ok is false when there is no ':' or the name is empty.
func BindKey(condition string) (key string, ok bool) {
	i := 0
	for {
		j := strings.IndexByte(condition[i:], ':')
		if j < 0 {
			return "", false
		}
		i += j + 1

		if i < len(condition) && condition[i] == ':' {
			i++
			continue
		}
		break
	}

	rest := condition[i:]
	end := strings.IndexFunc(rest, func(r rune) bool {
		return !(r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r))
	})
	if end < 0 {
		end = len(rest)
	}

	key = rest[:end]
	return key, key != ""
}

// And joins the non empty conditions with AND.
func And(conds ...string) string {
	var sb strings.Builder
	for _, cond := range conds {
		if cond == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString(" AND ")
		}
		sb.WriteString(cond)
	}
	return sb.String()
}
