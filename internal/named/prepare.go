package named

import (
	"errors"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/maxshaw/assembler/qb"
)

var ErrBlankQuery = errors.New("blank query")

var (
	paramFinder = regexp.MustCompile(`::?\w+`)
	spaceFinder = regexp.MustCompile(`(?m)\s^\s+`)
)

// Prepare rewrites every :name found in params into a driver placeholder, ? or $n when
// numbered, and returns the matching positional arguments. Slice values expand to one
// placeholder per element. Unknown names and :: casts are left untouched.
func Prepare(query string, params *qb.Map, numbered bool) (string, []any, error) {
	query = strings.TrimSpace(spaceFinder.ReplaceAllString(query, " "))
	if strings.Trim(query, "; ") == "" {
		return "", nil, ErrBlankQuery
	}

	args := []any{}
	counter := 0
	next := func() string {
		counter++
		if !numbered {
			return "?"
		}
		return "$" + strconv.Itoa(counter)
	}

	prepared := paramFinder.ReplaceAllStringFunc(query, func(s string) string {
		if strings.HasPrefix(s, "::") {
			return s
		}

		v, found := params.Get(s[1:])
		if !found {
			return s
		}

		raw := v.Any()
		if rv := reflect.ValueOf(raw); raw != nil && isList(rv) {
			holders := make([]string, 0, rv.Len())
			for i := 0; i < rv.Len(); i++ {
				holders = append(holders, next())
				args = append(args, rv.Index(i).Interface())
			}
			return strings.Join(holders, ", ")
		}

		args = append(args, raw)
		return next()
	})

	return prepared, args, nil
}

func isList(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Array:
		return true
	case reflect.Slice:
		return rv.Type().Elem().Kind() != reflect.Uint8
	}
	return false
}
