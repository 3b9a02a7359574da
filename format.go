package assembler

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/maxshaw/assembler/qb"
)

// Formatter transforms one params value.
type Formatter func(v qb.Value) qb.Value

var formatters = struct {
	sync.RWMutex
	m map[string]Formatter
}{
	m: map[string]Formatter{
		"upper":   TextFormatter(strings.ToUpper),
		"lower":   TextFormatter(strings.ToLower),
		"trim":    TextFormatter(strings.TrimSpace),
		"ucfirst": TextFormatter(upperFirst),
		"ucwords": TextFormatter(upperWords),
	},
}

// RegisterFormatter makes fn available to FormatParams under name, replacing any
// formatter already registered with that name.
func RegisterFormatter(name string, fn Formatter) {
	formatters.Lock()
	defer formatters.Unlock()
	formatters.m[name] = fn
}

func LookupFormatter(name string) (Formatter, bool) {
	formatters.RLock()
	defer formatters.RUnlock()
	fn, ok := formatters.m[name]
	return fn, ok
}

// TextFormatter lifts a string function into a Formatter. Values other than text pass through.
func TextFormatter(fn func(string) string) Formatter {
	return func(v qb.Value) qb.Value {
		if v.Kind() != qb.KindText {
			return v
		}
		return qb.Text(fn(v.String()))
	}
}

// FormatParams applies the formatter registered under name to the given params keys.
// Keys that are not set are skipped.
func (b *Builder) FormatParams(name string, keys ...string) *Builder {
	fn, ok := LookupFormatter(name)
	if !ok {
		return b.fail("FormatParams", name, ErrUnknownFormatter)
	}
	return b.FormatParamsFunc(fn, keys...)
}

func (b *Builder) FormatParamsFunc(fn Formatter, keys ...string) *Builder {
	for _, key := range keys {
		if v, ok := b.params.Get(key); ok {
			b.params.Set(key, fn(v))
		}
	}
	return b
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func upperWords(s string) string {
	prev := ' '
	return strings.Map(func(r rune) rune {
		up := unicode.IsSpace(prev)
		prev = r
		if up {
			return unicode.ToUpper(r)
		}
		return r
	}, s)
}
