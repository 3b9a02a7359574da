package qb

import (
	"database/sql/driver"
	"fmt"
	"reflect"
	"strconv"
	"time"
)

type Kind uint8

const (
	KindNull Kind = iota
	KindText
	KindNumber
	KindBoolean
	KindRaw
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindRaw:
		return "raw"
	}
	return "null"
}

// Value is a bind value tagged with the rule used to render it as a SQL literal.
// The tag and the text form are decided once, when the value is created.
type Value struct {
	kind Kind
	text string
	val  any
}

// Text returns a value rendered as a single quoted literal.
//
// SECURITY: quotes inside s are not escaped. Never render user input in literal mode.
func Text(s string) Value {
	return Value{kind: KindText, text: s, val: s}
}

func Number[T ~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64](n T) Value {
	return Of(n)
}

func Bool(b bool) Value {
	if b {
		return Value{kind: KindBoolean, text: "TRUE", val: b}
	}
	return Value{kind: KindBoolean, text: "FALSE", val: b}
}

// Raw returns a value written verbatim into literal SQL, e.g. Raw("NOW()").
//
// SECURITY: s is injected as is. It must never carry user input.
func Raw(s string) Value {
	return Value{kind: KindRaw, text: s, val: s}
}

func Null() Value {
	return Value{}
}

// Of tags an arbitrary Go value. A nil pointer is NULL, whatever it points to.
func Of(v any) Value {
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return Null()
	}

	switch x := v.(type) {
	case nil:
		return Null()
	case Value:
		return x
	case string:
		return Text(x)
	case []byte:
		return Value{kind: KindText, text: string(x), val: x}
	case bool:
		return Bool(x)
	case time.Time:
		return Value{kind: KindText, text: x.Format(time.DateTime), val: x}
	case driver.Valuer:
		dv, err := x.Value()
		if err != nil {
			return Value{kind: KindRaw, text: fmt.Sprint(v), val: v}
		}
		inner := Of(dv)
		inner.val = v
		return inner
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Value{kind: KindNumber, text: strconv.FormatInt(rv.Int(), 10), val: v}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Value{kind: KindNumber, text: strconv.FormatUint(rv.Uint(), 10), val: v}
	case reflect.Float32:
		return Value{kind: KindNumber, text: strconv.FormatFloat(rv.Float(), 'f', -1, 32), val: v}
	case reflect.Float64:
		return Value{kind: KindNumber, text: strconv.FormatFloat(rv.Float(), 'f', -1, 64), val: v}
	case reflect.String:
		return Value{kind: KindText, text: rv.String(), val: v}
	case reflect.Bool:
		b := Bool(rv.Bool())
		b.val = v
		return b
	case reflect.Pointer:
		if rv.IsNil() {
			return Null()
		}
		inner := Of(rv.Elem().Interface())
		inner.val = v
		return inner
	}

	if s, ok := v.(fmt.Stringer); ok {
		return Value{kind: KindText, text: s.String(), val: v}
	}

	return Value{kind: KindText, text: fmt.Sprint(v), val: v}
}

func (v Value) Kind() Kind {
	return v.kind
}

// Any returns the original Go value, the one handed to the driver in prepared mode.
func (v Value) Any() any {
	return v.val
}

// String returns the unquoted text form.
func (v Value) String() string {
	return v.text
}

// Literal renders v for literal mode. Text is wrapped in single quotes and nothing is escaped.
func (v Value) Literal() string {
	switch v.kind {
	case KindNull:
		return "NULL"
	case KindText:
		return "'" + v.text + "'"
	}
	return v.text
}

// token is the bare text of v inside a quoted IN list.
func (v Value) token() string {
	if v.kind == KindBoolean {
		if v.text == "TRUE" {
			return "1"
		}
		return ""
	}
	return v.text
}
