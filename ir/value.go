package ir

import (
	"strconv"

	"github.com/curlyconf/curlyconf/token"
)

type ValueKind int

const (
	StringKind ValueKind = iota
	NumberKind
	BoolKind
)

func (k ValueKind) String() string {
	switch k {
	case StringKind:
		return "String"
	case NumberKind:
		return "Number"
	case BoolKind:
		return "Bool"
	}
	return "<unknown kind>"
}

// Value is the scalar payload of a property: exactly one of string,
// number, or boolean. Numbers keep both the parsed float and the
// literal spelling so "0.50" re-emits as written.
type Value struct {
	Kind ValueKind
	Str  string
	Num  float64
	Text string
	Bool bool
}

func FromString(s string) Value {
	return Value{Kind: StringKind, Str: s}
}

func FromNumber(text string) Value {
	f, _ := strconv.ParseFloat(text, 64)
	if f == 0 {
		// integer spellings strconv's float parser rejects (0x10, 0b101)
		if n, err := strconv.ParseInt(text, 0, 64); err == nil {
			f = float64(n)
		}
	}
	return Value{Kind: NumberKind, Num: f, Text: text}
}

func FromBool(b bool) Value {
	return Value{Kind: BoolKind, Bool: b}
}

// FromAny converts a plain Go scalar, as produced by JSON or YAML
// decoding, into a Value. Unknown types stringify.
func FromAny(v any) Value {
	switch x := v.(type) {
	case bool:
		return FromBool(x)
	case float64:
		return FromNumber(strconv.FormatFloat(x, 'g', -1, 64))
	case int:
		return FromNumber(strconv.Itoa(x))
	case int64:
		return FromNumber(strconv.FormatInt(x, 10))
	case string:
		return FromString(x)
	default:
		return FromString("")
	}
}

// CoerceScalar applies the one fixed coercion rule for bare scalar
// text: exact true/false is a boolean, a permissive numeric parse is a
// number, anything else is a string. It runs once, at parse time (or
// when a commented-out property is split); values are never re-inferred
// later.
func CoerceScalar(text string) Value {
	switch text {
	case "true":
		return FromBool(true)
	case "false":
		return FromBool(false)
	}
	if token.IsNumeric(text) {
		return FromNumber(text)
	}
	return FromString(text)
}

// Scalar returns the value as a plain Go scalar (string, float64 or
// bool), suitable for JSON or YAML encoding and for expression
// environments.
func (v Value) Scalar() any {
	switch v.Kind {
	case NumberKind:
		return v.Num
	case BoolKind:
		return v.Bool
	default:
		return v.Str
	}
}

// Literal returns the value's unquoted textual form.
func (v Value) Literal() string {
	switch v.Kind {
	case NumberKind:
		if v.Text != "" {
			return v.Text
		}
		return strconv.FormatFloat(v.Num, 'g', -1, 64)
	case BoolKind:
		return strconv.FormatBool(v.Bool)
	default:
		return v.Str
	}
}

func (v Value) equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case NumberKind:
		return v.Num == o.Num
	case BoolKind:
		return v.Bool == o.Bool
	default:
		return v.Str == o.Str
	}
}
