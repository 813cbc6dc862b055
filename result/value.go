package result

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ValueKind discriminates the payload held by a Value.
type ValueKind int

const (
	KindNull ValueKind = iota
	KindString
	KindInt
	KindUint
	KindFloat
	KindDecimal
	KindDocument
	KindRaw
)

func (k ValueKind) String() string {
	switch k {
	case KindNull:
		return "NULL"
	case KindString:
		return "STRING"
	case KindInt:
		return "INT"
	case KindUint:
		return "UINT"
	case KindFloat:
		return "FLOAT"
	case KindDecimal:
		return "DECIMAL"
	case KindDocument:
		return "DOCUMENT"
	case KindRaw:
		return "RAW"
	}
	return "UNKNOWN"
}

// Value is a decoded column value. The zero Value is NULL.
type Value struct {
	kind ValueKind

	str string
	raw []byte
	i   int64
	u   uint64
	f   float64
	dec decimal.Decimal
	doc interface{}
}

func NewNull() Value                  { return Value{kind: KindNull} }
func NewString(s string) Value        { return Value{kind: KindString, str: s} }
func NewInt(i int64) Value            { return Value{kind: KindInt, i: i} }
func NewUint(u uint64) Value          { return Value{kind: KindUint, u: u} }
func NewFloat(f float64) Value        { return Value{kind: KindFloat, f: f} }
func NewDocument(d interface{}) Value { return Value{kind: KindDocument, doc: d} }

func NewDecimal(d decimal.Decimal) Value {
	return Value{kind: KindDecimal, dec: d}
}

// NewRaw holds a copy-free reference to raw bytes; callers hand over
// ownership of the slice.
func NewRaw(b []byte) Value {
	return Value{kind: KindRaw, raw: b}
}

func (v *Value) Kind() ValueKind { return v.kind }
func (v *Value) IsNull() bool    { return v.kind == KindNull }

func (v *Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

func (v *Value) AsInt() (int64, bool) {
	if v.kind != KindInt {
		return 0, false
	}
	return v.i, true
}

func (v *Value) AsUint() (uint64, bool) {
	if v.kind != KindUint {
		return 0, false
	}
	return v.u, true
}

func (v *Value) AsFloat() (float64, bool) {
	if v.kind != KindFloat {
		return 0, false
	}
	return v.f, true
}

func (v *Value) AsDecimal() (decimal.Decimal, bool) {
	if v.kind != KindDecimal {
		return decimal.Decimal{}, false
	}
	return v.dec, true
}

func (v *Value) AsDocument() (interface{}, bool) {
	if v.kind != KindDocument {
		return nil, false
	}
	return v.doc, true
}

func (v *Value) AsBytes() ([]byte, bool) {
	if v.kind != KindRaw {
		return nil, false
	}
	return v.raw, true
}

// String renders the value payload for logging. NULL renders as "<null>",
// raw bytes as hex.
func (v *Value) String() string {
	switch v.kind {
	case KindNull:
		return "<null>"
	case KindString:
		return fmt.Sprintf("%q", v.str)
	case KindInt:
		return fmt.Sprintf("%d", v.i)
	case KindUint:
		return fmt.Sprintf("%d", v.u)
	case KindFloat:
		return fmt.Sprintf("%g", v.f)
	case KindDecimal:
		return v.dec.String()
	case KindDocument:
		return fmt.Sprintf("%v", v.doc)
	}
	return fmt.Sprintf("%x", v.raw)
}
