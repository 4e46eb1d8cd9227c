// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package settings

import "fmt"

// Kind identifies the type of a stored value.
type Kind uint8

const (
	// KindUndefined is the kind of a key that has never been written.
	KindUndefined Kind = iota
	// KindInt is a signed integer.
	KindInt
	// KindFloat is a double-precision float.
	KindFloat
	// KindString is a UTF-8 string.
	KindString
)

// String returns the kind name used in persisted documents.
func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// ParseKind is the inverse of Kind.String for defined kinds.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "int":
		return KindInt, nil
	case "float":
		return KindFloat, nil
	case "string":
		return KindString, nil
	default:
		return KindUndefined, fmt.Errorf("%w: %q", ErrUndefinedKind, s)
	}
}

// Value is a setting value: an Int, a Float or a String.
// The set of implementations is closed.
type Value interface {
	Kind() Kind
	isValue()
}

// Int is an integer setting value.
type Int int64

// Float is a floating-point setting value.
type Float float64

// String is a string setting value.
type String string

func (Int) Kind() Kind    { return KindInt }
func (Float) Kind() Kind  { return KindFloat }
func (String) Kind() Kind { return KindString }

func (Int) isValue()    {}
func (Float) isValue()  {}
func (String) isValue() {}

// kindOf returns the kind of v, treating nil as undefined.
func kindOf(v Value) Kind {
	if v == nil {
		return KindUndefined
	}
	return v.Kind()
}
