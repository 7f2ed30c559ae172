// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package ast defines a tree representation for JSON values, and a parser
// that constructs value trees from JSON source.
package ast

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/creachadair/jlex"
)

// A Value is an arbitrary JSON value.
// The concrete types are String, Number, Bool, Null, Object, and Array.
type Value interface {
	// JSON renders the value as JSON source text.
	JSON() string
}

// A String is a string value.
type String string

// JSON satisfies the Value interface.
func (s String) JSON() string { return jlex.Quote(string(s)) }

// A Number is a numeric value. All numbers are represented as 64-bit
// floating point, as the grammar does not distinguish integers.
type Number float64

// JSON satisfies the Value interface.
func (n Number) JSON() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

// A Bool is a Boolean constant, true or false.
type Bool bool

// JSON satisfies the Value interface.
func (b Bool) JSON() string {
	if b {
		return "true"
	}
	return "false"
}

// Null represents the JSON null constant.
type Null struct{}

// JSON satisfies the Value interface.
func (Null) JSON() string { return "null" }

// An Object is a collection of key-value members.  Keys are unique; when a
// source text repeats a key, the member parsed last wins. Member order is
// not preserved.
type Object map[string]Value

// Len reports the number of members of o.
func (o Object) Len() int { return len(o) }

// JSON satisfies the Value interface. Members are rendered in sorted order
// by key, so that the output for a given object is stable.
func (o Object) JSON() string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, key := range slices.Sorted(maps.Keys(o)) {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(jlex.Quote(key))
		sb.WriteString(":")
		sb.WriteString(o[key].JSON())
	}
	sb.WriteString("}")
	return sb.String()
}

// An Array is an ordered sequence of values.
type Array []Value

// Len reports the number of elements of a.
func (a Array) Len() int { return len(a) }

// JSON satisfies the Value interface.
func (a Array) JSON() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, v := range a {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(v.JSON())
	}
	sb.WriteString("]")
	return sb.String()
}

// ToValue converts a plain Go value of a compatible type into an ast.Value.
// Maps and slices are converted recursively. ToValue panics if v cannot be
// represented as a JSON value.
func ToValue(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null{}
	case Value:
		return t
	case string:
		return String(t)
	case bool:
		return Bool(t)
	case float64:
		return Number(t)
	case int:
		return Number(t)
	case int64:
		return Number(t)
	case map[string]any:
		obj := make(Object, len(t))
		for key, elt := range t {
			obj[key] = ToValue(elt)
		}
		return obj
	case []any:
		arr := make(Array, len(t))
		for i, elt := range t {
			arr[i] = ToValue(elt)
		}
		return arr
	default:
		panic(fmt.Sprintf("cannot convert %T to a JSON value", v))
	}
}
