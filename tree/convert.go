// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package tree

import (
	"fmt"
	"maps"
	"slices"

	"github.com/creachadair/tjson/value"
)

// ToNode converts a Go value into an unnamed Node. It panics if v cannot be
// converted. The supported types are:
//
//   - A Node, which is returned unchanged.
//   - A value.Value, converted to a *Var.
//   - A bool, converted to a *Bool.
//   - A string, converted to a String *Var.
//   - A []byte, converted to a Blob *Var (the Var takes ownership).
//   - An integer, converted to a *Var of the corresponding width (int and
//     uint are treated as 64 bits; int8 and uint8 as 16 bits).
//   - A float32 or float64, converted to a Float *Var.
//   - A []any, converted to an *Array of the converted elements.
//   - A map[string]any, converted to an *Object whose members are the
//     converted values, in lexicographic order by key.
func ToNode(v any) Node { return toNode("", v) }

func toNode(name string, v any) Node {
	switch t := v.(type) {
	case Node:
		if name != "" {
			if err := t.base().SetName(name); err != nil {
				panic(fmt.Sprintf("name %q: %v", name, err))
			}
		}
		return t
	case value.Value:
		return NewValue(name, t)
	case bool:
		return NewBool(name, t)
	case string:
		return NewString(name, t)
	case []byte:
		return NewBlob(name, t)
	case int:
		return NewValue(name, value.FromInt64(int64(t)))
	case int8:
		return NewValue(name, value.FromInt16(int16(t)))
	case int16:
		return NewValue(name, value.FromInt16(t))
	case int32:
		return NewValue(name, value.FromInt32(t))
	case int64:
		return NewValue(name, value.FromInt64(t))
	case uint:
		return NewValue(name, value.FromUint64(uint64(t)))
	case uint8:
		return NewValue(name, value.FromUint16(uint16(t)))
	case uint16:
		return NewValue(name, value.FromUint16(t))
	case uint32:
		return NewNumber(name, t)
	case uint64:
		return NewValue(name, value.FromUint64(t))
	case float32:
		return NewFloat(name, float64(t))
	case float64:
		return NewFloat(name, t)
	case []any:
		a := NewArray(name)
		for _, elt := range t {
			if err := ArrayAppend(a, toNode("", elt)); err != nil {
				panic(err)
			}
		}
		return a
	case map[string]any:
		o := NewObject(name)
		for _, key := range slices.Sorted(maps.Keys(t)) {
			m := toNode(key, t[key])
			if key == "" {
				m.base().SetName("") // the empty name is still a name
			}
			if err := ObjectAppend(o, m); err != nil {
				panic(err)
			}
		}
		return o
	default:
		panic(fmt.Sprintf("unsupported type %T", v))
	}
}

// Interface converts n into a plain Go value. Arrays become []any, objects
// become map[string]any (where a name occurs more than once, the first
// member wins), Bools become bool, and Vars become int64, uint64, float64,
// string, or []byte according to their kind. A Var with no value, or a nil
// or released node, becomes nil.
func Interface(n Node) any {
	if checkLive("convert", n) != nil {
		return nil
	}
	switch t := n.(type) {
	case *Array:
		out := make([]any, len(t.elems))
		for i, elt := range t.elems {
			out[i] = Interface(elt)
		}
		return out
	case *Object:
		out := make(map[string]any, len(t.members))
		for _, m := range t.members {
			if _, ok := out[m.base().name]; !ok {
				out[m.base().name] = Interface(m)
			}
		}
		return out
	case *Bool:
		return t.True()
	case *Var:
		return valueInterface(t.val)
	}
	return nil
}

func valueInterface(v value.Value) any {
	switch k := v.Kind(); {
	case k.IsSigned():
		z, _ := v.Int64()
		return z
	case k.IsUnsigned():
		u, _ := v.Uint64()
		return u
	case k == value.Float:
		f, _ := v.Float64()
		return f
	case k == value.String:
		s, _ := v.Str()
		return s
	case k == value.Blob:
		b, _ := v.Bytes()
		return b
	}
	return nil
}
