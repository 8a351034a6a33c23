// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package tree

import (
	"fmt"

	"github.com/creachadair/tjson/value"
)

// The typed getters below scan the members of an object for the given name,
// and return the first member whose type matches the getter. Members with
// the right name but the wrong type are skipped. Each getter reports
// ErrNotFound if no member matches, and the errors of Lookup if object is
// not a live *Object.

// GetString returns the payload of the first String member of object with
// the given name.
func GetString(object Node, name string) (string, error) {
	v, err := getVar(object, name, func(v value.Value) bool { return v.Kind() == value.String })
	if err != nil {
		return "", err
	}
	s, _ := v.Str()
	return s, nil
}

// GetBool returns the truth value of the first Bool member of object with
// the given name.
func GetBool(object Node, name string) (bool, error) {
	n, err := getMember(object, name, func(n Node) bool { return n.Kind() == KindBool })
	if err != nil {
		return false, err
	}
	return n.(*Bool).True(), nil
}

// GetInt64 returns the value of the first integer member of object with the
// given name whose value is representable as an int64.
func GetInt64(object Node, name string) (int64, error) {
	v, err := getVar(object, name, func(v value.Value) bool {
		_, ok := v.Int64()
		return ok
	})
	if err != nil {
		return 0, err
	}
	z, _ := v.Int64()
	return z, nil
}

// GetUint32 returns the value of the first integer member of object with
// the given name whose kind is Uint16 or Uint32.
func GetUint32(object Node, name string) (uint32, error) {
	v, err := getVar(object, name, func(v value.Value) bool {
		return v.Kind() == value.Uint16 || v.Kind() == value.Uint32
	})
	if err != nil {
		return 0, err
	}
	u, _ := v.Uint64()
	return uint32(u), nil
}

// GetFloat returns the value of the first Float member of object with the
// given name.
func GetFloat(object Node, name string) (float64, error) {
	v, err := getVar(object, name, func(v value.Value) bool { return v.Kind() == value.Float })
	if err != nil {
		return 0, err
	}
	f, _ := v.Float64()
	return f, nil
}

// GetValue returns the value of the first Var member of object with the
// given name, whatever its kind.
func GetValue(object Node, name string) (value.Value, error) {
	return getVar(object, name, func(value.Value) bool { return true })
}

// ArrayLen returns the length of the first Array member of object with the
// given name.
func ArrayLen(object Node, name string) (int, error) {
	n, err := getMember(object, name, func(n Node) bool { return n.Kind() == KindArray })
	if err != nil {
		return 0, err
	}
	return n.(*Array).Len(), nil
}

func getVar(object Node, name string, match func(value.Value) bool) (value.Value, error) {
	n, err := getMember(object, name, func(n Node) bool {
		v, ok := n.(*Var)
		return ok && match(v.val)
	})
	if err != nil {
		return value.Value{}, err
	}
	return n.(*Var).val, nil
}

func getMember(object Node, name string, match func(Node) bool) (Node, error) {
	const op = "get"
	if err := checkLive(op, object); err != nil {
		return nil, err
	}
	o, ok := object.(*Object)
	if !ok {
		return nil, errUnsupported(op, object)
	}
	for _, m := range o.members {
		if m.base().name == name && match(m) {
			return m, nil
		}
	}
	return nil, fmt.Errorf("%s: %w: no matching member %q", op, ErrNotFound, name)
}
