// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package tree_test

import (
	"errors"
	"testing"

	"github.com/creachadair/tjson/tree"
	"github.com/creachadair/tjson/value"
)

const sensorDoc = `{
  "sensorId": "s-17",
  "timestamp": 1700000000,
  "count": 12,
  "count": "twelve",
  "offset": -4,
  "gain": 0.75,
  "active": false,
  "channels": [1, 2, 3],
  "channels": {"x": 1}
}`

func TestGetters(t *testing.T) {
	root := mustParse(t, sensorDoc)

	if got, err := tree.GetString(root, "sensorId"); err != nil || got != "s-17" {
		t.Errorf("GetString(sensorId): got %q, %v; want s-17, nil", got, err)
	}
	if got, err := tree.GetString(root, "count"); err != nil || got != "twelve" {
		t.Errorf("GetString(count): got %q, %v; want twelve, nil", got, err)
	}
	if got, err := tree.GetUint32(root, "count"); err != nil || got != 12 {
		t.Errorf("GetUint32(count): got %d, %v; want 12, nil", got, err)
	}
	if got, err := tree.GetUint32(root, "timestamp"); err != nil || got != 1700000000 {
		t.Errorf("GetUint32(timestamp): got %d, %v; want 1700000000, nil", got, err)
	}
	if got, err := tree.GetInt64(root, "offset"); err != nil || got != -4 {
		t.Errorf("GetInt64(offset): got %d, %v; want -4, nil", got, err)
	}
	if got, err := tree.GetInt64(root, "timestamp"); err != nil || got != 1700000000 {
		t.Errorf("GetInt64(timestamp): got %d, %v; want 1700000000, nil", got, err)
	}
	if got, err := tree.GetFloat(root, "gain"); err != nil || got != 0.75 {
		t.Errorf("GetFloat(gain): got %v, %v; want 0.75, nil", got, err)
	}
	if got, err := tree.GetBool(root, "active"); err != nil || got {
		t.Errorf("GetBool(active): got %v, %v; want false, nil", got, err)
	}
	if got, err := tree.ArrayLen(root, "channels"); err != nil || got != 3 {
		t.Errorf("ArrayLen(channels): got %d, %v; want 3, nil", got, err)
	}
	if got, err := tree.GetValue(root, "gain"); err != nil || got.Kind() != value.Float {
		t.Errorf("GetValue(gain): got %v, %v; want float", got, err)
	}
}

func TestGettersErrors(t *testing.T) {
	root := mustParse(t, sensorDoc)
	tests := []struct {
		name string
		get  func() error
		want error
	}{
		{"missing", func() error { _, err := tree.GetString(root, "nonesuch"); return err }, tree.ErrNotFound},
		{"wrong type", func() error { _, err := tree.GetFloat(root, "count"); return err }, tree.ErrNotFound},
		{"not bool", func() error { _, err := tree.GetBool(root, "gain"); return err }, tree.ErrNotFound},
		{"signed", func() error { _, err := tree.GetUint32(root, "offset"); return err }, tree.ErrNotFound},
		{"not array", func() error { _, err := tree.ArrayLen(root, "gain"); return err }, tree.ErrNotFound},
		{"nil", func() error { _, err := tree.GetString(nil, "x"); return err }, tree.ErrInvalidInput},
		{"array", func() error {
			_, err := tree.GetString(mustParse(t, `["x"]`), "x")
			return err
		}, tree.ErrUnsupported},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.get(); !errors.Is(err, tc.want) {
				t.Errorf("Got error %v, want %v", err, tc.want)
			}
		})
	}
}
