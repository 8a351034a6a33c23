// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package tree

import "github.com/fatih/color"

// A ColorFunc formats its arguments as fmt.Sprintf does, and decorates the
// result for display. The functions of github.com/fatih/color have this
// signature.
type ColorFunc func(format string, args ...any) string

// Colors assigns decorations to the tokens written by an Encoder. A nil
// field leaves the corresponding tokens undecorated.
type Colors struct {
	Name   ColorFunc // member names
	String ColorFunc // string and blob values
	Number ColorFunc // numeric values
	Bool   ColorFunc // true and false
	Null   ColorFunc // a Var with no value
	Punct  ColorFunc // brackets, braces, commas and separators
}

// NewColors returns the default terminal color scheme. Whether the colors
// are actually rendered is governed by color.NoColor.
func NewColors() *Colors {
	return &Colors{
		Name:   color.RGB(196, 96, 16).SprintfFunc(),
		String: color.GreenString,
		Number: color.RGB(128, 216, 236).SprintfFunc(),
		Bool:   color.CyanString,
		Null:   color.RGB(168, 0, 196).SprintfFunc(),
		Punct:  color.RGB(196, 128, 128).SprintfFunc(),
	}
}
