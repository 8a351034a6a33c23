// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import "github.com/creachadair/tjson/tree"

// sampleDocument is parsed and printed when no input file is given.
const sampleDocument = `{"sensorId":"0x000070B3D5750F0B","timestamp":"2023-01-27T01:08:25Z",` +
	`"channels":[` +
	`{"type":"PHASE_A_CONSUMPTION","ch":1,"eImp_Ws":95060308549,"eExp_Ws":2231,"p_W":915,"q_VAR":-82,"v_V":120.398},` +
	`{"type":"PHASE_B_CONSUMPTION","ch":2,"eImp_Ws":64627172802,"eExp_Ws":2671,"p_W":275,"q_VAR":-56,"v_V":121.061},` +
	`{"type":"CONSUMPTION","ch":3,"eImp_Ws":159687481246,"eExp_Ws":4541,"p_W":1189,"q_VAR":-138,"v_V":120.729}],` +
	`"cts":[` +
	`{"ct":1,"p_W":915,"q_VAR":-82,"v_V":120.398},` +
	`{"ct":2,"p_W":275,"q_VAR":-56,"v_V":121.061},` +
	`{"ct":3,"p_W":0,"q_VAR":0,"v_V":0.000},` +
	`{"ct":4,"p_W":0,"q_VAR":0,"v_V":120.399}]}`

// buildSample constructs a small object without parsing.
func buildSample() tree.Node {
	root := tree.NewObject("")
	mustAppend(root, tree.NewString("date", "2020/10/13"))
	mustAppend(root, tree.NewString("time", "21:12"))

	meta := tree.NewObject("meta")
	mustAppend(meta, tree.NewBool("enabled", false))
	mustAppend(meta, tree.NewString("priority", "high"))

	constants := tree.NewArray("constants")
	for _, c := range []struct {
		name  string
		value float64
	}{
		{"pi", 3.1415},
		{"phi", 1.61803},
		{"e", 2.71828},
		{"ln2", 0.69314},
	} {
		elt := tree.NewObject("")
		mustAppend(elt, tree.NewString("name", c.name))
		mustAppend(elt, tree.NewFloat("value", c.value))
		mustAppend(constants, elt)
	}

	mustAppend(root, constants)
	mustAppend(root, meta)
	return root
}

func mustAppend(c, n tree.Node) {
	var err error
	switch c.(type) {
	case *tree.Array:
		err = tree.ArrayAppend(c, n)
	default:
		err = tree.ObjectAppend(c, n)
	}
	if err != nil {
		panic(err)
	}
}
