// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Program tjson parses JSON documents into trees and prints them.
package main

import (
	"context"

	"github.com/scott-cotton/cli"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}
