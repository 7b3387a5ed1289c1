// Package main provides the nursery CLI application.
// nursery keeps the plant inventory and suppliers of a nursery and
// derives stock and greenhouse alerts.
package main

import (
	"github.com/root31/nursery/cmd"
)

func main() {
	cmd.Execute()
}
