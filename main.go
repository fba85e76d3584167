// Package main is the entry point for the unitgen CLI.
package main

import "unitgen.dev/pkg/unitgen/cmd"

func main() {
	cmd.Execute()
}
