// Package main is the entrypoint for the tasklist binary.
package main

import "github.com/tasklist-app/tasklist/internal/cli"

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.Execute(version)
}
