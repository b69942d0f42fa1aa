// Package main is the entry point for the argue CLI.
package main

import "argue.dev/pkg/argue/cmd"

func main() {
	cmd.Execute()
}
