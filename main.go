// Package main is the entry point for the textutils CLI.
package main

import "github.com/miglja/textutils/cmd"

func main() {
	cmd.Execute()
}
