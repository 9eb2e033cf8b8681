// Package main is the entry point for the devotion command.
package main

import "github.com/zapponejosh/devotion/internal/cli"

func main() {
	cli.Execute()
}
