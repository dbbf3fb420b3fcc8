package main

import (
	"os"

	"github.com/arthur-debert/treeprune/internal/cli"
)

func main() {
	err := cli.Execute(os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(cli.ExitCode(err))
}
