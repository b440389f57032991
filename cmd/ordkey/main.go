// Command ordkey generates and applies fractional-index order keys.
package main

import (
	"os"

	"github.com/roach88/ordkey/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
