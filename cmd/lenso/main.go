// Command lenso generates Go lenses for the models described on standard
// input.
//
//	lenso < models.json > lenso.go
package main

import (
	"os"

	"github.com/syssam/lenso/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
