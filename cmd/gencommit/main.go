package main

import (
	"os"

	"github.com/ariel-frischer/gencommit/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
