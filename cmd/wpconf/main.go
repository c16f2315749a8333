package main

import (
	"os"

	"github.com/arthur-debert/wpconf/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
