package main

import (
	"os"

	"patternd/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
