package main

import (
	"os"

	"customer-stats/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
