package main

import (
	"os"

	"github.com/dshills/primus/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
