package main

import (
	"os"

	"github.com/jiundev/gongmo/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
