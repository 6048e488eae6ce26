package main

import (
	"os"

	"github.com/hamed0406/uptimeping/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
