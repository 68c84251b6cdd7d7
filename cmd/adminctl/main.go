package main

import (
	"os"

	"admin_console/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
