package main

import (
	"os"

	"github.com/sampila/pdfcli/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
