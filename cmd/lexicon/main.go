package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/khalid-nowaf/lexicon/pkg/cli"
)

func main() {
	ctx := kong.Parse(&cli.CLI, kong.UsageOnError())
	if err := ctx.Run(cli.NewContext()); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
