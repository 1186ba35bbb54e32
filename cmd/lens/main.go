package main

import (
	"context"
	"fmt"
	"os"

	"github.com/lens-format/lens-go/cmd/lens/commands"
)

func main() {
	app := commands.NewApp()

	err := app.Run(context.Background(), os.Args)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
}
