package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"

	"github.com/macropower/starship-profiles/internal/cli"
	"github.com/macropower/starship-profiles/pkg/version"
)

func main() {
	err := fang.Execute(
		context.Background(),
		cli.NewRootCmd(),
		fang.WithVersion(version.String()),
		fang.WithErrorHandler(cli.ErrorHandler),
		fang.WithoutManpage(),
		fang.WithoutCompletions(),
	)
	if err != nil {
		os.Exit(1)
	}
}
