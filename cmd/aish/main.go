package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/aish-sh/aish/internal/app"
	"github.com/aish-sh/aish/internal/infrastructure/cli"
)

func main() {
	os.Exit(run())
}

func run() int {
	container := app.BuildContainer("", isVerbose())
	defer container.History.Close()

	root := cli.NewRootCmd(container)
	if err := root.ExecuteContext(context.Background()); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Err != nil {
				fmt.Fprintln(os.Stderr, "error:", exitErr.Err)
			}
			return exitErr.Code
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		return cli.ExitUsage
	}
	return cli.ExitOK
}

func isVerbose() bool {
	if strings.EqualFold(os.Getenv("AISH_DEBUG"), "1") || strings.EqualFold(os.Getenv("AISH_DEBUG"), "true") {
		return true
	}
	for _, arg := range os.Args[1:] {
		if arg == "-V" || arg == "--verbose" {
			return true
		}
	}
	return false
}
