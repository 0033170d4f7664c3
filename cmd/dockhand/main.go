package main

import (
	"context"
	"fmt"
	"os"

	"github.com/localstack/dockhand/internal/cli"
	"github.com/localstack/dockhand/internal/output"
)

func main() {
	if err := cli.Execute(context.Background()); err != nil {
		if !output.IsSilent(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
