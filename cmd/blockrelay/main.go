package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gabapcia/blockrelay/internal/app"
	"github.com/gabapcia/blockrelay/internal/handlers/cli"
	"github.com/gabapcia/blockrelay/internal/pkg/logger"
)

func main() {
	ctx := context.Background()

	if err := cli.Run(ctx, app.NewBuilder()); err != nil {
		fmt.Fprintf(os.Stderr, "blockrelay: %v\n", err)
		logger.Fatal(ctx, "blockrelay stopped with an error", "error", err)
	}
}
