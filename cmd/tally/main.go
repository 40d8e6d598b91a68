package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/mibar/dictextra/internal/tally"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := tally.NewCLI().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "tally: %v\n", err)
		stop()
		os.Exit(1)
	}
}
