package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sapphire-forecast/sapphire-cli/internal/cmd"
)

func run(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.Execute(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return cmd.ExitCode(err)
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:]))
}
