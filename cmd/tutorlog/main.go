package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"tutorlog/internal/cli"
	"tutorlog/internal/config"
)

func main() {
	cli.LoadEnvFile()

	// Flags may still override the environment; the root command
	// validates the merged result.
	cfg := config.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cli.NewRootCommand(cfg).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		cancel()
		os.Exit(1)
	}
}
