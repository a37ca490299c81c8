package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/annolab/labelctl/cmd"
	"github.com/annolab/labelctl/internal/runtime"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rt, err := runtime.NewContext()
	if err != nil {
		fmt.Fprintf(os.Stderr, "labelctl: %v\n", err)
		os.Exit(1)
	}

	rootCmd := cmd.RootCommand(rt)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		os.Exit(1)
	}
}
