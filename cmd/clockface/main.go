package main

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"clockface/internal/utils"
)

func init() {
	// raylib must own the main OS thread.
	runtime.LockOSThread()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := newRootCmd().ExecuteContext(ctx)
	utils.CloseLogger()
	if err != nil {
		os.Exit(1)
	}
}
