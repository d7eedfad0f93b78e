// Command app serves the fishing-condition scoring API.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := initializeApp()
	if err != nil {
		log.Fatalf("fishcast: dependency wiring failed: %v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("fishcast: server stopped: %v", err)
	}
}
