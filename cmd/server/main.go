// Command server runs the DripDrop HTTP API.
//
// Configuration is read from CONFIG_PATH (default ./config.yaml) and the
// environment; see internal/config. SIGINT and SIGTERM trigger a graceful
// shutdown.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/dripdrop-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
