// Command migrate applies or rolls back the embedded database migrations.
//
// Usage:
//
//	migrate [up|down|version]
//
// Requires DATABASE_DSN environment variable to be set. The default command
// is up.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/heartmarshall/dripdrop-backend/internal/adapter/postgres"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: migrate [up|down|version]")
	}
	flag.Parse()

	command := "up"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	m, err := postgres.NewMigrator(dsn)
	if err != nil {
		log.Fatalf("open migrator: %v", err)
	}
	defer m.Close()

	switch command {
	case "up":
		n, err := m.Up(ctx)
		if err != nil {
			log.Fatalf("migrate up: %v", err)
		}
		fmt.Printf("Applied %d migration(s).\n", n)
	case "down":
		if err := m.Down(ctx); err != nil {
			log.Fatalf("migrate down: %v", err)
		}
		fmt.Println("Rolled back one migration.")
	case "version":
		v, err := m.Version(ctx)
		if err != nil {
			log.Fatalf("migrate version: %v", err)
		}
		fmt.Printf("Current version: %d\n", v)
	default:
		flag.Usage()
		os.Exit(2)
	}
}
