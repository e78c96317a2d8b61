package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/zenithwellness/zenith/internal/config"
	"github.com/zenithwellness/zenith/internal/repository/postgres"
)

func main() {
	source := flag.String("source", "file://migrations", "migration source URL")
	flag.Parse()

	// Load .env file if it exists
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Running migrations against %s:%d/%s\n",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.Database)

	if err := postgres.RunMigrations(cfg.Database.DSN(), *source); err != nil {
		fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Migrations applied")
}
