package main

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"log"
	"os"

	"go-recruitment-tracker/config"
	"go-recruitment-tracker/migrations"
	"go-recruitment-tracker/pkg/logger"
	"go-recruitment-tracker/pkg/migrate"

	_ "github.com/lib/pq"
)

// Usage: migrate [--status] [dir]
// Without dir the embedded migrations are used.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger.Init(cfg.LogLevel)

	if cfg.DBUrl == "" {
		log.Fatal("DATABASE_URL is required")
	}

	var files fs.FS = migrations.FS
	statusOnly := false
	for _, a := range os.Args[1:] {
		if a == "--status" {
			statusOnly = true
		} else {
			files = os.DirFS(a)
		}
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("ping: %v", err)
	}
	log.Println("Connected to database")

	runner := migrate.NewRunner(db, files)

	if statusOnly {
		status, err := runner.Status(ctx)
		if err != nil {
			log.Fatal(err)
		}
		for _, s := range status {
			mark := " "
			if s.Applied {
				mark = "x"
			}
			fmt.Printf("  [%s] %s\n", mark, s.Version)
		}
		return
	}

	applied, err := runner.Up(ctx)
	if err != nil {
		log.Fatalf("migrate: %v", err)
	}
	log.Printf("Done: %d applied", len(applied))
}
