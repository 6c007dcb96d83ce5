package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"gaming-directory/config"
	"gaming-directory/migrations"
	"gaming-directory/packages/logger"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	if len(os.Args) < 2 {
		printUsage()
		return
	}

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}
	if cfg.Database.Driver != config.DriverPostgres {
		log.Fatalf("Migrations require the postgres driver, got %q", cfg.Database.Driver)
	}

	appLog, err := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Environment: cfg.Environment,
		ServiceName: cfg.ServiceName + "-migrate",
	})
	if err != nil {
		log.Fatal("Failed to build logger: ", err)
	}
	defer appLog.Sync()

	db, err := config.ConnectDatabase(cfg.Database)
	if err != nil {
		appLog.Error("Database connection failed", err)
		os.Exit(1)
	}

	migrator, err := migrations.NewMigrator(db, appLog)
	if err != nil {
		appLog.Error("Migrator setup failed", err)
		os.Exit(1)
	}
	for _, migration := range migrations.GetDirectoryMigrations() {
		migrator.AddMigration(migration)
	}

	command := os.Args[1]

	switch command {
	case "migrate":
		if err := migrator.Migrate(); err != nil {
			appLog.Error("Migration failed", err)
			os.Exit(1)
		}
	case "rollback":
		steps := 1
		if len(os.Args) > 2 {
			if s, err := strconv.Atoi(os.Args[2]); err == nil {
				steps = s
			}
		}
		if err := migrator.Rollback(steps); err != nil {
			appLog.Error("Rollback failed", err)
			os.Exit(1)
		}
	case "status":
		if err := showStatus(migrator); err != nil {
			appLog.Error("Status failed", err)
			os.Exit(1)
		}
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  go run ./cmd/migrate migrate          - Run pending migrations")
	fmt.Println("  go run ./cmd/migrate rollback [steps] - Rollback migrations (default: 1)")
	fmt.Println("  go run ./cmd/migrate status           - Show migration status")
}

func showStatus(migrator *migrations.Migrator) error {
	applied, err := migrator.Status()
	if err != nil {
		return err
	}
	pending, err := migrator.Pending()
	if err != nil {
		return err
	}

	if len(applied) == 0 {
		fmt.Println("No migrations have been run yet.")
	} else {
		fmt.Println("Migration Status:")
		fmt.Println("Batch | Name")
		fmt.Println("------|-----")
		for _, migration := range applied {
			fmt.Printf("%-5d | %s\n", migration.Batch, migration.Name)
		}
	}

	for _, name := range pending {
		fmt.Printf("Pending | %s\n", name)
	}
	return nil
}
