package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"gaming-directory/config"
	"gaming-directory/fixtures"
	"gaming-directory/packages/directory"
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
		log.Fatalf("Fixtures require the postgres driver, got %q", cfg.Database.Driver)
	}

	appLog, err := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Environment: cfg.Environment,
		ServiceName: cfg.ServiceName + "-fixtures",
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

	module := directory.NewModule(directory.NewGormRepositories(db), appLog)
	fixtureManager := fixtures.NewFixtures(module, fixtures.ClearGorm(db), appLog)
	ctx := context.Background()

	command := os.Args[1]

	switch command {
	case "generate":
		if err := fixtureManager.GenerateTestData(ctx); err != nil {
			appLog.Error("Failed to generate fixtures", err)
			os.Exit(1)
		}
		fmt.Println("Fixtures generated successfully!")
	case "clear":
		if err := fixtureManager.ClearAllData(ctx); err != nil {
			appLog.Error("Failed to clear fixtures", err)
			os.Exit(1)
		}
		fmt.Println("All fixture data cleared!")
	case "regenerate":
		fmt.Println("Clearing existing data...")
		if err := fixtureManager.ClearAllData(ctx); err != nil {
			appLog.Error("Failed to clear fixtures", err)
			os.Exit(1)
		}
		fmt.Println("Generating new fixtures...")
		if err := fixtureManager.GenerateTestData(ctx); err != nil {
			appLog.Error("Failed to generate fixtures", err)
			os.Exit(1)
		}
		fmt.Println("Fixtures regenerated successfully!")
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  go run ./cmd/fixtures generate    - Load sample data (20 gamers, 4 games, 40 skills)")
	fmt.Println("  go run ./cmd/fixtures clear       - Clear all directory data")
	fmt.Println("  go run ./cmd/fixtures regenerate  - Clear and reload sample data")
}
