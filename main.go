package main

import (
	"context"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"queryinsights/adapters/postgres"
	"queryinsights/app"
	"queryinsights/internal/config"
	"queryinsights/internal/errors"
	"queryinsights/internal/insight"
	"queryinsights/internal/store"
	"queryinsights/ports"
	"queryinsights/ui"
)

// initDatabase initializes the PostgreSQL connection and report schema
func initDatabase(appConfig *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", appConfig.Database.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}

	if err := db.Ping(); err != nil {
		return nil, errors.Wrap(err, "failed to ping database")
	}

	if err := postgres.EnsureReportSchema(context.Background(), db); err != nil {
		return nil, errors.Wrap(err, "report schema setup failed")
	}

	return db, nil
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	engine := insight.NewEngine(insight.Config{
		TopFrequentCount: appConfig.Insights.TopFrequentCount,
	})

	// Without a database the server still computes reports, keeping
	// them in memory and rejecting query-backed requests.
	var (
		reports ports.ReportRepository = store.NewMemoryReportStore()
		reader  ports.ResultReader
	)
	if appConfig.Database.URL != "" {
		db, err := initDatabase(appConfig)
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		defer db.Close()
		reports = postgres.NewReportRepository(db)
		reader = postgres.NewResultReader(db)
	} else {
		log.Println("DATABASE_URL not set, running with in-memory report store")
	}

	service := app.NewInsightService(engine, reports, reader)
	httpApp := ui.NewApp(service)

	if err := httpApp.Start(ui.Config{Port: appConfig.Server.Port}); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
