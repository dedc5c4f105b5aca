package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates the database schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// USERS
	// -------------------------------
	userTableSQL := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			username VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			email VARCHAR(255),
			google_id VARCHAR(255) UNIQUE,
			google_access_token TEXT,
			google_refresh_token TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, userTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// WEBSITES
	// -------------------------------
	websiteTableSQL := `
		CREATE TABLE IF NOT EXISTS websites (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id),
			url VARCHAR(500) NOT NULL,
			site_url VARCHAR(500) NOT NULL,
			permission_level VARCHAR(50),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, websiteTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// SEARCH DATA SNAPSHOTS
	// -------------------------------
	searchDataSQL := `
		CREATE TABLE IF NOT EXISTS search_data (
			id UUID PRIMARY KEY,
			website_id UUID NOT NULL REFERENCES websites(id),
			data JSONB NOT NULL,
			start_date VARCHAR(10) NOT NULL,
			end_date VARCHAR(10) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, searchDataSQL); err != nil {
		return err
	}

	// -------------------------------
	// INSIGHTS
	// -------------------------------
	insightTableSQL := `
		CREATE TABLE IF NOT EXISTS insights (
			id UUID PRIMARY KEY,
			website_id UUID NOT NULL REFERENCES websites(id),
			type VARCHAR(50) NOT NULL,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, insightTableSQL); err != nil {
		return err
	}

	log.Println("Schema initialized successfully")
	return nil
}
