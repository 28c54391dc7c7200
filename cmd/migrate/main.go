// Command migrate applies the database schema and optionally bulk-loads the
// country reference table from a CSV of name,iso_code rows:
//
//	migrate up|down|status
//	COUNTRIES_CSV=countries.csv migrate seed
package main

import (
	"database/sql"
	"embed"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog/log"

	"address-backend/internal/config"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	db, err := openDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()

	if err := run(db, command); err != nil {
		log.Fatal().Err(err).Str("command", command).Msg("migration failed")
	}
}

func openDB(cfg config.DatabaseConfig) (*sql.DB, error) {
	dsn := fmt.Sprintf(
		"postgresql://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database, cfg.SSLMode,
	)

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func run(db *sql.DB, command string) error {
	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	switch command {
	case "up":
		return goose.Up(db, "migrations")
	case "down":
		return goose.Down(db, "migrations")
	case "status":
		return goose.Status(db, "migrations")
	case "seed":
		return seedCountries(db, os.Getenv("COUNTRIES_CSV"))
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

// seedCountries loads country rows from a CSV file. Existing iso codes are
// left untouched so the loader can be re-run safely.
func seedCountries(db *sql.DB, path string) error {
	if path == "" {
		return fmt.Errorf("COUNTRIES_CSV must be set for seed")
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	loaded := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if len(record) < 2 {
			return fmt.Errorf("malformed country row: %v", record)
		}

		_, err = db.Exec(
			`INSERT INTO country (name, iso_code) VALUES ($1, $2)
			 ON CONFLICT (iso_code) DO NOTHING`,
			record[0], record[1],
		)
		if err != nil {
			return fmt.Errorf("failed to load country %q: %w", record[0], err)
		}
		loaded++
	}

	log.Info().Int("countries", loaded).Msg("country load complete")
	return nil
}
