package database

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"ukmprhub/internal/config"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

const schemaFile = "migrations/001_create_tables.sql"

// duplicateColumn is the Postgres SQLSTATE for "column already exists".
const duplicateColumn pq.ErrorCode = "42701"

// columnMigrations adds nullable columns introduced after the first schema.
var columnMigrations = []string{
	`ALTER TABLE members ADD COLUMN email TEXT`,
	`ALTER TABLE members ADD COLUMN bio TEXT`,
	`ALTER TABLE posts ADD COLUMN note TEXT`,
	`ALTER TABLE posts ADD COLUMN activity_label TEXT`,
	`ALTER TABLE mentors ADD COLUMN experience TEXT`,
	`ALTER TABLE mentors ADD COLUMN education TEXT`,
	`ALTER TABLE mentors ADD COLUMN achievements TEXT`,
	`ALTER TABLE mentors ADD COLUMN photo TEXT`,
	`ALTER TABLE banners ADD COLUMN link TEXT`,
	`ALTER TABLE stats ADD COLUMN details_json TEXT NOT NULL DEFAULT '[]'`,
}

type MethodsDB interface {
	CloseDB() error
	RunMigrations(ctx context.Context) error
	Seed(ctx context.Context, admin config.Admin) error
	HealthCheck() error
}

type DB struct {
	*sqlx.DB
}

func New(db *sqlx.DB) *DB {
	return &DB{db}
}

func ConnectDB(cfg *config.Config) (*DB, error) {
	log.Printf("Connecting to database: host=%s, dbname=%s", cfg.DB.DbHOST, cfg.DB.DbNAME)

	db, err := sqlx.Connect("postgres", cfg.DB.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.Ping()
	if err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	dbStruct := New(db)

	ctx := context.Background()
	if err := dbStruct.RunMigrations(ctx); err != nil {
		return nil, err
	}

	if err := dbStruct.Seed(ctx, cfg.Admin); err != nil {
		log.Printf("Warning: seeding failed: %v", err)
	}

	log.Println("Connected to PostgreSQL")
	return dbStruct, nil
}

func (db *DB) CloseDB() error {
	return db.DB.Close()
}

// RunMigrations creates every table idempotently, then applies the column
// migrations one by one. Columns that already exist are skipped; any other
// ALTER failure is logged and the remaining statements still run.
func (db *DB) RunMigrations(ctx context.Context) error {
	migrationSQL, err := migrationFiles.ReadFile(schemaFile)
	if err != nil {
		return fmt.Errorf("failed to read migration file: %w", err)
	}

	log.Printf("Applying migrations from %s", schemaFile)

	if _, err := db.ExecContext(ctx, string(migrationSQL)); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	for _, stmt := range columnMigrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			if isDuplicateColumn(err) {
				continue
			}
			log.Printf("Warning: migration %q failed: %v", stmt, err)
		}
	}

	log.Println("Migrations applied")
	return nil
}

func (db *DB) HealthCheck() error {
	if db == nil || db.DB == nil {
		return fmt.Errorf("database connection is not initialized")
	}

	return db.Ping()
}

func isDuplicateColumn(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == duplicateColumn
}
