// Package sqlite mirrors the ledger into a SQLite database.
// It follows the same full-rewrite contract as the CSV file.
package sqlite

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/hance08/fintrack/internal/model"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pterm/pterm"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

type Store struct {
	db     *sql.DB
	path   string
	logger *pterm.Logger
}

func NewStore(dbPath string, logger *pterm.Logger) (*Store, error) {
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("can not create database directory %s: %w", dbDir, err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("can not open database : %w", err)
	}
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("can not connect with database : %w", err)
	}
	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database : %w", err)
	}

	return &Store{db: db, path: dbPath, logger: logger}, nil
}

func runMigrations(db *sql.DB) error {
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("failed to set up migrate driver : %w", err)
	}

	sourceDriver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create iofs source driver : %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("failed to set up migrate instance : %w", err)
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migration(up) : %w", err)
	}

	return nil
}

func (s *Store) Location() string {
	return s.path
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Load returns all rows ordered by their ledger position.
func (s *Store) Load() ([]model.Transaction, error) {
	rows, err := s.db.Query(`
		SELECT kind, amount, description, date
		FROM transactions
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query transactions: %w", model.ErrPersistenceReadFailed, err)
	}
	defer rows.Close()

	txs := make([]model.Transaction, 0)
	for rows.Next() {
		var tx model.Transaction
		var kind string
		if err := rows.Scan(&kind, &tx.Amount, &tx.Description, &tx.Date); err != nil {
			return nil, fmt.Errorf("%w: failed to scan transaction: %w", model.ErrPersistenceReadFailed, err)
		}
		tx.Kind = model.Kind(kind)
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrPersistenceReadFailed, err)
	}

	s.logger.Debug("ledger loaded", s.logger.Args("path", s.path, "transactions", len(txs)))
	return txs, nil
}

// Save replaces every row inside one SQL transaction.
func (s *Store) Save(txs []model.Transaction) error {
	if err := s.save(txs); err != nil {
		return fmt.Errorf("%w: %s: %w", model.ErrPersistenceWriteFailed, s.path, err)
	}
	s.logger.Debug("ledger saved", s.logger.Args("path", s.path, "transactions", len(txs)))
	return nil
}

func (s *Store) save(txs []model.Transaction) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	err = replaceAll(tx, txs)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx err: %v, rb err: %v", err, rbErr)
		}
		return err
	}
	return tx.Commit()
}

func replaceAll(tx *sql.Tx, txs []model.Transaction) error {
	if _, err := tx.Exec(`DELETE FROM transactions`); err != nil {
		return fmt.Errorf("failed to clear transactions: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO transactions (position, kind, amount, description, date)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare SQL : %w", err)
	}
	defer stmt.Close()

	for i, t := range txs {
		if _, err := stmt.Exec(i, string(t.Kind), t.Amount, t.Description, t.Date); err != nil {
			return fmt.Errorf("failed to insert transaction %d: %w", i, err)
		}
	}
	return nil
}
