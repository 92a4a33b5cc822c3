/*
Package sqlite provides a SQLite-backed implementation of the storage
interfaces.

PURPOSE:
  Implements quoting.QuoteStore, quoting.CustomerStore, and
  quoting.SettingsStore using SQLite. In production the same patterns
  apply to PostgreSQL - only minor SQL dialect differences.

KEY TABLES:
  quotes:    One row per quote; the aggregate (rates, details, shifts,
             extras, expenses) is stored as a JSON document. Number and
             status are promoted to columns for listing and numbering.
  customers: One row per customer, profile stored as JSON.
  settings:  Key/value rows for default rates and the technician list.

DERIVED DATA:
  Calculated breakdowns and totals are NEVER stored. They are
  recomputed from the quote document on every read, so a rate change
  can never leave stale totals behind.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) for better
  concurrency: multiple readers don't block and crash recovery is
  cleaner.

USAGE:
  store, err := sqlite.New("./data/quotes.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

SEE ALSO:
  - quoting/store.go: Interface definitions
  - quoting/store/memory.go: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/Coresick-au/Ai-MaintenanceApp-sub005/quoting"
)

const (
	settingDefaultRates = "default_rates"
	settingTechnicians  = "technicians"
)

// Store implements all storage interfaces using SQLite.
type Store struct {
	db *sql.DB
}

var _ quoting.Store = (*Store)(nil)

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	-- Quotes: aggregate stored as JSON, list columns promoted
	CREATE TABLE IF NOT EXISTS quotes (
		id TEXT PRIMARY KEY,
		number TEXT NOT NULL,
		status TEXT NOT NULL,
		document TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_quotes_number ON quotes(number);
	CREATE INDEX IF NOT EXISTS idx_quotes_status ON quotes(status);

	-- Customers: directory with embedded rate profile
	CREATE TABLE IF NOT EXISTS customers (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		document TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_customers_name ON customers(name);

	-- Settings: default rates, technician directory
	CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// QUOTE STORE
// =============================================================================

// SaveQuote inserts or replaces a quote.
func (s *Store) SaveQuote(ctx context.Context, q quoting.Quote) error {
	doc, err := json.Marshal(q)
	if err != nil {
		return fmt.Errorf("encode quote %s: %w", q.ID, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO quotes (id, number, status, document, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			number = excluded.number,
			status = excluded.status,
			document = excluded.document,
			updated_at = excluded.updated_at`,
		q.ID, q.Number, string(q.Status), string(doc),
		q.CreatedAt.Format(time.RFC3339), q.UpdatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("save quote %s: %w", q.ID, err)
	}
	return nil
}

// GetQuote returns one quote by ID, or quoting.ErrQuoteNotFound.
func (s *Store) GetQuote(ctx context.Context, id string) (*quoting.Quote, error) {
	var doc string
	err := s.db.QueryRowContext(ctx,
		`SELECT document FROM quotes WHERE id = ?`, id).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, quoting.ErrQuoteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get quote %s: %w", id, err)
	}

	var q quoting.Quote
	if err := json.Unmarshal([]byte(doc), &q); err != nil {
		return nil, fmt.Errorf("decode quote %s: %w", id, err)
	}
	return &q, nil
}

// ListQuotes returns all quotes ordered by number.
func (s *Store) ListQuotes(ctx context.Context) ([]quoting.Quote, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT document FROM quotes ORDER BY number`)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	defer rows.Close()

	var quotes []quoting.Quote
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		var q quoting.Quote
		if err := json.Unmarshal([]byte(doc), &q); err != nil {
			return nil, fmt.Errorf("decode quote: %w", err)
		}
		quotes = append(quotes, q)
	}
	return quotes, rows.Err()
}

// DeleteQuote hard-deletes a quote. Explicit user action only.
func (s *Store) DeleteQuote(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM quotes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete quote %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return quoting.ErrQuoteNotFound
	}
	return nil
}

// =============================================================================
// CUSTOMER STORE
// =============================================================================

// SaveCustomer inserts or replaces a customer.
func (s *Store) SaveCustomer(ctx context.Context, c quoting.Customer) error {
	doc, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode customer %s: %w", c.ID, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO customers (id, name, document)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			document = excluded.document`,
		c.ID, c.Name, string(doc))
	if err != nil {
		return fmt.Errorf("save customer %s: %w", c.ID, err)
	}
	return nil
}

// GetCustomer returns one customer by ID, or quoting.ErrCustomerNotFound.
func (s *Store) GetCustomer(ctx context.Context, id string) (*quoting.Customer, error) {
	var doc string
	err := s.db.QueryRowContext(ctx,
		`SELECT document FROM customers WHERE id = ?`, id).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, quoting.ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get customer %s: %w", id, err)
	}

	var c quoting.Customer
	if err := json.Unmarshal([]byte(doc), &c); err != nil {
		return nil, fmt.Errorf("decode customer %s: %w", id, err)
	}
	return &c, nil
}

// ListCustomers returns all customers ordered by name.
func (s *Store) ListCustomers(ctx context.Context) ([]quoting.Customer, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT document FROM customers ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var customers []quoting.Customer
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		var c quoting.Customer
		if err := json.Unmarshal([]byte(doc), &c); err != nil {
			return nil, fmt.Errorf("decode customer: %w", err)
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

// DeleteCustomer removes a customer from the directory.
func (s *Store) DeleteCustomer(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM customers WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete customer %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return quoting.ErrCustomerNotFound
	}
	return nil
}

// =============================================================================
// SETTINGS STORE
// =============================================================================

// DefaultRates returns the persisted global default rates, or the
// built-in defaults when none have been saved yet.
func (s *Store) DefaultRates(ctx context.Context) (quoting.RateProfile, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = ?`, settingDefaultRates).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return quoting.DefaultRateProfile(), nil
	}
	if err != nil {
		return quoting.RateProfile{}, fmt.Errorf("get default rates: %w", err)
	}

	var r quoting.RateProfile
	if err := json.Unmarshal([]byte(value), &r); err != nil {
		return quoting.RateProfile{}, fmt.Errorf("decode default rates: %w", err)
	}
	return r, nil
}

// SaveDefaultRates persists the global default rates.
func (s *Store) SaveDefaultRates(ctx context.Context, r quoting.RateProfile) error {
	return s.saveSetting(ctx, settingDefaultRates, r)
}

// Technicians returns the technician directory.
func (s *Store) Technicians(ctx context.Context) ([]string, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = ?`, settingTechnicians).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get technicians: %w", err)
	}

	var names []string
	if err := json.Unmarshal([]byte(value), &names); err != nil {
		return nil, fmt.Errorf("decode technicians: %w", err)
	}
	return names, nil
}

// SaveTechnicians persists the technician directory.
func (s *Store) SaveTechnicians(ctx context.Context, names []string) error {
	if names == nil {
		names = []string{}
	}
	return s.saveSetting(ctx, settingTechnicians, names)
}

func (s *Store) saveSetting(ctx context.Context, key string, v any) error {
	value, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode setting %s: %w", key, err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO settings (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at`,
		key, string(value), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("save setting %s: %w", key, err)
	}
	return nil
}
