package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// ErrAlertNotFound indicates the alert id does not resolve to a row.
var ErrAlertNotFound = errors.New("alert not found")

// ErrPaymentMethodNotFound indicates a missing payment method row.
var ErrPaymentMethodNotFound = errors.New("payment method not found")

// ErrImageNotFound indicates a missing image metadata row.
var ErrImageNotFound = errors.New("image not found")

// ErrPartNotFound indicates a missing part row.
var ErrPartNotFound = errors.New("part not found")

type Store struct {
	db *sqlx.DB
}

// NewStore creates a new database store
func NewStore(databaseURL string) (*Store, error) {
	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// GetDB returns the underlying database connection
func (s *Store) GetDB() *sqlx.DB {
	return s.db
}
