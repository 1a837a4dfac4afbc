package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// Connection holds the database connection
type Connection struct {
	DB *sql.DB
}

// NewConnection opens and pings a database connection for the given DSN
func NewConnection(dsn string) (*Connection, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)

	return &Connection{DB: db}, nil
}

// Close closes the database connection
func (c *Connection) Close() error {
	return c.DB.Close()
}
