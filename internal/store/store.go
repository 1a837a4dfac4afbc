// Package store persists the merged address table to Postgres.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/pacport/japanese-addresses/internal/gazetteer"
)

// Store is what the build pipeline needs from persistence.
type Store interface {
	EnsureSchema(ctx context.Context) error
	ReplaceAddresses(ctx context.Context, records []*gazetteer.AddressRecord) error
}

// Postgres writes the address table through a lib/pq connection.
type Postgres struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewPostgres creates a Postgres store on an open connection.
func NewPostgres(db *sql.DB, log zerolog.Logger) *Postgres {
	return &Postgres{db: db, log: log}
}

// EnsureSchema creates the address table and its indexes when missing.
func (s *Postgres) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, addressSchema); err != nil {
		return fmt.Errorf("failed to create addresses table: %w", err)
	}

	for _, indexSQL := range addressIndexes {
		if _, err := s.db.ExecContext(ctx, indexSQL); err != nil {
			s.log.Warn().Err(err).Msg("failed to create index")
		}
	}
	return nil
}

// ReplaceAddresses swaps the table contents for the given records in one
// transaction, bulk-loading through COPY. Records must arrive in final
// output order; the id sequence preserves it.
func (s *Postgres) ReplaceAddresses(ctx context.Context, records []*gazetteer.AddressRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "TRUNCATE TABLE addresses RESTART IDENTITY"); err != nil {
		return fmt.Errorf("failed to truncate addresses: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn("addresses",
		"pref_code", "zip",
		"pref_name", "pref_kana", "pref_romaji",
		"city_code", "city_name", "city_kana", "city_romaji",
		"town_name", "town_kana", "town_romaji",
		"koaza", "lat", "lon",
	))
	if err != nil {
		return fmt.Errorf("failed to prepare copy: %w", err)
	}

	for _, rec := range records {
		_, err := stmt.ExecContext(ctx,
			rec.PrefCode, nullIfEmpty(rec.Zip),
			rec.PrefName, rec.PrefKana, rec.PrefRomaji,
			rec.CityCode, rec.CityName, rec.CityKana, rec.CityRomaji,
			rec.TownName, rec.TownKana, rec.TownRomaji,
			rec.Koaza, rec.Lat, rec.Lon,
		)
		if err != nil {
			stmt.Close()
			return fmt.Errorf("failed to copy address row: %w", err)
		}
	}

	// Flush the copy buffer.
	if _, err := stmt.ExecContext(ctx); err != nil {
		stmt.Close()
		return fmt.Errorf("failed to flush copy: %w", err)
	}
	if err := stmt.Close(); err != nil {
		return fmt.Errorf("failed to close copy: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit addresses: %w", err)
	}

	s.log.Info().Int("records", len(records)).Msg("address table replaced")
	return nil
}

// nullIfEmpty maps an absent postal code to NULL; every other text column
// stores empty strings as is.
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
