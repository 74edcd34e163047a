// Package violationstore journals every submission attempt to sqlite so
// a batch run can be audited after the fact.
package violationstore

import (
	"context"
	"database/sql"
	"time"

	"huur-backend/lib/finders"

	_ "embed"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

//go:embed db/schema.sql
var schema string

type Store struct {
	db *sql.DB
}

func NewStore(database *sql.DB) (Store, error) {
	_, err := database.Exec(schema)
	if err != nil {
		return Store{}, err
	}
	return Store{db: database}, nil
}

// Open opens (creating if needed) a journal at the given path.
func Open(path string) (Store, error) {
	database, err := sql.Open("sqlite", path)
	if err != nil {
		return Store{}, err
	}
	return NewStore(database)
}

func (s Store) Close() error {
	return s.db.Close()
}

// Record journals one submission attempt.
func (s Store) Record(ctx context.Context, finder string, violation finders.ParkingViolation, submitted bool) error {
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO submission (identifier, finder, tag, state, amount, submitted, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		violation.Identifier(),
		finder,
		violation.Tag,
		violation.State,
		violation.Amount,
		submitted,
		time.Now().Unix(),
	)
	return err
}

type Counts struct {
	Total     int64
	Submitted int64
}

// Counts reports how many attempts the journal holds and how many of
// them reached the ingestion API.
func (s Store) Counts(ctx context.Context) (Counts, error) {
	var counts Counts
	err := s.db.QueryRowContext(
		ctx,
		`SELECT COUNT(*), COALESCE(SUM(submitted), 0) FROM submission`,
	).Scan(&counts.Total, &counts.Submitted)
	return counts, err
}

// ByFinder reports the journaled attempt count per finder.
func (s Store) ByFinder(ctx context.Context) (map[string]int64, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT finder, COUNT(*) FROM submission GROUP BY finder`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[string]int64{}
	for rows.Next() {
		var finder string
		var count int64
		if err := rows.Scan(&finder, &count); err != nil {
			return nil, err
		}
		counts[finder] = count
	}
	return counts, rows.Err()
}
