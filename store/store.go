// Package store keeps dataset rows in a SQL table so the histogram can be
// computed from a database instead of the CSV file.
package store

import (
	"context"
	"io"

	"github.com/jmoiron/sqlx"
	"github.com/juju/errors"
	"github.com/lib/pq"

	// import mysql
	_ "github.com/go-sql-driver/mysql"

	"github.com/leesalminen/votehist/model"
)

// Supported drivers.
const (
	Postgres = "postgres"
	MySQL    = "mysql"
)

// Table holds the imported rows.
const Table = "movies"

// Store is a connected database.
type Store struct {
	db     *sqlx.DB
	driver string
}

// Open connects to dsn with driver.
func Open(ctx context.Context, driver, dsn string) (*Store, error) {
	if _, err := Schema(driver); err != nil {
		return nil, err
	}
	db, err := sqlx.ConnectContext(ctx, driver, dsn)
	if err != nil {
		return nil, errors.Annotate(err, "error establishing database connection")
	}
	return New(db, driver), nil
}

// New wraps an open connection pool for driver.
func New(db *sqlx.DB, driver string) *Store {
	return &Store{db: db, driver: driver}
}

// Close closes the connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// Migrate creates the table if it does not exist.
func (s *Store) Migrate(ctx context.Context) error {
	schema, err := Schema(s.driver)
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return errors.Annotate(err, "error creating schema")
	}
	return nil
}

// Truncate removes every row.
func (s *Store) Truncate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "TRUNCATE TABLE "+Table); err != nil {
		return errors.Annotate(err, "error truncating SQL table")
	}
	return nil
}

// MaxInsertRows bounds one MySQL bulk insert so it stays under the
// protocol's 65535 placeholders per statement.
const MaxInsertRows = 65535 / 3

// Insert appends rows. row_id is assigned by the database.
func (s *Store) Insert(ctx context.Context, rows []model.Row) error {
	if len(rows) == 0 {
		return nil
	}
	if s.driver == Postgres {
		return s.copyIn(ctx, rows)
	}
	for len(rows) > 0 {
		n := len(rows)
		if n > MaxInsertRows {
			n = MaxInsertRows
		}
		_, err := s.db.NamedExecContext(ctx,
			"INSERT INTO "+Table+" (line, title, vote_count) VALUES (:line, :title, :vote_count)",
			rows[:n])
		if err != nil {
			return errors.Trace(err)
		}
		rows = rows[n:]
	}
	return nil
}

func (s *Store) copyIn(ctx context.Context, rows []model.Row) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Trace(err)
	}

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn(Table, "line", "title", "vote_count"))
	if err != nil {
		tx.Rollback()
		return errors.Trace(err)
	}
	for _, row := range rows {
		if _, err := stmt.ExecContext(ctx, row.Line, row.Title, row.VoteCount); err != nil {
			stmt.Close()
			tx.Rollback()
			return errors.Trace(err)
		}
	}
	if _, err := stmt.ExecContext(ctx); err != nil {
		stmt.Close()
		tx.Rollback()
		return errors.Trace(err)
	}
	if err := stmt.Close(); err != nil {
		tx.Rollback()
		return errors.Trace(err)
	}
	return errors.Trace(tx.Commit())
}

// Rows streams the stored rows in import order.
func (s *Store) Rows(ctx context.Context) (*RowSource, error) {
	rows, err := s.db.QueryxContext(ctx, "SELECT row_id, line, title, vote_count FROM "+Table+" ORDER BY row_id")
	if err != nil {
		return nil, errors.Trace(err)
	}
	return &RowSource{rows: rows}, nil
}

// RowSource yields stored rows.
type RowSource struct {
	rows *sqlx.Rows
}

// Next returns the next stored row or io.EOF.
func (r *RowSource) Next(context.Context) (model.Row, error) {
	if !r.rows.Next() {
		if err := r.rows.Err(); err != nil {
			return model.Row{}, errors.Trace(err)
		}
		return model.Row{}, io.EOF
	}
	var row model.Row
	if err := r.rows.StructScan(&row); err != nil {
		return model.Row{}, errors.Trace(err)
	}
	return row, nil
}

// Close releases the result set.
func (r *RowSource) Close() error {
	return r.rows.Close()
}
