package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"pokertrainer-server/pkg/db"
)

// PostgresStore keeps each session as a JSONB document in training_sessions
type PostgresStore struct {
	dbh *sql.DB
}

// NewPostgresStore returns a store backed by dbh. Migrations must already be applied.
func NewPostgresStore(dbh *sql.DB) *PostgresStore {
	return &PostgresStore{dbh: dbh}
}

func getSessionByRow(row db.Scanner) (*Session, error) {
	var doc []byte
	if err := row.Scan(&doc); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}

		return nil, err
	}

	var s Session
	if err := json.Unmarshal(doc, &s); err != nil {
		return nil, err
	}

	return &s, nil
}

// Create inserts a new session
func (p *PostgresStore) Create(ctx context.Context, s *Session) error {
	const query = `
INSERT INTO training_sessions (uuid, doc, created, updated)
VALUES ($1, $2, $3, $4)`

	doc, err := json.Marshal(s)
	if err != nil {
		return err
	}

	if _, err := p.dbh.ExecContext(ctx, query, s.UUID, doc, s.Created, s.Updated); err != nil {
		if db.IsDuplicateKey(err) {
			return ErrDuplicateSession
		}

		return err
	}

	return nil
}

// Get returns the session or ErrNotFound
func (p *PostgresStore) Get(ctx context.Context, uuid string) (*Session, error) {
	const query = `
SELECT doc
FROM training_sessions
WHERE uuid = $1`

	row := p.dbh.QueryRowContext(ctx, query, uuid)
	return getSessionByRow(row)
}

// Save replaces an existing session document
func (p *PostgresStore) Save(ctx context.Context, s *Session) error {
	const query = `
UPDATE training_sessions
SET doc = $1,
    updated = $2
WHERE uuid = $3`

	doc, err := json.Marshal(s)
	if err != nil {
		return err
	}

	res, err := p.dbh.ExecContext(ctx, query, doc, s.Updated, s.UUID)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if n == 0 {
		return ErrNotFound
	}

	return nil
}
