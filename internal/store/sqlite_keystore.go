package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3" // database/sql driver

	"github.com/vidabem/securechat/internal/logger"
)

// sqliteKeyStore is a file-backed [KeyStore] for single-node
// deployments that keep wrapped keys next to the process instead of in
// the shared database. Blobs are wrapped by the key manager before they
// arrive here, so the file on disk holds no raw key material.
type sqliteKeyStore struct {
	db     *sql.DB
	logger *logger.Logger
	now    func() time.Time
}

const sqliteKeySchema = `
	CREATE TABLE IF NOT EXISTS room_keys (
		room_id    TEXT PRIMARY KEY,
		wrapped    BLOB NOT NULL,
		created_at TIMESTAMP NOT NULL
	);
	CREATE TABLE IF NOT EXISTS identity_keys (
		owner_id   INTEGER PRIMARY KEY,
		wrapped    BLOB NOT NULL,
		created_at TIMESTAMP NOT NULL
	);`

// NewSQLiteKeyStore opens (creating if necessary) the key database at
// path. Use ":memory:" for an ephemeral store in tests.
func NewSQLiteKeyStore(path string, log *logger.Logger) (KeyStore, error) {
	if path == "" {
		path = ":memory:"
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite key store: %w", err)
	}

	// One writer at a time keeps the first-writer-wins insert honest.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(sqliteKeySchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create sqlite key schema: %w", err)
	}

	return &sqliteKeyStore{
		db:     db,
		logger: log,
		now:    time.Now,
	}, nil
}

func (s *sqliteKeyStore) GetRoomKey(ctx context.Context, roomID string) ([]byte, error) {
	var wrapped []byte
	err := s.db.QueryRowContext(ctx, `SELECT wrapped FROM room_keys WHERE room_id = ?;`, roomID).Scan(&wrapped)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return wrapped, nil
}

func (s *sqliteKeyStore) SaveRoomKey(ctx context.Context, roomID string, wrapped []byte) error {
	result, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO room_keys (room_id, wrapped, created_at) VALUES (?, ?, ?);`,
		roomID, wrapped, s.now(),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	saved, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if saved == 0 {
		return ErrAlreadyExists
	}

	return nil
}

func (s *sqliteKeyStore) DeleteRoomKey(ctx context.Context, roomID string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM room_keys WHERE room_id = ?;`, roomID); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteKeyStore) GetKeyPair(ctx context.Context, ownerID int64) ([]byte, error) {
	var wrapped []byte
	err := s.db.QueryRowContext(ctx, `SELECT wrapped FROM identity_keys WHERE owner_id = ?;`, ownerID).Scan(&wrapped)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return wrapped, nil
}

func (s *sqliteKeyStore) SaveKeyPair(ctx context.Context, ownerID int64, wrapped []byte) error {
	result, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO identity_keys (owner_id, wrapped, created_at) VALUES (?, ?, ?);`,
		ownerID, wrapped, s.now(),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	saved, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if saved == 0 {
		return ErrAlreadyExists
	}

	return nil
}
