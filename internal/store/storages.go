package store

import (
	"context"
	"fmt"

	"github.com/vidabem/securechat/internal/config"
	"github.com/vidabem/securechat/internal/logger"
)

// NewStorages wires every persistence backend from configuration.
//
// Messages and attachments always live in PostgreSQL. Wrapped keys go
// to the local sqlite store when Storage.Keys.Path is set; otherwise
// they share the PostgreSQL connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error creating postgres connection: %w", err)
	}

	var keys KeyStore
	if cfg.Keys.Path != "" {
		keys, err = NewSQLiteKeyStore(cfg.Keys.Path, log)
		if err != nil {
			return nil, fmt.Errorf("error creating sqlite key store: %w", err)
		}
	} else {
		keys = NewKeyRepository(db, log)
	}

	return &Storages{
		DB:          db,
		Messages:    NewMessageRepository(db, log),
		Attachments: NewAttachmentRepository(db, log),
		Keys:        keys,
	}, nil
}
