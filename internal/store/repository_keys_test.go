package store

import (
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidabem/securechat/internal/logger"
)

func TestKeyRepository_SaveRoomKey(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewKeyRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO room_keys")).
		WithArgs("room-12", []byte("wrapped-blob"), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SaveRoomKey(testContext(), "room-12", []byte("wrapped-blob")))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestKeyRepository_SaveRoomKey_FirstWriterWins(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewKeyRepository(newDBFromSQL(db), logger.Nop())

	// ON CONFLICT DO NOTHING: the losing writer sees zero rows.
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO room_keys")).
		WithArgs("room-12", []byte("loser-blob"), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SaveRoomKey(testContext(), "room-12", []byte("loser-blob"))
	assert.True(t, errors.Is(err, ErrAlreadyExists))
}

func TestKeyRepository_GetRoomKey(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewKeyRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT wrapped FROM room_keys")).
		WithArgs("room-12").
		WillReturnRows(sqlmock.NewRows([]string{"wrapped"}).AddRow([]byte("wrapped-blob")))

	wrapped, err := repo.GetRoomKey(testContext(), "room-12")
	require.NoError(t, err)
	assert.Equal(t, []byte("wrapped-blob"), wrapped)
}

func TestKeyRepository_GetRoomKey_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewKeyRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT wrapped FROM room_keys")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"wrapped"}))

	_, err := repo.GetRoomKey(testContext(), "missing")
	assert.True(t, errors.Is(err, ErrKeyNotFound))
}

func TestKeyRepository_DeleteRoomKey(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewKeyRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM room_keys")).
		WithArgs("room-12").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteRoomKey(testContext(), "room-12"))
}

func TestKeyRepository_KeyPairRoundTrip(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewKeyRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO identity_keys")).
		WithArgs(int64(7), []byte("wrapped-pair"), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT wrapped FROM identity_keys")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"wrapped"}).AddRow([]byte("wrapped-pair")))

	require.NoError(t, repo.SaveKeyPair(testContext(), 7, []byte("wrapped-pair")))

	wrapped, err := repo.GetKeyPair(testContext(), 7)
	require.NoError(t, err)
	assert.Equal(t, []byte("wrapped-pair"), wrapped)
}
