package database

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Commit(ctx context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	if t.committed {
		return pgx.ErrTxClosed
	}
	t.rolledBack = true
	return nil
}

type fakeDB struct {
	begins int
	tx     *fakeTx
}

func (db *fakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, errors.New("not implemented")
}

func (db *fakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}

func (db *fakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (db *fakeDB) Begin(ctx context.Context) (pgx.Tx, error) {
	db.begins++
	db.tx = &fakeTx{}
	return db.tx, nil
}

func (db *fakeDB) Ping(ctx context.Context) error { return nil }

func (db *fakeDB) Close() {}

func TestWithTx_Commits(t *testing.T) {
	db := &fakeDB{}

	err := WithTx(context.Background(), db, func(ctx context.Context) error {
		assert.Same(t, db.tx, Conn(ctx, db))
		return nil
	})
	require.NoError(t, err)
	assert.True(t, db.tx.committed)
	assert.False(t, db.tx.rolledBack)
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	db := &fakeDB{}
	boom := errors.New("boom")

	err := WithTx(context.Background(), db, func(ctx context.Context) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.True(t, db.tx.rolledBack)
	assert.False(t, db.tx.committed)
}

func TestWithTx_RollsBackOnPanic(t *testing.T) {
	db := &fakeDB{}

	assert.Panics(t, func() {
		_ = WithTx(context.Background(), db, func(ctx context.Context) error {
			panic("boom")
		})
	})
	assert.True(t, db.tx.rolledBack)
}

func TestWithTx_NestedReusesOuter(t *testing.T) {
	db := &fakeDB{}

	err := WithTx(context.Background(), db, func(ctx context.Context) error {
		return WithTx(ctx, db, func(ctx context.Context) error {
			return nil
		})
	})
	require.NoError(t, err)
	assert.Equal(t, 1, db.begins)
}

func TestConn_WithoutTxReturnsDB(t *testing.T) {
	db := &fakeDB{}
	assert.Same(t, db, Conn(context.Background(), db))
}
