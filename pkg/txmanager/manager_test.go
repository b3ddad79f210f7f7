package txmanager

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FrontDeskService/pkg/dbmetrics"
)

func newManager(t *testing.T) (*TransactionManager, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return NewTransactionManager(dbmetrics.SqlDBWrapper{DB: db}), mock, func() { db.Close() }
}

func TestDoSerializable_Commit(t *testing.T) {
	mgr, mock, closeFn := newManager(t)
	defer closeFn()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO guests").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := mgr.DoSerializable(context.Background(), func(txCtx context.Context) error {
		require.True(t, dbmetrics.IsInTransaction(txCtx))
		executor := dbmetrics.GetExecutor(txCtx, nil)
		_, err := executor.ExecContext(txCtx, "INSERT INTO guests (id) VALUES ($1)", "g-1")
		return err
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializable_RollbackOnError(t *testing.T) {
	mgr, mock, closeFn := newManager(t)
	defer closeFn()

	mock.ExpectBegin()
	mock.ExpectRollback()

	sentinel := errors.New("unit unavailable")
	err := mgr.DoSerializable(context.Background(), func(ctx context.Context) error {
		return sentinel
	})

	assert.ErrorIs(t, err, sentinel)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoReadOnly_BeginError(t *testing.T) {
	mgr, mock, closeFn := newManager(t)
	defer closeFn()

	mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

	called := false
	err := mgr.DoReadOnly(context.Background(), func(ctx context.Context) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, ErrBeginTx)
	assert.False(t, called)
}

func TestDoSerializable_NestedReusesTransaction(t *testing.T) {
	mgr, mock, closeFn := newManager(t)
	defer closeFn()

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := mgr.DoSerializable(context.Background(), func(outer context.Context) error {
		return mgr.DoReadOnly(outer, func(inner context.Context) error {
			assert.True(t, dbmetrics.IsInTransaction(inner))
			return nil
		})
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
