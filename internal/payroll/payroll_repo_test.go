package payroll_test

import (
	"context"
	"testing"

	"github.com/Cjblack21/ckcm-payroll-sub001/internal/payroll"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Queries on a tx-bound repository must hit the transaction's connection,
// not the pool the repository was built on.
func TestRepositoryWithTxRoutesQueriesThroughTx(t *testing.T) {
	poolDB, poolMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer poolDB.Close()

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: poolDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	assert.NoError(t, err)

	txDB, txMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer txDB.Close()

	txMock.ExpectBegin()
	tx, err := txDB.Begin()
	assert.NoError(t, err)

	txMock.ExpectQuery(`SELECT .* FROM "payroll_entries"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := payroll.NewRepository(gormDB)
	_, err = repo.WithTx(tx).FindByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	assert.NoError(t, txMock.ExpectationsWereMet())
	assert.NoError(t, poolMock.ExpectationsWereMet())
}

// The original repository keeps running on the pool after WithTx.
func TestRepositoryWithTxLeavesPoolHandleUntouched(t *testing.T) {
	poolDB, poolMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer poolDB.Close()

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: poolDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	assert.NoError(t, err)

	txDB, txMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer txDB.Close()

	txMock.ExpectBegin()
	tx, err := txDB.Begin()
	assert.NoError(t, err)

	repo := payroll.NewRepository(gormDB)
	_ = repo.WithTx(tx)

	poolMock.ExpectQuery(`SELECT .* FROM "payroll_entries"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = repo.FindByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	assert.NoError(t, poolMock.ExpectationsWereMet())
}
