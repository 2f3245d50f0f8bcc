package counter_test

import (
	"context"
	"testing"

	"go-payroll/internal/shared/counter"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestRepository_GetNextValueRunsInsideTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO company_counters`).
		WithArgs("c-1", counter.EmployeeNumber).
		WillReturnRows(sqlmock.NewRows([]string{"last_value"}).AddRow(int64(7)))
	mock.ExpectRollback()

	tx, err := db.Begin()
	assert.NoError(t, err)

	next, err := counter.NewRepository(gdb).WithTx(tx).GetNextValue(context.Background(), "c-1", counter.EmployeeNumber)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), next)
	assert.Equal(t, "EMP-000007", counter.FormatEmployeeNumber(next))

	// the increment is undone with the insert it was drawn for
	assert.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}
