package models_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"bitbucket.org/mmdatafocus/spaces_backend/config"
	"bitbucket.org/mmdatafocus/spaces_backend/models"
	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()
	sqlDb, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	gormDb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDb,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("gorm open: %v", err)
	}
	previous := config.GetDB()
	config.SetDB(gormDb)
	t.Cleanup(func() {
		config.SetDB(previous)
		sqlDb.Close()
	})
	return mock
}

func customerBatch(n int) []*models.Customer {
	customers := make([]*models.Customer, n)
	for i := range customers {
		customers[i] = &models.Customer{Name: fmt.Sprintf("Customer %d", i)}
	}
	return customers
}

func TestCreateCustomerRejectsBadContactDetails(t *testing.T) {
	mock := newMockDB(t)

	badEmail := "not-an-email"
	if _, err := models.CreateCustomer(context.Background(), models.NewCustomer{
		Name:  "Bad Email",
		Email: &badEmail,
	}); err == nil {
		t.Error("malformed email should be rejected")
	}

	badPhone := "123"
	if _, err := models.CreateCustomer(context.Background(), models.NewCustomer{
		Name:         "Bad Phone",
		MobileNumber: &badPhone,
	}); err == nil {
		t.Error("malformed mobile number should be rejected")
	}

	// Rejection happens before any store access.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestInsertCustomersInChunksSplitsBatches(t *testing.T) {
	mock := newMockDB(t)

	// 450 records at chunk size 200 means three inserts of 200/200/50.
	for _, size := range []int{200, 200, 50} {
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO `customers`").
			WillReturnResult(sqlmock.NewResult(1, int64(size)))
		mock.ExpectCommit()
	}

	inserted, err := models.InsertCustomersInChunks(context.Background(), customerBatch(450), 200)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inserted != 450 {
		t.Errorf("inserted = %d, want 450", inserted)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestInsertCustomersInChunksAbortsOnFailure(t *testing.T) {
	mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `customers`").
		WillReturnResult(sqlmock.NewResult(1, 200))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `customers`").
		WillReturnError(errors.New("max_allowed_packet exceeded"))
	mock.ExpectRollback()

	inserted, err := models.InsertCustomersInChunks(context.Background(), customerBatch(450), 200)
	if err == nil {
		t.Fatal("expected second chunk to fail")
	}
	// First chunk stays committed; the third is never attempted.
	if inserted != 200 {
		t.Errorf("inserted = %d, want 200", inserted)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestInsertCustomersInChunksDefaultsChunkSize(t *testing.T) {
	mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `customers`").
		WillReturnResult(sqlmock.NewResult(1, 3))
	mock.ExpectCommit()

	inserted, err := models.InsertCustomersInChunks(context.Background(), customerBatch(3), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inserted != 3 {
		t.Errorf("inserted = %d, want 3", inserted)
	}
}
