package sheetimport_test

import (
	"context"
	"testing"

	"bitbucket.org/mmdatafocus/spaces_backend/config"
	"bitbucket.org/mmdatafocus/spaces_backend/sheetimport"
	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeSource struct {
	header []string
	rows   [][]string
}

func (f *fakeSource) ReadTable(context.Context) ([]string, [][]string, error) {
	return f.header, f.rows, nil
}

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

func TestRunImportDedupesAndInserts(t *testing.T) {
	mock := newMockDB(t)

	// One customer already stored; its email collides with the first row.
	stored := sqlmock.NewRows([]string{"id", "name", "email", "mobile_number"}).
		AddRow(1, "Existing", "a@x.com", "123")
	mock.ExpectQuery("SELECT (.+) FROM `customers`").WillReturnRows(stored)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `customers`").
		WillReturnResult(sqlmock.NewResult(2, 2))
	mock.ExpectCommit()

	source := &fakeSource{
		header: []string{"Email", "Mobile Number"},
		rows: [][]string{
			{"a@x.com", "123"},
			{"b@y.com", "456"},
			{"c@z.com", "789"},
		},
	}
	result, err := sheetimport.RunImport(context.Background(), source)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Inserted != 2 || result.Skipped != 1 || result.TotalRows != 3 {
		t.Errorf("result = %+v, want inserted 2 skipped 1 totalRows 3", result)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestRunImportSecondRunInsertsNothing(t *testing.T) {
	mock := newMockDB(t)

	// Every sheet row is already stored, so no insert is issued at all.
	stored := sqlmock.NewRows([]string{"id", "name", "email", "mobile_number"}).
		AddRow(1, "A", "a@x.com", nil).
		AddRow(2, "B", "b@y.com", nil)
	mock.ExpectQuery("SELECT (.+) FROM `customers`").WillReturnRows(stored)

	source := &fakeSource{
		header: []string{"Email"},
		rows:   [][]string{{"a@x.com"}, {"b@y.com"}},
	}
	result, err := sheetimport.RunImport(context.Background(), source)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Inserted != 0 || result.Skipped != 2 {
		t.Errorf("result = %+v, want inserted 0 skipped 2", result)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}
