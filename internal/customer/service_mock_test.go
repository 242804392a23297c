package customer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"

	"winsbygroup.com/lunchly/internal/customer"
)

func newMockService(t *testing.T) (*customer.Service, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { mockDB.Close() })

	db := sqlx.NewDb(mockDB, "sqlmock")
	return customer.NewService(db, nil), mock
}

func TestSearchEmptyDoesNotQuery(t *testing.T) {
	svc, mock := newMockService(t)

	_, err := svc.Search(context.Background(), "")
	if !errors.Is(err, customer.ErrEmptySearch) {
		t.Fatalf("expected ErrEmptySearch, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected db activity: %v", err)
	}
}

func TestSearchBindsBothTerms(t *testing.T) {
	svc, mock := newMockService(t)

	rows := sqlmock.NewRows([]string{"id", "first_name", "last_name", "phone", "notes"}).
		AddRow(1, "Jane", "Smith", "", "")
	mock.ExpectQuery(`SELECT (.+) FROM customers WHERE`).
		WithArgs("Jane", "Jane", "Doe", "Doe").
		WillReturnRows(rows)

	got, err := svc.Search(context.Background(), "Jane Doe Extra")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 1 || got[0].ID != 1 {
		t.Errorf("unexpected result %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestDatabaseErrorsPropagate(t *testing.T) {
	svc, mock := newMockService(t)
	boom := errors.New("connection refused")

	mock.ExpectQuery(`SELECT (.+) FROM customers`).WillReturnError(boom)

	_, err := svc.All(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped driver error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}
