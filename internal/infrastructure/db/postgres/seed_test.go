package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"

	"github.com/clientdesk/crm-api/internal/core/domain"
)

const adminExistsQuery = "SELECT EXISTS(SELECT 1 FROM users WHERE role = $1)"
const insertAdminQuery = "INSERT INTO users (username, password_hash, role) VALUES ($1, $2, $3)"

func TestSeedDefaultAdmin_CreatesAdminOnFreshDatabase(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(adminExistsQuery).
		WithArgs(domain.RoleAdmin).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec(insertAdminQuery).
		WithArgs(DefaultAdminUsername, sqlmock.AnyArg(), domain.RoleAdmin).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	if err := SeedDefaultAdmin(context.Background(), db, zerolog.Nop()); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
}

func TestSeedDefaultAdmin_NoOpWhenAdminExists(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(adminExistsQuery).
		WithArgs(domain.RoleAdmin).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectCommit()

	if err := SeedDefaultAdmin(context.Background(), db, zerolog.Nop()); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
}

func TestSeedDefaultAdmin_IdempotentAcrossBoots(t *testing.T) {
	db, mock := newMockDB(t)

	// First boot: no admin yet, one insert.
	mock.ExpectBegin()
	mock.ExpectQuery(adminExistsQuery).
		WithArgs(domain.RoleAdmin).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec(insertAdminQuery).
		WithArgs(DefaultAdminUsername, sqlmock.AnyArg(), domain.RoleAdmin).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	// Second boot: admin present, no insert.
	mock.ExpectBegin()
	mock.ExpectQuery(adminExistsQuery).
		WithArgs(domain.RoleAdmin).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectCommit()

	if err := SeedDefaultAdmin(context.Background(), db, zerolog.Nop()); err != nil {
		t.Fatalf("first seed failed: %v", err)
	}
	if err := SeedDefaultAdmin(context.Background(), db, zerolog.Nop()); err != nil {
		t.Fatalf("second seed failed: %v", err)
	}
}
