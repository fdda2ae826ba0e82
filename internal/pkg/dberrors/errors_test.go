package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsDuplicateConstraintError(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "applications_school_id_key"}

	if !IsDuplicateConstraintError(dup, "applications_school_id_key") {
		t.Error("matching constraint should be recognized")
	}
	if IsDuplicateConstraintError(dup, "admins_email_key") {
		t.Error("different constraint should not match")
	}
	if !IsDuplicateConstraintError(fmt.Errorf("insert: %w", dup), "applications_school_id_key") {
		t.Error("wrapped error should still match")
	}
	if IsDuplicateConstraintError(&pgconn.PgError{Code: "23503", ConstraintName: "applications_school_id_key"}, "applications_school_id_key") {
		t.Error("non-unique-violation code should not match")
	}
	if IsDuplicateConstraintError(errors.New("plain"), "applications_school_id_key") {
		t.Error("plain error should not match")
	}
}

func TestIsUniqueViolation(t *testing.T) {
	if !IsUniqueViolation(&pgconn.PgError{Code: "23505"}) {
		t.Error("unique violation should be recognized")
	}
	if IsUniqueViolation(errors.New("plain")) {
		t.Error("plain error should not match")
	}
}
