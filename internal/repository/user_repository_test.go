package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestIsUniqueViolation(t *testing.T) {
	uniqueErr := &pq.Error{Code: "23505", Constraint: "users_email_key"}
	if !isUniqueViolation(uniqueErr) {
		t.Fatal("expected 23505 to be a unique violation")
	}
	if !isUniqueViolation(fmt.Errorf("insert: %w", uniqueErr)) {
		t.Fatal("expected wrapped 23505 to be a unique violation")
	}

	if isUniqueViolation(&pq.Error{Code: "23503"}) {
		t.Fatal("foreign key violation misclassified as unique violation")
	}
	if isUniqueViolation(errors.New("connection refused")) {
		t.Fatal("plain error misclassified as unique violation")
	}
	if isUniqueViolation(nil) {
		t.Fatal("nil misclassified as unique violation")
	}
}
