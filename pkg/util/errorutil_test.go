package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
)

func TestToDomainError_PassThrough(t *testing.T) {
	t.Parallel()

	original := NewConflict("email already exists", nil)
	mapped := ToDomainError(original)
	if mapped.Code != "CONFLICT" || mapped.HTTPStatus != http.StatusConflict {
		t.Fatalf("unexpected mapping: %+v", mapped)
	}
}

func TestToDomainError_WrappedDomainError(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("service: %w", NewInvalidCredentials())
	mapped := ToDomainError(wrapped)
	if mapped.Code != "INVALID_CREDENTIALS" || mapped.HTTPStatus != http.StatusUnauthorized {
		t.Fatalf("unexpected mapping: %+v", mapped)
	}
}

func TestToDomainError_NoRows(t *testing.T) {
	t.Parallel()

	mapped := ToDomainError(pgx.ErrNoRows)
	if mapped.Code != "NOT_FOUND" || mapped.HTTPStatus != http.StatusNotFound {
		t.Fatalf("unexpected mapping: %+v", mapped)
	}
}

func TestToDomainError_Unknown(t *testing.T) {
	t.Parallel()

	mapped := ToDomainError(errors.New("boom"))
	if mapped.Code != "INTERNAL_ERROR" || mapped.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("unexpected mapping: %+v", mapped)
	}
	if mapped.Unwrap() == nil {
		t.Fatal("cause not preserved")
	}
}

func TestToDomainError_Nil(t *testing.T) {
	t.Parallel()

	if ToDomainError(nil) != nil {
		t.Fatal("nil error should map to nil")
	}
}
