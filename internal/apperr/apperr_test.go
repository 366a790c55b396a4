package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestConstructors_Status(t *testing.T) {
	cases := []struct {
		err  *Error
		want int
	}{
		{BadRequest("x"), http.StatusBadRequest},
		{Unauthorized("x"), http.StatusUnauthorized},
		{Forbidden("x"), http.StatusForbidden},
		{NotFound("x"), http.StatusNotFound},
		{Conflict("x"), http.StatusConflict},
		{Internal(errors.New("boom")), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if tc.err.Status != tc.want {
			t.Errorf("status = %d, want %d", tc.err.Status, tc.want)
		}
	}
}

func TestInternal_HidesCause(t *testing.T) {
	e := Internal(errors.New("password column corrupt"))
	if e.Message != DefaultMessage {
		t.Fatalf("message = %q, want generic %q", e.Message, DefaultMessage)
	}
	if e.Unwrap() == nil {
		t.Fatal("expected wrapped cause for logging")
	}
}

func TestDemoForbidden_CarriesFlag(t *testing.T) {
	e := DemoForbidden()
	if e.Status != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", e.Status)
	}
	if !e.IsDemoUser {
		t.Fatal("IsDemoUser flag not set")
	}
	if e.Friendly == "" {
		t.Fatal("expected a friendly explanatory message")
	}
}

func TestFrom_PassesThroughTaxonomyErrors(t *testing.T) {
	orig := NotFound("Task not found")
	if got := From(fmt.Errorf("store: %w", orig)); got != orig {
		t.Fatalf("From did not unwrap to the original taxonomy error")
	}
}

func TestFrom_WrapsUnknownAsInternal(t *testing.T) {
	got := From(errors.New("disk on fire"))
	if got.Status != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", got.Status)
	}
	if got.Message != DefaultMessage {
		t.Fatalf("message = %q, want %q", got.Message, DefaultMessage)
	}
}

func TestFrom_Nil(t *testing.T) {
	if From(nil) != nil {
		t.Fatal("From(nil) should be nil")
	}
}
