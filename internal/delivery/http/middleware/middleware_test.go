package middleware

import (
	"errors"
	"testing"

	"talent-match/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

func TestBearerTokenFromHeader(t *testing.T) {
	cases := []struct {
		header string
		token  string
		ok     bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", true},
		{"bearer abc", "abc", true},
		{"  Bearer   spaced  ", "spaced", true},
		{"", "", false},
		{"Bearer", "", false},
		{"Bearer ", "", false},
		{"Basic abc", "", false},
		{"abc.def.ghi", "", false},
	}

	for _, tc := range cases {
		token, ok := bearerTokenFromHeader(tc.header)
		if ok != tc.ok || token != tc.token {
			t.Fatalf("bearerTokenFromHeader(%q) = (%q, %v), want (%q, %v)", tc.header, token, ok, tc.token, tc.ok)
		}
	}
}

func TestNormalizeErrorAppError(t *testing.T) {
	cause := errors.New("boom")
	status, msg, data := normalizeError(NewAppError(fiber.StatusNotFound, "Job not found", "extra", cause))
	if status != fiber.StatusNotFound {
		t.Fatalf("status = %d", status)
	}
	if msg != "Job not found" {
		t.Fatalf("msg = %q", msg)
	}
	if data != "extra" {
		t.Fatalf("data = %v", data)
	}
}

func TestNormalizeErrorHidesServerDetails(t *testing.T) {
	status, msg, data := normalizeError(NewAppError(fiber.StatusInternalServerError, "pgx: connection refused", nil, nil))
	if status != fiber.StatusInternalServerError {
		t.Fatalf("status = %d", status)
	}
	if msg != response.MessageInternalServerError {
		t.Fatalf("msg = %q leaked internals", msg)
	}
	if data != nil {
		t.Fatalf("data = %v, want nil", data)
	}
}

func TestNormalizeErrorDefaultsMessage(t *testing.T) {
	status, msg, _ := normalizeError(NewAppError(fiber.StatusBadRequest, "", nil, nil))
	if status != fiber.StatusBadRequest {
		t.Fatalf("status = %d", status)
	}
	if msg != response.MessageBadRequest {
		t.Fatalf("msg = %q", msg)
	}
}

func TestNormalizeErrorFiberError(t *testing.T) {
	status, msg, _ := normalizeError(fiber.NewError(fiber.StatusNotFound, "Cannot GET /nope"))
	if status != fiber.StatusNotFound {
		t.Fatalf("status = %d", status)
	}
	if msg != "Cannot GET /nope" {
		t.Fatalf("msg = %q", msg)
	}
}

func TestNormalizeErrorOpaque(t *testing.T) {
	status, msg, _ := normalizeError(errors.New("pq: syntax error"))
	if status != fiber.StatusInternalServerError {
		t.Fatalf("status = %d", status)
	}
	if msg != response.MessageInternalServerError {
		t.Fatalf("msg = %q", msg)
	}
}
