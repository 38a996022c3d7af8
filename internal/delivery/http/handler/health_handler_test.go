package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"talent-match/internal/database"
	"talent-match/internal/infrastructure/cache"

	"github.com/gofiber/fiber/v3"
)

type stubDB struct {
	pingErr error
}

func (s stubDB) Ping(context.Context) error { return s.pingErr }
func (s stubDB) Close() error               { return nil }

func (s stubDB) Query(context.Context, string, ...any) (database.Rows, error) { return nil, nil }
func (s stubDB) QueryRow(context.Context, string, ...any) database.Row        { return nil }

func TestGetHealth(t *testing.T) {
	cases := []struct {
		name       string
		db         stubDB
		wantStatus int
		wantDB     string
	}{
		{"healthy", stubDB{}, fiber.StatusOK, "ok"},
		{"database down", stubDB{pingErr: errors.New("refused")}, fiber.StatusServiceUnavailable, "unreachable"},
	}

	for _, tc := range cases {
		app := fiber.New()
		NewHealthHandler(tc.db, &cache.Redis{}).RegisterRoutes(app)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
		if err != nil {
			t.Fatalf("%s: request failed: %v", tc.name, err)
		}
		if resp.StatusCode != tc.wantStatus {
			t.Fatalf("%s: status = %d, want %d", tc.name, resp.StatusCode, tc.wantStatus)
		}

		var body struct {
			Data map[string]string `json:"data"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("%s: decode: %v", tc.name, err)
		}
		if body.Data["database"] != tc.wantDB {
			t.Fatalf("%s: database = %q, want %q", tc.name, body.Data["database"], tc.wantDB)
		}
		if tc.wantStatus == fiber.StatusOK && body.Data["cache"] != "unreachable" {
			t.Fatalf("%s: cache = %q, want unreachable for a disconnected client", tc.name, body.Data["cache"])
		}
	}
}
