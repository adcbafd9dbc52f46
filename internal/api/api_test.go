package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/JaimeStill/promptcraft/internal/api"
	"github.com/JaimeStill/promptcraft/internal/config"
	"github.com/JaimeStill/promptcraft/internal/infrastructure"
	"github.com/JaimeStill/promptcraft/internal/prompts"
	"github.com/JaimeStill/promptcraft/pkg/identity"
	"github.com/JaimeStill/promptcraft/pkg/module"
	"github.com/JaimeStill/promptcraft/pkg/store"
)

const secret = "api-test-secret"

func validConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.Store.Driver = store.DriverSQLite
	cfg.Store.Database.Path = filepath.Join(t.TempDir(), "api.db")
	cfg.Store.Database.AutoMigrate = true
	cfg.Identity.Provider = identity.ProviderHMAC
	cfg.Identity.Secret = secret
	cfg.LogLevel = "error"

	if err := cfg.Finalize(); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}
	return cfg
}

func setup(t *testing.T, cfg *config.Config) *module.Router {
	t.Helper()

	infra, err := infrastructure.New(cfg)
	if err != nil {
		t.Fatalf("infrastructure.New() error = %v", err)
	}
	if err := infra.Start(); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if err := infra.Lifecycle.WaitForStartup(); err != nil {
		t.Fatalf("startup failed: %v", err)
	}
	t.Cleanup(func() { infra.Lifecycle.Shutdown(5 * time.Second) })

	m, err := api.NewModule(cfg, infra)
	if err != nil {
		t.Fatalf("NewModule() error = %v", err)
	}

	router := module.NewRouter()
	router.Mount(m)
	return router
}

func token(t *testing.T, userID string) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return raw
}

func do(t *testing.T, h http.Handler, method, path, body, userID string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set("Authorization", "Bearer "+token(t, userID))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodePrompts(t *testing.T, rec *httptest.ResponseRecorder) []prompts.Prompt {
	t.Helper()
	var out []prompts.Prompt
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	return out
}

func TestNewModule(t *testing.T) {
	cfg := validConfig(t)
	infra, err := infrastructure.New(cfg)
	if err != nil {
		t.Fatalf("infrastructure.New() error = %v", err)
	}

	m, err := api.NewModule(cfg, infra)
	if err != nil {
		t.Fatalf("NewModule() error = %v", err)
	}
	if m.Prefix() != "/api" {
		t.Errorf("prefix: got %s, want /api", m.Prefix())
	}
}

func TestShareFavoriteFlow(t *testing.T) {
	router := setup(t, validConfig(t))

	if rec := do(t, router, "POST", "/api/prompts", `{"text":"Summarize this article in three bullets"}`, "user_a"); rec.Code != http.StatusOK {
		t.Fatalf("create status = %d, body = %s", rec.Code, rec.Body)
	}

	rec := do(t, router, "GET", "/api/prompts", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	list := decodePrompts(t, rec)
	if len(list) != 1 || list[0].CreatorUserID != "user_a" || list[0].FavoriteCount != 0 {
		t.Fatalf("list = %+v", list)
	}
	body := `{"prompt_id":` + jsonInt(list[0].ID) + `}`

	if rec := do(t, router, "POST", "/api/favorites", body, "user_b"); rec.Code != http.StatusOK {
		t.Fatalf("favorite status = %d, body = %s", rec.Code, rec.Body)
	}

	favs := decodePrompts(t, do(t, router, "GET", "/api/favorites", "", "user_b"))
	if len(favs) != 1 || favs[0].ID != list[0].ID || favs[0].FavoriteCount != 1 {
		t.Fatalf("favorites = %+v", favs)
	}

	if rec := do(t, router, "DELETE", "/api/favorites", body, "user_b"); rec.Code != http.StatusOK {
		t.Fatalf("unfavorite status = %d", rec.Code)
	}
	if favs := decodePrompts(t, do(t, router, "GET", "/api/favorites", "", "user_b")); len(favs) != 0 {
		t.Errorf("favorites after removal = %+v", favs)
	}
}

func TestAuthorization(t *testing.T) {
	router := setup(t, validConfig(t))

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		user   string
		want   int
	}{
		{"anonymous create", "POST", "/api/prompts", `{"text":"long enough text"}`, "", http.StatusUnauthorized},
		{"anonymous favorite", "POST", "/api/favorites", `{"prompt_id":1}`, "", http.StatusUnauthorized},
		{"anonymous list without user", "GET", "/api/favorites", "", "", http.StatusBadRequest},
		{"anonymous lookup disabled", "GET", "/api/favorites?user_id=user_a", "", "", http.StatusUnauthorized},
		{"other user's favorites", "GET", "/api/favorites?user_id=user_a", "", "user_b", http.StatusForbidden},
		{"short text", "POST", "/api/prompts", `{"text":"short"}`, "user_a", http.StatusBadRequest},
		{"string prompt id", "POST", "/api/favorites", `{"prompt_id":"1"}`, "user_a", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rec := do(t, router, tt.method, tt.path, tt.body, tt.user); rec.Code != tt.want {
				t.Errorf("status = %d, want %d (body %s)", rec.Code, tt.want, rec.Body)
			}
		})
	}
}

func TestPublicFavorites(t *testing.T) {
	cfg := validConfig(t)
	cfg.API.PublicFavorites = true
	router := setup(t, cfg)

	rec := do(t, router, "GET", "/api/favorites?user_id=user_a", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := decodePrompts(t, rec); len(got) != 0 {
		t.Errorf("favorites = %+v, want empty", got)
	}
}

func TestOpenAPISpec(t *testing.T) {
	router := setup(t, validConfig(t))

	rec := do(t, router, "GET", "/api"+api.OpenAPIPath, "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var spec struct {
		Info  struct{ Title string } `json:"info"`
		Paths map[string]map[string]json.RawMessage
	}
	if err := json.NewDecoder(rec.Body).Decode(&spec); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if spec.Info.Title != "PromptCraft API" {
		t.Errorf("title = %q", spec.Info.Title)
	}
	for path, methods := range map[string][]string{
		"/prompts":   {"get", "post"},
		"/favorites": {"get", "post", "delete"},
	} {
		for _, m := range methods {
			if _, ok := spec.Paths[path][m]; !ok {
				t.Errorf("missing %s %s", m, path)
			}
		}
	}
}

func TestCORSPreflight(t *testing.T) {
	cfg := validConfig(t)
	cfg.API.CORS.Enabled = true
	cfg.API.CORS.Origins = []string{"http://localhost:3000"}
	router := setup(t, cfg)

	req := httptest.NewRequest("OPTIONS", "/api/favorites", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "DELETE")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("allow-origin = %q", got)
	}
}

func jsonInt(n int64) string {
	b, _ := json.Marshal(n)
	return string(b)
}
