package openapi_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/promptcraft/pkg/openapi"
)

func TestNewSpec(t *testing.T) {
	cfg := &openapi.Config{Title: "Test API", Description: "desc"}
	spec := openapi.NewSpec(cfg, "1.0.0")

	if spec.OpenAPI != "3.1.0" {
		t.Errorf("openapi version: got %s, want 3.1.0", spec.OpenAPI)
	}
	if spec.Info.Title != "Test API" || spec.Info.Version != "1.0.0" || spec.Info.Description != "desc" {
		t.Errorf("info: got %+v", spec.Info)
	}
	for _, name := range []string{"Error", "Success"} {
		if _, ok := spec.Components.Schemas[name]; !ok {
			t.Errorf("missing component schema %s", name)
		}
	}
	for _, name := range []string{"BadRequest", "Unauthorized", "Forbidden", "PayloadTooLarge", "ServerError"} {
		if _, ok := spec.Components.Responses[name]; !ok {
			t.Errorf("missing component response %s", name)
		}
	}
}

func TestAddOperation(t *testing.T) {
	spec := openapi.NewSpec(&openapi.Config{}, "1")
	get := &openapi.Operation{Summary: "get"}
	del := &openapi.Operation{Summary: "delete"}

	spec.AddOperation("GET", "/favorites", get)
	spec.AddOperation("delete", "/favorites", del)
	spec.AddOperation("PATCH", "/favorites", &openapi.Operation{})
	spec.AddOperation("GET", "", get)

	item := spec.Paths["/favorites"]
	if item.Get != get || item.Delete != del {
		t.Errorf("operations: got %+v", item)
	}
	if _, ok := spec.Paths["/"]; !ok {
		t.Error("empty path should record as /")
	}
}

func TestConfigFinalize(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		var cfg openapi.Config
		cfg.Finalize(nil)
		if cfg.Title != "PromptCraft API" || cfg.Description == "" {
			t.Errorf("defaults: got %+v", cfg)
		}
	})

	t.Run("env overrides", func(t *testing.T) {
		t.Setenv("TEST_OPENAPI_TITLE", "Custom")
		cfg := openapi.Config{Title: "From file"}
		cfg.Finalize(&openapi.ConfigEnv{Title: "TEST_OPENAPI_TITLE"})
		if cfg.Title != "Custom" {
			t.Errorf("title: got %s, want Custom", cfg.Title)
		}
	})
}

func TestServeSpec(t *testing.T) {
	spec := openapi.NewSpec(&openapi.Config{Title: "Test"}, "1.0.0")
	spec.AddOperation("GET", "/prompts", &openapi.Operation{
		Responses: map[int]*openapi.Response{200: openapi.ResponseArrayJSON("ok", "Prompt")},
	})

	data, err := openapi.MarshalJSON(spec)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	rec := httptest.NewRecorder()
	openapi.ServeSpec(data)(rec, httptest.NewRequest("GET", "/openapi.json", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status: got %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("content type: got %s", ct)
	}

	body, _ := io.ReadAll(rec.Body)
	var parsed struct {
		Paths map[string]map[string]struct {
			Responses map[string]json.RawMessage `json:"responses"`
		} `json:"paths"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := parsed.Paths["/prompts"]["get"].Responses["200"]; !ok {
		t.Errorf("expected 200 response under /prompts get, got %s", body)
	}
}

func TestRefs(t *testing.T) {
	if got := openapi.SchemaRef("Prompt").Ref; got != "#/components/schemas/Prompt" {
		t.Errorf("schema ref: got %s", got)
	}
	if got := openapi.ResponseRef("BadRequest").Ref; got != "#/components/responses/BadRequest" {
		t.Errorf("response ref: got %s", got)
	}
	arr := openapi.ArrayOf("Prompt")
	if arr.Type != "array" || arr.Items.Ref != "#/components/schemas/Prompt" {
		t.Errorf("array schema: got %+v", arr)
	}
}
