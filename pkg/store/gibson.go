package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/JaimeStill/promptcraft/pkg/lifecycle"
	"github.com/JaimeStill/promptcraft/pkg/query"
)

// APIKeyHeader carries the project API key on every query service request.
const APIKeyHeader = "X-Gibson-API-Key"

const maxResponseBytes = 10 << 20

type gibsonRequest struct {
	Query  string `json:"query"`
	Params []any  `json:"params,omitempty"`
}

type gibson struct {
	client *http.Client
	url    string
	apiKey string
	logger *slog.Logger
}

// NewGibson creates a store backed by the remote query service.
func NewGibson(cfg *GibsonConfig, logger *slog.Logger) System {
	return newGibson(cfg, logger)
}

func newGibson(cfg *GibsonConfig, logger *slog.Logger) *gibson {
	return &gibson{
		client: &http.Client{Timeout: cfg.TimeoutDuration()},
		url:    cfg.APIURL,
		apiKey: cfg.APIKey,
		logger: logger.With("system", "store", "backend", DriverGibson),
	}
}

func (g *gibson) Backend() string {
	return DriverGibson
}

func (g *gibson) Query(ctx context.Context, stmt query.Statement) (json.RawMessage, error) {
	body, err := g.do(ctx, stmt)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '[' || !json.Valid(trimmed) {
		return nil, &Error{Detail: "query service returned a non-array response"}
	}
	return json.RawMessage(trimmed), nil
}

func (g *gibson) Exec(ctx context.Context, stmt query.Statement) error {
	_, err := g.do(ctx, stmt)
	return err
}

func (g *gibson) Start(lc *lifecycle.Coordinator) error {
	g.logger.Info("query service configured", "url", g.url)
	return nil
}

func (g *gibson) do(ctx context.Context, stmt query.Statement) ([]byte, error) {
	payload, err := json.Marshal(gibsonRequest{Query: stmt.SQL, Params: stmt.Args})
	if err != nil {
		return nil, &Error{Detail: fmt.Sprintf("encode request: %v", err), Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewReader(payload))
	if err != nil {
		return nil, &Error{Detail: err.Error(), Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(APIKeyHeader, g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Error("query service unreachable", "error", err)
		return nil, &Error{Detail: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &Error{Status: resp.StatusCode, Detail: err.Error(), Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail := strings.TrimSpace(string(body))
		if detail == "" {
			detail = http.StatusText(resp.StatusCode)
		}
		g.logger.Error("query service rejected statement", "status", resp.StatusCode, "detail", detail)
		return nil, &Error{Status: resp.StatusCode, Detail: detail}
	}

	return body, nil
}
