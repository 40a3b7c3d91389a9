package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/umlstudio/umlstudio/internal/domain"
	"github.com/umlstudio/umlstudio/internal/logging"
	"github.com/umlstudio/umlstudio/internal/ports"
)

const (
	generatePath = "/generate_diagram"
	refreshPath  = "/refresh_diagram"

	// maxResponseBytes bounds how much of a response body is read
	maxResponseBytes = 1 << 20
)

// generateResponse covers the success and both error payload shapes
type generateResponse struct {
	Detail      json.RawMessage `json:"detail"`
	Details     string          `json:"details"`
	Error       string          `json:"error"`
	MermaidCode string          `json:"mermaid_code"`
}

// HTTPGenerator talks to the diagram-generation service over HTTP
type HTTPGenerator struct {
	endpoint   string
	httpClient *http.Client
}

// NewHTTPGenerator creates a generator for the service at endpoint.
// A zero timeout leaves deadlines to the request context.
func NewHTTPGenerator(endpoint string, timeout time.Duration) *HTTPGenerator {
	return &HTTPGenerator{
		endpoint:   strings.TrimRight(endpoint, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Endpoint returns the base URL of the service
func (g *HTTPGenerator) Endpoint() string {
	return g.endpoint
}

// Generate posts the request and returns the diagram definition.
// Errors are *domain.TransportError or *domain.RequestError.
func (g *HTTPGenerator) Generate(ctx context.Context, req ports.GenerationRequest) (string, error) {
	logging.Logger.Debug("Sending generation request",
		"endpoint", g.endpoint,
		"diagram_type", req.DiagramType)

	status, body, err := g.post(ctx, generatePath, req)
	if err != nil {
		return "", err
	}

	var resp generateResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		logging.Logger.Warn("Malformed generation response", "status", status, "error", err)
		return "", &domain.RequestError{
			Details:    truncate(string(body), 200),
			Message:    fmt.Sprintf("malformed response (HTTP %d)", status),
			StatusCode: status,
		}
	}

	if resp.MermaidCode != "" {
		definition := StripFences(resp.MermaidCode)
		if definition == "" {
			return "", &domain.RequestError{Message: "empty diagram definition", StatusCode: status}
		}
		logging.Logger.Debug("Generation request succeeded", "status", status, "definition_length", len(definition))
		return definition, nil
	}

	reqErr := &domain.RequestError{
		Details:    resp.Details,
		Message:    resp.Error,
		StatusCode: status,
	}
	if reqErr.Message == "" {
		reqErr.Message = detailMessage(resp.Detail)
	}
	if reqErr.Message == "" {
		reqErr.Message = "Unexpected error generating diagram"
	}
	logging.Logger.Warn("Generation service returned an error",
		"status", status,
		"error", reqErr.Message,
		"details", reqErr.Details)
	return "", reqErr
}

// Refresh clears the service-side result cache
func (g *HTTPGenerator) Refresh(ctx context.Context) error {
	status, body, err := g.post(ctx, refreshPath, struct{}{})
	if err != nil {
		return err
	}
	if status < 200 || status >= 300 {
		return &domain.RequestError{
			Details:    truncate(string(body), 200),
			Message:    fmt.Sprintf("cache refresh failed (HTTP %d)", status),
			StatusCode: status,
		}
	}
	logging.Logger.Info("Service cache refreshed", "endpoint", g.endpoint)
	return nil
}

func (g *HTTPGenerator) post(ctx context.Context, path string, payload any) (int, []byte, error) {
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint+path, bytes.NewReader(jsonBody))
	if err != nil {
		return 0, nil, &domain.TransportError{Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		logging.Logger.Error("Request to diagram service failed", "path", path, "error", err)
		return 0, nil, &domain.TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return resp.StatusCode, nil, &domain.TransportError{Err: fmt.Errorf("failed to read response: %w", err)}
	}
	return resp.StatusCode, body, nil
}

// StripFences removes Markdown code fences around a Mermaid definition
func StripFences(code string) string {
	code = strings.TrimSpace(code)
	code = strings.ReplaceAll(code, "```mermaid", "")
	code = strings.ReplaceAll(code, "```", "")
	return strings.TrimSpace(code)
}

// detailMessage reads a FastAPI "detail" field, which is a string or a list
// of validation errors
func detailMessage(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(raw, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, item := range items {
			if item.Msg != "" {
				msgs = append(msgs, item.Msg)
			}
		}
		if len(msgs) > 0 {
			return strings.Join(msgs, "; ")
		}
	}
	return string(raw)
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
