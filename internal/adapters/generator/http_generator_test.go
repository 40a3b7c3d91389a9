package generator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umlstudio/umlstudio/internal/domain"
	"github.com/umlstudio/umlstudio/internal/ports"
)

func newServer(t *testing.T, status int, body string) (*httptest.Server, *ports.GenerationRequest) {
	t.Helper()
	var received ports.GenerationRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/generate_diagram", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &received
}

func TestGenerate_Success(t *testing.T) {
	srv, received := newServer(t, http.StatusOK, `{"mermaid_code": "classDiagram\n  Customer --> Order"}`)
	g := NewHTTPGenerator(srv.URL+"/", 5*time.Second)

	definition, err := g.Generate(context.Background(), ports.GenerationRequest{
		Description: "Model a customer management system",
		DiagramType: "classDiagram",
	})

	require.NoError(t, err)
	assert.Equal(t, "classDiagram\n  Customer --> Order", definition)
	assert.Equal(t, ports.GenerationRequest{
		Description: "Model a customer management system",
		DiagramType: "classDiagram",
	}, *received)
}

func TestGenerate_RequestErrors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
		wantDetails string
	}{
		{
			name:        "error payload",
			status:      http.StatusOK,
			body:        `{"error": "invalid description"}`,
			wantMessage: "invalid description",
		},
		{
			name:        "error payload with details",
			status:      http.StatusInternalServerError,
			body:        `{"error": "Failed to generate diagram", "details": "quota exceeded"}`,
			wantMessage: "Failed to generate diagram",
			wantDetails: "quota exceeded",
		},
		{
			name:        "fastapi detail string",
			status:      http.StatusBadRequest,
			body:        `{"detail": "Description is required"}`,
			wantMessage: "Description is required",
		},
		{
			name:        "fastapi validation list",
			status:      http.StatusUnprocessableEntity,
			body:        `{"detail": [{"loc": ["body", "description"], "msg": "field required"}]}`,
			wantMessage: "field required",
		},
		{
			name:        "empty object",
			status:      http.StatusOK,
			body:        `{}`,
			wantMessage: "Unexpected error generating diagram",
		},
		{
			name:        "only fences",
			status:      http.StatusOK,
			body:        "{\"mermaid_code\": \"```mermaid\\n```\"}",
			wantMessage: "empty diagram definition",
		},
		{
			name:        "malformed body",
			status:      http.StatusBadGateway,
			body:        `<html>bad gateway</html>`,
			wantMessage: "malformed response (HTTP 502)",
			wantDetails: "<html>bad gateway</html>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newServer(t, tt.status, tt.body)
			g := NewHTTPGenerator(srv.URL, 5*time.Second)

			definition, err := g.Generate(context.Background(), ports.GenerationRequest{
				Description: "x",
				DiagramType: "flowchart",
			})

			assert.Empty(t, definition)
			var reqErr *domain.RequestError
			require.ErrorAs(t, err, &reqErr)
			assert.Equal(t, tt.wantMessage, reqErr.Message)
			assert.Equal(t, tt.wantDetails, reqErr.Details)
			assert.Equal(t, tt.status, reqErr.StatusCode)
			assert.False(t, domain.IsTransportError(err))
		})
	}
}

func TestGenerate_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewHTTPGenerator(url, time.Second).Generate(context.Background(), ports.GenerationRequest{
		Description: "x",
		DiagramType: "flowchart",
	})

	require.Error(t, err)
	assert.True(t, domain.IsTransportError(err))
	assert.Contains(t, err.Error(), "could not reach the diagram service")
}

func TestGenerate_ContextCancelled(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-block:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(block)
		srv.Close()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := NewHTTPGenerator(srv.URL, 0).Generate(ctx, ports.GenerationRequest{
		Description: "x",
		DiagramType: "flowchart",
	})

	assert.True(t, domain.IsTransportError(err))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRefresh(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{name: "ok", status: http.StatusOK},
		{name: "server error", status: http.StatusInternalServerError, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/refresh_diagram", r.URL.Path)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"message": "Diagram cache reset"}`))
			}))
			defer srv.Close()

			err := NewHTTPGenerator(srv.URL, time.Second).Refresh(context.Background())

			if tt.wantErr {
				assert.True(t, domain.IsRequestError(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "flowchart TD\n  A --> B", want: "flowchart TD\n  A --> B"},
		{in: "```mermaid\nflowchart TD\n  A --> B\n```", want: "flowchart TD\n  A --> B"},
		{in: "  ```\nclassDiagram\n```  ", want: "classDiagram"},
		{in: "```mermaid```", want: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StripFences(tt.in))
	}
}
