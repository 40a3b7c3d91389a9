package ports

import "context"

// GenerationRequest is the body sent to the diagram-generation service
type GenerationRequest struct {
	Description string `json:"description"`
	DiagramType string `json:"diagram_type"`
}

// DiagramGenerator turns a description into a diagram definition.
// Implementations return *domain.RequestError when the service answers with an
// error payload or an empty definition, and *domain.TransportError when it
// cannot be reached.
type DiagramGenerator interface {
	Generate(ctx context.Context, req GenerationRequest) (string, error)
}

// CacheRefresher clears server-side cached results
type CacheRefresher interface {
	Refresh(ctx context.Context) error
}
